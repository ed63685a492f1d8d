package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoption-portal/internal/platform/logger"
)

const (
	maxBodyBytes = 1 << 20 // 1MB

	HeaderRequestID = "X-Request-ID"
)

// Client es el wrapper único para hablar con la API.
// Arma método/URL/body/headers de forma uniforme y loguea cada falla antes de devolverla.
// No reintenta ni transforma respuestas.
type Client struct {
	HTTP    *http.Client
	BaseURL string // si se define, Do puede recibir paths relativos
	Log     logger.Logger
}

// New crea un Client. timeout <= 0 => sin timeout (la cancelación va por ctx).
func New(timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	hc := &http.Client{}
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &Client{HTTP: hc, Log: log}
}

// NewWithBaseURL crea un Client con BaseURL validada.
func NewWithBaseURL(baseURL string, timeout time.Duration, log logger.Logger) (*Client, error) {
	c := New(timeout, log)
	if strings.TrimSpace(baseURL) == "" {
		return c, nil
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// Response es la respuesta cruda; el que llama interpreta el payload.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode decodifica el body JSON en out. Body vacío => no-op.
func (r *Response) Decode(out any) error {
	if r == nil || len(r.Body) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string // campo "message" (o "error") del JSON si vino
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http error: %s %s status=%d message=%s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http error: %s %s status=%d", e.Method, e.URL, e.StatusCode)
}

// Do hace un request JSON.
// - pathOrURL: URL absoluta o path relativo a BaseURL
// - body: se serializa a JSON si no es nil
// - headers: se mezclan encima de los defaults (p.ej. Authorization)
func (c *Client) Do(
	ctx context.Context,
	method string,
	pathOrURL string,
	body any,
	headers map[string]string,
) (*Response, error) {
	if c == nil || c.HTTP == nil {
		return nil, errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return nil, err
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("httpclient: marshal json: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, rd)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logFailure(method, fullURL, 0, err.Error())
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.logFailure(method, fullURL, resp.StatusCode, err.Error())
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		herr := &HTTPError{
			Method:     method,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Message:    messageFrom(raw),
			Body:       strings.TrimSpace(string(raw)),
		}
		c.logFailure(method, fullURL, resp.StatusCode, herr.Message)
		return nil, herr
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}

func (c *Client) logFailure(method, fullURL string, status int, msg string) {
	if c.Log == nil {
		return
	}
	c.Log.Error("api request failed", map[string]any{
		"method":  method,
		"url":     fullURL,
		"status":  status,
		"message": msg,
	})
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}

// messageFrom saca "message" o "error" de un body JSON, si lo hay.
func messageFrom(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if m := strings.TrimSpace(payload.Message); m != "" {
		return m
	}
	return strings.TrimSpace(payload.Error)
}
