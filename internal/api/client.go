// Package api expone los endpoints REST que consume el cliente.
// Todas las llamadas pasan por el mismo httpclient configurado (un solo origin).
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"pet-adoption-portal/internal/platform/httpclient"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/validation"
)

// Error representa un 2xx con {"success": false}.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "api: request was not successful"
	}
	return "api: " + e.Message
}

var ErrNotConfigured = errors.New("api client not configured")

type Client struct {
	http     *httpclient.Client
	sessions *session.Provider
}

func NewClient(hc *httpclient.Client, sessions *session.Provider) *Client {
	if sessions == nil {
		sessions = session.NewProvider(nil)
	}
	return &Client{http: hc, sessions: sessions}
}

// envelope es la convención {success, message, data} de la API.
type envelope[T any] struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func (e envelope[T]) err() error {
	if e.Success != nil && !*e.Success {
		return &Error{Message: e.Message}
	}
	return nil
}

// call hace el request y decodifica el envelope. authed agrega el bearer de la sesión actual.
func call[T any](ctx context.Context, c *Client, method, path string, body any, authed bool) (T, string, error) {
	var zero T
	resp, err := c.do(ctx, method, path, body, authed)
	if err != nil {
		return zero, "", err
	}

	var env envelope[T]
	if err := resp.Decode(&env); err != nil {
		return zero, "", err
	}
	if err := env.err(); err != nil {
		return zero, env.Message, err
	}
	return env.Data, env.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, authed bool) (*httpclient.Response, error) {
	if c == nil || c.http == nil {
		return nil, ErrNotConfigured
	}
	var headers map[string]string
	if authed {
		headers = c.sessions.AuthHeader()
	}
	return c.http.Do(ctx, method, path, body, headers)
}

func idPath(format, id string) string {
	return fmt.Sprintf(format, url.PathEscape(id))
}

// MessageOf traduce un error a texto de toast:
// mensaje del servidor tal cual si vino, primer error de validación, o fallback.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var herr *httpclient.HTTPError
	if errors.As(err, &herr) && herr.Message != "" {
		return herr.Message
	}
	var aerr *Error
	if errors.As(err, &aerr) && aerr.Message != "" {
		return aerr.Message
	}
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		if m := fe.First(); m != "" {
			return m
		}
	}
	return fallback
}

// IsUnauthorized detecta un 401 de la API (token vencido, revocado o ausente).
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsForbidden detecta un 403: el token es válido pero no alcanza para la operación.
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

func statusOf(err error) int {
	var herr *httpclient.HTTPError
	if !errors.As(err, &herr) {
		return 0
	}
	return herr.StatusCode
}
