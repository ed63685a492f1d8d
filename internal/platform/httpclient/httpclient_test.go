package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/platform/logger"
)

func TestDo_SendsJSONAndMergesHeaders(t *testing.T) {
	var got *http.Request
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"1"}}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", 0, nil)
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), http.MethodPost, "api/pets/register", map[string]any{"name": "Milo"}, map[string]string{
		"Authorization": "Bearer tok",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/pets/register", got.URL.Path)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get(HeaderRequestID))
	assert.Equal(t, "Milo", gotBody["name"])

	var out struct {
		Success bool `json:"success"`
	}
	require.NoError(t, resp.Decode(&out))
	assert.True(t, out.Success)
}

func TestDo_CallerHeaderOverridesContentType(t *testing.T) {
	var ct string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct = r.Header.Get("Content-Type")
	}))
	defer ts.Close()

	c := New(0, nil)
	_, err := c.Do(context.Background(), http.MethodGet, ts.URL, nil, map[string]string{"Content-Type": "text/plain"})
	require.NoError(t, err)
	assert.Equal(t, "text/plain", ct)
}

func TestDo_NonSuccessStatusLogsAndReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"Email already registered"}`))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	c, err := NewWithBaseURL(ts.URL, 0, logger.New(logger.Options{Format: logger.FormatJSON, Out: &buf}))
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodPost, "/register", map[string]string{}, nil)
	require.Error(t, err)

	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusConflict, herr.StatusCode)
	assert.Equal(t, "Email already registered", herr.Message)
	assert.Equal(t, http.MethodPost, herr.Method)

	logged := buf.String()
	assert.Contains(t, logged, `"method":"POST"`)
	assert.Contains(t, logged, `"status":409`)
	assert.Contains(t, logged, "Email already registered")
}

func TestDo_ErrorFieldUsedWhenNoMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer ts.Close()

	_, err := New(0, nil).Do(context.Background(), http.MethodGet, ts.URL, nil, nil)
	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "invalid token", herr.Message)
}

func TestDo_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := New(0, nil).Do(context.Background(), http.MethodGet, url, nil, nil)
	require.Error(t, err)
	var herr *HTTPError
	assert.False(t, errors.As(err, &herr))
}

func TestDo_RelativePathRequiresBaseURL(t *testing.T) {
	_, err := New(0, nil).Do(context.Background(), http.MethodGet, "/api/products", nil, nil)
	assert.Error(t, err)
}

func TestDo_CancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(0, nil).Do(ctx, http.MethodGet, ts.URL, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewWithBaseURL_Invalid(t *testing.T) {
	_, err := NewWithBaseURL("not a url", 0, nil)
	assert.Error(t, err)
}
