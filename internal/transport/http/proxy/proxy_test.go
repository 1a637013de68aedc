package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticKey(key string) func() string {
	return func() string { return key }
}

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()

	var payload map[string]string
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload["error"]
}

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-post methods", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(http.DefaultClient, "http://example.invalid", staticKey("sk"))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/deepseek", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.NotEmpty(t, decodeError(t, rec.Body))
	})

	t.Run("rejects malformed json without calling upstream", func(t *testing.T) {
		t.Parallel()

		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		h := NewHandler(srv.Client(), srv.URL, staticKey("sk"))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deepseek",
			strings.NewReader("{broken")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)
	})

	t.Run("missing server key answers 500 without calling upstream", func(t *testing.T) {
		t.Parallel()

		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		h := NewHandler(srv.Client(), srv.URL, staticKey(""))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deepseek",
			strings.NewReader(`{"model":"deepseek-chat"}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "DEEPSEEK_API_KEY non configurata lato server.", decodeError(t, rec.Body))
		assert.False(t, called)
	})

	t.Run("forwards body and bearer token, mirrors status and body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-server", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"model":"deepseek-chat"}`, string(body))

			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		h := NewHandler(srv.Client(), srv.URL, staticKey("sk-server"))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deepseek",
			strings.NewReader(`{"model":"deepseek-chat"}`)))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"choices":[]}`, rec.Body.String())
	})

	t.Run("empty body is forwarded as an empty object", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, "{}", string(body))
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		h := NewHandler(srv.Client(), srv.URL, staticKey("sk"))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deepseek", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-json upstream body is wrapped in a json string", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream exploded"))
		}))
		defer srv.Close()

		h := NewHandler(srv.Client(), srv.URL, staticKey("sk"))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deepseek",
			strings.NewReader("{}")))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, `"upstream exploded"`, rec.Body.String())
	})

	t.Run("unreachable upstream answers 502", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(http.DefaultClient, "http://127.0.0.1:1", staticKey("sk"))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deepseek",
			strings.NewReader("{}")))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.NotEmpty(t, decodeError(t, rec.Body))
	})
}
