package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/chronos-reading/internal/config"
	"github.com/saulo-duarte/chronos-reading/internal/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterMounts(t *testing.T) {
	settings := config.FromEnv()
	settings.KVDriver = "memory"
	settings.GeminiAPIKey = ""
	settings.CryptoKey = ""

	c, err := container.New(context.Background(), settings)
	require.NoError(t, err)

	srv := httptest.NewServer(c.Router())
	defer srv.Close()

	for path, want := range map[string]int{
		"/healthz":               http.StatusOK,
		"/quizzes/":              http.StatusOK,
		"/quizzes/history":       http.StatusOK,
		"/ai/recommendations":    http.StatusOK,
		"/ai/state/book-summary": http.StatusOK,
		"/ai/summary":            http.StatusBadRequest,
		"/not-a-route":           http.StatusNotFound,
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	settings := config.FromEnv()
	settings.KVDriver = "memory"
	settings.CryptoKey = ""
	settings.CORSOrigins = []string{"http://localhost:3000"}

	c, err := container.New(context.Background(), settings)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/quizzes/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	c.Router().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
