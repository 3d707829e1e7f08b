package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mkani/billing/pkg/authz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredLogger(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"ok", http.StatusOK, "INFO"},
		{"server error", http.StatusBadGateway, "ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(chimw.RequestID)
			r.Use(NewStructuredLogger(logger))
			r.Get("/wallets/me", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte("{}"))
			})

			req := httptest.NewRequest(http.MethodGet, "/wallets/me", nil)
			req.Header.Set(authz.UserIDHeader, "42")
			r.ServeHTTP(httptest.NewRecorder(), req)

			var line struct {
				Level   string `json:"level"`
				Request struct {
					Method    string `json:"method"`
					Path      string `json:"path"`
					RequestID string `json:"request_id"`
					UserID    string `json:"user_id"`
				} `json:"request"`
				Response struct {
					Status int `json:"status"`
					Bytes  int `json:"bytes"`
				} `json:"response"`
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tc.wantLevel, line.Level)
			assert.Equal(t, "/wallets/me", line.Request.Path)
			assert.NotEmpty(t, line.Request.RequestID)
			assert.Equal(t, "42", line.Request.UserID)
			assert.Equal(t, tc.status, line.Response.Status)
			assert.Equal(t, 2, line.Response.Bytes)
		})
	}
}

func TestNewStructuredLogger_SkipPaths(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(NewStructuredLogger(logger, "/healthz"))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, buf.String())
}
