package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/loftbook/engine/internal/api/middleware"
	"github.com/loftbook/engine/internal/api/types"
)

// asUser stands in for the JWT middleware so handler tests can pick the
// caller directly.
func asUser(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loftRoutes(userID uuid.UUID, h *LoftsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(asUser(userID))
	r.Get("/lofts", h.List)
	r.Post("/lofts", h.Create)
	r.Get("/lofts/{id}", h.Get)
	r.Put("/lofts/{id}", h.Rename)
	r.Delete("/lofts/{id}", h.Delete)
	return r
}

func birdRoutes(userID uuid.UUID, h *BirdsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(asUser(userID))
	r.Get("/birds", h.List)
	r.Post("/birds", h.Create)
	r.Post("/birds/assign", h.Assign)
	r.Get("/birds/{id}", h.Get)
	r.Put("/birds/{id}", h.Update)
	r.Delete("/birds/{id}", h.Delete)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) types.APIResponse {
	t.Helper()
	var resp types.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
