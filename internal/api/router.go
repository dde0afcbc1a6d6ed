package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/loftbook/engine/internal/api/handlers"
	mw "github.com/loftbook/engine/internal/api/middleware"
)

type Dependencies struct {
	HMACSecret   []byte
	AuthHandler  *handlers.AuthHandler
	LoftsHandler *handlers.LoftsHandler
	BirdsHandler *handlers.BirdsHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	r.Route("/api/v1", func(api chi.Router) {
		// Auth routes (public)
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)
			ar.Post("/logout", dep.AuthHandler.Logout)
		})

		// Protected routes
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.HMACSecret))

			protected.Route("/lofts", func(lr chi.Router) {
				lr.Get("/", dep.LoftsHandler.List)
				lr.Post("/", dep.LoftsHandler.Create)
				lr.Get("/{id}", dep.LoftsHandler.Get)
				lr.Put("/{id}", dep.LoftsHandler.Rename)
				lr.Delete("/{id}", dep.LoftsHandler.Delete)
			})

			protected.Route("/birds", func(br chi.Router) {
				br.Get("/", dep.BirdsHandler.List)
				br.Post("/", dep.BirdsHandler.Create)
				br.Post("/assign", dep.BirdsHandler.Assign)
				br.Get("/{id}", dep.BirdsHandler.Get)
				br.Put("/{id}", dep.BirdsHandler.Update)
				br.Delete("/{id}", dep.BirdsHandler.Delete)
			})
		})
	})

	return r
}
