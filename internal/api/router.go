package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/agroassist/engine/internal/api/handlers"
	mw "github.com/agroassist/engine/internal/api/middleware"
	"github.com/agroassist/engine/internal/token"
)

type Dependencies struct {
	TokenIssuer     token.Issuer
	AuthHandler     *handlers.AuthHandler
	AdvisoryHandler *handlers.AdvisoryHandler
	ScansHandler    *handlers.ScansHandler
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
			ar.Post("/signup", dep.AuthHandler.Signup)
			ar.Post("/login", dep.AuthHandler.Login)
			ar.Post("/logout", dep.AuthHandler.Logout)
		})

		// Protected routes
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.TokenIssuer))

			protected.Route("/advisory", func(ar chi.Router) {
				ar.Post("/crops", dep.AdvisoryHandler.RecommendCrops)
				ar.Post("/fertilizers", dep.AdvisoryHandler.RecommendFertilizers)

				ar.Route("/scans", func(sr chi.Router) {
					sr.Post("/", dep.ScansHandler.Create)
					sr.Get("/", dep.ScansHandler.List)
					sr.Get("/{id}", dep.ScansHandler.Get)
				})
			})
		})
	})

	return r
}
