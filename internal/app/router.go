// Package app wires configuration, services, and HTTP routing into the
// runnable application.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/secureapp/secureapp/internal/auth"
	"github.com/secureapp/secureapp/internal/httpx"
	"github.com/secureapp/secureapp/internal/products"
	"github.com/secureapp/secureapp/pkg/jwt"
)

// NewRouter assembles the full HTTP surface: public auth endpoints and
// the token-gated product catalog.
func NewRouter(
	logger *slog.Logger,
	authService *auth.Service,
	productService *products.Service,
	tokens *jwt.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httpx.Message(w, http.StatusOK, "API is running!")
	})

	auth.NewHandler(authService, logger).Register(r)

	r.Group(func(protected chi.Router) {
		protected.Use(jwt.Middleware(tokens))
		protected.Mount("/products", products.NewHandler(productService, logger).Routes())
	})

	return r
}
