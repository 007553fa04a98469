package jwt

import (
	"net/http"
	"strings"
)

// ErrorResponder writes the response for requests that fail verification.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareConfig configures the request guard.
type MiddlewareConfig struct {
	Service *Service       // token verifier (required)
	OnError ErrorResponder // response for rejected requests (defaults to a JSON 401)
	Skip    func(r *http.Request) bool
}

// Middleware returns a request guard that verifies the Bearer token on
// every request before handler dispatch. Verified claims are injected
// into the request context; any failure short-circuits with 401.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Service: service})
}

// MiddlewareWithConfig is Middleware with custom rejection handling and
// request filtering.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.OnError == nil {
		config.OnError = func(w http.ResponseWriter, r *http.Request, _ error) {
			// One generic body for every failure cause so clients learn
			// nothing about why verification failed.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid or expired token"}`))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := bearerToken(r)
			if err != nil {
				config.OnError(w, r, err)
				return
			}

			claims, err := config.Service.Parse(tokenString)
			if err != nil {
				config.OnError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaims(r.Context(), claims)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header per RFC 6750.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrMissingToken
	}

	return parts[1], nil
}
