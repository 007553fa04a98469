package jwt_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureapp/secureapp/pkg/jwt"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	protected := jwt.Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(jwt.SubjectFromContext(r.Context())))
	}))

	token, err := svc.Generate(jwt.Claims{
		Subject:   "alice",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	t.Run("valid token passes and injects claims", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", rec.Body.String())
	})

	t.Run("rejections share one response shape", func(t *testing.T) {
		t.Parallel()

		expired, err := svc.Generate(jwt.Claims{
			Subject:   "alice",
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		})
		require.NoError(t, err)

		headers := []string{
			"",
			"Bearer",
			"Basic dXNlcjpwYXNz",
			"Bearer not-a-token",
			"Bearer " + token + "tampered",
			"Bearer " + expired,
		}

		for _, h := range headers {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if h != "" {
				req.Header.Set("Authorization", h)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", h)
			assert.JSONEq(t, `{"message":"invalid or expired token"}`, rec.Body.String(), "header %q", h)
		}
	})

	t.Run("skip bypasses verification", func(t *testing.T) {
		t.Parallel()
		guarded := jwt.MiddlewareWithConfig(jwt.MiddlewareConfig{
			Service: svc,
			Skip:    func(r *http.Request) bool { return r.URL.Path == "/health" },
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
