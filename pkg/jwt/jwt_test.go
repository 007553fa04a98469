package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureapp/secureapp/pkg/jwt"
)

func newService(t *testing.T) *jwt.Service {
	t.Helper()
	svc, err := jwt.New([]byte("test-signing-key-at-least-32-bytes!!"))
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := jwt.New(nil)
	assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	_, err = jwt.New([]byte{})
	assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)
}

func TestGenerateParse_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	now := time.Now()
	claims := jwt.Claims{
		ID:        "token-id",
		Subject:   "alice",
		Issuer:    "secureapp",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}

	token, err := svc.Generate(claims)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	parsed, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, claims, parsed)
}

func TestParse_Failures(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	valid, err := svc.Generate(jwt.Claims{
		Subject:   "alice",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		for _, tok := range []string{"", "only-one-part", "two.parts", "a.b.c.d"} {
			_, err := svc.Parse(tok)
			assert.Error(t, err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()
		parts := strings.Split(valid, ".")
		tampered := parts[0] + ".eyJzdWIiOiJtYWxsb3J5In0." + parts[2]
		_, err := svc.Parse(tampered)
		assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		t.Parallel()
		other, err := jwt.New([]byte("a-completely-different-signing-key!!"))
		require.NoError(t, err)
		_, err = other.Parse(valid)
		assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.Generate(jwt.Claims{
			Subject:   "alice",
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		})
		require.NoError(t, err)
		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("not yet valid", func(t *testing.T) {
		t.Parallel()
		token, err := svc.Generate(jwt.Claims{
			Subject:   "alice",
			NotBefore: time.Now().Add(time.Hour).Unix(),
		})
		require.NoError(t, err)
		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestClaims_Valid(t *testing.T) {
	t.Parallel()

	now := time.Now().Unix()

	tests := []struct {
		name    string
		claims  jwt.Claims
		wantErr error
	}{
		{name: "zero claims are unset", claims: jwt.Claims{}},
		{name: "within validity window", claims: jwt.Claims{IssuedAt: now - 10, ExpiresAt: now + 60}},
		{name: "expired", claims: jwt.Claims{ExpiresAt: now - 1}, wantErr: jwt.ErrExpiredToken},
		{name: "not before future", claims: jwt.Claims{NotBefore: now + 60}, wantErr: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.claims.Valid()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
