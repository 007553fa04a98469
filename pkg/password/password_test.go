package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureapp/secureapp/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; hashing semantics are cost-independent.
	hasher, err := password.New(4)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", hash)
		assert.True(t, hasher.Verify("correct horse battery staple", hash))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("password-one")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("password-two", hash))
	})

	t.Run("fresh salt per hash", func(t *testing.T) {
		t.Parallel()
		a, err := hasher.Hash("same password")
		require.NoError(t, err)
		b, err := hasher.Hash("same password")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
		assert.True(t, hasher.Verify("same password", a))
		assert.True(t, hasher.Verify("same password", b))
	})

	t.Run("malformed hash reports false", func(t *testing.T) {
		t.Parallel()
		assert.False(t, hasher.Verify("anything", ""))
		assert.False(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
	})

	t.Run("hash is self-describing", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("pw")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$2a$"))
	})

	t.Run("rejects overlong plaintext", func(t *testing.T) {
		t.Parallel()
		_, err := hasher.Hash(strings.Repeat("x", 100))
		assert.ErrorIs(t, err, password.ErrHashingFailed)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("cost above maximum rejected", func(t *testing.T) {
		t.Parallel()
		_, err := password.New(32)
		assert.ErrorIs(t, err, password.ErrInvalidCost)
	})

	t.Run("zero cost falls back to default", func(t *testing.T) {
		t.Parallel()
		hasher, err := password.New(0)
		require.NoError(t, err)
		hash, err := hasher.Hash("pw")
		require.NoError(t, err)
		assert.True(t, hasher.Verify("pw", hash))
	})
}
