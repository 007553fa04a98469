package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrHashingFailed is returned when the hash cannot be computed,
	// e.g. the plaintext exceeds bcrypt's 72-byte limit.
	ErrHashingFailed = errors.New("password: failed to hash password")
	// ErrInvalidCost is returned for costs outside bcrypt's supported range.
	ErrInvalidCost = errors.New("password: invalid bcrypt cost")
)

// DefaultCost balances brute-force resistance against login latency.
const DefaultCost = bcrypt.DefaultCost

// Hasher hashes and verifies passwords using bcrypt. The produced hash
// string is self-describing (algorithm, cost, salt and digest in one
// value), so verification needs no state beyond the hash itself.
type Hasher struct {
	cost int
}

// New returns a Hasher with the given bcrypt cost. Costs below the
// bcrypt minimum fall back to DefaultCost.
func New(cost int) (*Hasher, error) {
	if cost > bcrypt.MaxCost {
		return nil, ErrInvalidCost
	}
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}, nil
}

// Hash derives a salted bcrypt hash from the plaintext. A fresh random
// salt is generated per call, so hashing the same password twice yields
// different strings.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. The
// comparison is constant-time; malformed hashes simply report false.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
