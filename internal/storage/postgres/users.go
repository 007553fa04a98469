package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/secureapp/secureapp/internal/auth"
)

// UserStore is a pgx-backed auth.Storage. Username uniqueness relies on
// the unique index, so concurrent inserts of the same username cannot
// both succeed.
type UserStore struct {
	db *pgxpool.Pool
}

// NewUserStore constructs a UserStore.
func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

// CreateUser inserts the user, mapping unique violations to
// auth.ErrUsernameTaken.
func (s *UserStore) CreateUser(ctx context.Context, user *auth.User) error {
	const query = `
		INSERT INTO users (id, username, password_hash, totp_secret, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.Exec(ctx, query, user.ID, user.Username, user.PasswordHash, user.TOTPSecret, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return auth.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByUsername returns the stored user or auth.ErrUserNotFound.
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*auth.User, error) {
	const query = `
		SELECT id, username, password_hash, totp_secret, created_at
		FROM users
		WHERE username = $1`

	var user auth.User
	err := s.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.TOTPSecret, &user.CreatedAt,
	)
	if err != nil {
		if isNotFound(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}
