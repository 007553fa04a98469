package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. The TOTP secret is generated once at
// registration and never rotated afterwards.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	TOTPSecret   string
	CreatedAt    time.Time
}

// Storage persists user credentials. Implementations must enforce
// username uniqueness atomically: a concurrent CreateUser race for the
// same username yields exactly one stored record and ErrUsernameTaken
// for the losers.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}
