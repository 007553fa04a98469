package auth

import "errors"

var (
	// ErrUsernameTaken is returned when registering an already existing username.
	ErrUsernameTaken = errors.New("auth: username already taken")
	// ErrUserNotFound is returned by lookups for unknown usernames.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrInvalidCredentials covers every login failure cause: unknown
	// user, wrong password, and wrong one-time code all collapse into
	// this one error so callers cannot probe which step failed.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrMissingFields is returned for empty usernames or passwords.
	ErrMissingFields = errors.New("auth: username and password are required")
)
