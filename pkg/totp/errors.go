package totp

import "errors"

var (
	ErrSecretGeneration   = errors.New("totp: failed to generate secret")
	ErrMissingSecret      = errors.New("totp: missing secret")
	ErrInvalidSecret      = errors.New("totp: invalid secret")
	ErrMissingAccountName = errors.New("totp: missing account name")
	ErrMissingIssuer      = errors.New("totp: missing issuer")
	ErrInvalidCode        = errors.New("totp: invalid code format")
)
