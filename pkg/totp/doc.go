// Package totp implements Time-based One-Time Passwords as defined by
// RFC 6238, on top of the RFC 4226 HOTP algorithm.
//
// It covers the full enrollment lifecycle: secret generation
// (GenerateSecret), provisioning URI construction compatible with
// Google Authenticator and similar apps (URI), code computation for a
// given moment (Code, CodeAt), and drift-tolerant validation
// (Validate).
//
// Codes are 6-digit decimal strings over 30-second periods using
// HMAC-SHA1, the parameter set every commodity authenticator app
// supports. Validation compares candidate codes with constant-time
// equality and accepts a configurable window of adjacent periods to
// absorb client/server clock disagreement.
//
// All failures are reported through package-level sentinel errors
// (ErrInvalidSecret, ErrInvalidCode, ...) suitable for errors.Is.
package totp
