// Package jwt issues and verifies HMAC-SHA256 signed JSON Web Tokens
// (RFC 7519) without external dependencies.
//
// A Service is bound to a single process-wide signing key. Generate
// produces a compact token from Claims; Parse verifies the signature in
// constant time, pins the algorithm to HS256, and validates the
// temporal claims, returning typed sentinel errors (ErrInvalidToken,
// ErrExpiredToken, ErrInvalidSignature, ...) for errors.Is.
//
// Middleware provides an http request guard: it extracts the Bearer
// token from the Authorization header, verifies it, and injects the
// claims into the request context for downstream handlers. Any failure
// is collapsed into a single 401 response.
package jwt
