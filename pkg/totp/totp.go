package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// Digits is the length of generated one-time codes.
	Digits = 6
	// Period is the code validity window in seconds (RFC 6238 standard).
	Period = 30
	// Algorithm is the HMAC algorithm advertised in provisioning URIs.
	Algorithm = "SHA1"
	// DefaultWindow is the clock-drift tolerance in periods accepted by Validate.
	DefaultWindow = 1

	// secretBytes is 160 bits of entropy, the RFC 4226 recommended minimum.
	secretBytes = 20
)

var (
	// secretRegex ensures Base32 format: uppercase A-Z, digits 2-7, optional padding.
	secretRegex = regexp.MustCompile("^[A-Z2-7]+=*$")
	codeRegex   = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, Digits))
)

// GenerateSecret produces a new Base32-encoded shared secret suitable for
// TOTP enrollment. The secret carries 160 bits of entropy and is encoded
// without padding so it can be typed into authenticator apps directly.
func GenerateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrSecretGeneration, err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}

// URIParams describes a provisioning URI for authenticator apps.
type URIParams struct {
	Secret      string // Base32-encoded shared secret (required)
	AccountName string // User identifier shown in the app (required)
	Issuer      string // Service name shown in the app (required)
}

// Validate checks that all required URI parameters are present and well formed.
func (p URIParams) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if !secretRegex.MatchString(p.Secret) {
		return ErrInvalidSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// URI builds a provisioning URI following the Key Uri Format used by
// commodity authenticator apps:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func URI(params URIParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", params.Secret)
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", Algorithm)
	query.Set("digits", fmt.Sprintf("%d", Digits))
	query.Set("period", fmt.Sprintf("%d", Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// CodeAt computes the one-time code for the period containing t,
// per RFC 6238. The secret must be a valid Base32-encoded string.
func CodeAt(secret string, t time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	counter := t.Unix() / int64(Period)
	return fmt.Sprintf("%0*d", Digits, hotp(key, counter)), nil
}

// Code computes the one-time code for the current period.
func Code(secret string) (string, error) {
	return CodeAt(secret, time.Now())
}

// Validate reports whether code is valid for the secret at time t,
// accepting codes from the surrounding window of periods to tolerate
// client/server clock drift. A window of 1 accepts the previous, current
// and next period. Codes of the wrong length or with non-digit characters
// are rejected before any computation.
func Validate(secret, code string, t time.Time, window int) (bool, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return false, ErrInvalidCode
	}
	if window < 0 {
		window = DefaultWindow
	}

	counter := t.Unix() / int64(Period)
	for i := -window; i <= window; i++ {
		candidate := fmt.Sprintf("%0*d", Digits, hotp(key, counter+int64(i)))
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(code)) == 1 {
			return true, nil
		}
	}

	return false, nil
}

// hotp implements the RFC 4226 HMAC-based one-time password algorithm,
// reducing an HMAC-SHA1 digest to a Digits-long decimal code via dynamic
// truncation.
func hotp(key []byte, counter int64) int {
	// Counter is encoded big-endian into 8 bytes per RFC 4226.
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	sum := mac.Sum(nil)

	// Dynamic truncation: low 4 bits of the last byte select the offset,
	// then a 31-bit value is read (MSB cleared to keep it positive).
	offset := sum[len(sum)-1] & 0x0f
	value := (int(sum[offset]&0x7f) << 24) |
		(int(sum[offset+1]&0xff) << 16) |
		(int(sum[offset+2]&0xff) << 8) |
		int(sum[offset+3]&0xff)

	return value % int(math.Pow10(Digits))
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(strings.ToUpper(secret))
	if !secretRegex.MatchString(secret) {
		return nil, ErrInvalidSecret
	}
	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return key, nil
}
