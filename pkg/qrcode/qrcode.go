package qrcode

import (
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content string is empty or only whitespace.
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrEncodingFailed is returned when the underlying encoder fails,
	// for example when the content exceeds the symbol capacity.
	ErrEncodingFailed = errors.New("qrcode: failed to encode content")
)

// DefaultSize is the image edge length in pixels used when size is not positive.
const DefaultSize = 256

// Generate renders content as a QR code and returns the PNG image bytes.
// Medium error correction is used, which is what authenticator provisioning
// flows conventionally expect.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrEncodingFailed, err)
	}
	return png, nil
}
