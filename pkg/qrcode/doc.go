// Package qrcode renders text content as QR code PNG images.
//
// It is a thin wrapper around github.com/skip2/go-qrcode that adds input
// validation, a sensible default size, and sentinel errors
// (ErrEmptyContent, ErrEncodingFailed) comparable with errors.Is.
package qrcode
