// Package httpx provides small JSON request/response helpers shared by
// the HTTP handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrInvalidBody is returned by Decode for unreadable or malformed JSON.
var ErrInvalidBody = errors.New("httpx: invalid request body")

// messageResponse is the `{"message": ...}` envelope used across the API.
type messageResponse struct {
	Message string `json:"message"`
}

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Message writes a `{"message": ...}` JSON response with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageResponse{Message: message})
}

// Decode reads the request body as JSON into target. Unknown fields are
// tolerated; syntactically broken bodies return ErrInvalidBody.
func Decode(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return errors.Join(ErrInvalidBody, err)
	}
	return nil
}
