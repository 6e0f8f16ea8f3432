package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"resty.dev/v3"
)

// RequestError is a non-success response from the backend. Message holds
// the response body so backend validation details reach the user.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// newRequestError extracts the error message from a response body. The
// backend wraps its messages as {"detail": "..."}; anything else is
// surfaced as raw text.
func newRequestError(response *resty.Response) *RequestError {
	raw := strings.TrimSpace(response.String())
	message := raw
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(raw), &body); err == nil && body.Detail != "" {
		message = body.Detail
	}
	return &RequestError{
		StatusCode: response.StatusCode(),
		Message:    message,
	}
}
