package what3words

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingField is returned by the field projection helpers when a response
// doesn't carry the expected field.
var ErrMissingField = errors.New("missing field in response")

// APIError is a non-2xx response from the API. Code and Message come from the
// upstream error envelope when it parses; Body always carries the raw
// response so nothing is lost to the caller.
type APIError struct {
	Status  int
	Code    string
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("what3words: %s (%s, http %d)", e.Message, e.Code, e.Status)
	}

	return fmt.Sprintf("what3words: request failed with http %d", e.Status)
}

// errorEnvelope is the upstream error shape: {"error":{"code","message"}}.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Body: body}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
