package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// genericMessage is shown when the backend gives us nothing usable
const genericMessage = "Operation failed"

// Error is a non-2xx response from the backend. Message carries the
// backend's own message when the body had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// UserMessage extracts the text to show the user for any error coming out
// of the client: the backend message for API errors, a generic fallback
// otherwise.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericMessage
}

// newError builds an Error from a response body. NestJS-style backends
// return {"message": "..."} or {"message": ["...", "..."]}.
func newError(resp *resty.Response) *Error {
	e := &Error{Status: resp.StatusCode(), Message: genericMessage}

	var body struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return e
	}

	if len(body.Message) > 0 {
		var single string
		if err := json.Unmarshal(body.Message, &single); err == nil && single != "" {
			e.Message = single
			return e
		}
		var many []string
		if err := json.Unmarshal(body.Message, &many); err == nil && len(many) > 0 {
			e.Message = strings.Join(many, "; ")
			return e
		}
	}
	if body.Error != "" {
		e.Message = body.Error
	}
	return e
}
