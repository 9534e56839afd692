package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"eventsportal/internal/domain"
)

// APIError is a non-2xx response from the events API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Is maps status codes onto the domain sentinels so callers can use errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

// errorBody covers the envelopes the API is known to answer with:
// {"error": {"code", "message"}}, {"message": "..."} and {"message": ["..."], "error": "Bad Request"}.
type errorBody struct {
	Error   json.RawMessage `json:"error"`
	Message json.RawMessage `json:"message"`
}

type errorObject struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		var obj errorObject
		if len(eb.Error) > 0 && json.Unmarshal(eb.Error, &obj) == nil {
			apiErr.Code = obj.Code
			apiErr.Message = obj.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = messageText(eb.Message)
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// messageText accepts a string or a list of strings.
func messageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return strings.Join(list, "; ")
	}
	return ""
}
