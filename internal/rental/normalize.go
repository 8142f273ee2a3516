package rental

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPError reports a non-2xx response. Status always carries the HTTP
// status code; Data carries the parsed error body when it was valid JSON.
type HTTPError struct {
	Status  int
	Message string
	Data    any
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ContentTypeError reports a successful response whose declared media type
// is not JSON.
type ContentTypeError struct{}

func (e *ContentTypeError) Error() string {
	return "Response is not JSON"
}

// EmptyBodyError reports a successful JSON response with an empty body.
type EmptyBodyError struct{}

func (e *EmptyBodyError) Error() string {
	return "Empty response received"
}

// ParseError reports a body that failed to decode as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid JSON response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// normalize validates a raw API response and decodes its body into dest.
// Checks run strictly in order: HTTP status first, then content type, then
// body emptiness, then JSON well-formedness. Error responses are exempt from
// the content-type and JSON checks so that a non-JSON error body never masks
// the real HTTP failure.
func normalize(resp *http.Response, dest any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newHTTPError(resp.StatusCode, body)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		return &ContentTypeError{}
	}

	if len(body) == 0 {
		return &EmptyBodyError{}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// newHTTPError builds the error for a non-2xx response. The body is parsed
// on a best-effort basis to extract a human-readable message; parse failures
// are ignored so the status code always survives.
func newHTTPError(status int, body []byte) *HTTPError {
	httpErr := &HTTPError{
		Status:  status,
		Message: fmt.Sprintf("HTTP error! status: %d", status),
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return httpErr
	}
	httpErr.Data = payload

	if msg := extractMessage(payload); msg != "" {
		httpErr.Message += ": " + msg
	}
	return httpErr
}

// extractMessage pulls a message string out of a parsed error body, checking
// a "message" field first, then "error".
func extractMessage(payload any) string {
	obj, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"message", "error"} {
		if msg, ok := obj[key].(string); ok && msg != "" {
			return msg
		}
	}
	return ""
}
