// Package httpapi carries the error surface shared by the Records and
// Media service clients.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBody = 8 << 10

// Error is a non-success HTTP response with server-provided detail.
// Transport-level failures (DNS, refused connections, timeouts) are
// not wrapped in this type; they pass through as the underlying error.
type Error struct {
	// Op names the operation that failed, e.g. "delete file".
	Op string

	// Status is the HTTP status code the server returned.
	Status int

	// Detail is the server-provided error text, if any.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Op, http.StatusText(e.Status))
}

// Decode builds an Error from a non-2xx response. JSON bodies carrying
// an "error", "message", or "detail" field become the detail text;
// anything else is used raw.
func Decode(op string, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := strings.TrimSpace(string(body))

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"error", "message", "detail"} {
			if value, ok := payload[key].(string); ok && value != "" {
				detail = value
				break
			}
		}
	}

	return &Error{Op: op, Status: resp.StatusCode, Detail: detail}
}

// IsService reports whether err is a service-level failure (the server
// answered with a non-success status) as opposed to a transport error.
func IsService(err error) bool {
	var serviceErr *Error
	return errors.As(err, &serviceErr)
}
