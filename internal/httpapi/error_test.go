package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

func newResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{"json error field", 500, `{"error":"bucket unavailable"}`, "bucket unavailable"},
		{"json message field", 400, `{"message":"bad request"}`, "bad request"},
		{"json detail field", 404, `{"detail":"no such file"}`, "no such file"},
		{"plain text body", 502, "upstream exploded", "upstream exploded"},
		{"empty body", 503, "", ""},
		{"json without known field", 500, `{"code":13}`, `{"code":13}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := Decode("test op", newResponse(tt.status, tt.body))
			if decoded.Status != tt.status {
				t.Errorf("Status = %d, want %d", decoded.Status, tt.status)
			}
			if decoded.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", decoded.Detail, tt.wantDetail)
			}
			if decoded.Op != "test op" {
				t.Errorf("Op = %q, want %q", decoded.Op, "test op")
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	withDetail := &Error{Op: "delete file", Status: 500, Detail: "boom"}
	if got := withDetail.Error(); got != "delete file: boom" {
		t.Errorf("Error() = %q", got)
	}

	withoutDetail := &Error{Op: "list tasks", Status: 503}
	if got := withoutDetail.Error(); got != "list tasks: Service Unavailable" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsService(t *testing.T) {
	serviceErr := &Error{Op: "toggle task", Status: 500}
	if !IsService(serviceErr) {
		t.Error("IsService(service error) = false")
	}
	if !IsService(fmt.Errorf("wrapped: %w", serviceErr)) {
		t.Error("IsService(wrapped service error) = false")
	}
	if IsService(errors.New("connection refused")) {
		t.Error("IsService(transport error) = true")
	}
}
