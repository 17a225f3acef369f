package task

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"valid short", "Buy milk", nil},
		{"valid long", strings.Repeat("a", MaxTextLength), nil},
		{"empty", "", ErrEmptyText},
		{"whitespace", "   ", ErrEmptyText},
		{"tabs and newlines", "\t\n ", ErrEmptyText},
		{"too long", strings.Repeat("a", MaxTextLength+1), ErrTextTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateText(%q) unexpected error: %v", tt.text, err)
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateText(%q) = %v, want %v", tt.text, err, tt.wantErr)
				}
			}
		})
	}
}
