package task

import (
	"errors"
	"fmt"
	"strings"
)

// MaxTextLength is the maximum allowed length for task text.
const MaxTextLength = 500

var (
	// ErrEmptyText is returned when task text is empty or whitespace.
	ErrEmptyText = errors.New("task text cannot be empty")

	// ErrTextTooLong is returned when task text exceeds MaxTextLength.
	ErrTextTooLong = errors.New("task text exceeds maximum length")

	// ErrTaskNotFound is returned when no task with the given ID exists.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidateText checks if task text is valid. Validation failures are
// caught before any network call is made.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("%w: %d > %d", ErrTextTooLong, len(text), MaxTextLength)
	}
	return nil
}
