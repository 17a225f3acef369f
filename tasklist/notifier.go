package tasklist

import "errors"

// Notifier receives the one-line user-visible notifications emitted at
// operation boundaries. Every failure is surfaced exactly once; none
// propagate past the controller as anything but a returned error.
// Implementations decide presentation: styled terminal lines, a TUI
// status bar, or a test recorder.
type Notifier interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Info(format string, args ...any)  {}
func (NopNotifier) Warn(format string, args ...any)  {}
func (NopNotifier) Error(format string, args ...any) {}

// notifiedError marks an error that was already surfaced through the
// Notifier, so bindings can avoid reporting it twice.
type notifiedError struct{ err error }

func (e *notifiedError) Error() string { return e.err.Error() }
func (e *notifiedError) Unwrap() error { return e.err }

func notified(err error) error {
	if err == nil {
		return nil
	}
	return &notifiedError{err: err}
}

// IsNotified reports whether err was already surfaced through a
// Notifier.
func IsNotified(err error) bool {
	var target *notifiedError
	return errors.As(err, &target)
}
