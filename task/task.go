// Package task defines the todo task model shared by the service
// clients and the list controller.
//
// A task row lives in the Records Service under the column names
// id, task, is_completed, image_path, image_url, and created_at.
// The optional image lives in object storage behind the Media Service
// proxy; ImageSrc is display state derived from the image reference
// fields and is never persisted.
package task

import "time"

// Task represents a single todo item.
type Task struct {
	// ID is the unique identifier assigned by the Records Service,
	// or a wall-clock fallback when the service omits the created row.
	ID int64 `json:"id"`

	// Text is the task description shown in the list.
	Text string `json:"task"`

	// Completed reports whether the task has been checked off.
	Completed bool `json:"is_completed"`

	// ImagePath is the storage key of an uploaded image, fetched
	// through the Media Service proxy.
	ImagePath string `json:"image_path,omitempty"`

	// ImageURL is either a fully-qualified (possibly signed) URL or a
	// bare storage key, depending on what the backend recorded.
	ImageURL string `json:"image_url,omitempty"`

	// ImageSrc is the resolved display URL. Derived, never stored.
	ImageSrc string `json:"-"`

	// CreatedAt orders the list; the canonical order is ascending.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// HasImage reports whether the task carries any image reference.
func (t Task) HasImage() bool {
	return t.ImagePath != "" || t.ImageURL != ""
}

// FallbackID returns a client-generated identifier for the path where
// the backend confirms a create without echoing the stored row.
// Wall-clock derived, so ids stay unique within a session.
func FallbackID(now time.Time) int64 {
	return now.UnixMilli()
}
