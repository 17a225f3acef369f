package task

import (
	"net/url"
	"strings"
)

// ProxyURL returns the Media Service fetch URL for a stored file key.
// The key is query-encoded so storage keys containing spaces, slashes,
// or ampersands survive the round trip.
func ProxyURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/media/file?path=" + url.QueryEscape(key)
}

// HasScheme reports whether value is already a fetchable http(s) URL
// rather than a bare storage key.
func HasScheme(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// ResolveImageSrc derives the display URL for a task's image from its
// image reference fields and the backend base address:
//
//  1. ImagePath set: proxy fetch through the backend.
//  2. ImageURL set and fully qualified: used verbatim (signed URL).
//  3. ImageURL set but bare: treated as a storage key and proxied.
//  4. Neither: empty string, no image to render.
//
// ImagePath takes precedence when both fields are present.
func ResolveImageSrc(base string, t Task) string {
	switch {
	case t.ImagePath != "":
		return ProxyURL(base, t.ImagePath)
	case t.ImageURL == "":
		return ""
	case HasScheme(t.ImageURL):
		return t.ImageURL
	default:
		return ProxyURL(base, t.ImageURL)
	}
}
