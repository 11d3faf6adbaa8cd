package core

import "strings"

// Normalize strips the query string and fragment from a page URL.
// Casing and trailing slashes are left alone.
func Normalize(url string) string {
	if idx := strings.IndexAny(url, "?#"); idx >= 0 {
		return url[:idx]
	}
	return url
}
