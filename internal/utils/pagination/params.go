// Package pagination parses the page/size query parameters shared by every
// listing endpoint.
package pagination

import "strconv"

const (
	// DefaultSize is the page size used when the client sends none.
	DefaultSize = 20
	// MaxSize caps the page size a client may request.
	MaxSize = 200
)

// ParsePage parses a zero-based page number, defaulting to 0.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// ParseSize parses a page size, defaulting and clamping to sane bounds.
func ParseSize(raw string) int {
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		return DefaultSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}
