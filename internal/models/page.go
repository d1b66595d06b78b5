package models

import "fmt"

const (
	// DefaultPageSize is used when a request does not name a page size.
	DefaultPageSize = 1000
)

// PageRequest is a request to annotate one window of a document.
type PageRequest struct {
	Text          string `json:"text"`
	StartPosition int    `json:"start_position"`
	PageSize      int    `json:"page_size,omitempty"`
}

// Validate normalizes the window: a negative start is an error, a missing size becomes defaultSize
// and sizes above maxSize are capped. A maxSize of 0 disables the cap.
func (r *PageRequest) Validate(defaultSize, maxSize int) error {
	if r.StartPosition < 0 {
		return fmt.Errorf("start_position must not be negative")
	}
	if r.PageSize < 0 {
		return fmt.Errorf("page_size must not be negative")
	}
	if r.PageSize == 0 {
		r.PageSize = defaultSize
		if r.PageSize <= 0 {
			r.PageSize = DefaultPageSize
		}
	}
	if maxSize > 0 && r.PageSize > maxSize {
		r.PageSize = maxSize
	}
	return nil
}
