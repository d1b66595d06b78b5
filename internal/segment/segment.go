// Package segment adapts a morphological analyzer to the Morpheme sequence the pipeline consumes.
package segment

import (
	"errors"
	"fmt"

	"github.com/hyperjump/yomu/internal/models"
)

// ErrSegmentation matches any SegmentationError via errors.Is.
var ErrSegmentation = errors.New("segmentation failed")

// Segmenter splits one sentence into morphemes in source order.
// Implementations must be safe for concurrent use.
type Segmenter interface {
	Segment(sentence string) ([]models.Morpheme, error)
}

// SegmentationError reports that the analyzer could not process a sentence.
// It is the only failure that aborts a page.
type SegmentationError struct {
	Sentence string
	Err      error
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("%v: %q: %v", ErrSegmentation, e.Sentence, e.Err)
}

// Unwrap returns the underlying analyzer error.
func (e *SegmentationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrSegmentation.
func (e *SegmentationError) Is(target error) bool { return target == ErrSegmentation }
