package annotate

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hyperjump/yomu/internal/japanese"
	"github.com/hyperjump/yomu/internal/models"
	"github.com/hyperjump/yomu/internal/segment"
)

// Annotator runs the window, split, segment and assemble pipeline.
// It holds no per-request state and is safe for concurrent use when its collaborators are.
type Annotator struct {
	segmenter    segment.Segmenter
	kanji        KanjiTable
	translations TranslationTable
	logger       *zap.Logger
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithLogger sets a logger for debug output (degraded lookups, page summaries).
func WithLogger(l *zap.Logger) Option {
	return func(a *Annotator) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnnotator creates an Annotator. kanji and translations may be nil, which degrades every
// word token to empty metadata and translation.
func NewAnnotator(seg segment.Segmenter, kanji KanjiTable, translations TranslationTable, opts ...Option) *Annotator {
	a := &Annotator{
		segmenter:    seg,
		kanji:        kanji,
		translations: translations,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnnotatePage annotates text[start:start+size], measured in code points. TotalLength is always the
// length of the whole text. A segmentation failure aborts the page and returns no partial output.
func (a *Annotator) AnnotatePage(ctx context.Context, text string, start, size int) (*models.AnnotationPage, error) {
	window, total := japanese.Page(text, start, size)
	page := &models.AnnotationPage{
		Sentences:   [][]models.AnnotatedToken{},
		TotalLength: total,
	}

	assembler := NewAssembler(a.kanji, NewTranslator(a.translations, a.logger), a.logger)
	for _, sentence := range japanese.SplitSentences(window) {
		morphemes, err := a.segmenter.Segment(sentence)
		if err != nil {
			if !errors.Is(err, segment.ErrSegmentation) {
				err = &segment.SegmentationError{Sentence: sentence, Err: err}
			}
			return nil, err
		}
		tokens := make([]models.AnnotatedToken, 0, len(morphemes))
		for _, m := range morphemes {
			tokens = append(tokens, assembler.Assemble(ctx, m))
		}
		page.Sentences = append(page.Sentences, tokens)
	}

	a.logger.Debug("annotated page",
		zap.Int("start", start),
		zap.Int("size", size),
		zap.Int("total_length", total),
		zap.Int("sentences", len(page.Sentences)),
		zap.Int("words", assembler.Emitted()),
	)
	return page, nil
}
