// Package annotate turns a window of Japanese text into sentences of word and text tokens.
package annotate

import (
	"context"

	"github.com/hyperjump/yomu/internal/models"
)

// KanjiTable looks up per-character metadata. A miss is (nil, nil).
type KanjiTable interface {
	LookupKanji(ctx context.Context, char rune) (*models.KanjiMetadata, error)
}

// TranslationTable looks up translation candidates by lemma or reading. A miss is (nil, nil).
type TranslationTable interface {
	LookupTranslations(ctx context.Context, lemma, reading string) ([]string, error)
}
