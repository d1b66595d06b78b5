// Package storage defines the read-only dictionary store the annotation pipeline looks words and kanji up in.
package storage

import (
	"context"

	"github.com/hyperjump/yomu/internal/models"
)

// TranslationSeparator joins candidate translations in the words table.
const TranslationSeparator = " | "

// Store is the dictionary store. Lookups are safe for concurrent use.
// A miss is not an error: LookupKanji returns (nil, nil) and LookupTranslations returns (nil, nil).
type Store interface {
	// LookupKanji returns the metadata for a single character.
	LookupKanji(ctx context.Context, char rune) (*models.KanjiMetadata, error)
	// LookupTranslations returns the candidates of the first entry whose kanji form equals lemma
	// or whose kana form equals reading.
	LookupTranslations(ctx context.Context, lemma, reading string) ([]string, error)

	// Stats
	CountKanji(ctx context.Context) (int64, error)
	CountWords(ctx context.Context) (int64, error)

	Close() error
}
