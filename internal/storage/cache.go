package storage

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hyperjump/yomu/internal/models"
)

// DefaultCacheSize is the per-table entry limit used when NewCachedStore is given a non-positive size.
const DefaultCacheSize = 4096

// CachedStore keeps recent lookups, including misses, in front of another Store.
// Errors are never cached. The tables are read-only, so entries never go stale.
type CachedStore struct {
	Store
	kanji        *lru.Cache[rune, *models.KanjiMetadata]
	translations *lru.Cache[translationKey, []string]
}

type translationKey struct {
	lemma   string
	reading string
}

// NewCachedStore wraps store with two LRU caches of size entries each.
func NewCachedStore(store Store, size int) (*CachedStore, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	kanji, err := lru.New[rune, *models.KanjiMetadata](size)
	if err != nil {
		return nil, err
	}
	translations, err := lru.New[translationKey, []string](size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{Store: store, kanji: kanji, translations: translations}, nil
}

// LookupKanji implements Store.
func (c *CachedStore) LookupKanji(ctx context.Context, char rune) (*models.KanjiMetadata, error) {
	if meta, ok := c.kanji.Get(char); ok {
		return meta, nil
	}
	meta, err := c.Store.LookupKanji(ctx, char)
	if err != nil {
		return nil, err
	}
	c.kanji.Add(char, meta)
	return meta, nil
}

// LookupTranslations implements Store.
func (c *CachedStore) LookupTranslations(ctx context.Context, lemma, reading string) ([]string, error) {
	key := translationKey{lemma: lemma, reading: reading}
	if candidates, ok := c.translations.Get(key); ok {
		return candidates, nil
	}
	candidates, err := c.Store.LookupTranslations(ctx, lemma, reading)
	if err != nil {
		return nil, err
	}
	c.translations.Add(key, candidates)
	return candidates, nil
}
