package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperjump/yomu/internal/models"
)

// Words reads a JSON array of dictionary entries, skipping entries with no form or no translation.
func Words(r io.Reader) ([]models.TranslationEntry, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode words: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("failed to decode words: expected array, got %v", tok)
	}

	var out []models.TranslationEntry
	for dec.More() {
		var e models.TranslationEntry
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode word %d: %w", len(out), err)
		}
		if (e.KanjiForm == "" && e.KanaForm == "") || len(e.Translations) == 0 {
			continue
		}
		out = append(out, e)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to decode words: %w", err)
	}
	return out, nil
}
