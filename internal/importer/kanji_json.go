package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/hyperjump/yomu/internal/models"
)

// KanjiJSON reads an object keyed by character, e.g. {"猫": {"jlpt": 3, "freq_mainichi_shinbun": 1702, "grade": 8}}.
// Only characters whose details carry a "jlpt" key are returned, sorted by character.
func KanjiJSON(r io.Reader) ([]models.KanjiMetadata, error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode kanji json: %w", err)
	}

	chars := make([]string, 0, len(raw))
	for char, details := range raw {
		if _, ok := details["jlpt"]; ok {
			chars = append(chars, char)
		}
	}
	sort.Strings(chars)

	out := make([]models.KanjiMetadata, 0, len(chars))
	for _, char := range chars {
		details := raw[char]
		meta := models.KanjiMetadata{Character: char}
		var err error
		if meta.JLPTLevel, err = optionalInt(details, "jlpt"); err != nil {
			return nil, fmt.Errorf("kanji %q: %w", char, err)
		}
		if meta.FrequencyRank, err = optionalInt(details, "freq_mainichi_shinbun"); err != nil {
			return nil, fmt.Errorf("kanji %q: %w", char, err)
		}
		if meta.SchoolGrade, err = optionalInt(details, "grade"); err != nil {
			return nil, fmt.Errorf("kanji %q: %w", char, err)
		}
		out = append(out, meta)
	}
	return out, nil
}

// optionalInt decodes details[key]; absent keys and JSON null give nil.
func optionalInt(details map[string]json.RawMessage, key string) (*int, error) {
	v, ok := details[key]
	if !ok {
		return nil, nil
	}
	var n *int
	if err := json.Unmarshal(v, &n); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
