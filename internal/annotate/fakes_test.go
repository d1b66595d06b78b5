package annotate

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/hyperjump/yomu/internal/models"
)

func intPtr(n int) *int { return &n }

// fakeSegmenter splits on the fixed morphemes in dict, longest match first, falling back to single runes.
type fakeSegmenter struct {
	dict map[string]models.Morpheme
	fail string
}

func (f *fakeSegmenter) Segment(sentence string) ([]models.Morpheme, error) {
	if f.fail != "" && strings.Contains(sentence, f.fail) {
		return nil, errors.New("analyzer exploded")
	}
	var out []models.Morpheme
	runes := []rune(sentence)
	for i := 0; i < len(runes); {
		matched := false
		for j := len(runes); j > i; j-- {
			if m, ok := f.dict[string(runes[i:j])]; ok {
				out = append(out, m)
				i = j
				matched = true
				break
			}
		}
		if !matched {
			s := string(runes[i])
			out = append(out, models.Morpheme{Surface: s, Lemma: s})
			i++
		}
	}
	return out, nil
}

var catSegmenter = &fakeSegmenter{dict: map[string]models.Morpheme{
	"猫":  {Surface: "猫", Lemma: "猫", Reading: "ネコ"},
	"が":  {Surface: "が", Lemma: "が", Reading: "ガ"},
	"好き": {Surface: "好き", Lemma: "好き", Reading: "スキ"},
	"です": {Surface: "です", Lemma: "です", Reading: "デス"},
	"犬":  {Surface: "犬", Lemma: "犬", Reading: "イヌ"},
	"人々": {Surface: "人々", Lemma: "人々", Reading: "ヒトビト"},
	"人人": {Surface: "人人", Lemma: "人人", Reading: "ヒトビト"},
}}

type fakeKanji struct {
	mu    sync.Mutex
	rows  map[rune]models.KanjiMetadata
	err   error
	calls []rune
}

func (f *fakeKanji) LookupKanji(_ context.Context, char rune) (*models.KanjiMetadata, error) {
	f.mu.Lock()
	f.calls = append(f.calls, char)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if m, ok := f.rows[char]; ok {
		return &m, nil
	}
	return nil, nil
}

func newFakeKanji() *fakeKanji {
	return &fakeKanji{rows: map[rune]models.KanjiMetadata{
		'猫': {Character: "猫", JLPTLevel: intPtr(3), FrequencyRank: intPtr(1702), SchoolGrade: intPtr(8)},
		'好': {Character: "好", JLPTLevel: intPtr(4), FrequencyRank: intPtr(423), SchoolGrade: intPtr(4)},
		'人': {Character: "人", JLPTLevel: intPtr(5), SchoolGrade: intPtr(1)},
	}}
}

type fakeTranslations struct {
	mu    sync.Mutex
	rows  map[string][]string
	err   error
	calls int
}

func (f *fakeTranslations) LookupTranslations(_ context.Context, lemma, reading string) ([]string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.rows[lemma]; ok {
		return t, nil
	}
	return f.rows[reading], nil
}

func newFakeTranslations() *fakeTranslations {
	return &fakeTranslations{rows: map[string][]string{
		"猫":   {"cat", "shamisen", "geisha"},
		"すき":  {"liked", "well-liked"},
		"いぬ":  {"dog"},
	}}
}
