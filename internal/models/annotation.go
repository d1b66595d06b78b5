// Package models defines the data structures produced and consumed by the annotation pipeline.
package models

import "encoding/json"

// Morpheme is one segment produced by the segmenter, in source order.
type Morpheme struct {
	Surface string `json:"surface"`
	Lemma   string `json:"lemma"`
	Reading string `json:"reading"`
}

// KanjiMetadata holds the reference data for a single ideograph. Nil fields are unknown.
type KanjiMetadata struct {
	Character     string `json:"kanji"`
	JLPTLevel     *int   `json:"jlpt_level"`
	FrequencyRank *int   `json:"freq_mainichi_shinbun"`
	SchoolGrade   *int   `json:"grade"`
}

// TokenKind discriminates the two AnnotatedToken variants.
type TokenKind string

const (
	// KindWord marks a kanji-bearing morpheme.
	KindWord TokenKind = "word"
	// KindText marks any other morpheme.
	KindText TokenKind = "text"
)

// AnnotatedToken is either a *WordToken or a *TextToken.
type AnnotatedToken interface {
	Kind() TokenKind
}

// WordToken is a kanji-bearing morpheme enriched with reading, translation and per-character metadata.
type WordToken struct {
	Surface       string
	Furigana      string
	Translation   string
	SequenceID    int
	KanjiMetadata []KanjiMetadata
}

// Kind implements AnnotatedToken.
func (*WordToken) Kind() TokenKind { return KindWord }

// MarshalJSON emits the wire form. The reveal flags belong to the presentation layer and are always false here.
func (w *WordToken) MarshalJSON() ([]byte, error) {
	levels := w.KanjiMetadata
	if levels == nil {
		levels = []KanjiMetadata{}
	}
	return json.Marshal(struct {
		Type            TokenKind       `json:"type"`
		Kanji           string          `json:"kanji"`
		Furigana        string          `json:"furigana"`
		Translation     string          `json:"translation"`
		ID              int             `json:"id"`
		ShowFurigana    bool            `json:"showFurigana"`
		ShowTranslation bool            `json:"showTranslation"`
		KanjiLevels     []KanjiMetadata `json:"kanji_levels"`
	}{
		Type:        KindWord,
		Kanji:       w.Surface,
		Furigana:    w.Furigana,
		Translation: w.Translation,
		ID:          w.SequenceID,
		KanjiLevels: levels,
	})
}

// TextToken is a morpheme without any kanji.
type TextToken struct {
	Value string
}

// Kind implements AnnotatedToken.
func (*TextToken) Kind() TokenKind { return KindText }

// MarshalJSON emits the wire form.
func (t *TextToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  TokenKind `json:"type"`
		Value string    `json:"value"`
	}{Type: KindText, Value: t.Value})
}

// AnnotationPage is the result of annotating one window of a document.
// TotalLength is the length of the whole document in code points, not of the window.
type AnnotationPage struct {
	Sentences   [][]AnnotatedToken
	TotalLength int
}

// WordTokens returns every WordToken on the page in emission order.
func (p *AnnotationPage) WordTokens() []*WordToken {
	var out []*WordToken
	for _, sentence := range p.Sentences {
		for _, tok := range sentence {
			if w, ok := tok.(*WordToken); ok {
				out = append(out, w)
			}
		}
	}
	return out
}

// MarshalJSON emits {"data": [...], "totalLength": n}.
func (p *AnnotationPage) MarshalJSON() ([]byte, error) {
	data := p.Sentences
	if data == nil {
		data = [][]AnnotatedToken{}
	}
	return json.Marshal(struct {
		Data        [][]AnnotatedToken `json:"data"`
		TotalLength int                `json:"totalLength"`
	}{Data: data, TotalLength: p.TotalLength})
}
