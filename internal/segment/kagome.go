package segment

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/hyperjump/yomu/internal/models"
)

const (
	// DictIPA selects the IPA dictionary.
	DictIPA = "ipa"
	// DictUni selects the UniDic dictionary.
	DictUni = "uni"
)

var errInvalidUTF8 = errors.New("input is not valid UTF-8")

// Kagome segments text with kagome in Normal mode, which keeps compounds whole instead of
// splitting them the way Search and Extended modes do.
type Kagome struct {
	t    *tokenizer.Tokenizer
	name string
}

// NewKagome builds a segmenter over the named system dictionary (DictIPA or DictUni).
func NewKagome(dictionary string) (*Kagome, error) {
	var d *dict.Dict
	switch dictionary {
	case DictIPA, "":
		d = ipa.Dict()
		dictionary = DictIPA
	case DictUni:
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("unknown segmenter dictionary: %s", dictionary)
	}
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}
	return &Kagome{t: t, name: dictionary}, nil
}

// Dictionary returns the name of the loaded system dictionary.
func (k *Kagome) Dictionary() string {
	return k.name
}

// Segment implements Segmenter. Analyzer panics are reported as SegmentationError.
func (k *Kagome) Segment(sentence string) (out []models.Morpheme, err error) {
	if !utf8.ValidString(sentence) {
		return nil, &SegmentationError{Sentence: sentence, Err: errInvalidUTF8}
	}
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &SegmentationError{Sentence: sentence, Err: fmt.Errorf("analyzer panic: %v", r)}
		}
	}()

	tokens := k.t.Analyze(sentence, tokenizer.Normal)
	out = make([]models.Morpheme, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		out = append(out, toMorpheme(tok))
	}
	return out, nil
}

func toMorpheme(tok tokenizer.Token) models.Morpheme {
	lemma, ok := tok.BaseForm()
	if !ok || lemma == "" || lemma == "*" {
		lemma = tok.Surface
	}
	reading, ok := tok.Reading()
	if !ok || reading == "*" {
		reading = ""
	}
	return models.Morpheme{
		Surface: tok.Surface,
		Lemma:   lemma,
		Reading: reading,
	}
}
