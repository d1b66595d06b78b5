package annotate

import (
	"context"

	"go.uber.org/zap"

	"github.com/hyperjump/yomu/internal/japanese"
	"github.com/hyperjump/yomu/internal/models"
)

// Assembler emits one token per morpheme. Word ids are page-local: use a fresh Assembler per page.
type Assembler struct {
	kanji      KanjiTable
	translator *Translator
	logger     *zap.Logger
	lastID     int
}

// NewAssembler creates an Assembler whose first word token gets id 1.
func NewAssembler(kanji KanjiTable, translator *Translator, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if translator == nil {
		translator = NewTranslator(nil, logger)
	}
	return &Assembler{kanji: kanji, translator: translator, logger: logger}
}

// Assemble returns a TextToken for morphemes without kanji, performing no lookups,
// and a WordToken with the next id otherwise.
func (a *Assembler) Assemble(ctx context.Context, m models.Morpheme) models.AnnotatedToken {
	if !japanese.ContainsKanji(m.Surface) {
		return &models.TextToken{Value: m.Surface}
	}

	_, metadata := classify(ctx, m.Surface, a.kanji, a.logger)
	furigana := japanese.KatakanaToHiragana(m.Reading)
	a.lastID++
	return &models.WordToken{
		Surface:       m.Surface,
		Furigana:      furigana,
		Translation:   a.translator.Lookup(ctx, m.Lemma, furigana),
		SequenceID:    a.lastID,
		KanjiMetadata: metadata,
	}
}

// Emitted returns the number of word tokens assembled so far.
func (a *Assembler) Emitted() int {
	return a.lastID
}
