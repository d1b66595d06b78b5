package annotate

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	// MaxTranslations is the number of candidates kept from a dictionary entry.
	MaxTranslations = 2
	// TranslationSeparator joins the kept candidates.
	TranslationSeparator = " | "
)

// Translator resolves a lemma or reading to a display translation.
type Translator struct {
	table  TranslationTable
	logger *zap.Logger
}

// NewTranslator creates a Translator. table may be nil, in which case every lookup is empty.
func NewTranslator(table TranslationTable, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{table: table, logger: logger}
}

// Lookup returns the first MaxTranslations candidates joined by TranslationSeparator,
// or "" when nothing matches or the table fails.
func (t *Translator) Lookup(ctx context.Context, lemma, reading string) string {
	if t.table == nil {
		return ""
	}
	candidates, err := t.table.LookupTranslations(ctx, lemma, reading)
	if err != nil {
		t.logger.Debug("translation lookup failed",
			zap.String("lemma", lemma),
			zap.String("reading", reading),
			zap.Error(err),
		)
		return ""
	}
	if len(candidates) > MaxTranslations {
		candidates = candidates[:MaxTranslations]
	}
	return strings.Join(candidates, TranslationSeparator)
}
