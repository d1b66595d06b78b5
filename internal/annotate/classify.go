package annotate

import (
	"context"

	"go.uber.org/zap"

	"github.com/hyperjump/yomu/internal/japanese"
	"github.com/hyperjump/yomu/internal/models"
)

// Classify reports whether surface contains a kanji and collects metadata for each kanji occurrence,
// repeats included, left to right. Characters with no metadata, or whose lookup fails, are omitted.
func Classify(ctx context.Context, surface string, table KanjiTable) (bool, []models.KanjiMetadata) {
	return classify(ctx, surface, table, zap.NewNop())
}

func classify(ctx context.Context, surface string, table KanjiTable, logger *zap.Logger) (bool, []models.KanjiMetadata) {
	hasKanji := false
	var metadata []models.KanjiMetadata
	for _, r := range surface {
		if !japanese.IsKanji(r) {
			continue
		}
		hasKanji = true
		if table == nil {
			continue
		}
		meta, err := table.LookupKanji(ctx, r)
		if err != nil {
			logger.Debug("kanji lookup failed", zap.String("kanji", string(r)), zap.Error(err))
			continue
		}
		if meta != nil {
			metadata = append(metadata, *meta)
		}
	}
	return hasKanji, metadata
}
