package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hyperjump/yomu/internal/importer"
	"github.com/hyperjump/yomu/internal/storage"
)

// ImportGroup contains the table builders.
type ImportGroup struct {
	KanjiJSON ImportKanjiJSONCmd `cmd:"" name:"kanji-json" help:"Rebuild the kanji table from kanji_jlpt.json (entries without a jlpt key are skipped)."`
	Kanjidic2 ImportKanjidic2Cmd `cmd:"" name:"kanjidic2" help:"Upsert kanji from a KANJIDIC2 XML file."`
	Words     ImportWordsCmd     `cmd:"" help:"Append translations from a JSON word list."`
}

// ImportKanjiJSONCmd rebuilds kanji_jlpt from a JSON object keyed by character.
type ImportKanjiJSONCmd struct {
	Path string `arg:"" help:"kanji_jlpt.json, optionally .gz or .xz compressed." type:"existingfile"`
}

func (c *ImportKanjiJSONCmd) Run(g *Globals) error {
	return runImport(g, c.Path, func(ctx context.Context, store *storage.SQLiteStore, r io.Reader) (int, error) {
		entries, err := importer.KanjiJSON(r)
		if err != nil {
			return 0, err
		}
		return len(entries), store.ReplaceKanji(ctx, entries)
	})
}

// ImportKanjidic2Cmd upserts kanji_jlpt rows from KANJIDIC2.
type ImportKanjidic2Cmd struct {
	Path string `arg:"" help:"kanjidic2.xml, optionally .gz or .xz compressed." type:"existingfile"`
}

func (c *ImportKanjidic2Cmd) Run(g *Globals) error {
	return runImport(g, c.Path, func(ctx context.Context, store *storage.SQLiteStore, r io.Reader) (int, error) {
		entries, err := importer.Kanjidic2(r)
		if err != nil {
			return 0, err
		}
		return len(entries), store.UpsertKanji(ctx, entries)
	})
}

// ImportWordsCmd appends rows to the words table.
type ImportWordsCmd struct {
	Path string `arg:"" help:"JSON array of {kanji_form, kana_form, translations}, optionally .gz or .xz compressed." type:"existingfile"`
}

func (c *ImportWordsCmd) Run(g *Globals) error {
	return runImport(g, c.Path, func(ctx context.Context, store *storage.SQLiteStore, r io.Reader) (int, error) {
		entries, err := importer.Words(r)
		if err != nil {
			return 0, err
		}
		return len(entries), store.InsertWords(ctx, entries)
	})
}

type importFunc func(ctx context.Context, store *storage.SQLiteStore, r io.Reader) (int, error)

func runImport(g *Globals, path string, fn importFunc) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	src, err := importer.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	store, err := storage.Open(cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := fn(context.Background(), store, src)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	logger.Info("import finished", zap.String("path", path), zap.Int("entries", n),
		zap.String("database_path", cfg.Storage.DatabasePath))
	fmt.Fprintf(g.stdout, "Imported %d entries from %s into %s\n", n, path, cfg.Storage.DatabasePath)
	return nil
}
