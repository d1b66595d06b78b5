package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hyperjump/yomu/internal/models"
)

var errReadOnly = errors.New("store is read-only")

// ReplaceKanji drops kanji_jlpt, recreates it and inserts entries in one transaction.
func (s *SQLiteStore) ReplaceKanji(ctx context.Context, entries []models.KanjiMetadata) error {
	return s.writeKanji(ctx, entries, true)
}

// UpsertKanji inserts entries, replacing existing rows for the same character.
func (s *SQLiteStore) UpsertKanji(ctx context.Context, entries []models.KanjiMetadata) error {
	return s.writeKanji(ctx, entries, false)
}

func (s *SQLiteStore) writeKanji(ctx context.Context, entries []models.KanjiMetadata, replace bool) error {
	if s.readOnly {
		return errReadOnly
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS kanji_jlpt`); err != nil {
			return fmt.Errorf("failed to drop kanji table: %w", err)
		}
		if _, err := tx.ExecContext(ctx, kanjiTableSchema); err != nil {
			return fmt.Errorf("failed to create kanji table: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO kanji_jlpt (kanji, jlpt_level, freq_mainichi_shinbun, grade)
		 VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			e.Character, nullInt(e.JLPTLevel), nullInt(e.FrequencyRank), nullInt(e.SchoolGrade),
		); err != nil {
			return fmt.Errorf("failed to insert kanji %q: %w", e.Character, err)
		}
	}
	return tx.Commit()
}

// InsertWords appends entries to the words table in one transaction, preserving their order.
func (s *SQLiteStore) InsertWords(ctx context.Context, entries []models.TranslationEntry) error {
	if s.readOnly {
		return errReadOnly
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO words (kanji_form, kana_form, translations) VALUES (?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			nullString(e.KanjiForm), nullString(e.KanaForm), strings.Join(e.Translations, TranslationSeparator),
		); err != nil {
			return fmt.Errorf("failed to insert word %q: %w", e.KanjiForm, err)
		}
	}
	return tx.Commit()
}

// nullString stores empty forms as NULL so they never match a lookup key.
func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
