package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperjump/yomu/internal/models"
)

// DriverType returns "cgo" for mattn/go-sqlite3 or "purego" for modernc.org/sqlite (build tag purego_sqlite).
func DriverType() string {
	return driverType
}

// SQLiteStore implements Store over the words and kanji_jlpt tables.
type SQLiteStore struct {
	db       *sql.DB
	readOnly bool
}

// Option configures Open.
type Option func(*SQLiteStore)

// ReadOnly opens the database in read-only mode and skips schema creation.
func ReadOnly() Option {
	return func(s *SQLiteStore) { s.readOnly = true }
}

// Open opens the SQLite database at dbPath. Unless ReadOnly is given, parent directories are created
// and the schema is initialized.
func Open(dbPath string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{}
	for _, opt := range opts {
		opt(s)
	}

	dsn := dbPath
	if s.readOnly {
		if _, err := os.Stat(dbPath); err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		dsn = "file:" + dbPath + "?mode=ro"
	} else if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if !s.readOnly {
		if err := initSchema(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return s, nil
}

const kanjiTableSchema = `
	CREATE TABLE IF NOT EXISTS kanji_jlpt (
		kanji TEXT PRIMARY KEY,
		jlpt_level INTEGER,
		freq_mainichi_shinbun INTEGER,
		grade INTEGER
	);`

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS words (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kanji_form TEXT,
		kana_form TEXT,
		translations TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_words_kanji_form ON words(kanji_form);
	CREATE INDEX IF NOT EXISTS idx_words_kana_form ON words(kana_form);
	` + kanjiTableSchema
	_, err := db.Exec(schema)
	return err
}

// LookupKanji returns the metadata for char, or nil when the table has no row for it.
func (s *SQLiteStore) LookupKanji(ctx context.Context, char rune) (*models.KanjiMetadata, error) {
	var jlpt, freq, grade sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT jlpt_level, freq_mainichi_shinbun, grade FROM kanji_jlpt WHERE kanji = ?`,
		string(char),
	).Scan(&jlpt, &freq, &grade)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up kanji %q: %w", char, err)
	}
	return &models.KanjiMetadata{
		Character:     string(char),
		JLPTLevel:     nullableInt(jlpt),
		FrequencyRank: nullableInt(freq),
		SchoolGrade:   nullableInt(grade),
	}, nil
}

// LookupTranslations returns the candidates of the earliest matching row, split on TranslationSeparator.
// Rows are ordered by rowid so tables built without an id column work too.
func (s *SQLiteStore) LookupTranslations(ctx context.Context, lemma, reading string) ([]string, error) {
	var joined string
	err := s.db.QueryRowContext(ctx,
		`SELECT translations FROM words WHERE kanji_form = ? OR kana_form = ?
		 ORDER BY rowid LIMIT 1`,
		lemma, reading,
	).Scan(&joined)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up translations for %q: %w", lemma, err)
	}
	if joined == "" {
		return nil, nil
	}
	return strings.Split(joined, TranslationSeparator), nil
}

// CountKanji returns the number of rows in kanji_jlpt.
func (s *SQLiteStore) CountKanji(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kanji_jlpt`).Scan(&count)
	return count, err
}

// CountWords returns the number of rows in words.
func (s *SQLiteStore) CountWords(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
