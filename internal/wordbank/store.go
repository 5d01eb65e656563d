package wordbank

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by ByID for an unknown id.
var ErrNotFound = errors.New("word not found")

const driverName = "sqlite3_wordbank"

func init() {
	// fold gives SQLite Unicode-aware lower-casing for Greek search.
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("fold", strings.ToLower, true)
		},
	})
}

const wordColumns = `id, category, greek_word, romanization, english_meaning,
	greek_sentence, sentence_romanization, english_sentence`

// Store is a SQLite-backed word bank.
type Store struct {
	db *sql.DB
}

// Open opens or creates the word bank at path. ":memory:" gives a private
// in-memory store.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word bank: %w", err)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS words (
		id text PRIMARY KEY,
		category text NOT NULL,
		greek_word text NOT NULL,
		romanization text NOT NULL,
		english_meaning text NOT NULL,
		greek_sentence text NOT NULL,
		sentence_romanization text NOT NULL,
		english_sentence text NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create words table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS ix_words_category ON words (category)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create category index: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Import inserts words, replacing existing words with the same id.
func (s *Store) Import(ctx context.Context, words []Word) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (`+wordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			greek_word = excluded.greek_word,
			romanization = excluded.romanization,
			english_meaning = excluded.english_meaning,
			greek_sentence = excluded.greek_sentence,
			sentence_romanization = excluded.sentence_romanization,
			english_sentence = excluded.english_sentence`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare import: %w", err)
	}
	defer stmt.Close()

	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, w.ID, w.Category, w.Greek, w.Romanization, w.English,
			w.GreekSentence, w.SentenceRomanization, w.EnglishSentence); err != nil {
			return 0, fmt.Errorf("failed to import word %s: %w", w.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return len(words), nil
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return n, nil
}

// Categories returns the distinct categories in sorted order, leaving out
// blank ones and the literal header value "category".
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT category FROM words
		WHERE trim(category) != '' AND fold(category) != 'category'
		ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// All returns every word in import order.
func (s *Store) All(ctx context.Context) ([]Word, error) {
	return s.query(ctx, `SELECT `+wordColumns+` FROM words ORDER BY rowid`)
}

// ByCategory returns the words of category in import order.
func (s *Store) ByCategory(ctx context.Context, category string) ([]Word, error) {
	return s.query(ctx, `SELECT `+wordColumns+` FROM words WHERE category = ? ORDER BY rowid`, category)
}

// Search returns words whose Greek word, romanization, English meaning or
// example sentences contain query, ignoring case.
func (s *Store) Search(ctx context.Context, query string) ([]Word, error) {
	q := strings.ToLower(query)
	return s.query(ctx, `SELECT `+wordColumns+` FROM words
		WHERE instr(fold(greek_word), ?1) > 0
			OR instr(fold(romanization), ?1) > 0
			OR instr(fold(english_meaning), ?1) > 0
			OR instr(fold(greek_sentence), ?1) > 0
			OR instr(fold(english_sentence), ?1) > 0
		ORDER BY rowid`, q)
}

// ByID returns the word with id or ErrNotFound.
func (s *Store) ByID(ctx context.Context, id string) (Word, error) {
	words, err := s.query(ctx, `SELECT `+wordColumns+` FROM words WHERE id = ?`, id)
	if err != nil {
		return Word{}, err
	}
	if len(words) == 0 {
		return Word{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return words[0], nil
}

// Random returns up to n words in random order.
func (s *Store) Random(ctx context.Context, n int) ([]Word, error) {
	if n <= 0 {
		return nil, nil
	}
	return s.query(ctx, `SELECT `+wordColumns+` FROM words ORDER BY random() LIMIT ?`, n)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Word, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.ID, &w.Category, &w.Greek, &w.Romanization, &w.English,
			&w.GreekSentence, &w.SentenceRomanization, &w.EnglishSentence); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
