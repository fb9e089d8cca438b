// Package corpus persists the append-only set of captured training pages.
package corpus

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"trainingcopilot/models"
)

const DefaultDBName = "training-copilot.db"

// Store is the SQLite-backed corpus. Every Append is a single committed
// INSERT, so an entry is durable by the time Append returns.
type Store struct {
	db   *sql.DB
	path string
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return sqlDB, nil
}

// Open opens or creates the corpus database next to the binary.
func Open() (*Store, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	return OpenPath(filepath.Join(filepath.Dir(execPath), DefaultDBName))
}

// OpenPath opens or creates the corpus database at an explicit path.
func OpenPath(dbPath string) (*Store, error) {
	sqlDB, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{
		db:   sqlDB,
		path: dbPath,
	}

	// Auto-initialize schema if it doesn't exist
	if err := s.ensureSchemaExists(); err != nil {
		_ = s.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not
func (s *Store) ensureSchemaExists() error {
	var tableName string
	err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='training_pages'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return s.InitSchema()
	}

	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	return nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// InitSchema initializes the database schema
func (s *Store) InitSchema() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores one captured page. The content is clamped to the page
// content cap before writing.
func (s *Store) Append(page models.TrainingPage) error {
	if page.CapturedAt.IsZero() {
		page.CapturedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO training_pages (url, title, content, lang, captured_at)
		VALUES (?, ?, ?, ?, ?)
	`, page.URL, page.Title, models.ClampContent(page.Content), page.Lang, page.CapturedAt)
	if err != nil {
		return fmt.Errorf("failed to append training page: %w", err)
	}
	return nil
}

// All returns every training page in insertion order.
func (s *Store) All() ([]models.TrainingPage, error) {
	rows, err := s.db.Query(`
		SELECT url, title, content, lang, captured_at
		FROM training_pages
		ORDER BY page_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query training pages: %w", err)
	}
	defer rows.Close()

	var pages []models.TrainingPage
	for rows.Next() {
		var p models.TrainingPage
		var lang sql.NullString
		if err := rows.Scan(&p.URL, &p.Title, &p.Content, &lang, &p.CapturedAt); err != nil {
			return nil, fmt.Errorf("failed to scan training page: %w", err)
		}
		p.Lang = lang.String
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read training pages: %w", err)
	}
	return pages, nil
}

// Count returns the number of training pages in the corpus.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM training_pages").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count training pages: %w", err)
	}
	return n, nil
}
