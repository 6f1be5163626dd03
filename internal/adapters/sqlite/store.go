package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"linkdir/internal/application"
	"linkdir/internal/config"
	"linkdir/internal/domain"
	"linkdir/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.LinkStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements LinkStore
var _ ports.LinkStore = (*Store)(nil)

// NewStore creates a new SQLite store
func NewStore() *Store {
	return &Store{}
}

// DefaultPath returns $XDG_DATA_HOME/linkdir/links.db
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "linkdir", "links.db")
}

// Open opens (creating if needed) the database at path.
// An empty path uses DefaultPath.
func (s *Store) Open(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	s.dbPath = config.ExpandHome(path)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS links (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL,
			category_id TEXT NOT NULL DEFAULT '',
			rating REAL,
			date_added INTEGER,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_position ON links(position);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file in use
func (s *Store) Path() string {
	return s.dbPath
}

// Load returns the stored dataset in insertion order
func (s *Store) Load() (domain.Dataset, error) {
	categories, err := s.loadCategories()
	if err != nil {
		return domain.Dataset{}, err
	}

	rows, err := s.db.Query(`
		SELECT id, name, description, url, category_id, rating, date_added
		FROM links ORDER BY position, rowid
	`)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		l, err := scanLink(rows, false)
		if err != nil {
			return domain.Dataset{}, err
		}
		links = append(links, *l)
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, err
	}

	return domain.NewDataset(links, categories), nil
}

func (s *Store) loadCategories() ([]domain.Category, error) {
	rows, err := s.db.Query(`SELECT id, name FROM categories ORDER BY position, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetLink retrieves a link by ID, with its category name resolved
func (s *Store) GetLink(id string) (*domain.Link, error) {
	row := s.db.QueryRow(`
		SELECT l.id, l.name, l.description, l.url, l.category_id, l.rating, l.date_added,
			COALESCE(c.name, '')
		FROM links l LEFT JOIN categories c ON c.id = l.category_id
		WHERE l.id = ?
	`, id)

	l, err := scanLink(row, true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("link %s: %w", id, application.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// CountLinks returns the number of stored links
func (s *Store) CountLinks() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&n)
	return n, err
}

// BeginTx starts a new transaction
func (s *Store) BeginTx() (ports.StoreTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &storeTx{tx: tx}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanLink reads the link columns, plus the joined category name when withCategory is set
func scanLink(row scanner, withCategory bool) (*domain.Link, error) {
	var l domain.Link
	var rating sql.NullFloat64
	var added sql.NullInt64

	dest := []any{&l.ID, &l.Name, &l.Description, &l.URL, &l.CategoryID, &rating, &added}
	if withCategory {
		dest = append(dest, &l.CategoryName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	l.Rating = math.NaN()
	if rating.Valid {
		l.Rating = rating.Float64
	}
	if added.Valid {
		l.DateAdded = time.Unix(added.Int64, 0).UTC()
	}
	return &l, nil
}

func nullRating(r float64) any {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil
	}
	return r
}

func nullDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Unix()
}
