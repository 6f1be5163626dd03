package sqlite

import (
	"database/sql"

	"linkdir/internal/domain"
	"linkdir/internal/ports"
)

// storeTx implements ports.StoreTx
type storeTx struct {
	tx *sql.Tx
}

// Ensure storeTx implements StoreTx
var _ ports.StoreTx = (*storeTx)(nil)

// UpsertCategory inserts or updates a category, keeping its first position
func (t *storeTx) UpsertCategory(c *domain.Category) error {
	_, err := t.tx.Exec(`
		INSERT INTO categories (id, name, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM categories))
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, c.ID, c.Name)
	return err
}

// UpsertLink inserts or updates a link
func (t *storeTx) UpsertLink(l *domain.Link, position int) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO links (id, name, description, url, category_id, rating, date_added, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, l.ID, l.Name, l.Description, l.URL, l.CategoryID, nullRating(l.Rating), nullDate(l.DateAdded), position)
	return err
}

// DeleteAll removes every link and category
func (t *storeTx) DeleteAll() error {
	if _, err := t.tx.Exec(`DELETE FROM links`); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM categories`)
	return err
}

// Commit commits the transaction
func (t *storeTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *storeTx) Rollback() error {
	return t.tx.Rollback()
}
