package commands

import (
	"context"
	"fmt"
	"time"

	"linkdir/internal/application"
	"linkdir/internal/domain"
	"linkdir/internal/ports"
)

// ImportCommand writes a dataset into a link store
type ImportCommand struct {
	store   ports.LinkStore
	Dataset domain.Dataset
	Replace bool // Delete existing rows first
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(store ports.LinkStore, ds domain.Dataset, replace bool) *ImportCommand {
	return &ImportCommand{
		store:   store,
		Dataset: ds,
		Replace: replace,
	}
}

// Execute runs the import in a single transaction
func (c *ImportCommand) Execute(ctx context.Context) (*domain.ImportStats, error) {
	start := time.Now()
	stats := &domain.ImportStats{Replaced: c.Replace}

	categories, catProblems := application.SanitizeCategories(c.Dataset.Categories)
	links, linkProblems := application.SanitizeLinks(c.Dataset.Links)
	stats.Skipped = len(catProblems) + len(linkProblems)

	// Appended links go after the existing rows
	base := 0
	if !c.Replace {
		n, err := c.store.CountLinks()
		if err != nil {
			return nil, fmt.Errorf("count links: %w", err)
		}
		base = n
	}

	tx, err := c.store.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}

	if err := c.write(ctx, tx, categories, links, base, stats); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

func (c *ImportCommand) write(ctx context.Context, tx ports.StoreTx, categories []domain.Category, links []domain.Link, base int, stats *domain.ImportStats) error {
	if c.Replace {
		if err := tx.DeleteAll(); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
	}

	for i := range categories {
		if err := tx.UpsertCategory(&categories[i]); err != nil {
			return fmt.Errorf("write category %s: %w", categories[i].ID, err)
		}
		stats.CategoriesWritten++
	}

	for i := range links {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := tx.UpsertLink(&links[i], base+i); err != nil {
			return fmt.Errorf("write link %s: %w", links[i].ID, err)
		}
		stats.LinksWritten++
	}

	return nil
}
