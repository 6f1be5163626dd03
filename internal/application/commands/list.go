package commands

import (
	"context"

	"linkdir/internal/application"
	"linkdir/internal/domain"
	"linkdir/internal/ports"
)

// ListResult is one slice of a filtered listing
type ListResult struct {
	Links   []domain.Link // Revealed prefix of the filtered links
	Total   int           // Number of links passing the filter
	Pages   int           // Pages revealed
	HasMore bool
}

// ListLinksCommand filters, sorts and paginates the dataset
type ListLinksCommand struct {
	source   ports.LinkSource
	engine   domain.Engine
	pageSize int

	Filter domain.Filter
	Pages  int  // Pages to reveal; values below 1 reveal one page
	All    bool // Reveal every matching link
}

// NewListLinksCommand creates a new ListLinksCommand
func NewListLinksCommand(source ports.LinkSource, engine domain.Engine, pageSize int, filter domain.Filter) *ListLinksCommand {
	return &ListLinksCommand{
		source:   source,
		engine:   engine,
		pageSize: pageSize,
		Filter:   filter,
		Pages:    1,
	}
}

// Execute runs the list command
func (c *ListLinksCommand) Execute(ctx context.Context) (*ListResult, error) {
	ds, err := c.source.Load()
	if err != nil {
		return nil, err
	}

	dir := application.NewDirectory(ds, c.engine, c.pageSize)
	dir.SetFilter(c.Filter)

	for page := 1; c.All || page < c.Pages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !dir.LoadMore() {
			break
		}
	}

	return &ListResult{
		Links:   dir.Visible(),
		Total:   len(dir.Filtered()),
		Pages:   dir.Page(),
		HasMore: dir.HasMore(),
	}, nil
}

// CategorySummary is a category with the number of links in it
type CategorySummary struct {
	domain.Category
	Count int
}

// ListCategoriesCommand lists every category in the dataset
type ListCategoriesCommand struct {
	source ports.LinkSource
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(source ports.LinkSource) *ListCategoriesCommand {
	return &ListCategoriesCommand{source: source}
}

// Execute runs the list categories command
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]CategorySummary, error) {
	ds, err := c.source.Load()
	if err != nil {
		return nil, err
	}

	counts := ds.CategoryCounts()
	out := make([]CategorySummary, 0, len(ds.Categories))
	for _, cat := range ds.Categories {
		out = append(out, CategorySummary{Category: cat, Count: counts[cat.ID]})
	}
	return out, nil
}
