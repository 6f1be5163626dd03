package commands

import (
	"context"
	"fmt"

	"linkdir/internal/application"
	"linkdir/internal/domain"
	"linkdir/internal/ports"
)

// GetLinkCommand resolves a single link by ID
type GetLinkCommand struct {
	source ports.LinkSource
	ID     string
}

// NewGetLinkCommand creates a new GetLinkCommand
func NewGetLinkCommand(source ports.LinkSource, id string) *GetLinkCommand {
	return &GetLinkCommand{source: source, ID: id}
}

// Execute runs the get command
func (c *GetLinkCommand) Execute(ctx context.Context) (*domain.Link, error) {
	if err := application.ValidateRequired("linkID", c.ID); err != nil {
		return nil, err
	}

	ds, err := c.source.Load()
	if err != nil {
		return nil, err
	}

	link, ok := ds.LinkByID(c.ID)
	if !ok {
		return nil, fmt.Errorf("link %s: %w", c.ID, application.ErrNotFound)
	}
	return &link, nil
}

// VisitCommand opens a link's destination with the system handler
type VisitCommand struct {
	source ports.LinkSource
	opener ports.URLOpener
	ID     string
}

// NewVisitCommand creates a new VisitCommand
func NewVisitCommand(source ports.LinkSource, opener ports.URLOpener, id string) *VisitCommand {
	return &VisitCommand{
		source: source,
		opener: opener,
		ID:     id,
	}
}

// Execute resolves the link and opens it. The opener does not wait for
// the browser, so success only means the handler was started.
func (c *VisitCommand) Execute(ctx context.Context) (*domain.Link, error) {
	link, err := NewGetLinkCommand(c.source, c.ID).Execute(ctx)
	if err != nil {
		return nil, err
	}
	if err := application.ValidateURL("url", link.URL); err != nil {
		return nil, err
	}
	if err := c.opener.Open(link.URL); err != nil {
		return nil, fmt.Errorf("opening %s: %w", link.URL, err)
	}
	return link, nil
}
