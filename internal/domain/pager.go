package domain

// DefaultPageSize is the number of links revealed per page
const DefaultPageSize = 12

// Pager reveals a filtered sequence one page at a time.
// The visible slice is always a prefix of the sequence it was last reset
// with, and only grows until the next Reset.
type Pager struct {
	pageSize int
	page     int
	visible  []Link
}

// NewPager creates a pager with the given page size
func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{
		pageSize: pageSize,
		page:     1,
	}
}

// PageSize returns the number of links per page
func (p *Pager) PageSize() int {
	return p.pageSize
}

// Page returns the number of pages loaded (1-based)
func (p *Pager) Page() int {
	return p.page
}

// Reset discards loaded pages and shows the first page of filtered
func (p *Pager) Reset(filtered []Link) {
	p.page = 1
	n := min(p.pageSize, len(filtered))
	p.visible = make([]Link, n, max(n, p.pageSize))
	copy(p.visible, filtered[:n])
}

// LoadMore appends the next page of filtered.
// Returns false, changing nothing, when there is no next page.
func (p *Pager) LoadMore(filtered []Link) bool {
	start := p.page * p.pageSize
	if start >= len(filtered) {
		return false
	}
	end := min(start+p.pageSize, len(filtered))
	p.visible = append(p.visible, filtered[start:end]...)
	p.page++
	return true
}

// Visible returns the links revealed so far.
// The returned slice must not be modified.
func (p *Pager) Visible() []Link {
	return p.visible
}

// HasMore reports whether filtered holds links not yet revealed
func (p *Pager) HasMore(filtered []Link) bool {
	return len(p.visible) < len(filtered)
}
