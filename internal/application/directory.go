package application

import (
	"slices"

	"linkdir/internal/domain"
)

// Directory is one browsing session over an immutable dataset.
// It owns the filter and pagination state; callers change them only
// through its methods, and every filter change recomputes the filtered
// sequence before resetting pagination.
type Directory struct {
	dataset  domain.Dataset
	engine   domain.Engine
	filter   domain.Filter
	filtered []domain.Link
	pager    *domain.Pager
}

// NewDirectory starts a session with the default filter and one page visible
func NewDirectory(ds domain.Dataset, engine domain.Engine, pageSize int) *Directory {
	d := &Directory{
		dataset: ds,
		engine:  engine,
		filter:  domain.DefaultFilter(),
		pager:   domain.NewPager(pageSize),
	}
	d.recompute()
	return d
}

// Dataset returns the dataset being browsed
func (d *Directory) Dataset() domain.Dataset {
	return d.dataset
}

// Filter returns a copy of the current filter
func (d *Directory) Filter() domain.Filter {
	f := d.filter
	f.Categories = slices.Clone(d.filter.Categories)
	return f
}

// SetQuery changes the free-text query. Returns false if unchanged.
func (d *Directory) SetQuery(q string) bool {
	if q == d.filter.Query {
		return false
	}
	d.filter.Query = q
	d.recompute()
	return true
}

// SetSelectedCategories replaces the category selection.
// Returns false if the set is unchanged.
func (d *Directory) SetSelectedCategories(ids []string) bool {
	next := d.filter
	next.Categories = ids
	if next.Equal(d.filter) {
		return false
	}
	d.filter.Categories = slices.Clone(ids)
	d.recompute()
	return true
}

// SetSortKey changes the ordering. Returns false if unchanged.
func (d *Directory) SetSortKey(k domain.SortKey) bool {
	if k == d.filter.Sort {
		return false
	}
	d.filter.Sort = k
	d.recompute()
	return true
}

// SetFilter replaces the whole filter. Returns false if unchanged.
func (d *Directory) SetFilter(f domain.Filter) bool {
	if f.Equal(d.filter) {
		return false
	}
	d.filter = f
	d.filter.Categories = slices.Clone(f.Categories)
	d.recompute()
	return true
}

// LoadMore reveals the next page. Returns false at the end of the results.
func (d *Directory) LoadMore() bool {
	return d.pager.LoadMore(d.filtered)
}

// Visible returns the revealed prefix of the filtered links
func (d *Directory) Visible() []domain.Link {
	return d.pager.Visible()
}

// Filtered returns every link passing the current filter, in order
func (d *Directory) Filtered() []domain.Link {
	return d.filtered
}

// HasMore reports whether filtered links remain hidden
func (d *Directory) HasMore() bool {
	return d.pager.HasMore(d.filtered)
}

// Page returns the number of pages revealed
func (d *Directory) Page() int {
	return d.pager.Page()
}

// PageSize returns the number of links per page
func (d *Directory) PageSize() int {
	return d.pager.PageSize()
}

func (d *Directory) recompute() {
	d.filtered = d.engine.Compute(d.dataset.Links, d.filter)
	d.pager.Reset(d.filtered)
}
