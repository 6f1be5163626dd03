package application

import "linkdir/internal/domain"

// Re-export domain types for use by adapters
type (
	Link     = domain.Link
	Category = domain.Category
	Dataset  = domain.Dataset
	Filter   = domain.Filter
	SortKey  = domain.SortKey
)

// Re-export sort keys for use by adapters
const (
	SortByName     = domain.SortByName
	SortByDate     = domain.SortByDate
	SortByCategory = domain.SortByCategory
	SortByRating   = domain.SortByRating
)

// ParseSortKey returns the sort key for s and whether it is a known key
func ParseSortKey(s string) (SortKey, bool) {
	return domain.ParseSortKey(s)
}
