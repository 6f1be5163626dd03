package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of the filtered links
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByDate     SortKey = "date"
	SortByCategory SortKey = "category"
	SortByRating   SortKey = "rating"
)

// SortKeys lists the supported keys in menu order
var SortKeys = []SortKey{SortByName, SortByDate, SortByCategory, SortByRating}

// ParseSortKey returns the key for s, or false if s is not a known key.
// Unknown keys are still accepted by Compute; they keep dataset order.
func ParseSortKey(s string) (SortKey, bool) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys, k) {
		return k, true
	}
	return k, false
}

// Label returns the human readable name of the key
func (k SortKey) Label() string {
	switch k {
	case SortByName:
		return "Name"
	case SortByDate:
		return "Date added"
	case SortByCategory:
		return "Category"
	case SortByRating:
		return "Popularity"
	default:
		return string(k)
	}
}

// Filter is the user-controlled part of a directory session
type Filter struct {
	Query      string
	Categories []string // Empty means every category
	Sort       SortKey
}

// DefaultFilter is the state a session starts in
func DefaultFilter() Filter {
	return Filter{Sort: SortByName}
}

// Equal reports whether two filters select and order links identically.
// Category order is irrelevant.
func (f Filter) Equal(o Filter) bool {
	if f.Query != o.Query || f.Sort != o.Sort {
		return false
	}
	return sameSet(f.Categories, o.Categories)
}

// Matches reports whether a link passes the query and category predicate
func (f Filter) Matches(l Link) bool {
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, l.CategoryID) {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.Description), q)
}

// Engine filters and orders links. The zero value compares strings with
// the root collation.
type Engine struct {
	locale language.Tag
}

// NewEngine creates an engine comparing names in the given locale
func NewEngine(locale language.Tag) Engine {
	return Engine{locale: locale}
}

// ParseLocale parses a BCP 47 tag, falling back to Spanish
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// Compute returns the links passing f, ordered by f.Sort.
// The input is never modified and ties keep dataset order.
func (e Engine) Compute(links []Link, f Filter) []Link {
	out := make([]Link, 0, len(links))
	for _, l := range links {
		if f.Matches(l) {
			out = append(out, l)
		}
	}

	switch f.Sort {
	case SortByName:
		c := collate.New(e.locale)
		slices.SortStableFunc(out, func(a, b Link) int {
			return c.CompareString(a.Name, b.Name)
		})
	case SortByCategory:
		c := collate.New(e.locale)
		slices.SortStableFunc(out, func(a, b Link) int {
			return c.CompareString(a.CategoryName, b.CategoryName)
		})
	case SortByDate:
		slices.SortStableFunc(out, func(a, b Link) int {
			return b.DateAdded.Compare(a.DateAdded)
		})
	case SortByRating:
		slices.SortStableFunc(out, func(a, b Link) int {
			ra, rb := a.SafeRating(), b.SafeRating()
			switch {
			case ra > rb:
				return -1
			case ra < rb:
				return 1
			}
			return 0
		})
	}

	return out
}

// sameSet compares a and b as sets; duplicates are ignored
func sameSet(a, b []string) bool {
	for _, s := range a {
		if !slices.Contains(b, s) {
			return false
		}
	}
	for _, s := range b {
		if !slices.Contains(a, s) {
			return false
		}
	}
	return true
}
