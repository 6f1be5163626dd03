package domain

import (
	"fmt"
	"math"
	"time"
)

// Link is one entry of the directory
type Link struct {
	ID           string
	Name         string
	Description  string
	URL          string
	CategoryID   string
	CategoryName string    // Denormalized from Category.Name
	Rating       float64   // NaN when the source value was not a number
	DateAdded    time.Time // Zero when unknown
}

// Category groups links (e.g., "tools" -> "Herramientas")
type Category struct {
	ID   string
	Name string
}

// SafeRating returns the rating, or 0 when it is not a finite number
func (l Link) SafeRating() float64 {
	if math.IsNaN(l.Rating) || math.IsInf(l.Rating, 0) {
		return 0
	}
	return l.Rating
}

// FormatRating renders the rating with one decimal (e.g., "4.5")
func (l Link) FormatRating() string {
	return fmt.Sprintf("%.1f", l.SafeRating())
}

// Dataset is the immutable collection a session browses.
// Links keep the order they were loaded in; that order breaks sort ties.
type Dataset struct {
	Links      []Link
	Categories []Category
}

// NewDataset builds a dataset, filling each link's CategoryName from the
// category table when the link does not carry one.
func NewDataset(links []Link, categories []Category) Dataset {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	out := make([]Link, len(links))
	for i, l := range links {
		if l.CategoryName == "" {
			l.CategoryName = names[l.CategoryID]
		}
		out[i] = l
	}

	cats := make([]Category, len(categories))
	copy(cats, categories)

	return Dataset{Links: out, Categories: cats}
}

// LinkByID returns the link with the given ID
func (d Dataset) LinkByID(id string) (Link, bool) {
	for _, l := range d.Links {
		if l.ID == id {
			return l, true
		}
	}
	return Link{}, false
}

// CategoryCounts returns the number of links per category ID
func (d Dataset) CategoryCounts() map[string]int {
	counts := make(map[string]int, len(d.Categories))
	for _, l := range d.Links {
		counts[l.CategoryID]++
	}
	return counts
}
