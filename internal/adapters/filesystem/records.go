package filesystem

import (
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"linkdir/internal/domain"
)

// document is the on-disk shape of a dataset file
type document struct {
	Categories []categoryRecord `yaml:"categories" json:"categories"`
	Links      []linkRecord     `yaml:"links" json:"links"`
}

type categoryRecord struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

type linkRecord struct {
	ID           string  `yaml:"id" json:"id"`
	Name         string  `yaml:"name" json:"name"`
	Description  string  `yaml:"description,omitempty" json:"description,omitempty"`
	URL          string  `yaml:"url" json:"url"`
	CategoryID   string  `yaml:"categoryId" json:"categoryId"`
	CategoryName string  `yaml:"categoryName,omitempty" json:"categoryName,omitempty"`
	Rating       *rating `yaml:"rating" json:"rating"`
	DateAdded    string  `yaml:"dateAdded,omitempty" json:"dateAdded,omitempty"`
}

// rating accepts numbers and numeric strings; anything else decodes as NaN.
// A null or missing rating leaves the field nil, which also means NaN.
// YAML writes NaN as .nan, JSON as null.
type rating float64

func parseRating(s string) rating {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return rating(math.NaN())
	}
	return rating(f)
}

func (r *rating) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*r = rating(math.NaN())
		return nil
	}
	*r = parseRating(node.Value)
	return nil
}

func (r *rating) UnmarshalJSON(b []byte) error {
	*r = parseRating(strings.Trim(string(b), `"`))
	return nil
}

func (r rating) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate returns the zero time and false when s is empty or malformed
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Equal(t.Truncate(24 * time.Hour)) {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

func (r linkRecord) toDomain() (domain.Link, bool) {
	added, ok := parseDate(r.DateAdded)
	score := math.NaN()
	if r.Rating != nil {
		score = float64(*r.Rating)
	}
	return domain.Link{
		ID:           strings.TrimSpace(r.ID),
		Name:         r.Name,
		Description:  r.Description,
		URL:          strings.TrimSpace(r.URL),
		CategoryID:   strings.TrimSpace(r.CategoryID),
		CategoryName: r.CategoryName,
		Rating:       score,
		DateAdded:    added,
	}, ok
}

func fromDomain(ds domain.Dataset) document {
	doc := document{
		Categories: make([]categoryRecord, len(ds.Categories)),
		Links:      make([]linkRecord, len(ds.Links)),
	}
	for i, c := range ds.Categories {
		doc.Categories[i] = categoryRecord{ID: c.ID, Name: c.Name}
	}
	for i, l := range ds.Links {
		score := rating(l.Rating)
		doc.Links[i] = linkRecord{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
			URL:         l.URL,
			CategoryID:  l.CategoryID,
			Rating:      &score,
			DateAdded:   formatDate(l.DateAdded),
		}
	}
	return doc
}
