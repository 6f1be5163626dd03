package filesystem

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"linkdir/internal/application"
	"linkdir/internal/domain"
)

const sampleYAML = `
categories:
  - id: tools
    name: Herramientas
  - id: blogs
    name: Blogs
links:
  - id: a
    name: Alpha
    description: first
    url: https://a.example
    categoryId: tools
    rating: 4.5
    dateAdded: 2024-03-01
  - id: b
    name: Beta
    url: https://b.example
    categoryId: blogs
    rating: "not a number"
    dateAdded: 2024-03-02T10:00:00Z
  - id: ""
    name: Nameless
  - id: a
    name: Duplicate
  - id: c
    name: Gamma
    url: https://c.example
    categoryId: blogs
    categoryName: Custom
    rating: "3"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	repo := NewRepository(writeFile(t, "links.yaml", sampleYAML), nil)

	ds, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Links) != 3 {
		t.Fatalf("expected 3 links after sanitizing, got %d", len(ds.Links))
	}
	if len(ds.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(ds.Categories))
	}

	a := ds.Links[0]
	if a.ID != "a" || a.Name != "Alpha" || a.Description != "first" {
		t.Errorf("unexpected first link: %+v", a)
	}
	if a.CategoryName != "Herramientas" {
		t.Errorf("expected category name to be filled, got %q", a.CategoryName)
	}
	if a.Rating != 4.5 {
		t.Errorf("expected rating 4.5, got %v", a.Rating)
	}
	if want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC); !a.DateAdded.Equal(want) {
		t.Errorf("expected date %v, got %v", want, a.DateAdded)
	}

	b := ds.Links[1]
	if !math.IsNaN(b.Rating) {
		t.Errorf("expected NaN rating for invalid value, got %v", b.Rating)
	}
	if b.FormatRating() != "0.0" {
		t.Errorf("invalid rating should render 0.0, got %s", b.FormatRating())
	}
	if b.DateAdded.Hour() != 10 {
		t.Errorf("expected RFC3339 date to parse, got %v", b.DateAdded)
	}

	c := ds.Links[2]
	if c.CategoryName != "Custom" {
		t.Errorf("explicit category name should win, got %q", c.CategoryName)
	}
	if c.Rating != 3 {
		t.Errorf("numeric string rating should parse, got %v", c.Rating)
	}
}

func TestLoad_AbsentRatingIsNaN(t *testing.T) {
	const doc = `
links:
  - id: a
    name: Tilde
    url: https://a.example
    rating: ~
  - id: b
    name: Null
    url: https://b.example
    rating: null
  - id: c
    name: Missing
    url: https://c.example
`
	ds, err := NewRepository(writeFile(t, "links.yaml", doc), nil).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ds.Links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(ds.Links))
	}
	for _, l := range ds.Links {
		if !math.IsNaN(l.Rating) {
			t.Errorf("%s: expected NaN rating, got %v", l.Name, l.Rating)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, ds, FormatYAML); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got := strings.Count(buf.String(), "rating: .nan"); got != 3 {
		t.Errorf("expected 3 .nan ratings in export, got %d:\n%s", got, buf.String())
	}
}

func TestLoad_LogsDroppedRecords(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := NewRepository(writeFile(t, "links.yaml", sampleYAML), zap.New(core))

	if _, err := repo.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	dropped := logs.FilterMessage("dropped record").All()
	if len(dropped) != 2 {
		t.Errorf("expected 2 dropped records logged, got %d", len(dropped))
	}
}

func TestLoad_JSON(t *testing.T) {
	content := `{
  "categories": [{"id": "tools", "name": "Tools"}],
  "links": [
    {"id": "x", "name": "X", "url": "https://x.example", "categoryId": "tools", "rating": 2.5, "dateAdded": "2023-12-31"},
    {"id": "y", "name": "Y", "url": "https://y.example", "categoryId": "tools", "rating": null},
    {"id": "z", "name": "Z", "url": "https://z.example", "categoryId": "tools", "rating": "5"}
  ]
}`
	repo := NewRepository(writeFile(t, "links.json", content), nil)

	ds, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(ds.Links))
	}
	if ds.Links[0].Rating != 2.5 || ds.Links[0].CategoryName != "Tools" {
		t.Errorf("unexpected first link: %+v", ds.Links[0])
	}
	if !math.IsNaN(ds.Links[1].Rating) {
		t.Errorf("null rating should decode as NaN, got %v", ds.Links[1].Rating)
	}
	if ds.Links[2].Rating != 5 {
		t.Errorf("quoted rating should parse, got %v", ds.Links[2].Rating)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	repo := NewRepository(writeFile(t, "links.toml", "x = 1"), nil)

	_, err := repo.Load()
	if !errors.Is(err, application.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoad_InvalidDocument(t *testing.T) {
	repo := NewRepository(writeFile(t, "links.json", "{not json"), nil)

	_, err := repo.Load()
	if !errors.Is(err, application.ErrInvalidDataset) {
		t.Errorf("expected ErrInvalidDataset, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "missing.yaml"), nil)

	_, err := repo.Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestLoad_Embedded(t *testing.T) {
	ds, err := NewRepository("", nil).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Links) <= domain.DefaultPageSize {
		t.Errorf("embedded dataset should span more than one page, got %d links", len(ds.Links))
	}

	counts := ds.CategoryCounts()
	for _, c := range ds.Categories {
		if counts[c.ID] == 0 {
			t.Errorf("category %s has no links", c.ID)
		}
	}
	for _, l := range ds.Links {
		if l.CategoryName == "" {
			t.Errorf("link %s has no category name", l.ID)
		}
		if l.URL == "" {
			t.Errorf("link %s has no URL", l.ID)
		}
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"links.yaml", FormatYAML, false},
		{"links.YML", FormatYAML, false},
		{"links.json", FormatJSON, false},
		{"links.csv", "", true},
		{"links", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFor(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestEncodeThenLoad(t *testing.T) {
	ds := domain.NewDataset(
		[]domain.Link{
			{ID: "a", Name: "Alpha", URL: "https://a.example", CategoryID: "tools", Rating: 4, DateAdded: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			{ID: "b", Name: "Beta", URL: "https://b.example", CategoryID: "tools", Rating: math.NaN()},
		},
		[]domain.Category{{ID: "tools", Name: "Tools"}},
	)

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, ds, format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			path := filepath.Join(t.TempDir(), "links."+string(format))
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := NewRepository(path, nil).Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if len(got.Links) != 2 {
				t.Fatalf("expected 2 links, got %d", len(got.Links))
			}
			if !got.Links[0].DateAdded.Equal(ds.Links[0].DateAdded) {
				t.Errorf("date changed: %v", got.Links[0].DateAdded)
			}
			if !math.IsNaN(got.Links[1].Rating) {
				t.Errorf("NaN rating should survive as NaN, got %v", got.Links[1].Rating)
			}
			if got.Links[1].CategoryName != "Tools" {
				t.Errorf("category name not restored: %q", got.Links[1].CategoryName)
			}
		})
	}
}
