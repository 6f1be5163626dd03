package sqlite

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"testing"
	"time"

	"linkdir/internal/application"
	"linkdir/internal/application/commands"
	"linkdir/internal/domain"
)

func openTestStore(t testing.TB) *Store {
	t.Helper()

	store := NewStore()
	if err := store.Open(filepath.Join(t.TempDir(), "links.db")); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestStore_UsesWAL(t *testing.T) {
	store := openTestStore(t)

	var mode string
	if err := store.db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("failed to read journal mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func sampleDataset() domain.Dataset {
	return domain.NewDataset(
		[]domain.Link{
			{ID: "b", Name: "Beta", URL: "https://b.example", CategoryID: "blogs", Rating: 3.5, DateAdded: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "a", Name: "Alpha", Description: "first", URL: "https://a.example", CategoryID: "tools", Rating: math.NaN()},
			{ID: "c", Name: "Gamma", URL: "https://c.example", CategoryID: "tools", Rating: 5},
		},
		[]domain.Category{{ID: "tools", Name: "Tools"}, {ID: "blogs", Name: "Blogs"}},
	)
}

func importDataset(t *testing.T, store *Store, ds domain.Dataset, replace bool) {
	t.Helper()

	if _, err := commands.NewImportCommand(store, ds, replace).Execute(context.Background()); err != nil {
		t.Fatalf("import failed: %v", err)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	importDataset(t, store, sampleDataset(), true)

	ds, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Links) != 3 || len(ds.Categories) != 2 {
		t.Fatalf("expected 3 links and 2 categories, got %d and %d", len(ds.Links), len(ds.Categories))
	}

	// Insertion order is preserved
	for i, want := range []string{"b", "a", "c"} {
		if ds.Links[i].ID != want {
			t.Errorf("link %d: expected %s, got %s", i, want, ds.Links[i].ID)
		}
	}
	if ds.Categories[0].ID != "tools" {
		t.Errorf("expected categories in insertion order, got %s first", ds.Categories[0].ID)
	}

	b := ds.Links[0]
	if b.CategoryName != "Blogs" {
		t.Errorf("expected category name Blogs, got %q", b.CategoryName)
	}
	if !b.DateAdded.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date not preserved: %v", b.DateAdded)
	}

	a := ds.Links[1]
	if !math.IsNaN(a.Rating) {
		t.Errorf("NaN rating should round-trip as NaN, got %v", a.Rating)
	}
	if !a.DateAdded.IsZero() {
		t.Errorf("missing date should stay zero, got %v", a.DateAdded)
	}
	if a.Description != "first" {
		t.Errorf("description not preserved: %q", a.Description)
	}
}

func TestStore_GetLink(t *testing.T) {
	store := openTestStore(t)
	importDataset(t, store, sampleDataset(), true)

	link, err := store.GetLink("c")
	if err != nil {
		t.Fatalf("GetLink failed: %v", err)
	}
	if link.Name != "Gamma" || link.CategoryName != "Tools" || link.Rating != 5 {
		t.Errorf("unexpected link: %+v", link)
	}

	if _, err := store.GetLink("missing"); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ReplaceClearsRows(t *testing.T) {
	store := openTestStore(t)
	importDataset(t, store, sampleDataset(), true)

	replacement := domain.NewDataset(
		[]domain.Link{{ID: "z", Name: "Zeta", URL: "https://z.example", CategoryID: "misc"}},
		[]domain.Category{{ID: "misc", Name: "Misc"}},
	)
	importDataset(t, store, replacement, true)

	n, err := store.CountLinks()
	if err != nil {
		t.Fatalf("CountLinks failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 link after replace, got %d", n)
	}
}

func TestStore_AppendAddsAfterExisting(t *testing.T) {
	store := openTestStore(t)
	importDataset(t, store, sampleDataset(), true)

	extra := domain.NewDataset(
		[]domain.Link{{ID: "d", Name: "Delta", URL: "https://d.example", CategoryID: "tools"}},
		[]domain.Category{{ID: "tools", Name: "Herramientas"}},
	)
	importDataset(t, store, extra, false)

	ds, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Links) != 4 {
		t.Fatalf("expected 4 links, got %d", len(ds.Links))
	}
	if ds.Links[3].ID != "d" {
		t.Errorf("appended link should come last, got %s", ds.Links[3].ID)
	}
	if ds.Categories[0].Name != "Herramientas" || ds.Categories[0].ID != "tools" {
		t.Errorf("category upsert should rename in place, got %+v", ds.Categories[0])
	}
}

func TestStore_RollbackLeavesStoreUntouched(t *testing.T) {
	store := openTestStore(t)
	importDataset(t, store, sampleDataset(), true)

	tx, err := store.BeginTx()
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}
	if err := tx.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	n, err := store.CountLinks()
	if err != nil {
		t.Fatalf("CountLinks failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected rollback to keep 3 links, got %d", n)
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.db")

	store := NewStore()
	if err := store.Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	importDataset(t, store, sampleDataset(), true)
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewStore()
	if err := reopened.Open(path); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	n, err := reopened.CountLinks()
	if err != nil {
		t.Fatalf("CountLinks failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 links after reopen, got %d", n)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	if got := DefaultPath(); got != "/data/linkdir/links.db" {
		t.Errorf("DefaultPath() = %q", got)
	}
}

// BenchmarkLoad measures a cold dataset load from a populated store
func BenchmarkLoad(b *testing.B) {
	store := openTestStore(b)

	links := make([]domain.Link, 1000)
	for i := range links {
		links[i] = domain.Link{
			ID:         fmt.Sprintf("l%04d", i),
			Name:       fmt.Sprintf("Link %d", i),
			URL:        fmt.Sprintf("https://example.com/%d", i),
			CategoryID: "tools",
			Rating:     float64(i%50) / 10,
		}
	}
	ds := domain.NewDataset(links, []domain.Category{{ID: "tools", Name: "Tools"}})
	if _, err := commands.NewImportCommand(store, ds, true).Execute(context.Background()); err != nil {
		b.Fatalf("import failed: %v", err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := store.Load(); err != nil {
			b.Fatalf("load failed: %v", err)
		}
	}
}
