// Package dataset picks the LinkSource adapter for a configured path.
package dataset

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"linkdir/internal/adapters/bookmarks"
	"linkdir/internal/adapters/filesystem"
	"linkdir/internal/adapters/sqlite"
	"linkdir/internal/ports"
)

// Kind names the adapter that serves a path
type Kind string

const (
	KindEmbedded  Kind = "embedded"
	KindFile      Kind = "file"
	KindSQLite    Kind = "sqlite"
	KindBookmarks Kind = "bookmarks"
)

// KindOf classifies path by its extension
func KindOf(path string) Kind {
	if path == "" {
		return KindEmbedded
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	case ".html", ".htm":
		return KindBookmarks
	default:
		return KindFile
	}
}

// Open returns the source for path and a func releasing it.
// An empty path serves the embedded dataset.
func Open(path string, logger *zap.Logger) (ports.LinkSource, func() error, error) {
	noop := func() error { return nil }

	switch KindOf(path) {
	case KindSQLite:
		store := sqlite.NewStore()
		if err := store.Open(path); err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case KindBookmarks:
		return bookmarks.NewRepository(path, logger), noop, nil
	case KindFile:
		if _, err := filesystem.FormatFor(path); err != nil {
			return nil, nil, err
		}
	}
	return filesystem.NewRepository(path, logger), noop, nil
}
