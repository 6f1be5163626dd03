package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"linkdir/internal/adapters/dataset"
	"linkdir/internal/adapters/sqlite"
	"linkdir/internal/application/commands"
)

var (
	importDB      string
	importReplace bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import links into a SQLite database",
	Long: `Import a YAML, JSON or bookmark HTML file into a SQLite database.
Links are appended unless --replace is given.

Examples:
  linkdir-cli import links.yaml
  linkdir-cli import bookmarks.html --db ~/links.db --replace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if dataset.KindOf(path) == dataset.KindSQLite {
			return fmt.Errorf("cannot import from a database: %s", path)
		}

		src, closeFn, err := dataset.Open(path, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		ds, err := src.Load()
		if err != nil {
			return err
		}

		store := sqlite.NewStore()
		if err := store.Open(importDB); err != nil {
			return err
		}
		defer store.Close()

		stats, err := commands.NewImportCommand(store, ds, importReplace).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d links in %d categories into %s\n", stats.LinksWritten, stats.CategoriesWritten, store.Path())
		if stats.Skipped > 0 {
			fmt.Printf("Skipped %d invalid records\n", stats.Skipped)
		}
		fmt.Printf("Took %s\n", stats.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importDB, "db", sqlite.DefaultPath(), "database to write")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "delete existing links first")
	rootCmd.AddCommand(importCmd)
}
