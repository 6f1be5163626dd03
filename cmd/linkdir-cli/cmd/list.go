package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"linkdir/internal/application"
	"linkdir/internal/application/commands"
	"linkdir/internal/domain"
)

var (
	listQuery      string
	listCategories []string
	listSort       string
	listPages      int
	listAll        bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List links page by page",
	Long: `List the links passing a filter, in pages of the configured size.

Examples:
  linkdir-cli list
  linkdir-cli list --category tools --sort rating
  linkdir-cli list --query docs --pages 2
  linkdir-cli list --all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildFilter(listQuery, listCategories, listSort)
		if err != nil {
			return err
		}
		return runList(cmd.Context(), filter, listPages, listAll)
	},
}

func buildFilter(query string, categories []string, sort string) (domain.Filter, error) {
	key, ok := application.ParseSortKey(sort)
	if !ok {
		names := make([]string, len(domain.SortKeys))
		for i, k := range domain.SortKeys {
			names[i] = string(k)
		}
		return domain.Filter{}, &application.ValidationError{
			Field:   "sort",
			Message: fmt.Sprintf("unknown sort %q (want one of %s)", sort, strings.Join(names, ", ")),
		}
	}
	return domain.Filter{Query: query, Categories: categories, Sort: key}, nil
}

func runList(ctx context.Context, filter domain.Filter, pages int, all bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := GetSource()
	if err != nil {
		return err
	}

	list := commands.NewListLinksCommand(src, GetEngine(), cfg.PageSize, filter)
	list.Pages = pages
	list.All = all

	result, err := list.Execute(ctx)
	if err != nil {
		return err
	}

	if result.Total == 0 {
		fmt.Println("No links match your filters")
		return nil
	}

	for _, l := range result.Links {
		printLink(l)
	}

	fmt.Printf("\nShowing %d of %d links\n", len(result.Links), result.Total)
	if result.HasMore {
		fmt.Printf("More available: --pages %d or --all\n", result.Pages+1)
	}
	return nil
}

func printLink(l domain.Link) {
	fmt.Printf("%s  %s  ⭐ %s  [%s]\n", l.ID, l.Name, l.FormatRating(), l.CategoryName)
	if l.Description != "" {
		fmt.Printf("    %s\n", l.Description)
	}
	fmt.Printf("    %s\n", l.URL)
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "match names and descriptions")
	listCmd.Flags().StringSliceVarP(&listCategories, "category", "c", nil, "category IDs to include (repeatable)")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", string(domain.SortByName), "name, date, category or rating")
	listCmd.Flags().IntVarP(&listPages, "pages", "p", 1, "pages to show")
	listCmd.Flags().BoolVar(&listAll, "all", false, "show every matching link")
	rootCmd.AddCommand(listCmd)
}
