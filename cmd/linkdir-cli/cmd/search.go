package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchSort       string
	searchCategories []string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search link names and descriptions",
	Long: `Search for links whose name or description contains the query,
ignoring case. Every match is printed.

Examples:
  linkdir-cli search github
  linkdir-cli search "color palette" --sort rating`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildFilter(strings.Join(args, " "), searchCategories, searchSort)
		if err != nil {
			return err
		}
		return runList(cmd.Context(), filter, 1, true)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "name", "name, date, category or rating")
	searchCmd.Flags().StringSliceVarP(&searchCategories, "category", "c", nil, "category IDs to include (repeatable)")
	rootCmd.AddCommand(searchCmd)
}
