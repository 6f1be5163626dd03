package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linkdir/internal/application/commands"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with their link counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := GetSource()
		if err != nil {
			return err
		}

		categories, err := commands.NewListCategoriesCommand(src).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(categories) == 0 {
			fmt.Println("No categories")
			return nil
		}
		for _, c := range categories {
			fmt.Printf("%-16s %-24s %d\n", c.ID, c.Name, c.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
