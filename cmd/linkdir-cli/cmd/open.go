package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linkdir/internal/adapters/browser"
	"linkdir/internal/application/commands"
)

var openCopy bool

var openCmd = &cobra.Command{
	Use:   "open <link-id>",
	Short: "Open a link in the browser",
	Long: `Open a link's URL with the system handler ($BROWSER when set).

Examples:
  linkdir-cli open github
  linkdir-cli open github --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		src, err := GetSource()
		if err != nil {
			return err
		}

		if openCopy {
			link, err := commands.NewGetLinkCommand(src, args[0]).Execute(ctx)
			if err != nil {
				return err
			}
			if err := (browser.SystemClipboard{}).WriteAll(link.URL); err != nil {
				return fmt.Errorf("copying url: %w", err)
			}
			fmt.Printf("Copied %s\n", link.URL)
			return nil
		}

		link, err := commands.NewVisitCommand(src, browser.NewOpener(logger), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Opened %s (%s)\n", link.Name, link.URL)
		return nil
	},
}

func init() {
	openCmd.Flags().BoolVar(&openCopy, "copy", false, "copy the URL instead of opening it")
	rootCmd.AddCommand(openCmd)
}
