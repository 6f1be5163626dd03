package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"linkdir/internal/adapters/filesystem"
	"linkdir/internal/domain"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dataset as YAML or JSON",
	Long: `Write every link and category of the source as YAML or JSON.

Examples:
  linkdir-cli export > links.yaml
  linkdir-cli export --source ~/links.db --format json -o links.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := filesystem.Format(exportFormat)
		if exportOutput != "" && !cmd.Flags().Changed("format") {
			f, err := filesystem.FormatFor(exportOutput)
			if err != nil {
				return err
			}
			format = f
		}

		src, err := GetSource()
		if err != nil {
			return err
		}
		ds, err := src.Load()
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return filesystem.Encode(os.Stdout, ds, format)
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		return encodeAndClose(f, ds, format)
	},
}

// encodeAndClose writes ds to wc and reports a failed close, which is where
// a short write to disk shows up.
func encodeAndClose(wc io.WriteCloser, ds domain.Dataset, format filesystem.Format) error {
	if err := filesystem.Encode(wc, ds, format); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(filesystem.FormatYAML), "yaml or json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
