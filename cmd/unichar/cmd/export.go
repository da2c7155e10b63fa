package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/f3rmion/unichar/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <out.db>",
	Short: "Export the Unicode data to a SQLite database",
	Long: `Write the loaded characters and categories to a SQLite database. Any
existing file at the path is replaced.

The export can be read back as a data source:
  unichar export chars.db
  unichar --data chars.db list --category Sc`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	if path == "" {
		return fmt.Errorf("output path is empty")
	}

	idx, source, err := loadIndex(cmd.Context())
	if err != nil {
		return err
	}

	if err := store.Export(cmd.Context(), path, idx); err != nil {
		return fmt.Errorf("exporting to %s: %w", path, err)
	}

	summary, err := store.Summary(cmd.Context(), path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Exported %s to %s\n\n", source, path)
	total := 0
	for _, cc := range summary {
		fmt.Fprintf(out, "  %-4s %-24s %8s\n", cc.Category, cc.Description, humanize.Comma(int64(cc.Count)))
		total += cc.Count
	}
	fmt.Fprintf(out, "\n%s characters in %d categories\n", humanize.Comma(int64(total)), len(summary))
	return nil
}
