package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/unichar/internal/tui/components"
	"github.com/f3rmion/unichar/internal/ucd"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List characters by category or description search",
	Long: `List the characters of the loaded Unicode data. Without flags every
category is listed in the order it first appears in the data.

--search matches category descriptions case-insensitively and takes
precedence over --category.

Example:
  unichar list --category Sc
  unichar list --search punctuation --limit 40 --grid`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("category", "c", "", "only list this category code (e.g. Lu)")
	listCmd.Flags().StringP("search", "s", "", "match category descriptions")
	listCmd.Flags().IntP("limit", "n", 0, "stop after this many characters (0 = all)")
	listCmd.Flags().Bool("grid", false, "print a character grid instead of one line per character")
}

func runList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	search, _ := cmd.Flags().GetString("search")
	limit, _ := cmd.Flags().GetInt("limit")
	grid, _ := cmd.Flags().GetBool("grid")

	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	idx, _, err := loadIndex(cmd.Context())
	if err != nil {
		return err
	}

	q := ucd.Query{Term: search}
	if category != "" {
		q.Toggle(ucd.Category(category))
	}
	records := q.Apply(idx)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	out := cmd.OutOrStdout()
	if grid {
		for start := 0; start < len(records); start += cfg.UI.GridColumns {
			end := min(start+cfg.UI.GridColumns, len(records))
			cells := make([]string, 0, end-start)
			for _, rec := range records[start:end] {
				cells = append(cells, components.Cell(rec))
			}
			fmt.Fprintln(out, strings.TrimRight(strings.Join(cells, " "), " "))
		}
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%-9s %s %s\n", rec.Label(), components.Cell(rec), rec.Category)
	}
	return nil
}
