package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/f3rmion/unichar/internal/ucd"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List general categories with character counts",
	Long: `List the general categories found in the Unicode data, in the order
they first appear, with their description and number of characters.

With --all, every category of the catalog is listed, including those the
data doesn't contain.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().Bool("all", false, "list every catalog category")
}

func runCategories(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	idx, source, err := loadIndex(cmd.Context())
	if err != nil {
		return err
	}

	cats := idx.Categories()
	if all {
		cats = ucd.Categories()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source: %s\n\n", source)
	for _, c := range cats {
		fmt.Fprintf(out, "%-4s %-24s %8s\n", c, ucd.DisplayName(c), humanize.Comma(int64(idx.Count(c))))
	}
	fmt.Fprintf(out, "\n%s characters in %d categories\n", humanize.Comma(int64(idx.Len())), len(idx.Categories()))
	return nil
}
