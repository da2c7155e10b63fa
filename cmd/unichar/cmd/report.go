package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/unichar/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a summary of the categories as Markdown or HTML",
	Long: `Write a table of the discovered categories with their counts and a few
sample characters. The default output is Markdown on stdout.

Example:
  unichar report --html -o categories.html`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Bool("html", false, "render HTML instead of Markdown")
	reportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	asHTML, _ := cmd.Flags().GetBool("html")
	output, _ := cmd.Flags().GetString("output")

	idx, source, err := loadIndex(cmd.Context())
	if err != nil {
		return err
	}

	content := []byte(report.Markdown(idx, source))
	if asHTML {
		content, err = report.HTML(idx, source)
		if err != nil {
			return err
		}
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	if err := os.WriteFile(output, content, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
	return nil
}
