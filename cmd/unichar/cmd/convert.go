package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/unichar/internal/fullwidth"
	"github.com/f3rmion/unichar/internal/inspect"
)

var convertCmd = &cobra.Command{
	Use:   "convert [text]",
	Short: "Convert printable ASCII to fullwidth",
	Long: `Convert text to its fullwidth form. Characters outside U+0021..U+007E are
kept as they are. With --only, just the listed character positions (1-based)
are converted and the result contains only those characters.

Text is read from stdin when no argument is given.

Example:
  unichar convert 'Hello, World!'
  unichar convert --only 1,3 'A中b'`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("only", "", "comma-separated character positions to convert (1-based)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	only, _ := cmd.Flags().GetString("only")

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\r\n")
	}

	out := cmd.OutOrStdout()
	if only == "" {
		fmt.Fprintln(out, fullwidth.ConvertAll(text))
		return nil
	}

	positions, err := parsePositions(only)
	if err != nil {
		return err
	}

	sel := inspect.New(text, inspect.Options{})
	if n := sel.Check(positions...); n < len(positions) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d of %d positions are out of range or not convertible\n", len(positions)-n, len(positions))
	}
	fmt.Fprintln(out, sel.Converted())
	return nil
}

// parsePositions turns "1,3,5" into 0-based row indexes.
func parsePositions(s string) ([]int, error) {
	var positions []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid position %q: positions start at 1", field)
		}
		positions = append(positions, n-1)
	}
	return positions, nil
}
