package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/f3rmion/unichar/internal/fullwidth"
	"github.com/f3rmion/unichar/internal/inspect"
	"github.com/f3rmion/unichar/internal/pinyin"
	"github.com/f3rmion/unichar/internal/ucd"
)

// LookupRow is the JSON form of one inspected character.
type LookupRow struct {
	Char        string `json:"char"`
	Code        string `json:"code"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Width       string `json:"width"`
	Reading     string `json:"reading,omitempty"`
	Numbered    string `json:"numbered,omitempty"`
	Convertible bool   `json:"convertible"`
	Fullwidth   string `json:"fullwidth,omitempty"`
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <text>",
	Short: "Show category, width and fullwidth form for each character",
	Long: `Look up every character of the given text and display its:
  - Codepoint
  - General category (when Unicode data is available)
  - East Asian width
  - Pinyin reading (Han characters)
  - Whether it has a fullwidth form

Example:
  unichar lookup 'Hi!'
  unichar lookup 中文 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Bool("json", false, "output as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}

	// Without data we still know widths, readings and convertibility
	idx, _, err := loadIndex(cmd.Context())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	opts := inspect.Options{Index: idx}
	if cfg.UI.Readings {
		opts.Readings = pinyin.NewParser()
	}

	input := strings.Join(args, " ")
	sel := inspect.New(input, opts)

	if asJSON {
		rows := make([]LookupRow, 0, sel.Len())
		for _, row := range sel.Rows() {
			rows = append(rows, lookupRow(row, opts.Readings))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(rows)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Looking up: %s\n\n", input)
	printLookupTable(out, sel)
	return nil
}

func lookupRow(row inspect.Row, readings *pinyin.Parser) LookupRow {
	lr := LookupRow{
		Char:        string(row.Char),
		Code:        row.Code,
		Category:    string(row.Category),
		Width:       row.Width,
		Reading:     row.Reading,
		Numbered:    readings.Numbered(row.Char),
		Convertible: row.Convertible,
	}
	if row.Category != "" {
		lr.Description = ucd.DisplayName(row.Category)
	}
	if row.Convertible {
		lr.Fullwidth = string(fullwidth.Convert(row.Char))
	}
	return lr
}

func printLookupTable(w io.Writer, sel *inspect.Selection) {
	fmt.Fprintln(w, cell("Char", 6)+cell("Code", 10)+cell("Category", 24)+cell("Width", 7)+cell("Reading", 14)+"Fullwidth")
	for _, row := range sel.Rows() {
		category := "-"
		if row.Category != "" {
			category = string(row.Category) + " " + ucd.DisplayName(row.Category)
		}
		reading := row.Reading
		if reading == "" {
			reading = "-"
		}
		convert := "✗"
		if row.Convertible {
			convert = "✓ " + string(fullwidth.Convert(row.Char))
		}
		fmt.Fprintln(w, cell(printable(row.Char), 6)+cell(row.Code, 10)+cell(category, 24)+cell(row.Width, 7)+cell(reading, 14)+convert)
	}
}

// cell truncates or fills s to exactly w terminal columns.
func cell(s string, w int) string {
	if runewidth.StringWidth(s) >= w {
		s = runewidth.Truncate(s, w-1, "…")
	}
	return runewidth.FillRight(s, w)
}

// printable keeps control characters out of terminal output.
func printable(r rune) string {
	if r < 0x20 || r == 0x7F || (r >= 0x80 && r < 0xA0) {
		return "·"
	}
	return string(r)
}
