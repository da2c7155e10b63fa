package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/unichar/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize unichar configuration",
	Long: `Initialize the unichar configuration file in your config directory.

This writes config.yaml with:
  - data.sources  (UnicodeData.txt locations tried in order)
  - data.url      (where 'unichar fetch' downloads from)
  - ui            (grid width, pinyin readings, glyph preview)`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	out := cmd.OutOrStdout()

	path := filepath.Join(configDir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.Save(configDir, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(out, "Initializing unichar configuration in %s\n\n", configDir)
	fmt.Fprintf(out, "  Created %s\n\n", config.FileName)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Run 'unichar fetch' to download UnicodeData.txt")
	fmt.Fprintln(out, "  2. Run 'unichar lookup Ａ' to test a character lookup")
	fmt.Fprintln(out, "  3. Run 'unichar' to start the explorer")

	return nil
}
