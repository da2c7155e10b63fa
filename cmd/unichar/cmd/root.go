// Package cmd contains all CLI commands for unichar.
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/unichar/internal/config"
	"github.com/f3rmion/unichar/internal/logx"
	_ "github.com/f3rmion/unichar/internal/store" // registers the .db source
	"github.com/f3rmion/unichar/internal/tui"
	"github.com/f3rmion/unichar/internal/ucd"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unichar",
	Short: "Explore Unicode characters by category and convert text to fullwidth",
	Long: `unichar browses the Unicode Character Database by general category.

It reads UnicodeData.txt (or a sqlite export of it) and lets you:
  - Filter characters by category or search category descriptions
  - Inspect text one character at a time
  - Convert printable ASCII to its fullwidth form (A → Ａ)

Running 'unichar' without arguments launches the interactive TUI.
Run 'unichar fetch' once to download the data file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/unichar)")
	rootCmd.PersistentFlags().String("data", "", "Unicode data source: UnicodeData.txt, .db export or URL")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in ENV variables and settles the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("UNICHAR")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// setupLogging sends diagnostics to stderr with --verbose and drops them otherwise.
func setupLogging(cmd *cobra.Command, args []string) error {
	if viper.GetBool("verbose") {
		logx.SetLogger(log.New(cmd.ErrOrStderr(), logx.Prefix, log.LstdFlags))
	} else {
		logx.Discard()
	}
	return nil
}

// loadUserConfig reads config.yaml from the config directory.
func loadUserConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// dataSources lists the candidate sources in the order they are tried.
func dataSources(cfg *config.Config) []string {
	return config.Sources(cfg, getConfigDir(), viper.GetString("data"))
}

// loadIndex loads the first usable data source.
func loadIndex(ctx context.Context) (*ucd.Index, string, error) {
	cfg, err := loadUserConfig()
	if err != nil {
		return nil, "", err
	}

	// An explicit --data source must load. Only the defaults may be missing.
	source := viper.GetString("data")
	var idx *ucd.Index
	if source != "" {
		idx, err = ucd.LoadSource(ctx, source)
	} else {
		idx, source, err = ucd.Open(ctx, dataSources(cfg))
	}
	if err != nil {
		return nil, "", fmt.Errorf("loading unicode data: %w", err)
	}
	logx.Printf("loaded %d characters from %s", idx.Len(), source)
	return idx, source, nil
}

// runTUI launches the unified TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}

	if viper.GetBool("verbose") {
		f, err := tea.LogToFile(filepath.Join(os.TempDir(), "unichar.log"), "")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logx.SetLogger(log.New(f, logx.Prefix, log.LstdFlags))
	} else {
		logx.Discard()
	}

	p := tea.NewProgram(
		tui.NewApp(tui.Options{
			Config:    cfg,
			ConfigDir: getConfigDir(),
			Sources:   dataSources(cfg),
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
