package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/f3rmion/unichar/internal/config"
	"github.com/f3rmion/unichar/internal/ucd"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download UnicodeData.txt into the config directory",
	Long: `Download the Unicode Character Database file into the config directory,
where every other command looks for it first.

The URL comes from --url, then data.url in config.yaml.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().String("url", "", "download location (default from config)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	url, _ := cmd.Flags().GetString("url")

	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	if url == "" {
		url = cfg.Data.URL
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	dest := config.DataPath(getConfigDir())
	fmt.Fprintf(out, "Downloading %s\n", url)

	n, err := ucd.Download(ctx, nil, url, dest)
	if err != nil {
		return err
	}

	idx, err := ucd.LoadFile(dest)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s to %s (%s characters in %d categories)\n",
		humanize.Bytes(uint64(n)), dest, humanize.Comma(int64(idx.Len())), len(idx.Categories()))
	return nil
}
