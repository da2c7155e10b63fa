package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/f3rmion/unichar/internal/config"
)

// resetFlags puts every flag back to its default so commands don't see
// values left over from an earlier run.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with args and returns its combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCLI(t *testing.T) {
	data, err := filepath.Abs(filepath.Join("testdata", "UnicodeData.txt"))
	require.NoError(t, err)

	a, err := txtar.ParseFile(filepath.Join("testdata", "cli.txtar"))
	require.NoError(t, err)
	require.Zero(t, len(a.Files)%2)

	for i := 0; i < len(a.Files); i += 2 {
		require.Equal(t, "want", a.Files[i+1].Name, "file %d", i+1)
		var (
			tname = a.Files[i].Name
			args  = strings.Fields(string(a.Files[i].Data))
			want  = string(a.Files[i+1].Data)
		)

		t.Run(tname, func(t *testing.T) {
			args = append([]string{"--config", t.TempDir(), "--data", data}, args...)
			got, _ := run(t, args...)
			got = strings.ReplaceAll(got, data, "$DATA")
			require.Equal(t, want, got)
		})
	}
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "unichar")

	out, err := run(t, "--config", dir, "init")
	require.NoError(t, err)
	require.Contains(t, out, "Created config.yaml")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	_, err = run(t, "--config", dir, "init")
	require.ErrorContains(t, err, "already exists")

	_, err = run(t, "--config", dir, "init", "--force")
	require.NoError(t, err)
}

func TestExportThenReadBack(t *testing.T) {
	data, err := filepath.Abs(filepath.Join("testdata", "UnicodeData.txt"))
	require.NoError(t, err)
	db := filepath.Join(t.TempDir(), "chars.db")

	out, err := run(t, "--config", t.TempDir(), "--data", data, "export", db)
	require.NoError(t, err)
	require.Contains(t, out, "Exported "+data+" to "+db)
	require.Contains(t, out, "7 characters in 6 categories")

	out, err = run(t, "--config", t.TempDir(), "--data", db, "list", "-c", "Lu")
	require.NoError(t, err)
	require.Equal(t, "U+0041    A  Lu\nU+0042    B  Lu\n", out)
}

func TestReport(t *testing.T) {
	data, err := filepath.Abs(filepath.Join("testdata", "UnicodeData.txt"))
	require.NoError(t, err)

	out, err := run(t, "--config", t.TempDir(), "--data", data, "report")
	require.NoError(t, err)
	require.Contains(t, out, "| Sc |")

	page := filepath.Join(t.TempDir(), "report.html")
	_, err = run(t, "--config", t.TempDir(), "--data", data, "report", "--html", "-o", page)
	require.NoError(t, err)
	html, err := os.ReadFile(page)
	require.NoError(t, err)
	require.Contains(t, string(html), "<table>")
}

func TestMissingData(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	dir := t.TempDir()
	require.NoError(t, config.Save(dir, &config.Config{UI: config.Default().UI}))

	_, err := run(t, "--config", dir, "--data", missing, "categories")
	require.ErrorContains(t, err, "loading unicode data")

	// lookup degrades to what it can tell without the database
	out, err := run(t, "--config", dir, "--data", missing, "lookup", "A")
	require.NoError(t, err)
	require.Contains(t, out, "Warning: loading unicode data")
	require.Contains(t, out, "✓ Ａ")
}

func TestDataOverrideDoesNotFallBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.DataPath(dir), []byte("0041;A;Lu\n"), 0o644))

	// The fetched copy is used when nothing is asked for.
	out, err := run(t, "--config", dir, "categories")
	require.NoError(t, err)
	require.Contains(t, out, "Source: "+config.DataPath(dir))

	missing := filepath.Join(t.TempDir(), "missing.txt")
	out, err = run(t, "--config", dir, "--data", missing, "categories")
	require.ErrorContains(t, err, "loading unicode data")
	require.ErrorContains(t, err, "missing.txt")
	require.NotContains(t, out, "Source:")

	t.Setenv("UNICHAR_DATA", missing)
	_, err = run(t, "--config", dir, "categories")
	require.ErrorContains(t, err, "missing.txt")
}

func TestLookupJSONNumberedReading(t *testing.T) {
	data, err := filepath.Abs(filepath.Join("testdata", "UnicodeData.txt"))
	require.NoError(t, err)

	out, err := run(t, "--config", t.TempDir(), "--data", data, "lookup", "--json", "好")
	require.NoError(t, err)
	require.Contains(t, out, `"reading": "hǎo`)
	require.Contains(t, out, `"numbered": "hao3`)
	require.Contains(t, out, `"convertible": false`)
}

func TestParsePositions(t *testing.T) {
	got, err := parsePositions(" 1, 3,,5")
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4}, got)

	_, err = parsePositions("2,x")
	require.Error(t, err)
	_, err = parsePositions("-1")
	require.Error(t, err)
}
