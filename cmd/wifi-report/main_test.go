package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wifi-report/pkg/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(t, rootCmd)
	}()
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default
// so values parsed by one Execute do not leak into the next.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

func TestRootWritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	_, err := execute(t, "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRootWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.pdf")

	out, err := execute(t, "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing report "+path)
	assert.Contains(t, out, "Error:")
}

func TestOutlineRoundTrip(t *testing.T) {
	dir := t.TempDir()
	outline := filepath.Join(dir, "outline.yaml")

	_, err := execute(t, "outline", "--out", outline)
	require.NoError(t, err)

	out, err := execute(t, "outline", "validate", outline)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (4 sections)")

	pdf := filepath.Join(dir, "custom.pdf")
	_, err = execute(t, "--content", outline, "--output", pdf)
	require.NoError(t, err)
	assert.FileExists(t, pdf)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "wifi-report dev\n", out)
}

func TestFlagsResetBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--output", filepath.Join(dir, "missing", "report.pdf"), "--no-compress")
	require.Error(t, err)

	// A later run in the same process must not inherit the failing output path.
	t.Chdir(dir)

	_, err = execute(t)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, types.DefaultOutputPath))
	assert.False(t, viper.GetBool("no_compress"))
}

func TestConfigFlagNamesSearchedFile(t *testing.T) {
	usage := rootCmd.PersistentFlags().Lookup("config").Usage
	assert.Contains(t, usage, "./"+configName+".yaml")
	assert.Contains(t, usage, "~/.config/wifi-report/"+configName+".yaml")
	assert.NotContains(t, usage, "config.yaml")
}
