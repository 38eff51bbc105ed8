package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gotab/internal/arch"
	"github.com/alexiusacademia/gotab/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	conf = config.Default()
	t.Cleanup(func() { conf = nil })

	c := &cobra.Command{Use: "test"}
	addTimberFlags(c)
	addLayoutFlags(c)

	require.NoError(t, c.ParseFlags([]string{"--rebate", "12", "-n", "8", "--seed", "first-order"}))
	require.NoError(t, applyFlags(c))

	assert.Equal(t, 12.0, conf.Timber.RebateDepth)
	assert.Equal(t, 8, conf.Layout.Segments)
	assert.Equal(t, config.SeedFirstOrder, conf.Solver.Seed)
	// Untouched flags keep the configured values
	assert.Equal(t, 1800.0, conf.Timber.PostLength)
	assert.Equal(t, 7, conf.Layout.DeckWidth)
}

func TestApplyFlagsRejectsInvalid(t *testing.T) {
	conf = config.Default()
	t.Cleanup(func() { conf = nil })

	c := &cobra.Command{Use: "test"}
	addTimberFlags(c)
	require.NoError(t, c.ParseFlags([]string{"--rebate", "80"}))
	assert.Error(t, applyFlags(c))
}

func TestSolveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.xlsx")
	t.Cleanup(func() { solveXLSXFile = "" })

	rootCmd.SetArgs([]string{"solve", "--segments", "6", "--across", "7", "--xlsx", path})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSolveCommandOverarched(t *testing.T) {
	rootCmd.SetArgs([]string{"solve", "--segments", "10", "--across", "7", "--xlsx", ""})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, arch.ErrOverarched))
}

func TestExportFailuresFailCommand(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))
	t.Cleanup(func() {
		solveExportFile = ""
		profileExportFile = ""
	})

	tests := []struct {
		name string
		args []string
	}{
		{"solve elevation", []string{"solve", "--segments", "6", "--across", "7", "--xlsx", "", "-o", filepath.Join(blocker, "arch.png")}},
		{"profile outlines", []string{"profile", "-o", filepath.Join(blocker, "profiles.png")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "export")
		})
	}
}

func TestSweepCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"sweep", "--max", "11"})
	assert.NoError(t, rootCmd.Execute())
}
