package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAppRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tabulatimes.csv")
	csvData := "Points,100m,Mile\n1400,9.46,3:43.13\n700,11.00,4:30.00\n"
	require.NoError(t, os.WriteFile(input, []byte(csvData), 0o644))

	cfg := &config.Config{
		Input:    input,
		Output:   filepath.Join(dir, "scoring.js"),
		LogLevel: "info",
	}
	app := NewApp(cfg, testLogger())
	require.NoError(t, app.Run())

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "const labels = {")
	assert.Contains(t, src, "const scoring = {")
	assert.Contains(t, src, `"9.46"`)
	assert.Contains(t, src, `"3:43.13"`)
}

func TestAppRunMissingInputLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "scoring.js")
	require.NoError(t, os.WriteFile(output, []byte("previous"), 0o644))

	cfg := &config.Config{
		Input:    filepath.Join(dir, "nope.csv"),
		Output:   output,
		LogLevel: "info",
	}
	app := NewApp(cfg, testLogger())
	require.Error(t, app.Run())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestAppRunWithArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tabulatimes.csv")
	csvData := "Points,Marathon\n1000,2:09:30\n500,2:45:00\n"
	require.NoError(t, os.WriteFile(input, []byte(csvData), 0o644))

	cfg := &config.Config{
		Input:    input,
		Output:   filepath.Join(dir, "scoring.js"),
		PlotDir:  filepath.Join(dir, "curves"),
		PDF:      filepath.Join(dir, "summary.pdf"),
		LogLevel: "info",
	}
	app := NewApp(cfg, testLogger())
	require.NoError(t, app.Run())

	assert.FileExists(t, cfg.Output)
	assert.FileExists(t, filepath.Join(cfg.PlotDir, "marathon.png"))
	assert.FileExists(t, cfg.PDF)
}
