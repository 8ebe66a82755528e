package main

import (
	"context"
	"encoding/csv"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tigsg/Cellular-Automata-Simulation/config"
	"github.com/tigsg/Cellular-Automata-Simulation/report"
)

func smallConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Preset(config.PresetCampaign)
	require.NoError(t, err)
	cfg.GridSize = 12
	cfg.Steps = 12
	cfg.Vaccination.Start = 4
	cfg.Vaccination.Rate = 0.05
	cfg.Output.Dir = t.TempDir()
	cfg.Output.CellSize = 4
	cfg.Output.SnapshotEvery = 5
	cfg.Output.LogEvery = 0
	cfg.Output.Progress = false
	require.NoError(t, cfg.Validate())
	return cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	cfg := smallConfig(t)

	dir, err := run(context.Background(), cfg, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, cfg.Output.Dir, filepath.Dir(dir))
	assert.True(t, strings.HasPrefix(filepath.Base(dir), "1_grid12_K20_"), filepath.Base(dir))

	rows := readCSV(t, filepath.Join(dir, csvFileName))
	require.Len(t, rows, cfg.Steps+1)
	assert.Equal(t, report.Headers(cfg.Params()), rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "11", rows[cfg.Steps][0])

	info, err := os.Stat(filepath.Join(dir, videoFileName))
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	for _, name := range []string{plotFileName, snapshotFileName} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err, name)
		_, err = png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, summaryFileName))
	require.NoError(t, err)
	var sum report.Summary
	require.NoError(t, yaml.Unmarshal(data, &sum))
	assert.Equal(t, cfg.Steps, sum.Steps)
	assert.InDelta(t, 1, sum.FinalSusceptible+sum.FinalInfected+sum.FinalRecovered+sum.FinalVaccinated, 1e-9)
}

func TestRunSnapshotStrip(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Output.Video = false
	cfg.Output.Chart = false

	dir, err := run(context.Background(), cfg, io.Discard)
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, videoFileName))

	f, err := os.Open(filepath.Join(dir, snapshotFileName))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.DecodeConfig(f)
	require.NoError(t, err)
	// steps 0, 5 and 10, each 12 cells of 4 pixels
	assert.Equal(t, 3*48, img.Width)
	assert.Equal(t, 48, img.Height)
}

func TestRunNumbersIncrease(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Output.Video = false

	first, err := run(context.Background(), cfg, io.Discard)
	require.NoError(t, err)
	second, err := run(context.Background(), cfg, io.Discard)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(filepath.Base(second), "2_"), filepath.Base(second))
}

func TestRunCancelled(t *testing.T) {
	cfg := smallConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir, err := run(ctx, cfg, io.Discard)
	require.ErrorIs(t, err, context.Canceled)

	rows := readCSV(t, filepath.Join(dir, csvFileName))
	assert.Len(t, rows, 1)
	assert.FileExists(t, filepath.Join(dir, summaryFileName))
	assert.NoFileExists(t, filepath.Join(dir, plotFileName))
}

func TestRunProgressBar(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Output.Video = false
	cfg.Output.Progress = true

	var out strings.Builder
	_, err := run(context.Background(), cfg, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "12")
}
