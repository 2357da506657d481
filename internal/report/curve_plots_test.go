package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/parser"
	"github.com/jonsdaniel/wa-race-equivalent-times/internal/scoring"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestCreateCurvePlot(t *testing.T) {
	ev, ok := parser.EventByKey("mile")
	require.True(t, ok)

	records := scoring.BuildDenseTable(map[int]string{
		1400: "3:43.13",
		700:  "4:30.00",
	})
	img, err := CreateCurvePlot(ev, records)
	require.NoError(t, err)
	require.Greater(t, len(img), len(pngMagic))
	assert.Equal(t, pngMagic, img[:len(pngMagic)])
}

func TestCreateCurvePlotNoData(t *testing.T) {
	ev, ok := parser.EventByKey("marathon")
	require.True(t, ok)

	_, err := CreateCurvePlot(ev, scoring.BuildDenseTable(nil))
	assert.Error(t, err)
}

func TestCreateCurvePlotsSkipsEmptyEvents(t *testing.T) {
	dense := scoring.BuildDenseTables(parser.SparseTables{
		"100m": {1400: "9.46"},
	})

	images := CreateCurvePlots(dense)
	require.Len(t, images, 1)
	assert.Contains(t, images, "100m")
}

func TestWriteCurvePlots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "curves")
	images := map[string][]byte{"100m": append([]byte{}, pngMagic...)}

	require.NoError(t, WriteCurvePlots(dir, images))

	data, err := os.ReadFile(filepath.Join(dir, "100m.png"))
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data)
}
