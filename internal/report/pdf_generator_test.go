package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/parser"
	"github.com/jonsdaniel/wa-race-equivalent-times/internal/scoring"
)

func TestBuildPDFReport(t *testing.T) {
	tables := parser.SparseTables{
		"100m": {1400: "9.46", 700: "11.00"},
	}
	dense := scoring.BuildDenseTables(tables)
	summaries := scoring.SummarizeAll(tables, dense)
	plots := CreateCurvePlots(dense)

	path := filepath.Join(t.TempDir(), "summary.pdf")
	require.NoError(t, BuildPDFReport(path, summaries, plots))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "-", formatSeconds(math.NaN()))
	assert.Equal(t, "9.46", formatSeconds(9.46))
	assert.Equal(t, "17:37.00", formatSeconds(1057))
	assert.Equal(t, "2:16.92", formatSeconds(136.92))
	assert.Equal(t, "1:24:26.0", formatSeconds(5066))
}
