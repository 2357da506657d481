package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSecondsFormats(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"9.46", 9.46},
		{"17:37", 1057},
		{"2:16.92", 136.92},
		{"1:24:26", 5066},
		{"0:30", 30},
		{" 11.00 ", 11.00},
	}
	for _, c := range cases {
		got, ok := ToSeconds(c.in)
		require.True(t, ok, "expected %q to parse", c.in)
		assert.InDelta(t, c.want, got, 1e-9, "input %q", c.in)
	}
}

func TestToSecondsAbsenceMarkers(t *testing.T) {
	for _, in := range []string{"", "-", "—", "  ", " - "} {
		_, ok := ToSeconds(in)
		assert.False(t, ok, "marker %q should be absent", in)
		assert.True(t, IsAbsent(in), "marker %q should be absent", in)
	}
}

func TestToSecondsRejectsMalformed(t *testing.T) {
	for _, in := range []string{"abc", "1:2:3:4", "1:xx", "::", "12:", "Inf", "NaN", "1:Inf"} {
		_, ok := ToSeconds(in)
		assert.False(t, ok, "input %q should not parse", in)
	}
}

func TestIsAbsentKeepsRealTimes(t *testing.T) {
	assert.False(t, IsAbsent("9.46"))
	assert.False(t, IsAbsent("1:24:26"))
}
