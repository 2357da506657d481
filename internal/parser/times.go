package parser

import (
	"math"
	"strconv"
	"strings"
)

// IsAbsent reports whether a cell carries no time at all. The export uses a
// plain hyphen or an em-dash for point totals an event has no mark for.
func IsAbsent(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "-", "—":
		return true
	}
	return false
}

// ToSeconds converts a tabulated time string to seconds. Three forms appear
// in the tables: plain seconds ("9.46"), minutes:seconds ("17:37",
// "2:16.92") and hours:minutes:seconds ("1:24:26"). Absence markers and
// anything that does not parse to a finite number yield ok=false.
func ToSeconds(s string) (seconds float64, ok bool) {
	s = strings.TrimSpace(s)
	if IsAbsent(s) {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, false
	}
	multipliers := [3]float64{1, 60, 3600}
	total := 0.0
	for i := 0; i < len(parts); i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[len(parts)-1-i]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		total += v * multipliers[i]
	}
	return total, true
}
