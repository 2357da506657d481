package scoring

import (
	"encoding/json"
	"math"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/parser"
)

// AbsentTime marks a dense slot that no recorded time could fill.
const AbsentTime = "-"

// Record is one row of a dense table: a points total, the equivalent
// performance time as tabulated, and that time converted to seconds.
// Seconds is NaN when the slot is absent or the time string does not parse;
// it is always derived from Time, never sourced separately.
type Record struct {
	Points  int
	Time    string
	Seconds float64
}

// MarshalJSON encodes absent seconds as null, which is what the web page
// expects for slots with no usable time.
func (r Record) MarshalJSON() ([]byte, error) {
	out := struct {
		Points  int      `json:"points"`
		Time    string   `json:"time"`
		Seconds *float64 `json:"seconds"`
	}{Points: r.Points, Time: r.Time}
	if !math.IsNaN(r.Seconds) {
		out.Seconds = &r.Seconds
	}
	return json.Marshal(out)
}

// BuildDenseTable turns one event's sparse points->time map into exactly
// MaxPoints ordered records, one per integer points total.
//
// Two passes, in this order:
//  1. Walk from MaxPoints down to MinPoints carrying the last recorded time
//     downward. A missing points total borrows the time of the next-higher
//     total that has one; higher points mean faster times, so the borrowed
//     mark is always achievable at the lower total.
//  2. Walk back up from MinPoints, back-filling any slot still empty with
//     the nearest resolved time below it. This only matters when the very
//     top of the range had no data at all.
//
// The two passes must stay separate: collapsing them changes which slot
// fills the top-of-range gap.
func BuildDenseTable(sparse map[int]string) []Record {
	resolved := make([]string, parser.MaxPoints+1)

	carried := ""
	for p := parser.MaxPoints; p >= parser.MinPoints; p-- {
		if v, ok := sparse[p]; ok {
			carried = v
		}
		resolved[p] = carried
	}

	backfill := ""
	for p := parser.MinPoints; p <= parser.MaxPoints; p++ {
		if resolved[p] != "" {
			backfill = resolved[p]
		} else {
			resolved[p] = backfill
		}
	}

	records := make([]Record, 0, parser.MaxPoints)
	for p := parser.MinPoints; p <= parser.MaxPoints; p++ {
		t := resolved[p]
		if t == "" {
			t = AbsentTime
		}
		seconds := math.NaN()
		if s, ok := parser.ToSeconds(t); ok {
			seconds = s
		}
		records = append(records, Record{Points: p, Time: t, Seconds: seconds})
	}
	return records
}

// BuildDenseTables densifies every declared event. Events with no sparse
// data still get a full table of absent records so the generated module has
// one array per event.
func BuildDenseTables(tables parser.SparseTables) map[string][]Record {
	dense := make(map[string][]Record, len(parser.Events))
	for _, ev := range parser.Events {
		dense[ev.Key] = BuildDenseTable(tables[ev.Key])
	}
	return dense
}
