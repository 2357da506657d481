package scoring

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/parser"
)

// Summary describes one event's table for diagnostics and the PDF report.
// Fastest/Slowest/Mean are seconds over the distinct recorded times and are
// NaN when nothing parsed.
type Summary struct {
	Key      string
	Label    string
	Recorded int // dense slots holding a time (directly recorded or carried)
	Distinct int // directly observed sparse entries
	Fastest  float64
	Slowest  float64
	Mean     float64
}

// Summarize computes the per-event summary from the sparse entries and the
// densified table.
func Summarize(ev parser.Event, sparse map[int]string, dense []Record) Summary {
	s := Summary{
		Key:      ev.Key,
		Label:    ev.Label,
		Distinct: len(sparse),
		Fastest:  math.NaN(),
		Slowest:  math.NaN(),
		Mean:     math.NaN(),
	}
	for _, rec := range dense {
		if rec.Time != AbsentTime {
			s.Recorded++
		}
	}

	seconds := make([]float64, 0, len(sparse))
	for _, raw := range sparse {
		if v, ok := parser.ToSeconds(raw); ok {
			seconds = append(seconds, v)
		}
	}
	if len(seconds) == 0 {
		return s
	}
	if v, err := stats.Min(seconds); err == nil {
		s.Fastest = v
	}
	if v, err := stats.Max(seconds); err == nil {
		s.Slowest = v
	}
	if v, err := stats.Mean(seconds); err == nil {
		s.Mean = v
	}
	return s
}

// SummarizeAll returns summaries in declared event order.
func SummarizeAll(tables parser.SparseTables, dense map[string][]Record) []Summary {
	out := make([]Summary, 0, len(parser.Events))
	for _, ev := range parser.Events {
		out = append(out, Summarize(ev, tables[ev.Key], dense[ev.Key]))
	}
	return out
}
