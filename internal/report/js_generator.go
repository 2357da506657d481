package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/parser"
	"github.com/jonsdaniel/wa-race-equivalent-times/internal/scoring"
)

// RenderScoringJS produces the generated data module: a labels constant
// mapping event keys to display names, and a scoring constant mapping the
// same keys to their dense record arrays. Keys appear in declared event
// order so diffs between regenerations stay readable.
func RenderScoringJS(dense map[string][]scoring.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Generated from the tabulated scoring tables. Do not edit by hand.\n\n")

	buf.WriteString("const labels = {\n")
	for i, ev := range parser.Events {
		key, _ := json.Marshal(ev.Key)
		label, _ := json.Marshal(ev.Label)
		fmt.Fprintf(&buf, "  %s: %s", key, label)
		if i < len(parser.Events)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("};\n\n")

	buf.WriteString("const scoring = {\n")
	for i, ev := range parser.Events {
		records, err := json.Marshal(dense[ev.Key])
		if err != nil {
			return nil, fmt.Errorf("encode %s table: %w", ev.Key, err)
		}
		key, _ := json.Marshal(ev.Key)
		fmt.Fprintf(&buf, "  %s: %s", key, records)
		if i < len(parser.Events)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("};\n")

	return buf.Bytes(), nil
}

// WriteScoringJS renders the data module and replaces path wholesale.
func WriteScoringJS(path string, dense map[string][]scoring.Record) error {
	data, err := RenderScoringJS(dense)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
