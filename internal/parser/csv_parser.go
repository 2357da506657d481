package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// pointsCellRe accepts the points column of a data row: a bare 1-4 digit
// non-negative integer. Anything else (totals lines, footnotes, thousands
// separators) disqualifies the whole row.
var pointsCellRe = regexp.MustCompile(`^\d{1,4}$`)

// sectionLayout is the column mapping established by the most recent header
// row. The export stacks several tables in one file, each introduced by its
// own header, so the layout is re-derived every time a header row appears.
type sectionLayout struct {
	pointsCol int            // -1 until the first header row is seen
	eventCols map[string]int // event key -> column index in this section
}

func newSectionLayout(pointsCol int, cells []string) sectionLayout {
	layout := sectionLayout{
		pointsCol: pointsCol,
		eventCols: make(map[string]int),
	}
	for _, ev := range Events {
		for _, header := range ev.Headers {
			for col, cell := range cells {
				if cell == header {
					layout.eventCols[ev.Key] = col
					break
				}
			}
			if _, ok := layout.eventCols[ev.Key]; ok {
				break
			}
		}
	}
	return layout
}

// RowClassifier consumes rows in file order. Header rows replace the current
// section layout; data rows add entries to the sparse tables. Everything
// malformed is dropped and counted, never fatal: the exports are noisy and a
// partial conversion beats no conversion.
type RowClassifier struct {
	section sectionLayout
	result  *ParsedTables
}

func NewRowClassifier() *RowClassifier {
	return &RowClassifier{
		section: sectionLayout{pointsCol: -1},
		result:  NewParsedTables(),
	}
}

// Result returns the tables accumulated so far.
func (c *RowClassifier) Result() *ParsedTables {
	return c.result
}

// ProcessRow classifies one row and updates the classifier state. Cells are
// trimmed before any comparison; the raw row is left untouched.
func (c *RowClassifier) ProcessRow(row []string) {
	cells := make([]string, len(row))
	empty := true
	for i, cell := range row {
		cells[i] = strings.TrimSpace(cell)
		if cells[i] != "" {
			empty = false
		}
	}
	if empty {
		return
	}

	if col, ok := findPointsHeader(cells); ok {
		c.section = newSectionLayout(col, cells)
		return
	}

	if c.section.pointsCol < 0 || c.section.pointsCol >= len(cells) {
		c.result.IgnoredRows++
		return
	}
	pointsCell := cells[c.section.pointsCol]
	if !pointsCellRe.MatchString(pointsCell) {
		c.result.IgnoredRows++
		return
	}
	points, err := strconv.Atoi(pointsCell)
	if err != nil || points < MinPoints || points > MaxPoints {
		c.result.IgnoredRows++
		return
	}

	for key, col := range c.section.eventCols {
		if col >= len(cells) {
			continue
		}
		value := cells[col]
		if IsAbsent(value) {
			continue
		}
		table, ok := c.result.Tables[key]
		if !ok {
			table = make(map[int]string)
			c.result.Tables[key] = table
		}
		// Last write wins when a section repeats a points total.
		table[points] = value
	}
}

// findPointsHeader looks for the cell that marks a header row.
func findPointsHeader(cells []string) (int, bool) {
	for col, cell := range cells {
		if strings.EqualFold(cell, "points") {
			return col, true
		}
	}
	return -1, false
}

// ParseCSV reads comma-separated rows from r and classifies each in turn.
// Only reader-level failures (undecodable input, I/O errors) are returned;
// malformed rows are skipped.
func ParseCSV(r io.Reader) (*ParsedTables, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // sections have different widths
	reader.TrimLeadingSpace = true

	classifier := NewRowClassifier()
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		classifier.ProcessRow(row)
	}
	return classifier.Result(), nil
}

// ParseTables reads a scoring-table export. The reader is chosen by file
// extension: .xlsx goes through excelize, everything else is treated as CSV.
func ParseTables(path string) (*ParsedTables, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ParseXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}
