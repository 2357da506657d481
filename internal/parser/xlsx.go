package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads a spreadsheet export of the scoring tables. Every sheet is
// fed through the same row classifier as the CSV path, so stacked sections
// and repeated header rows behave identically. A sheet that cannot be read
// is recorded as a warning and skipped.
func ParseXLSX(path string) (*ParsedTables, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	classifier := NewRowClassifier()
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			classifier.Result().Warnings = append(classifier.Result().Warnings,
				fmt.Sprintf("sheet %q skipped: %v", sheet, err))
			continue
		}
		for _, row := range rows {
			classifier.ProcessRow(row)
		}
	}
	return classifier.Result(), nil
}
