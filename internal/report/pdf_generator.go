package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/scoring"
)

const (
	inchToMm        = 25.4
	pdfPageWidth    = 11 * inchToMm // Letter landscape
	pdfMargin       = 0.5 * inchToMm
	pdfContentWidth = pdfPageWidth - (2 * pdfMargin)
	pdfLineHeight   = 6.0 // mm
)

// BuildPDFReport writes a printable summary of the generated tables: one row
// per event with its coverage and time range, then one page per event with
// the equivalence curve. Events without a plot just get no curve page.
func BuildPDFReport(path string, summaries []scoring.Summary, plots map[string][]byte) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(pdfContentWidth, 10, "Scoring Table Conversion Summary", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Event", "Filled Slots", "Recorded Marks", "Fastest", "Slowest", "Mean"}
	widths := []float64{0.30, 0.14, 0.14, 0.14, 0.14, 0.14}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range headers {
		pdf.CellFormat(widths[i]*pdfContentWidth, pdfLineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	for _, s := range summaries {
		row := []string{
			s.Label,
			strconv.Itoa(s.Recorded),
			strconv.Itoa(s.Distinct),
			formatSeconds(s.Fastest),
			formatSeconds(s.Slowest),
			formatSeconds(s.Mean),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i]*pdfContentWidth, pdfLineHeight, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	imgWidth := pdfContentWidth * 0.85
	imgHeight := imgWidth * 0.5
	for _, s := range summaries {
		img, ok := plots[s.Key]
		if !ok || len(img) == 0 {
			continue
		}
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(pdfContentWidth, 8, fmt.Sprintf("%s equivalence curve", s.Label), "", 1, "L", false, 0, "")

		name := "curve_" + s.Key
		pdf.RegisterImageReader(name, "PNG", bytes.NewReader(img))
		pdf.Image(name, pdfMargin, pdf.GetY()+2, imgWidth, imgHeight, false, "PNG", 0, "")
	}

	return pdf.OutputFileAndClose(path)
}

// formatSeconds prints a seconds value the way the tables do: h:mm:ss above
// an hour, m:ss.xx above a minute, plain seconds below.
func formatSeconds(sec float64) string {
	if math.IsNaN(sec) {
		return "-"
	}
	switch {
	case sec >= 3600:
		h := int(sec) / 3600
		m := (int(sec) % 3600) / 60
		s := sec - float64(h*3600+m*60)
		return fmt.Sprintf("%d:%02d:%04.1f", h, m, s)
	case sec >= 60:
		m := int(sec) / 60
		s := sec - float64(m*60)
		return fmt.Sprintf("%d:%05.2f", m, s)
	default:
		return fmt.Sprintf("%.2f", sec)
	}
}
