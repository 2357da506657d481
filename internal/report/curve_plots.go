package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/parser"
	"github.com/jonsdaniel/wa-race-equivalent-times/internal/scoring"
)

// CreateCurvePlot renders one event's equivalence curve, seconds against
// points, as a PNG. Slots without a usable seconds value are left off the
// line, so an event with no data at all returns an error instead of an
// empty chart.
func CreateCurvePlot(ev parser.Event, records []scoring.Record) ([]byte, error) {
	pts := make(plotter.XYs, 0, len(records))
	for _, rec := range records {
		if !math.IsNaN(rec.Seconds) {
			pts = append(pts, plotter.XY{X: float64(rec.Points), Y: rec.Seconds})
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("no plottable records for %s", ev.Key)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s equivalent times", ev.Label)
	p.X.Label.Text = "Points"
	p.Y.Label.Text = "Time (seconds)"
	p.X.Min = 0
	p.X.Max = float64(parser.MaxPoints)
	p.X.Tick.Marker = plot.ConstantTicks(pointsTicks(200))
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("build line for %s: %w", ev.Key, err)
	}
	line.Color = color.RGBA{B: 180, A: 255}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	writer, err := p.WriterTo(vg.Points(800), vg.Points(400), "png")
	if err != nil {
		return nil, fmt.Errorf("create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("render plot: %w", err)
	}
	return buf.Bytes(), nil
}

// CreateCurvePlots renders every event that has plottable data and returns
// the PNGs keyed by event key. Events with nothing to plot are skipped.
func CreateCurvePlots(dense map[string][]scoring.Record) map[string][]byte {
	images := make(map[string][]byte)
	for _, ev := range parser.Events {
		img, err := CreateCurvePlot(ev, dense[ev.Key])
		if err != nil {
			continue
		}
		images[ev.Key] = img
	}
	return images
}

// WriteCurvePlots writes the rendered PNGs into dir as <key>.png, creating
// the directory if needed.
func WriteCurvePlots(dir string, images map[string][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create plot dir: %w", err)
	}
	for key, img := range images {
		path := filepath.Join(dir, key+".png")
		if err := os.WriteFile(path, img, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// pointsTicks places a major tick every step points across the table range.
func pointsTicks(step int) []plot.Tick {
	var ticks []plot.Tick
	for v := 0; v <= parser.MaxPoints; v += step {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: fmt.Sprintf("%d", v)})
	}
	return ticks
}
