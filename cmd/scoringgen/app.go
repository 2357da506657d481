package main

import (
	"log/slog"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/config"
	"github.com/jonsdaniel/wa-race-equivalent-times/internal/parser"
	"github.com/jonsdaniel/wa-race-equivalent-times/internal/report"
	"github.com/jonsdaniel/wa-race-equivalent-times/internal/scoring"
)

// App wires the conversion pipeline together: parse the export, densify the
// tables, write the data module, then the optional artifacts.
type App struct {
	cfg *config.Config
	log *slog.Logger
}

func NewApp(cfg *config.Config, log *slog.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// Run executes the pipeline. Only stream-level failures return an error;
// malformed rows were already dropped during parsing and show up in the
// diagnostics instead.
func (a *App) Run() error {
	a.log.Info("Starting conversion",
		slog.String("input", a.cfg.Input),
		slog.String("output", a.cfg.Output))

	parsed, err := parser.ParseTables(a.cfg.Input)
	if err != nil {
		return err
	}
	for _, w := range parsed.Warnings {
		a.log.Warn("Parse warning", slog.String("detail", w))
	}
	if parsed.IgnoredRows > 0 {
		a.log.Debug("Rows ignored", slog.Int("count", parsed.IgnoredRows))
	}

	dense := scoring.BuildDenseTables(parsed.Tables)
	summaries := scoring.SummarizeAll(parsed.Tables, dense)
	for _, s := range summaries {
		a.log.Info("Event table",
			slog.String("event", s.Key),
			slog.Int("recorded", s.Recorded),
			slog.Int("distinct_marks", s.Distinct))
	}

	if err := report.WriteScoringJS(a.cfg.Output, dense); err != nil {
		return err
	}
	a.log.Info("Data module written", slog.String("path", a.cfg.Output))

	if a.cfg.PlotDir == "" && a.cfg.PDF == "" {
		return nil
	}

	plots := report.CreateCurvePlots(dense)
	if a.cfg.PlotDir != "" {
		if err := report.WriteCurvePlots(a.cfg.PlotDir, plots); err != nil {
			return err
		}
		a.log.Info("Curve plots written",
			slog.String("dir", a.cfg.PlotDir),
			slog.Int("count", len(plots)))
	}
	if a.cfg.PDF != "" {
		if err := report.BuildPDFReport(a.cfg.PDF, summaries, plots); err != nil {
			return err
		}
		a.log.Info("Summary PDF written", slog.String("path", a.cfg.PDF))
	}
	return nil
}
