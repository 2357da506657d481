package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonsdaniel/wa-race-equivalent-times/internal/config"
)

func main() {
	fs := flag.NewFlagSet("scoringgen", flag.ExitOnError)
	in := fs.String("in", "", "scoring-table export to read, .csv or .xlsx (default tabulatimes.csv)")
	out := fs.String("out", "", "generated data module path (default scoring.js)")
	cfgPath := fs.String("config", "", "optional YAML config file")
	plotDir := fs.String("plots", "", "directory for per-event curve PNGs (omit to skip)")
	pdfPath := fs.String("pdf", "", "path for the printable summary PDF (omit to skip)")
	logLevel := fs.String("log-level", "", "debug | info | warn | error")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("Cannot load configuration", "error", err)
		os.Exit(1)
	}

	// Flags override the file where given.
	if *in != "" {
		cfg.Input = *in
	}
	if *out != "" {
		cfg.Output = *out
	}
	if *plotDir != "" {
		cfg.PlotDir = *plotDir
	}
	if *pdfPath != "" {
		cfg.PDF = *pdfPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := newLogger(cfg.LogLevel)
	app := NewApp(cfg, logger)
	if err := app.Run(); err != nil {
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintf(os.Stderr, "unknown log level %q, using info\n", level)
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
