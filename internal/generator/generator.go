package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tgoss21/openclaw-monitor/internal/chart"
	"github.com/tgoss21/openclaw-monitor/internal/fetcher"
)

// ErrNoData indicates the data provider returned an empty series, so no
// chart file was produced.
var ErrNoData = errors.New("no data")

// Request describes one chart generation.
type Request struct {
	Ticker   string
	Period   string
	Interval string
	Width    int
	Height   int
}

// Result reports a successfully written chart.
type Result struct {
	Path string
	Size int64
}

// Generator is the fetch, transform, render, save pipeline. It keeps no
// state between invocations; the only side effect is the image file, and a
// later invocation for the same ticker overwrites it.
type Generator struct {
	fetcher fetcher.Fetcher
	dir     string
}

// New creates a Generator writing charts into dir.
func New(f fetcher.Fetcher, dir string) *Generator {
	return &Generator{fetcher: f, dir: dir}
}

// Path returns the output path a given ticker maps to.
func (g *Generator) Path(ticker string) string {
	return filepath.Join(g.dir, strings.ToUpper(strings.TrimSpace(ticker))+"_latest.png")
}

// Generate runs the pipeline and returns the written path and file size.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return nil, errors.New("ticker is required")
	}

	frame, err := g.fetcher.FetchBars(ctx, ticker, req.Period, req.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	// Providers may key columns per symbol; collapse before reading fields.
	frame.Flatten()
	bars, err := frame.Bars()
	if err != nil {
		return nil, fmt.Errorf("normalize series: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoData, ticker)
	}

	last := bars[len(bars)-1]
	png, err := chart.Render(bars, chart.Options{
		Width:  req.Width,
		Height: req.Height,
		Title:  chart.Title(ticker, last.Close, req.Interval, last.Time),
	})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}
	path := g.Path(ticker)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return nil, fmt.Errorf("write chart: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat chart: %w", err)
	}
	return &Result{Path: path, Size: info.Size()}, nil
}
