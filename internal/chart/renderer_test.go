package chart

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/tgoss21/openclaw-monitor/internal/model"
)

func buildTestBars(count int, step time.Duration) []model.Bar {
	base := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	bars := make([]model.Bar, 0, count)
	price := 500.0
	for i := 0; i < count; i++ {
		move := float64((i%9)-4) * 1.8
		open := price
		close := price + move
		high := open
		if close > high {
			high = close
		}
		low := open
		if close < low {
			low = close
		}
		volume := int64(100000 + (i%17)*8000)
		if i%25 == 0 {
			volume *= 3
		}
		bars = append(bars, model.Bar{
			Time:   base.Add(time.Duration(i) * step),
			Open:   open,
			High:   high + 2.2,
			Low:    low - 2.0,
			Close:  close,
			Volume: volume,
		})
		price = close
	}
	return bars
}

func TestRender_ProducesPNGAtRequestedSize(t *testing.T) {
	bars := buildTestBars(90, 24*time.Hour)
	img, err := Render(bars, Options{Width: 640, Height: 480, Title: "TEST  |  $500.00  |  1d  |  2024-08-30"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(img) == 0 {
		t.Fatal("expected non-empty image bytes")
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("expected valid PNG: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRender_DefaultDimensions(t *testing.T) {
	bars := buildTestBars(30, 24*time.Hour)
	img, err := Render(bars, Options{Title: "TEST"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("expected valid PNG: %v", err)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("expected %dx%d, got %dx%d", DefaultWidth, DefaultHeight, cfg.Width, cfg.Height)
	}
}

func TestRender_SingleBar(t *testing.T) {
	bars := buildTestBars(1, 24*time.Hour)
	if _, err := Render(bars, Options{Width: 320, Height: 240}); err != nil {
		t.Fatalf("expected single bar to render, got %v", err)
	}
}

func TestRender_NoBars(t *testing.T) {
	if _, err := Render(nil, Options{}); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestTitle_Format(t *testing.T) {
	date := time.Date(2024, 8, 30, 15, 45, 0, 0, time.UTC)
	tests := []struct {
		ticker   string
		close    float64
		interval string
		want     string
	}{
		{"AAPL", 202.349, "1d", "AAPL  |  $202.35  |  1d  |  2024-08-30"},
		{"TSLA", 250.0, "5m", "TSLA  |  $250.00  |  5m  |  2024-08-30"},
		{"NVDA", 99.999, "1h", "NVDA  |  $100.00  |  1h  |  2024-08-30"},
	}
	for _, tt := range tests {
		if got := Title(tt.ticker, tt.close, tt.interval, date); got != tt.want {
			t.Errorf("Title(%s): expected %q, got %q", tt.ticker, tt.want, got)
		}
	}
}

func TestBarSpacing_IgnoresWeekendGaps(t *testing.T) {
	// Mon-Fri daily bars across two weeks: most deltas 1d, two deltas 3d.
	base := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	var bars []model.Bar
	for _, offset := range []int{0, 1, 2, 3, 4, 7, 8, 9, 10, 11} {
		bars = append(bars, model.Bar{Time: base.AddDate(0, 0, offset), Open: 1, High: 2, Low: 0.5, Close: 1.5})
	}
	got := barSpacing(bars)
	if got != float64(24*time.Hour) {
		t.Errorf("expected median spacing of one day, got %v", time.Duration(got))
	}
}

func TestXTickFormat(t *testing.T) {
	if f := xTickFormat(float64(5 * time.Minute)); f != "01-02 15:04" {
		t.Errorf("expected intraday format, got %s", f)
	}
	if f := xTickFormat(float64(24 * time.Hour)); f != "2006-01-02" {
		t.Errorf("expected daily format, got %s", f)
	}
}
