package fetcher

import (
	"context"
	"time"

	"github.com/tgoss21/openclaw-monitor/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Frame *model.Frame
	Err   error

	// LastSymbol records the symbol of the most recent call.
	LastSymbol   string
	LastPeriod   string
	LastInterval string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, symbol, period, interval string) (*model.Frame, error) {
	m.LastSymbol = symbol
	m.LastPeriod = period
	m.LastInterval = interval
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Frame != nil {
		return m.Frame, nil
	}
	return GenerateMockFrame(100, 30, 24*time.Hour), nil
}

// GenerateMockFrame builds a synthetic single-level frame of count bars
// ending now, spaced by step, drifting around basePrice.
func GenerateMockFrame(basePrice float64, count int, step time.Duration) *model.Frame {
	frame := model.NewFrame()
	frame.Index = make([]time.Time, count)
	open := make([]float64, count)
	high := make([]float64, count)
	low := make([]float64, count)
	closes := make([]float64, count)
	volume := make([]float64, count)

	start := time.Now().Add(-time.Duration(count) * step)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		frame.Index[i] = start.Add(time.Duration(i) * step)
		open[i] = p * 0.999
		high[i] = p * 1.005
		low[i] = p * 0.995
		closes[i] = p
		volume[i] = 1000000 + float64(i%7)*50000
	}
	frame.Columns[model.ColOpen] = open
	frame.Columns[model.ColHigh] = high
	frame.Columns[model.ColLow] = low
	frame.Columns[model.ColClose] = closes
	frame.Columns[model.ColVolume] = volume
	return frame
}
