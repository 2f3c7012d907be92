package fetcher

import (
	"context"

	"github.com/tgoss21/openclaw-monitor/internal/model"
)

// Fetcher defines the interface for fetching historical market data.
type Fetcher interface {
	// FetchBars returns a columnar frame of OHLCV data for the symbol over
	// the given lookback period at the given sampling interval.
	FetchBars(ctx context.Context, symbol, period, interval string) (*model.Frame, error)
	Name() string
}
