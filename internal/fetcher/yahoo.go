package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tgoss21/openclaw-monitor/internal/model"
)

// DefaultBaseURL is the Yahoo Finance v8 chart API endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	client *resty.Client
}

// NewYahooFetcher creates a Yahoo fetcher. baseURL falls back to
// DefaultBaseURL when empty; proxyURL is optional.
func NewYahooFetcher(baseURL, proxyURL string) *YahooFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": userAgent,
		})
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &YahooFetcher{client: client}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure of the chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchBars requests the symbol's history and returns it as a columnar frame
// with symbol-qualified column keys ("Close/AAPL"). All-null bars (holidays,
// halted sessions) are dropped and rows are sorted ascending by timestamp.
func (f *YahooFetcher) FetchBars(ctx context.Context, symbol, period, interval string) (*model.Frame, error) {
	var chart yahooChart
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    period,
			"interval": interval,
		}).
		SetResult(&chart).
		Get("/" + url.PathEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: empty result for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	qualifier := result.Meta.Symbol
	if qualifier == "" {
		qualifier = symbol
	}

	type row struct {
		ts         time.Time
		o, h, l, c float64
		v          float64
	}
	rows := make([]row, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		o, h, l, c := quote.Open[i], quote.High[i], quote.Low[i], quote.Close[i]
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // null bar (holiday etc.)
		}
		var v float64
		if i < len(quote.Volume) {
			v = quote.Volume[i]
		}
		rows = append(rows, row{ts: time.Unix(ts, 0), o: o, h: h, l: l, c: c, v: v})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ts.Before(rows[j].ts) })

	frame := model.NewFrame()
	frame.Index = make([]time.Time, len(rows))
	open := make([]float64, len(rows))
	high := make([]float64, len(rows))
	low := make([]float64, len(rows))
	closes := make([]float64, len(rows))
	volume := make([]float64, len(rows))
	for i, r := range rows {
		frame.Index[i] = r.ts
		open[i], high[i], low[i], closes[i], volume[i] = r.o, r.h, r.l, r.c, r.v
	}
	frame.Columns[model.ColOpen+"/"+qualifier] = open
	frame.Columns[model.ColHigh+"/"+qualifier] = high
	frame.Columns[model.ColLow+"/"+qualifier] = low
	frame.Columns[model.ColClose+"/"+qualifier] = closes
	frame.Columns[model.ColVolume+"/"+qualifier] = volume
	return frame, nil
}
