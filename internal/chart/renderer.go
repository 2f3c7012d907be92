package chart

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/tgoss21/openclaw-monitor/internal/model"
)

// Default output dimensions in pixels.
const (
	DefaultWidth  = 1200
	DefaultHeight = 800
)

// Options controls a single render.
type Options struct {
	Width  int
	Height int
	Title  string
}

// Title builds the chart title line embedding ticker, latest close, sampling
// interval and latest bar date.
func Title(ticker string, lastClose float64, interval string, lastDate time.Time) string {
	return fmt.Sprintf("%s  |  $%.2f  |  %s  |  %s", ticker, lastClose, interval, lastDate.Format("2006-01-02"))
}

// barSpacing estimates the sampling interval from the median gap between
// consecutive bars, in nanoseconds. Median rather than mean so weekend and
// holiday gaps in daily data do not skew it.
func barSpacing(bars []model.Bar) float64 {
	if len(bars) < 2 {
		return float64(24 * time.Hour)
	}
	deltas := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		if d := timeToFloat(bars[i].Time) - timeToFloat(bars[i-1].Time); d > 0 {
			deltas = append(deltas, d)
		}
	}
	if len(deltas) == 0 {
		return float64(24 * time.Hour)
	}
	sort.Float64s(deltas)
	return deltas[len(deltas)/2]
}

func xTickFormat(spacing float64) string {
	if spacing < float64(24*time.Hour) {
		return "01-02 15:04"
	}
	return "2006-01-02"
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor:     ColorGrid,
		StrokeWidth:     1.0,
		StrokeDashArray: []float64{4.0, 4.0},
	}
}

// Render draws a candlestick chart with a volume sub-panel beneath it and
// returns the encoded PNG at exactly the requested dimensions.
func Render(bars []model.Bar, opts Options) ([]byte, error) {
	if len(bars) == 0 {
		return nil, errors.New("chart: no bars to render")
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = DefaultHeight
	}

	lo, hi := bars[0].Low, bars[0].High
	for _, b := range bars[1:] {
		lo = math.Min(lo, b.Low)
		hi = math.Max(hi, b.High)
	}
	span := hi - lo
	if span <= 0 {
		span = math.Abs(hi)*0.01 + 1
	}

	spacing := barSpacing(bars)
	// Pad the price range downward so the candles clear the volume band, and
	// the x-range by one bar so first and last candles are not clipped.
	yMin := lo - span*0.45
	yMax := hi + span*0.06
	xMin := timeToFloat(bars[0].Time) - spacing
	xMax := timeToFloat(bars[len(bars)-1].Time) + spacing

	graph := chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontSize: 15, FontColor: ColorText},
		Width:      width,
		Height:     height,
		DPI:        DPI,
		Background: chart.Style{FillColor: ColorCanvas},
		Canvas:     chart.Style{FillColor: ColorCanvas},
		XAxis: chart.XAxis{
			Style:          chart.Style{FontSize: 12, FontColor: ColorText},
			ValueFormatter: chart.TimeValueFormatterWithFormat(xTickFormat(spacing)),
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Style:          chart.Style{FontSize: 12, FontColor: ColorText},
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			GridMajorStyle: gridStyle(),
		},
		Series: []chart.Series{
			// volume first so candle bodies draw over the band boundary
			VolumeSeries{Name: "volume", Bars: bars, UpColor: ColorUp, DownColor: ColorDown},
			CandleSeries{Name: "price", Bars: bars, UpColor: ColorUp, DownColor: ColorDown},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
