package chart

import (
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tgoss21/openclaw-monitor/internal/model"
)

func timeToFloat(t time.Time) float64 {
	return float64(t.UnixNano())
}

// CandleSeries renders OHLC bars as candlesticks: a one-pixel wick from low
// to high and a filled body between open and close, colored by direction
// with wick and edge inheriting the body color.
type CandleSeries struct {
	Name      string
	Bars      []model.Bar
	UpColor   drawing.Color
	DownColor drawing.Color
}

func (s CandleSeries) GetName() string { return s.Name }

func (s CandleSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (s CandleSeries) GetStyle() chart.Style { return chart.Style{StrokeWidth: 1.0} }

func (s CandleSeries) Validate() error {
	if len(s.Bars) == 0 {
		return fmt.Errorf("candle series: no bars")
	}
	return nil
}

// Len and GetBoundedValues let the chart derive x and y extents from the
// full high/low span of each bar.
func (s CandleSeries) Len() int { return len(s.Bars) }

func (s CandleSeries) GetBoundedValues(index int) (x, y1, y2 float64) {
	b := s.Bars[index]
	return timeToFloat(b.Time), b.High, b.Low
}

// bodyHalfWidth sizes candle bodies from the available horizontal density.
func bodyHalfWidth(canvasWidth, count int) int {
	spacing := float64(canvasWidth) / float64(count+1)
	half := spacing * 0.36
	if half < 1 {
		half = 1
	}
	if half > 14 {
		half = 14
	}
	return int(half)
}

func (s CandleSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	if len(s.Bars) == 0 {
		return
	}
	half := bodyHalfWidth(canvasBox.Width(), len(s.Bars))

	for _, b := range s.Bars {
		x := canvasBox.Left + xrange.Translate(timeToFloat(b.Time))
		yHigh := canvasBox.Bottom - yrange.Translate(b.High)
		yLow := canvasBox.Bottom - yrange.Translate(b.Low)
		yOpen := canvasBox.Bottom - yrange.Translate(b.Open)
		yClose := canvasBox.Bottom - yrange.Translate(b.Close)

		color := s.UpColor
		if b.Close < b.Open {
			color = s.DownColor
		}

		// wick
		r.SetStrokeColor(color)
		r.SetStrokeWidth(1.0)
		r.SetStrokeDashArray(nil)
		r.MoveTo(x, yHigh)
		r.LineTo(x, yLow)
		r.Stroke()

		// body
		top, bottom := yOpen, yClose
		if top > bottom {
			top, bottom = bottom, top
		}
		if bottom == top {
			bottom = top + 1 // doji still gets a visible body
		}
		r.SetFillColor(color)
		r.SetStrokeColor(color)
		r.SetStrokeWidth(1.0)
		r.MoveTo(x-half, top)
		r.LineTo(x+half, top)
		r.LineTo(x+half, bottom)
		r.LineTo(x-half, bottom)
		r.Close()
		r.FillStroke()
	}
}
