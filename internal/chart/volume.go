package chart

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tgoss21/openclaw-monitor/internal/model"
)

// volumeBand is the fraction of the canvas height the volume sub-panel
// occupies at the bottom. Render keeps the price range padded clear of it.
const volumeBand = 0.28

// VolumeSeries draws per-bar volume as a bar panel anchored to the bottom of
// the canvas, sharing the candle x-axis so the two panels stay pixel-aligned.
// It deliberately implements no values provider: volume magnitudes must not
// leak into the price y-range.
type VolumeSeries struct {
	Name      string
	Bars      []model.Bar
	UpColor   drawing.Color
	DownColor drawing.Color
}

func (s VolumeSeries) GetName() string { return s.Name }

func (s VolumeSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (s VolumeSeries) GetStyle() chart.Style { return chart.Style{StrokeWidth: 1.0} }

func (s VolumeSeries) Validate() error {
	if len(s.Bars) == 0 {
		return fmt.Errorf("volume series: no bars")
	}
	return nil
}

func (s VolumeSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, _ chart.Range, _ chart.Style) {
	if len(s.Bars) == 0 {
		return
	}
	var maxVol int64
	for _, b := range s.Bars {
		if b.Volume > maxVol {
			maxVol = b.Volume
		}
	}
	if maxVol == 0 {
		return // nothing to scale against
	}

	band := float64(canvasBox.Height()) * volumeBand
	half := bodyHalfWidth(canvasBox.Width(), len(s.Bars))

	for _, b := range s.Bars {
		x := canvasBox.Left + xrange.Translate(timeToFloat(b.Time))
		height := int(band * float64(b.Volume) / float64(maxVol))
		if height < 1 {
			height = 1
		}
		color := withAlpha(s.UpColor, volumeAlpha)
		if b.Close < b.Open {
			color = withAlpha(s.DownColor, volumeAlpha)
		}

		top := canvasBox.Bottom - height
		r.SetFillColor(color)
		r.MoveTo(x-half, top)
		r.LineTo(x+half, top)
		r.LineTo(x+half, canvasBox.Bottom)
		r.LineTo(x-half, canvasBox.Bottom)
		r.Close()
		r.Fill()
	}
}
