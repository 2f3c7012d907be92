package chart

import "github.com/wcharczuk/go-chart/v2/drawing"

// Fixed high-contrast palette tuned for automated visual consumption.
var (
	ColorUp     = drawing.ColorFromHex("26a69a")
	ColorDown   = drawing.ColorFromHex("ef5350")
	ColorGrid   = drawing.ColorFromHex("e0e0e0")
	ColorText   = drawing.ColorFromHex("000000")
	ColorCanvas = drawing.ColorWhite
)

// DPI is the fixed output resolution.
const DPI = 100.0

// volumeAlpha is applied to the palette when drawing the volume sub-panel so
// candle bodies stay readable where the panels meet.
const volumeAlpha = 168

func withAlpha(c drawing.Color, a uint8) drawing.Color {
	c.A = a
	return c
}
