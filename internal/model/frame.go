package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Column labels expected by Bars.
const (
	ColOpen   = "Open"
	ColHigh   = "High"
	ColLow    = "Low"
	ColClose  = "Close"
	ColVolume = "Volume"
)

// Frame holds a timestamp-indexed columnar series as returned by a market
// data provider. Column keys are either plain field labels ("Close") or
// symbol-qualified ("Close/AAPL") when the provider groups fields per symbol.
type Frame struct {
	Index   []time.Time
	Columns map[string][]float64
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{Columns: make(map[string][]float64)}
}

// Empty reports whether the frame has no rows.
func (f *Frame) Empty() bool {
	return f == nil || len(f.Index) == 0
}

// Flatten collapses symbol-qualified column keys to their leading field
// label, so "Close/AAPL" becomes "Close". Plain keys pass through unchanged.
// When two qualified keys collapse to the same label the lexicographically
// first source column wins. Idempotent.
func (f *Frame) Flatten() {
	if f == nil || len(f.Columns) == 0 {
		return
	}
	keys := make([]string, 0, len(f.Columns))
	for k := range f.Columns {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flat := make(map[string][]float64, len(keys))
	for _, k := range keys {
		label, _, _ := strings.Cut(k, "/")
		if _, exists := flat[label]; !exists {
			flat[label] = f.Columns[k]
		}
	}
	f.Columns = flat
}

// Column returns the values for the given field label, or nil.
func (f *Frame) Column(label string) []float64 {
	if f == nil {
		return nil
	}
	return f.Columns[label]
}

// Bars materializes the frame into a chronological bar slice. The frame must
// be flattened first if the provider emitted qualified keys.
func (f *Frame) Bars() ([]Bar, error) {
	if f.Empty() {
		return nil, nil
	}
	n := len(f.Index)
	cols := make(map[string][]float64, 5)
	for _, label := range []string{ColOpen, ColHigh, ColLow, ColClose, ColVolume} {
		vals := f.Columns[label]
		if vals == nil {
			return nil, fmt.Errorf("frame: missing column %q", label)
		}
		if len(vals) != n {
			return nil, fmt.Errorf("frame: column %q has %d rows, index has %d", label, len(vals), n)
		}
		cols[label] = vals
	}
	bars := make([]Bar, n)
	for i := 0; i < n; i++ {
		bars[i] = Bar{
			Time:   f.Index[i],
			Open:   cols[ColOpen][i],
			High:   cols[ColHigh][i],
			Low:    cols[ColLow][i],
			Close:  cols[ColClose][i],
			Volume: int64(cols[ColVolume][i]),
		}
	}
	return bars, nil
}
