package timeframe

import "testing"

func TestForAlert_AllTokens(t *testing.T) {
	tests := []struct {
		token    string
		period   string
		interval string
	}{
		{"nearStopLoss", "1d", "5m"},
		{"nearTarget", "1d", "5m"},
		{"maCross", "3mo", "1d"},
		{"volumeSpike", "5d", "1h"},
		{"rsi", "3mo", "1d"},
		{"priceChange", "1d", "15m"},
	}
	for _, tt := range tests {
		tf, ok := ForAlert(tt.token)
		if !ok {
			t.Errorf("%s: expected known token", tt.token)
			continue
		}
		if tf.Period != tt.period || tf.Interval != tt.interval {
			t.Errorf("%s: expected %s/%s, got %s/%s", tt.token, tt.period, tt.interval, tf.Period, tf.Interval)
		}
		if tf.Reason == "" {
			t.Errorf("%s: expected non-empty reason", tt.token)
		}
	}
}

func TestForAlert_UnknownToken(t *testing.T) {
	if _, ok := ForAlert("bogus"); ok {
		t.Error("expected unknown token to report not found")
	}
	if Known("bogus") {
		t.Error("expected Known to be false for bogus token")
	}
	// Unknown tokens fall back to the same pair as no token at all.
	if Default.Period != "3mo" || Default.Interval != "1d" {
		t.Errorf("expected default 3mo/1d, got %s/%s", Default.Period, Default.Interval)
	}
}

func TestAlertTypes_CoversTable(t *testing.T) {
	types := AlertTypes()
	if len(types) != len(byAlert) {
		t.Fatalf("expected %d alert types, got %d", len(byAlert), len(types))
	}
	for _, token := range types {
		if !Known(token) {
			t.Errorf("listed token %s is not in the table", token)
		}
	}
}
