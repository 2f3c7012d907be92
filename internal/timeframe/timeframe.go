package timeframe

// Timeframe pairs a lookback period with a sampling interval, both in the
// market data provider's notation ("3mo", "1d", "5m", ...).
type Timeframe struct {
	Period   string
	Interval string
	Reason   string
}

// Default is used when no alert type is supplied or the token is unknown.
var Default = Timeframe{Period: "3mo", Interval: "1d", Reason: "default daily chart"}

// byAlert maps an alert-type token from the calling system to the timeframe
// that gives the most relevant visual context for that alert.
var byAlert = map[string]Timeframe{
	"nearStopLoss": {Period: "1d", Interval: "5m", Reason: "precise recent action, need to act now"},
	"nearTarget":   {Period: "1d", Interval: "5m", Reason: "precise recent action, approaching target"},
	"maCross":      {Period: "3mo", Interval: "1d", Reason: "trend context to confirm crossover"},
	"volumeSpike":  {Period: "5d", Interval: "1h", Reason: "spike relative to recent sessions"},
	"rsi":          {Period: "3mo", Interval: "1d", Reason: "broader context for RSI extremes"},
	"priceChange":  {Period: "1d", Interval: "15m", Reason: "intraday move structure"},
}

// ForAlert returns the timeframe mapped to the given alert type. The second
// return value is false for unknown tokens, in which case callers fall back
// to Default.
func ForAlert(alertType string) (Timeframe, bool) {
	tf, ok := byAlert[alertType]
	return tf, ok
}

// Known reports whether the alert type has a mapped timeframe.
func Known(alertType string) bool {
	_, ok := byAlert[alertType]
	return ok
}

// AlertTypes lists the known alert-type tokens, for usage text.
func AlertTypes() []string {
	return []string{"nearStopLoss", "nearTarget", "maCross", "volumeSpike", "rsi", "priceChange"}
}
