package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tgoss21/openclaw-monitor/internal/config"
	"github.com/tgoss21/openclaw-monitor/internal/fetcher"
	"github.com/tgoss21/openclaw-monitor/internal/generator"
	"github.com/tgoss21/openclaw-monitor/internal/timeframe"
)

var rootCmd = &cobra.Command{
	Use:   "chartgen TICKER [ALERT_TYPE | PERIOD INTERVAL [WIDTH] [HEIGHT]]",
	Short: "Render a candlestick chart image for a ticker",
	Long: "Fetches historical bars for a ticker and renders a candlestick chart\n" +
		"with a volume sub-panel. With an alert type, the timeframe is picked\n" +
		"from a static table; otherwise pass an explicit period and interval.\n\n" +
		"Alert types: " + strings.Join(timeframe.AlertTypes(), ", "),
	Args: cobra.RangeArgs(1, 5),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// Usage help is only for argument mistakes, not runtime failures.
	cmd.SilenceUsage = true

	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	req, err := resolveRequest(args, cfg)
	if err != nil {
		return err
	}

	f := fetcher.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Infof("data source: %s", f.Name())

	gen := generator.New(f, cfg.Chart.Dir)
	res, err := gen.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	// The calling process scrapes the saved path from stdout.
	fmt.Printf("Chart saved: %s (%s)\n", res.Path, humanize.IBytes(uint64(res.Size)))
	return nil
}

// resolveRequest maps the positional arguments onto a generation request.
// A recognized alert type picks the timeframe from the static table; an
// unrecognized one behaves exactly like a bare ticker and falls back to the
// default timeframe. Three or more arguments are a manual period/interval
// override with optional pixel dimensions.
func resolveRequest(args []string, cfg *config.Config) (generator.Request, error) {
	req := generator.Request{
		Ticker: args[0],
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
	}

	switch {
	case len(args) == 2 && timeframe.Known(args[1]):
		// Alert-driven mode: auto-select timeframe.
		tf, _ := timeframe.ForAlert(args[1])
		req.Period, req.Interval = tf.Period, tf.Interval
		log.Infof("alert %s resolved to %s/%s (%s)", args[1], tf.Period, tf.Interval, tf.Reason)
	case len(args) >= 3:
		// Manual override mode.
		var err error
		req.Period, req.Interval = args[1], args[2]
		if len(args) > 3 {
			if req.Width, err = strconv.Atoi(args[3]); err != nil {
				return generator.Request{}, fmt.Errorf("invalid width %q: %w", args[3], err)
			}
		}
		if len(args) > 4 {
			if req.Height, err = strconv.Atoi(args[4]); err != nil {
				return generator.Request{}, fmt.Errorf("invalid height %q: %w", args[4], err)
			}
		}
	default:
		// Bare ticker or unrecognized alert type: default timeframe.
		req.Period, req.Interval = timeframe.Default.Period, timeframe.Default.Interval
	}
	return req, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
