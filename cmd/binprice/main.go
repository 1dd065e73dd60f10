package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/krazyTry/concentrated-amm-go/internal/config"
	"github.com/krazyTry/concentrated-amm-go/internal/logger"
	ammmath "github.com/krazyTry/concentrated-amm-go/math"
	"github.com/krazyTry/concentrated-amm-go/pool"
	"github.com/krazyTry/concentrated-amm-go/shared"
)

type row struct {
	Pool     string `json:"pool"`
	BinID    int32  `json:"binId"`
	Offset   int64  `json:"offset"`
	Active   bool   `json:"active"`
	Rounding string `json:"rounding"`
	PriceX18 string `json:"priceX18"`
	PriceY   string `json:"priceY"`
	PriceX   string `json:"priceX"`
}

func main() {
	configPath := flag.String("config", "", "Path to YAML config file; flags below are ignored when set")
	binStep := flag.Uint("bin-step", 10, "Bin step in basis points")
	activeBin := flag.Int("active-bin", 0, "Active bin id")
	width := flag.Int("width", config.DefaultWidth, "Bins quoted on each side of the active bin")
	roundUp := flag.Bool("round-up", false, "Round prices up instead of down")
	format := flag.String("format", config.FormatText, "Output format: text or json")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = flagConfig(*binStep, *activeBin, *width, *roundUp, *format, *logLevel)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "binprice:", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.App.LogLevel)
	err = run(cfg, log, os.Stdout)
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run quotes every configured pool and writes the result to w. Failures are logged
// before they are returned.
func run(cfg *config.Config, log *zap.Logger, w io.Writer) error {
	ammmath.SetLogger(log.Named("math"))
	defer ammmath.SetLogger(nil)

	rows, err := quotePools(cfg, log)
	if err != nil {
		log.Error("failed to quote pools", zap.Error(err))
		return err
	}
	if err := render(w, cfg.Output.Format, rows); err != nil {
		log.Error("failed to write output", zap.Error(err))
		return err
	}
	return nil
}

// flagConfig builds a single-pool configuration from command line flags.
func flagConfig(binStep uint, activeBin, width int, roundUp bool, format, logLevel string) (*config.Config, error) {
	if binStep > math.MaxUint32 {
		return nil, fmt.Errorf("bin-step %d out of range", binStep)
	}
	if activeBin < math.MinInt32 || activeBin > math.MaxInt32 {
		return nil, fmt.Errorf("active-bin %d out of range", activeBin)
	}
	if width < 0 || width > pool.MaxQuoteRange {
		return nil, fmt.Errorf("width %d out of range", width)
	}
	cfg := &config.Config{
		App:    config.AppConfig{Name: "binprice", LogLevel: logLevel},
		Output: config.OutputConfig{Format: format, RoundUp: roundUp},
		Pools: []config.PoolConfig{{
			Name:      "cli",
			BinStep:   uint32(binStep),
			ActiveBin: int32(activeBin),
			Width:     int32(width),
		}},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func quotePools(cfg *config.Config, log *zap.Logger) ([]row, error) {
	var rows []row
	for i := range cfg.Pools {
		pc := &cfg.Pools[i]
		p, err := pc.Resolve()
		if err != nil {
			return nil, fmt.Errorf("pool %q: %w", pc.Name, err)
		}

		minBin, maxBin := binWindow(p.ActiveBin, pc.Width)
		log.Info("quoting pool",
			zap.String("pool", pc.Name),
			zap.Uint32("binStep", p.BinStep),
			zap.Int32("activeBin", p.ActiveBin),
			zap.Int32("minBin", minBin),
			zap.Int32("maxBin", maxBin),
		)

		quotes, err := p.QuoteRange(minBin, maxBin, cfg.Output.RoundUp)
		if err != nil {
			return nil, fmt.Errorf("pool %q: %w", pc.Name, err)
		}
		for _, q := range quotes {
			priceX, err := q.PriceFor(shared.TokenX)
			if err != nil {
				return nil, fmt.Errorf("pool %q bin %d: %w", pc.Name, q.BinID, err)
			}
			rows = append(rows, row{
				Pool:     pc.Name,
				BinID:    q.BinID,
				Offset:   q.Offset,
				Active:   q.Offset == 0,
			Rounding: q.Rounding().String(),
				PriceX18: q.PriceX18.BigInt().String(),
				PriceY:   q.Price().String(),
				PriceX:   priceX.String(),
			})
		}
	}
	return rows, nil
}

// binWindow clamps [active-width, active+width] to the int32 range.
func binWindow(active, width int32) (int32, int32) {
	lo := int64(active) - int64(width)
	hi := int64(active) + int64(width)
	if lo < math.MinInt32 {
		lo = math.MinInt32
	}
	if hi > math.MaxInt32 {
		hi = math.MaxInt32
	}
	return int32(lo), int32(hi)
}

func render(w io.Writer, format string, rows []row) error {
	if format == config.FormatJSON {
		out, err := jsoniter.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POOL\tBIN\tOFFSET\tPRICE Y/X\tPRICE X/Y\t")
	for _, r := range rows {
		marker := ""
		if r.Active {
			marker = " *"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n", r.Pool, r.BinID, r.Offset, r.PriceY, r.PriceX, marker)
	}
	return tw.Flush()
}
