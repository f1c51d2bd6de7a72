// Package titans parses titans command flags and starts a local match.
package titans

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/titans/internal/platform/cmd"
	"github.com/louisbranch/titans/internal/platform/i18n/catalog"
	server "github.com/louisbranch/titans/internal/services/titans/app"
)

// Config holds titans command configuration.
type Config struct {
	MainClock    int           `env:"MAIN_CLOCK" envDefault:"120"`
	TurnClock    int           `env:"TURN_CLOCK" envDefault:"30"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	JournalPath  string        `env:"JOURNAL_PATH"`
	Locale       string        `env:"LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.MainClock, "main-clock", cfg.MainClock, "Seconds each player has for the whole match")
	fs.IntVar(&cfg.TurnClock, "turn-clock", cfg.TurnClock, "Seconds allowed per turn")
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Wall-clock length of one clock second")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "Sqlite file for the event journal (empty keeps it in memory)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for board text")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.MainClock <= 0 || cfg.TurnClock <= 0 {
		return Config{}, fmt.Errorf("clock budgets must be positive: main %d, turn %d", cfg.MainClock, cfg.TurnClock)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive: %s", cfg.TickInterval)
	}
	if !catalog.Default().HasLocale(cfg.Locale) {
		return Config{}, fmt.Errorf("unsupported locale %q (have %v)", cfg.Locale, catalog.Default().Locales())
	}
	return cfg, nil
}

// Run starts a match in the terminal.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTitans, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			MainBudget:   cfg.MainClock,
			TurnBudget:   cfg.TurnClock,
			TickInterval: cfg.TickInterval,
			JournalPath:  cfg.JournalPath,
			Locale:       cfg.Locale,
		})
	})
}
