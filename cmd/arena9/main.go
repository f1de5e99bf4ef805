package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/grimward/arena9/internal/battle"
	"github.com/grimward/arena9/internal/config"
	"github.com/grimward/arena9/internal/model"
	"github.com/grimward/arena9/internal/rng"
)

const DefaultConfigPath = "config/battle.yaml"

func main() {
	cfgPath := flag.String("config", DefaultConfigPath, "battle config file")
	seed := flag.Int64("seed", 0, "override the config seed (0 = use config)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	quiet := flag.Bool("quiet", false, "suppress the battle log, print only the outcome")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	})))

	if err := run(*cfgPath, *seed, *quiet); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(cfgPath string, seedOverride int64, quiet bool) error {
	if p := os.Getenv("ARENA9_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBattle(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	seed := cfg.Seed
	if seedOverride != 0 {
		seed = seedOverride
	}

	roster, err := battle.RosterFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("building roster: %w", err)
	}

	eng, err := battle.NewEngine(battle.ConfigFromBattle(cfg), nil)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	var sink model.Sink
	if !quiet {
		sink = model.WriterSink{W: os.Stdout}
	}

	st, err := eng.NewBattle(roster, rng.New(seed), battle.StartingTeam(cfg), sink)
	if err != nil {
		return fmt.Errorf("setting up battle: %w", err)
	}

	slog.Info("battle starting", "seed", seed, "units", len(roster))
	outcome, err := eng.Run(st)
	if err != nil {
		return fmt.Errorf("running battle: %w", err)
	}

	fmt.Printf("outcome=%s team_turns=%d seed=%d\n", outcome, st.TeamTurn, seed)
	return nil
}

// parseLogLevel converts a string log level to slog.Level, defaulting
// to Info.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
