// Command balance sweeps a roster matchup across many seeds in parallel
// and reports the win/draw split, for tuning weapons, offhands and skills.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/grimward/arena9/internal/battle"
	"github.com/grimward/arena9/internal/config"
	"github.com/grimward/arena9/internal/rng"
)

func main() {
	cfgPath := flag.String("config", "config/battle.yaml", "battle config file")
	runs := flag.Int("runs", 1000, "number of seeds to simulate")
	startSeed := flag.Int64("start-seed", 1, "first seed of the sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel simulations")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), *cfgPath, *runs, *startSeed, *workers); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

type tally struct {
	mu        sync.Mutex
	winsA     int
	winsB     int
	draws     int
	teamTurns int
}

func (t *tally) record(out battle.Outcome, turns int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch out {
	case battle.OutcomeA:
		t.winsA++
	case battle.OutcomeB:
		t.winsB++
	default:
		t.draws++
	}
	t.teamTurns += turns
}

func run(ctx context.Context, cfgPath string, runs int, startSeed int64, workers int) error {
	cfg, err := config.LoadBattle(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	roster, err := battle.RosterFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("building roster: %w", err)
	}
	engCfg := battle.ConfigFromBattle(cfg)
	starting := battle.StartingTeam(cfg)

	slog.Info("sweep starting", "runs", runs, "start_seed", startSeed, "workers", workers)

	var t tally
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < runs; i++ {
		seed := startSeed + int64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each run gets its own engine and RNG so runs never share state.
			eng, err := battle.NewEngine(engCfg, nil)
			if err != nil {
				return err
			}
			st, err := eng.NewBattle(roster, rng.New(seed), starting, nil)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			out, err := eng.Run(st)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			t.record(out, st.TeamTurn)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	total := t.winsA + t.winsB + t.draws
	if total == 0 {
		return fmt.Errorf("no runs completed")
	}
	fmt.Printf("runs=%d A=%d (%.1f%%) B=%d (%.1f%%) draws=%d (%.1f%%) avg_team_turns=%.1f\n",
		total,
		t.winsA, 100*float64(t.winsA)/float64(total),
		t.winsB, 100*float64(t.winsB)/float64(total),
		t.draws, 100*float64(t.draws)/float64(total),
		float64(t.teamTurns)/float64(total))
	return nil
}
