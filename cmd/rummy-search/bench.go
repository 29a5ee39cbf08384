package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/rummysearch/internal/match"
	"github.com/lox/rummysearch/internal/randutil"
	"github.com/lox/rummysearch/internal/rlog"
)

// BenchCmd deals one position from the seed and runs a sweep of
// independent concurrent searches, each against its own clone of that
// position, reporting throughput.
type BenchCmd struct {
	Players  int   `kong:"default='4',env='RUMMYSEARCH_PLAYERS',help='Players per dealt position'"`
	HandSize int   `kong:"default='10',help='Cards dealt to each player'"`
	Searches int   `kong:"default='64',help='Concurrent searches to run'"`
	Seed     int64 `kong:"default='1',env='RUMMYSEARCH_SEED',help='Deal RNG seed'"`
	Debug    bool  `kong:"help='Enable debug logging'"`
}

func (c *BenchCmd) Run() error {
	logger := rlog.NewStructured(os.Stderr, c.Debug)

	pos, err := match.NewDealtPosition(c.Players, c.HandSize, randutil.NewDeterministic(c.Seed))
	if err != nil {
		return fmt.Errorf("dealing: %w", err)
	}

	clock := quartz.NewReal()
	start := clock.Now()
	results, err := match.Sweep(context.Background(), pos, 0, c.Searches, clock)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	total := clock.Since(start)

	var sum time.Duration
	best := results[0].Play.Eval
	for _, r := range results {
		sum += r.Duration
		if r.Play.Eval > best {
			best = r.Play.Eval
		}
	}

	logger.Info().
		Int("searches", len(results)).
		Dur("wall_time", total).
		Dur("mean_search_time", sum/time.Duration(len(results))).
		Int("best_eval", best).
		Msg("bench complete")

	fmt.Printf("searches:        %d\n", len(results))
	fmt.Printf("wall time:       %s\n", total)
	fmt.Printf("mean per search: %s\n", sum/time.Duration(len(results)))
	fmt.Printf("best eval found: %d\n", best)
	return nil
}
