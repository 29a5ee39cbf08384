// Package match deals fresh positions and runs independent turn-searches
// concurrently for benchmarking. NewDealtPosition follows the teacher's
// deck lifecycle (build the full deck, Shuffle, DealN) adapted onto
// package pile's Fisher-Yates shuffle; Sweep follows the teacher's
// goroutine-per-independent-unit benchmark style (cmd/benchmark's
// per-bot goroutine pool) using an errgroup, since every searched
// Position here is wholly independent — there is no shared mutable state
// between them, unlike the single Position a single search call owns.
package match

import (
	"context"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rummysearch/internal/cardset"
	"github.com/lox/rummysearch/internal/pile"
	"github.com/lox/rummysearch/internal/position"
	"github.com/lox/rummysearch/internal/search"
	"github.com/lox/rummysearch/internal/table"
)

// NewDealtPosition shuffles a full 52-card deck with src and deals
// handSize cards to each of numPlayers players, leaving the rest on the
// draw pile and an empty discard pile and table.
func NewDealtPosition(numPlayers, handSize int, src pile.UniformSource) (*position.Position, error) {
	deck := pile.New()
	for b := cardset.FullDeck.Low(); b != 0; b = cardset.FullDeck.Next(b) {
		deck.Push(b.ToCard())
	}
	deck.Shuffle(src)

	players := make([]position.Player, numPlayers)
	for i := range players {
		var hand cardset.Set
		for n := 0; n < handSize; n++ {
			hand = hand.Add(cardset.Of(deck.Pop()).Expand())
		}
		players[i] = position.Player{Hand: hand, ID: i}
	}

	return position.New(players, deck, pile.New(), table.Table{})
}

// SweepResult is one independent search's outcome within a Sweep. RunID
// tags the result for correlation in structured logs, the way the teacher
// tags a bot session with a generated UUID.
type SweepResult struct {
	RunID    string
	Play     search.Play
	Duration time.Duration
}

// Sweep runs n independent turn-searches concurrently, each against its
// own clone of base, and reports how long each took against clock. It
// never shares a Position across goroutines — every clone is searched
// and discarded by exactly one goroutine.
func Sweep(ctx context.Context, base *position.Position, idx int, n int, clock quartz.Clock) ([]SweepResult, error) {
	results := make([]SweepResult, n)
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			pos := base.Clone()
			start := clock.Now()
			play := search.Run(pos, idx)
			results[i] = SweepResult{RunID: uuid.NewString(), Play: play, Duration: clock.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
