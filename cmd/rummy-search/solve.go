package main

import (
	"fmt"
	"os"

	"github.com/lox/rummysearch/internal/card"
	"github.com/lox/rummysearch/internal/cardset"
	"github.com/lox/rummysearch/internal/pile"
	"github.com/lox/rummysearch/internal/position"
	"github.com/lox/rummysearch/internal/randutil"
	"github.com/lox/rummysearch/internal/rlog"
	"github.com/lox/rummysearch/internal/rtext"
	"github.com/lox/rummysearch/internal/search"
	"github.com/lox/rummysearch/internal/table"
)

// SolveCmd searches a single player's best turn from a position described
// entirely on the command line: the searching player's hand, the top of
// each pile, any standing table melds, and the other players' hand sizes
// (their exact cards never affect the search, only their count does).
type SolveCmd struct {
	Hand    []string `kong:"arg,help='Searching player hand, e.g. 2C 3C 4C'"`
	Draw    []string `kong:"help='Draw pile, top card first'"`
	Discard []string `kong:"help='Discard pile, top card first'"`
	Runs    []string `kong:"help='Cards already melded as runs'"`
	Sets    []string `kong:"help='Cards already melded as sets'"`
	Rivals  []int    `kong:"help='Hand sizes of the other players, in seating order'"`
	Seed    int64    `kong:"default='1',env='RUMMYSEARCH_SEED',help='Seed used to deal the unseen cards among rivals and the draw pile'"`
	Debug   bool     `kong:"help='Enable debug logging'"`
}

func (c *SolveCmd) Run() error {
	logger := rlog.New(os.Stderr, c.Debug)

	hand, err := parseTokens(c.Hand)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	drawTop, err := parseTokens(c.Draw)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	discardTop, err := parseTokens(c.Discard)
	if err != nil {
		return fmt.Errorf("discard: %w", err)
	}
	runs, err := parseTokens(c.Runs)
	if err != nil {
		return fmt.Errorf("runs: %w", err)
	}
	sets, err := parseTokens(c.Sets)
	if err != nil {
		return fmt.Errorf("sets: %w", err)
	}

	tbl := table.Table{Runs: toSet(runs), Sets: toSet(sets)}

	used := tbl.All().Add(toSet(hand)).Add(toSet(drawTop)).Add(toSet(discardTop))
	remaining := cardset.FullDeck.Remove(used)

	remDeck := pile.New()
	for b := remaining.Low(); b != 0; b = remaining.Next(b) {
		remDeck.Push(b.ToCard())
	}
	remDeck.Shuffle(randutil.NewDeterministic(c.Seed))

	players := make([]position.Player, 1+len(c.Rivals))
	var playerHand cardset.Set
	for _, hc := range hand {
		playerHand = playerHand.Add(cardset.Of(hc).Expand())
	}
	players[0] = position.Player{Hand: playerHand, ID: 0}
	for i, n := range c.Rivals {
		var h cardset.Set
		for k := 0; k < n; k++ {
			h = h.Add(cardset.Of(remDeck.Pop()).Expand())
		}
		players[i+1] = position.Player{Hand: h, ID: i + 1}
	}

	discard := pile.New()
	for i := len(discardTop) - 1; i >= 0; i-- {
		discard.Push(discardTop[i])
	}

	draw := pile.New()
	for remDeck.Size() > 0 {
		draw.Push(remDeck.Pop())
	}
	for i := len(drawTop) - 1; i >= 0; i-- {
		draw.Push(drawTop[i])
	}

	pos, err := position.New(players, draw, discard, tbl)
	if err != nil {
		return fmt.Errorf("building position: %w", err)
	}

	logger.Debug().
		Str("hand", rtext.FormatSet(playerHand.Contract())).
		Int("draw_pile", draw.Size()).
		Int("discard_pile", discard.Size()).
		Msg("searching")

	play := search.Run(pos, 0)
	printPlay(play)
	return nil
}

func printPlay(play search.Play) {
	fmt.Printf("eval:       %d\n", play.Eval)
	fmt.Printf("take:       %d (deepest %s)\n", play.NumTaken, rtext.FormatSet(play.Deepest))
	fmt.Printf("draw:       %s\n", rtext.FormatSet(play.Draw))
	fmt.Printf("melds:\n%s", rtext.Grid(play.Melds.Runs, play.Melds.Sets))
	fmt.Printf("discard:    %s\n", rtext.FormatSet(play.Discard))
}

func parseTokens(toks []string) ([]card.Card, error) {
	cards := make([]card.Card, len(toks))
	for i, tok := range toks {
		c, err := card.Parse(tok)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

func toSet(cards []card.Card) cardset.Set {
	var s cardset.Set
	for _, c := range cards {
		s = s.Add(cardset.Of(c))
	}
	return s
}
