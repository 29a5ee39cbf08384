package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rummysearch/internal/card"
	"github.com/lox/rummysearch/internal/cardset"
	"github.com/lox/rummysearch/internal/pile"
	"github.com/lox/rummysearch/internal/position"
	"github.com/lox/rummysearch/internal/table"
)

func mustCard(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.Parse(s)
	require.NoError(t, err)
	return c
}

// scenario builds a Position from token lists: hands[i] is player i's hand,
// drawTop/discardTop are each "top to bottom" (index 0 is the physical top
// of the pile), and tbl seeds any pre-existing table melds. Every card not
// otherwise placed fills out the draw pile, so every test gets a complete,
// valid 52-card partition.
func scenario(t *testing.T, hands [][]string, drawTop, discardTop []string, tbl table.Table) *position.Position {
	t.Helper()
	canonical := func(tok string) card.Card {
		return cardset.Of(mustCard(t, tok)).Contract().ToCard()
	}

	used := tbl.All()
	players := make([]position.Player, len(hands))
	for i, toks := range hands {
		var h cardset.Set
		for _, tok := range toks {
			c := canonical(tok)
			h = h.Add(cardset.Of(c).Expand())
			used = used.Add(cardset.Of(c))
		}
		players[i] = position.Player{Hand: h, ID: i}
	}

	draw := pile.New()
	discard := pile.New()
	for _, tok := range discardTop {
		used = used.Add(cardset.Of(canonical(tok)))
	}
	for i := len(discardTop) - 1; i >= 0; i-- {
		discard.Push(canonical(discardTop[i]))
	}
	for _, tok := range drawTop {
		used = used.Add(cardset.Of(canonical(tok)))
	}

	remaining := cardset.FullDeck.Remove(used)
	for b := remaining.Low(); b != 0; b = remaining.Next(b) {
		draw.Push(b.ToCard())
	}
	for i := len(drawTop) - 1; i >= 0; i-- {
		draw.Push(canonical(drawTop[i]))
	}

	pos, err := position.New(players, draw, discard, tbl)
	require.NoError(t, err)
	return pos
}

// A single player, no melds possible: the eval formula rewards points kept
// in hand (halved) over points sent to the discard pile, so the cheapest
// card, not the costliest, is the correct discard — drawing is explored
// and wins because it strictly grows the hand.
func TestPrefersDrawAndDiscardsCheapestCard(t *testing.T) {
	pos := scenario(t,
		[][]string{{"2C", "5D", "8H", "JS"}},
		[]string{"6D"}, nil, table.Table{})

	play := Run(pos, 0)

	assert.Equal(t, 0, play.NumTaken)
	assert.Equal(t, cardset.Of(mustCard(t, "6D")), play.Draw)
	assert.Equal(t, cardset.Of(mustCard(t, "2C")), play.Discard)
	assert.Equal(t, 12, play.Eval)
	assert.Equal(t, table.Table{}, play.Melds)
}

// Melding both the set and the run strictly dominates any partial or
// no-meld alternative (melded points count in full, unmelded points only
// count at half), so the search must find both, prefer not drawing (the
// draw pile's top card cannot improve on an already-maximal meld), and
// discard the lone leftover card.
func TestMeldsBothSetAndRunAndDiscardsRemainder(t *testing.T) {
	pos := scenario(t,
		[][]string{
			{"8C", "8D", "8H", "2S", "3S", "4S", "KS"},
			{"2D", "3D", "4D", "5D", "6D", "7D"},
			{"2H", "3H", "4H", "5H", "6H"},
		},
		[]string{"9S"}, nil, table.Table{})

	play := Run(pos, 0)

	assert.Equal(t, 0, play.NumTaken)
	assert.Equal(t, cardset.Set(0), play.Draw)
	wantRun := cardset.Of(mustCard(t, "2S")).Add(cardset.Of(mustCard(t, "3S"))).Add(cardset.Of(mustCard(t, "4S")))
	wantSet := cardset.Of(mustCard(t, "8C")).Add(cardset.Of(mustCard(t, "8D"))).Add(cardset.Of(mustCard(t, "8H")))
	assert.Equal(t, wantRun, play.Melds.Runs)
	assert.Equal(t, wantSet, play.Melds.Sets)
	assert.Equal(t, cardset.Of(mustCard(t, "KS")), play.Discard)
	// score +30 from the two melds, going-out bonus 7*(6+5)/(3-1) = 38.
	assert.Equal(t, 68, play.Eval)
}

// Taking a card from the discard pile that can never be melded (no run
// neighbor, no matching set) makes every leaf under that take-depth
// illegal, however high its raw evaluation looks — the search must revert
// to the best play found at a shallower take-depth rather than keep an
// unmeldable deepest card.
func TestRejectsPlayThatDoesNotMeldDeepestTaken(t *testing.T) {
	pos := scenario(t,
		[][]string{{"2C"}},
		[]string{"3D"}, []string{"KC", "KH"}, table.Table{})

	play := Run(pos, 0)

	assert.Equal(t, 0, play.NumTaken)
	assert.Equal(t, cardset.Of(mustCard(t, "3D")), play.Draw)
	assert.Equal(t, cardset.Of(mustCard(t, "2C")), play.Discard)
	assert.Equal(t, table.Table{}, play.Melds)
	assert.Equal(t, 2, play.Eval)
}

// A legal, improving play taken at one depth must survive even when a
// higher-scoring but illegal sibling leaf (one that leaves the deepest
// taken card unmelded) is evaluated later in the same take-depth subtree.
// Taking KD forces a choice: meld it into the KC-KD-KH set (legal, +30,
// stranding the ace) or skip it and run the KC/KH table extensions plus
// the KH->AH cascade instead (+35, higher-scoring, but leaves KD — the
// deepest taken card — unmelded and simply discarded, which is illegal).
// The search must pick the legal set play over both the illegal cascade
// and the no-take baseline, not revert all the way past it.
func TestKeepsLegalLeafOverIllegalHigherScoringSibling(t *testing.T) {
	tbl := table.Table{Runs: cardset.Of(mustCard(t, "QC")).Add(cardset.Of(mustCard(t, "QH")))}
	pos := scenario(t,
		[][]string{
			{"KC", "KH", "AH", "7S", "9S"},
			{
				"2C", "3C", "4C", "5C", "6C", "7C", "8C", "9C", "TC", "JC", "AC",
				"2D", "3D", "4D", "5D", "6D", "7D", "8D", "9D", "TD", "JD", "QD", "AD",
				"2H", "3H", "4H", "5H", "6H", "7H", "8H", "9H", "TH", "JH",
				"2S", "3S", "4S", "5S", "6S", "8S", "TS", "JS", "QS", "KS", "AS",
			},
		},
		nil, []string{"KD"}, tbl)

	play := Run(pos, 0)

	assert.Equal(t, 1, play.NumTaken)
	assert.Equal(t, cardset.Of(mustCard(t, "KD")), play.Deepest)
	wantSet := cardset.Of(mustCard(t, "KC")).Add(cardset.Of(mustCard(t, "KD"))).Add(cardset.Of(mustCard(t, "KH")))
	assert.Equal(t, wantSet, play.Melds.Sets)
	assert.True(t, play.Melds.Sets.Has(play.Deepest))
	assert.Equal(t, 40, play.Eval)
}

// An ace held by the player can either extend a standing run as a high
// card or center a new low-ace run; both options must be enumerated, and
// the one that empties the hand (earning the going-out bonus) must win
// over the one that leaves cards behind.
func TestAceDualityPrefersTheGoingOutOption(t *testing.T) {
	tbl := table.Table{Runs: cardset.Of(mustCard(t, "JC")).
		Add(cardset.Of(mustCard(t, "QC"))).Add(cardset.Of(mustCard(t, "KC")))}
	pos := scenario(t,
		[][]string{{"AC", "2C", "3C"}, {"2H", "3H", "4H", "5H", "6H"}},
		nil, nil, tbl)

	play := Run(pos, 0)

	assert.Equal(t, 0, play.NumTaken)
	assert.Equal(t, cardset.Set(0), play.Draw)
	wantMeld := cardset.Of(mustCard(t, "aC")).Add(cardset.Of(mustCard(t, "2C"))).Add(cardset.Of(mustCard(t, "3C")))
	assert.Equal(t, wantMeld, play.Melds.Runs)
	assert.Equal(t, cardset.Set(0), play.Discard)
	// score +15 from the A-2-3 run, going-out bonus 7*5/(2-1) = 35.
	assert.Equal(t, 50, play.Eval)
}

// Three cards of the same rank in three different suits meld as a set
// without any standing table melds at all; emptying the hand this way
// beats keeping the cards for their half-credited hand points.
func TestMeldsSetAndGoesOut(t *testing.T) {
	pos := scenario(t,
		[][]string{
			{"5C", "5D", "5H"},
			{"2S", "3S", "4S", "6S", "7S", "8S"},
			{"2D", "3D", "4D", "6D", "7D"},
		},
		nil, nil, table.Table{})

	play := Run(pos, 0)

	wantSet := cardset.Of(mustCard(t, "5C")).Add(cardset.Of(mustCard(t, "5D"))).Add(cardset.Of(mustCard(t, "5H")))
	assert.Equal(t, wantSet, play.Melds.Sets)
	assert.Equal(t, cardset.Set(0), play.Discard)
	// score +15 from the set, going-out bonus 7*(6+5)/(3-1) = 38.
	assert.Equal(t, 53, play.Eval)
}

// The current player holds a single card, the discard pile is empty and no
// meld is possible: discarding that card without drawing empties the hand
// and triggers the going-out bonus, which beats every line that draws.
func TestNoOpTurnStillMustDiscard(t *testing.T) {
	pos := scenario(t,
		[][]string{{"7H"}, {"2C", "3C", "4C", "5C"}, {"2D", "3D", "4D"}},
		nil, nil, table.Table{})

	play := Run(pos, 0)

	assert.Equal(t, 0, play.NumTaken)
	assert.Equal(t, cardset.Set(0), play.Draw)
	assert.Equal(t, table.Table{}, play.Melds)
	assert.Equal(t, cardset.Set(0), play.Discard)
	// going-out bonus 7*(4+3)/(3-1) = 24.
	assert.Equal(t, 24, play.Eval)
}
