// Package position holds the Player and Position aggregates and every
// reversible mutation the turn search performs: draw, take-from-discard,
// discard, and the two meld plays. Every mutation has a paired undo that
// restores the Position to bitwise identity (spec §8 undoIdentity), so the
// search never clones — it descends and backtracks in place (spec §9).
//
// Position does not hold a back-reference from Player to Position; every
// mutating method here takes an explicit player index and a *Position
// receiver, per spec §9's redesign note on the cyclic Player->Game pointer
// the original C carried for convenience.
package position

import (
	"fmt"

	"github.com/lox/rummysearch/internal/card"
	"github.com/lox/rummysearch/internal/cardset"
	"github.com/lox/rummysearch/internal/pile"
	"github.com/lox/rummysearch/internal/table"
)

// Player is one seat's hand and score. Hand is always kept in expanded
// form: if the player holds an ace, both its low and high bit are set.
type Player struct {
	Hand  cardset.Set
	Score int
	ID    int
}

// Position is the full state of one turn: every player's hand, the ordered
// draw and discard piles, and the table. It is exclusively owned by the
// search for the duration of a call into search.Run.
type Position struct {
	Players     []Player
	Current     int
	DrawPile    *pile.Pile
	DiscardPile *pile.Pile
	Table       table.Table
}

// New validates and constructs a Position. It is the one place precondition
// violations (spec §7.1) surface as an error instead of a panic, since the
// inputs here come from an external dealer, not from the search itself.
func New(players []Player, draw, discard *pile.Pile, t table.Table) (*Position, error) {
	p := &Position{Players: players, DrawPile: draw, DiscardPile: discard, Table: t}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) validate() error {
	if len(p.Players) == 0 {
		return fmt.Errorf("position: no players")
	}
	if !p.Table.IsDisjoint() {
		return fmt.Errorf("position: table runs and sets overlap")
	}
	if !p.Table.Runs.IsExclusiveAces() || !p.Table.Sets.IsExclusiveAces() {
		return fmt.Errorf("position: table meld fixes an ace's role inconsistently")
	}
	seen := p.Table.All()
	total := p.Table.All().Size()
	for i := range p.Players {
		h := p.Players[i].Hand
		if !h.IsWellFormed() {
			return fmt.Errorf("position: player %d hand is malformed", i)
		}
		contracted := h.Contract()
		if seen&contracted != 0 {
			return fmt.Errorf("position: player %d hand overlaps another zone", i)
		}
		seen |= contracted
		total += contracted.Size()
	}
	for k := 0; k < p.DrawPile.Size(); k++ {
		c := p.DrawPile.Peek(k)
		if seen.Has(cardset.Of(c)) {
			return fmt.Errorf("position: draw pile card %s duplicated", c)
		}
		seen = seen.Add(cardset.Of(c))
		total++
	}
	for k := 0; k < p.DiscardPile.Size(); k++ {
		c := p.DiscardPile.Peek(k)
		if seen.Has(cardset.Of(c)) {
			return fmt.Errorf("position: discard pile card %s duplicated", c)
		}
		seen = seen.Add(cardset.Of(c))
		total++
	}
	if total != 52 {
		return fmt.Errorf("position: zones hold %d cards, want 52", total)
	}
	if seen != cardset.FullDeck {
		return fmt.Errorf("position: zones do not partition the full deck")
	}
	return nil
}

// Draw pops the top card of the draw pile into player idx's hand and
// returns it. Undo with UndoDraw.
func (p *Position) Draw(idx int) card.Card {
	c := p.DrawPile.Pop()
	p.Players[idx].Hand = p.Players[idx].Hand.Add(cardset.Of(c).Expand())
	return c
}

// UndoDraw reverses Draw: clears c from the hand and pushes it back onto
// the draw pile.
func (p *Position) UndoDraw(idx int, c card.Card) {
	p.Players[idx].Hand = p.Players[idx].Hand.Remove(cardset.Of(c).Expand())
	p.DrawPile.Push(c)
}

// TakeFromDiscard transfers the top k cards of the discard pile into player
// idx's hand. It returns the taken cards in the order they were removed
// (shallowest/top first, deepest last) and the deepest card taken (the
// card spec §4.7 requires be used in a meld this turn), or the zero card
// if k is 0. Undo with UndoTakeFromDiscard.
func (p *Position) TakeFromDiscard(idx int, k int) (taken []card.Card, deepest card.Card) {
	if k == 0 {
		return nil, 0
	}
	taken = make([]card.Card, k)
	for i := 0; i < k; i++ {
		c := p.DiscardPile.Pop()
		taken[i] = c
		p.Players[idx].Hand = p.Players[idx].Hand.Add(cardset.Of(c).Expand())
	}
	return taken, taken[k-1]
}

// UndoTakeFromDiscard reverses TakeFromDiscard: clears every taken card
// from the hand and pushes them back onto the discard pile in their
// original order.
func (p *Position) UndoTakeFromDiscard(idx int, taken []card.Card) {
	for i := len(taken) - 1; i >= 0; i-- {
		c := taken[i]
		p.Players[idx].Hand = p.Players[idx].Hand.Remove(cardset.Of(c).Expand())
		p.DiscardPile.Push(c)
	}
}

// Discard removes the single card named by bit (a single-bit Set, possibly
// naming either ace representation) from player idx's hand and pushes its
// canonical single-card form onto the discard pile. Returns the canonical
// card, for undo.
func (p *Position) Discard(idx int, bit cardset.Set) card.Card {
	canonical := bit.Contract()
	p.Players[idx].Hand = p.Players[idx].Hand.Remove(canonical.AceClosure())
	c := canonical.ToCard()
	p.DiscardPile.Push(c)
	return c
}

// UndoDiscard reverses Discard: pops the discard pile's top card and sets
// it back into player idx's hand in expanded form.
func (p *Position) UndoDiscard(idx int) {
	c := p.DiscardPile.Pop()
	p.Players[idx].Hand = p.Players[idx].Hand.Add(cardset.Of(c).Expand())
}

// PlayRun melds run cards onto the table from player idx's hand, adds the
// meld's points to the player's score, and returns the points added (for
// undo). meld must be a meld-set (spec §3): no suit carries both ace bits.
func (p *Position) PlayRun(idx int, meld cardset.Set) int {
	points := meld.Points()
	p.Players[idx].Score += points
	p.Table.AddRun(meld)
	p.Players[idx].Hand = p.Players[idx].Hand.Remove(meld.AceClosure())
	return points
}

// UndoPlayRun reverses PlayRun.
func (p *Position) UndoPlayRun(idx int, meld cardset.Set, points int) {
	p.Players[idx].Hand = p.Players[idx].Hand.Add(meld.AceClosure())
	p.Table.RemoveRun(meld)
	p.Players[idx].Score -= points
}

// PlaySet melds set cards onto the table from player idx's hand, adds the
// meld's points to the player's score, and returns the points added (for
// undo).
func (p *Position) PlaySet(idx int, meld cardset.Set) int {
	points := meld.Points()
	p.Players[idx].Score += points
	p.Table.AddSet(meld)
	p.Players[idx].Hand = p.Players[idx].Hand.Remove(meld.AceClosure())
	return points
}

// UndoPlaySet reverses PlaySet.
func (p *Position) UndoPlaySet(idx int, meld cardset.Set, points int) {
	p.Players[idx].Hand = p.Players[idx].Hand.Add(meld.AceClosure())
	p.Table.RemoveSet(meld)
	p.Players[idx].Score -= points
}

// Checksum folds every zone's bitmask and pile contents into a single
// value, for the undoIdentity property test (spec §8): applying an
// operation then its undo must leave the checksum unchanged.
func (p *Position) Checksum() uint64 {
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	mix := func(v uint64) {
		h ^= v
		h *= 1099511628211 // FNV-1a prime
	}
	for _, pl := range p.Players {
		mix(uint64(pl.Hand))
		mix(uint64(pl.Score))
		mix(uint64(pl.ID))
	}
	mix(uint64(p.Table.Runs))
	mix(uint64(p.Table.Sets))
	for k := 0; k < p.DrawPile.Size(); k++ {
		mix(uint64(p.DrawPile.Peek(k)))
	}
	for k := 0; k < p.DiscardPile.Size(); k++ {
		mix(uint64(p.DiscardPile.Peek(k)))
	}
	return h
}

// Clone returns a deep copy of p, independent of the original's piles and
// player slice. Used by internal/match's concurrent benchmark sweep, never
// by the search itself (spec §5 — the search always undoes in place).
func (p *Position) Clone() *Position {
	players := make([]Player, len(p.Players))
	copy(players, p.Players)
	return &Position{
		Players:     players,
		Current:     p.Current,
		DrawPile:    p.DrawPile.Clone(),
		DiscardPile: p.DiscardPile.Clone(),
		Table:       p.Table.Clone(),
	}
}
