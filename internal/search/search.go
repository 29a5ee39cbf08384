// Package search implements the recursive turn-search enumerator (spec
// §4.7): given a Position and the current player, it explores every legal
// take/draw/meld/discard combination for one turn and returns the one with
// the highest evaluation. The search never clones — every branch mutates
// the Position in place and undoes the mutation on the way back out, so at
// most one Position is ever live (spec §5).
package search

import (
	"math"

	"github.com/lox/rummysearch/internal/card"
	"github.com/lox/rummysearch/internal/cardset"
	"github.com/lox/rummysearch/internal/melds"
	"github.com/lox/rummysearch/internal/position"
	"github.com/lox/rummysearch/internal/rummyeval"
	"github.com/lox/rummysearch/internal/table"
)

// Play records one complete turn: how many cards were taken from the
// discard pile and the deepest of them, whether a card was drawn, every
// meld played this turn, the discarded card, and the resulting evaluation.
// Mirrors the original Play record one-for-one.
type Play struct {
	NumTaken int
	Deepest  cardset.Set
	Draw     cardset.Set
	Melds    table.Table
	Discard  cardset.Set
	Eval     int
}

// Run searches every legal play available to player idx from pos and
// returns the best one found. pos is restored to its entry state before
// Run returns; the caller applies the returned Play itself if it wants the
// position to reflect it.
func Run(pos *position.Position, idx int) Play {
	s := &searcher{pos: pos, idx: idx, best: Play{Eval: math.MinInt}}
	s.searchTakes()
	return s.best
}

type searcher struct {
	pos      *position.Position
	idx      int
	rejected melds.Options
	current  Play
	best     Play
}

// searchTakes is step 1: the take-from-discard loop. For each depth k it
// transfers the top k discards into the hand and recurses; the classical
// rule that a card taken from the discard pile must be melded this same
// turn is enforced per leaf by evaluate, not here — see its comment for why
// a whole-subtree check is the wrong place for this.
func (s *searcher) searchTakes() {
	discardSize := s.pos.DiscardPile.Size()
	for k := 0; k <= discardSize; k++ {
		s.current.NumTaken = k
		var taken []card.Card
		var deepest cardset.Set
		if k > 0 {
			var deepCard card.Card
			taken, deepCard = s.pos.TakeFromDiscard(s.idx, k)
			deepest = cardset.Of(deepCard)
		}
		s.current.Deepest = deepest

		s.searchDraw(k)

		if k > 0 {
			s.pos.UndoTakeFromDiscard(s.idx, taken)
		}
	}
}

// searchDraw is step 2: if numTaken is 0, both drawing and not drawing are
// explored (drawing only if the draw pile is non-empty); a non-zero
// numTaken forbids drawing entirely.
func (s *searcher) searchDraw(numTaken int) {
	s.current.Draw = 0
	s.searchMelds()
	if numTaken == 0 && s.pos.DrawPile.Size() > 0 {
		c := s.pos.Draw(s.idx)
		s.current.Draw = cardset.Of(c)
		s.searchMelds()
		s.pos.UndoDraw(s.idx, c)
		s.current.Draw = 0
	}
}

// searchMelds is step 3: at each frame it derives the playable options not
// already rejected by an ancestor frame, tries each in the fixed class and
// bit order, recurses after applying it, and finally takes the "none of
// these chosen" step by proceeding straight to discard enumeration. Option
// bits chosen at this frame stay in rejected for the duration of every
// sibling subtree and are removed only once the whole frame is done.
func (s *searcher) searchMelds() {
	opts := melds.Derive(s.pos.Players[s.idx].Hand, s.pos.Table).Without(s.rejected)
	if opts.IsEmpty() {
		s.searchDiscard()
		return
	}

	var addedThisFrame melds.Options
	opts.Each(func(opt melds.Option) bool {
		var points int
		if opt.IsRun() {
			points = s.pos.PlayRun(s.idx, opt.Meld)
			s.current.Melds.AddRun(opt.Meld)
		} else {
			points = s.pos.PlaySet(s.idx, opt.Meld)
			s.current.Melds.AddSet(opt.Meld)
		}
		s.rejected = s.rejected.Add(opt)
		addedThisFrame = addedThisFrame.Add(opt)

		s.searchMelds()

		if opt.IsRun() {
			s.current.Melds.RemoveRun(opt.Meld)
			s.pos.UndoPlayRun(s.idx, opt.Meld, points)
		} else {
			s.current.Melds.RemoveSet(opt.Meld)
			s.pos.UndoPlaySet(s.idx, opt.Meld, points)
		}
		return true
	})

	s.searchDiscard()
	s.rejected = s.rejected.Without(addedThisFrame)
}

// searchDiscard is step 4: with the hand non-empty, every physical card in
// it (ascending, one entry per card regardless of which ace bit names it)
// is tried as the discard; an empty hand evaluates the going-out terminal
// directly with no discard.
func (s *searcher) searchDiscard() {
	hand := s.pos.Players[s.idx].Hand.Contract()
	if hand.IsEmpty() {
		s.evaluate(0)
		return
	}
	for b := hand.Low(); b != 0; b = hand.Next(b) {
		c := s.pos.Discard(s.idx, b)
		s.evaluate(cardset.Of(c))
		s.pos.UndoDiscard(s.idx)
	}
}

// evaluate is step 5: score the current leaf and keep it if it beats best.
// A leaf that took one or more discards but leaves the deepest of them
// unmelded is illegal and is skipped outright — gating here, rather than
// reverting s.best once the whole take-depth subtree has finished, matters
// because a legal, improving leaf can be beaten within its own subtree by a
// later illegal sibling leaf; checking only the subtree's eventual winner
// would discard that legal improvement along with the illegal one instead
// of falling back to it.
func (s *searcher) evaluate(discard cardset.Set) {
	if s.current.NumTaken > 0 {
		melded := s.current.Melds.Runs | s.current.Melds.Sets
		if !melded.Has(s.current.Deepest) {
			return
		}
	}
	s.current.Discard = discard
	s.current.Eval = rummyeval.Eval(s.pos, s.idx)
	if s.current.Eval > s.best.Eval {
		s.best = s.current
	}
}
