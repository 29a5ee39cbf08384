// Package pile implements the ordered LIFO stacks used for the draw and
// discard piles: push/pop at the tail, bounded to 52 entries, with a
// Fisher-Yates shuffle driven by a pluggable uniform-integer source.
package pile

import (
	"github.com/lox/rummysearch/internal/card"
)

// maxCards bounds a Pile the way the original C array did (`Cards cards[52]`).
const maxCards = 52

// UniformSource draws a uniformly distributed integer in [0, n). It is the
// engine's only external collaborator during shuffling (spec §6); any
// cryptographically strong or test-deterministic source satisfies it.
type UniformSource interface {
	Uniform(n int) int
}

// Pile is a bounded LIFO stack of single cards. The zero value is an empty
// pile ready to use.
type Pile struct {
	cards [maxCards]card.Card
	size  int
}

// New returns an empty pile.
func New() *Pile {
	return &Pile{}
}

// Size returns the number of cards currently in the pile.
func (p *Pile) Size() int {
	return p.size
}

// IsEmpty reports whether the pile has no cards.
func (p *Pile) IsEmpty() bool {
	return p.size == 0
}

// Push adds c to the top of the pile. Panics if the pile is already full,
// mirroring the original's assert-guarded Pile_push — a full 52-card pile
// can never legally receive a 53rd card.
func (p *Pile) Push(c card.Card) {
	if p.size >= maxCards {
		panic("pile: push on a full pile")
	}
	p.cards[p.size] = c
	p.size++
}

// Pop removes and returns the top card. Panics on an empty pile; callers
// must check Size/IsEmpty first (spec §4.9 — pop on empty is a programming
// fault, not a recoverable condition).
func (p *Pile) Pop() card.Card {
	if p.size == 0 {
		panic("pile: pop on an empty pile")
	}
	p.size--
	return p.cards[p.size]
}

// Peek returns the card k positions from the top without removing it (k=0
// is the top card). Panics if k is out of range.
func (p *Pile) Peek(k int) card.Card {
	if k < 0 || k >= p.size {
		panic("pile: peek index out of range")
	}
	return p.cards[p.size-1-k]
}

// Top returns the top card and true, or the zero card and false if empty.
func (p *Pile) Top() (card.Card, bool) {
	if p.size == 0 {
		return 0, false
	}
	return p.Peek(0), true
}

// Shuffle randomizes the pile's order in place using Fisher-Yates, drawing
// from src. Pile order is never part of the search's correctness (spec
// §4.2) — this exists for dealing, exercised by internal/match.
func (p *Pile) Shuffle(src UniformSource) {
	for i := p.size - 1; i > 0; i-- {
		j := src.Uniform(i + 1)
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	}
}

// Clone returns an independent copy of p.
func (p *Pile) Clone() *Pile {
	cp := *p
	return &cp
}
