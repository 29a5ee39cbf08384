// Package rummyeval scores a terminal Position for the current player
// (spec §4.5): a scalar preference the turn search maximizes with a strict
// ">" comparison across every enumerated leaf.
package rummyeval

import "github.com/lox/rummysearch/internal/position"

// Eval computes eval(P) = P.score + floor(handPoints(P.hand)/2) + rivalBonus
// for the player at idx. rivalBonus is 0 unless idx's hand is empty (going
// out), in which case it is 7*(sum of rivals' hand sizes) / (numPlayers-1),
// integer-divided, rewarding the player for leaving rivals holding cards.
func Eval(p *position.Position, idx int) int {
	self := p.Players[idx]
	// Hand is kept in expanded (dual-ace-bit) form for the run/set algebra;
	// contract it back to one bit per physical card before scoring, or a
	// held ace would count as both a 5-point and a 15-point card.
	hand := self.Hand.Contract()
	score := self.Score + hand.Points()/2
	if !hand.IsEmpty() {
		return score
	}
	return score + goingOutBonus(p, idx)
}

func goingOutBonus(p *position.Position, idx int) int {
	numPlayers := len(p.Players)
	if numPlayers <= 1 {
		return 0
	}
	rivalCards := 0
	for i, pl := range p.Players {
		if i == idx {
			continue
		}
		rivalCards += pl.Hand.Contract().Size()
	}
	return 7 * rivalCards / (numPlayers - 1)
}
