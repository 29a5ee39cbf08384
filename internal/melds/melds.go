// Package melds derives, from a hand and a table, the four classes of
// playable melds (spec §4.6): run centers, set centers, run extensions,
// and set extensions — and threads the "rejected options" set the turn
// search uses to keep a meld subtree from re-discovering an option already
// chosen in an ancestor frame.
package melds

import (
	"github.com/lox/rummysearch/internal/cardset"
	"github.com/lox/rummysearch/internal/table"
)

// Options is a bundle of the four meld classes, each a card-set whose bits
// (in ascending order) each name one playable option in that class. hand
// is carried along only so Each can resolve a set-center bit into its full
// meld (SetToMeld needs to know what the hand actually holds to tell a
// true 4-of-a-kind from a 3-suit triple); it plays no part in Add/Remove/
// Without/IsEmpty.
type Options struct {
	RunCenters    cardset.Set
	SetCenters    cardset.Set
	RunExtensions cardset.Set
	SetExtensions cardset.Set
	hand          cardset.Set
}

// Derive computes every meld option available from hand against t, per the
// bitwise formulas of spec §4.1.
func Derive(hand cardset.Set, t table.Table) Options {
	return Options{
		RunCenters:    cardset.RunCenters(hand),
		SetCenters:    cardset.SetCenters(hand),
		RunExtensions: cardset.RunExtensions(t.Runs, hand),
		SetExtensions: cardset.SetExtensions(t.Sets, hand),
		hand:          hand,
	}
}

// Without removes every bit in rejected from each class of o, so a meld
// already chosen (or already explored and declined) in an ancestor frame
// is not offered again in this frame.
func (o Options) Without(rejected Options) Options {
	return Options{
		RunCenters:    o.RunCenters.Remove(rejected.RunCenters),
		SetCenters:    o.SetCenters.Remove(rejected.SetCenters),
		RunExtensions: o.RunExtensions.Remove(rejected.RunExtensions),
		SetExtensions: o.SetExtensions.Remove(rejected.SetExtensions),
		hand:          o.hand,
	}
}

// IsEmpty reports whether every class of o has no bits set.
func (o Options) IsEmpty() bool {
	return o.RunCenters.IsEmpty() && o.SetCenters.IsEmpty() &&
		o.RunExtensions.IsEmpty() && o.SetExtensions.IsEmpty()
}

// Class identifies which of the four meld classes an option bit belongs
// to, fixing the enumeration order spec §4.1 requires: run-centers,
// set-centers, run-extensions, set-extensions.
type Class int

const (
	ClassRunCenter Class = iota
	ClassSetCenter
	ClassRunExtension
	ClassSetExtension
)

// Option names one playable meld action: which class it belongs to, the
// single bit that identifies it within that class, and the resulting meld
// card-set to play.
type Option struct {
	Class Class
	Bit   cardset.Set
	Meld  cardset.Set
}

// IsRun reports whether this option plays onto the table's run zone (as
// opposed to the set zone).
func (opt Option) IsRun() bool {
	return opt.Class == ClassRunCenter || opt.Class == ClassRunExtension
}

// Each calls fn once per playable option, in the fixed deterministic order
// spec §4.1 and §9 require: run-centers, set-centers, run-extensions,
// set-extensions, ascending bit order within each class. fn's bool return
// stops iteration early when false (mirroring a context cancellation
// check, for callers that want to bail out without an error value).
func (o Options) Each(fn func(Option) bool) {
	classes := [...]struct {
		class Class
		bits  cardset.Set
		toMeld func(cardset.Set) cardset.Set
	}{
		{ClassRunCenter, o.RunCenters, cardset.RunToMeld},
		{ClassSetCenter, o.SetCenters, func(b cardset.Set) cardset.Set { return cardset.SetToMeld(o.hand, b) }},
		{ClassRunExtension, o.RunExtensions, func(b cardset.Set) cardset.Set { return b }},
		{ClassSetExtension, o.SetExtensions, func(b cardset.Set) cardset.Set { return b }},
	}
	for _, c := range classes {
		for b := c.bits.Low(); b != 0; b = c.bits.Next(b) {
			if !fn(Option{Class: c.class, Bit: b, Meld: c.toMeld(b)}) {
				return
			}
		}
	}
}

// Add returns rejected with opt's bit added to the appropriate class.
func (rejected Options) Add(opt Option) Options {
	switch opt.Class {
	case ClassRunCenter:
		rejected.RunCenters = rejected.RunCenters.Add(opt.Bit)
	case ClassSetCenter:
		rejected.SetCenters = rejected.SetCenters.Add(opt.Bit)
	case ClassRunExtension:
		rejected.RunExtensions = rejected.RunExtensions.Add(opt.Bit)
	case ClassSetExtension:
		rejected.SetExtensions = rejected.SetExtensions.Add(opt.Bit)
	}
	return rejected
}

// Remove returns rejected with opt's bit cleared from the appropriate
// class, reversing Add — used when a search frame unwinds and its
// siblings should no longer see this option as rejected.
func (rejected Options) Remove(opt Option) Options {
	switch opt.Class {
	case ClassRunCenter:
		rejected.RunCenters = rejected.RunCenters.Remove(opt.Bit)
	case ClassSetCenter:
		rejected.SetCenters = rejected.SetCenters.Remove(opt.Bit)
	case ClassRunExtension:
		rejected.RunExtensions = rejected.RunExtensions.Remove(opt.Bit)
	case ClassSetExtension:
		rejected.SetExtensions = rejected.SetExtensions.Remove(opt.Bit)
	}
	return rejected
}
