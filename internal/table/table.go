// Package table holds the pair of card-sets currently melded face-up: runs
// and sets. Adding or removing a meld is an OR / AND-NOT against the
// appropriate field; there is no automatic merging of adjacent runs, since
// adjacency is reconstructed on demand via shift (package cardset).
package table

import "github.com/lox/rummysearch/internal/cardset"

// Table is the pair of bitmasks currently laid on the table. Runs and sets
// never share a card: Runs & Sets == 0.
type Table struct {
	Runs cardset.Set
	Sets cardset.Set
}

// All returns every card currently on the table, in either a run or a set.
func (t Table) All() cardset.Set {
	return t.Runs | t.Sets
}

// AddRun melds the given run cards onto the table.
func (t *Table) AddRun(meld cardset.Set) {
	t.Runs = t.Runs.Add(meld)
}

// RemoveRun un-melds the given run cards, reversing AddRun.
func (t *Table) RemoveRun(meld cardset.Set) {
	t.Runs = t.Runs.Remove(meld)
}

// AddSet melds the given set cards onto the table.
func (t *Table) AddSet(meld cardset.Set) {
	t.Sets = t.Sets.Add(meld)
}

// RemoveSet un-melds the given set cards, reversing AddSet.
func (t *Table) RemoveSet(meld cardset.Set) {
	t.Sets = t.Sets.Remove(meld)
}

// IsDisjoint reports the table invariant: no card is both a run card and a
// set card.
func (t Table) IsDisjoint() bool {
	return t.Runs&t.Sets == 0
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	return t
}
