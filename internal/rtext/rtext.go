// Package rtext renders card-sets and tables as text, per the card-name
// grammar and pretty-printed grid of spec §6. FormatSet is grounded
// directly in the original's Cards_print (src/cards.c): ascending tokens
// separated by spaces, "(none)" for the empty set. Grid extends that same
// idea into the 4-row-by-14-column table view the spec calls for,
// styled with lipgloss instead of cards.c's bare printf.
package rtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/rummysearch/internal/card"
	"github.com/lox/rummysearch/internal/cardset"
)

var (
	runStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))  // blue
	setStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // orange
	bothStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	noneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // grey
)

// FormatSet renders s as a space-separated list of ascending card tokens,
// or "(none)" if s is empty.
func FormatSet(s cardset.Set) string {
	if s.IsEmpty() {
		return "(none)"
	}
	var sb strings.Builder
	first := true
	for b := s.Low(); b != 0; b = s.Next(b) {
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.ToCard().String())
		first = false
	}
	return sb.String()
}

// Grid renders a 4-row (one per suit) by 14-column (one per rank) table:
// each cell is "-" if that card is a run card, "|" if it is a set card,
// "+" if both (only possible while enumerating intermediate meld options,
// never on a committed table), "." otherwise.
func Grid(runs, sets cardset.Set) string {
	var sb strings.Builder
	for suit := card.Clubs; suit <= card.Spades; suit++ {
		sb.WriteString(suit.Glyph())
		sb.WriteByte(' ')
		for rank := card.AceLow; rank <= card.AceHigh; rank++ {
			c := cardset.Of(card.New(suit, rank))
			inRun := runs.Has(c)
			inSet := sets.Has(c)
			switch {
			case inRun && inSet:
				sb.WriteString(bothStyle.Render("+"))
			case inRun:
				sb.WriteString(runStyle.Render("-"))
			case inSet:
				sb.WriteString(setStyle.Render("|"))
			default:
				sb.WriteString(noneStyle.Render("."))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
