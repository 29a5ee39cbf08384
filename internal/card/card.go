// Package card defines the packed 6-bit card identity used throughout the
// Rummy engine: a rank in [0,13] (0 and 13 both denote an ace, low and high)
// packed with a suit in [0,3] into a single byte, plus the text grammar used
// to name and parse cards for logging, tests, and the CLI.
package card

import "fmt"

// Rank is a card's value, 0 (low ace) through 13 (high ace). Ranks 14 and 15
// do not exist; Card's 4-bit rank field can still hold them, and IsLegal
// rejects a card that carries one.
type Rank uint8

const (
	AceLow Rank = 0
	Two    Rank = 1
	Three  Rank = 2
	Four   Rank = 3
	Five   Rank = 4
	Six    Rank = 5
	Seven  Rank = 6
	Eight  Rank = 7
	Nine   Rank = 8
	Ten    Rank = 9
	Jack   Rank = 10
	Queen  Rank = 11
	King   Rank = 12
	AceHigh Rank = 13
)

// Suit is one of the four standard suits, ordered to match the bitmask
// lane layout in package cardset (clubs occupy the low lane).
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Glyph returns the suit's printed symbol, for the pretty-printer in rtext.
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Card is a 6-bit identifier in [0,63]: bits [0,3] are the rank, bits [4,5]
// are the suit. It is the same packing as a single-card bitmask's bit
// index, so Card(i) directly indexes a cardset.Set's bit i.
type Card uint8

// New packs a suit and rank into a Card.
func New(suit Suit, rank Rank) Card {
	return Card(uint8(suit)<<4 | uint8(rank))
}

// Rank extracts the card's rank.
func (c Card) Rank() Rank {
	return Rank(c & 0x0F)
}

// Suit extracts the card's suit.
func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

// IsLegal reports whether c names a real card: ranks 14 and 15 never exist.
func (c Card) IsLegal() bool {
	r := c.Rank()
	return r <= AceHigh
}

// Points is this card's scoring value: 5 for ace-low through 9, 10 for
// ten through king, 15 for ace-high.
func (c Card) Points() int {
	switch r := c.Rank(); {
	case r == AceHigh:
		return 15
	case r >= Ten:
		return 10
	default:
		return 5
	}
}

var rankNames = [...]byte{'a', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}

// String renders the card as a two-character token per the card-name
// grammar of spec §6, e.g. "aC" for the low club ace, "AC" for the high one.
func (c Card) String() string {
	if !c.IsLegal() {
		return "??"
	}
	return fmt.Sprintf("%c%s", rankNames[c.Rank()], c.Suit())
}

// Parse reads a two-character card token (rank then suit) per the grammar
// of spec §6. Lowercase 'a' is the low ace, uppercase 'A' the high ace.
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("card: %q is not a two-character token", s)
	}
	var rank Rank
	switch s[0] {
	case 'a':
		rank = AceLow
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A':
		rank = AceHigh
	default:
		return 0, fmt.Errorf("card: unknown rank %q in %q", s[0], s)
	}
	var suit Suit
	switch s[1] {
	case 'C', 'c':
		suit = Clubs
	case 'D', 'd':
		suit = Diamonds
	case 'H', 'h':
		suit = Hearts
	case 'S', 's':
		suit = Spades
	default:
		return 0, fmt.Errorf("card: unknown suit %q in %q", s[1], s)
	}
	return New(suit, rank), nil
}
