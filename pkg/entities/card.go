package entities

import "strconv"

// Suit represents a card suit, stored as its one-letter display code
type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Clubs    Suit = "C"
	Diamonds Suit = "D"
)

// Suits lists the four suits in display order
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Rank represents a card rank. 1 is an Ace, 11-13 are the face cards.
type Rank int

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the display form of the rank: A, J, Q, K or the numeral
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card represents a playing card. Cards are immutable values.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit: suit,
		Rank: rank,
	}
}

// String returns the short display form of the card, such as "AS" or "10D"
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit)
}

// IsRed reports whether the card belongs to a red suit
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}
