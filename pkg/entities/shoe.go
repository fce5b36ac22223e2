package entities

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fadedpez/tablejack/internal/types"
)

// DeckSize is the number of cards in a single standard deck
const DeckSize = 52

// Shoe is the ordered draw pile built from one or more standard decks.
// The end of the sequence is the top of the pile: Draw removes from the
// end and Return appends to it.
type Shoe struct {
	cards []Card
}

// NewShoe creates a shoe holding numDecks full 52-card decks
func NewShoe(numDecks int) (*Shoe, error) {
	if numDecks < 1 {
		return nil, types.NewGameError(types.ErrInvalidArgument,
			fmt.Sprintf("shoe requires at least 1 deck, got %d", numDecks))
	}

	cards := make([]Card, 0, numDecks*DeckSize)
	for i := 0; i < numDecks; i++ {
		for _, suit := range Suits {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, NewCard(suit, rank))
			}
		}
	}

	return &Shoe{cards: cards}, nil
}

// NewShoeFromCards creates a shoe holding exactly the given cards in order.
// Useful for seeding a known draw sequence.
func NewShoeFromCards(cards []Card) *Shoe {
	held := make([]Card, len(cards))
	copy(held, cards)
	return &Shoe{cards: held}
}

// Size returns the number of cards remaining in the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Cards returns a copy of the cards currently in the shoe, bottom first
func (s *Shoe) Cards() []Card {
	cards := make([]Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

// Shuffle randomizes the order of the cards in the shoe
func (s *Shoe) Shuffle() {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	r.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the top n cards. Drawing zero cards is a legal
// no-op; drawing more cards than remain fails with a SHOE_UNDERFLOW error.
func (s *Shoe) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, types.NewGameError(types.ErrInvalidArgument,
			fmt.Sprintf("cannot draw a negative number of cards: %d", n))
	}
	if n > len(s.cards) {
		return nil, types.NewGameError(types.ErrShoeUnderflow,
			fmt.Sprintf("cannot draw %d cards, only %d remain", n, len(s.cards)))
	}

	drawn := make([]Card, n)
	copy(drawn, s.cards[len(s.cards)-n:])
	s.cards = s.cards[:len(s.cards)-n]
	return drawn, nil
}

// Return appends cards to the top of the shoe and reports the count appended
func (s *Shoe) Return(cards []Card) int {
	s.cards = append(s.cards, cards...)
	return len(cards)
}
