package entities

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/tablejack/internal/types"
)

type ShoeTestSuite struct {
	suite.Suite
}

func TestShoeSuite(t *testing.T) {
	suite.Run(t, new(ShoeTestSuite))
}

// sortedCards returns a multiset-comparable copy of the cards
func sortedCards(cards []Card) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Suit != sorted[j].Suit {
			return sorted[i].Suit < sorted[j].Suit
		}
		return sorted[i].Rank < sorted[j].Rank
	})
	return sorted
}

func (s *ShoeTestSuite) TestNewShoe() {
	for _, numDecks := range []int{1, 2, 6} {
		shoe, err := NewShoe(numDecks)

		s.Require().NoError(err, "Building a shoe with %d decks should succeed", numDecks)
		s.Equal(numDecks*DeckSize, shoe.Size(), "Shoe should hold %d cards", numDecks*DeckSize)

		// Every (suit, rank) pair appears exactly numDecks times
		counts := make(map[Card]int)
		for _, card := range shoe.Cards() {
			counts[card]++
		}
		s.Len(counts, DeckSize, "Shoe should hold every distinct card")
		for card, count := range counts {
			s.Equal(numDecks, count, "Card %s should appear %d times", card, numDecks)
		}
	}
}

func (s *ShoeTestSuite) TestNewShoeInvalidDecks() {
	for _, numDecks := range []int{0, -1} {
		shoe, err := NewShoe(numDecks)

		s.Nil(shoe, "No shoe should be returned for %d decks", numDecks)
		s.True(types.IsGameError(err, types.ErrInvalidArgument),
			"Building a shoe with %d decks should fail with INVALID_ARGUMENT", numDecks)
	}
}

func (s *ShoeTestSuite) TestShufflePreservesCards() {
	shoe, err := NewShoe(2)
	s.Require().NoError(err)
	before := shoe.Cards()

	shoe.Shuffle()

	after := shoe.Cards()
	s.Equal(sortedCards(before), sortedCards(after), "Shuffle must preserve the card multiset")
}

func (s *ShoeTestSuite) TestDrawRemovesFromTop() {
	shoe := NewShoeFromCards([]Card{
		NewCard(Spades, Two),
		NewCard(Hearts, Five),
		NewCard(Clubs, King),
	})

	drawn, err := shoe.Draw(1)

	s.Require().NoError(err)
	s.Equal([]Card{NewCard(Clubs, King)}, drawn, "Draw should remove the last card")
	s.Equal(2, shoe.Size(), "Shoe should shrink by the drawn count")
}

func (s *ShoeTestSuite) TestDrawZeroIsNoOp() {
	shoe, err := NewShoe(1)
	s.Require().NoError(err)

	drawn, err := shoe.Draw(0)

	s.NoError(err, "Drawing zero cards is legal")
	s.Empty(drawn, "Drawing zero cards returns no cards")
	s.Equal(DeckSize, shoe.Size(), "Shoe should be unchanged")
}

func (s *ShoeTestSuite) TestDrawUnderflow() {
	shoe, err := NewShoe(1)
	s.Require().NoError(err)

	drawn, err := shoe.Draw(DeckSize + 1)

	s.Nil(drawn, "No cards should be returned on underflow")
	s.True(types.IsGameError(err, types.ErrShoeUnderflow),
		"Overdrawing should fail with SHOE_UNDERFLOW")
	s.Equal(DeckSize, shoe.Size(), "Shoe should be unchanged after a failed draw")
}

func (s *ShoeTestSuite) TestDrawReturnRoundTrip() {
	shoe, err := NewShoe(1)
	s.Require().NoError(err)
	before := sortedCards(shoe.Cards())

	drawn, err := shoe.Draw(7)
	s.Require().NoError(err)
	s.Equal(DeckSize-7, shoe.Size())

	count := shoe.Return(drawn)

	s.Equal(7, count, "Return should report the count appended")
	s.Equal(DeckSize, shoe.Size(), "Round trip should restore the original count")
	s.Equal(before, sortedCards(shoe.Cards()), "Round trip should conserve the card multiset")
}
