package blackjack

import (
	"github.com/fadedpez/tablejack/pkg/entities"
)

const (
	BlackjackScore        = 21 // The score a natural two-card hand must reach
	DefaultStandThreshold = 17 // Dealer stands at or above this score
)

// CardValue returns the blackjack value of a card. Aces count as 11 here;
// GetBestScore handles the soft-to-hard reduction.
func CardValue(card entities.Card) int {
	switch {
	case card.Rank == entities.Ace:
		return 11
	case card.Rank > entities.Ten:
		return 10
	default:
		return int(card.Rank)
	}
}

// IsAce reports whether the card is an Ace
func IsAce(card entities.Card) bool {
	return card.Rank == entities.Ace
}

// Score is the full evaluation of a set of cards
type Score struct {
	Total       int
	IsBust      bool
	IsBlackjack bool
}

// ScoreCards evaluates cards with the standard soft/hard Ace reduction:
// sum the non-Ace values, count each Ace as 11, then convert Aces to 1
// one at a time while the total exceeds 21.
func ScoreCards(cards []entities.Card) Score {
	total := 0
	aces := 0

	for _, card := range cards {
		if IsAce(card) {
			aces++
		} else {
			total += CardValue(card)
		}
	}

	total += aces * 11
	for total > BlackjackScore && aces > 0 {
		total -= 10
		aces--
	}

	return Score{
		Total:       total,
		IsBust:      total > BlackjackScore,
		IsBlackjack: len(cards) == 2 && total == BlackjackScore,
	}
}

// GetBestScore returns the best total for a set of cards
func GetBestScore(cards []entities.Card) int {
	return ScoreCards(cards).Total
}

// IsPair reports whether cards are exactly two cards of equal rank
func IsPair(cards []entities.Card) bool {
	return len(cards) == 2 && cards[0].Rank == cards[1].Rank
}
