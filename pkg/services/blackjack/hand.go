package blackjack

import (
	"errors"
	"strings"

	"github.com/fadedpez/tablejack/pkg/entities"
)

var (
	ErrEmptyHand = errors.New("hand has no cards")
)

// Status represents the settled state of a hand
type Status string

const (
	StatusInPlay Status = "IN_PLAY"
	StatusLose   Status = "LOSE"
	StatusPush   Status = "PUSH"
	StatusWin    Status = "WIN"
)

// Hand is a plain record of cards plus betting state. The score flags are
// recomputed from the cards after every mutation, so they can never go
// stale across a hit, a split or a redeal.
type Hand struct {
	Cards        []entities.Card
	Bet          int64
	Score        int
	Bust         bool
	Blackjack    bool
	Split        bool
	Doubled      bool
	HideHoleCard bool // Dealer only; affects display, never scoring
	Status       Status
}

// NewHand creates a player hand holding the given cards and bet
func NewHand(cards []entities.Card, bet int64) *Hand {
	h := &Hand{
		Cards:  append([]entities.Card(nil), cards...),
		Bet:    bet,
		Status: StatusInPlay,
	}
	h.refresh()
	return h
}

// NewDealerHand creates the dealer's hand, with the hole card hidden
func NewDealerHand() *Hand {
	h := &Hand{
		HideHoleCard: true,
		Status:       StatusInPlay,
	}
	h.refresh()
	return h
}

// AddCards appends cards to the hand and recomputes the score
func (h *Hand) AddCards(cards ...entities.Card) {
	h.Cards = append(h.Cards, cards...)
	h.refresh()
}

// RemoveLastCard pops the most recently added card and recomputes the
// score. Used only by split, which moves one card of a pair into a new hand.
func (h *Hand) RemoveLastCard() (entities.Card, error) {
	if len(h.Cards) == 0 {
		return entities.Card{}, ErrEmptyHand
	}
	card := h.Cards[len(h.Cards)-1]
	h.Cards = h.Cards[:len(h.Cards)-1]
	h.refresh()
	return card, nil
}

// TakeAllCards empties the hand and returns the removed cards. Used by the
// dealer-natural redeal to put every dealt card back in the shoe.
func (h *Hand) TakeAllCards() []entities.Card {
	cards := h.Cards
	h.Cards = nil
	h.refresh()
	return cards
}

// refresh recomputes score, bust and blackjack from the cards
func (h *Hand) refresh() {
	score := ScoreCards(h.Cards)
	h.Score = score.Total
	h.Bust = score.IsBust
	// A natural can only be flagged on an original two-card hand
	h.Blackjack = score.IsBlackjack && !h.Split
}

// Settle resolves this hand against the dealer's hand and returns the
// resulting status. The clauses are ordered: a bust hand always loses,
// regardless of the dealer's outcome.
func (h *Hand) Settle(dealer *Hand) Status {
	switch {
	case h.Bust || (!dealer.Bust && dealer.Score > h.Score):
		h.Status = StatusLose
	case dealer.Score == h.Score:
		h.Status = StatusPush
	default:
		h.Status = StatusWin
	}
	return h.Status
}

// String returns the hand's cards in display form, masking everything but
// the first card while the hole card is hidden
func (h *Hand) String() string {
	if len(h.Cards) == 0 {
		return ""
	}

	if h.HideHoleCard {
		parts := []string{h.Cards[0].String()}
		for range h.Cards[1:] {
			parts = append(parts, "XX")
		}
		return strings.Join(parts, ", ")
	}

	parts := make([]string, 0, len(h.Cards))
	for _, card := range h.Cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, ", ")
}
