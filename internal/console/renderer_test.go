package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadedpez/tablejack/pkg/entities"
	"github.com/fadedpez/tablejack/pkg/services/blackjack"
)

func testView() blackjack.View {
	dealer := blackjack.NewDealerHand()
	dealer.AddCards(
		entities.NewCard(entities.Spades, entities.Ace),
		entities.NewCard(entities.Hearts, entities.King),
	)

	hand := blackjack.NewHand([]entities.Card{
		entities.NewCard(entities.Clubs, entities.Ten),
		entities.NewCard(entities.Diamonds, entities.Nine),
	}, 50)

	return blackjack.View{
		Dealer:     dealer,
		Hands:      []*blackjack.Hand{hand},
		Bankroll:   950,
		ActiveHand: 0,
	}
}

func TestRenderHidesHoleCard(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.Render(testView())

	rendered := out.String()
	assert.Contains(t, rendered, "AS")
	assert.Contains(t, rendered, "XX", "The hole card shows as XX while hidden")
	assert.NotContains(t, rendered, "KH", "The hole card's face never leaks")
	assert.Contains(t, rendered, "Hand 1: ")
	assert.Contains(t, rendered, "Score: 19", "Player scores are always visible")
	assert.Contains(t, rendered, "Bet: $50")
	assert.Contains(t, rendered, "Total Money: $950")
	assert.Contains(t, rendered, "<-- Playing")
}

func TestRenderRevealedDealer(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	view := testView()
	view.Dealer.HideHoleCard = false
	view.DealerTurn = true
	view.ActiveHand = -1
	r.Render(view)

	rendered := out.String()
	assert.Contains(t, rendered, "KH", "The revealed hole card is shown")
	assert.Contains(t, rendered, "Score: 21", "The dealer's score appears once revealed")
	assert.Contains(t, rendered, "<-- Dealer's turn")
	assert.NotContains(t, rendered, "XX")
	assert.NotContains(t, rendered, "<-- Playing")
}

func TestRenderFinalShowsOutcomes(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	view := testView()
	view.Dealer.HideHoleCard = false
	view.Final = true
	view.ActiveHand = -1
	view.Hands[0].Status = blackjack.StatusWin
	view.Hands = append(view.Hands, &blackjack.Hand{
		Cards:  []entities.Card{entities.NewCard(entities.Spades, entities.Five)},
		Bet:    25,
		Status: blackjack.StatusLose,
	})
	view.Message = "Round results"
	r.Render(view)

	rendered := out.String()
	assert.Contains(t, rendered, "**WIN**")
	assert.Contains(t, rendered, "--LOSE--")
	assert.Contains(t, rendered, "Round results")
}

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.Summary(entities.SessionStatistics{
		RoundsPlayed: 3,
		HandsPlayed:  4,
		Wins:         2,
		Losses:       1,
		Pushes:       1,
		Blackjacks:   1,
		TotalBet:     200,
		TotalPayout:  325,
	})

	rendered := out.String()
	assert.Contains(t, rendered, "Rounds played: 3")
	assert.Contains(t, rendered, "2 won, 1 lost, 1 pushed")
	assert.Contains(t, rendered, "50.0% win rate")
	assert.Contains(t, rendered, "+$125")
}

func TestSummaryNegativeNet(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.Summary(entities.SessionStatistics{
		RoundsPlayed: 1,
		HandsPlayed:  1,
		Losses:       1,
		TotalBet:     100,
		TotalPayout:  0,
	})

	assert.Contains(t, out.String(), "-$100")
}
