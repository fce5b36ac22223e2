package blackjack

import "context"

//go:generate mockgen -source=interfaces.go -destination=mock/mock.go -package=mock_blackjack

// Prompter is the external decision source. PromptChoice blocks until one
// of the valid tokens is entered; implementations re-prompt on invalid
// input and never return a token outside the valid set.
type Prompter interface {
	PromptChoice(message string, valid []string) (string, error)
}

// Display is the sink the engine renders the round state into after every
// state-changing operation. Purely observational.
type Display interface {
	Render(view View)
}

// Bankroll is the engine's view of the player's funds. All bankroll
// arithmetic is exact; the engine never clamps a balance.
type Bankroll interface {
	Balance(ctx context.Context) (int64, error)
	AddFunds(ctx context.Context, amount int64, description string) error
	RemoveFunds(ctx context.Context, amount int64, description string) error
}

// View is the full round state handed to the display sink
type View struct {
	Dealer     *Hand
	Hands      []*Hand
	Bankroll   int64
	ActiveHand int  // Index of the hand being played, -1 when none
	DealerTurn bool // True while the dealer is drawing
	Final      bool // True once all hands are settled
	Message    string
}
