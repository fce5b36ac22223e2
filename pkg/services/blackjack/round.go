package blackjack

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/fadedpez/tablejack/internal/logging"
	"github.com/fadedpez/tablejack/internal/types"
	"github.com/fadedpez/tablejack/pkg/entities"
)

var (
	ErrNoBets        = errors.New("at least one bet is required")
	ErrRoundFinished = errors.New("round has already been played")
)

// Action is a player decision offered during a hand
type Action string

const (
	ActionHit    Action = "Hit"
	ActionStand  Action = "Stand"
	ActionDouble Action = "Double"
	ActionSplit  Action = "Split"
)

// Config holds the table rules and pacing for a round
type Config struct {
	StandThreshold int // Dealer stands at or above this score; defaults to 17

	// Pacing delays between renders. Zero disables pacing, which is how
	// tests run.
	ShuffleDelay time.Duration
	DealDelay    time.Duration
	DrawDelay    time.Duration

	Clock  quartz.Clock    // Defaults to the real clock
	Logger *logging.Logger // Defaults to logging.Default
}

// Round orchestrates one full hand of play: the deal, the per-hand action
// state machine, the dealer's drawing policy and settlement. Execution is
// strictly sequential; the only suspension point is the blocking prompter
// call.
type Round struct {
	ID string

	cfg      Config
	shoe     *entities.Shoe
	dealer   *Hand
	hands    []*Hand
	prompter Prompter
	display  Display
	bankroll Bankroll
	clock    quartz.Clock
	logger   *logging.Logger
	played   bool
}

// NewRound creates a round drawing from the given shoe. The shoe is
// expected to be shuffled already; the round only reshuffles it on a
// dealer-natural redeal.
func NewRound(cfg Config, shoe *entities.Shoe, bankroll Bankroll, prompter Prompter, display Display) *Round {
	if cfg.StandThreshold <= 0 {
		cfg.StandThreshold = DefaultStandThreshold
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default
	}

	return &Round{
		ID:       uuid.New().String(),
		cfg:      cfg,
		shoe:     shoe,
		dealer:   NewDealerHand(),
		prompter: prompter,
		display:  display,
		bankroll: bankroll,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
	}
}

// Hands returns the player hands in turn order
func (r *Round) Hands() []*Hand {
	return r.hands
}

// Dealer returns the dealer's hand
func (r *Round) Dealer() *Hand {
	return r.dealer
}

// Play runs the round to settlement: places one hand per bet, deals, runs
// the player turns and the dealer, then reconciles every hand against the
// bankroll. A round plays exactly once.
func (r *Round) Play(ctx context.Context, bets []int64) error {
	if r.played {
		return ErrRoundFinished
	}
	r.played = true

	if len(bets) == 0 {
		return ErrNoBets
	}

	for i, bet := range bets {
		if bet <= 0 {
			return types.NewGameError(types.ErrInvalidArgument,
				fmt.Sprintf("bet for hand %d must be positive, got %d", i+1, bet))
		}
		if err := r.bankroll.RemoveFunds(ctx, bet, fmt.Sprintf("bet for hand %d", i+1)); err != nil {
			return err
		}
		r.hands = append(r.hands, NewHand(nil, bet))
	}

	r.logger.Debug("round %s: dealing %d hands", r.ID, len(r.hands))
	if err := r.deal(); err != nil {
		return err
	}
	r.pause(r.cfg.DealDelay)

	if err := r.playHands(ctx); err != nil {
		return err
	}
	if err := r.playDealer(ctx); err != nil {
		return err
	}
	return r.settle(ctx)
}

// deal gives two cards to each player hand (one pass each, twice, in
// physical dealing order) and then two to the dealer. If the dealer opens
// with a natural 21 every dealt card goes back in the shoe, the shoe is
// reshuffled and the deal is retried until the dealer does not open with a
// natural. This preserves the table's historical redeal rule.
func (r *Round) deal() error {
	for {
		for pass := 0; pass < 2; pass++ {
			for _, h := range r.hands {
				cards, err := r.shoe.Draw(1)
				if err != nil {
					return err
				}
				h.AddCards(cards...)
			}
		}

		cards, err := r.shoe.Draw(2)
		if err != nil {
			return err
		}
		r.dealer.AddCards(cards...)

		if !r.dealer.Blackjack {
			return nil
		}

		r.logger.Info("round %s: dealer opened with a natural 21 (%s), redealing", r.ID, r.dealer)
		r.returnAllCards()
		r.pause(r.cfg.ShuffleDelay)
		r.shoe.Shuffle()
	}
}

// returnAllCards empties every hand back into the shoe
func (r *Round) returnAllCards() {
	for _, h := range r.hands {
		r.shoe.Return(h.TakeAllCards())
	}
	r.shoe.Return(r.dealer.TakeAllCards())
}

// playHands visits each hand in turn order. The loop re-checks the slice
// length every step, so a hand inserted by a split at i+1 is visited next.
func (r *Round) playHands(ctx context.Context) error {
	for i := 0; i < len(r.hands); i++ {
		if err := r.renderState(ctx, i, false, false, ""); err != nil {
			return err
		}
		if err := r.playHand(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// playHand runs the action state machine for one hand. It is a loop that
// re-evaluates the hand's eligible actions after every mutation, including
// the structural change a split makes.
func (r *Round) playHand(ctx context.Context, i int) error {
	for {
		h := r.hands[i]

		if h.Blackjack {
			return r.renderState(ctx, i, false, false, fmt.Sprintf("Blackjack for hand %d!", i+1))
		}

		// Split Aces receive exactly one card and no further action
		if h.Split && len(h.Cards) == 1 && IsAce(h.Cards[0]) {
			if err := r.hitHand(h); err != nil {
				return err
			}
			return r.renderState(ctx, i, false, false, "Split Aces, drawing one card")
		}

		actions, err := r.availableActions(ctx, h)
		if err != nil {
			return err
		}
		action, err := r.promptAction(i, actions)
		if err != nil {
			return err
		}

		switch action {
		case ActionHit:
			if err := r.hitHand(h); err != nil {
				return err
			}
			if h.Bust {
				return r.renderState(ctx, i, false, false, fmt.Sprintf("Hand %d busted!", i+1))
			}
			if err := r.renderState(ctx, i, false, false, "Hit"); err != nil {
				return err
			}

		case ActionStand:
			return nil

		case ActionDouble:
			if err := r.bankroll.RemoveFunds(ctx, h.Bet, fmt.Sprintf("double down on hand %d", i+1)); err != nil {
				return err
			}
			h.Bet *= 2
			h.Doubled = true
			if err := r.hitHand(h); err != nil {
				return err
			}
			message := "Doubled"
			if h.Bust {
				message = "Doubled and busted!"
			}
			return r.renderState(ctx, i, false, false, message)

		case ActionSplit:
			if err := r.splitHand(ctx, i); err != nil {
				return err
			}
			if err := r.renderState(ctx, i, false, false, fmt.Sprintf("Split hand %d", i+1)); err != nil {
				return err
			}
		}
	}
}

// availableActions returns the actions the hand is currently eligible for.
// Double requires exactly two cards on a non-split hand and a bankroll
// covering a second stake; Split additionally requires a pair.
func (r *Round) availableActions(ctx context.Context, h *Hand) ([]Action, error) {
	actions := []Action{ActionHit, ActionStand}

	if len(h.Cards) == 2 && !h.Split {
		balance, err := r.bankroll.Balance(ctx)
		if err != nil {
			return nil, err
		}
		if balance >= h.Bet {
			actions = append(actions, ActionDouble)
			if IsPair(h.Cards) {
				actions = append(actions, ActionSplit)
			}
		}
	}

	return actions, nil
}

// promptAction presents the numbered actions and maps the chosen token back
func (r *Round) promptAction(i int, actions []Action) (Action, error) {
	labels := make([]string, len(actions))
	valid := make([]string, len(actions))
	for j, action := range actions {
		labels[j] = fmt.Sprintf("%d. %s", j+1, action)
		valid[j] = strconv.Itoa(j + 1)
	}

	message := fmt.Sprintf("Playing hand %d... %s: ", i+1, strings.Join(labels, " | "))
	token, err := r.prompter.PromptChoice(message, valid)
	if err != nil {
		return "", err
	}

	idx, err := strconv.Atoi(token)
	if err != nil || idx < 1 || idx > len(actions) {
		return "", types.NewGameError(types.ErrInternalError,
			fmt.Sprintf("prompter returned token %q outside the valid set", token))
	}
	return actions[idx-1], nil
}

// hitHand draws one card into the hand
func (r *Round) hitHand(h *Hand) error {
	cards, err := r.shoe.Draw(1)
	if err != nil {
		return err
	}
	h.AddCards(cards...)
	return nil
}

// splitHand moves the second card of a pair into a new hand carrying the
// same bet and inserts it immediately after the hand being split
func (r *Round) splitHand(ctx context.Context, i int) error {
	h := r.hands[i]

	if err := r.bankroll.RemoveFunds(ctx, h.Bet, fmt.Sprintf("split hand %d", i+1)); err != nil {
		return err
	}

	card, err := h.RemoveLastCard()
	if err != nil {
		return err
	}

	newHand := NewHand([]entities.Card{card}, h.Bet)
	h.Split = true
	newHand.Split = true

	r.hands = append(r.hands, nil)
	copy(r.hands[i+2:], r.hands[i+1:])
	r.hands[i+1] = newHand

	r.logger.Debug("round %s: split hand %d, now playing %d hands", r.ID, i+1, len(r.hands))
	return nil
}

// playDealer reveals the hole card, then draws while the dealer's score is
// below the stand threshold. The policy never considers the player hands.
func (r *Round) playDealer(ctx context.Context) error {
	r.dealer.HideHoleCard = false
	if err := r.renderState(ctx, -1, true, false, "Dealer reveals the hole card"); err != nil {
		return err
	}

	for r.dealer.Score < r.cfg.StandThreshold {
		r.pause(r.cfg.DrawDelay)
		cards, err := r.shoe.Draw(1)
		if err != nil {
			return err
		}
		r.dealer.AddCards(cards...)
		if err := r.renderState(ctx, -1, true, false, "Dealer draws"); err != nil {
			return err
		}
	}

	return nil
}

// settle resolves every hand against the dealer and credits the bankroll
func (r *Round) settle(ctx context.Context) error {
	for i, h := range r.hands {
		status := h.Settle(r.dealer)
		payout := PayoutFor(status, h.Blackjack, h.Bet)
		r.logger.Debug("round %s: hand %d settled %s, payout %d", r.ID, i+1, status, payout)
		if payout > 0 {
			if err := r.bankroll.AddFunds(ctx, payout, fmt.Sprintf("payout for hand %d", i+1)); err != nil {
				return err
			}
		}
	}
	return r.renderState(ctx, -1, false, true, "Round results")
}

// PayoutFor returns the bankroll credit for a settled hand: a push returns
// the stake, a win pays 1:1 and a natural pays 3:2, each on top of the
// returned stake. Losses pay nothing; the stake was deducted at bet time.
func PayoutFor(status Status, natural bool, bet int64) int64 {
	switch status {
	case StatusPush:
		return bet
	case StatusWin:
		if natural {
			return bet + bet*3/2
		}
		return bet * 2
	default:
		return 0
	}
}

// renderState pushes the full round state into the display sink
func (r *Round) renderState(ctx context.Context, active int, dealerTurn, final bool, message string) error {
	balance, err := r.bankroll.Balance(ctx)
	if err != nil {
		return err
	}
	r.display.Render(View{
		Dealer:     r.dealer,
		Hands:      r.hands,
		Bankroll:   balance,
		ActiveHand: active,
		DealerTurn: dealerTurn,
		Final:      final,
		Message:    message,
	})
	return nil
}

// pause blocks for the given delay using the round's clock
func (r *Round) pause(d time.Duration) {
	if d <= 0 {
		return
	}
	done := make(chan struct{})
	timer := r.clock.AfterFunc(d, func() { close(done) })
	defer timer.Stop()
	<-done
}
