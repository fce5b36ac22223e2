package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/fadedpez/tablejack/internal/config"
	"github.com/fadedpez/tablejack/internal/console"
	"github.com/fadedpez/tablejack/internal/logging"
	"github.com/fadedpez/tablejack/pkg/entities"
	walletRepo "github.com/fadedpez/tablejack/pkg/repositories/wallet"
	"github.com/fadedpez/tablejack/pkg/services/blackjack"
	"github.com/fadedpez/tablejack/pkg/services/statistics"
	"github.com/fadedpez/tablejack/pkg/services/wallet"
)

// CLI flags override the environment configuration. Zero means "use the
// configured value".
type CLI struct {
	Decks          int   `help:"Number of 52-card decks in the shoe." default:"0"`
	StandThreshold int   `help:"Score the dealer stands at or above." default:"0"`
	Hands          int   `help:"Maximum player hands per round." default:"0"`
	MinBet         int64 `help:"Default bet per hand." default:"0"`
	BuyIncrement   int64 `help:"Bets must be multiples of this amount." default:"0"`
	BuyIn          int64 `help:"Skip the buy-in prompt and start with this amount." default:"0"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("tablejack"),
		kong.Description("Single-table console blackjack against a rule-driven dealer."),
	)

	cfg, err := config.Load()
	kctx.FatalIfErrorf(err)

	applyOverrides(cfg, &cli)
	kctx.FatalIfErrorf(cfg.Validate())

	level := logging.WARN
	if cfg.IsDevelopment() {
		level = logging.INFO
	}
	logger := logging.NewLogger(level)

	if err := run(cfg, logger, cli.BuyIn); err != nil {
		logger.LogError(err)
		kctx.Exit(1)
	}
}

// applyOverrides copies any set CLI flag over the env configuration
func applyOverrides(cfg *config.Config, cli *CLI) {
	if cli.Decks > 0 {
		cfg.NumDecks = cli.Decks
	}
	if cli.StandThreshold > 0 {
		cfg.StandThreshold = cli.StandThreshold
	}
	if cli.Hands > 0 {
		cfg.MaxHands = cli.Hands
	}
	if cli.MinBet > 0 {
		cfg.MinimumBuy = cli.MinBet
	}
	if cli.BuyIncrement > 0 {
		cfg.BuyIncrement = cli.BuyIncrement
	}
}

// run drives the session: buy in once, then play rounds until the player
// quits or the bankroll can no longer cover a bet
func run(cfg *config.Config, logger *logging.Logger, buyIn int64) error {
	ctx := context.Background()

	repo := walletRepo.NewMemoryRepository()
	walletSvc := wallet.NewService(repo)
	session := wallet.NewSession(walletSvc, "player")
	stats := statistics.NewService()
	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	renderer := console.NewRenderer(os.Stdout)

	renderer.ClearScreen()
	renderer.Banner()

	if buyIn <= 0 {
		var err error
		buyIn, err = prompter.PromptAmount("How much do you want to buy in? $")
		if err != nil {
			return err
		}
	}
	if err := session.Deposit(ctx, buyIn, "table buy-in"); err != nil {
		return err
	}

	for {
		bets, err := collectBets(ctx, cfg, session, prompter)
		if err != nil {
			return err
		}
		if bets == nil {
			// Bankroll can no longer cover a single bet
			fmt.Println("Not enough money left to cover a bet. Thanks for playing!")
			break
		}

		shoe, err := entities.NewShoe(cfg.NumDecks)
		if err != nil {
			return err
		}
		shoe.Shuffle()

		round := blackjack.NewRound(blackjack.Config{
			StandThreshold: cfg.StandThreshold,
			ShuffleDelay:   config.ShuffleDelay,
			DealDelay:      config.DealDelay,
			DrawDelay:      config.LongDelay,
			Logger:         logger,
		}, shoe, session, prompter, renderer)

		if err := round.Play(ctx, bets); err != nil {
			return err
		}
		stats.RecordRound(round.Hands())

		token, err := prompter.PromptChoice("Play again? 1. Yes | 2. Exit: ", []string{"1", "2"})
		if err != nil {
			return err
		}
		if token == "2" {
			break
		}
		renderer.ClearScreen()
	}

	renderer.Summary(stats.Summary())
	return nil
}

// collectBets asks how many hands to play and the starting bet for each.
// Bets are multiples of the buy increment, capped by the remaining
// bankroll. Returns nil when the bankroll cannot cover even one bet.
func collectBets(ctx context.Context, cfg *config.Config, session *wallet.Session, prompter *console.Prompter) ([]int64, error) {
	balance, err := session.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if balance < cfg.BuyIncrement {
		return nil, nil
	}

	maxHands := cfg.MaxHands
	if affordable := int(balance / cfg.BuyIncrement); affordable < maxHands {
		maxHands = affordable
	}

	numHands := 1
	if maxHands > 1 {
		valid := make([]string, maxHands)
		for i := range valid {
			valid[i] = strconv.Itoa(i + 1)
		}
		token, err := prompter.PromptChoice(
			fmt.Sprintf("How many hands do you want to play? (1-%d): ", maxHands), valid)
		if err != nil {
			return nil, err
		}
		numHands, _ = strconv.Atoi(token)
	}

	bets := make([]int64, 0, numHands)
	remaining := balance
	for i := 0; i < numHands; i++ {
		// Leave one increment for every hand still to be bet
		ceiling := remaining - int64(numHands-1-i)*cfg.BuyIncrement
		options := make([]string, 0, ceiling/cfg.BuyIncrement)
		for amount := cfg.BuyIncrement; amount <= ceiling; amount += cfg.BuyIncrement {
			options = append(options, strconv.FormatInt(amount, 10))
		}

		message := fmt.Sprintf("Bet for hand %d? Possible bets are: %s. Bet: ",
			i+1, strings.Join(options, ", "))
		token, err := prompter.PromptChoice(message, options)
		if err != nil {
			return nil, err
		}

		bet, _ := strconv.ParseInt(token, 10, 64)
		bets = append(bets, bet)
		remaining -= bet
	}

	return bets, nil
}
