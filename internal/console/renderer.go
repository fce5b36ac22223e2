package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fadedpez/tablejack/pkg/entities"
	"github.com/fadedpez/tablejack/pkg/services/blackjack"
)

// Styles contains the lipgloss styling for the table display
type Styles struct {
	Header    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Hidden    lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Push      lipgloss.Style
	Money     lipgloss.Style
	Turn      lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles creates the default table styles
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#04724D")).
			Padding(0, 1).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E4E4E4")).
			Bold(true),
		Hidden: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Push: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Bold(true),
		Money: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Turn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Renderer draws the full round state to the terminal. It implements the
// engine's display-sink contract and is purely observational.
type Renderer struct {
	out    io.Writer
	styles *Styles
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		styles: NewStyles(),
	}
}

// ClearScreen wipes the terminal and homes the cursor
func (r *Renderer) ClearScreen() {
	fmt.Fprint(r.out, "\033[2J\033[H")
}

// Banner prints the table header
func (r *Renderer) Banner() {
	fmt.Fprintln(r.out, r.styles.Header.Render(" Blackjack Table "))
	fmt.Fprintln(r.out)
}

// Render draws the dealer's hand, every player hand with bet and status,
// and the current bankroll
func (r *Renderer) Render(view blackjack.View) {
	sep := r.styles.Separator.Render(strings.Repeat("-", 38))

	fmt.Fprintln(r.out, sep)

	dealerSuffix := ""
	if view.DealerTurn {
		dealerSuffix = r.styles.Turn.Render(" <-- Dealer's turn")
	}
	fmt.Fprintf(r.out, "Dealer's Hand: %s%s\n", r.formatHand(view.Dealer), dealerSuffix)
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "Here are your hands:")
	for i, h := range view.Hands {
		suffix := ""
		switch {
		case view.Final:
			suffix = " " + r.statusLabel(h.Status)
		case view.ActiveHand == i:
			suffix = r.styles.Turn.Render(" <-- Playing")
		}
		fmt.Fprintf(r.out, "Hand %d: %s - Bet: %s%s\n",
			i+1, r.formatHand(h), r.styles.Money.Render(fmt.Sprintf("$%d", h.Bet)), suffix)
	}
	fmt.Fprintln(r.out)

	fmt.Fprintf(r.out, "Total Money: %s\n", r.styles.Money.Render(fmt.Sprintf("$%d", view.Bankroll)))
	fmt.Fprintln(r.out, sep)

	if view.Message != "" {
		fmt.Fprintln(r.out, view.Message)
	}
	fmt.Fprintln(r.out)
}

// Summary prints the end-of-session statistics
func (r *Renderer) Summary(stats entities.SessionStatistics) {
	sep := r.styles.Separator.Render(strings.Repeat("-", 38))

	fmt.Fprintln(r.out, sep)
	fmt.Fprintln(r.out, r.styles.Header.Render(" Session Results "))
	fmt.Fprintf(r.out, "Rounds played: %d\n", stats.RoundsPlayed)
	fmt.Fprintf(r.out, "Hands: %d won, %d lost, %d pushed (%.1f%% win rate)\n",
		stats.Wins, stats.Losses, stats.Pushes, stats.WinRate())
	fmt.Fprintf(r.out, "Blackjacks: %d, Busts: %d, Splits: %d, Doubles: %d\n",
		stats.Blackjacks, stats.Busts, stats.Splits, stats.DoubleDowns)

	net := stats.NetProfit()
	netLabel := r.styles.Win.Render(fmt.Sprintf("+$%d", net))
	if net < 0 {
		netLabel = r.styles.Lose.Render(fmt.Sprintf("-$%d", -net))
	}
	fmt.Fprintf(r.out, "Net result: %s\n", netLabel)
	fmt.Fprintln(r.out, sep)
}

// formatHand renders a hand's cards, honoring the hidden hole card, with
// the score appended once every card is face up
func (r *Renderer) formatHand(h *blackjack.Hand) string {
	if len(h.Cards) == 0 {
		return ""
	}

	if h.HideHoleCard {
		parts := []string{r.formatCard(h.Cards[0])}
		for range h.Cards[1:] {
			parts = append(parts, r.styles.Hidden.Render("XX"))
		}
		return strings.Join(parts, ", ")
	}

	parts := make([]string, 0, len(h.Cards))
	for _, card := range h.Cards {
		parts = append(parts, r.formatCard(card))
	}
	return fmt.Sprintf("%s - Score: %d", strings.Join(parts, ", "), h.Score)
}

// formatCard colors a card by suit
func (r *Renderer) formatCard(card entities.Card) string {
	if card.IsRed() {
		return r.styles.CardRed.Render(card.String())
	}
	return r.styles.CardBlack.Render(card.String())
}

// statusLabel renders a settled hand's outcome
func (r *Renderer) statusLabel(status blackjack.Status) string {
	switch status {
	case blackjack.StatusWin:
		return r.styles.Win.Render("**WIN**")
	case blackjack.StatusLose:
		return r.styles.Lose.Render("--LOSE--")
	case blackjack.StatusPush:
		return r.styles.Push.Render("==PUSH==")
	default:
		return string(status)
	}
}
