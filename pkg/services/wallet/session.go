package wallet

import "context"

// Session binds the wallet service to a single player, giving the round
// engine the one-bankroll view it consumes.
type Session struct {
	svc    *Service
	userID string
}

// NewSession creates a session over the given player's wallet
func NewSession(svc *Service, userID string) *Session {
	return &Session{
		svc:    svc,
		userID: userID,
	}
}

// Balance returns the player's current balance
func (s *Session) Balance(ctx context.Context) (int64, error) {
	return s.svc.GetBalance(ctx, s.userID)
}

// Deposit adds buy-in funds
func (s *Session) Deposit(ctx context.Context, amount int64, description string) error {
	return s.svc.Deposit(ctx, s.userID, amount, description)
}

// AddFunds credits a payout
func (s *Session) AddFunds(ctx context.Context, amount int64, description string) error {
	return s.svc.AddFunds(ctx, s.userID, amount, description)
}

// RemoveFunds debits a bet
func (s *Session) RemoveFunds(ctx context.Context, amount int64, description string) error {
	return s.svc.RemoveFunds(ctx, s.userID, amount, description)
}
