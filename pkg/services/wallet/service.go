package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/tablejack/pkg/entities"
	walletRepo "github.com/fadedpez/tablejack/pkg/repositories/wallet"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("amount must be positive")
)

// Service handles bankroll business logic. Every balance change is exact
// and recorded as a transaction.
type Service struct {
	repo walletRepo.Repository
}

// NewService creates a new wallet service
func NewService(repo walletRepo.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// GetOrCreateWallet retrieves a wallet or creates an empty one if it doesn't exist
func (s *Service) GetOrCreateWallet(ctx context.Context, userID string) (*entities.Wallet, bool, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err == nil {
		return wallet, false, nil // Wallet exists
	}

	if !errors.Is(err, walletRepo.ErrWalletNotFound) {
		return nil, false, err // Unexpected error
	}

	newWallet := &entities.Wallet{
		UserID:      userID,
		Balance:     0, // Funds arrive via the buy-in deposit
		LastUpdated: time.Now(),
	}

	if err := s.repo.SaveWallet(ctx, newWallet); err != nil {
		return nil, false, err
	}

	return newWallet, true, nil
}

// GetBalance returns the current balance for a user
func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	wallet, _, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

// Deposit adds buy-in funds to a user's wallet
func (s *Service) Deposit(ctx context.Context, userID string, amount int64, description string) error {
	return s.credit(ctx, userID, amount, entities.TransactionTypeBuyIn, description)
}

// AddFunds credits a payout to a user's wallet
func (s *Service) AddFunds(ctx context.Context, userID string, amount int64, description string) error {
	return s.credit(ctx, userID, amount, entities.TransactionTypePayout, description)
}

// RemoveFunds debits a bet from a user's wallet. The debit fails with
// ErrInsufficientFunds rather than letting the balance go negative.
func (s *Service) RemoveFunds(ctx context.Context, userID string, amount int64, description string) error {
	if amount <= 0 {
		return ErrNegativeAmount
	}

	wallet, _, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return err
	}

	if wallet.Balance < amount {
		return ErrInsufficientFunds
	}

	wallet.Balance -= amount
	wallet.LastUpdated = time.Now()

	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		return err
	}

	return s.repo.AddTransaction(ctx, &entities.Transaction{
		ID:           uuid.New().String(),
		UserID:       userID,
		Amount:       -amount,
		Type:         entities.TransactionTypeBet,
		Description:  description,
		Timestamp:    time.Now(),
		BalanceAfter: wallet.Balance,
	})
}

// GetTransactions retrieves recent transactions for a user
func (s *Service) GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error) {
	return s.repo.GetTransactions(ctx, userID, limit)
}

// credit adds funds to a wallet and records the transaction
func (s *Service) credit(ctx context.Context, userID string, amount int64, txType entities.TransactionType, description string) error {
	if amount <= 0 {
		return ErrNegativeAmount
	}

	wallet, _, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return err
	}

	wallet.Balance += amount
	wallet.LastUpdated = time.Now()

	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		return err
	}

	return s.repo.AddTransaction(ctx, &entities.Transaction{
		ID:           uuid.New().String(),
		UserID:       userID,
		Amount:       amount,
		Type:         txType,
		Description:  description,
		Timestamp:    time.Now(),
		BalanceAfter: wallet.Balance,
	})
}
