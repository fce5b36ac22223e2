package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/tablejack/pkg/entities"
	walletRepo "github.com/fadedpez/tablejack/pkg/repositories/wallet"
)

func newTestService() *Service {
	return NewService(walletRepo.NewMemoryRepository())
}

func TestGetOrCreateWallet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	wallet, created, err := svc.GetOrCreateWallet(ctx, "player")
	require.NoError(t, err)
	assert.True(t, created, "First access creates the wallet")
	assert.Equal(t, int64(0), wallet.Balance, "New wallets start empty")

	_, created, err = svc.GetOrCreateWallet(ctx, "player")
	require.NoError(t, err)
	assert.False(t, created, "Second access finds the existing wallet")
}

func TestDepositAndBalance(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Deposit(ctx, "player", 1000, "buy-in"))

	balance, err := svc.GetBalance(ctx, "player")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	transactions, err := svc.GetTransactions(ctx, "player", 10)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, entities.TransactionTypeBuyIn, transactions[0].Type)
	assert.Equal(t, int64(1000), transactions[0].Amount)
	assert.Equal(t, int64(1000), transactions[0].BalanceAfter)
	assert.NotEmpty(t, transactions[0].ID)
}

func TestRemoveFunds(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	require.NoError(t, svc.Deposit(ctx, "player", 100, "buy-in"))

	require.NoError(t, svc.RemoveFunds(ctx, "player", 40, "bet for hand 1"))

	balance, err := svc.GetBalance(ctx, "player")
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)

	transactions, err := svc.GetTransactions(ctx, "player", 10)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	bet := transactions[1]
	assert.Equal(t, entities.TransactionTypeBet, bet.Type)
	assert.Equal(t, int64(-40), bet.Amount, "Debits are recorded as negative amounts")
	assert.Equal(t, int64(60), bet.BalanceAfter)
}

func TestRemoveFundsInsufficient(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	require.NoError(t, svc.Deposit(ctx, "player", 30, "buy-in"))

	err := svc.RemoveFunds(ctx, "player", 50, "bet for hand 1")

	assert.ErrorIs(t, err, ErrInsufficientFunds)

	balance, balErr := svc.GetBalance(ctx, "player")
	require.NoError(t, balErr)
	assert.Equal(t, int64(30), balance, "A failed debit leaves the balance untouched")
}

func TestAmountMustBePositive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, amount := range []int64{0, -5} {
		assert.ErrorIs(t, svc.Deposit(ctx, "player", amount, "buy-in"), ErrNegativeAmount)
		assert.ErrorIs(t, svc.AddFunds(ctx, "player", amount, "payout"), ErrNegativeAmount)
		assert.ErrorIs(t, svc.RemoveFunds(ctx, "player", amount, "bet"), ErrNegativeAmount)
	}
}

func TestAddFundsRecordsPayout(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	require.NoError(t, svc.Deposit(ctx, "player", 100, "buy-in"))

	require.NoError(t, svc.AddFunds(ctx, "player", 75, "payout for hand 1"))

	balance, err := svc.GetBalance(ctx, "player")
	require.NoError(t, err)
	assert.Equal(t, int64(175), balance)

	transactions, err := svc.GetTransactions(ctx, "player", 10)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, entities.TransactionTypePayout, transactions[1].Type)
}

func TestSessionScopesToOneUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	alice := NewSession(svc, "alice")
	bob := NewSession(svc, "bob")

	require.NoError(t, alice.Deposit(ctx, 500, "buy-in"))
	require.NoError(t, bob.Deposit(ctx, 200, "buy-in"))
	require.NoError(t, alice.RemoveFunds(ctx, 100, "bet"))

	aliceBalance, err := alice.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(400), aliceBalance)

	bobBalance, err := bob.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(200), bobBalance, "One player's bet never touches another's wallet")
}
