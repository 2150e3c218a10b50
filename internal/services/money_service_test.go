package services

import (
	"testing"

	"github.com/pixperk/pocketmind-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestLendMoney(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	svc := NewMoneyService(db)

	debt, err := svc.LendMoney(alice.ID, &models.LendMoneyRequest{
		Amount: 42.50, Currency: models.CurrencyUSD, DebtorID: bob.ID,
		Description: "lunch",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, debt.ID)
	assert.Equal(t, models.DebtStatusPending, debt.Status)
	assert.Equal(t, alice.ID, debt.CreditorID)
	assert.Equal(t, bob.ID, debt.DebtorID)
	assert.False(t, debt.DateOfLending.IsZero())
}

func TestLendMoneyToSelf(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	svc := NewMoneyService(db)

	_, err := svc.LendMoney(alice.ID, &models.LendMoneyRequest{
		Amount: 10, Currency: models.CurrencyINR, DebtorID: alice.ID,
	})
	assert.ErrorIs(t, err, ErrSelfLoan)

	var count int64
	require.NoError(t, db.Model(&models.Debt{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLendMoneyToUnknownDebtor(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	svc := NewMoneyService(db)

	_, err := svc.LendMoney(alice.ID, &models.LendMoneyRequest{
		Amount: 10, Currency: models.CurrencyUSD,
		DebtorID: "00000000-0000-0000-0000-000000000000",
	})
	assert.ErrorIs(t, err, ErrDebtorNotFound)
}

func TestClearDebt(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	svc := NewMoneyService(db)

	debt, err := svc.LendMoney(alice.ID, &models.LendMoneyRequest{
		Amount: 100, Currency: models.CurrencyUSD, DebtorID: bob.ID,
	})
	require.NoError(t, err)

	t.Run("non-creditor cannot clear", func(t *testing.T) {
		_, err := svc.ClearDebt(debt.ID, bob.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		var stored models.Debt
		require.NoError(t, db.First(&stored, "id = ?", debt.ID).Error)
		assert.Equal(t, models.DebtStatusPending, stored.Status)
	})

	t.Run("unknown debt", func(t *testing.T) {
		_, err := svc.ClearDebt("00000000-0000-0000-0000-000000000000", alice.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("creditor clears", func(t *testing.T) {
		cleared, err := svc.ClearDebt(debt.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, models.DebtStatusCompleted, cleared.Status)
	})
}

func TestGetTransactions(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	carol := createTestUser(t, db, "carol", "carol@example.com")
	svc := NewMoneyService(db)

	// alice lent to bob, borrowed from carol
	lent, err := svc.LendMoney(alice.ID, &models.LendMoneyRequest{
		Amount: 50, Currency: models.CurrencyUSD, DebtorID: bob.ID,
	})
	require.NoError(t, err)
	owed, err := svc.LendMoney(carol.ID, &models.LendMoneyRequest{
		Amount: 75, Currency: models.CurrencyINR, DebtorID: alice.ID,
	})
	require.NoError(t, err)

	t.Run("lent side only", func(t *testing.T) {
		debts, err := svc.GetTransactions(alice.ID, nil, TransactionTypeLent)
		require.NoError(t, err)
		require.Len(t, debts, 1)
		assert.Equal(t, lent.ID, debts[0].ID)
	})

	t.Run("debt side only", func(t *testing.T) {
		debts, err := svc.GetTransactions(alice.ID, nil, TransactionTypeDebts)
		require.NoError(t, err)
		require.Len(t, debts, 1)
		assert.Equal(t, owed.ID, debts[0].ID)
	})

	t.Run("all is the union without duplicates", func(t *testing.T) {
		debts, err := svc.GetTransactions(alice.ID, nil, TransactionTypeAll)
		require.NoError(t, err)
		assert.Len(t, debts, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		_, err := svc.ClearDebt(lent.ID, alice.ID)
		require.NoError(t, err)

		pending, err := svc.GetTransactions(alice.ID, boolPtr(false), TransactionTypeAll)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, owed.ID, pending[0].ID)

		completed, err := svc.GetTransactions(alice.ID, boolPtr(true), TransactionTypeAll)
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, lent.ID, completed[0].ID)
	})

	t.Run("associations are loaded", func(t *testing.T) {
		debts, err := svc.GetTransactions(bob.ID, nil, TransactionTypeDebts)
		require.NoError(t, err)
		require.Len(t, debts, 1)
		assert.Equal(t, "alice", debts[0].Creditor.Username)
		assert.Equal(t, "bob", debts[0].Debtor.Username)
	})
}
