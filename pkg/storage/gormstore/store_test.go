package gormstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
	"github.com/mkani/billing/pkg/storage/gormstore"
	"github.com/mkani/billing/pkg/storage/gormstore/gormtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := gormstore.Open("mysql", "root@/mkani")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestGetOrCreateWallet(t *testing.T) {
	store := gormtest.NewStore(t)
	ctx := context.Background()

	t.Run("missing wallet", func(t *testing.T) {
		_, err := store.GetWallet(ctx, models.OwnerUser, 1)
		assert.ErrorIs(t, err, storage.ErrWalletNotFound)
	})

	t.Run("concurrent callers share one wallet", func(t *testing.T) {
		var wg sync.WaitGroup
		ids := make([]uint, 8)
		errs := make([]error, 8)
		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w, err := store.GetOrCreateWallet(ctx, models.OwnerUser, 2)
				errs[i] = err
				if w != nil {
					ids[i] = w.ID
				}
			}(i)
		}
		wg.Wait()

		for i := range ids {
			require.NoError(t, errs[i])
			assert.Equal(t, ids[0], ids[i])
		}
		var count int64
		require.NoError(t, store.DB().Model(&models.Wallet{}).Where("owner_id = ?", 2).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("owner kinds are separate", func(t *testing.T) {
		user, err := store.GetOrCreateWallet(ctx, models.OwnerUser, 3)
		require.NoError(t, err)
		building, err := store.GetOrCreateWallet(ctx, models.OwnerBuilding, 3)
		require.NoError(t, err)
		assert.NotEqual(t, user.ID, building.ID)
		assert.True(t, building.Balance.IsZero())
	})
}

func TestLedgerTx_RecordTransaction(t *testing.T) {
	store := gormtest.NewStore(t)
	fx := gormtest.NewFixtures(t, store)
	ctx := context.Background()
	user := fx.User("salma")
	wallet := fx.Wallet(user, "100")

	t.Run("debit beyond balance rolls back", func(t *testing.T) {
		err := store.Transact(ctx, func(tx storage.LedgerTx) error {
			w, err := tx.LockWallet(ctx, models.OwnerUser, user.ID)
			if err != nil {
				return err
			}
			return tx.RecordTransaction(ctx, w, &models.Transaction{
				Amount:    decimal.NewFromInt(150),
				Direction: models.Debit,
				Method:    models.MethodWallet,
				Status:    models.TransactionCompleted,
			})
		})
		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)

		txs, err := store.ListTransactions(ctx, wallet.ID)
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("error after a write rolls back the write", func(t *testing.T) {
		err := store.Transact(ctx, func(tx storage.LedgerTx) error {
			w, err := tx.LockWallet(ctx, models.OwnerUser, user.ID)
			if err != nil {
				return err
			}
			err = tx.RecordTransaction(ctx, w, &models.Transaction{
				Amount:    decimal.NewFromInt(40),
				Direction: models.Debit,
				Method:    models.MethodWallet,
				Status:    models.TransactionCompleted,
			})
			require.NoError(t, err)
			return tx.MarkInvoicePaid(ctx, 9999, 1, models.MethodWallet)
		})
		assert.ErrorIs(t, err, storage.ErrInvoiceNotPayable)

		w, err := store.GetWallet(ctx, models.OwnerUser, user.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(w.Balance), "balance %s", w.Balance)
	})

	t.Run("balance reconciles with ledger", func(t *testing.T) {
		err := store.Transact(ctx, func(tx storage.LedgerTx) error {
			w, err := tx.LockWallet(ctx, models.OwnerUser, user.ID)
			if err != nil {
				return err
			}
			for _, amt := range []int64{30, 20} {
				err := tx.RecordTransaction(ctx, w, &models.Transaction{
					Amount:    decimal.NewFromInt(amt),
					Direction: models.Debit,
					Method:    models.MethodWallet,
					Status:    models.TransactionCompleted,
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)

		w, err := store.GetWallet(ctx, models.OwnerUser, user.ID)
		require.NoError(t, err)
		txs, err := store.ListTransactions(ctx, w.ID)
		require.NoError(t, err)
		sum := decimal.Zero
		for _, tx := range txs {
			sum = sum.Add(tx.SignedAmount())
			assert.NotEmpty(t, tx.Reference)
		}
		assert.True(t, sum.Equal(w.Balance), "ledger %s, balance %s", sum, w.Balance)
		assert.True(t, decimal.NewFromInt(50).Equal(w.Balance))
	})
}

func TestLedgerTx_LockWalletsByID(t *testing.T) {
	store := gormtest.NewStore(t)
	fx := gormtest.NewFixtures(t, store)
	ctx := context.Background()
	a := fx.Wallet(fx.User("a"), "10")
	b := fx.Wallet(fx.User("b"), "20")

	err := store.Transact(ctx, func(tx storage.LedgerTx) error {
		wallets, err := tx.LockWalletsByID(ctx, b.ID, a.ID, b.ID)
		require.NoError(t, err)
		assert.Len(t, wallets, 2)
		assert.True(t, decimal.NewFromInt(20).Equal(wallets[b.ID].Balance))

		_, err = tx.LockWalletsByID(ctx, a.ID, 4242)
		return err
	})
	assert.ErrorIs(t, err, storage.ErrWalletNotFound)
}

func TestCreateInvoiceIfAbsent(t *testing.T) {
	store := gormtest.NewStore(t)
	fx := gormtest.NewFixtures(t, store)
	ctx := context.Background()

	head := fx.User("head")
	building := fx.Building("Nile Tower", head)
	unit := fx.Unit(building, "1A")
	owner := fx.Owner(fx.User("owner"), unit, models.ResidentApproved)
	pkg := fx.UtilityPackage(head, "600", 5, building)
	due := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)

	newInvoice := func() *models.PackageInvoice {
		return &models.PackageInvoice{
			PackageID:  pkg.ID,
			BuildingID: building.ID,
			ResidentID: &owner.ID,
			Amount:     decimal.NewFromInt(600),
			DueDate:    due,
		}
	}

	first := newInvoice()
	created, err := store.CreateInvoiceIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)
	assert.Equal(t, models.InvoicePending, first.Status)
	assert.Equal(t, models.Date(2025, time.March, 5), first.DueDate)

	var wg sync.WaitGroup
	results := make([]bool, 6)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := store.CreateInvoiceIfAbsent(ctx, newInvoice())
			assert.NoError(t, err)
			results[i] = ok
		}(i)
	}
	wg.Wait()
	for _, ok := range results {
		assert.False(t, ok)
	}

	invs, err := store.ListInvoicesByResidents(ctx, []uint{owner.ID})
	require.NoError(t, err)
	assert.Len(t, invs, 1)

	other := newInvoice()
	other.DueDate = models.Date(2025, time.April, 5)
	created, err = store.CreateInvoiceIfAbsent(ctx, other)
	require.NoError(t, err)
	assert.True(t, created)

	byBuilding, err := store.ListInvoicesByBuildings(ctx, []uint{building.ID})
	require.NoError(t, err)
	require.Len(t, byBuilding, 2)
	assert.Equal(t, other.ID, byBuilding[0].ID, "newest due date first")

	empty, err := store.ListInvoicesByBuildings(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMarkInvoicePaidAndOverdue(t *testing.T) {
	store := gormtest.NewStore(t)
	fx := gormtest.NewFixtures(t, store)
	ctx := context.Background()

	head := fx.User("head")
	building := fx.Building("Zamalek", head)
	owner := fx.Owner(fx.User("owner"), fx.Unit(building, "2B"), models.ResidentApproved)
	pkg := fx.UtilityPackage(head, "100", 5, building)

	past := fx.Invoice(pkg, owner, "100", models.Date(2025, time.January, 5))
	paid := fx.Invoice(pkg, owner, "100", models.Date(2025, time.February, 5))
	future := fx.Invoice(pkg, owner, "100", models.Date(2025, time.April, 5))

	err := store.Transact(ctx, func(tx storage.LedgerTx) error {
		return tx.MarkInvoicePaid(ctx, paid.ID, 77, models.MethodWallet)
	})
	require.NoError(t, err)

	err = store.Transact(ctx, func(tx storage.LedgerTx) error {
		return tx.MarkInvoicePaid(ctx, paid.ID, 78, models.MethodWallet)
	})
	assert.ErrorIs(t, err, storage.ErrInvoiceNotPayable)

	n, err := store.MarkOverdue(ctx, models.Date(2025, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := store.GetInvoice(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceOverdue, got.Status)

	got, err = store.GetInvoice(ctx, paid.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePaid, got.Status)
	require.NotNil(t, got.TransactionID)
	assert.Equal(t, uint(77), *got.TransactionID)
	require.NotNil(t, got.PaymentMethod)
	assert.Equal(t, models.MethodWallet, *got.PaymentMethod)

	got, err = store.GetInvoice(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePending, got.Status)

	// Overdue invoices stay payable.
	err = store.Transact(ctx, func(tx storage.LedgerTx) error {
		return tx.MarkInvoicePaid(ctx, past.ID, 79, models.MethodWallet)
	})
	assert.NoError(t, err)

	_, err = store.GetInvoice(ctx, 4242)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
