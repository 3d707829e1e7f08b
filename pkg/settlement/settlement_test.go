package settlement

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/notify"
	"github.com/mkani/billing/pkg/storage"
	"github.com/mkani/billing/pkg/storage/gormstore"
	"github.com/mkani/billing/pkg/storage/gormstore/gormtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settleFixture struct {
	store    *gormstore.Store
	fx       *gormtest.Fixtures
	rec      *notify.Recorder
	engine   *Engine
	pkg      *models.Package
	resident *models.ResidentProfile
}

func newSettleFixture(t *testing.T) *settleFixture {
	store := gormtest.NewStore(t)
	fx := gormtest.NewFixtures(t, store)
	head := fx.User("head")
	building := fx.Building("Nasr City", head)
	resident := fx.Owner(fx.User("resident"), fx.Unit(building, "1"), models.ResidentApproved)
	rec := &notify.Recorder{}
	return &settleFixture{
		store:    store,
		fx:       fx,
		rec:      rec,
		engine:   NewEngine(store, rec, slog.New(slog.NewTextHandler(io.Discard, nil)), nil),
		pkg:      fx.UtilityPackage(head, "1000", 5, building),
		resident: resident,
	}
}

func (f *settleFixture) balance(t *testing.T) decimal.Decimal {
	w, err := f.store.GetWallet(context.Background(), models.OwnerUser, f.resident.UserID)
	require.NoError(t, err)
	return w.Balance
}

func (f *settleFixture) reconciles(t *testing.T) {
	ctx := context.Background()
	w, err := f.store.GetWallet(ctx, models.OwnerUser, f.resident.UserID)
	require.NoError(t, err)
	txs, err := f.store.ListTransactions(ctx, w.ID)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.SignedAmount())
	}
	assert.True(t, sum.Equal(w.Balance), "ledger %s != balance %s", sum, w.Balance)
}

func TestSettle_InsufficientFunds(t *testing.T) {
	f := newSettleFixture(t)
	f.fx.Wallet(f.resident.User, "50")
	inv := f.fx.Invoice(f.pkg, f.resident, "100", models.Date(2025, time.March, 5))

	outcome, err := f.engine.Settle(context.Background(), inv, f.resident)

	require.NoError(t, err)
	assert.Equal(t, InsufficientFunds, outcome)
	assert.True(t, decimal.NewFromInt(50).Equal(f.balance(t)))
	var got models.PackageInvoice
	f.fx.Reload(&got, inv.ID)
	assert.Equal(t, models.InvoicePending, got.Status)
	assert.Len(t, f.rec.Sent(), 1)
	assert.Len(t, f.rec.For(f.resident.UserID), 1)
	f.reconciles(t)
}

func TestSettle_Paid(t *testing.T) {
	f := newSettleFixture(t)
	wallet := f.fx.Wallet(f.resident.User, "500")
	inv := f.fx.Invoice(f.pkg, f.resident, "200", models.Date(2025, time.March, 5))

	outcome, err := f.engine.Settle(context.Background(), inv, f.resident)

	require.NoError(t, err)
	assert.Equal(t, Paid, outcome)
	assert.True(t, decimal.NewFromInt(300).Equal(f.balance(t)))

	var got models.PackageInvoice
	f.fx.Reload(&got, inv.ID)
	assert.Equal(t, models.InvoicePaid, got.Status)
	require.NotNil(t, got.PaymentMethod)
	assert.Equal(t, models.MethodWallet, *got.PaymentMethod)
	require.NotNil(t, got.TransactionID)
	assert.Equal(t, got.TransactionID, inv.TransactionID)

	var tx models.Transaction
	f.fx.Reload(&tx, *got.TransactionID)
	assert.Equal(t, wallet.ID, tx.WalletID)
	assert.True(t, decimal.NewFromInt(200).Equal(tx.Amount))
	assert.Equal(t, models.TransactionCompleted, tx.Status)
	assert.Equal(t, models.Debit, tx.Direction)
	require.NotNil(t, tx.PackageInvoiceID)
	assert.Equal(t, inv.ID, *tx.PackageInvoiceID)

	assert.Len(t, f.rec.For(f.resident.UserID), 1)
	f.reconciles(t)

	t.Run("second attempt is a no-op", func(t *testing.T) {
		f.rec.Reset()
		outcome, err := f.engine.Settle(context.Background(), inv, f.resident)
		require.NoError(t, err)
		assert.Equal(t, AlreadyPaid, outcome)
		assert.True(t, decimal.NewFromInt(300).Equal(f.balance(t)))
		assert.Empty(t, f.rec.Sent())
	})
}

func TestSettle_NoWallet(t *testing.T) {
	f := newSettleFixture(t)
	inv := f.fx.Invoice(f.pkg, f.resident, "100", models.Date(2025, time.March, 5))

	outcome, err := f.engine.Settle(context.Background(), inv, f.resident)

	require.NoError(t, err)
	assert.Equal(t, NoWallet, outcome)
	var got models.PackageInvoice
	f.fx.Reload(&got, inv.ID)
	assert.Equal(t, models.InvoicePending, got.Status)
	assert.Len(t, f.rec.For(f.resident.UserID), 1)

	t.Run("settled invoice is not reported", func(t *testing.T) {
		f.rec.Reset()
		require.NoError(t, f.store.DB().Model(&models.PackageInvoice{}).
			Where("id = ?", inv.ID).Update("status", models.InvoicePaid).Error)

		outcome, err := f.engine.Settle(context.Background(), inv, f.resident)

		require.NoError(t, err)
		assert.Equal(t, AlreadyPaid, outcome)
		assert.Empty(t, f.rec.Sent())
	})
}

func TestSettle_OverdueInvoiceIsPayable(t *testing.T) {
	f := newSettleFixture(t)
	f.fx.Wallet(f.resident.User, "100")
	inv := f.fx.Invoice(f.pkg, f.resident, "100", models.Date(2025, time.January, 5))
	_, err := f.store.MarkOverdue(context.Background(), models.Date(2025, time.February, 1))
	require.NoError(t, err)

	outcome, err := f.engine.Settle(context.Background(), inv, f.resident)

	require.NoError(t, err)
	assert.Equal(t, Paid, outcome)
	assert.True(t, f.balance(t).IsZero())
}

// failingLedger breaks the invoice update after the debit has been written.
type failingLedger struct {
	storage.LedgerTx
}

func (failingLedger) MarkInvoicePaid(context.Context, uint, uint, models.PaymentMethod) error {
	return errors.New("disk full")
}

type faultyStore struct {
	*gormstore.Store
}

func (s faultyStore) Transact(ctx context.Context, fn func(tx storage.LedgerTx) error) error {
	return s.Store.Transact(ctx, func(tx storage.LedgerTx) error {
		return fn(failingLedger{tx})
	})
}

func TestSettle_NoPartialSettlement(t *testing.T) {
	f := newSettleFixture(t)
	f.fx.Wallet(f.resident.User, "500")
	inv := f.fx.Invoice(f.pkg, f.resident, "200", models.Date(2025, time.March, 5))
	engine := NewEngine(faultyStore{f.store}, f.rec, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	_, err := engine.Settle(context.Background(), inv, f.resident)

	require.ErrorContains(t, err, "disk full")
	assert.True(t, decimal.NewFromInt(500).Equal(f.balance(t)), "debit rolled back")
	var got models.PackageInvoice
	f.fx.Reload(&got, inv.ID)
	assert.Equal(t, models.InvoicePending, got.Status)
	assert.Empty(t, f.rec.Sent(), "nothing is announced for a rolled back settlement")
	f.reconciles(t)
}

func TestSettle_ConcurrentInvoicesAgainstOneWallet(t *testing.T) {
	f := newSettleFixture(t)
	f.fx.Wallet(f.resident.User, "300")
	invoices := []*models.PackageInvoice{
		f.fx.Invoice(f.pkg, f.resident, "200", models.Date(2025, time.March, 5)),
		f.fx.Invoice(f.pkg, f.resident, "200", models.Date(2025, time.April, 5)),
	}

	var wg sync.WaitGroup
	outcomes := make([]Outcome, len(invoices))
	for i, inv := range invoices {
		wg.Add(1)
		go func(i int, inv *models.PackageInvoice) {
			defer wg.Done()
			out, err := f.engine.Settle(context.Background(), inv, f.resident)
			assert.NoError(t, err)
			outcomes[i] = out
		}(i, inv)
	}
	wg.Wait()

	assert.ElementsMatch(t, []Outcome{Paid, InsufficientFunds}, outcomes)
	assert.True(t, decimal.NewFromInt(100).Equal(f.balance(t)))
	f.reconciles(t)
}

type rentFixture struct {
	store    *gormstore.Store
	fx       *gormtest.Fixtures
	rec      *notify.Recorder
	engine   *Engine
	tenant   *models.User
	landlord *models.User
	profile  *models.ResidentProfile
}

func newRentFixture(t *testing.T, tenantBalance string) *rentFixture {
	store := gormtest.NewStore(t)
	fx := gormtest.NewFixtures(t, store)
	building := fx.Building("Mohandessin", nil)
	unit := fx.Unit(building, "9")
	landlord := fx.User("landlord")
	fx.Owner(landlord, unit, models.ResidentApproved)
	tenant := fx.User("tenant")
	profile := fx.Tenant(tenant, unit, landlord, models.ResidentApproved, models.Date(2026, time.January, 1))
	fx.Wallet(tenant, tenantBalance)
	fx.Wallet(landlord, "0")
	rec := &notify.Recorder{}
	return &rentFixture{
		store:    store,
		fx:       fx,
		rec:      rec,
		engine:   NewEngine(store, rec, slog.New(slog.NewTextHandler(io.Discard, nil)), nil),
		tenant:   tenant,
		landlord: landlord,
		profile:  profile,
	}
}

func (f *rentFixture) balances(t *testing.T) (tenant, landlord decimal.Decimal) {
	ctx := context.Background()
	tw, err := f.store.GetWallet(ctx, models.OwnerUser, f.tenant.ID)
	require.NoError(t, err)
	lw, err := f.store.GetWallet(ctx, models.OwnerUser, f.landlord.ID)
	require.NoError(t, err)
	return tw.Balance, lw.Balance
}

func TestPayRent(t *testing.T) {
	f := newRentFixture(t, "3000")

	receipt, err := f.engine.PayRent(context.Background(), PayRentRequest{
		PayerID:         f.tenant.ID,
		LandlordID:      f.landlord.ID,
		RentalProfileID: f.profile.ID,
		Amount:          decimal.NewFromInt(2500),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, receipt.Reference)
	assert.True(t, decimal.NewFromInt(500).Equal(receipt.PayerBalance))
	tb, lb := f.balances(t)
	assert.True(t, decimal.NewFromInt(500).Equal(tb))
	assert.True(t, decimal.NewFromInt(2500).Equal(lb))

	var debit, credit models.Transaction
	f.fx.Reload(&debit, receipt.DebitTransactionID)
	f.fx.Reload(&credit, receipt.CreditTransactionID)
	assert.Equal(t, debit.Reference, credit.Reference)
	assert.Equal(t, models.Debit, debit.Direction)
	assert.Equal(t, models.Credit, credit.Direction)

	assert.Len(t, f.rec.For(f.tenant.ID), 1)
	assert.Len(t, f.rec.For(f.landlord.ID), 1)
}

func TestPayRent_Rejected(t *testing.T) {

	testCases := []struct {
		name    string
		balance string
		mutate  func(f *rentFixture, req *PayRentRequest)
		wantErr error
	}{
		{"wrong landlord", "3000", func(f *rentFixture, req *PayRentRequest) {
			other := f.fx.User("other")
			req.LandlordID = other.ID
		}, ErrLandlordMismatch},
		{"non-positive amount", "3000", func(_ *rentFixture, req *PayRentRequest) {
			req.Amount = decimal.Zero
		}, ErrInvalidAmount},
		{"amount rounds to zero", "3000", func(_ *rentFixture, req *PayRentRequest) {
			req.Amount = decimal.RequireFromString("0.004")
		}, ErrInvalidAmount},
		{"paying oneself", "3000", func(f *rentFixture, req *PayRentRequest) {
			req.LandlordID = f.tenant.ID
		}, ErrLandlordMismatch},
		{"unknown profile", "3000", func(_ *rentFixture, req *PayRentRequest) {
			req.RentalProfileID = 4242
		}, ErrRentalProfileNotFound},
		{"someone else's profile", "3000", func(f *rentFixture, req *PayRentRequest) {
			req.PayerID = f.fx.User("intruder").ID
		}, ErrRentalProfileNotFound},
		{"insufficient funds", "100", func(*rentFixture, *PayRentRequest) {}, storage.ErrInsufficientFunds},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRentFixture(t, tc.balance)
			req := PayRentRequest{
				PayerID:         f.tenant.ID,
				LandlordID:      f.landlord.ID,
				RentalProfileID: f.profile.ID,
				Amount:          decimal.NewFromInt(2500),
			}
			tc.mutate(f, &req)
			beforeTenant, beforeLandlord := f.balances(t)

			_, err := f.engine.PayRent(context.Background(), req)

			assert.ErrorIs(t, err, tc.wantErr)
			afterTenant, afterLandlord := f.balances(t)
			assert.True(t, beforeTenant.Equal(afterTenant))
			assert.True(t, beforeLandlord.Equal(afterLandlord))
			assert.Empty(t, f.rec.Sent())
		})
	}

	t.Run("validation errors are typed", func(t *testing.T) {
		f := newRentFixture(t, "3000")
		_, err := f.engine.PayRent(context.Background(), PayRentRequest{
			PayerID: f.tenant.ID, LandlordID: f.landlord.ID, RentalProfileID: f.profile.ID, Amount: decimal.NewFromInt(-5),
		})
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestPayRent_OppositeDirectionsDoNotDeadlock(t *testing.T) {
	f := newRentFixture(t, "1000")
	ctx := context.Background()

	// The landlord also rents a unit from the tenant elsewhere.
	building := f.fx.Building("Agouza", nil)
	unit := f.fx.Unit(building, "2")
	f.fx.Owner(f.tenant, unit, models.ResidentApproved)
	reverse := f.fx.Tenant(f.landlord, unit, f.tenant, models.ResidentApproved, models.Date(2026, time.January, 1))
	_, err := f.engine.TopUp(ctx, models.OwnerUser, f.landlord.ID, decimal.NewFromInt(1000), models.MethodFawry, "gw-1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := PayRentRequest{PayerID: f.tenant.ID, LandlordID: f.landlord.ID, RentalProfileID: f.profile.ID, Amount: decimal.NewFromInt(10)}
			if i%2 == 1 {
				req = PayRentRequest{PayerID: f.landlord.ID, LandlordID: f.tenant.ID, RentalProfileID: reverse.ID, Amount: decimal.NewFromInt(10)}
			}
			_, errs[i] = f.engine.PayRent(ctx, req)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	tb, lb := f.balances(t)
	assert.True(t, decimal.NewFromInt(2000).Equal(tb.Add(lb)), "money is conserved")
	assert.True(t, decimal.NewFromInt(1000).Equal(tb))
}

func TestTopUp(t *testing.T) {
	f := newRentFixture(t, "0")

	tx, err := f.engine.TopUp(context.Background(), models.OwnerUser, f.tenant.ID, decimal.RequireFromString("150.505"), models.MethodSahl, "")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("150.51").Equal(tx.Amount))
	assert.NotEmpty(t, tx.Reference)

	tb, _ := f.balances(t)
	assert.True(t, decimal.RequireFromString("150.51").Equal(tb))

	for _, amount := range []string{"0", "0.004", "-1"} {
		_, err = f.engine.TopUp(context.Background(), models.OwnerUser, f.tenant.ID, decimal.RequireFromString(amount), models.MethodSahl, "")
		assert.ErrorIs(t, err, ErrInvalidAmount, amount)
	}
	tb, _ = f.balances(t)
	assert.True(t, decimal.RequireFromString("150.51").Equal(tb))
}
