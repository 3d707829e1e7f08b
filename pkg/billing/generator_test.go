package billing_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mkani/billing/pkg/billing"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/notify"
	"github.com/mkani/billing/pkg/occupancy"
	"github.com/mkani/billing/pkg/settlement"
	"github.com/mkani/billing/pkg/storage/gormstore"
	"github.com/mkani/billing/pkg/storage/gormstore/gormtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type env struct {
	store     *gormstore.Store
	fx        *gormtest.Fixtures
	rec       *notify.Recorder
	resolver  *occupancy.Resolver
	engine    *settlement.Engine
	generator *billing.Generator
}

func newEnv(t *testing.T, opts ...billing.GeneratorOption) *env {
	store := gormtest.NewStore(t)
	rec := &notify.Recorder{}
	resolver := occupancy.NewResolver(store, rec, discard())
	engine := settlement.NewEngine(store, rec, discard(), nil)
	return &env{
		store:     store,
		fx:        gormtest.NewFixtures(t, store),
		rec:       rec,
		resolver:  resolver,
		engine:    engine,
		generator: billing.NewGenerator(store, resolver, engine, discard(), opts...),
	}
}

func (e *env) invoices(t *testing.T) []models.PackageInvoice {
	invs, err := e.store.ListAllInvoices(context.Background())
	require.NoError(t, err)
	return invs
}

func (e *env) balance(t *testing.T, u *models.User) decimal.Decimal {
	w, err := e.store.GetWallet(context.Background(), models.OwnerUser, u.ID)
	require.NoError(t, err)
	return w.Balance
}

// building seeds a four unit building: a funded owner, an owner without a
// wallet, an empty unit and a unit whose tenant shadows its owner.
type building struct {
	b          *models.Building
	head       *models.User
	funded     *models.User
	walletless *models.User
	landlord   *models.User
	tenant     *models.User
}

func seedBuilding(e *env) building {
	head := e.fx.User("head")
	b := e.fx.Building("Zamalek Towers", head)
	s := building{b: b, head: head}

	s.funded = e.fx.User("funded")
	e.fx.Owner(s.funded, e.fx.Unit(b, "1"), models.ResidentApproved)
	e.fx.Wallet(s.funded, "500")

	s.walletless = e.fx.User("walletless")
	e.fx.Owner(s.walletless, e.fx.Unit(b, "2"), models.ResidentApproved)

	e.fx.Unit(b, "3")

	rented := e.fx.Unit(b, "4")
	s.landlord = e.fx.User("landlord")
	e.fx.Owner(s.landlord, rented, models.ResidentApproved)
	e.fx.Wallet(s.landlord, "10000")
	s.tenant = e.fx.User("tenant")
	e.fx.Tenant(s.tenant, rented, s.landlord, models.ResidentApproved, models.Date(2026, time.January, 1))
	e.fx.Wallet(s.tenant, "100")
	return s
}

func TestGenerateMonthlyInvoices(t *testing.T) {
	e := newEnv(t)
	s := seedBuilding(e)
	e.fx.UtilityPackage(s.head, "1000", 5, s.b)
	today := models.Date(2025, time.March, 14)

	res, err := e.generator.GenerateMonthlyInvoices(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, billing.RunResult{Packages: 1, Created: 3, Skipped: 1, Paid: 1, Unpaid: 2}, res)

	invs := e.invoices(t)
	require.Len(t, invs, 3)
	for _, inv := range invs {
		assert.True(t, decimal.NewFromInt(250).Equal(inv.Amount), "split across all four units")
		assert.Equal(t, models.Date(2025, time.March, 5), inv.DueDate.UTC())
		assert.Equal(t, s.b.ID, inv.BuildingID)
	}

	assert.True(t, decimal.NewFromInt(250).Equal(e.balance(t, s.funded)))
	assert.True(t, decimal.NewFromInt(100).Equal(e.balance(t, s.tenant)))
	assert.True(t, decimal.NewFromInt(10000).Equal(e.balance(t, s.landlord)), "tenant is billed, not the owner")
	assert.Len(t, e.rec.For(s.funded.ID), 1)
	assert.Len(t, e.rec.For(s.walletless.ID), 1)
	assert.Len(t, e.rec.For(s.tenant.ID), 1)
	assert.Empty(t, e.rec.For(s.landlord.ID))

	t.Run("re-running is idempotent", func(t *testing.T) {
		e.rec.Reset()
		again, err := e.generator.GenerateMonthlyInvoices(context.Background(), today.AddDate(0, 0, 3))
		require.NoError(t, err)
		assert.Equal(t, billing.RunResult{Packages: 1, Existing: 3, Skipped: 1}, again)
		assert.Len(t, e.invoices(t), 3)
		assert.Empty(t, e.rec.Sent(), "no side effects on existing invoices")
		assert.True(t, decimal.NewFromInt(250).Equal(e.balance(t, s.funded)))
	})

	t.Run("next month bills again", func(t *testing.T) {
		next, err := e.generator.GenerateMonthlyInvoices(context.Background(), models.Date(2025, time.April, 1))
		require.NoError(t, err)
		assert.Equal(t, 3, next.Created)
		assert.Equal(t, 1, next.Paid)
		assert.True(t, e.balance(t, s.funded).IsZero())
	})
}

func TestGenerateMonthlyInvoices_ClampsDueDay(t *testing.T) {
	e := newEnv(t)
	s := seedBuilding(e)
	e.fx.UtilityPackage(s.head, "400", 31, s.b)

	_, err := e.generator.GenerateMonthlyInvoices(context.Background(), models.Date(2025, time.February, 2))
	require.NoError(t, err)

	for _, inv := range e.invoices(t) {
		assert.Equal(t, models.Date(2025, time.February, 28), inv.DueDate.UTC())
	}
}

func TestGenerateMonthlyInvoices_SkipsPrepaid(t *testing.T) {
	e := newEnv(t)
	s := seedBuilding(e)
	pkg := &models.Package{
		PackageType: models.PackagePrepaid,
		Name:        "Water meter",
		IsRecurring: true,
		CreatedByID: s.head.ID,
		StartDate:   models.Date(2025, time.January, 1),
		Prepaid:     &models.PrepaidDetail{MeterType: "water", AverageMonthlyCharge: decimal.NewFromInt(80)},
	}
	require.NoError(t, e.store.CreatePackage(context.Background(), pkg, []uint{s.b.ID}))

	res, err := e.generator.GenerateMonthlyInvoices(context.Background(), models.Date(2025, time.March, 1))

	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 4, res.Skipped)
	assert.Empty(t, e.invoices(t))
}

// flakyResolver fails for one unit and delegates otherwise.
type flakyResolver struct {
	billing.ResidentResolver
	failUnit uint
}

func (r flakyResolver) ResolveActiveResident(ctx context.Context, unitID uint) (*models.ResidentProfile, error) {
	if unitID == r.failUnit {
		return nil, errors.New("connection reset")
	}
	return r.ResidentResolver.ResolveActiveResident(ctx, unitID)
}

func TestGenerateMonthlyInvoices_IsolatesUnitFailures(t *testing.T) {
	e := newEnv(t)
	s := seedBuilding(e)
	e.fx.UtilityPackage(s.head, "1000", 5, s.b)
	units, err := e.store.ListUnits(context.Background(), s.b.ID)
	require.NoError(t, err)
	require.Len(t, units, 4)

	gen := billing.NewGenerator(e.store, flakyResolver{e.resolver, units[0].ID}, e.engine, discard())
	res, err := gen.GenerateMonthlyInvoices(context.Background(), models.Date(2025, time.March, 14))

	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, e.invoices(t), 2)
}

func TestGenerateForPackage_OneOffIsNotSettled(t *testing.T) {
	e := newEnv(t)
	s := seedBuilding(e)
	deadline := models.Date(2025, time.June, 30)
	pkg := &models.Package{
		PackageType: models.PackageMisc,
		Name:        "Roof repair",
		CreatedByID: s.head.ID,
		StartDate:   models.Date(2025, time.May, 1),
		Misc:        &models.MiscDetail{TotalAmount: decimal.NewFromInt(300), Deadline: deadline},
	}
	require.NoError(t, e.store.CreatePackage(context.Background(), pkg, []uint{s.b.ID}))

	res, err := e.generator.GenerateForPackage(context.Background(), pkg.ID, pkg.StartDate)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)
	assert.Zero(t, res.Paid)
	assert.Zero(t, res.Unpaid)
	for _, inv := range e.invoices(t) {
		assert.True(t, decimal.NewFromInt(300).Equal(inv.Amount), "misc totals are not divided")
		assert.Equal(t, deadline, inv.DueDate.UTC())
		assert.Equal(t, models.InvoicePending, inv.Status)
	}
	assert.True(t, decimal.NewFromInt(500).Equal(e.balance(t, s.funded)))
	assert.Empty(t, e.rec.Sent())
}

func TestGenerateForPackage_UnknownPackage(t *testing.T) {
	e := newEnv(t)
	_, err := e.generator.GenerateForPackage(context.Background(), 99, models.Date(2025, time.May, 1))
	assert.Error(t, err)
}

func TestMarkOverdue(t *testing.T) {
	testCases := []struct {
		name   string
		policy billing.OverduePolicy
		want   int64
	}{
		{"sweep", billing.OverdueSweep, 1},
		{"none", billing.OverdueNone, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t, billing.WithOverduePolicy(tc.policy))
			s := seedBuilding(e)
			pkg := e.fx.UtilityPackage(s.head, "100", 5, s.b)
			resident, err := e.resolver.ResolveActiveResident(context.Background(), mustUnit(t, e, s.b, 1))
			require.NoError(t, err)
			e.fx.Invoice(pkg, resident, "25", models.Date(2025, time.March, 5))
			e.fx.Invoice(pkg, resident, "25", models.Date(2025, time.April, 5))

			n, err := e.generator.MarkOverdue(context.Background(), models.Date(2025, time.April, 1))

			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func mustUnit(t *testing.T, e *env, b *models.Building, i int) uint {
	t.Helper()
	units, err := e.store.ListUnits(context.Background(), b.ID)
	require.NoError(t, err)
	return units[i].ID
}
