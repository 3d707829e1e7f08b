// Package gormtest provides a migrated SQLite store and fixture builders for tests.
package gormtest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage/gormstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewStore opens a fresh SQLite database in a temporary directory and migrates it.
func NewStore(t testing.TB) *gormstore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mkani.db")
	store, err := gormstore.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// Fixtures inserts rows directly, bypassing the domain services.
type Fixtures struct {
	t  testing.TB
	db *gorm.DB
	n  int
}

// NewFixtures returns fixture builders bound to store.
func NewFixtures(t testing.TB, store *gormstore.Store) *Fixtures {
	return &Fixtures{t: t, db: store.DB()}
}

func (f *Fixtures) create(v any) {
	f.t.Helper()
	require.NoError(f.t, f.db.Create(v).Error)
}

func (f *Fixtures) User(name string) *models.User {
	f.n++
	u := &models.User{Email: fmt.Sprintf("%s-%d@mkani.test", name, f.n), FullName: name}
	f.create(u)
	return u
}

func (f *Fixtures) Role(userID uint, role models.Role) {
	f.create(&models.UserRole{UserID: userID, Role: role})
}

func (f *Fixtures) Building(name string, unionHead *models.User) *models.Building {
	b := &models.Building{Name: name}
	if unionHead != nil {
		b.UnionHeadID = &unionHead.ID
	}
	f.create(b)
	return b
}

func (f *Fixtures) Unit(b *models.Building, apartment string) *models.Unit {
	u := &models.Unit{BuildingID: b.ID, ApartmentNumber: apartment, Status: models.UnitAvailable}
	f.create(u)
	u.Building = b
	return u
}

func (f *Fixtures) Owner(u *models.User, unit *models.Unit, status models.ResidentStatus) *models.ResidentProfile {
	p := &models.ResidentProfile{
		UserID:       u.ID,
		UnitID:       &unit.ID,
		ResidentType: models.ResidentOwner,
		Status:       status,
		IsPresent:    status.IsApproved(),
	}
	f.create(p)
	p.User, p.Unit = u, unit
	return p
}

// Tenant creates a tenant profile renting unit from landlord until end.
func (f *Fixtures) Tenant(u *models.User, unit *models.Unit, landlord *models.User, status models.ResidentStatus, end time.Time) *models.ResidentProfile {
	start := models.Day(end.AddDate(-1, 0, 0))
	end = models.Day(end)
	p := &models.ResidentProfile{
		UserID:          u.ID,
		UnitID:          &unit.ID,
		ResidentType:    models.ResidentTenant,
		RentalStartDate: &start,
		RentalEndDate:   &end,
		RentalValue:     decimal.NewNullDecimal(decimal.NewFromInt(3000)),
		Status:          status,
		IsPresent:       status.IsApproved(),
	}
	if landlord != nil {
		p.OwnerID = &landlord.ID
	}
	f.create(p)
	if status.IsApproved() {
		require.NoError(f.t, f.db.Model(unit).Update("status", models.UnitOccupied).Error)
	}
	p.User, p.Unit = u, unit
	return p
}

// Wallet creates a wallet for a user and funds it with a completed credit, so
// the balance reconciles with the ledger.
func (f *Fixtures) Wallet(u *models.User, balance string) *models.Wallet {
	f.t.Helper()
	amount := decimal.RequireFromString(balance)
	w := &models.Wallet{OwnerKind: models.OwnerUser, OwnerID: u.ID, Balance: amount}
	f.create(w)
	if amount.IsPositive() {
		f.create(&models.Transaction{
			WalletID:    w.ID,
			Amount:      amount,
			Direction:   models.Credit,
			Method:      models.MethodFawry,
			Status:      models.TransactionCompleted,
			Reference:   fmt.Sprintf("seed-%d", w.ID),
			Description: "opening balance",
		})
	}
	return w
}

// UtilityPackage creates a recurring utilities package linked to buildings.
func (f *Fixtures) UtilityPackage(creator *models.User, monthly string, dueDay int, buildings ...*models.Building) *models.Package {
	pkg := &models.Package{
		PackageType: models.PackageUtilities,
		Name:        "Electricity",
		IsRecurring: true,
		CreatedByID: creator.ID,
		StartDate:   models.Date(2025, time.January, 1),
		Utility: &models.UtilityDetail{
			ServiceType:   "electricity",
			CompanyName:   "North Cairo Electricity",
			MeterNumber:   "M-1",
			MonthlyAmount: decimal.RequireFromString(monthly),
			DueDay:        dueDay,
		},
	}
	f.create(pkg)
	f.Link(pkg, buildings...)
	return pkg
}

// Link attaches a package to buildings.
func (f *Fixtures) Link(pkg *models.Package, buildings ...*models.Building) {
	for _, b := range buildings {
		f.create(&models.PackageBuilding{PackageID: pkg.ID, BuildingID: b.ID})
	}
}

// Invoice creates a pending invoice directly.
func (f *Fixtures) Invoice(pkg *models.Package, resident *models.ResidentProfile, amount string, due time.Time) *models.PackageInvoice {
	inv := &models.PackageInvoice{
		PackageID:  pkg.ID,
		BuildingID: resident.BuildingID(),
		ResidentID: &resident.ID,
		Amount:     decimal.RequireFromString(amount),
		DueDate:    models.Day(due),
		Status:     models.InvoicePending,
	}
	f.create(inv)
	return inv
}

// Reload re-reads v by primary key.
func (f *Fixtures) Reload(v any, id uint) {
	f.t.Helper()
	require.NoError(f.t, f.db.First(v, id).Error)
}
