package gormstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
	"github.com/mkani/billing/pkg/storage/gormstore/gormtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePackage(t *testing.T) {
	store := gormtest.NewStore(t)
	fx := gormtest.NewFixtures(t, store)
	ctx := context.Background()

	head := fx.User("head")
	a := fx.Building("A", head)
	b := fx.Building("B", head)

	pkg := &models.Package{
		PackageType: models.PackageFixed,
		Name:        "Guard salary",
		IsRecurring: true,
		CreatedByID: head.ID,
		StartDate:   models.Date(2025, time.February, 1),
		Fixed: &models.FixedDetail{
			MonthlyAmount:   decimal.NewFromInt(1200),
			DeductionDay:    30,
			PaymentMethod:   "union_head",
			BeneficiaryName: "Am Sayed",
		},
	}
	require.NoError(t, store.CreatePackage(ctx, pkg, []uint{b.ID, a.ID}))
	require.NotZero(t, pkg.ID)

	got, err := store.GetPackage(ctx, pkg.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Fixed)
	assert.Nil(t, got.Utility)
	assert.True(t, decimal.NewFromInt(1200).Equal(got.Fixed.MonthlyAmount))
	assert.Equal(t, 30, got.Fixed.DeductionDay)

	ids, err := store.ListPackageBuildingIDs(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID}, ids)

	oneOff := &models.Package{
		PackageType: models.PackageMisc,
		Name:        "Painting",
		CreatedByID: head.ID,
		StartDate:   models.Date(2025, time.February, 1),
		Misc: &models.MiscDetail{
			TotalAmount: decimal.NewFromInt(250),
			Deadline:    models.Date(2025, time.March, 15),
		},
	}
	require.NoError(t, store.CreatePackage(ctx, oneOff, nil))

	recurring, err := store.ListRecurringPackages(ctx)
	require.NoError(t, err)
	require.Len(t, recurring, 1)
	assert.Equal(t, pkg.ID, recurring[0].ID)
	assert.NotNil(t, recurring[0].Fixed)

	_, err = store.GetPackage(ctx, 4242)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreatePersonalPackage(t *testing.T) {
	store := gormtest.NewStore(t)
	fx := gormtest.NewFixtures(t, store)
	ctx := context.Background()

	building := fx.Building("A", nil)
	resident := fx.Owner(fx.User("owner"), fx.Unit(building, "1"), models.ResidentApproved)

	pkg := &models.Package{
		PackageType: models.PackagePrepaid,
		Name:        "My meter",
		CreatedByID: resident.UserID,
		StartDate:   models.Date(2025, time.February, 1),
		Prepaid: &models.PrepaidDetail{
			MeterType:            "electricity",
			AverageMonthlyCharge: decimal.NewFromInt(180),
		},
	}
	inv := &models.PackageInvoice{
		BuildingID: building.ID,
		ResidentID: &resident.ID,
		Amount:     decimal.NewFromInt(180),
		DueDate:    pkg.StartDate,
	}
	require.NoError(t, store.CreatePersonalPackage(ctx, pkg, inv))
	assert.Equal(t, pkg.ID, inv.PackageID)

	invs, err := store.ListInvoicesByResidents(ctx, []uint{resident.ID})
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, models.InvoicePending, invs[0].Status)
}
