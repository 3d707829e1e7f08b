// Package catalog supplies the amount and due-date rules of each package type.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/models"
	"github.com/shopspring/decimal"
)

// MaxDueDay keeps generated due dates valid in every month.
const MaxDueDay = 28

// ErrMissingDetail is returned when a package lacks the detail row of its type.
var ErrMissingDetail = errors.New("package detail missing")

// Quote is the charge a package produces for one billable unit in a period.
type Quote struct {
	Amount   decimal.Decimal
	DueDate  time.Time
	Billable bool
}

// AmountAndDue computes the per-unit charge of pkg for the month of anchor.
// Utilities and fixed packages split their monthly amount evenly across
// denominator units; a zero denominator yields a zero amount. Misc packages
// charge the full total on their deadline. Prepaid packages are not billable.
func AmountAndDue(pkg *models.Package, anchor time.Time, denominator int) (Quote, error) {
	switch pkg.PackageType {
	case models.PackageUtilities:
		if pkg.Utility == nil {
			return Quote{}, fmt.Errorf("package %d: %w", pkg.ID, ErrMissingDetail)
		}
		return Quote{
			Amount:   split(pkg.Utility.MonthlyAmount, denominator),
			DueDate:  dueInMonth(anchor, pkg.Utility.DueDay),
			Billable: true,
		}, nil
	case models.PackageFixed:
		if pkg.Fixed == nil {
			return Quote{}, fmt.Errorf("package %d: %w", pkg.ID, ErrMissingDetail)
		}
		return Quote{
			Amount:   split(pkg.Fixed.MonthlyAmount, denominator),
			DueDate:  dueInMonth(anchor, pkg.Fixed.DeductionDay),
			Billable: true,
		}, nil
	case models.PackageMisc:
		if pkg.Misc == nil {
			return Quote{}, fmt.Errorf("package %d: %w", pkg.ID, ErrMissingDetail)
		}
		return Quote{
			Amount:   pkg.Misc.TotalAmount,
			DueDate:  models.Day(pkg.Misc.Deadline),
			Billable: true,
		}, nil
	case models.PackagePrepaid:
		return Quote{}, nil
	default:
		return Quote{}, fmt.Errorf("unknown package type %q", pkg.PackageType)
	}
}

func split(monthly decimal.Decimal, denominator int) decimal.Decimal {
	if denominator <= 0 {
		return decimal.Zero
	}
	return monthly.Div(decimal.NewFromInt(int64(denominator))).Round(2)
}

// dueInMonth places day in anchor's month, clamped to [1, MaxDueDay].
func dueInMonth(anchor time.Time, day int) time.Time {
	day = max(1, min(day, MaxDueDay))
	return models.Date(anchor.Year(), anchor.Month(), day)
}

// PersonalAmount returns what a resident's own package charges: the monthly
// amount of a utility or fixed package, the average charge of a prepaid meter,
// or the total of a misc package due on its deadline. The due date otherwise
// defaults to the package start date.
func PersonalAmount(pkg *models.Package) (decimal.Decimal, time.Time) {
	due := models.Day(pkg.StartDate)
	switch {
	case pkg.Utility != nil:
		return pkg.Utility.MonthlyAmount, due
	case pkg.Prepaid != nil:
		return pkg.Prepaid.AverageMonthlyCharge, due
	case pkg.Fixed != nil:
		return pkg.Fixed.MonthlyAmount, due
	case pkg.Misc != nil:
		return pkg.Misc.TotalAmount, models.Day(pkg.Misc.Deadline)
	}
	return decimal.Zero, due
}

// Validate checks that pkg carries exactly the detail row of its type with
// sane values.
func Validate(pkg *models.Package) error {
	if pkg.Name == "" {
		return apperr.Validation("name", "is required", nil)
	}
	if pkg.StartDate.IsZero() {
		return apperr.Validation("start_date", "is required", nil)
	}

	details := 0
	for _, present := range []bool{pkg.Utility != nil, pkg.Prepaid != nil, pkg.Fixed != nil, pkg.Misc != nil} {
		if present {
			details++
		}
	}
	if details > 1 {
		return apperr.Validation("package_type", "exactly one detail block is allowed", nil)
	}

	switch pkg.PackageType {
	case models.PackageUtilities:
		if pkg.Utility == nil {
			return apperr.Validation("utility", "is required for utilities packages", ErrMissingDetail)
		}
		if err := nonNegative("utility.monthly_amount", pkg.Utility.MonthlyAmount); err != nil {
			return err
		}
		return dayOfMonth("utility.due_day", pkg.Utility.DueDay)
	case models.PackagePrepaid:
		if pkg.Prepaid == nil {
			return apperr.Validation("prepaid", "is required for prepaid packages", ErrMissingDetail)
		}
		return nonNegative("prepaid.average_monthly_charge", pkg.Prepaid.AverageMonthlyCharge)
	case models.PackageFixed:
		if pkg.Fixed == nil {
			return apperr.Validation("fixed", "is required for fixed packages", ErrMissingDetail)
		}
		if err := nonNegative("fixed.monthly_amount", pkg.Fixed.MonthlyAmount); err != nil {
			return err
		}
		return dayOfMonth("fixed.deduction_day", pkg.Fixed.DeductionDay)
	case models.PackageMisc:
		if pkg.Misc == nil {
			return apperr.Validation("misc", "is required for misc packages", ErrMissingDetail)
		}
		if pkg.Misc.Deadline.IsZero() {
			return apperr.Validation("misc.deadline", "is required", nil)
		}
		return nonNegative("misc.total_amount", pkg.Misc.TotalAmount)
	default:
		return apperr.Validation("package_type", fmt.Sprintf("unknown type %q", pkg.PackageType), nil)
	}
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return apperr.Validation(field, "must not be negative", nil)
	}
	return nil
}

func dayOfMonth(field string, day int) error {
	if day < 1 || day > 31 {
		return apperr.Validation(field, "must be between 1 and 31", nil)
	}
	return nil
}

// TypeInfo describes a package type for clients.
type TypeInfo struct {
	Value models.PackageType `json:"value"`
	Label string             `json:"label"`
}

// Types lists the package types in display order.
func Types() []TypeInfo {
	return []TypeInfo{
		{Value: models.PackageUtilities, Label: "مرافق"},
		{Value: models.PackagePrepaid, Label: "عدادات مسبقة الدفع"},
		{Value: models.PackageFixed, Label: "مصروفات ثابتة"},
		{Value: models.PackageMisc, Label: "مصروفات متنوعة"},
	}
}
