package mapping

import (
	"time"

	"github.com/mkani/billing/pkg/api"
	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/billing"
	"github.com/mkani/billing/pkg/catalog"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/settlement"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// ToApiWallet converts a domain Wallet model to an API Wallet model.
func ToApiWallet(wallet *models.Wallet) *api.Wallet {
	return &api.Wallet{
		Id:        int(wallet.ID),
		OwnerKind: string(wallet.OwnerKind),
		OwnerId:   int(wallet.OwnerID),
		Balance:   wallet.Balance.StringFixed(2),
		CreatedAt: timePtr(wallet.CreatedAt),
		UpdatedAt: timePtr(wallet.UpdatedAt),
	}
}

// ToApiTransaction converts a ledger entry to its API form.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	out := &api.Transaction{
		Id:        int(tx.ID),
		WalletId:  int(tx.WalletID),
		Amount:    tx.Amount.StringFixed(2),
		Direction: api.TransactionDirection(tx.Direction),
		Method:    string(tx.Method),
		Status:    string(tx.Status),
		Reference: tx.Reference,
		CreatedAt: timePtr(tx.CreatedAt),
	}
	if tx.Description != "" {
		out.Description = &tx.Description
	}
	if tx.PackageInvoiceID != nil {
		id := int(*tx.PackageInvoiceID)
		out.InvoiceId = &id
	}
	return out
}

func ToApiInvoice(inv *models.PackageInvoice) *api.Invoice {
	out := &api.Invoice{
		Id:         int(inv.ID),
		PackageId:  int(inv.PackageID),
		BuildingId: int(inv.BuildingID),
		Amount:     inv.Amount.StringFixed(2),
		DueDate:    openapi_types.Date{Time: inv.DueDate},
		Status:     api.InvoiceStatus(inv.Status),
		ResidentId: uintPtr(inv.ResidentID),
		CreatedAt:  timePtr(inv.CreatedAt),
	}
	if inv.PaymentMethod != nil {
		m := string(*inv.PaymentMethod)
		out.PaymentMethod = &m
	}
	out.TransactionId = uintPtr(inv.TransactionID)
	return out
}

func ToApiInvoices(invs []models.PackageInvoice) []*api.Invoice {
	out := make([]*api.Invoice, len(invs))
	for i := range invs {
		out[i] = ToApiInvoice(&invs[i])
	}
	return out
}

func ToApiPackage(pkg *models.Package) *api.Package {
	out := &api.Package{
		Id:          int(pkg.ID),
		PackageType: string(pkg.PackageType),
		Name:        pkg.Name,
		IsRecurring: pkg.IsRecurring,
		StartDate:   openapi_types.Date{Time: pkg.StartDate},
		CreatedById: int(pkg.CreatedByID),
	}
	if pkg.Description != "" {
		out.Description = &pkg.Description
	}
	return out
}

func ToApiPackageTypes(types []catalog.TypeInfo) []api.PackageType {
	out := make([]api.PackageType, len(types))
	for i, t := range types {
		out[i] = api.PackageType{Value: string(t.Value), Label: t.Label}
	}
	return out
}

func ToApiRentReceipt(r *settlement.RentReceipt) *api.RentReceipt {
	return &api.RentReceipt{
		Reference:           r.Reference,
		Amount:              r.Amount.StringFixed(2),
		Balance:             r.PayerBalance.StringFixed(2),
		DebitTransactionId:  int(r.DebitTransactionID),
		CreditTransactionId: int(r.CreditTransactionID),
	}
}

func ToApiGenerationResult(date openapi_types.Date, r billing.RunResult) *api.GenerationResult {
	return &api.GenerationResult{
		Date:     date,
		Packages: r.Packages,
		Created:  r.Created,
		Existing: r.Existing,
		Skipped:  r.Skipped,
		Paid:     r.Paid,
		Unpaid:   r.Unpaid,
		Failed:   r.Failed,
	}
}

func ToApiNotification(n *models.Notification) api.Notification {
	return api.Notification{
		Id:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToDomainPackage converts a create request into a package with its detail
// row. Amount strings that are not decimals are reported as validation errors.
func ToDomainPackage(in *api.NewPackage) (billing.CreatePackageInput, error) {
	pkg := models.Package{
		PackageType: models.PackageType(in.PackageType),
		Name:        in.Name,
		Description: deref(in.Description),
		IsRecurring: in.IsRecurring != nil && *in.IsRecurring,
	}
	if in.StartDate != nil {
		pkg.StartDate = in.StartDate.Time
	}

	if u := in.Utility; u != nil {
		amount, err := ParseAmount("utility.monthly_amount", u.MonthlyAmount)
		if err != nil {
			return billing.CreatePackageInput{}, err
		}
		pkg.Utility = &models.UtilityDetail{
			ServiceType:   u.ServiceType,
			CompanyName:   u.CompanyName,
			MeterNumber:   u.MeterNumber,
			CustomerCode:  deref(u.CustomerCode),
			MonthlyAmount: amount,
			DueDay:        u.DueDay,
		}
	}
	if p := in.Prepaid; p != nil {
		amount, err := ParseAmount("prepaid.average_monthly_charge", p.AverageMonthlyCharge)
		if err != nil {
			return billing.CreatePackageInput{}, err
		}
		pkg.Prepaid = &models.PrepaidDetail{
			MeterType:            p.MeterType,
			Manufacturer:         deref(p.Manufacturer),
			MeterNumber:          p.MeterNumber,
			AverageMonthlyCharge: amount,
		}
	}
	if f := in.Fixed; f != nil {
		amount, err := ParseAmount("fixed.monthly_amount", f.MonthlyAmount)
		if err != nil {
			return billing.CreatePackageInput{}, err
		}
		pkg.Fixed = &models.FixedDetail{
			MonthlyAmount:    amount,
			DeductionDay:     f.DeductionDay,
			PaymentMethod:    string(f.PaymentMethod),
			BeneficiaryName:  deref(f.BeneficiaryName),
			BeneficiaryPhone: deref(f.BeneficiaryPhone),
			NationalID:       deref(f.NationalId),
		}
	}
	if m := in.Misc; m != nil {
		amount, err := ParseAmount("misc.total_amount", m.TotalAmount)
		if err != nil {
			return billing.CreatePackageInput{}, err
		}
		pkg.Misc = &models.MiscDetail{TotalAmount: amount, Deadline: m.Deadline.Time}
		if m.PaymentDate != nil {
			pkg.Misc.PaymentDate = m.PaymentDate.Time
		}
	}

	var buildingIDs []uint
	if in.BuildingIds != nil {
		for _, id := range *in.BuildingIds {
			if id <= 0 {
				return billing.CreatePackageInput{}, apperr.Validation("building_ids", "must be positive ids", nil)
			}
			buildingIDs = append(buildingIDs, uint(id))
		}
	}
	return billing.CreatePackageInput{Package: pkg, BuildingIDs: buildingIDs}, nil
}

// ParseAmount parses a decimal money string.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Validation(field, "must be a decimal amount", err)
	}
	return d, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func uintPtr(v *uint) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
