package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackageType selects which detail row a package carries.
type PackageType string

const (
	PackageUtilities PackageType = "utilities"
	PackagePrepaid   PackageType = "prepaid"
	PackageFixed     PackageType = "fixed"
	PackageMisc      PackageType = "misc"
)

// Package is a billing plan attached to zero or more buildings.
type Package struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	PackageType PackageType `gorm:"size:20;not null;index" json:"package_type"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	IsRecurring bool        `gorm:"index" json:"is_recurring"`
	CreatedByID uint        `gorm:"not null;index" json:"created_by_id"`
	StartDate   time.Time   `gorm:"type:date;not null" json:"start_date"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Utility *UtilityDetail `gorm:"foreignKey:PackageID" json:"utility,omitempty"`
	Prepaid *PrepaidDetail `gorm:"foreignKey:PackageID" json:"prepaid,omitempty"`
	Fixed   *FixedDetail   `gorm:"foreignKey:PackageID" json:"fixed,omitempty"`
	Misc    *MiscDetail    `gorm:"foreignKey:PackageID" json:"misc,omitempty"`
}

// UtilityDetail describes a shared utility bill split across units.
type UtilityDetail struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	PackageID     uint            `gorm:"not null;uniqueIndex" json:"-"`
	ServiceType   string          `gorm:"size:20" json:"service_type"` // electricity, water, gas, internet
	CompanyName   string          `gorm:"size:255" json:"company_name"`
	MeterNumber   string          `gorm:"size:100" json:"meter_number"`
	CustomerCode  string          `gorm:"size:100" json:"customer_code,omitempty"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthly_amount"`
	DueDay        int             `gorm:"not null" json:"due_day"`
}

func (UtilityDetail) TableName() string { return "package_utilities" }

// PrepaidDetail describes a prepaid meter. It is informational only and is
// never billed by the recurring generator.
type PrepaidDetail struct {
	ID                   uint            `gorm:"primaryKey" json:"-"`
	PackageID            uint            `gorm:"not null;uniqueIndex" json:"-"`
	MeterType            string          `gorm:"size:20" json:"meter_type"` // electricity, water
	Manufacturer         string          `gorm:"size:255" json:"manufacturer"`
	MeterNumber          string          `gorm:"size:100" json:"meter_number"`
	AverageMonthlyCharge decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"average_monthly_charge"`
}

func (PrepaidDetail) TableName() string { return "package_prepaids" }

// FixedDetail is a fixed monthly fee, e.g. a building guard's salary.
type FixedDetail struct {
	ID               uint            `gorm:"primaryKey" json:"-"`
	PackageID        uint            `gorm:"not null;uniqueIndex" json:"-"`
	MonthlyAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthly_amount"`
	DeductionDay     int             `gorm:"not null" json:"deduction_day"`
	PaymentMethod    string          `gorm:"size:20" json:"payment_method"` // union_head, direct_person
	BeneficiaryID    *uint           `json:"beneficiary_id,omitempty"`
	BeneficiaryName  string          `gorm:"size:255" json:"beneficiary_name,omitempty"`
	BeneficiaryPhone string          `gorm:"size:20" json:"beneficiary_phone,omitempty"`
	NationalID       string          `gorm:"size:20" json:"national_id,omitempty"`
}

func (FixedDetail) TableName() string { return "package_fixeds" }

// MiscDetail is a one-off collection with a deadline.
type MiscDetail struct {
	ID          uint            `gorm:"primaryKey" json:"-"`
	PackageID   uint            `gorm:"not null;uniqueIndex" json:"-"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentDate time.Time       `gorm:"type:date" json:"payment_date"`
	Deadline    time.Time       `gorm:"type:date;not null" json:"deadline"`
}

func (MiscDetail) TableName() string { return "package_miscs" }

// PackageBuilding links a package to a building.
type PackageBuilding struct {
	ID         uint `gorm:"primaryKey"`
	PackageID  uint `gorm:"not null;uniqueIndex:idx_package_building"`
	BuildingID uint `gorm:"not null;uniqueIndex:idx_package_building;index"`
}

// InvoiceStatus is the lifecycle state of a package invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// PackageInvoice is one charge generated from a package for a resident and
// billing period. idx_invoice_period makes generation idempotent.
type PackageInvoice struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	PackageID     uint             `gorm:"not null;uniqueIndex:idx_invoice_period" json:"package_id"`
	Package       *Package         `gorm:"foreignKey:PackageID" json:"-"`
	BuildingID    uint             `gorm:"not null;index" json:"building_id"`
	ResidentID    *uint            `gorm:"uniqueIndex:idx_invoice_period" json:"resident_id,omitempty"`
	Resident      *ResidentProfile `gorm:"foreignKey:ResidentID" json:"-"`
	Amount        decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"amount"`
	DueDate       time.Time        `gorm:"type:date;not null;uniqueIndex:idx_invoice_period" json:"due_date"`
	Status        InvoiceStatus    `gorm:"size:20;not null;index" json:"status"`
	PaymentMethod *PaymentMethod   `gorm:"size:20" json:"payment_method,omitempty"`
	TransactionID *uint            `json:"transaction_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Payable reports whether the invoice can still be settled.
func (i *PackageInvoice) Payable() bool {
	return i.Status == InvoicePending || i.Status == InvoiceOverdue
}
