package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerKind tags what kind of party a wallet belongs to.
type OwnerKind string

const (
	OwnerUser       OwnerKind = "user"
	OwnerBuilding   OwnerKind = "building"
	OwnerTechnician OwnerKind = "technician"
	OwnerUnionHead  OwnerKind = "union_head"
	OwnerCompany    OwnerKind = "company"
)

// TransactionStatus defines the possible states of a wallet transaction.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)

// PaymentMethod is how a transaction or invoice was paid.
type PaymentMethod string

const (
	MethodWallet PaymentMethod = "wallet"
	MethodSahl   PaymentMethod = "sahl"
	MethodFawry  PaymentMethod = "fawry"
)

// Direction says whether a transaction took money out of or put money into its wallet.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// Wallet holds the balance of one owner. Balance is a cached rollup of the
// wallet's completed transactions and is only changed by the settlement engine.
type Wallet struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OwnerKind OwnerKind       `gorm:"size:20;not null;uniqueIndex:idx_wallet_owner" json:"owner_kind"`
	OwnerID   uint            `gorm:"not null;uniqueIndex:idx_wallet_owner" json:"owner_id"`
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Transaction is an append-only ledger entry against a wallet.
// Amount is always positive; Direction carries the sign.
type Transaction struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	WalletID         uint              `gorm:"not null;index" json:"wallet_id"`
	PackageInvoiceID *uint             `gorm:"index" json:"package_invoice_id,omitempty"`
	Amount           decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Direction        Direction         `gorm:"size:10;not null" json:"direction"`
	Method           PaymentMethod     `gorm:"size:20;not null" json:"method"`
	Status           TransactionStatus `gorm:"size:20;not null;index" json:"status"`
	Reference        string            `gorm:"size:64;index" json:"reference"`
	Description      string            `gorm:"type:text" json:"description"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// TableName keeps the ledger apart from gateway-level transaction tables.
func (Transaction) TableName() string {
	return "wallet_transactions"
}

// SignedAmount returns the effect of the transaction on its wallet balance.
// Only completed transactions move money.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Status != TransactionCompleted {
		return decimal.Zero
	}
	if t.Direction == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Day truncates t to midnight UTC of its calendar day. All date columns
// (due dates, rental windows) are stored this way so that equality holds.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
