package storage

import (
	"context"

	"github.com/mkani/billing/pkg/models"
)

// LedgerTx is the privileged set of operations available inside a single
// database transaction. Every balance change goes through RecordTransaction,
// so the wallet rollup and its ledger rows are written together or not at all.
type LedgerTx interface {
	// LockWallet loads an owner's wallet and holds a row lock on it until the
	// transaction ends. It returns ErrWalletNotFound when absent.
	LockWallet(ctx context.Context, kind models.OwnerKind, ownerID uint) (*models.Wallet, error)

	// LockWalletsByID locks the given wallets in ascending id order and returns
	// them keyed by id.
	LockWalletsByID(ctx context.Context, ids ...uint) (map[uint]*models.Wallet, error)

	// LockInvoice loads an invoice and holds a row lock on it.
	LockInvoice(ctx context.Context, invoiceID uint) (*models.PackageInvoice, error)

	// RecordTransaction appends entry to the wallet's ledger and applies its
	// signed amount to the wallet balance. A debit that would make the balance
	// negative fails with ErrInsufficientFunds.
	RecordTransaction(ctx context.Context, wallet *models.Wallet, entry *models.Transaction) error

	// MarkInvoicePaid moves a pending or overdue invoice to paid and links the
	// settling transaction. It returns ErrInvoiceNotPayable if the invoice was
	// already settled.
	MarkInvoicePaid(ctx context.Context, invoiceID, transactionID uint, method models.PaymentMethod) error
}

// Transactor runs fn inside one database transaction. Any error returned by fn
// rolls back every write made through tx.
type Transactor interface {
	Transact(ctx context.Context, fn func(tx LedgerTx) error) error
}
