package gormstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
	"gorm.io/gorm"
)

// ledgerTx implements storage.LedgerTx on an open gorm transaction.
type ledgerTx struct {
	db *gorm.DB
}

var _ storage.LedgerTx = (*ledgerTx)(nil)

func (t *ledgerTx) LockWallet(ctx context.Context, kind models.OwnerKind, ownerID uint) (*models.Wallet, error) {
	var w models.Wallet
	err := forUpdate(t.db.WithContext(ctx)).
		Where("owner_kind = ? AND owner_id = ?", kind, ownerID).
		First(&w).Error
	if err != nil {
		return nil, notFound(err, storage.ErrWalletNotFound)
	}
	return &w, nil
}

// LockWalletsByID takes the row locks one at a time in ascending id order.
// Two transfers between the same pair of wallets therefore queue on the same
// first lock instead of deadlocking.
func (t *ledgerTx) LockWalletsByID(ctx context.Context, ids ...uint) (map[uint]*models.Wallet, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	wallets := make(map[uint]*models.Wallet, len(sorted))
	for _, id := range sorted {
		var w models.Wallet
		if err := forUpdate(t.db.WithContext(ctx)).First(&w, id).Error; err != nil {
			return nil, notFound(err, storage.ErrWalletNotFound)
		}
		wallets[id] = &w
	}
	return wallets, nil
}

func (t *ledgerTx) LockInvoice(ctx context.Context, invoiceID uint) (*models.PackageInvoice, error) {
	var inv models.PackageInvoice
	if err := forUpdate(t.db.WithContext(ctx)).First(&inv, invoiceID).Error; err != nil {
		return nil, notFound(err, storage.ErrNotFound)
	}
	return &inv, nil
}

func (t *ledgerTx) RecordTransaction(ctx context.Context, wallet *models.Wallet, entry *models.Transaction) error {
	balance := wallet.Balance.Add(entry.SignedAmount())
	if balance.IsNegative() {
		return storage.ErrInsufficientFunds
	}

	entry.WalletID = wallet.ID
	if entry.Reference == "" {
		entry.Reference = uuid.NewString()
	}
	db := t.db.WithContext(ctx)
	if err := db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	err := db.Model(&models.Wallet{}).
		Where("id = ?", wallet.ID).
		Update("balance", balance).Error
	if err != nil {
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}
	wallet.Balance = balance
	return nil
}

// MarkInvoicePaid only matches payable rows, so a second settlement of the
// same invoice affects nothing and is reported as ErrInvoiceNotPayable.
func (t *ledgerTx) MarkInvoicePaid(ctx context.Context, invoiceID, transactionID uint, method models.PaymentMethod) error {
	res := t.db.WithContext(ctx).
		Model(&models.PackageInvoice{}).
		Where("id = ? AND status IN ?", invoiceID, []models.InvoiceStatus{models.InvoicePending, models.InvoiceOverdue}).
		Updates(map[string]any{
			"status":         models.InvoicePaid,
			"payment_method": method,
			"transaction_id": transactionID,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to mark invoice paid: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrInvoiceNotPayable
	}
	return nil
}
