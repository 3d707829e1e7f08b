package gormstore

import (
	"context"
	"fmt"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// GetWallet retrieves the wallet of an owner.
func (s *Store) GetWallet(ctx context.Context, kind models.OwnerKind, ownerID uint) (*models.Wallet, error) {
	var w models.Wallet
	err := s.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ?", kind, ownerID).
		First(&w).Error
	if err != nil {
		return nil, notFound(err, storage.ErrWalletNotFound)
	}
	return &w, nil
}

// GetOrCreateWallet inserts an empty wallet unless one exists, then reads it back.
// The unique owner index turns a concurrent insert into a no-op.
func (s *Store) GetOrCreateWallet(ctx context.Context, kind models.OwnerKind, ownerID uint) (*models.Wallet, error) {
	w := models.Wallet{OwnerKind: kind, OwnerID: ownerID, Balance: decimal.Zero}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&w).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return s.GetWallet(ctx, kind, ownerID)
}

// ListTransactions returns a wallet's ledger, oldest first.
func (s *Store) ListTransactions(ctx context.Context, walletID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("id ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
