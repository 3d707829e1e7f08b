package storage

import (
	"context"

	"github.com/mkani/billing/pkg/models"
)

// WalletStore defines the read side of wallets. Balances are never written
// through this interface; see LedgerTx.
type WalletStore interface {
	// GetWallet retrieves the wallet of an owner. It returns ErrWalletNotFound when absent.
	GetWallet(ctx context.Context, kind models.OwnerKind, ownerID uint) (*models.Wallet, error)

	// GetOrCreateWallet returns the owner's wallet, creating an empty one if needed.
	// Concurrent callers observe the same row.
	GetOrCreateWallet(ctx context.Context, kind models.OwnerKind, ownerID uint) (*models.Wallet, error)
}

// LedgerReader defines the interface for reading ledger data.
type LedgerReader interface {
	// ListTransactions returns a wallet's transactions, oldest first.
	ListTransactions(ctx context.Context, walletID uint) ([]models.Transaction, error)
}
