package storage

import "github.com/mkani/billing/pkg/authz"

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on the
// more granular interfaces (WalletStore, InvoiceStore, etc.) instead of this one.
type Storage interface {
	WalletStore
	LedgerReader
	Transactor
	InvoiceStore
	ResidentStore
	BuildingStore
	PackageStore
	authz.Loader
}
