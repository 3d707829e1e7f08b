package storage

import (
	"context"

	"github.com/mkani/billing/pkg/models"
)

// PackageStore defines the interface for the package catalog.
type PackageStore interface {
	// CreatePackage stores the package, its detail row and its building links in one transaction.
	CreatePackage(ctx context.Context, pkg *models.Package, buildingIDs []uint) error

	// CreatePersonalPackage stores a package together with its single invoice.
	CreatePersonalPackage(ctx context.Context, pkg *models.Package, inv *models.PackageInvoice) error

	// GetPackage retrieves a package with its detail row.
	GetPackage(ctx context.Context, id uint) (*models.Package, error)

	// ListRecurringPackages returns every recurring package with its detail row.
	ListRecurringPackages(ctx context.Context) ([]models.Package, error)

	// ListPackageBuildingIDs returns the buildings a package is linked to.
	ListPackageBuildingIDs(ctx context.Context, packageID uint) ([]uint, error)
}
