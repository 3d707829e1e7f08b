package gormstore

import (
	"context"
	"fmt"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
	"gorm.io/gorm"
)

// CreatePackage inserts the package with its detail row (through the has-one
// association) and its building links.
func (s *Store) CreatePackage(ctx context.Context, pkg *models.Package, buildingIDs []uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pkg).Error; err != nil {
			return fmt.Errorf("failed to create package: %w", err)
		}
		if len(buildingIDs) == 0 {
			return nil
		}
		links := make([]models.PackageBuilding, 0, len(buildingIDs))
		for _, id := range buildingIDs {
			links = append(links, models.PackageBuilding{PackageID: pkg.ID, BuildingID: id})
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to link package %d to buildings: %w", pkg.ID, err)
		}
		return nil
	})
}

// CreatePersonalPackage stores a resident's own package and its invoice together.
func (s *Store) CreatePersonalPackage(ctx context.Context, pkg *models.Package, inv *models.PackageInvoice) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pkg).Error; err != nil {
			return fmt.Errorf("failed to create package: %w", err)
		}
		inv.PackageID = pkg.ID
		inv.DueDate = models.Day(inv.DueDate)
		if inv.Status == "" {
			inv.Status = models.InvoicePending
		}
		if err := tx.Create(inv).Error; err != nil {
			return fmt.Errorf("failed to create personal invoice: %w", err)
		}
		return nil
	})
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Utility").Preload("Prepaid").Preload("Fixed").Preload("Misc")
}

func (s *Store) GetPackage(ctx context.Context, id uint) (*models.Package, error) {
	var pkg models.Package
	if err := withDetails(s.db.WithContext(ctx)).First(&pkg, id).Error; err != nil {
		return nil, notFound(err, storage.ErrNotFound)
	}
	return &pkg, nil
}

func (s *Store) ListRecurringPackages(ctx context.Context) ([]models.Package, error) {
	var pkgs []models.Package
	err := withDetails(s.db.WithContext(ctx)).
		Where("is_recurring = ?", true).
		Order("id ASC").
		Find(&pkgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring packages: %w", err)
	}
	return pkgs, nil
}

func (s *Store) ListPackageBuildingIDs(ctx context.Context, packageID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&models.PackageBuilding{}).
		Where("package_id = ?", packageID).
		Order("building_id ASC").
		Pluck("building_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings of package %d: %w", packageID, err)
	}
	return ids, nil
}
