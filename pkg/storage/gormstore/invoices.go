package gormstore

import (
	"context"
	"fmt"
	"time"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
	"gorm.io/gorm/clause"
)

// CreateInvoiceIfAbsent relies on idx_invoice_period: the losing writer of a
// race inserts nothing and reports created=false.
func (s *Store) CreateInvoiceIfAbsent(ctx context.Context, inv *models.PackageInvoice) (bool, error) {
	inv.DueDate = models.Day(inv.DueDate)
	if inv.Status == "" {
		inv.Status = models.InvoicePending
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(inv)
	if res.Error != nil {
		return false, fmt.Errorf("failed to create invoice: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) GetInvoice(ctx context.Context, id uint) (*models.PackageInvoice, error) {
	var inv models.PackageInvoice
	if err := s.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		return nil, notFound(err, storage.ErrNotFound)
	}
	return &inv, nil
}

func (s *Store) ListInvoicesByResidents(ctx context.Context, residentIDs []uint) ([]models.PackageInvoice, error) {
	if len(residentIDs) == 0 {
		return []models.PackageInvoice{}, nil
	}
	var invs []models.PackageInvoice
	err := s.db.WithContext(ctx).
		Where("resident_id IN ?", residentIDs).
		Order("due_date DESC, id DESC").
		Find(&invs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invs, nil
}

func (s *Store) ListInvoicesByBuildings(ctx context.Context, buildingIDs []uint) ([]models.PackageInvoice, error) {
	if len(buildingIDs) == 0 {
		return []models.PackageInvoice{}, nil
	}
	var invs []models.PackageInvoice
	err := s.db.WithContext(ctx).
		Where("building_id IN ?", buildingIDs).
		Order("due_date DESC, id DESC").
		Find(&invs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invs, nil
}

func (s *Store) ListAllInvoices(ctx context.Context) ([]models.PackageInvoice, error) {
	var invs []models.PackageInvoice
	if err := s.db.WithContext(ctx).Order("due_date DESC, id DESC").Find(&invs).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invs, nil
}

// MarkOverdue flips pending invoices whose due date is before the given day.
func (s *Store) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.PackageInvoice{}).
		Where("status = ? AND due_date < ?", models.InvoicePending, models.Day(before)).
		Update("status", models.InvoiceOverdue)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to mark invoices overdue: %w", res.Error)
	}
	return res.RowsAffected, nil
}
