package storage

import (
	"context"
	"time"

	"github.com/mkani/billing/pkg/models"
)

// InvoiceStore defines the interface for package invoices.
type InvoiceStore interface {
	// CreateInvoiceIfAbsent inserts inv unless an invoice for the same package,
	// resident and due date exists. The check is enforced by a unique index, so
	// concurrent callers never both report created.
	CreateInvoiceIfAbsent(ctx context.Context, inv *models.PackageInvoice) (bool, error)

	// GetInvoice retrieves an invoice by id.
	GetInvoice(ctx context.Context, id uint) (*models.PackageInvoice, error)

	// ListInvoicesByResidents returns invoices for the given resident profiles, newest first.
	ListInvoicesByResidents(ctx context.Context, residentIDs []uint) ([]models.PackageInvoice, error)

	// ListInvoicesByBuildings returns invoices for the given buildings, newest first.
	ListInvoicesByBuildings(ctx context.Context, buildingIDs []uint) ([]models.PackageInvoice, error)

	// ListAllInvoices returns every invoice, newest first.
	ListAllInvoices(ctx context.Context) ([]models.PackageInvoice, error)

	// MarkOverdue flips pending invoices due before the given day to overdue.
	MarkOverdue(ctx context.Context, before time.Time) (int64, error)
}
