package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/authz"
	"github.com/mkani/billing/pkg/catalog"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/notify"
	"github.com/mkani/billing/pkg/storage"
)

var (
	// ErrNoBuildings is returned when a union head creates a package without buildings.
	ErrNoBuildings = errors.New("at least one building is required")

	// ErrNoPositiveAmount is returned when a personal package charges nothing.
	ErrNoPositiveAmount = errors.New("package has no positive amount")

	// ErrIncompleteProfile is returned when a resident has no profile with a unit.
	ErrIncompleteProfile = errors.New("resident profile is incomplete")
)

// ServiceStore is what the service reads and writes.
type ServiceStore interface {
	storage.PackageStore
	storage.InvoiceStore
	storage.BuildingStore
	ListResidentProfilesByUser(ctx context.Context, userID uint) ([]models.ResidentProfile, error)
	ListResidentsByBuildings(ctx context.Context, buildingIDs []uint) ([]models.ResidentProfile, error)
}

// PackageGenerator runs the invoice fan-out of a newly created package.
type PackageGenerator interface {
	GenerateForPackage(ctx context.Context, packageID uint, anchor time.Time) (RunResult, error)
}

// CreatePackageInput is a package with its detail row and the buildings to link.
type CreatePackageInput struct {
	Package     models.Package
	BuildingIDs []uint
}

// Service handles package creation and invoice history for a principal.
type Service struct {
	store     ServiceStore
	generator PackageGenerator
	notifier  notify.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(store ServiceStore, generator PackageGenerator, notifier notify.Notifier, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		generator: generator,
		notifier:  notifier,
		logger:    logger.With("component", "billing"),
		now:       time.Now,
	}
}

// CreatePackage stores a package on behalf of p. Union heads and admins link
// it to buildings they manage and the first invoices are generated right
// away. A resident creates a personal package billed once against their own
// profile; the package is not stored when it charges nothing.
func (s *Service) CreatePackage(ctx context.Context, p *authz.Principal, in CreatePackageInput) (*models.Package, error) {
	if p == nil {
		return nil, authz.ErrForbidden
	}

	pkg := in.Package
	pkg.ID = 0
	pkg.CreatedByID = p.UserID
	if pkg.StartDate.IsZero() {
		pkg.StartDate = s.now()
	}
	pkg.StartDate = models.Day(pkg.StartDate)
	if err := catalog.Validate(&pkg); err != nil {
		return nil, err
	}

	switch {
	case p.Admin || p.UnionHead:
		if err := s.createShared(ctx, p, &pkg, in.BuildingIDs); err != nil {
			return nil, err
		}
	case p.Resident:
		if err := s.createPersonal(ctx, p, &pkg); err != nil {
			return nil, err
		}
	default:
		return nil, authz.ErrForbidden
	}
	return &pkg, nil
}

func (s *Service) createShared(ctx context.Context, p *authz.Principal, pkg *models.Package, buildingIDs []uint) error {
	ids := slices.Clone(buildingIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if len(ids) == 0 {
		return apperr.Validation("building_ids", "at least one building is required", ErrNoBuildings)
	}

	buildings := make(map[uint]*models.Building, len(ids))
	for _, id := range ids {
		if !p.CanManageBuilding(id) {
			return fmt.Errorf("building %d: %w", id, authz.ErrForbidden)
		}
		b, err := s.store.GetBuilding(ctx, id)
		if err != nil {
			return fmt.Errorf("building %d: %w", id, err)
		}
		buildings[id] = b
	}

	if err := s.store.CreatePackage(ctx, pkg, ids); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "package created", "package_id", pkg.ID, "type", pkg.PackageType, "buildings", len(ids))

	// The package is committed; a failed fan-out is picked up by the next run.
	if _, err := s.generator.GenerateForPackage(ctx, pkg.ID, pkg.StartDate); err != nil {
		s.logger.ErrorContext(ctx, "failed to generate invoices for new package", "package_id", pkg.ID, "error", err)
	}

	s.announce(ctx, pkg, ids, buildings)
	return nil
}

func (s *Service) announce(ctx context.Context, pkg *models.Package, ids []uint, buildings map[uint]*models.Building) {
	residents, err := s.store.ListResidentsByBuildings(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list residents for package announcement", "package_id", pkg.ID, "error", err)
	}
	seen := make(map[uint]bool)
	for _, r := range residents {
		if !r.Status.IsApproved() || seen[r.UserID] {
			continue
		}
		seen[r.UserID] = true
		name := ""
		if b := buildings[r.BuildingID()]; b != nil {
			name = b.Name
		}
		s.send(ctx, r.UserID, notify.PackageCreatedResident(pkg.Name, name))
	}

	heads := make(map[uint]bool)
	for _, id := range ids {
		b := buildings[id]
		if b.UnionHeadID == nil || heads[*b.UnionHeadID] {
			continue
		}
		heads[*b.UnionHeadID] = true
		s.send(ctx, *b.UnionHeadID, notify.PackageCreatedUnionHead(pkg.Name))
	}
}

func (s *Service) createPersonal(ctx context.Context, p *authz.Principal, pkg *models.Package) error {
	profiles, err := s.store.ListResidentProfilesByUser(ctx, p.UserID)
	if err != nil {
		return err
	}
	var profile *models.ResidentProfile
	for i := range profiles {
		if profiles[i].UnitID != nil && profiles[i].Unit != nil {
			profile = &profiles[i]
			break
		}
	}
	if profile == nil {
		return apperr.Validation("resident", "no resident profile with a unit", ErrIncompleteProfile)
	}

	amount, due := catalog.PersonalAmount(pkg)
	if !amount.IsPositive() {
		return apperr.Validation("amount", "package must charge a positive amount", ErrNoPositiveAmount)
	}

	inv := &models.PackageInvoice{
		BuildingID: profile.BuildingID(),
		ResidentID: &profile.ID,
		Amount:     amount.Round(2),
		DueDate:    due,
		Status:     models.InvoicePending,
	}
	if err := s.store.CreatePersonalPackage(ctx, pkg, inv); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "personal package created", "package_id", pkg.ID, "invoice_id", inv.ID, "resident_id", profile.ID)
	s.send(ctx, p.UserID, notify.PersonalPackageCreated(pkg.Name))
	return nil
}

// InvoiceHistory returns the invoices p may see, newest first: every invoice
// for admins, the headed buildings' invoices for union heads and the
// resident's own invoices otherwise.
func (s *Service) InvoiceHistory(ctx context.Context, p *authz.Principal) ([]models.PackageInvoice, error) {
	switch {
	case p == nil:
		return nil, authz.ErrForbidden
	case p.Admin:
		return s.store.ListAllInvoices(ctx)
	case p.UnionHead:
		return s.store.ListInvoicesByBuildings(ctx, p.HeadedBuildingIDs)
	}

	profiles, err := s.store.ListResidentProfilesByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return []models.PackageInvoice{}, nil
	}
	ids := make([]uint, 0, len(profiles))
	for _, pr := range profiles {
		ids = append(ids, pr.ID)
	}
	return s.store.ListInvoicesByResidents(ctx, ids)
}

// AuthorizeGeneration reports whether p may trigger an invoice run. The run
// over every package (packageID 0) is reserved to admins. A union head may
// run a package only when they head every building it is linked to.
func (s *Service) AuthorizeGeneration(ctx context.Context, p *authz.Principal, packageID uint) error {
	switch {
	case p == nil:
		return authz.ErrForbidden
	case p.Admin:
		return nil
	case !p.UnionHead || packageID == 0:
		return authz.ErrForbidden
	}

	ids, err := s.store.ListPackageBuildingIDs(ctx, packageID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("package %d has no buildings: %w", packageID, authz.ErrForbidden)
	}
	for _, id := range ids {
		if !p.CanManageBuilding(id) {
			return fmt.Errorf("building %d: %w", id, authz.ErrForbidden)
		}
	}
	return nil
}

func (s *Service) send(ctx context.Context, userID uint, m notify.Message) {
	if err := notify.Send(ctx, s.notifier, userID, m); err != nil {
		s.logger.WarnContext(ctx, "failed to send notification", "user_id", userID, "error", err)
	}
}
