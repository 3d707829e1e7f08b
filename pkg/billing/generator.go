// Package billing turns packages into invoices. The generator fans a package
// out over the units of its buildings; the service is the entry point used
// when a package is created or invoice history is requested.
package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkani/billing/pkg/catalog"
	"github.com/mkani/billing/pkg/metrics"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/settlement"
	"github.com/mkani/billing/pkg/storage"
)

// OverduePolicy controls whether unpaid invoices past their due date are flagged.
type OverduePolicy string

const (
	OverdueNone  OverduePolicy = "none"
	OverdueSweep OverduePolicy = "sweep"
)

// GeneratorStore is what the generator reads and writes.
type GeneratorStore interface {
	storage.PackageStore
	storage.InvoiceStore
	storage.BuildingStore
}

// ResidentResolver picks the billable resident of a unit.
type ResidentResolver interface {
	ResolveActiveResident(ctx context.Context, unitID uint) (*models.ResidentProfile, error)
}

// Settler attempts to pay a freshly created invoice.
type Settler interface {
	Settle(ctx context.Context, inv *models.PackageInvoice, resident *models.ResidentProfile) (settlement.Outcome, error)
}

// RunResult counts what a generation run did. Every unit visited lands in
// exactly one of Created, Existing, Skipped or Failed; Paid and Unpaid split
// the created invoices whose settlement was attempted.
type RunResult struct {
	Packages int `json:"packages"`
	Created  int `json:"created"`
	Existing int `json:"existing"`
	Skipped  int `json:"skipped"`
	Paid     int `json:"paid"`
	Unpaid   int `json:"unpaid"`
	Failed   int `json:"failed"`
}

func (r *RunResult) add(o RunResult) {
	r.Packages += o.Packages
	r.Created += o.Created
	r.Existing += o.Existing
	r.Skipped += o.Skipped
	r.Paid += o.Paid
	r.Unpaid += o.Unpaid
	r.Failed += o.Failed
}

type Generator struct {
	store    GeneratorStore
	resolver ResidentResolver
	settler  Settler
	logger   *slog.Logger
	metrics  *metrics.Metrics
	overdue  OverduePolicy
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithOverduePolicy sets the policy applied by MarkOverdue. The default is OverdueSweep.
func WithOverduePolicy(p OverduePolicy) GeneratorOption {
	return func(g *Generator) { g.overdue = p }
}

// WithGeneratorMetrics records invoice counters.
func WithGeneratorMetrics(m *metrics.Metrics) GeneratorOption {
	return func(g *Generator) { g.metrics = m }
}

func NewGenerator(store GeneratorStore, resolver ResidentResolver, settler Settler, logger *slog.Logger, opts ...GeneratorOption) *Generator {
	g := &Generator{
		store:    store,
		resolver: resolver,
		settler:  settler,
		logger:   logger.With("component", "billing"),
		overdue:  OverdueSweep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateMonthlyInvoices bills every recurring package for the month of
// today. It is safe to run any number of times per month: invoices that
// already exist are left alone and not settled again. Failures are isolated
// per unit and per package; an error is returned only when the package list
// itself cannot be read.
func (g *Generator) GenerateMonthlyInvoices(ctx context.Context, today time.Time) (RunResult, error) {
	pkgs, err := g.store.ListRecurringPackages(ctx)
	if err != nil {
		return RunResult{}, err
	}

	var total RunResult
	for i := range pkgs {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		total.add(g.generate(ctx, &pkgs[i], today))
	}

	g.logger.InfoContext(ctx, "monthly invoice generation finished",
		"date", today.Format(time.DateOnly),
		"packages", total.Packages,
		"created", total.Created,
		"existing", total.Existing,
		"skipped", total.Skipped,
		"paid", total.Paid,
		"unpaid", total.Unpaid,
		"failed", total.Failed,
	)
	return total, nil
}

// GenerateForPackage bills a single package for the month of anchor. It is
// used right after a package is created so it does not wait for the next
// monthly run.
func (g *Generator) GenerateForPackage(ctx context.Context, packageID uint, anchor time.Time) (RunResult, error) {
	pkg, err := g.store.GetPackage(ctx, packageID)
	if err != nil {
		return RunResult{}, fmt.Errorf("failed to load package %d: %w", packageID, err)
	}
	res := g.generate(ctx, pkg, anchor)
	g.logger.InfoContext(ctx, "package invoice generation finished",
		"package_id", pkg.ID, "created", res.Created, "existing", res.Existing, "failed", res.Failed)
	return res, nil
}

// MarkOverdue flags pending invoices due before today. It does nothing under OverdueNone.
func (g *Generator) MarkOverdue(ctx context.Context, today time.Time) (int64, error) {
	if g.overdue != OverdueSweep {
		return 0, nil
	}
	n, err := g.store.MarkOverdue(ctx, today)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		g.logger.InfoContext(ctx, "invoices marked overdue", "count", n, "date", today.Format(time.DateOnly))
	}
	return n, nil
}

func (g *Generator) generate(ctx context.Context, pkg *models.Package, anchor time.Time) RunResult {
	res := RunResult{Packages: 1}
	buildingIDs, err := g.store.ListPackageBuildingIDs(ctx, pkg.ID)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to list package buildings", "package_id", pkg.ID, "error", err)
		g.metrics.Error("billing")
		res.Failed++
		return res
	}

	for _, buildingID := range buildingIDs {
		units, err := g.store.ListUnits(ctx, buildingID)
		if err != nil {
			g.logger.ErrorContext(ctx, "failed to list units",
				"package_id", pkg.ID, "building_id", buildingID, "error", err)
			g.metrics.Error("billing")
			res.Failed++
			continue
		}
		for _, unit := range units {
			g.billUnit(ctx, pkg, buildingID, unit.ID, anchor, len(units), &res)
		}
	}
	return res
}

func (g *Generator) billUnit(ctx context.Context, pkg *models.Package, buildingID, unitID uint, anchor time.Time, units int, res *RunResult) {
	log := g.logger.With("package_id", pkg.ID, "building_id", buildingID, "unit_id", unitID)

	resident, err := g.resolver.ResolveActiveResident(ctx, unitID)
	if err != nil {
		log.ErrorContext(ctx, "failed to resolve active resident", "error", err)
		g.fail(res)
		return
	}
	if resident == nil {
		g.skip(res)
		return
	}

	quote, err := catalog.AmountAndDue(pkg, anchor, units)
	if err != nil {
		log.ErrorContext(ctx, "failed to price package", "resident_id", resident.ID, "error", err)
		g.fail(res)
		return
	}
	if !quote.Billable {
		g.skip(res)
		return
	}

	inv := &models.PackageInvoice{
		PackageID:  pkg.ID,
		Package:    pkg,
		BuildingID: buildingID,
		ResidentID: &resident.ID,
		Amount:     quote.Amount,
		DueDate:    quote.DueDate,
		Status:     models.InvoicePending,
	}
	created, err := g.store.CreateInvoiceIfAbsent(ctx, inv)
	if err != nil {
		log.ErrorContext(ctx, "failed to create invoice", "resident_id", resident.ID, "error", err)
		g.fail(res)
		return
	}
	if !created {
		res.Existing++
		g.metrics.Invoice("existing")
		return
	}
	res.Created++
	g.metrics.Invoice("created")

	// One-off packages are paid by hand.
	if !pkg.IsRecurring {
		return
	}
	outcome, err := g.settler.Settle(ctx, inv, resident)
	if err != nil {
		log.ErrorContext(ctx, "failed to settle invoice", "invoice_id", inv.ID, "resident_id", resident.ID, "error", err)
		g.metrics.Error("billing")
		res.Unpaid++
		return
	}
	if outcome == settlement.Paid {
		res.Paid++
	} else {
		res.Unpaid++
	}
}

func (g *Generator) skip(res *RunResult) {
	res.Skipped++
	g.metrics.Invoice("skipped")
}

func (g *Generator) fail(res *RunResult) {
	res.Failed++
	g.metrics.Invoice("failed")
	g.metrics.Error("billing")
}
