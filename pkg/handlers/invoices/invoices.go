package invoices

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mkani/billing/pkg/api"
	"github.com/mkani/billing/pkg/apperr"
	"github.com/mkani/billing/pkg/authz"
	"github.com/mkani/billing/pkg/billing"
	"github.com/mkani/billing/pkg/handlers/render"
	"github.com/mkani/billing/pkg/mapping"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/scheduler"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrFutureDate is returned when a run is requested past the current billing month.
var ErrFutureDate = errors.New("date is beyond the current billing month")

// InvoiceService returns the invoices a principal may see and decides who may
// trigger a generation run.
type InvoiceService interface {
	InvoiceHistory(ctx context.Context, p *authz.Principal) ([]models.PackageInvoice, error)
	AuthorizeGeneration(ctx context.Context, p *authz.Principal, packageID uint) error
}

// JobRunner runs a job inline.
type JobRunner interface {
	Today() time.Time
	Run(ctx context.Context, job scheduler.Job) (scheduler.Report, error)
}

// InvoicesHandler holds the dependencies for invoice-related handlers.
type InvoicesHandler struct {
	Service   InvoiceService
	Scheduler scheduler.Scheduler
	Runner    JobRunner
}

// NewInvoicesHandler creates a new InvoicesHandler. A nil scheduler makes
// every generation request synchronous.
func NewInvoicesHandler(svc InvoiceService, sched scheduler.Scheduler, runner JobRunner) *InvoicesHandler {
	return &InvoicesHandler{Service: svc, Scheduler: sched, Runner: runner}
}

// ListInvoices returns the caller's invoice history.
func (h *InvoicesHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	p, ok := render.Principal(w, r)
	if !ok {
		return
	}
	invs, err := h.Service.InvoiceHistory(r.Context(), p)
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiInvoices(invs))
}

// GenerateInvoices queues a generation run, or runs it inline with sync=true.
// Only admins run every package; union heads name one of their packages.
func (h *InvoicesHandler) GenerateInvoices(w http.ResponseWriter, r *http.Request, params api.GenerateInvoicesParams) {
	p, ok := render.Principal(w, r)
	if !ok {
		return
	}
	if !p.CanTriggerGeneration() {
		render.Error(w, authz.ErrForbidden)
		return
	}

	job := scheduler.Job{Kind: scheduler.GenerateMonthlyInvoices, RequestedBy: p.UserID}
	if params.PackageId != nil {
		job.Kind = scheduler.GeneratePackageInvoices
		job.PackageID = uint(max(*params.PackageId, 0))
	}
	if params.Date != nil {
		if afterMonth(params.Date.Time, h.Runner.Today()) {
			render.Error(w, apperr.Validation("date", "must not be after the current billing month", ErrFutureDate))
			return
		}
		job.Date = params.Date.Format(time.DateOnly)
	}
	if err := job.Validate(); err != nil {
		render.Error(w, apperr.Validation("", err.Error(), err))
		return
	}
	if err := h.Service.AuthorizeGeneration(r.Context(), p, job.PackageID); err != nil {
		render.Error(w, err)
		return
	}

	if (params.Sync != nil && *params.Sync) || h.Scheduler == nil {
		rep, err := h.Runner.Run(r.Context(), job)
		if err != nil {
			render.Error(w, err)
			return
		}
		var res billing.RunResult
		if rep.Invoices != nil {
			res = *rep.Invoices
		}
		day, _ := time.Parse(time.DateOnly, rep.Date)
		render.JSON(w, http.StatusOK, mapping.ToApiGenerationResult(openapi_types.Date{Time: day}, res))
		return
	}

	job.ID = uuid.NewString()
	if err := h.Scheduler.Enqueue(r.Context(), job); err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusAccepted, api.GenerationAccepted{JobId: job.ID, Kind: string(job.Kind)})
}

func afterMonth(day, today time.Time) bool {
	y, m, _ := day.Date()
	ty, tm, _ := today.Date()
	return y > ty || (y == ty && m > tm)
}
