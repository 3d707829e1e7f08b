package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkani/billing/pkg/billing"
	"github.com/mkani/billing/pkg/metrics"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/occupancy"
)

// InvoiceJobs is the billing side of the job set.
type InvoiceJobs interface {
	GenerateMonthlyInvoices(ctx context.Context, today time.Time) (billing.RunResult, error)
	GenerateForPackage(ctx context.Context, packageID uint, anchor time.Time) (billing.RunResult, error)
	MarkOverdue(ctx context.Context, today time.Time) (int64, error)
}

// OccupancyJobs is the resident lifecycle side of the job set.
type OccupancyJobs interface {
	ExpireOverdueRentals(ctx context.Context, today time.Time) (occupancy.ExpiryResult, error)
	CleanupRejected(ctx context.Context, now time.Time) (int64, error)
}

// Report is what a job did.
type Report struct {
	JobID    string                  `json:"job_id,omitempty"`
	Kind     JobKind                 `json:"kind"`
	Date     string                  `json:"date"`
	Invoices *billing.RunResult      `json:"invoices,omitempty"`
	Expiry   *occupancy.ExpiryResult `json:"expiry,omitempty"`
	Affected int64                   `json:"affected,omitempty"`
}

// Runner executes jobs in process. It backs the queue consumer, the daily
// cron and the CLI.
type Runner struct {
	invoices  InvoiceJobs
	occupancy OccupancyJobs
	logger    *slog.Logger
	metrics   *metrics.Metrics
	loc       *time.Location
	now       func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLocation sets the timezone used to decide what "today" is.
func WithLocation(loc *time.Location) RunnerOption {
	return func(r *Runner) { r.loc = loc }
}

func WithRunnerMetrics(m *metrics.Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) { r.now = now }
}

func NewRunner(invoices InvoiceJobs, occ OccupancyJobs, logger *slog.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		invoices:  invoices,
		occupancy: occ,
		logger:    logger.With("component", "scheduler"),
		loc:       time.UTC,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Today is the current calendar day in the runner's timezone, as a UTC midnight.
func (r *Runner) Today() time.Time {
	y, m, d := r.now().In(r.loc).Date()
	return models.Date(y, m, d)
}

// Run executes one job synchronously.
func (r *Runner) Run(ctx context.Context, job Job) (Report, error) {
	if err := job.Validate(); err != nil {
		return Report{}, err
	}
	day := job.Day(r.Today())
	rep := Report{JobID: job.ID, Kind: job.Kind, Date: day.Format(time.DateOnly)}

	start := time.Now()
	err := r.run(ctx, job, day, &rep)
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.metrics.Job(string(job.Kind), status, time.Since(start))

	if err != nil {
		r.logger.ErrorContext(ctx, "job failed", "job_id", job.ID, "kind", job.Kind, "date", rep.Date, "error", err)
		return rep, fmt.Errorf("job %s: %w", job.Kind, err)
	}
	r.logger.InfoContext(ctx, "job finished", "job_id", job.ID, "kind", job.Kind, "date", rep.Date, "took", time.Since(start))
	return rep, nil
}

func (r *Runner) run(ctx context.Context, job Job, day time.Time, rep *Report) error {
	switch job.Kind {
	case GenerateMonthlyInvoices:
		res, err := r.invoices.GenerateMonthlyInvoices(ctx, day)
		rep.Invoices = &res
		return err
	case GeneratePackageInvoices:
		res, err := r.invoices.GenerateForPackage(ctx, job.PackageID, day)
		rep.Invoices = &res
		return err
	case MarkOverdue:
		n, err := r.invoices.MarkOverdue(ctx, day)
		rep.Affected = n
		return err
	case ExpireRentals:
		res, err := r.occupancy.ExpireOverdueRentals(ctx, day)
		rep.Expiry = &res
		return err
	case CleanupRejected:
		n, err := r.occupancy.CleanupRejected(ctx, r.now())
		rep.Affected = n
		return err
	}
	return fmt.Errorf("%w %q", ErrUnknownJob, job.Kind)
}
