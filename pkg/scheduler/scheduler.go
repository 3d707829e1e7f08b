// Package scheduler queues background jobs and runs them.
package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mkani/billing/pkg/models"
)

// JobKind names a background job.
type JobKind string

const (
	GenerateMonthlyInvoices JobKind = "generate_monthly_invoices"
	GeneratePackageInvoices JobKind = "generate_package_invoices"
	ExpireRentals           JobKind = "expire_rentals"
	CleanupRejected         JobKind = "cleanup_rejected"
	MarkOverdue             JobKind = "mark_overdue"
)

// ErrUnknownJob is returned for a job kind the runner does not handle.
var ErrUnknownJob = errors.New("unknown job kind")

// Job is the queue message body. Date is a calendar day (YYYY-MM-DD) in the
// billing timezone; it defaults to the day the job runs.
type Job struct {
	ID          string  `json:"id,omitempty"`
	Kind        JobKind `json:"kind"`
	Date        string  `json:"date,omitempty"`
	PackageID   uint    `json:"package_id,omitempty"`
	RequestedBy uint    `json:"requested_by,omitempty"`
}

// Validate checks the fields each kind depends on.
func (j Job) Validate() error {
	switch j.Kind {
	case GenerateMonthlyInvoices, ExpireRentals, CleanupRejected, MarkOverdue:
	case GeneratePackageInvoices:
		if j.PackageID == 0 {
			return fmt.Errorf("%s: package_id is required", j.Kind)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownJob, j.Kind)
	}
	if j.Date != "" {
		if _, err := time.Parse(time.DateOnly, j.Date); err != nil {
			return fmt.Errorf("%s: invalid date %q", j.Kind, j.Date)
		}
	}
	return nil
}

// Day returns the job's date, or today when it has none.
func (j Job) Day(today time.Time) time.Time {
	if j.Date == "" {
		return models.Day(today)
	}
	d, err := time.Parse(time.DateOnly, j.Date)
	if err != nil {
		return models.Day(today)
	}
	return models.Day(d)
}

// ParseJob decodes and validates a queue message body.
func ParseJob(body []byte) (Job, error) {
	var j Job
	if err := json.Unmarshal(body, &j); err != nil {
		return Job{}, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	if err := j.Validate(); err != nil {
		return Job{}, err
	}
	return j, nil
}

// Due lists the jobs of the daily schedule for today. Invoice generation only
// runs on the first day of the month.
func Due(today time.Time) []Job {
	date := today.Format(time.DateOnly)
	var jobs []Job
	if today.Day() == 1 {
		jobs = append(jobs, Job{Kind: GenerateMonthlyInvoices, Date: date})
	}
	return append(jobs,
		Job{Kind: ExpireRentals, Date: date},
		Job{Kind: MarkOverdue, Date: date},
		Job{Kind: CleanupRejected, Date: date},
	)
}

// Scheduler defines the interface for a component that queues jobs for later processing.
type Scheduler interface {
	// Enqueue queues a job for asynchronous processing.
	Enqueue(ctx context.Context, job Job) error
}
