// Package occupancy decides who is financially responsible for a unit and
// drives the resident lifecycle transitions that change it.
package occupancy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkani/billing/pkg/metrics"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/notify"
	"github.com/mkani/billing/pkg/storage"
)

// DefaultRejectedRetention is how long rejected profiles are kept.
const DefaultRejectedRetention = 15 * 24 * time.Hour

// Resolver implements the occupancy rules on a ResidentStore.
type Resolver struct {
	store     storage.ResidentStore
	notifier  notify.Notifier
	logger    *slog.Logger
	metrics   *metrics.Metrics
	retention time.Duration
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRetention overrides DefaultRejectedRetention.
func WithRetention(d time.Duration) Option {
	return func(r *Resolver) { r.retention = d }
}

// WithMetrics records sweep counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) { r.metrics = m }
}

func NewResolver(store storage.ResidentStore, notifier notify.Notifier, logger *slog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		store:     store,
		notifier:  notifier,
		logger:    logger.With("component", "occupancy"),
		retention: DefaultRejectedRetention,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ActiveResident picks the billable resident among a unit's profiles, which
// must be ordered by id. An approved tenant shadows the owner; rejected and
// inactive owners are never billed. It returns nil when nobody is billable.
func ActiveResident(profiles []models.ResidentProfile) *models.ResidentProfile {
	for i := range profiles {
		p := &profiles[i]
		if p.ResidentType == models.ResidentTenant && p.Status.IsApproved() {
			return p
		}
	}
	for i := range profiles {
		p := &profiles[i]
		if p.ResidentType == models.ResidentOwner &&
			p.Status != models.ResidentRejected && p.Status != models.ResidentInactive {
			return p
		}
	}
	return nil
}

// ResolveActiveResident returns the billable resident of a unit, or nil.
func (r *Resolver) ResolveActiveResident(ctx context.Context, unitID uint) (*models.ResidentProfile, error) {
	profiles, err := r.store.ListResidentsByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return ActiveResident(profiles), nil
}

// ExpiryResult summarises a sweep.
type ExpiryResult struct {
	Expired int
	Failed  int
}

// ExpireOverdueRentals deactivates every approved tenant whose rental ended
// before today. Each tenant is expired in its own transaction; the tenant and
// the building's union head are notified after it commits. Re-running is a
// no-op for tenants already swept.
func (r *Resolver) ExpireOverdueRentals(ctx context.Context, today time.Time) (ExpiryResult, error) {
	var res ExpiryResult
	tenants, err := r.store.ListExpiredTenants(ctx, today)
	if err != nil {
		return res, fmt.Errorf("failed to list expired tenants: %w", err)
	}

	for i := range tenants {
		tenant := &tenants[i]
		expired, err := r.store.ExpireTenant(ctx, tenant.ID, today)
		if err != nil {
			res.Failed++
			r.metrics.Error("occupancy")
			r.logger.ErrorContext(ctx, "failed to expire tenant", "resident_id", tenant.ID, "error", err)
			continue
		}
		if !expired {
			continue
		}
		res.Expired++
		r.metrics.RentalExpired()

		apartment, building := unitLabels(tenant)
		r.send(ctx, tenant.UserID, notify.RentalEndedTenant(apartment, building))
		if tenant.Unit != nil && tenant.Unit.Building != nil && tenant.Unit.Building.UnionHeadID != nil {
			r.send(ctx, *tenant.Unit.Building.UnionHeadID, notify.RentalEndedUnionHead(apartment, building))
		}
	}

	r.logger.InfoContext(ctx, "rental expiry finished",
		"date", today.Format(time.DateOnly), "expired", res.Expired, "failed", res.Failed)
	return res, nil
}

// CleanupRejected deletes rejected profiles older than the retention window.
func (r *Resolver) CleanupRejected(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.store.DeleteRejectedBefore(ctx, now.Add(-r.retention))
	if err != nil {
		return 0, err
	}
	r.logger.InfoContext(ctx, "rejected profiles cleaned up", "deleted", n)
	return n, nil
}

// Approve approves a pending profile and occupies its unit. Approving a
// tenant fails with storage.ErrTenantAlreadyActive while another approved
// tenant holds the unit.
func (r *Resolver) Approve(ctx context.Context, profileID uint) (*models.ResidentProfile, error) {
	if _, err := r.store.ApproveResident(ctx, profileID); err != nil {
		return nil, err
	}
	p, err := r.store.GetResidentProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	apartment, building := unitLabels(p)
	r.send(ctx, p.UserID, notify.ResidentApproved(apartment, building))
	return p, nil
}

// Reject rejects a pending profile. It is deleted by CleanupRejected once
// the retention window has passed.
func (r *Resolver) Reject(ctx context.Context, profileID uint, now time.Time) (*models.ResidentProfile, error) {
	if _, err := r.store.RejectResident(ctx, profileID, now); err != nil {
		return nil, err
	}
	p, err := r.store.GetResidentProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	apartment, building := unitLabels(p)
	r.send(ctx, p.UserID, notify.ResidentRejected(apartment, building))
	return p, nil
}

func (r *Resolver) send(ctx context.Context, userID uint, m notify.Message) {
	if err := notify.Send(ctx, r.notifier, userID, m); err != nil {
		r.logger.WarnContext(ctx, "failed to send notification", "user_id", userID, "error", err)
	}
}

func unitLabels(p *models.ResidentProfile) (apartment, building string) {
	if p.Unit == nil {
		return "", ""
	}
	apartment = p.Unit.ApartmentNumber
	if p.Unit.Building != nil {
		building = p.Unit.Building.Name
	}
	return apartment, building
}
