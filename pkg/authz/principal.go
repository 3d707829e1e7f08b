// Package authz carries the explicit authorisation context of a request.
package authz

import (
	"context"
	"errors"
	"slices"
)

// ErrUnknownUser is returned by a Loader when the user id does not exist.
var ErrUnknownUser = errors.New("unknown user")

// ErrForbidden is returned when a principal lacks the capability for an action.
var ErrForbidden = errors.New("forbidden")

// Principal is the set of capabilities of the calling user, resolved once per request.
type Principal struct {
	UserID     uint
	Resident   bool
	UnionHead  bool
	Technician bool
	Admin      bool

	// HeadedBuildingIDs lists the buildings the user is union head of.
	HeadedBuildingIDs []uint
}

// Loader resolves a Principal for a user id.
type Loader interface {
	LoadPrincipal(ctx context.Context, userID uint) (*Principal, error)
}

// CanManageBuilding reports whether the principal may act on behalf of a building.
func (p *Principal) CanManageBuilding(buildingID uint) bool {
	if p == nil {
		return false
	}
	return p.Admin || slices.Contains(p.HeadedBuildingIDs, buildingID)
}

// CanTriggerGeneration reports whether the principal may start any invoice
// generation. Which runs are allowed is decided per package by the billing service.
func (p *Principal) CanTriggerGeneration() bool {
	return p != nil && (p.Admin || p.UnionHead)
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx, if any.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
