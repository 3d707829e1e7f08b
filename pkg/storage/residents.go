package storage

import (
	"context"
	"time"

	"github.com/mkani/billing/pkg/models"
)

// ResidentStore defines the interface for resident profiles and the unit
// occupancy fields they drive.
type ResidentStore interface {
	GetResidentProfile(ctx context.Context, id uint) (*models.ResidentProfile, error)

	// ListResidentsByUnit returns all profiles of a unit ordered by id.
	ListResidentsByUnit(ctx context.Context, unitID uint) ([]models.ResidentProfile, error)

	// ListResidentProfilesByUser returns a user's profiles with their units, ordered by id.
	ListResidentProfilesByUser(ctx context.Context, userID uint) ([]models.ResidentProfile, error)

	// ListResidentsByBuildings returns the profiles living in the given buildings.
	ListResidentsByBuildings(ctx context.Context, buildingIDs []uint) ([]models.ResidentProfile, error)

	// ListExpiredTenants returns approved tenants whose rental ended before today.
	ListExpiredTenants(ctx context.Context, today time.Time) ([]models.ResidentProfile, error)

	// ExpireTenant atomically deactivates an approved tenant and frees the unit.
	// It reports false when the profile no longer matches (already swept).
	ExpireTenant(ctx context.Context, profileID uint, today time.Time) (bool, error)

	// ApproveResident approves a pending profile and marks its unit occupied.
	ApproveResident(ctx context.Context, profileID uint) (*models.ResidentProfile, error)

	// RejectResident rejects a pending profile, stamping rejected_at.
	RejectResident(ctx context.Context, profileID uint, at time.Time) (*models.ResidentProfile, error)

	// DeleteRejectedBefore removes rejected profiles stamped before cutoff.
	DeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// BuildingStore defines the read side of buildings and units.
type BuildingStore interface {
	GetBuilding(ctx context.Context, id uint) (*models.Building, error)
	ListUnits(ctx context.Context, buildingID uint) ([]models.Unit, error)
	ListBuildingsByUnionHead(ctx context.Context, userID uint) ([]models.Building, error)
}
