package gormstore

import (
	"context"
	"fmt"
	"time"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
	"gorm.io/gorm"
)

var approvedStatuses = []models.ResidentStatus{models.ResidentApproved, models.ResidentAccepted}

func (s *Store) GetResidentProfile(ctx context.Context, id uint) (*models.ResidentProfile, error) {
	var p models.ResidentProfile
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Unit.Building").
		First(&p, id).Error
	if err != nil {
		return nil, notFound(err, storage.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) ListResidentsByUnit(ctx context.Context, unitID uint) ([]models.ResidentProfile, error) {
	var profiles []models.ResidentProfile
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Unit").
		Where("unit_id = ?", unitID).
		Order("id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list residents of unit %d: %w", unitID, err)
	}
	return profiles, nil
}

func (s *Store) ListResidentProfilesByUser(ctx context.Context, userID uint) ([]models.ResidentProfile, error) {
	var profiles []models.ResidentProfile
	err := s.db.WithContext(ctx).
		Preload("Unit.Building").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles of user %d: %w", userID, err)
	}
	return profiles, nil
}

func (s *Store) ListResidentsByBuildings(ctx context.Context, buildingIDs []uint) ([]models.ResidentProfile, error) {
	if len(buildingIDs) == 0 {
		return []models.ResidentProfile{}, nil
	}
	var profiles []models.ResidentProfile
	err := s.db.WithContext(ctx).
		Preload("Unit").
		Joins("JOIN units ON units.id = resident_profiles.unit_id").
		Where("units.building_id IN ?", buildingIDs).
		Order("resident_profiles.id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list residents of buildings: %w", err)
	}
	return profiles, nil
}

// ListExpiredTenants returns approved tenants whose rental window ended before today.
func (s *Store) ListExpiredTenants(ctx context.Context, today time.Time) ([]models.ResidentProfile, error) {
	var profiles []models.ResidentProfile
	err := s.db.WithContext(ctx).
		Preload("Unit.Building").
		Where("resident_type = ? AND status IN ? AND rental_end_date < ?",
			models.ResidentTenant, approvedStatuses, models.Day(today)).
		Order("id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired tenants: %w", err)
	}
	return profiles, nil
}

// ExpireTenant flips the profile and frees its unit in one transaction. The
// profile update is conditional on the expiry filter still matching.
func (s *Store) ExpireTenant(ctx context.Context, profileID uint, today time.Time) (bool, error) {
	expired := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.ResidentProfile
		if err := forUpdate(tx).First(&p, profileID).Error; err != nil {
			return notFound(err, storage.ErrNotFound)
		}

		res := tx.Model(&models.ResidentProfile{}).
			Where("id = ? AND resident_type = ? AND status IN ? AND rental_end_date < ?",
				profileID, models.ResidentTenant, approvedStatuses, models.Day(today)).
			Updates(map[string]any{"status": models.ResidentInactive, "is_present": false})
		if res.Error != nil {
			return fmt.Errorf("failed to deactivate tenant %d: %w", profileID, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if p.UnitID != nil {
			err := tx.Model(&models.Unit{}).
				Where("id = ?", *p.UnitID).
				Update("status", models.UnitAvailable).Error
			if err != nil {
				return fmt.Errorf("failed to free unit %d: %w", *p.UnitID, err)
			}
		}
		expired = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return expired, nil
}

// ApproveResident approves a pending profile. A tenant can only be approved
// while no other approved tenant holds the unit.
func (s *Store) ApproveResident(ctx context.Context, profileID uint) (*models.ResidentProfile, error) {
	var p models.ResidentProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&p, profileID).Error; err != nil {
			return notFound(err, storage.ErrNotFound)
		}
		if p.Status != models.ResidentPending {
			return fmt.Errorf("profile %d is %s: %w", profileID, p.Status, storage.ErrInvalidTransition)
		}

		if p.UnitID != nil {
			if err := forUpdate(tx).First(&models.Unit{}, *p.UnitID).Error; err != nil {
				return notFound(err, storage.ErrNotFound)
			}
			if p.ResidentType == models.ResidentTenant {
				var active int64
				err := tx.Model(&models.ResidentProfile{}).
					Where("unit_id = ? AND resident_type = ? AND status IN ? AND id <> ?",
						*p.UnitID, models.ResidentTenant, approvedStatuses, p.ID).
					Count(&active).Error
				if err != nil {
					return err
				}
				if active > 0 {
					return storage.ErrTenantAlreadyActive
				}
			}
			err := tx.Model(&models.Unit{}).
				Where("id = ?", *p.UnitID).
				Update("status", models.UnitOccupied).Error
			if err != nil {
				return err
			}
		}

		p.Status = models.ResidentApproved
		p.IsPresent = true
		return tx.Model(&p).Updates(map[string]any{"status": p.Status, "is_present": true}).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// RejectResident rejects a pending profile.
func (s *Store) RejectResident(ctx context.Context, profileID uint, at time.Time) (*models.ResidentProfile, error) {
	at = at.UTC()
	var p models.ResidentProfile
	if err := s.db.WithContext(ctx).First(&p, profileID).Error; err != nil {
		return nil, notFound(err, storage.ErrNotFound)
	}
	res := s.db.WithContext(ctx).
		Model(&models.ResidentProfile{}).
		Where("id = ? AND status = ?", profileID, models.ResidentPending).
		Updates(map[string]any{"status": models.ResidentRejected, "rejected_at": at, "is_present": false})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to reject profile %d: %w", profileID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("profile %d is %s: %w", profileID, p.Status, storage.ErrInvalidTransition)
	}
	p.Status = models.ResidentRejected
	p.RejectedAt = &at
	p.IsPresent = false
	return &p, nil
}

// DeleteRejectedBefore removes rejected profiles whose retention window has passed.
func (s *Store) DeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("status = ? AND rejected_at IS NOT NULL AND rejected_at < ?", models.ResidentRejected, cutoff.UTC()).
		Delete(&models.ResidentProfile{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete rejected profiles: %w", res.Error)
	}
	return res.RowsAffected, nil
}
