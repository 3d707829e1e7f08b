package gormstore

import (
	"context"
	"fmt"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
)

func (s *Store) GetBuilding(ctx context.Context, id uint) (*models.Building, error) {
	var b models.Building
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err, storage.ErrNotFound)
	}
	return &b, nil
}

func (s *Store) ListUnits(ctx context.Context, buildingID uint) ([]models.Unit, error) {
	var units []models.Unit
	err := s.db.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Order("id ASC").
		Find(&units).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list units of building %d: %w", buildingID, err)
	}
	return units, nil
}

func (s *Store) ListBuildingsByUnionHead(ctx context.Context, userID uint) ([]models.Building, error) {
	var buildings []models.Building
	err := s.db.WithContext(ctx).
		Where("union_head_id = ?", userID).
		Order("id ASC").
		Find(&buildings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings of union head %d: %w", userID, err)
	}
	return buildings, nil
}
