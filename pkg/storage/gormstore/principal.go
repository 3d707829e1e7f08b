package gormstore

import (
	"context"
	"fmt"

	"github.com/mkani/billing/pkg/authz"
	"github.com/mkani/billing/pkg/models"
)

// principalQuery resolves every capability of a user in one round trip. A
// resident profile or a headed building counts as the matching role even
// without an explicit user_roles row.
const principalQuery = `
SELECT
	u.id AS user_id,
	u.is_staff AS is_staff,
	(EXISTS (SELECT 1 FROM user_roles r WHERE r.user_id = u.id AND r.role = ?)
		OR EXISTS (SELECT 1 FROM resident_profiles p WHERE p.user_id = u.id)) AS resident,
	(EXISTS (SELECT 1 FROM user_roles r WHERE r.user_id = u.id AND r.role = ?)
		OR EXISTS (SELECT 1 FROM buildings b WHERE b.union_head_id = u.id)) AS union_head,
	EXISTS (SELECT 1 FROM user_roles r WHERE r.user_id = u.id AND r.role = ?) AS technician,
	EXISTS (SELECT 1 FROM user_roles r WHERE r.user_id = u.id AND r.role = ?) AS admin
FROM users u
WHERE u.id = ?`

type principalRow struct {
	UserID     uint
	IsStaff    bool
	Resident   bool
	UnionHead  bool
	Technician bool
	Admin      bool
}

// LoadPrincipal implements authz.Loader.
func (s *Store) LoadPrincipal(ctx context.Context, userID uint) (*authz.Principal, error) {
	var rows []principalRow
	err := s.db.WithContext(ctx).
		Raw(principalQuery, models.RoleResident, models.RoleUnionHead, models.RoleTechnician, models.RoleAdmin, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load principal %d: %w", userID, err)
	}
	if len(rows) == 0 {
		return nil, authz.ErrUnknownUser
	}
	row := rows[0]

	p := &authz.Principal{
		UserID:     row.UserID,
		Resident:   row.Resident,
		UnionHead:  row.UnionHead,
		Technician: row.Technician,
		Admin:      row.Admin || row.IsStaff,
	}
	if p.UnionHead {
		err := s.db.WithContext(ctx).
			Model(&models.Building{}).
			Where("union_head_id = ?", userID).
			Order("id ASC").
			Pluck("id", &p.HeadedBuildingIDs).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load headed buildings of %d: %w", userID, err)
		}
	}
	return p, nil
}
