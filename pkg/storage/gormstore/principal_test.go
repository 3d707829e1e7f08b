package gormstore_test

import (
	"context"
	"testing"

	"github.com/mkani/billing/pkg/authz"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage/gormstore/gormtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrincipal(t *testing.T) {
	store := gormtest.NewStore(t)
	fx := gormtest.NewFixtures(t, store)
	ctx := context.Background()

	head := fx.User("head")
	maadi := fx.Building("Maadi", head)
	zamalek := fx.Building("Zamalek", head)
	fx.Building("Heliopolis", nil)

	resident := fx.User("resident")
	fx.Owner(resident, fx.Unit(maadi, "1A"), models.ResidentPending)

	admin := fx.User("admin")
	fx.Role(admin.ID, models.RoleAdmin)

	tech := fx.User("tech")
	fx.Role(tech.ID, models.RoleTechnician)

	testCases := []struct {
		name string
		user *models.User
		want authz.Principal
	}{
		{"union head by building", head, authz.Principal{UnionHead: true, HeadedBuildingIDs: []uint{maadi.ID, zamalek.ID}}},
		{"resident by profile", resident, authz.Principal{Resident: true}},
		{"admin by role", admin, authz.Principal{Admin: true}},
		{"technician", tech, authz.Principal{Technician: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.LoadPrincipal(ctx, tc.user.ID)
			require.NoError(t, err)

			tc.want.UserID = tc.user.ID
			assert.Equal(t, &tc.want, got)
		})
	}

	t.Run("unknown user", func(t *testing.T) {
		_, err := store.LoadPrincipal(ctx, 9999)
		assert.ErrorIs(t, err, authz.ErrUnknownUser)
	})
}
