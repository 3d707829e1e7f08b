package main

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage/gormstore"
	"github.com/mkani/billing/pkg/storage/gormstore/gormtest"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDatabase(t *testing.T) *gormtest.Fixtures {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "mkani.db")
	t.Setenv("MKANI_DATABASE_DRIVER", "sqlite")
	t.Setenv("MKANI_DATABASE_DSN", dsn)
	t.Setenv("MKANI_LOG_LEVEL", "error")

	store, err := gormstore.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return gormtest.NewFixtures(t, store)
}

func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func id(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func TestProfileCommands(t *testing.T) {
	fx := setupDatabase(t)
	b := fx.Building("Zamalek Towers", nil)
	pending := fx.Owner(fx.User("owner"), fx.Unit(b, "1"), models.ResidentPending)
	other := fx.Owner(fx.User("other"), fx.Unit(b, "2"), models.ResidentPending)

	t.Run("approve", func(t *testing.T) {
		require.NoError(t, execute(profileCmd("approve", "", approveProfile), id(pending.ID)))

		var got models.ResidentProfile
		fx.Reload(&got, pending.ID)
		assert.Equal(t, models.ResidentApproved, got.Status)
	})

	t.Run("reject", func(t *testing.T) {
		require.NoError(t, execute(profileCmd("reject", "", rejectProfile), id(other.ID)))

		var got models.ResidentProfile
		fx.Reload(&got, other.ID)
		assert.Equal(t, models.ResidentRejected, got.Status)
	})

	t.Run("invalid id", func(t *testing.T) {
		err := execute(profileCmd("approve", "", approveProfile), "abc")
		assert.ErrorContains(t, err, "invalid profile id")
	})
}
