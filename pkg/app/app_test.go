package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mkani/billing/pkg/config"
	"github.com/mkani/billing/pkg/notify"
	"github.com/mkani/billing/pkg/scheduler"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	v := viper.New()
	v.Set("database.driver", "sqlite")
	v.Set("database.dsn", "file:"+filepath.Join(t.TempDir(), "app.db"))
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	return cfg
}

func TestNew_LocalOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(context.Background(), sqliteConfig(t), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Nil(t, a.Inbox)
	assert.Nil(t, a.Scheduler)
	assert.IsType(t, notify.NoOp{}, a.Notifier)
	require.NoError(t, a.Store.Ping(context.Background()))

	rep, err := a.Runner.Run(context.Background(), scheduler.Job{Kind: scheduler.GenerateMonthlyInvoices, Date: "2025-03-01"})
	require.NoError(t, err)
	require.NotNil(t, rep.Invoices)
	assert.Zero(t, rep.Invoices.Packages)

	rep, err = a.Runner.Run(context.Background(), scheduler.Job{Kind: scheduler.MarkOverdue, Date: "2025-03-10"})
	require.NoError(t, err)
	assert.Zero(t, rep.Affected)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Billing.OverduePolicy = "later"

	_, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "billing.overdue_policy")
}
