package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mkani/billing/pkg/app"
	"github.com/mkani/billing/pkg/config"
	"github.com/mkani/billing/pkg/logging"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/scheduler"
	"github.com/mkani/billing/pkg/storage/gormstore"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := gormstore.Open(cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Schema is up to date.")
			return nil
		},
	}
}

// jobCmd runs one job kind in process, bypassing the queue.
func jobCmd(kind scheduler.JobKind, use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			job := scheduler.Job{Kind: kind, Date: date}
			if kind == scheduler.GeneratePackageInvoices {
				id, _ := cmd.Flags().GetUint("package")
				job.PackageID = id
			}
			if err := job.Validate(); err != nil {
				return err
			}
			return runJob(cmd.Context(), job)
		},
	}
	cmd.Flags().String("date", "", "billing day as YYYY-MM-DD (default today in the billing timezone)")
	if kind == scheduler.GeneratePackageInvoices {
		cmd.Flags().Uint("package", 0, "package id")
		_ = cmd.MarkFlagRequired("package")
	}
	return cmd
}

// profileCmd resolves one pending resident profile.
func profileCmd(use, short string, resolve func(ctx context.Context, a *app.App, id uint) (*models.ResidentProfile, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <profile-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 0)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid profile id %q", args[0])
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			profile, err := resolve(cmd.Context(), a, uint(id))
			if err != nil {
				return err
			}
			fmt.Printf("Profile %d is %s.\n", profile.ID, profile.Status)
			return nil
		},
	}
}

func approveProfile(ctx context.Context, a *app.App, id uint) (*models.ResidentProfile, error) {
	return a.Occupancy.Approve(ctx, id)
}

func rejectProfile(ctx context.Context, a *app.App, id uint) (*models.ResidentProfile, error) {
	return a.Occupancy.Reject(ctx, id, time.Now())
}

func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	// Work done here is never queued.
	cfg.AWS.JobsQueueURL = ""
	return app.New(ctx, cfg, logging.NewLogger(cfg.Log.Level, "text"))
}

func runJob(ctx context.Context, job scheduler.Job) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	rep, err := a.Runner.Run(ctx, job)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
