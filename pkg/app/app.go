// Package app assembles the service graph shared by the HTTP server, the
// Lambda functions and the admin CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/mkani/billing/pkg/billing"
	"github.com/mkani/billing/pkg/config"
	"github.com/mkani/billing/pkg/metrics"
	"github.com/mkani/billing/pkg/notify"
	"github.com/mkani/billing/pkg/occupancy"
	"github.com/mkani/billing/pkg/scheduler"
	"github.com/mkani/billing/pkg/settlement"
	"github.com/mkani/billing/pkg/storage/dynamodb"
	"github.com/mkani/billing/pkg/storage/gormstore"
)

// App holds the wired services.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	Store     *gormstore.Store
	Inbox     *dynamodb.Store // nil without aws.notifications_table
	Notifier  notify.Notifier
	Engine    *settlement.Engine
	Occupancy *occupancy.Resolver
	Generator *billing.Generator
	Billing   *billing.Service
	Scheduler scheduler.Scheduler // nil without aws.jobs_queue_url
	Runner    *scheduler.Runner

	closers []func() error
}

// New opens the database and connects every configured backend. Optional
// backends (DynamoDB inbox, Redis push, SQS queue) are skipped when their
// settings are empty.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &App{Config: cfg, Logger: logger, Metrics: metrics.Registry(cfg.Metrics.Namespace)}

	store, err := gormstore.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	a.Store = store
	a.closers = append(a.closers, store.Close)
	if cfg.Database.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}

	var notifiers notify.Fanout
	if cfg.AWS.NotificationsTable != "" || cfg.AWS.JobsQueueURL != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		if cfg.AWS.NotificationsTable != "" {
			a.Inbox = dynamodb.New(awsdynamodb.NewFromConfig(awsCfg), cfg.AWS.NotificationsTable)
			notifiers = append(notifiers, notify.NewInbox(a.Inbox))
		}
		if cfg.AWS.JobsQueueURL != "" {
			a.Scheduler = scheduler.NewSQSScheduler(sqs.NewFromConfig(awsCfg), cfg.AWS.JobsQueueURL)
		}
	}
	if cfg.Redis.Addr != "" {
		rdb := notify.NewRedisClient(notify.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			UseTLS:   cfg.Redis.TLS,
		})
		a.closers = append(a.closers, rdb.Close)
		notifiers = append(notifiers, notify.NewRealtimePublisher(rdb, logger))
	}
	if len(notifiers) == 0 {
		logger.Warn("no notification backend configured, notifications are dropped")
		a.Notifier = notify.NoOp{}
	} else {
		a.Notifier = notifiers
	}

	a.Engine = settlement.NewEngine(store, a.Notifier, logger, a.Metrics)
	a.Occupancy = occupancy.NewResolver(store, a.Notifier, logger,
		occupancy.WithRetention(cfg.Billing.RejectedRetention),
		occupancy.WithMetrics(a.Metrics),
	)
	a.Generator = billing.NewGenerator(store, a.Occupancy, a.Engine, logger,
		billing.WithOverduePolicy(billing.OverduePolicy(cfg.Billing.OverduePolicy)),
		billing.WithGeneratorMetrics(a.Metrics),
	)
	a.Billing = billing.NewService(store, a.Generator, a.Notifier, logger)
	a.Runner = scheduler.NewRunner(a.Generator, a.Occupancy, logger,
		scheduler.WithLocation(cfg.Billing.Location()),
		scheduler.WithRunnerMetrics(a.Metrics),
	)
	return a, nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
