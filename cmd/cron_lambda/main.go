package main

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/mkani/billing/pkg/app"
	"github.com/mkani/billing/pkg/config"
	"github.com/mkani/billing/pkg/logging"
	"github.com/mkani/billing/pkg/scheduler"
)

var (
	sched  scheduler.Scheduler
	runner *scheduler.Runner
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	a, err := app.New(context.Background(), cfg, logging.NewLogger(cfg.Log.Level, cfg.Log.Format))
	if err != nil {
		log.Fatalf("failed to initialise service: %v", err)
	}
	if a.Scheduler == nil {
		log.Fatal("aws.jobs_queue_url is required")
	}
	sched, runner = a.Scheduler, a.Runner
}

// HandleRequest is triggered daily by an EventBridge Schedule and queues the
// jobs due on the current billing day.
func HandleRequest(ctx context.Context) error {
	today := runner.Today()
	jobs := scheduler.Due(today)
	log.Printf("Queueing %d jobs for %s", len(jobs), today.Format("2006-01-02"))

	var errs []error
	for _, job := range jobs {
		if err := sched.Enqueue(ctx, job); err != nil {
			log.Printf("ERROR: failed to enqueue %s: %v", job.Kind, err)
			// Keep going so one failure does not block the others.
			errs = append(errs, err)
			continue
		}
		log.Printf("Queued %s", job.Kind)
	}
	return errors.Join(errs...)
}

func main() {
	lambda.Start(HandleRequest)
}
