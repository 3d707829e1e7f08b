package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/mkani/billing/pkg/app"
	"github.com/mkani/billing/pkg/config"
	"github.com/mkani/billing/pkg/logging"
	"github.com/mkani/billing/pkg/scheduler"
)

var runner *scheduler.Runner

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	a, err := app.New(context.Background(), cfg, logging.NewLogger(cfg.Log.Level, cfg.Log.Format))
	if err != nil {
		log.Fatalf("failed to initialise service: %v", err)
	}
	runner = a.Runner
}

// HandleRequest runs each queued job. Failed records are reported back so
// SQS redelivers only those.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		job, err := scheduler.ParseJob([]byte(message.Body))
		if err != nil {
			// A malformed job never succeeds; drop it instead of retrying.
			log.Printf("ERROR: discarding message %s: %v", message.MessageId, err)
			continue
		}

		rep, err := runner.Run(ctx, job)
		if err != nil {
			log.Printf("ERROR: job %s (%s) failed: %v", job.ID, job.Kind, err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}
		log.Printf("Finished job %s (%s) for %s", job.ID, job.Kind, rep.Date)
	}
	return resp, nil
}

func main() {
	lambda.Start(HandleRequest)
}
