// Package dynamodb stores the notification inbox in AWS DynamoDB.
package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the Store.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// Store is the notification inbox. Items are keyed by user_id (partition)
// and a time-ordered id (sort), so a query returns a user's inbox in order.
type Store struct {
	Client                 DynamoDBAPI
	NotificationsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, notificationsTable string) *Store {
	return &Store{
		Client:                 client,
		NotificationsTableName: notificationsTable,
	}
}
