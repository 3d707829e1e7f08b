package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
)

// DefaultListLimit caps an inbox page when the caller does not ask for a size.
const DefaultListLimit = 50

// PutNotification writes a notification to the inbox, assigning its id and timestamp.
func (s *Store) PutNotification(ctx context.Context, n *models.Notification) error {
	if n.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate notification id: %w", err)
		}
		n.ID = id.String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.NotificationsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}
	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to put notification in DynamoDB: %w", err)
	}
	return nil
}

// ListNotifications returns up to limit notifications of a user, newest first.
func (s *Store) ListNotifications(ctx context.Context, userID uint, limit int32) ([]models.Notification, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.NotificationsTableName),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": userKey(userID),
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	}

	out, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}

	notifications := make([]models.Notification, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags one notification as read.
func (s *Store) MarkRead(ctx context.Context, userID uint, notificationID string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.NotificationsTableName),
		Key: map[string]types.AttributeValue{
			"user_id": userKey(userID),
			"id":      &types.AttributeValueMemberS{Value: notificationID},
		},
		UpdateExpression:    aws.String("SET is_read = :read"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("notification %s: %w", notificationID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func userKey(userID uint) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(userID), 10)}
}
