package models

import "time"

// Notification is a user-facing message stored in the notification inbox.
type Notification struct {
	UserID    uint      `json:"user_id" dynamodbav:"user_id"`
	ID        string    `json:"id" dynamodbav:"id"` // time-ordered uuid, sort key
	Title     string    `json:"title" dynamodbav:"title"`
	Message   string    `json:"message" dynamodbav:"message"`
	IsRead    bool      `json:"is_read" dynamodbav:"is_read"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}
