// Package notify delivers user-facing messages. Delivery is best effort: a
// failed notification never undoes the operation that produced it.
package notify

import (
	"context"
	"errors"
	"sync"

	"github.com/mkani/billing/pkg/models"
)

// Notifier sends a message to a user.
type Notifier interface {
	Notify(ctx context.Context, userID uint, title, message string) error
}

// InboxStore persists notifications.
type InboxStore interface {
	PutNotification(ctx context.Context, n *models.Notification) error
}

// Inbox stores every notification in the user's inbox.
type Inbox struct {
	Store InboxStore
}

func NewInbox(store InboxStore) *Inbox {
	return &Inbox{Store: store}
}

func (i *Inbox) Notify(ctx context.Context, userID uint, title, message string) error {
	return i.Store.PutNotification(ctx, &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	})
}

// Fanout sends to every notifier and joins their errors.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, userID uint, title, message string) error {
	var errs []error
	for _, n := range f {
		if err := n.Notify(ctx, userID, title, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NoOp discards notifications.
type NoOp struct{}

func (NoOp) Notify(context.Context, uint, string, string) error { return nil }

// Recorder keeps notifications in memory. It is safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (r *Recorder) Notify(_ context.Context, userID uint, title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, models.Notification{UserID: userID, Title: title, Message: message})
	return nil
}

// Sent returns a copy of everything recorded so far.
func (r *Recorder) Sent() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.sent...)
}

// For returns the notifications recorded for one user.
func (r *Recorder) For(userID uint) []models.Notification {
	var out []models.Notification
	for _, n := range r.Sent() {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// Reset clears the recorder.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}
