package notifications

import (
	"context"
	"net/http"

	"github.com/mkani/billing/pkg/api"
	"github.com/mkani/billing/pkg/handlers/render"
	"github.com/mkani/billing/pkg/mapping"
	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage/dynamodb"
)

// MaxLimit caps a single inbox page.
const MaxLimit = 100

// Inbox reads and updates a user's notifications.
type Inbox interface {
	ListNotifications(ctx context.Context, userID uint, limit int32) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID uint, notificationID string) error
}

// NotificationsHandler holds the dependencies for inbox handlers.
type NotificationsHandler struct {
	Inbox Inbox
}

func NewNotificationsHandler(inbox Inbox) *NotificationsHandler {
	return &NotificationsHandler{Inbox: inbox}
}

// ListNotifications returns the caller's newest notifications.
func (h *NotificationsHandler) ListNotifications(w http.ResponseWriter, r *http.Request, params api.ListNotificationsParams) {
	p, ok := render.Principal(w, r)
	if !ok {
		return
	}

	limit := int32(dynamodb.DefaultListLimit)
	if params.Limit != nil {
		limit = int32(min(max(*params.Limit, 1), MaxLimit))
	}

	items, err := h.Inbox.ListNotifications(r.Context(), p.UserID, limit)
	if err != nil {
		render.Error(w, err)
		return
	}
	out := make([]api.Notification, len(items))
	for i := range items {
		out[i] = mapping.ToApiNotification(&items[i])
	}
	render.JSON(w, http.StatusOK, out)
}

func (h *NotificationsHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request, notificationId string) {
	p, ok := render.Principal(w, r)
	if !ok {
		return
	}
	if err := h.Inbox.MarkRead(r.Context(), p.UserID, notificationId); err != nil {
		render.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
