package supabase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

// NotificationStore persists household notifications.
type NotificationStore struct {
	client *Client
}

// NewNotificationStore creates a notification store backed by the given client.
func NewNotificationStore(client *Client) *NotificationStore {
	return &NotificationStore{client: client}
}

func (s *NotificationStore) CreateNotification(ctx context.Context, n *domain.Notification) error {
	ctx, span := tracer.Start(ctx, "NotificationStore.CreateNotification")
	defer span.End()

	_, err := s.client.doPost(ctx, "notifications", n)
	return err
}

func (s *NotificationStore) ListNotifications(ctx context.Context, householdID string, unreadOnly bool) ([]domain.Notification, error) {
	ctx, span := tracer.Start(ctx, "NotificationStore.ListNotifications")
	defer span.End()

	path := fmt.Sprintf("notifications?household_id=eq.%s&order=created_at.desc", householdID)
	if unreadOnly {
		path += "&is_read=eq.false"
	}
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Notification](body, "notifications")
}

func (s *NotificationStore) MarkNotificationRead(ctx context.Context, notifID string) error {
	ctx, span := tracer.Start(ctx, "NotificationStore.MarkNotificationRead")
	defer span.End()

	now := time.Now().UTC()
	payload := map[string]any{
		"is_read": true,
		"read_at": now,
	}
	path := fmt.Sprintf("notifications?id=eq.%s", notifID)
	body, err := s.client.doPatch(ctx, path, payload)
	if err != nil {
		return err
	}
	updated, err := decodeOne[domain.Notification](body, "notifications")
	if err != nil {
		return err
	}
	if updated == nil {
		return &domain.ErrNotFound{Resource: "notification", ID: notifID}
	}
	return nil
}
