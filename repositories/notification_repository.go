package repositories

import (
	"context"

	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/storage"
)

// NotificationRepository is append-only apart from the read flag.
type NotificationRepository struct {
	notifications collection[models.Notification]
}

func NewNotificationRepository(store storage.Store) *NotificationRepository {
	return &NotificationRepository{notifications: newCollection[models.Notification](store, KeyNotifications)}
}

func (r *NotificationRepository) All(ctx context.Context) ([]models.Notification, error) {
	return r.notifications.load(ctx)
}

func (r *NotificationRepository) Append(ctx context.Context, n models.Notification) error {
	notifications, err := r.notifications.load(ctx)
	if err != nil {
		return err
	}
	return r.notifications.save(ctx, append(notifications, n))
}

// ForUser filters notifications addressed to userID, keeping stored order.
func (r *NotificationRepository) ForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := r.notifications.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := []models.Notification{}
	for _, n := range notifications {
		if n.UserID == userID {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

// MarkRead sets the read flag; unknown ids are ignored.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	notifications, err := r.notifications.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			return true, r.notifications.save(ctx, notifications)
		}
	}
	return false, nil
}
