package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/utils"
)

// NotificationService delivers and tracks in-app notifications.
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	ids              utils.IDGenerator
	clock            utils.Clock
	logger           zerolog.Logger
}

func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	ids utils.IDGenerator,
	clock utils.Clock,
	logger zerolog.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		ids:              ids,
		clock:            clock,
		logger:           logger,
	}
}

// Append stores n as given, filling in id and createdAt when they are empty.
func (s *NotificationService) Append(ctx context.Context, n models.Notification) (models.Notification, error) {
	if n.ID == "" {
		n.ID = s.ids.NewID()
	}
	if n.CreatedAt == "" {
		n.CreatedAt = utils.Timestamp(s.clock.Now())
	}
	if err := s.notificationRepo.Append(ctx, n); err != nil {
		return models.Notification{}, err
	}

	s.logger.Debug().
		Str("user_id", n.UserID).
		Str("type", string(n.Type)).
		Msg("notification sent")
	return n, nil
}

// Notify builds an unread notification and appends it.
func (s *NotificationService) Notify(ctx context.Context, userID string, kind models.NotificationType, message, relatedID string) error {
	_, err := s.Append(ctx, models.Notification{
		UserID:    userID,
		Type:      kind,
		Message:   message,
		RelatedID: relatedID,
	})
	return err
}

func (s *NotificationService) ListFor(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.notificationRepo.ForUser(ctx, userID)
}

// MarkRead is idempotent and ignores unknown ids.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	_, err := s.notificationRepo.MarkRead(ctx, id)
	return err
}

// MarkReadFor marks a notification owned by userID. Notifications of other
// users are reported as missing and left untouched.
func (s *NotificationService) MarkReadFor(ctx context.Context, userID, id string) error {
	notifications, err := s.notificationRepo.ForUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, n := range notifications {
		if n.ID == id {
			return s.MarkRead(ctx, id)
		}
	}
	return apperrors.NewResourceNotFoundError(apperrors.ErrResourceNotFound, "Уведомление не найдено")
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	notifications, err := s.notificationRepo.ForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}
