package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/utils"
)

const followMessage = "Пользователь подписался на вас"

type FollowService struct {
	followRepo    *repositories.FollowRepository
	notifications *NotificationService
	clock         utils.Clock
	logger        zerolog.Logger
}

func NewFollowService(
	followRepo *repositories.FollowRepository,
	notifications *NotificationService,
	clock utils.Clock,
	logger zerolog.Logger,
) *FollowService {
	return &FollowService{
		followRepo:    followRepo,
		notifications: notifications,
		clock:         clock,
		logger:        logger,
	}
}

// Toggle follows or unfollows and reports whether the edge exists afterwards.
// Only a new follow notifies the followed user.
func (s *FollowService) Toggle(ctx context.Context, followerID, followingID string) (bool, error) {
	if followerID == followingID {
		return false, apperrors.NewBadRequestError("Cannot follow yourself")
	}

	exists, err := s.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.followRepo.Remove(ctx, followerID, followingID); err != nil {
			return false, err
		}
		s.logger.Debug().Str("follower_id", followerID).Str("following_id", followingID).Msg("unfollowed")
		return false, nil
	}

	err = s.followRepo.Add(ctx, models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   utils.Timestamp(s.clock.Now()),
	})
	if err != nil {
		return false, err
	}
	if err := s.notifications.Notify(ctx, followingID, models.NotificationFollow, followMessage, followerID); err != nil {
		return true, err
	}

	s.logger.Debug().Str("follower_id", followerID).Str("following_id", followingID).Msg("followed")
	return true, nil
}

// Followers lists edges pointing at userID.
func (s *FollowService) Followers(ctx context.Context, userID string) ([]models.Follow, error) {
	return s.filter(ctx, func(f models.Follow) bool { return f.FollowingID == userID })
}

// Following lists edges starting at userID.
func (s *FollowService) Following(ctx context.Context, userID string) ([]models.Follow, error) {
	return s.filter(ctx, func(f models.Follow) bool { return f.FollowerID == userID })
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followingID)
}

func (s *FollowService) filter(ctx context.Context, match func(models.Follow) bool) ([]models.Follow, error) {
	follows, err := s.followRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	result := []models.Follow{}
	for _, f := range follows {
		if match(f) {
			result = append(result, f)
		}
	}
	return result, nil
}
