package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/types"
)

// GamificationService applies experience and badge rewards.
type GamificationService struct {
	userRepo      *repositories.UserRepository
	placeRepo     *repositories.PlaceRepository
	notifications *NotificationService
	points        types.PointsConfig
	logger        zerolog.Logger
}

func NewGamificationService(
	userRepo *repositories.UserRepository,
	placeRepo *repositories.PlaceRepository,
	notifications *NotificationService,
	logger zerolog.Logger,
) *GamificationService {
	return &GamificationService{
		userRepo:      userRepo,
		placeRepo:     placeRepo,
		notifications: notifications,
		points:        types.GetPointsConfig(),
		logger:        logger,
	}
}

// Stats aggregates the approved places authored by userID.
func (s *GamificationService) Stats(ctx context.Context, userID string) (types.AuthorStats, error) {
	places, err := s.placeRepo.ByAuthor(ctx, userID)
	if err != nil {
		return types.AuthorStats{}, err
	}

	var stats types.AuthorStats
	for i := range places {
		if !places[i].IsApproved() {
			continue
		}
		stats.ApprovedPlaces++
		stats.TotalLikes += len(places[i].Likes)
		stats.ApprovedRatings += places[i].ApprovedRatings()
	}
	return stats, nil
}

// Award adds the action's experience to the user, recomputes the level and
// grants any badge whose threshold is now met. Unknown users are ignored.
func (s *GamificationService) Award(ctx context.Context, userID string, action types.Action) ([]models.Badge, error) {
	xp, ok := s.points.XPFor(action)
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown action %q", action))
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if apperrors.Is(err, apperrors.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.XP += xp
	user.Level = s.points.Level(user.XP)

	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	earned := types.NewlyEarnedBadges(user, stats)
	user.Badges = append(user.Badges, earned...)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("user_id", userID).
		Str("action", string(action)).
		Int("xp", user.XP).
		Int("level", user.Level).
		Msg("experience awarded")

	for _, badge := range earned {
		message := fmt.Sprintf("Получен новый бейдж: %s!", badge.Name)
		if err := s.notifications.Notify(ctx, userID, models.NotificationApproval, message, ""); err != nil {
			return earned, err
		}
		s.logger.Info().Str("user_id", userID).Str("badge", badge.ID).Msg("badge awarded")
	}

	return earned, nil
}
