package services

import (
	"github.com/mango-abandoned/api-go/logger"
	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/utils"
)

// Services holds every domain service, wired over one set of repositories.
type Services struct {
	AuthService         *AuthService
	NotificationService *NotificationService
	GamificationService *GamificationService
	FollowService       *FollowService
	PlaceService        *PlaceService
	LeaderboardService  *LeaderboardService
}

// NewServices wires the services. ids and clock are injected so tests can pin them.
func NewServices(repos *repositories.Repositories, ids utils.IDGenerator, clock utils.Clock) *Services {
	notifications := NewNotificationService(repos.NotificationRepository, ids, clock, logger.With("notifications"))
	gamification := NewGamificationService(repos.UserRepository, repos.PlaceRepository, notifications, logger.With("gamification"))

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, repos.SessionRepository, ids, clock, logger.With("auth")),
		NotificationService: notifications,
		GamificationService: gamification,
		FollowService:       NewFollowService(repos.FollowRepository, notifications, clock, logger.With("follows")),
		PlaceService:        NewPlaceService(repos, gamification, notifications, ids, clock, logger.With("places")),
		LeaderboardService:  NewLeaderboardService(repos.UserRepository),
	}
}
