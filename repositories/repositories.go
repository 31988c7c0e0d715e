package repositories

import (
	"github.com/mango-abandoned/api-go/storage"
	"github.com/mango-abandoned/api-go/utils"
)

// Repositories holds all the repository instances
type Repositories struct {
	SessionRepository      *SessionRepository
	UserRepository         *UserRepository
	PlaceRepository        *PlaceRepository
	RatingRepository       *RatingRepository
	NotificationRepository *NotificationRepository
	FollowRepository       *FollowRepository
}

// NewRepositories initializes all repositories over one store
func NewRepositories(store storage.Store, clock utils.Clock) *Repositories {
	session := NewSessionRepository(store)
	return &Repositories{
		SessionRepository:      session,
		UserRepository:         NewUserRepository(store, session, clock),
		PlaceRepository:        NewPlaceRepository(store),
		RatingRepository:       NewRatingRepository(store),
		NotificationRepository: NewNotificationRepository(store),
		FollowRepository:       NewFollowRepository(store),
	}
}
