package repositories

import (
	"context"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/logger"
	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/storage"
	"github.com/mango-abandoned/api-go/types"
	"github.com/mango-abandoned/api-go/utils"
)

const (
	AdminID       = "admin-user"
	AdminEmail    = "admin"
	AdminNickname = "Администратор"
	AdminXP       = 999999

	DefaultAvatar = "🍩"
)

// UserRepository stores every account, including the admin.
type UserRepository struct {
	users   collection[models.User]
	session *SessionRepository
	clock   utils.Clock
}

func NewUserRepository(store storage.Store, session *SessionRepository, clock utils.Clock) *UserRepository {
	return &UserRepository{
		users:   newCollection[models.User](store, KeyUsers),
		session: session,
		clock:   clock,
	}
}

// NewAdmin builds the moderator account with every badge.
func NewAdmin(createdAt string) models.User {
	return models.User{
		ID:        AdminID,
		Email:     AdminEmail,
		Nickname:  AdminNickname,
		Avatar:    DefaultAvatar,
		Level:     types.CalculateLevel(AdminXP),
		XP:        AdminXP,
		Badges:    types.GetBadges(),
		CreatedAt: createdAt,
		IsAdmin:   true,
	}
}

// All returns users in insertion order, seeding the admin if no admin exists yet.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	users, err := r.users.load(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := find(users, func(u models.User) bool { return u.IsAdmin }); ok {
		return users, nil
	}

	users = append(users, NewAdmin(utils.Timestamp(r.clock.Now())))
	if err := r.users.save(ctx, users); err != nil {
		return nil, err
	}
	logger.Info().Str("user_id", AdminID).Msg("admin account created")
	return users, nil
}

// Save upserts the user and refreshes the session copy when it is the same account.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	if user.Badges == nil {
		user.Badges = []models.Badge{}
	}

	users = upsert(users, *user, func(u models.User) string { return u.ID })
	if err := r.users.save(ctx, users); err != nil {
		return err
	}

	current, err := r.session.Current(ctx)
	if err != nil {
		return err
	}
	if current != nil && current.ID == user.ID {
		return r.session.Set(ctx, user)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, func(u models.User) bool { return u.ID == id })
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, func(u models.User) bool { return u.Email == email })
}

func (r *UserRepository) GetAdmin(ctx context.Context) (*models.User, error) {
	return r.findOne(ctx, func(u models.User) bool { return u.IsAdmin })
}

// EmailExists reports whether any account already uses email.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if apperrors.Is(err, apperrors.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserRepository) findOne(ctx context.Context, match func(models.User) bool) (*models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := find(users, match)
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}
