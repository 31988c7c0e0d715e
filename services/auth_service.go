package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/types"
	"github.com/mango-abandoned/api-go/utils"
)

// AdminPassword is the fixed moderator password.
const AdminPassword = "admin12345admin"

// AuthService selects the session identity. It is not a security boundary:
// regular accounts log in by email alone.
type AuthService struct {
	userRepo    *repositories.UserRepository
	sessionRepo *repositories.SessionRepository
	ids         utils.IDGenerator
	clock       utils.Clock
	logger      zerolog.Logger
}

func NewAuthService(
	userRepo *repositories.UserRepository,
	sessionRepo *repositories.SessionRepository,
	ids utils.IDGenerator,
	clock utils.Clock,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		ids:         ids,
		clock:       clock,
		logger:      logger,
	}
}

// Login makes the matching account the session user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("Заполните все поля")
	}

	if email == repositories.AdminEmail && password == AdminPassword {
		admin, err := s.userRepo.GetAdmin(ctx)
		if err == nil {
			return s.startSession(ctx, admin)
		}
		if !apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if apperrors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.startSession(ctx, user)
}

// Register creates a fresh account and logs it in.
func (s *AuthService) Register(ctx context.Context, input types.RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	nickname := strings.TrimSpace(input.Nickname)
	if email == "" || nickname == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, apperrors.NewValidationError("Заполните все поля")
	}
	if input.Password != input.ConfirmPassword {
		return nil, apperrors.NewValidationError("Пароли не совпадают")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	user := &models.User{
		ID:        s.ids.NewID(),
		Email:     email,
		Nickname:  nickname,
		Avatar:    repositories.DefaultAvatar,
		Level:     1,
		XP:        0,
		Badges:    []models.Badge{},
		CreatedAt: utils.Timestamp(s.clock.Now()),
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return s.startSession(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessionRepo.Set(ctx, nil)
}

// Current returns the session user or nil.
func (s *AuthService) Current(ctx context.Context) (*models.User, error) {
	return s.sessionRepo.Current(ctx)
}

// RequireCurrent is Current that fails with ErrUnauthorized when nobody is logged in.
func (s *AuthService) RequireCurrent(ctx context.Context) (*models.User, error) {
	user, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *AuthService) startSession(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.sessionRepo.Set(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("user_id", user.ID).Msg("session started")
	return user, nil
}
