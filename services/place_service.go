package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/types"
	"github.com/mango-abandoned/api-go/utils"
)

// PlaceService runs the catalog: submission, moderation, reactions and ratings.
type PlaceService struct {
	placeRepo     *repositories.PlaceRepository
	ratingRepo    *repositories.RatingRepository
	userRepo      *repositories.UserRepository
	sessionRepo   *repositories.SessionRepository
	gamification  *GamificationService
	notifications *NotificationService
	ids           utils.IDGenerator
	clock         utils.Clock
	logger        zerolog.Logger
}

func NewPlaceService(
	repos *repositories.Repositories,
	gamification *GamificationService,
	notifications *NotificationService,
	ids utils.IDGenerator,
	clock utils.Clock,
	logger zerolog.Logger,
) *PlaceService {
	return &PlaceService{
		placeRepo:     repos.PlaceRepository,
		ratingRepo:    repos.RatingRepository,
		userRepo:      repos.UserRepository,
		sessionRepo:   repos.SessionRepository,
		gamification:  gamification,
		notifications: notifications,
		ids:           ids,
		clock:         clock,
		logger:        logger,
	}
}

// Submit creates a pending place authored by the session user and asks the admin to review it.
func (s *PlaceService) Submit(ctx context.Context, input types.SubmitPlaceInput) (*models.AbandonedPlace, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("Заполните название и описание")
	}
	if utf8.RuneCountInString(description) > types.MAX_DESCRIPTION_SIZE {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Описание не должно превышать %d символов", types.MAX_DESCRIPTION_SIZE))
	}
	if len(input.Images) < types.MIN_PLACE_IMAGES {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Добавьте минимум %d изображения", types.MIN_PLACE_IMAGES))
	}
	if len(input.Images) > types.MAX_PLACE_IMAGES {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Можно добавить не более %d изображений", types.MAX_PLACE_IMAGES))
	}

	security := input.SecurityLevel
	if security == "" {
		security = models.SecurityNone
	}
	if !security.Valid() {
		return nil, apperrors.NewValidationError("Неизвестный уровень охраны")
	}

	tags := normalizeTags(input.Tags)
	if len(tags) > types.MAX_PLACE_TAGS {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Можно добавить не более %d тегов", types.MAX_PLACE_TAGS))
	}

	place := &models.AbandonedPlace{
		ID:            s.ids.NewID(),
		Title:         title,
		Description:   description,
		Images:        append([]string{}, input.Images...),
		Location:      input.Location,
		SecurityLevel: security,
		AuthorID:      user.ID,
		Author:        user.Nickname,
		Status:        models.StatusPending,
		CreatedAt:     utils.Timestamp(s.clock.Now()),
		Likes:         []string{},
		Dislikes:      []string{},
		Rating:        []models.Rating{},
		Tags:          tags,
	}
	if err := s.Save(ctx, place); err != nil {
		return nil, err
	}

	admin, err := s.userRepo.GetAdmin(ctx)
	if err != nil {
		return nil, err
	}
	message := fmt.Sprintf("Новая заброшка \"%s\" ожидает модерации", place.Title)
	if err := s.notifications.Notify(ctx, admin.ID, models.NotificationApproval, message, place.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("place_id", place.ID).Str("author_id", user.ID).Msg("place submitted for moderation")
	return place, nil
}

// Save upserts the place. When the session user saves their own approved place
// they are awarded the upload reward.
func (s *PlaceService) Save(ctx context.Context, place *models.AbandonedPlace) error {
	if err := s.placeRepo.Save(ctx, place); err != nil {
		return err
	}

	user, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return err
	}
	if user != nil && place.AuthorID == user.ID && place.IsApproved() {
		_, err := s.gamification.Award(ctx, user.ID, types.ActionUpload)
		return err
	}
	return nil
}

func (s *PlaceService) Get(ctx context.Context, id string) (*models.AbandonedPlace, error) {
	return s.placeRepo.GetByID(ctx, id)
}

// GetVisible returns the place if the session user may see it. Pending places
// are shown only to their author and the admin.
func (s *PlaceService) GetVisible(ctx context.Context, id string) (*models.AbandonedPlace, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if place.IsApproved() {
		return place, nil
	}

	user, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user != nil && (user.IsAdmin || user.ID == place.AuthorID) {
		return place, nil
	}
	return nil, apperrors.ErrPlaceNotFound
}

// approvedPlace loads a published place; pending ones do not accept reactions or ratings.
func (s *PlaceService) approvedPlace(ctx context.Context, id string) (*models.AbandonedPlace, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !place.IsApproved() {
		return nil, apperrors.ErrPlaceNotFound
	}
	return place, nil
}

// Feed lists approved places, newest first, filtered by free text and tag.
func (s *PlaceService) Feed(ctx context.Context, query types.FeedQuery) ([]models.AbandonedPlace, error) {
	places, err := s.placeRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query.Query))
	tag := strings.TrimSpace(query.Tag)

	feed := []models.AbandonedPlace{}
	for _, p := range places {
		if !p.IsApproved() {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if tag != "" && !containsString(p.Tags, tag) {
			continue
		}
		feed = append(feed, p)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return createdAt(feed[i]).After(createdAt(feed[j]))
	})
	return feed, nil
}

// createdAt parses the place timestamp; unparsable values sort last.
func createdAt(p models.AbandonedPlace) time.Time {
	t, err := utils.ParseTimestamp(p.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Pending lists places awaiting moderation, oldest first.
func (s *PlaceService) Pending(ctx context.Context) ([]models.AbandonedPlace, error) {
	if _, err := s.currentAdmin(ctx); err != nil {
		return nil, err
	}
	places, err := s.placeRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	pending := []models.AbandonedPlace{}
	for _, p := range places {
		if p.Status == models.StatusPending {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

// Approve publishes a pending place and rewards its author.
func (s *PlaceService) Approve(ctx context.Context, placeID string) (*models.AbandonedPlace, error) {
	if _, err := s.currentAdmin(ctx); err != nil {
		return nil, err
	}

	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place.IsApproved() {
		return place, nil
	}

	place.Status = models.StatusApproved
	if err := s.placeRepo.Save(ctx, place); err != nil {
		return nil, err
	}
	if _, err := s.gamification.Award(ctx, place.AuthorID, types.ActionUpload); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Ваша заброшка \"%s\" одобрена", place.Title)
	if err := s.notifications.Notify(ctx, place.AuthorID, models.NotificationApproval, message, place.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("place_id", place.ID).Str("author_id", place.AuthorID).Msg("place approved")
	return place, nil
}

// ToggleLike adds or removes the session user's like and clears any dislike.
func (s *PlaceService) ToggleLike(ctx context.Context, placeID string) (*models.AbandonedPlace, bool, error) {
	return s.toggleReaction(ctx, placeID, true)
}

// ToggleDislike adds or removes the session user's dislike and clears any like.
func (s *PlaceService) ToggleDislike(ctx context.Context, placeID string) (*models.AbandonedPlace, bool, error) {
	return s.toggleReaction(ctx, placeID, false)
}

func (s *PlaceService) toggleReaction(ctx context.Context, placeID string, like bool) (*models.AbandonedPlace, bool, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, false, err
	}
	place, err := s.approvedPlace(ctx, placeID)
	if err != nil {
		return nil, false, err
	}

	target, other := &place.Likes, &place.Dislikes
	if !like {
		target, other = &place.Dislikes, &place.Likes
	}

	active := !containsString(*target, user.ID)
	if active {
		*target = append(*target, user.ID)
		*other = removeString(*other, user.ID)
	} else {
		*target = removeString(*target, user.ID)
	}

	// Each user's first like on someone else's place is rewarded once.
	reward := like && active && place.AuthorID != user.ID && !containsString(place.LikeRewards, user.ID)
	if reward {
		place.LikeRewards = append(place.LikeRewards, user.ID)
	}

	if err := s.placeRepo.Save(ctx, place); err != nil {
		return nil, false, err
	}

	if reward {
		if _, err := s.gamification.Award(ctx, place.AuthorID, types.ActionLike); err != nil {
			return nil, false, err
		}
		message := fmt.Sprintf("%s оценил вашу заброшку \"%s\"", user.Nickname, place.Title)
		if err := s.notifications.Notify(ctx, place.AuthorID, models.NotificationLike, message, place.ID); err != nil {
			return nil, false, err
		}
	}
	return place, active, nil
}

// Rate records a pending rating from the session user and rewards the rater.
// Each user rates a published place once.
func (s *PlaceService) Rate(ctx context.Context, placeID string, value int) (*models.Rating, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if value < types.MIN_RATING_VALUE || value > types.MAX_RATING_VALUE {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Оценка должна быть от %d до %d", types.MIN_RATING_VALUE, types.MAX_RATING_VALUE))
	}

	place, err := s.approvedPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	for _, r := range place.Rating {
		if r.UserID == user.ID {
			return nil, apperrors.NewValidationError("Вы уже оценили эту заброшку")
		}
	}

	rating := &models.Rating{
		ID:        s.ids.NewID(),
		Status:    models.StatusPending,
		PlaceID:   place.ID,
		UserID:    user.ID,
		Value:     value,
		CreatedAt: utils.Timestamp(s.clock.Now()),
	}
	if err := s.ratingRepo.Save(ctx, rating); err != nil {
		return nil, err
	}
	place.Rating = append(place.Rating, *rating)
	if err := s.placeRepo.Save(ctx, place); err != nil {
		return nil, err
	}

	if _, err := s.gamification.Award(ctx, user.ID, types.ActionRating); err != nil {
		return nil, err
	}
	return rating, nil
}

// ApproveRating publishes a rating and re-checks the place author's badges.
func (s *PlaceService) ApproveRating(ctx context.Context, ratingID string) (*models.Rating, error) {
	if _, err := s.currentAdmin(ctx); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	if rating.Status == models.StatusApproved {
		return rating, nil
	}
	rating.Status = models.StatusApproved
	if err := s.ratingRepo.Save(ctx, rating); err != nil {
		return nil, err
	}

	place, err := s.placeRepo.GetByID(ctx, rating.PlaceID)
	if err != nil {
		return nil, err
	}
	for i := range place.Rating {
		if place.Rating[i].ID == rating.ID {
			place.Rating[i].Status = models.StatusApproved
		}
	}
	if err := s.placeRepo.Save(ctx, place); err != nil {
		return nil, err
	}

	if _, err := s.gamification.Award(ctx, place.AuthorID, types.ActionRating); err != nil {
		return nil, err
	}

	s.logger.Info().Str("rating_id", rating.ID).Str("place_id", place.ID).Msg("rating approved")
	return rating, nil
}

func (s *PlaceService) currentUser(ctx context.Context) (*models.User, error) {
	user, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *PlaceService) currentAdmin(ctx context.Context) (*models.User, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, apperrors.NewForbiddenError("Только администратор может модерировать")
	}
	return user, nil
}

// normalizeTags trims, drops empties and removes duplicates keeping first occurrence.
func normalizeTags(raw []string) []string {
	tags := []string{}
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" || containsString(tags, t) {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func removeString(list []string, value string) []string {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
