package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/storage"
	"github.com/mango-abandoned/api-go/types"
	"github.com/mango-abandoned/api-go/utils"
)

func newTestRepositories(t *testing.T) (*Repositories, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	clock := &utils.FixedClock{T: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return NewRepositories(store, clock), store
}

func TestUsersSeedAdminOnFirstRead(t *testing.T) {
	repos, store := newTestRepositories(t)
	ctx := context.Background()

	users, err := repos.UserRepository.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	admin := users[0]
	assert.Equal(t, AdminID, admin.ID)
	assert.Equal(t, AdminEmail, admin.Email)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, AdminXP, admin.XP)
	assert.Equal(t, types.CalculateLevel(AdminXP), admin.Level)
	assert.Len(t, admin.Badges, len(types.GetBadgeRules()))
	assert.Equal(t, "2024-05-01T12:00:00.000Z", admin.CreatedAt)

	// the seed is persisted, and a second read does not add another admin
	_, err = store.Get(ctx, KeyUsers)
	require.NoError(t, err)
	users, err = repos.UserRepository.All(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUsersSeedAdminWhenMissingFromExistingList(t *testing.T) {
	repos, store := newTestRepositories(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyUsers, `[{"id":"u1","email":"a@b.c","nickname":"a","avatar":"x","level":1,"xp":0,"badges":[],"createdAt":"2024-01-01T00:00:00.000Z"}]`))

	users, err := repos.UserRepository.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, AdminID, users[1].ID)
}

func TestUserSaveUpsertsInPlace(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	first := &models.User{ID: "u1", Email: "one@example.com", Nickname: "one", Level: 1}
	second := &models.User{ID: "u2", Email: "two@example.com", Nickname: "two", Level: 1}
	require.NoError(t, repos.UserRepository.Save(ctx, first))
	require.NoError(t, repos.UserRepository.Save(ctx, second))

	first.XP = 300
	require.NoError(t, repos.UserRepository.Save(ctx, first))

	users, err := repos.UserRepository.All(ctx)
	require.NoError(t, err)
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	assert.Equal(t, []string{AdminID, "u1", "u2"}, ids)
	assert.Equal(t, 300, users[1].XP)
	assert.NotNil(t, users[1].Badges)
}

func TestUserSaveRefreshesSession(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	user := &models.User{ID: "u1", Email: "one@example.com", Nickname: "one", Level: 1, Badges: []models.Badge{}}
	require.NoError(t, repos.UserRepository.Save(ctx, user))
	require.NoError(t, repos.SessionRepository.Set(ctx, user))

	user.XP = 105
	require.NoError(t, repos.UserRepository.Save(ctx, user))

	current, err := repos.SessionRepository.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 105, current.XP)

	// another user's save leaves the session alone
	other := &models.User{ID: "u2", Email: "two@example.com", XP: 7, Badges: []models.Badge{}}
	require.NoError(t, repos.UserRepository.Save(ctx, other))
	current, err = repos.SessionRepository.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", current.ID)
}

func TestUserLookups(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	require.NoError(t, repos.UserRepository.Save(ctx, &models.User{ID: "u1", Email: "one@example.com"}))

	byEmail, err := repos.UserRepository.GetByEmail(ctx, "one@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	admin, err := repos.UserRepository.GetAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, AdminID, admin.ID)

	_, err = repos.UserRepository.GetByID(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	exists, err := repos.UserRepository.EmailExists(ctx, "one@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repos.UserRepository.EmailExists(ctx, "none@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSessionRoundTrip(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	current, err := repos.SessionRepository.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user := &models.User{
		ID:        "u1",
		Email:     "one@example.com",
		Nickname:  "one",
		Avatar:    DefaultAvatar,
		Level:     2,
		XP:        1000,
		Badges:    []models.Badge{types.GetBadges()[0]},
		CreatedAt: "2024-05-01T12:00:00.000Z",
	}
	require.NoError(t, repos.SessionRepository.Set(ctx, user))

	current, err = repos.SessionRepository.Current(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(user, current); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}

	// the session is a copy
	current.XP = 0
	again, err := repos.SessionRepository.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1000, again.XP)

	require.NoError(t, repos.SessionRepository.Set(ctx, nil))
	current, err = repos.SessionRepository.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestMalformedCollectionIsAnError(t *testing.T) {
	repos, store := newTestRepositories(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyPlaces, `{not json`))

	_, err := repos.PlaceRepository.All(ctx)
	assert.Error(t, err)
}

func TestPlaceRepository(t *testing.T) {
	repos, store := newTestRepositories(t)
	ctx := context.Background()

	places, err := repos.PlaceRepository.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, places)

	place := &models.AbandonedPlace{ID: "p1", Title: "Завод", AuthorID: "u1", Status: models.StatusPending}
	require.NoError(t, repos.PlaceRepository.Save(ctx, place))
	require.NoError(t, repos.PlaceRepository.Save(ctx, &models.AbandonedPlace{ID: "p2", AuthorID: "u2"}))

	place.Status = models.StatusApproved
	require.NoError(t, repos.PlaceRepository.Save(ctx, place))

	got, err := repos.PlaceRepository.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, got.IsApproved())
	assert.Equal(t, []string{}, got.Likes)

	owned, err := repos.PlaceRepository.ByAuthor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, owned, 1)

	_, err = repos.PlaceRepository.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrPlaceNotFound)

	raw, err := store.Get(ctx, KeyPlaces)
	require.NoError(t, err)
	assert.Contains(t, raw, `"likes":[]`)
}

func TestRatingRepository(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	rating := &models.Rating{ID: "r1", PlaceID: "p1", UserID: "u1", Value: 4, Status: models.StatusPending}
	require.NoError(t, repos.RatingRepository.Save(ctx, rating))
	rating.Status = models.StatusApproved
	require.NoError(t, repos.RatingRepository.Save(ctx, rating))

	all, err := repos.RatingRepository.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusApproved, all[0].Status)

	_, err = repos.RatingRepository.GetByID(ctx, "r2")
	assert.ErrorIs(t, err, apperrors.ErrRatingNotFound)
}

func TestNotificationRepository(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	notifications := repos.NotificationRepository

	require.NoError(t, notifications.Append(ctx, models.Notification{ID: "n1", UserID: "u1", Type: models.NotificationFollow}))
	require.NoError(t, notifications.Append(ctx, models.Notification{ID: "n2", UserID: "u2", Type: models.NotificationFollow}))
	require.NoError(t, notifications.Append(ctx, models.Notification{ID: "n3", UserID: "u1", Type: models.NotificationApproval}))

	mine, err := notifications.ForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "n1", mine[0].ID)
	assert.Equal(t, "n3", mine[1].ID)

	found, err := notifications.MarkRead(ctx, "n3")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = notifications.MarkRead(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	all, err := notifications.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.True(t, all[2].Read)
	assert.False(t, all[0].Read)
}

func TestFollowRepository(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	follows := repos.FollowRepository

	require.NoError(t, follows.Add(ctx, models.Follow{FollowerID: "a", FollowingID: "b"}))
	require.NoError(t, follows.Add(ctx, models.Follow{FollowerID: "b", FollowingID: "a"}))

	exists, err := follows.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, follows.Remove(ctx, "a", "b"))
	exists, err = follows.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, exists)

	all, err := follows.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Follow{{FollowerID: "b", FollowingID: "a"}}, all)
}
