package repositories

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/storage"
)

// SessionRepository holds a copy of the logged in user.
type SessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Current returns the session user, or nil when nobody is logged in.
func (r *SessionRepository) Current(ctx context.Context) (*models.User, error) {
	raw, err := r.store.Get(ctx, KeyCurrentUser)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	return &user, nil
}

// Set replaces the session user; nil logs out.
func (r *SessionRepository) Set(ctx context.Context, user *models.User) error {
	if user == nil {
		return r.store.Delete(ctx, KeyCurrentUser)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	return r.store.Set(ctx, KeyCurrentUser, string(data))
}
