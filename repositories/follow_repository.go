package repositories

import (
	"context"

	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/storage"
)

type FollowRepository struct {
	follows collection[models.Follow]
}

func NewFollowRepository(store storage.Store) *FollowRepository {
	return &FollowRepository{follows: newCollection[models.Follow](store, KeyFollows)}
}

func (r *FollowRepository) All(ctx context.Context) ([]models.Follow, error) {
	return r.follows.load(ctx)
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	follows, err := r.follows.load(ctx)
	if err != nil {
		return false, err
	}
	_, ok := find(follows, func(f models.Follow) bool {
		return f.FollowerID == followerID && f.FollowingID == followingID
	})
	return ok, nil
}

func (r *FollowRepository) Add(ctx context.Context, follow models.Follow) error {
	follows, err := r.follows.load(ctx)
	if err != nil {
		return err
	}
	return r.follows.save(ctx, append(follows, follow))
}

// Remove drops the edge if present.
func (r *FollowRepository) Remove(ctx context.Context, followerID, followingID string) error {
	follows, err := r.follows.load(ctx)
	if err != nil {
		return err
	}
	kept := follows[:0]
	for _, f := range follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			continue
		}
		kept = append(kept, f)
	}
	return r.follows.save(ctx, kept)
}
