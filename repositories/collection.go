package repositories

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/mango-abandoned/api-go/storage"
)

// Storage slot keys. One JSON document per key.
const (
	KeyCurrentUser   = "mango_current_user"
	KeyUsers         = "mango_users"
	KeyPlaces        = "mango_places"
	KeyRatings       = "mango_ratings"
	KeyNotifications = "mango_notifications"
	KeyFollows       = "mango_follows"
)

// collection is a JSON array stored whole under a single key.
type collection[T any] struct {
	store storage.Store
	key   string
}

func newCollection[T any](store storage.Store, key string) collection[T] {
	return collection[T]{store: store, key: key}
}

// load returns the stored items; a missing key is an empty collection.
func (c collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.Wrapf(err, "decode %s", c.key)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode %s", c.key)
	}
	return c.store.Set(ctx, c.key, string(data))
}

// upsert replaces the item with the same id in place or appends it.
func upsert[T any](items []T, item T, id func(T) string) []T {
	for i := range items {
		if id(items[i]) == id(item) {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
