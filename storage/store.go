// Package storage is the durable string-keyed store every repository persists through.
package storage

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get when the key was never written or was deleted.
var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
