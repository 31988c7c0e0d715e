package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mango-abandoned/api-go/config"
)

// runStoreSuite checks the contract every backend must honor.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Get(ctx, "mango_users")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Set(ctx, "mango_places", `[{"id":"p1"}]`))
		value, err := store.Get(ctx, "mango_places")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"p1"}]`, value)
	})

	t.Run("overwrite", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Set(ctx, "mango_follows", `[]`))
		require.NoError(t, store.Set(ctx, "mango_follows", `[{"followerId":"a","followingId":"b"}]`))
		value, err := store.Get(ctx, "mango_follows")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"followerId":"a","followingId":"b"}]`, value)
	})

	t.Run("delete", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Set(ctx, "mango_current_user", `{"id":"u1"}`))
		require.NoError(t, store.Delete(ctx, "mango_current_user"))
		_, err := store.Get(ctx, "mango_current_user")
		assert.ErrorIs(t, err, ErrNotFound)

		// deleting twice is fine
		require.NoError(t, store.Delete(ctx, "mango_current_user"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Set(ctx, "mango_ratings", `[1]`))
		require.NoError(t, store.Set(ctx, "mango_notifications", `[2]`))
		value, err := store.Get(ctx, "mango_ratings")
		require.NoError(t, err)
		assert.JSONEq(t, `[1]`, value)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestGormStoreSQLite(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		path := filepath.Join(t.TempDir(), "slots.db")
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		require.NoError(t, err)

		store, err := NewGormStore(db)
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		return store
	})
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	runStoreSuite(t, func(t *testing.T) Store {
		client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
		require.NoError(t, client.FlushDB(context.Background()).Err())
		store := NewRedisStore(client)
		require.NoError(t, store.Ping(context.Background()))
		t.Cleanup(func() { store.Close() })
		return store
	})
}

type fakeBucket struct {
	mu      sync.Mutex
	objects map[string]string
	puts    []*s3.PutObjectInput
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{objects: map[string]string{}}
}

func (b *fakeBucket) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	body, ok := b.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (b *fakeBucket) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[aws.ToString(in.Key)] = string(data)
	b.puts = append(b.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func (b *fakeBucket) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestObjectStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		return NewObjectStore(newFakeBucket(), "mango", "catalog/")
	})

	t.Run("object layout", func(t *testing.T) {
		bucket := newFakeBucket()
		store := NewObjectStore(bucket, "mango", "catalog/")
		require.NoError(t, store.Set(context.Background(), "mango_users", `[]`))

		require.Len(t, bucket.puts, 1)
		assert.Equal(t, "mango", aws.ToString(bucket.puts[0].Bucket))
		assert.Equal(t, "catalog/mango_users.json", aws.ToString(bucket.puts[0].Key))
		assert.Equal(t, "application/json", aws.ToString(bucket.puts[0].ContentType))
	})
}

func TestIsMissingObject(t *testing.T) {
	assert.False(t, isMissingObject(nil))
	assert.True(t, isMissingObject(&s3types.NoSuchKey{}))
	assert.False(t, isMissingObject(io.ErrUnexpectedEOF))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Driver = config.DriverMemory
		store, err := Open(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Driver = config.DriverSQLite
		cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "nested", "mango.db")
		store, err := Open(ctx, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		assert.IsType(t, &GormStore{}, store)

		require.NoError(t, store.Set(ctx, "mango_users", `[]`))
		value, err := store.Get(ctx, "mango_users")
		require.NoError(t, err)
		assert.Equal(t, `[]`, value)
	})

	t.Run("r2", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Driver = config.DriverR2
		cfg.R2.AccountID = "acc"
		cfg.R2.BucketName = "mango"
		cfg.R2.Region = "auto"
		store, err := Open(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &ObjectStore{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Driver = "localstorage"
		_, err := Open(ctx, cfg)
		assert.Error(t, err)
	})
}
