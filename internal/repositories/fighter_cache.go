package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
)

var (
	// ErrCacheMiss is returned when the requested fighter is not cached.
	ErrCacheMiss = errors.New("fighter not found in cache")
	// ErrCacheStale is returned by Set when the fighter was invalidated after the version was read.
	ErrCacheStale = errors.New("fighter cache version changed")
)

// FighterCacheRepository caches fighters by id in Redis.
//
// Every fighter has a version counter next to its entry. Readers take the version before
// loading the row and Set only stores the row while the version is unchanged, so a row read
// before a committed write can never be cached after that write invalidated the entry.
type FighterCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached entries
}

func NewFighterCacheRepository(client *redis.Client, expiration time.Duration) *FighterCacheRepository {
	return &FighterCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func fighterKey(id int64) string {
	return fmt.Sprintf("fighter:%d", id)
}

// fighterVersionKey has no expiry; an expired counter could hand out an old version again.
func fighterVersionKey(id int64) string {
	return fmt.Sprintf("fighter:%d:version", id)
}

// Get returns the cached fighter or ErrCacheMiss.
func (r *FighterCacheRepository) Get(ctx context.Context, id int64) (*models.FighterDB, error) {
	key := fighterKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.FromContext(ctx).Debugw("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var fighter models.FighterDB
	if err := json.Unmarshal(val, &fighter); err != nil {
		logger.FromContext(ctx).Warnw("cache entry is not a fighter", "key", key, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Debugw("cache hit", "key", key)
	return &fighter, nil
}

// Version returns the current version of fighter id, 0 when it was never invalidated.
func (r *FighterCacheRepository) Version(ctx context.Context, id int64) (int64, error) {
	return readVersion(ctx, r.client, fighterVersionKey(id))
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readVersion(ctx context.Context, c stringGetter, key string) (int64, error) {
	v, err := c.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Set caches f under its id if the fighter is still at version. Otherwise it returns ErrCacheStale.
func (r *FighterCacheRepository) Set(ctx context.Context, f *models.FighterDB, version int64) error {
	key := fighterKey(f.ID)
	versionKey := fighterVersionKey(f.ID)

	data, err := json.Marshal(f)
	if err != nil {
		return err
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx, versionKey)
		if err != nil {
			return err
		}
		if current != version {
			return ErrCacheStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.exp)
			return nil
		})
		return err
	}, versionKey)
	if errors.Is(err, redis.TxFailedErr) {
		err = ErrCacheStale
	}

	logger.FromContext(ctx).Debugw("cache set", "key", key, "version", version, "ttl", r.exp, "error", err)
	return err
}

// Invalidate bumps the version of fighter id and evicts its entry. Invalidating a fighter
// that is not cached is not an error.
func (r *FighterCacheRepository) Invalidate(ctx context.Context, id int64) error {
	key := fighterKey(id)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, fighterVersionKey(id))
		pipe.Del(ctx, key)
		return nil
	})
	logger.FromContext(ctx).Debugw("cache invalidate", "key", key, "error", err)
	return err
}
