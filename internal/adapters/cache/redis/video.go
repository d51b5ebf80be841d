package redis

import (
	"clipshare/internal/core/domain"
	"clipshare/internal/core/port"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	// VideoListKey prefixes the JSON encoded gallery list, one entry per generation
	VideoListKey = "videos:list"
	// VideoListGenerationKey is bumped on every Create
	VideoListGenerationKey = "videos:list:generation"
)

// VideoListKeyFor returns the list key for a generation
func VideoListKeyFor(generation int64) string {
	return VideoListKey + ":" + strconv.FormatInt(generation, 10)
}

// VideoRepository wraps a port.VideoRepository with a read-through cache on List.
// Entries are keyed by a generation counter so a List racing a Create can only
// populate a generation that readers have already moved past.
// Redis failures are logged and fall through to the wrapped repository.
type VideoRepository struct {
	next   port.VideoRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewVideoRepository returns VideoRepository
func NewVideoRepository(next port.VideoRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *VideoRepository {
	return &VideoRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Create stores the video and moves the cache to a new generation
func (r *VideoRepository) Create(ctx context.Context, video domain.Video) (uuid.UUID, error) {
	id, err := r.next.Create(ctx, video)
	if err != nil {
		return id, err
	}
	if err := r.client.Incr(ctx, VideoListGenerationKey).Err(); err != nil {
		r.logger.Warn("failed to invalidate video list cache", "error", err)
	}
	return id, nil
}

// List serves the cached list of the current generation when present
func (r *VideoRepository) List(ctx context.Context) ([]domain.Video, error) {
	generation, err := r.client.Get(ctx, VideoListGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.logger.Warn("video list cache unavailable", "error", err)
		return r.next.List(ctx)
	}
	key := VideoListKeyFor(generation)

	cached, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var videos []domain.Video
		if err := json.Unmarshal(cached, &videos); err == nil {
			return videos, nil
		}
		r.logger.Warn("discarding undecodable video list cache entry")
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("video list cache unavailable", "error", err)
	}

	videos, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(videos)
	if err != nil {
		return videos, nil
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("failed to cache video list", "error", err)
	}
	return videos, nil
}

// FindByPublicID is not cached
func (r *VideoRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.Video, error) {
	return r.next.FindByPublicID(ctx, publicID)
}
