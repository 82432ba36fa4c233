package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/commercegate/paylink-console-service/internal/entities"
	"github.com/commercegate/paylink-console-service/internal/logging"
	"github.com/commercegate/paylink-console-service/internal/repository/cache"
)

var _ cache.Store = (*redisStore)(nil)

const (
	pageVersionKey = "paylinks:lists:version"
	pageKeyFormat  = "paylinks:lists:v%d:%s"
	linkKeyFormat  = "paylinks:link:%s"
)

// redisStore keeps one key per cached list and per cached link. List
// invalidation bumps a namespace version instead of scanning for keys,
// stale entries simply age out via their TTL.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(redisURL string, ttl time.Duration) (cache.Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

func (s *redisStore) pageVersion(ctx context.Context) int64 {
	version, err := s.client.Get(ctx, pageVersionKey).Int64()
	if err != nil {
		// missing key or connection trouble both mean version 0, a
		// broken connection degrades to cache misses
		return 0
	}

	return version
}

func (s *redisStore) GetPage(ctx context.Context, key string) (*entities.LinkPage, bool) {
	redisKey := fmt.Sprintf(pageKeyFormat, s.pageVersion(ctx), key)

	data, err := s.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		return nil, false
	}

	page := &entities.LinkPage{}
	if err := json.Unmarshal(data, page); err != nil {
		logging.LoggerFromContext(ctx).Warn("discarding unreadable cache entry %s: %v", redisKey, err)
		return nil, false
	}

	return page, true
}

func (s *redisStore) SetPage(ctx context.Context, key string, page *entities.LinkPage) {
	data, err := json.Marshal(page)
	if err != nil {
		logging.LoggerFromContext(ctx).Warn("could not marshal page for cache key %s: %v", key, err)
		return
	}

	redisKey := fmt.Sprintf(pageKeyFormat, s.pageVersion(ctx), key)
	if err := s.client.Set(ctx, redisKey, data, s.ttl).Err(); err != nil {
		logging.LoggerFromContext(ctx).Warn("could not write cache entry %s: %v", redisKey, err)
	}
}

func (s *redisStore) GetLink(ctx context.Context, id string) (*entities.PaymentLink, bool) {
	data, err := s.client.Get(ctx, fmt.Sprintf(linkKeyFormat, id)).Bytes()
	if err != nil {
		return nil, false
	}

	link := &entities.PaymentLink{}
	if err := json.Unmarshal(data, link); err != nil {
		return nil, false
	}

	return link, true
}

func (s *redisStore) SetLink(ctx context.Context, id string, link *entities.PaymentLink) {
	data, err := json.Marshal(link)
	if err != nil {
		logging.LoggerFromContext(ctx).Warn("could not marshal link %s for cache: %v", id, err)
		return
	}

	if err := s.client.Set(ctx, fmt.Sprintf(linkKeyFormat, id), data, s.ttl).Err(); err != nil {
		logging.LoggerFromContext(ctx).Warn("could not write cache entry for link %s: %v", id, err)
	}
}

func (s *redisStore) InvalidatePages(ctx context.Context) error {
	return s.client.Incr(ctx, pageVersionKey).Err()
}

func (s *redisStore) InvalidateLink(ctx context.Context, id string) error {
	return s.client.Del(ctx, fmt.Sprintf(linkKeyFormat, id)).Err()
}
