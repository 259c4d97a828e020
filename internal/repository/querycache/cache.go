// Package querycache is an optional read-through cache in front of the
// retrieval engine. It stores whole query responses keyed by query text and
// filters; the engine itself stays stateless and is never mutated.
package querycache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/execai/kbase/internal/domain"
)

const keyPrefix = "kbase:query_cache:"

var errCacheMiss = errors.New("cache miss")

// Querier is the wrapped retrieval contract.
type Querier interface {
	Query(ctx context.Context, req domain.QueryRequest) (domain.QueryResponse, error)
}

// kv is the consumer interface over the backing store.
type kv interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
}

// Cache decorates a Querier with a TTL response cache.
// Metadata timestamps are stamped at serve time, so a hit reports when it
// was served rather than when the scored response was first computed.
type Cache struct {
	inner      Querier
	store      kv
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner Querier,
	store kv,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cache {
	return &Cache{
		inner:      inner,
		store:      store,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Query returns a cached response or delegates to the inner querier.
// Store failures are logged and degrade to a pass-through, never an error.
func (c *Cache) Query(ctx context.Context, req domain.QueryRequest) (domain.QueryResponse, error) {
	key := cacheKey(req)

	if resp, err := c.getFromCache(ctx, key); err == nil {
		c.incCache("hit")
		resp.Metadata.Timestamp = time.Now().UTC()
		return resp, nil
	}

	c.incCache("miss")

	resp, err := c.inner.Query(ctx, req)
	if err != nil {
		return domain.QueryResponse{}, err
	}

	c.putToCache(ctx, key, resp)
	return resp, nil
}

// Ping checks backing store availability. Used by health checks.
func (c *Cache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

func (c *Cache) getFromCache(ctx context.Context, key string) (domain.QueryResponse, error) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, errCacheMiss) {
			c.logger.Warn("Failed to get cached response", zap.String("key", key), zap.Error(err))
		}
		return domain.QueryResponse{}, errCacheMiss
	}

	var resp domain.QueryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("Failed to decode cached response", zap.String("key", key), zap.Error(err))
		return domain.QueryResponse{}, errCacheMiss
	}
	return resp, nil
}

func (c *Cache) putToCache(ctx context.Context, key string, resp domain.QueryResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("Failed to encode response for cache", zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache response", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the query and both filters. Filters are sorted first so
// semantically equal requests share an entry regardless of argument order.
func cacheKey(req domain.QueryRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Query()))
	h.Write([]byte{0})
	h.Write([]byte(sortedJoin(req.Domains())))
	h.Write([]byte{0})
	h.Write([]byte(sortedJoin(req.Capabilities())))
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

func sortedJoin(values []string) string {
	if len(values) == 0 {
		return ""
	}
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
