package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nutriforge/v1/internal/domain/plan"
	"github.com/nutriforge/v1/internal/infrastructure/config"
	"github.com/nutriforge/v1/internal/infrastructure/monitoring"
	"github.com/nutriforge/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

const (
	keyPrefix        = "nutriforge:plan:"
	minLocalSize     = 16
	storeWriteWindow = 5 * time.Second
)

// inflightCall is one upstream generation shared by every concurrent request
// with the same fingerprint. The call is cancelled only when its waiter count
// drops to zero; any single waiter can leave without affecting the rest.
type inflightCall struct {
	done    chan struct{}
	data    []byte
	err     error
	waiters int
	cancel  context.CancelFunc
}

// GenerationCache implements outbound.GenerationCache with a local LRU in
// front of the Redis store and per-fingerprint request coalescing. Only
// validated successes are cached; any error leaves the cache untouched so the
// next identical request retries from scratch.
type GenerationCache struct {
	store      outbound.CacheRepository
	local      *lru.Cache[string, []byte]
	ttl        time.Duration
	genTimeout time.Duration
	metrics    *monitoring.Metrics
	logger     *zap.Logger

	mu       sync.Mutex
	inflight map[plan.Fingerprint]*inflightCall
}

// NewGenerationCache creates the generation cache. genTimeout bounds a single
// upstream generation independently of any one waiter's request deadline.
func NewGenerationCache(
	store outbound.CacheRepository,
	cfg config.CacheConfig,
	genTimeout time.Duration,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) (*GenerationCache, error) {
	size := cfg.LocalCacheSize
	if size < minLocalSize {
		size = minLocalSize
	}
	local, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create local cache: %w", err)
	}
	return &GenerationCache{
		store:      store,
		local:      local,
		ttl:        cfg.PlanTTL,
		genTimeout: genTimeout,
		metrics:    metrics,
		logger:     logger.Named("generation-cache"),
		inflight:   make(map[plan.Fingerprint]*inflightCall),
	}, nil
}

// GetOrGenerate returns the cached result for the fingerprint, attaches to an
// in-flight identical generation, or runs generate as the single winner and
// caches its serialized success.
func (c *GenerationCache) GetOrGenerate(ctx context.Context, key plan.Fingerprint, generate func(context.Context) (interface{}, error)) ([]byte, outbound.CacheSource, error) {
	storeKey := keyPrefix + key.String()

	if data, ok := c.local.Get(storeKey); ok {
		c.observe(outbound.SourceLocal)
		return data, outbound.SourceLocal, nil
	}

	if c.store != nil {
		data, err := c.store.Get(ctx, storeKey)
		if err != nil {
			// Store trouble degrades to a miss; the pipeline can still
			// generate.
			c.logger.Warn("Cache store read failed", zap.String("key", storeKey), zap.Error(err))
		} else if data != nil {
			c.local.Add(storeKey, data)
			c.observe(outbound.SourceStore)
			return data, outbound.SourceStore, nil
		}
	}

	c.mu.Lock()
	if call, ok := c.inflight[key]; ok {
		call.waiters++
		c.mu.Unlock()
		c.observe(outbound.SourceCoalesced)
		if c.metrics != nil {
			c.metrics.CoalescedRequests.Inc()
		}
		return c.wait(ctx, key, call, outbound.SourceCoalesced)
	}

	// This request is the winner. The upstream call runs detached from the
	// winner's own context so later waiters are not killed by the winner
	// leaving early; it stops only when every waiter has left or the
	// generation timeout fires.
	genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.genTimeout)
	call := &inflightCall{
		done:    make(chan struct{}),
		waiters: 1,
		cancel:  cancel,
	}
	c.inflight[key] = call
	c.mu.Unlock()
	c.observe(outbound.SourceFresh)

	go c.run(genCtx, key, storeKey, call, generate)

	return c.wait(ctx, key, call, outbound.SourceFresh)
}

// run executes the upstream generation once and publishes the outcome to all
// waiters.
func (c *GenerationCache) run(ctx context.Context, key plan.Fingerprint, storeKey string, call *inflightCall, generate func(context.Context) (interface{}, error)) {
	defer call.cancel()

	value, err := generate(ctx)
	var data []byte
	if err == nil {
		data, err = json.Marshal(value)
	}

	if err == nil {
		c.local.Add(storeKey, data)
		if c.store != nil {
			writeCtx, writeCancel := context.WithTimeout(context.WithoutCancel(ctx), storeWriteWindow)
			if storeErr := c.store.Set(writeCtx, storeKey, data, c.ttl); storeErr != nil {
				c.logger.Warn("Cache store write failed", zap.String("key", storeKey), zap.Error(storeErr))
			}
			writeCancel()
		}
	}

	c.mu.Lock()
	call.data = data
	call.err = err
	delete(c.inflight, key)
	c.mu.Unlock()
	close(call.done)
}

// wait blocks until the shared call finishes or the caller's context ends.
// A departing waiter decrements the count and cancels the upstream call when
// it was the last one interested in the result.
func (c *GenerationCache) wait(ctx context.Context, key plan.Fingerprint, call *inflightCall, source outbound.CacheSource) ([]byte, outbound.CacheSource, error) {
	select {
	case <-call.done:
		return call.data, source, call.err
	case <-ctx.Done():
		c.mu.Lock()
		call.waiters--
		last := call.waiters == 0
		c.mu.Unlock()
		if last {
			call.cancel()
		}
		return nil, source, ctx.Err()
	}
}

func (c *GenerationCache) observe(source outbound.CacheSource) {
	if c.metrics != nil {
		c.metrics.CacheRequests.WithLabelValues(string(source)).Inc()
	}
}

var _ outbound.GenerationCache = (*GenerationCache)(nil)
