package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"luxehaven_server/config"
	"luxehaven_server/structs"
	"luxehaven_server/structs/tables"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// CacheService provides Redis caching functionality with connection pooling
// and retry logic. It also backs cart persistence: each cart is one JSON
// payload under one key, rewritten in full on every mutation.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:        cfg.Cache.PoolSize,
			MinIdleConns:    cfg.Cache.MinIdleConns,
			MaxIdleConns:    cfg.Cache.MaxIdleConns,
			PoolTimeout:     cfg.Cache.PoolTimeout,
			ConnMaxIdleTime: cfg.Cache.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.Cache.MaxRetries,
			MinRetryBackoff: cfg.Cache.MinRetryBackoff,
			MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (cs *CacheService) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors like key not found
		if !isRetryableCacheError(err) {
			return err
		}

		maxBackoff := 2000 // max 2000ms = 2s
		base := 100        // 100ms base

		backoff := base * (1 << attempt) // exponential
		backoff = min(backoff, maxBackoff)

		// add jitter ±50%
		jitterBytes := make([]byte, 4)
		if _, err := rand.Read(jitterBytes); err != nil {
			// fallback to no jitter if random fails
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24|uint32(jitterBytes[1])<<16|uint32(jitterBytes[2])<<8|uint32(jitterBytes[3])) % (backoff / 2)
		time.Sleep(time.Duration(backoff/2+jitter) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableCacheError determines if an error is worth retrying
func isRetryableCacheError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry on nil results (key not found)
	if err == redis.Nil {
		return false
	}

	// Retry on network/connection errors
	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

// Set sets a key with TTL and automatic retry logic
func (cs *CacheService) Set(key string, value any, ttl time.Duration) error {
	return cs.withRetry(func() error {
		return cs.client.Set(redisCtx, key, value, ttl).Err()
	}, 3)
}

// Get retrieves a key with automatic retry logic. A missing key yields ""
// without error.
func (cs *CacheService) Get(key string) (string, error) {
	var result string

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err == redis.Nil {
			result = ""
			return nil // Don't retry on key not found
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, 3)

	if err != nil {
		return "", err
	}

	return result, nil
}

// Delete removes a key with automatic retry logic
func (cs *CacheService) Delete(key string) error {
	return cs.withRetry(func() error {
		return cs.client.Del(redisCtx, key).Err()
	}, 3)
}

// Ping tests the Redis connection
func (cs *CacheService) Ping() error {
	return cs.withRetry(func() error {
		return cs.client.Ping(redisCtx).Err()
	}, 3)
}

// ============================================================================
// Cart persistence
// ============================================================================

// LoadCart returns the raw persisted cart payload for a token, or nil when no
// cart has been persisted yet.
func (cs *CacheService) LoadCart(ctx context.Context, token string) ([]byte, error) {
	val, err := cs.Get(cartKey(token))
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil
	}
	return []byte(val), nil
}

// SaveCart rewrites the full cart payload for a token
func (cs *CacheService) SaveCart(ctx context.Context, token string, payload []byte) error {
	return cs.Set(cartKey(token), payload, cs.config.Cache.CartTTL)
}

func cartKey(token string) string {
	return fmt.Sprintf("cart:%s", token)
}

// ============================================================================
// Product & trending caches
// ============================================================================

// GetProductByID retrieves a cached product, or nil on cache miss
func (cs *CacheService) GetProductByID(id string, includeImages bool) (*tables.Product, error) {
	return getJSON[tables.Product](cs, productKey(id, includeImages))
}

// SetProductByID caches a product with the configured TTL
func (cs *CacheService) SetProductByID(product *tables.Product, includeImages bool) error {
	if product == nil {
		return nil
	}
	return setJSON(cs, productKey(product.ID.String(), includeImages), product, cs.config.Cache.ProductTTL)
}

// GetTrendingList retrieves the cached active trending list, or nil on miss
func (cs *CacheService) GetTrendingList() ([]tables.TrendingPerfume, error) {
	entries, err := getJSON[[]tables.TrendingPerfume](cs, "trending:active")
	if err != nil || entries == nil {
		return nil, err
	}
	return *entries, nil
}

// SetTrendingList caches the active trending list
func (cs *CacheService) SetTrendingList(entries []tables.TrendingPerfume) error {
	return setJSON(cs, "trending:active", entries, cs.config.Cache.TrendingTTL)
}

// InvalidateTrendingCache drops the cached trending list after an admin mutation
func (cs *CacheService) InvalidateTrendingCache() error {
	return cs.Delete("trending:active")
}

// InvalidateProductCaches drops both cached shapes of a product
func (cs *CacheService) InvalidateProductCaches(productID uuid.UUID) error {
	id := productID.String()
	if err := cs.Delete(productKey(id, true)); err != nil {
		return err
	}
	return cs.Delete(productKey(id, false))
}

func productKey(id string, includeImages bool) string {
	if includeImages {
		return fmt.Sprintf("product:%s:images", id)
	}
	return fmt.Sprintf("product:%s", id)
}

// ============================================================================
// Rate limiting
// ============================================================================

// IncrementRateLimit atomically increments a rate limit counter
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, ttl time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	var result int64
	err := cs.withRetry(func() error {
		val, err := cs.client.Incr(redisCtx, key).Result()
		if err != nil {
			return err
		}
		result = val

		// Set expiration only on first increment
		if val == 1 {
			return cs.client.Expire(redisCtx, key, ttl).Err()
		}

		return nil
	}, 3)

	return int(result), err
}

// GetRateLimit retrieves the current rate limit count for an IP/endpoint
func (cs *CacheService) GetRateLimit(ip, endpoint string) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)
	val, err := cs.Get(key)
	if err != nil {
		return 0, err
	}

	if val == "" {
		return 0, nil
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid rate limit value: %w", err)
	}

	return count, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func setJSON[T any](cs *CacheService, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.Set(key, data, ttl)
}

func getJSON[T any](cs *CacheService, key string) (*T, error) {
	val, err := cs.Get(key)
	if err != nil {
		return nil, err
	}

	if val == "" {
		return nil, nil // not found in cache
	}

	var result T
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, err
	}

	return &result, nil
}
