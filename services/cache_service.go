package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"giftingstudio_server/config"
	"giftingstudio_server/structs"
	"giftingstudio_server/structs/tables"
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

// CacheService provides Redis caching functionality with connection pooling and retry logic
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

		// Don't retry on the last attempt
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
		_, err = rand.Read(jitterBytes)
		if err != nil {
			// fallback to no jitter if random fails
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))
		jitter = jitter % (backoff/2 + 1)
		backoffWithJitter := backoff/2 + jitter

		time.Sleep(time.Duration(backoffWithJitter) * time.Millisecond)
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

// Get retrieves a key with automatic retry logic. Missing keys return ""
// without an error.
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

// DeleteByPattern removes all keys matching a glob pattern
func (cs *CacheService) DeleteByPattern(pattern string) error {
	return cs.withRetry(func() error {
		iter := cs.client.Scan(redisCtx, 0, pattern, 0).Iterator()
		for iter.Next(redisCtx) {
			if err := cs.client.Del(redisCtx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		return iter.Err()
	}, 3)
}

// ClearAll flushes the whole cache database. Debug use only.
func (cs *CacheService) ClearAll() error {
	return cs.withRetry(func() error {
		return cs.client.FlushDB(redisCtx).Err()
	}, 3)
}

// Exists checks if a key exists with automatic retry logic
func (cs *CacheService) Exists(key string) (bool, error) {
	var result bool

	err := cs.withRetry(func() error {
		count, err := cs.client.Exists(redisCtx, key).Result()
		if err != nil {
			return err
		}
		result = count > 0
		return nil
	}, 3)

	return result, err
}

// BlacklistToken adds a token's jti to the blacklist with expiration
func (cs *CacheService) BlacklistToken(jti uuid.UUID, exp time.Time) error {
	ttl := cs.config.Auth.AccessTokenExpiry
	if exp.After(time.Now()) {
		ttl = time.Until(exp)
	}

	key := fmt.Sprintf("blacklist:%s", jti)
	return cs.Set(key, "true", ttl)
}

// IsTokenBlacklisted checks if a JTI exists in Redis
func (cs *CacheService) IsTokenBlacklisted(jti uuid.UUID) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", jti.String())
	val, err := cs.Get(key)
	if err != nil {
		return false, err
	}

	return val == "true", nil
}

// GetUserFromCache retrieves a user object from cache using userID
func (cs *CacheService) GetUserFromCache(userID uuid.UUID) (*tables.User, error) {
	key := fmt.Sprintf("user:%s", userID.String())
	val, err := cs.Get(key)
	if err != nil {
		return nil, err
	}

	if val == "" {
		return nil, nil // not found in cache
	}

	user := &tables.User{}
	err = json.Unmarshal([]byte(val), user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SetUserInCache stores a user object in cache with TTL
func (cs *CacheService) SetUserInCache(user *tables.User) error {
	if user == nil {
		// Nothing to cache
		return nil
	}
	key := fmt.Sprintf("user:%s", user.Id.String())
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return cs.Set(key, data, cs.config.Cache.ProductTTL)
}

// DeleteUserFromCache removes a user object from cache
func (cs *CacheService) DeleteUserFromCache(userID uuid.UUID) error {
	key := fmt.Sprintf("user:%s", userID.String())
	return cs.Delete(key)
}

// StoreVerificationCode stores the argon2 hash of a login code for an
// identity, resetting the attempt counter. TTL bounds the code lifetime.
func (cs *CacheService) StoreVerificationCode(identity, codeHash string) error {
	ttl := cs.config.Auth.OTPExpiry

	if err := cs.Set(fmt.Sprintf("otp:%s", identity), codeHash, ttl); err != nil {
		return err
	}
	return cs.Set(fmt.Sprintf("otp_attempts:%s", identity), 0, ttl)
}

// GetVerificationCode retrieves the stored code hash for an identity,
// "" if no code is pending
func (cs *CacheService) GetVerificationCode(identity string) (string, error) {
	return cs.Get(fmt.Sprintf("otp:%s", identity))
}

// IncrementVerificationAttempts bumps the failed-attempt counter for an
// identity and returns the new count
func (cs *CacheService) IncrementVerificationAttempts(identity string) (int, error) {
	key := fmt.Sprintf("otp_attempts:%s", identity)

	var result int64
	err := cs.withRetry(func() error {
		val, err := cs.client.Incr(redisCtx, key).Result()
		if err != nil {
			return err
		}
		result = val

		// Counter should not outlive the code itself
		if val == 1 {
			return cs.client.Expire(redisCtx, key, cs.config.Auth.OTPExpiry).Err()
		}

		return nil
	}, 3)

	return int(result), err
}

// ClearVerificationCode removes a pending code and its attempt counter
func (cs *CacheService) ClearVerificationCode(identity string) error {
	if err := cs.Delete(fmt.Sprintf("otp:%s", identity)); err != nil {
		return err
	}
	return cs.Delete(fmt.Sprintf("otp_attempts:%s", identity))
}

// GetProductListFromCache retrieves a cached product listing by cache key
func (cs *CacheService) GetProductListFromCache(cacheKey string) ([]tables.Product, error) {
	val, err := cs.Get(fmt.Sprintf("products:%s", cacheKey))
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil
	}

	var products []tables.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SetProductListInCache stores a product listing with the configured TTL
func (cs *CacheService) SetProductListInCache(cacheKey string, products []tables.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return cs.Set(fmt.Sprintf("products:%s", cacheKey), data, cs.config.Cache.ProductTTL)
}

// InvalidateProductCache drops all cached product listings. Called after
// any admin catalog mutation.
func (cs *CacheService) InvalidateProductCache() error {
	return cs.DeleteByPattern("products:*")
}

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

// Ping tests the Redis connection
func (cs *CacheService) Ping() error {
	return cs.withRetry(func() error {
		return cs.client.Ping(redisCtx).Err()
	}, 3)
}

// GetConnectionStats returns Redis connection pool statistics
func (cs *CacheService) GetConnectionStats() map[string]any {
	stats := cs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
