package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"coordinator-console/internal/clients/redis"
	"coordinator-console/internal/observability"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service counts attempts per key over a sliding one-minute window.
// Counts live in Redis when it is enabled so every console instance shares them.
type Service struct {
	redis  *redis.Client
	limit  int
	now    func() time.Time
	logger *observability.Logger

	mu    sync.Mutex
	local map[string][]time.Time
	swept time.Time
}

// NewService creates a limiter allowing limit attempts per minute. A nil or
// disabled redis client keeps counts in process memory.
func NewService(redis *redis.Client, limit int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  limit,
		now:    time.Now,
		logger: logger,
		local:  map[string][]time.Time{},
	}
}

// Check records one attempt for key and reports whether it is within the limit.
func (s *Service) Check(ctx context.Context, key string) (RateLimitResult, error) {
	if s.redis.IsEnabled() {
		result, err := s.checkRedis(ctx, key)
		if err != nil {
			s.logger.InfoWithError(ctx, "redis rate limit check failed, falling back to memory", err)
			return s.checkLocal(key), nil
		}
		return result, nil
	}
	return s.checkLocal(key), nil
}

func (s *Service) checkRedis(ctx context.Context, key string) (RateLimitResult, error) {
	client := s.redis.GetClient()
	redisKey := "console:rl:" + key
	now := s.now()
	windowStartMs := now.Add(-window).UnixMilli()

	if err := client.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStartMs, 10)).Err(); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count attempts: %w", err)
	}

	if int(count) >= s.limit {
		oldest, err := client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return s.denied(now, now.Add(window)), nil
		}
		return s.denied(now, time.UnixMilli(int64(oldest[0].Score)).Add(window)), nil
	}

	// Members must be unique for attempts landing in the same millisecond.
	err = client.ZAdd(ctx, redisKey, goredis.Z{
		Score:  float64(now.UnixMilli()),
		Member: uuid.NewString(),
	}).Err()
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to record attempt: %w", err)
	}

	if err := s.redis.Expire(ctx, redisKey, 2*window); err != nil {
		s.logger.InfoWithError(ctx, "failed to set expiration on rate limit key", err)
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}

func (s *Service) checkLocal(key string) RateLimitResult {
	now := s.now()
	windowStart := now.Add(-window)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(now)

	attempts := s.local[key][:0]
	for _, at := range s.local[key] {
		if at.After(windowStart) {
			attempts = append(attempts, at)
		}
	}

	if len(attempts) >= s.limit {
		if len(attempts) == 0 {
			delete(s.local, key)
			return s.denied(now, now.Add(window))
		}
		s.local[key] = attempts
		return s.denied(now, attempts[0].Add(window))
	}

	s.local[key] = append(attempts, now)
	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - len(attempts) - 1,
		ResetAt:   now.Add(window),
	}
}

// sweep drops keys whose latest attempt left the window, at most once per
// window. Callers hold mu.
func (s *Service) sweep(now time.Time) {
	if now.Sub(s.swept) < window {
		return
	}
	windowStart := now.Add(-window)
	for key, attempts := range s.local {
		if len(attempts) == 0 || !attempts[len(attempts)-1].After(windowStart) {
			delete(s.local, key)
		}
	}
	s.swept = now
}

func (s *Service) denied(now, resetAt time.Time) RateLimitResult {
	retryAfter := resetAt.Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return RateLimitResult{
		Allowed:      false,
		Limit:        s.limit,
		Remaining:    0,
		ResetAt:      resetAt,
		RetryAfterMs: int(retryAfter.Milliseconds()),
	}
}
