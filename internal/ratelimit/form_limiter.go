package ratelimit

import (
	"context"
	"fmt"
	"strings"

	"github.com/gulfbridge/portal/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPublicForm = "form:%s:ip:%s"

// Form submissions are cheap to accept but expensive to triage, so the
// budget is deliberately small: a short burst, then one every 30 seconds.
const (
	formRate  = 1.0 / 30.0
	formBurst = 5
)

// FormLimiter throttles the public contact, quote and job application
// endpoints per client IP. With no redis configured it lets everything
// through, which keeps local development and tests redis-free.
type FormLimiter struct {
	bucket *TokenBucket
	log    *zap.Logger
}

func NewFormLimiter(cfg config.Config, log *zap.Logger) *FormLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return &FormLimiter{log: log.Named("ratelimit")}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
	})
	return &FormLimiter{
		bucket: NewTokenBucket(client),
		log:    log.Named("ratelimit"),
	}
}

// Allow reports whether one more submission of the named form is accepted
// from clientIP. Redis failures fail open: a broken limiter must not take
// the contact form down with it.
func (l *FormLimiter) Allow(ctx context.Context, form, clientIP string) bool {
	if l == nil || l.bucket == nil {
		return true
	}
	key := fmt.Sprintf(keyPublicForm, form, strings.TrimSpace(clientIP))
	allowed, err := l.bucket.Allow(ctx, key, formRate, formBurst)
	if err != nil {
		l.log.Warn("rate limit check failed, allowing request", zap.Error(err))
		return true
	}
	return allowed
}
