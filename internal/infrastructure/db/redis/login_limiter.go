package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultLockoutWindow = 15 * time.Minute

// recordFailureScript increments the counter and sets the window TTL in one
// atomic step. A key that somehow lost its TTL gets one again.
var recordFailureScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// LoginLimiter counts failed logins per email in a fixed window.
// Key format: login:fail:<email>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter that blocks an email after maxAttempts
// failures within window.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if window <= 0 {
		window = defaultLockoutWindow
	}
	return &LoginLimiter{client: client, maxAttempts: int64(maxAttempts), window: window}
}

// Blocked reports whether the failure budget for email is spent.
func (l *LoginLimiter) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter get: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// RecordFailure increments the counter. The window starts at the first failure.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	err := recordFailureScript.Run(ctx, l.client, []string{l.key(email)}, l.window.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("login limiter record: %w", err)
	}
	return nil
}

// Reset forgets all failures for email.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("login:fail:%s", email)
}
