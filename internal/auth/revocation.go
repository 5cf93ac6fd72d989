package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	revokedPrefix = "revoked:v1:"
	// Even a token that is already past expiry stays blocked briefly, in
	// case of clock skew between the guard and the issuer.
	minRevocationTTL = time.Minute
)

// RevocationList tracks tokens invalidated before their natural expiry.
// Revoke is idempotent; there is no unrevoke.
type RevocationList interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// MemoryRevocationList keeps revoked tokens in process memory. The set is
// insert-only and survives until restart; tokens are short-lived, so the
// growth is bounded in practice.
type MemoryRevocationList struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewMemoryRevocationList builds an in-process revocation list.
func NewMemoryRevocationList() *MemoryRevocationList {
	return &MemoryRevocationList{tokens: make(map[string]struct{})}
}

// Revoke adds the token to the set. Re-revoking is a no-op.
func (l *MemoryRevocationList) Revoke(_ context.Context, token string, _ time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[token] = struct{}{}
	return nil
}

// IsRevoked reports whether the token has been revoked.
func (l *MemoryRevocationList) IsRevoked(_ context.Context, token string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.tokens[token]
	return ok, nil
}

// RedisRevocationList stores revoked tokens in Redis with a TTL equal to the
// token's remaining lifetime, so entries disappear once the token would have
// expired anyway and the set survives process restarts.
type RedisRevocationList struct {
	client *redis.Client
}

// NewRedisRevocationList builds a Redis-backed revocation list.
func NewRedisRevocationList(client *redis.Client) *RedisRevocationList {
	return &RedisRevocationList{client: client}
}

// Revoke marks the token revoked for its remaining lifetime.
func (l *RedisRevocationList) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}
	return l.client.Set(ctx, revokedPrefix+token, "1", ttl).Err()
}

// IsRevoked reports whether the token is present in the revocation set.
func (l *RedisRevocationList) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := l.client.Get(ctx, revokedPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
