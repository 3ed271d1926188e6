package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/staffhub/admin-api/internal/core/domain"
)

const principalTTL = 30 * time.Second

// PrincipalSource resolves a user id to its principal. Satisfied by the
// Postgres user repository.
type PrincipalSource interface {
	FindPrincipal(ctx context.Context, userID int64) (*domain.Principal, error)
}

// PrincipalCache keeps resolved principals (user plus roles) for a short
// window so the authorization middleware does not hit Postgres on every
// request. Key format: principal:<user_id>
type PrincipalCache struct {
	client *redis.Client
	next   PrincipalSource
}

// NewPrincipalCache wraps a principal source with a read-through cache.
func NewPrincipalCache(client *redis.Client, next PrincipalSource) *PrincipalCache {
	return &PrincipalCache{client: client, next: next}
}

// FindPrincipal returns the cached principal if present, otherwise loads
// it from the underlying repository and caches the result. Cache errors
// other than a miss fall through to the repository.
func (c *PrincipalCache) FindPrincipal(ctx context.Context, userID int64) (*domain.Principal, error) {
	key := c.key(userID)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var principal domain.Principal
		if err := json.Unmarshal(payload, &principal); err == nil {
			return &principal, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// A degraded cache must not take authorization down with it.
		return c.next.FindPrincipal(ctx, userID)
	}

	principal, err := c.next.FindPrincipal(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(principal); err == nil {
		_ = c.client.Set(ctx, key, payload, principalTTL).Err()
	}
	return principal, nil
}

// Invalidate drops the cached entry, forcing the next lookup to hit the
// repository. Called when a user's enabled flag changes.
func (c *PrincipalCache) Invalidate(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate principal: %w", err)
	}
	return nil
}

func (c *PrincipalCache) key(userID int64) string {
	return fmt.Sprintf("principal:%d", userID)
}
