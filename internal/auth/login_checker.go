package auth

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// LoginChecker is a thin session lookup used by the auth middleware,
// detached from the full service so that handlers depending on it
// stay easy to fake.
type LoginChecker struct {
	rdb *redis.Client
}

func NewLoginChecker(rdb *redis.Client) *LoginChecker {
	return &LoginChecker{rdb: rdb}
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	found, err := c.rdb.Exists(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return found > 0, nil
}
