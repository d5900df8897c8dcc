package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "athlos-session||"

// DefaultTTL is the max accepted session age; sessions older than this
// are treated as logged out even if redis still holds them.
const DefaultTTL = 24 * time.Hour

var ErrNotLoggedIn = errors.New("not logged in")

type storedSession struct {
	Caller    Caller `json:"caller"`
	CreatedAt int64  `json:"createdAt"`
}

// ScopeChecker resolves a session token to the Caller it belongs to.
// Sessions are written to redis by the identity service; this side
// only reads them.
type ScopeChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewScopeChecker(ttl time.Duration, redisClient *redis.Client) *ScopeChecker {
	return &ScopeChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (sc *ScopeChecker) GetCaller(ctx context.Context, token string) (Caller, error) {
	if token == "" {
		return Caller{}, ErrNotLoggedIn
	}

	cmd := sc.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return Caller{}, ErrNotLoggedIn
		}
		return Caller{}, fmt.Errorf("get session: %w", err)
	}

	var session storedSession
	if err := json.Unmarshal([]byte(cmd.Val()), &session); err != nil {
		return Caller{}, fmt.Errorf("decode session: %w", err)
	}

	createdAt := time.Unix(session.CreatedAt, 0)
	if time.Since(createdAt) > sc.ttl {
		return Caller{}, ErrNotLoggedIn
	}

	if !session.Caller.Valid() {
		return Caller{}, ErrNotLoggedIn
	}

	return session.Caller, nil
}
