package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitchallenge-session||"
	tokensSetKey     = "fitchallenge-sessions"

	fieldUserID    = "user_id"
	fieldCreatedAt = "created_at"
)

// SessionChecker reads sessions written to redis by the login service.
// A session is a hash with the user id and the unix time it was created at.
type SessionChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewSessionChecker(ttl time.Duration, redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (sc *SessionChecker) UserID(ctx context.Context, token string) (int, error) {
	fields, err := sc.redisClient.HGetAll(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, fmt.Errorf("get session: %w", err)
	}
	if len(fields) == 0 {
		return 0, ErrSessionNotFound
	}

	userID, err := strconv.Atoi(fields[fieldUserID])
	if err != nil || userID <= 0 {
		log.Warnf("session with invalid user id [%s]", fields[fieldUserID])
		return 0, ErrSessionNotFound
	}

	createdAtUnix, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse session created at: %w", err)
	}

	if time.Since(time.Unix(createdAtUnix, 0)) > sc.ttl {
		return 0, ErrSessionExpired
	}

	return userID, nil
}

// SessionStore writes sessions in the format SessionChecker reads. Used by tooling
// and tests; user logins are handled by the auth service.
type SessionStore struct {
	redisClient *redis.Client
}

func NewSessionStore(redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		redisClient: redisClient,
	}
}

func (ss *SessionStore) Put(ctx context.Context, token string, userID int, createdAt time.Time) error {
	sessionKey := sessionKeyPrefix + token
	if err := ss.redisClient.HSet(ctx, sessionKey,
		fieldUserID, strconv.Itoa(userID),
		fieldCreatedAt, strconv.FormatInt(createdAt.Unix(), 10),
	).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}

	if err := ss.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("add session token: %w", err)
	}

	return nil
}

func (ss *SessionStore) Delete(ctx context.Context, token string) (bool, error) {
	deleted, err := ss.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}

	if err := ss.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, fmt.Errorf("remove session token: %w", err)
	}

	return deleted > 0, nil
}
