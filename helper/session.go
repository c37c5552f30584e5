package helper

import (
	"cinema_booking/config"
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sessions live in redis with a sliding inactivity TTL: every authenticated
// request pushes the expiry forward, idle sessions simply vanish. Admin
// sessions are exempt from the inactivity logout.
var SessionStore *redis.Client

func InitSessionStore() {
	SessionStore = redis.NewClient(&redis.Options{
		Addr:     config.Config("REDIS_ADDR"),
		Password: config.Config("REDIS_PASSWORD"),
	})
	if err := SessionStore.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable: %v", err)
	}
}

func sessionTTL() time.Duration {
	minutes, err := strconv.Atoi(config.Config("SESSION_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

func sessionKey(accountID uint, sessionID string) string {
	return fmt.Sprintf("session:%d:%s", accountID, sessionID)
}

func CreateSession(ctx context.Context, accountID uint, sessionID string) error {
	return SessionStore.Set(ctx, sessionKey(accountID, sessionID), 1, sessionTTL()).Err()
}

// TouchSession extends a live session and reports whether it still exists.
func TouchSession(ctx context.Context, accountID uint, sessionID string) (bool, error) {
	return SessionStore.Expire(ctx, sessionKey(accountID, sessionID), sessionTTL()).Result()
}

func DeleteSession(ctx context.Context, accountID uint, sessionID string) error {
	return SessionStore.Del(ctx, sessionKey(accountID, sessionID)).Err()
}
