package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"

	"github.com/drgilson/gascrm-backend/pkg/config"
	redisclient "github.com/drgilson/gascrm-backend/pkg/redis"
)

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(sessionID string) string
}

// Manager owns the server-side half of a session: a Redis record mapping the
// cookie's session id to a user id, expiring with the cookie TTL.
type Manager struct {
	store sessionStore
	keyer sessionKeyer
	ttl   time.Duration
}

// Checker exposes the read-only surface needed by middleware.
type Checker interface {
	Lookup(ctx context.Context, sessionID string) (int64, bool, error)
}

// NewManager constructs a session manager backed by Redis.
func NewManager(client *redisclient.Client, cfg config.SessionConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{
		store: client,
		keyer: client,
		ttl:   cfg.TTL,
	}, nil
}

// Create registers a new session for the user and returns its identifier.
func (m *Manager) Create(ctx context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("user id is required")
	}
	sessionID := NewSessionID()
	key := m.keyer.SessionKey(sessionID)
	if err := m.store.Set(ctx, key, strconv.FormatInt(userID, 10), m.ttl); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Lookup resolves a session id to its user id. The second return value is
// false when the session does not exist or has expired.
func (m *Manager) Lookup(ctx context.Context, sessionID string) (int64, bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, false, nil
	}
	value, err := m.store.Get(ctx, m.keyer.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt session record: %w", err)
	}
	return userID, true, nil
}

// Revoke removes the session record. Revoking an absent session is a no-op.
func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return m.store.Del(ctx, m.keyer.SessionKey(sessionID))
}

// NewSessionID produces the identifier used as the token jti and Redis key.
func NewSessionID() string {
	return uuid.NewString()
}
