package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/floranflowers/floran-api/utils"
)

// SessionTTL is how long an issued session token stays valid
const SessionTTL = 30 * 24 * time.Hour

// ErrSessionNotFound is returned when a token is unknown or expired
var ErrSessionNotFound = errors.New("session not found")

// SessionStore holds opaque session tokens with explicit expiry.
// Sessions survive process restarts when backed by Redis.
type SessionStore interface {
	// Create issues a new token bound to the user's email
	Create(ctx context.Context, email string) (string, error)

	// Lookup resolves a token back to the user's email
	Lookup(ctx context.Context, token string) (string, error)

	// Invalidate removes a token
	Invalidate(ctx context.Context, token string) error
}

var sessionStoreInstance SessionStore

// GetSessionStore returns the initialized session store instance
func GetSessionStore() SessionStore {
	return sessionStoreInstance
}

// SetSessionStore sets the session store instance (primarily for testing)
func SetSessionStore(store SessionStore) {
	sessionStoreInstance = store
}

// RedisSessionStore keeps sessions in Redis with a TTL per token
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore connects to Redis using a redis:// URL
func NewRedisSessionStore(redisURL string) (*RedisSessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &RedisSessionStore{client: redis.NewClient(opts)}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create issues a new token and stores it with the session TTL
func (s *RedisSessionStore) Create(ctx context.Context, email string) (string, error) {
	token := utils.GenerateSessionToken()
	if err := s.client.Set(ctx, sessionKey(token), email, SessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Lookup resolves a token to the email it was issued for
func (s *RedisSessionStore) Lookup(ctx context.Context, token string) (string, error) {
	email, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	return email, nil
}

// Invalidate removes a token
func (s *RedisSessionStore) Invalidate(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}
	return nil
}

type memorySession struct {
	email     string
	expiresAt time.Time
}

// MemorySessionStore is an in-process session store used in development and tests
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

// Create issues a new token bound to the email
func (s *MemorySessionStore) Create(ctx context.Context, email string) (string, error) {
	token := utils.GenerateSessionToken()
	s.mu.Lock()
	s.sessions[token] = memorySession{email: email, expiresAt: time.Now().Add(SessionTTL)}
	s.mu.Unlock()
	return token, nil
}

// Lookup resolves a token, honoring expiry
func (s *MemorySessionStore) Lookup(ctx context.Context, token string) (string, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(sess.expiresAt) {
		return "", ErrSessionNotFound
	}
	return sess.email, nil
}

// Invalidate removes a token
func (s *MemorySessionStore) Invalidate(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
