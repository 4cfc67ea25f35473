package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	token, err := store.Create(ctx, "priya@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	email, err := store.Lookup(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "priya@example.com", email)

	assert.NoError(t, store.Invalidate(ctx, token))

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_UnknownToken(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Lookup(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_TokensAreUnique(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := store.Create(ctx, "priya@example.com")
		assert.NoError(t, err)
		assert.False(t, seen[token], "Token issued twice")
		seen[token] = true
	}
}

func TestMemorySessionStore_ExpiredSessionRejected(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	token, err := store.Create(ctx, "priya@example.com")
	assert.NoError(t, err)

	// Force the session past its expiry
	store.mu.Lock()
	sess := store.sessions[token]
	sess.expiresAt = time.Now().Add(-time.Minute)
	store.sessions[token] = sess
	store.mu.Unlock()

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_InvalidateUnknownTokenIsNoop(t *testing.T) {
	store := NewMemorySessionStore()
	assert.NoError(t, store.Invalidate(context.Background(), "no-such-token"))
}
