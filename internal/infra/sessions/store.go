// Package sessions stores admin session tokens in Redis with a TTL.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when the token is unknown or expired.
var ErrSessionNotFound = errors.New("sessions: session not found")

const keyPrefix = "admin_session:"

// Store is the Redis-backed admin session store.
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewStore creates a session store with the given TTL.
func NewStore(client *goredis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create issues a fresh session token for the user.
func (s *Store) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	key := keyPrefix + token

	if err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("sessions: failed to store session: %w", err)
	}
	return token, nil
}

// Get resolves a token to the user id it was issued for, refreshing the TTL.
func (s *Store) Get(ctx context.Context, token string) (int64, error) {
	key := keyPrefix + token

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, fmt.Errorf("sessions: failed to load session: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sessions: corrupt session value %q: %w", val, err)
	}

	// Sliding expiration: active admins stay signed in.
	_ = s.client.Expire(ctx, key, s.ttl).Err()

	return userID, nil
}

// Delete revokes a session token. Deleting an unknown token is a no-op.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("sessions: failed to delete session: %w", err)
	}
	return nil
}
