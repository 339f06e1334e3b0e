package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"star-barista/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps conversation state between HTTP turns as a JSON blob
// per session id. Sessions expire after TTL of inactivity.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func (s *SessionStore) Key(id string) string {
	return "session:" + id
}

func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.Key(sess.ID), payload, s.TTL).Err()
}

func (s *SessionStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.Client.Get(ctx, s.Key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.Key(id)).Err()
}
