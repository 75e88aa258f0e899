package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

const sessionPrefix = "session:"

type sessionRepository struct {
	client *redislib.Client
	ttl    time.Duration
}

// NewSessionRepository stores sessions as JSON values whose Redis TTL tracks
// the session expiry, so expired sessions vanish without a sweeper.
func NewSessionRepository(client *redislib.Client, ttl time.Duration) repository.SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &sessionRepository{client: client, ttl: ttl}
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, sessionPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return domain.ErrInvalidPayload
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if session.ExpiresAt.Before(session.CreatedAt) {
		session.ExpiresAt = session.CreatedAt.Add(r.ttl)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = r.ttl
	}
	return r.client.Set(ctx, sessionPrefix+session.ID, payload, ttl).Err()
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionPrefix+id).Err()
}

func (r *sessionRepository) Extend(ctx context.Context, id string, ttlSeconds int) error {
	duration := time.Duration(ttlSeconds) * time.Second
	if duration <= 0 {
		duration = r.ttl
	}
	extended, err := r.client.Expire(ctx, sessionPrefix+id, duration).Result()
	if err != nil {
		return err
	}
	if !extended {
		return domain.ErrSessionNotFound
	}
	return nil
}
