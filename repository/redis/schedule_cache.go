package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

type scheduleCache struct {
	client *redislib.Client
	ttl    time.Duration
}

// NewScheduleCache creates a Redis-backed cache for generated schedules.
// Entries expire after ttl so a stale plan never outlives its day.
func NewScheduleCache(client *redislib.Client, ttl time.Duration) repository.ScheduleCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &scheduleCache{client: client, ttl: ttl}
}

func (c *scheduleCache) Get(ctx context.Context, userID string, horizon domain.Horizon) (*domain.Schedule, error) {
	result, err := c.client.Get(ctx, scheduleKey(userID, horizon)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}

	var schedule domain.Schedule
	if err := json.Unmarshal([]byte(result), &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *scheduleCache) Save(ctx context.Context, userID string, schedule *domain.Schedule) error {
	if schedule == nil {
		return domain.ErrInvalidPayload
	}

	payload, err := json.Marshal(schedule)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, scheduleKey(userID, schedule.Horizon), payload, c.ttl).Err()
}

// Invalidate drops every cached horizon for the user. Task mutations change
// the input of all three views at once, so partial invalidation is never safe.
func (c *scheduleCache) Invalidate(ctx context.Context, userID string) error {
	keys := []string{
		scheduleKey(userID, domain.HorizonDaily),
		scheduleKey(userID, domain.HorizonWeekly),
		scheduleKey(userID, domain.HorizonMonthly),
	}
	return c.client.Del(ctx, keys...).Err()
}

func scheduleKey(userID string, horizon domain.Horizon) string {
	return fmt.Sprintf("schedule:%s:%s", userID, horizon)
}
