package trends

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"star-barista/internal/domain"
)

type ItemCount struct {
	Item  string  `json:"item"`
	Count float64 `json:"count"`
}

type StoreInterface interface {
	RecordCheckout(ctx context.Context, event domain.CheckoutEvent) error
	TopToday(ctx context.Context, limit int) ([]ItemCount, error)
}

// Store keeps a per-day sorted set of how often each item was bought.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

var _ StoreInterface = (*Store)(nil)

// dailyKey buckets by UTC date so producer and consumer agree on the day
// regardless of their local zones.
func dailyKey(day time.Time) string {
	return "trends:daily:" + day.UTC().Format("2006-01-02")
}

func (s *Store) RecordCheckout(ctx context.Context, event domain.CheckoutEvent) error {
	key := dailyKey(event.Timestamp)
	for _, line := range event.Items {
		if err := s.rdb.ZIncrBy(ctx, key, 1, line.Item).Err(); err != nil {
			return err
		}
	}
	// Keep yesterday around for end-of-day reads, then let it fall off.
	return s.rdb.Expire(ctx, key, 48*time.Hour).Err()
}

func (s *Store) TopToday(ctx context.Context, limit int) ([]ItemCount, error) {
	if limit <= 0 {
		limit = 10
	}
	members, err := s.rdb.ZRevRangeWithScores(ctx, dailyKey(time.Now()), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	var top []ItemCount
	for _, member := range members {
		name, ok := member.Member.(string)
		if !ok {
			continue
		}
		top = append(top, ItemCount{Item: name, Count: member.Score})
	}
	return top, nil
}
