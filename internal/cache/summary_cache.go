package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/google/uuid"
)

type SummaryCache interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (*domain.SummaryResponse, error)
	Set(ctx context.Context, userID uuid.UUID, summary *domain.SummaryResponse) error
	Invalidate(ctx context.Context, userID uuid.UUID, date string) error
}

type summaryCache struct {
	kv  KVStore
	ttl time.Duration
}

func NewSummaryCache(kv KVStore, ttl time.Duration) SummaryCache {
	if kv == nil {
		kv = NoopKVStore{}
	}
	return &summaryCache{kv: kv, ttl: ttl}
}

func summaryKey(userID uuid.UUID, date string) string {
	return fmt.Sprintf("vitals:summary:%s:%s", userID, date)
}

// Get returns ErrCacheMiss for absent or unreadable entries.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.SummaryResponse, error) {
	raw, err := c.kv.Get(ctx, summaryKey(userID, date))
	if err != nil {
		return nil, err
	}

	var resp domain.SummaryResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, ErrCacheMiss
	}
	return &resp, nil
}

func (c *summaryCache) Set(ctx context.Context, userID uuid.UUID, summary *domain.SummaryResponse) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, summaryKey(userID, summary.Date), string(raw), c.ttl)
}

func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID, date string) error {
	return c.kv.Delete(ctx, summaryKey(userID, date))
}
