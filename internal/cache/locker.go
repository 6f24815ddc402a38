package cache

import (
	"context"
	"time"

	"github.com/omnistock/inventory-service/internal/inventory"
)

// LedgerLocker adapts the redis lock client to the ledger's Locker port.
type LedgerLocker struct {
	client *RedisClient
}

func NewLedgerLocker(client *RedisClient) *LedgerLocker {
	return &LedgerLocker{client: client}
}

func (l *LedgerLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (inventory.Lock, error) {
	lock, err := l.client.ObtainLock(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	return lock, nil
}
