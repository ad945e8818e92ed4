package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/thereayou/devconnector/internal/services"
)

// MemoryBlacklist отозванные токены в памяти процесса, когда Redis не настроен
type MemoryBlacklist struct {
	store *gocache.Cache
}

var _ services.TokenBlacklist = (*MemoryBlacklist)(nil)

func NewMemoryBlacklist(cleanupInterval time.Duration) *MemoryBlacklist {
	return &MemoryBlacklist{store: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (b *MemoryBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.store.Set(blacklistPrefix+token, struct{}{}, ttl)
	return nil
}

func (b *MemoryBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	_, found := b.store.Get(blacklistPrefix + token)
	return found, nil
}
