package repository

import (
	"context"
	"sync"
	"time"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
)

// MemoryIdempotencyRepository keeps processed idempotency keys in memory.
// Keys live only as long as the process, which matches the lifetime of the
// case collection they guard.
type MemoryIdempotencyRepository struct {
	mu   sync.RWMutex
	keys map[string]entity.IdempotencyKey
}

// NewMemoryIdempotencyRepository creates an empty idempotency key store
func NewMemoryIdempotencyRepository() *MemoryIdempotencyRepository {
	return &MemoryIdempotencyRepository{keys: make(map[string]entity.IdempotencyKey)}
}

// GetByKey retrieves an idempotency key, or nil when absent
func (r *MemoryIdempotencyRepository) GetByKey(_ context.Context, key string) (*entity.IdempotencyKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ikey, ok := r.keys[key]
	if !ok {
		return nil, nil
	}
	out := ikey
	return &out, nil
}

// Create stores a new idempotency key
func (r *MemoryIdempotencyRepository) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ikey.CreatedAt.IsZero() {
		ikey.CreatedAt = time.Now()
	}
	r.keys[ikey.Key] = *ikey
	return nil
}

// DeleteExpired removes expired idempotency keys
func (r *MemoryIdempotencyRepository) DeleteExpired(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, ikey := range r.keys {
		if ikey.IsExpired() {
			delete(r.keys, key)
		}
	}
	return nil
}
