package repository

import (
	"context"
	"sync"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
	"github.com/medilabs/dcreport-api/pkg/apperror"
)

// MemoryCaseRepository holds the case record collection for the lifetime of
// the process. There is no persistence step: restarting the service returns
// the collection to the seeded dataset.
type MemoryCaseRepository struct {
	mu      sync.RWMutex
	records []entity.CaseRecord
}

// NewMemoryCaseRepository creates an empty in-memory case repository
func NewMemoryCaseRepository() *MemoryCaseRepository {
	return &MemoryCaseRepository{}
}

// List returns a copy of the whole collection in report order
func (r *MemoryCaseRepository) List(_ context.Context) ([]entity.CaseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.CaseRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Count returns the number of records currently held
func (r *MemoryCaseRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}

// Prepend inserts a record at the front of the collection
func (r *MemoryCaseRepository) Prepend(_ context.Context, record *entity.CaseRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == record.ID {
			return apperror.NewConflictError("Case record with this id already exists")
		}
	}
	r.records = append([]entity.CaseRecord{*record}, r.records...)
	return nil
}

// DeleteByIDs removes every record whose id is in ids
func (r *MemoryCaseRepository) DeleteByIDs(_ context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.records[:0]
	for _, rec := range r.records {
		if _, ok := drop[rec.ID]; !ok {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

// ReplaceAll swaps the whole collection
func (r *MemoryCaseRepository) ReplaceAll(_ context.Context, records []entity.CaseRecord) error {
	fresh := make([]entity.CaseRecord, len(records))
	copy(fresh, records)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = fresh
	return nil
}
