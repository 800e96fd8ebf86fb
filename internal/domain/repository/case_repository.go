package repository

import (
	"context"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
)

// CaseRepository defines the interface for case record operations.
//
// The collection is owned by a single store; every mutation is an atomic
// whole-collection operation. Readers receive copies, never live views.
type CaseRepository interface {
	// List returns all case records in their report order (newest manual
	// entries first, then the seeded dataset in ingestion order).
	List(ctx context.Context) ([]entity.CaseRecord, error)
	// Count returns the number of records currently held.
	Count(ctx context.Context) (int, error)
	// Prepend inserts one record at the front of the collection. Fails when
	// the id already exists.
	Prepend(ctx context.Context, record *entity.CaseRecord) error
	// DeleteByIDs removes every record whose id is in ids. Unknown ids are
	// ignored.
	DeleteByIDs(ctx context.Context, ids []string) error
	// ReplaceAll swaps the whole collection, used when seeding at startup.
	ReplaceAll(ctx context.Context, records []entity.CaseRecord) error
}
