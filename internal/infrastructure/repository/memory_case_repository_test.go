package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
)

func seededRepo(t *testing.T, ids ...string) *MemoryCaseRepository {
	t.Helper()
	records := make([]entity.CaseRecord, len(ids))
	for i, id := range ids {
		records[i] = entity.CaseRecord{ID: id}
	}
	repo := NewMemoryCaseRepository()
	require.NoError(t, repo.ReplaceAll(context.Background(), records))
	return repo
}

func TestMemoryCaseRepositoryListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo(t, "1", "2")

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", second[0].ID)
}

func TestMemoryCaseRepositoryPrepend(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo(t, "1", "2")

	require.NoError(t, repo.Prepend(ctx, &entity.CaseRecord{ID: "3"}))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "3", records[0].ID)
	assert.Equal(t, "1", records[1].ID)
}

func TestMemoryCaseRepositoryPrependDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo(t, "1")

	err := repo.Prepend(ctx, &entity.CaseRecord{ID: "1"})
	require.Error(t, err)

	count, cerr := repo.Count(ctx)
	require.NoError(t, cerr)
	assert.Equal(t, 1, count)
}

func TestMemoryCaseRepositoryDeleteByIDs(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo(t, "1", "2", "3")

	t.Run("unknown ids are ignored", func(t *testing.T) {
		require.NoError(t, repo.DeleteByIDs(ctx, []string{"2", "does-not-exist"}))

		records, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0].ID)
		assert.Equal(t, "3", records[1].ID)
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		require.NoError(t, repo.DeleteByIDs(ctx, nil))
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestMemoryCaseRepositoryReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo(t, "1", "2", "3")

	input := []entity.CaseRecord{{ID: "9"}}
	require.NoError(t, repo.ReplaceAll(ctx, input))
	input[0].ID = "mutated"

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "9", records[0].ID)
}
