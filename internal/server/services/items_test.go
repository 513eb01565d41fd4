package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpovs/stockkeeper/internal/common"
	"github.com/akarpovs/stockkeeper/internal/server/models"
	"github.com/akarpovs/stockkeeper/internal/server/repositories/items"
)

func newItemService(t *testing.T) *ItemService {
	t.Helper()
	return NewItemService(items.NewSQLiteRepository(newTestDB(t)), testLogger())
}

func TestItemServiceUpsertAndList(t *testing.T) {
	ctx := context.Background()
	svc := newItemService(t)

	item := &models.Item{
		ID: "a1", Name: "hammer", Description: "claw hammer",
		Quantity: 2, CreatedBy: "alice", CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, svc.Upsert(ctx, item))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "hammer", list[0].Name)
}

func TestItemServiceUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	svc := newItemService(t)

	now := time.Now().UTC()
	require.NoError(t, svc.Upsert(ctx, &models.Item{ID: "a1", Name: "hammer", Quantity: 2, CreatedAt: now}))
	require.NoError(t, svc.Upsert(ctx, &models.Item{ID: "a1", Name: "mallet", Quantity: 5, CreatedAt: now}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mallet", list[0].Name)
	assert.Equal(t, 5, list[0].Quantity)
}

func TestItemServiceUpsertAcceptsBlankedRow(t *testing.T) {
	ctx := context.Background()
	svc := newItemService(t)

	now := time.Now().UTC()
	require.NoError(t, svc.Upsert(ctx, &models.Item{ID: "a1", Name: "hammer", Quantity: 2, CreatedAt: now}))
	require.NoError(t, svc.Upsert(ctx, &models.Item{ID: "a1", Name: "", Description: "", CreatedAt: now}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Name)
}

func TestItemServiceUpsertValidation(t *testing.T) {
	ctx := context.Background()
	svc := newItemService(t)

	err := svc.Upsert(ctx, &models.Item{ID: "", Name: "hammer"})
	assert.ErrorIs(t, err, common.ErrValidation)

	err = svc.Upsert(ctx, &models.Item{ID: "a1", Name: "hammer", Quantity: -1})
	assert.ErrorIs(t, err, common.ErrValidation)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
