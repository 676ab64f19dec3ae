package postgres

import (
	"context"
	"testing"

	"hauspet/internal/domain/entity"
	"hauspet/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_UpsertMovesTokenToNewOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()

	first := seedUser(t, db, "first@example.com")
	second := seedUser(t, db, "second@example.com")

	device := &entity.UserDevice{UserID: first, FCMToken: "token-1", DeviceID: "phone", Platform: "ios"}
	require.NoError(t, repo.Upsert(ctx, device))
	assert.NotZero(t, device.ID)
	assert.True(t, device.IsActive)

	require.NoError(t, repo.DeactivateTokens(ctx, []string{"token-1"}))
	devices, err := repo.FindActiveByUser(ctx, first)
	require.NoError(t, err)
	assert.Empty(t, devices)

	moved := &entity.UserDevice{UserID: second, FCMToken: "token-1", DeviceID: "tablet", Platform: "android"}
	require.NoError(t, repo.Upsert(ctx, moved))
	assert.Equal(t, device.ID, moved.ID)
	assert.Equal(t, second, moved.UserID)
	assert.True(t, moved.IsActive)

	devices, err = repo.FindActiveByUser(ctx, second)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "tablet", devices[0].DeviceID)
}

func TestDeviceRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	require.NoError(t, repo.Upsert(ctx, &entity.UserDevice{UserID: owner, FCMToken: "t", DeviceID: "phone", Platform: "ios"}))

	assert.ErrorIs(t, repo.Delete(ctx, other, "phone"), repository.ErrDeviceNotFound)
	require.NoError(t, repo.Delete(ctx, owner, "phone"))
	assert.ErrorIs(t, repo.Delete(ctx, owner, "phone"), repository.ErrDeviceNotFound)
}

func TestDeviceRepository_DeactivateNoTokens(t *testing.T) {
	repo := NewDeviceRepository(newTestDB(t))

	assert.NoError(t, repo.DeactivateTokens(context.Background(), nil))
}
