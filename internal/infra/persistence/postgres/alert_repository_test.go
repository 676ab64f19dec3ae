package postgres

import (
	"context"
	"testing"
	"time"

	"hauspet/internal/domain/entity"
	"hauspet/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	petID := seedPet(t, db, owner, "Oscar")

	for i, condition := range []string{"fever", "low oxygen", "tachycardia"} {
		alert := &entity.HealthAlert{
			UserID:    owner,
			PetID:     petID,
			Source:    entity.AlertSourceSensor,
			Condition: condition,
			Message:   "check on Oscar",
			CreatedAt: time.Date(2026, 1, 1, 12, i, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Create(ctx, alert))
	}

	alerts, err := repo.FindByUser(ctx, owner, 2)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "tachycardia", alerts[0].Condition)
	assert.Equal(t, "low oxygen", alerts[1].Condition)
	assert.Nil(t, alerts[0].DeliveredAt)

	deliveredAt := time.Date(2026, 1, 1, 13, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkDelivered(ctx, alerts[0].ID, 2, 1, deliveredAt))

	stored, err := repo.FindByID(ctx, alerts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TotalSent)
	assert.Equal(t, 1, stored.TotalFailed)
	require.NotNil(t, stored.DeliveredAt)
	assert.True(t, deliveredAt.Equal(*stored.DeliveredAt))

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrAlertNotFound)
	assert.ErrorIs(t, repo.MarkDelivered(ctx, 999, 0, 0, deliveredAt), repository.ErrAlertNotFound)
}
