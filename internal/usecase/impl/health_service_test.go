package impl

import (
	"context"
	"testing"
	"time"

	"hauspet/internal/domain/constants"
	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/domain/service"
	mockRepo "hauspet/internal/mocks/repository"
	mockSvc "hauspet/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type healthServiceFixtures struct {
	service    *healthService
	txManager  *mockRepo.MockTransactionManager
	petRepo    *mockRepo.MockPetRepository
	sensorRepo *mockRepo.MockSensorRepository
	publisher  *mockSvc.MockEventPublisher
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func createTestHealthService(t *testing.T) healthServiceFixtures {
	fx := healthServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		petRepo:    mockRepo.NewMockPetRepository(t),
		sensorRepo: mockRepo.NewMockSensorRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewHealthService(HealthServiceParams{
		TxManager:  fx.txManager,
		PetRepo:    fx.petRepo,
		SensorRepo: fx.sensorRepo,
		Publisher:  fx.publisher,
		Logger:     discardLogger(),
	}).(*healthService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

func healthyReading() *entity.SensorReading {
	return &entity.SensorReading{HeartRate: 80, Temperature: 101.5, SpO2: 98, ActivityLevel: 6}
}

func TestHealthService_RecordReading_Normal(t *testing.T) {
	fx := createTestHealthService(t)
	fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(5)).Return(oscar(), nil)

	factory := expectTransaction(t, fx.txManager)
	txSensorRepo := mockRepo.NewMockSensorRepository(t)
	factory.EXPECT().SensorRepo().Return(txSensorRepo)
	txSensorRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(r *entity.SensorReading) bool {
			return r.PetID == 5 && r.Timestamp.Equal(fixedNow)
		})).
		Return(nil)

	out, err := fx.service.RecordReading(context.Background(), 7, 5, healthyReading())
	require.NoError(t, err)
	assert.Nil(t, out.Alert)
	assert.Equal(t, uint(5), out.Reading.PetID)
}

func TestHealthService_RecordReading_AbnormalCreatesAlertAndPublishesAfterCommit(t *testing.T) {
	fx := createTestHealthService(t)
	fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(5)).Return(oscar(), nil)

	committed := false
	txSensorRepo := mockRepo.NewMockSensorRepository(t)
	txAlertRepo := mockRepo.NewMockAlertRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SensorRepo().Return(txSensorRepo)
	factory.EXPECT().AlertRepo().Return(txAlertRepo)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			err := fn(factory)
			committed = err == nil

			return err
		})

	txSensorRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	txAlertRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(a *entity.HealthAlert) bool {
			return a.Source == entity.AlertSourceSensor && a.PetID == 5 && a.UserID == 7
		})).
		Run(func(_ context.Context, a *entity.HealthAlert) { a.ID = 80 }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishHealthAlert(mock.Anything, mock.MatchedBy(func(e *service.HealthAlertEvent) bool {
			assert.True(t, committed, "event must be published after commit")

			return e.AlertID == 80 && e.Source == "sensor"
		})).
		Return(nil)

	reading := healthyReading()
	reading.Temperature = 104.6

	out, err := fx.service.RecordReading(context.Background(), 7, 5, reading)
	require.NoError(t, err)
	require.NotNil(t, out.Alert)
	assert.Contains(t, out.Alert.Condition, "fever")
}

func TestHealthService_RecordReading_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestHealthService(t)
	fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(5)).Return(oscar(), nil)

	factory := expectTransaction(t, fx.txManager)
	txSensorRepo := mockRepo.NewMockSensorRepository(t)
	txAlertRepo := mockRepo.NewMockAlertRepository(t)
	factory.EXPECT().SensorRepo().Return(txSensorRepo)
	factory.EXPECT().AlertRepo().Return(txAlertRepo)
	txSensorRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	txAlertRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishHealthAlert(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	reading := healthyReading()
	reading.SpO2 = 85

	_, err := fx.service.RecordReading(context.Background(), 7, 5, reading)
	require.NoError(t, err)
}

func TestHealthService_RecordReading_Rejections(t *testing.T) {
	t.Run("foreign pet", func(t *testing.T) {
		fx := createTestHealthService(t)
		fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(5)).Return(nil, repository.ErrPetNotFound)

		_, err := fx.service.RecordReading(context.Background(), 7, 5, healthyReading())
		assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
	})

	t.Run("out of range", func(t *testing.T) {
		fx := createTestHealthService(t)
		fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(5)).Return(oscar(), nil)

		reading := healthyReading()
		reading.HeartRate = 400

		_, err := fx.service.RecordReading(context.Background(), 7, 5, reading)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_READING", appErr.ErrorCode())
		assert.Contains(t, appErr.Details(), "heart_rate")
	})
}

func TestHealthService_ListReadings_ClampsLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: constants.DefaultReadingLimit},
		{limit: -3, want: constants.DefaultReadingLimit},
		{limit: 10, want: 10},
		{limit: 10000, want: constants.MaxReadingLimit},
	}

	for _, tt := range tests {
		fx := createTestHealthService(t)
		fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(5)).Return(oscar(), nil)
		fx.sensorRepo.EXPECT().FindRecent(mock.Anything, uint(5), tt.want).Return(nil, nil)

		readings, err := fx.service.ListReadings(context.Background(), 7, 5, tt.limit)
		require.NoError(t, err)
		assert.NotNil(t, readings)
	}
}

func TestHealthService_CurrentLocation(t *testing.T) {
	t.Run("latest fix", func(t *testing.T) {
		fx := createTestHealthService(t)
		fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(5)).Return(oscar(), nil)
		fx.sensorRepo.EXPECT().FindLatestWithLocation(mock.Anything, uint(5)).Return(&entity.SensorReading{
			PetID:     5,
			Timestamp: fixedNow,
			Latitude:  ptr(40.7128),
			Longitude: ptr(-74.0060),
		}, nil)

		loc, err := fx.service.CurrentLocation(context.Background(), 7, 5)
		require.NoError(t, err)
		assert.Equal(t, uint(5), loc.PetID)
		assert.InDelta(t, 40.7128, loc.Latitude, 1e-9)
		assert.Equal(t, fixedNow, loc.RecordedAt)
	})

	t.Run("no fix yet", func(t *testing.T) {
		fx := createTestHealthService(t)
		fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(5)).Return(oscar(), nil)
		fx.sensorRepo.EXPECT().FindLatestWithLocation(mock.Anything, uint(5)).Return(nil, repository.ErrReadingNotFound)

		_, err := fx.service.CurrentLocation(context.Background(), 7, 5)
		assert.ErrorIs(t, err, domainerrors.ErrLocationUnavailable)
	})
}
