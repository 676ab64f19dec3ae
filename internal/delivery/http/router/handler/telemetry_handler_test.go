package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	mockusecase "hauspet/internal/mocks/usecase"
	"hauspet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTelemetryTestServer(t *testing.T) (*mockusecase.MockHealthUsecase, *echo.Echo) {
	t.Helper()
	uc := mockusecase.NewMockHealthUsecase(t)
	h := NewTelemetryHandler(TelemetryHandlerParams{HealthUC: uc, Logger: discardLogger()})

	e := newTestEcho()
	g := e.Group("/pets", signedIn(testUser))
	g.POST("/:id/health", h.RecordReading)
	g.GET("/:id/health", h.ListReadings)
	g.GET("/:id/location/current", h.CurrentLocation)

	return uc, e
}

func TestTelemetryHandler_RecordReading(t *testing.T) {
	uc, e := newTelemetryTestServer(t)
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	uc.EXPECT().RecordReading(mock.Anything, uint(7), uint(3), &entity.SensorReading{
		Timestamp:     at,
		HeartRate:     190,
		Temperature:   101.2,
		SpO2:          97,
		ActivityLevel: 6,
		BatteryLevel:  ptr(80),
		CollarID:      "collar-1",
	}).RunAndReturn(func(_ context.Context, _, petID uint, reading *entity.SensorReading) (*usecase.RecordReadingOutput, error) {
		reading.ID = 42
		reading.PetID = petID

		return &usecase.RecordReadingOutput{
			Reading: reading,
			Alert:   &entity.HealthAlert{ID: 5, Source: entity.AlertSourceSensor},
		}, nil
	})

	rec := serve(e, http.MethodPost, "/pets/3/health", `{
		"timestamp": "2026-05-01T12:00:00Z",
		"heart_rate": 190,
		"temperature": 101.2,
		"spo2": 97,
		"activity_level": 6,
		"battery_level": 80,
		"collar_id": "collar-1"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"message": "Reading recorded",
		"alert_created": true,
		"reading": {
			"id": 42,
			"pet_id": 3,
			"timestamp": "2026-05-01T12:00:00Z",
			"heart_rate": 190,
			"temperature": 101.2,
			"spo2": 97,
			"activity_level": 6,
			"battery_level": 80,
			"collar_id": "collar-1"
		}
	}`, rec.Body.String())
}

func TestTelemetryHandler_RecordReadingOutOfRange(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{
			name:        "spo2",
			body:        `{"heart_rate":80,"temperature":101,"spo2":20}`,
			wantDetails: "spo2 must be at least 80",
		},
		{
			name:        "latitude",
			body:        `{"heart_rate":80,"temperature":101.5,"spo2":98,"activity_level":5,"latitude":500,"longitude":10}`,
			wantDetails: "latitude must be at most 90",
		},
		{
			name:        "longitude",
			body:        `{"heart_rate":80,"temperature":101.5,"spo2":98,"activity_level":5,"latitude":10,"longitude":-999}`,
			wantDetails: "longitude must be at least -180",
		},
		{
			name:        "battery",
			body:        `{"heart_rate":80,"temperature":101.5,"spo2":98,"battery_level":101}`,
			wantDetails: "battery_level must be at most 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No RecordReading expectation: the mock fails the test if the request gets through.
			_, e := newTelemetryTestServer(t)

			rec := serve(e, http.MethodPost, "/pets/3/health", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"INVALID_READING"`)
			assert.Contains(t, rec.Body.String(), tt.wantDetails)
		})
	}
}

func TestTelemetryHandler_RecordReadingRejectedByUsecase(t *testing.T) {
	uc, e := newTelemetryTestServer(t)
	uc.EXPECT().RecordReading(mock.Anything, uint(7), uint(3), mock.Anything).
		Return(nil, domainerrors.ErrInvalidReading.WithDetails("latitude and longitude must be provided together"))

	rec := serve(e, http.MethodPost, "/pets/3/health", `{"heart_rate":80,"temperature":101,"spo2":98,"latitude":40.7}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"details":"latitude and longitude must be provided together"`)
}

func TestTelemetryHandler_ListReadings(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "default", query: "", wantLimit: 0},
		{name: "explicit", query: "?limit=10", wantLimit: 10},
		{name: "garbage", query: "?limit=ten", wantLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, e := newTelemetryTestServer(t)
			uc.EXPECT().ListReadings(mock.Anything, uint(7), uint(3), tt.wantLimit).
				Return([]*entity.SensorReading{}, nil)

			rec := serve(e, http.MethodGet, "/pets/3/health"+tt.query, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestTelemetryHandler_CurrentLocation(t *testing.T) {
	t.Run("known location", func(t *testing.T) {
		uc, e := newTelemetryTestServer(t)
		uc.EXPECT().CurrentLocation(mock.Anything, uint(7), uint(3)).Return(&usecase.Location{
			PetID:      3,
			Latitude:   40.7128,
			Longitude:  -74.006,
			RecordedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		}, nil)

		rec := serve(e, http.MethodGet, "/pets/3/location/current", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"pet_id":3,"latitude":40.7128,"longitude":-74.006,"recorded_at":"2026-05-01T12:00:00Z"}`, rec.Body.String())
	})

	t.Run("no fix yet", func(t *testing.T) {
		uc, e := newTelemetryTestServer(t)
		uc.EXPECT().CurrentLocation(mock.Anything, uint(7), uint(3)).
			Return(nil, domainerrors.ErrLocationUnavailable.WrapMessage("current location"))

		rec := serve(e, http.MethodGet, "/pets/3/location/current", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Location data not yet available for this pet.")
	})
}
