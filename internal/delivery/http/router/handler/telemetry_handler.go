package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hauspet/internal/delivery/http/response"
	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TelemetryHandlerParams holds dependencies for TelemetryHandler, injected by Fx.
type TelemetryHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
	Logger   *slog.Logger
}

// TelemetryHandler serves collar readings and pet locations.
type TelemetryHandler struct {
	healthUC usecase.HealthUsecase
	logger   *slog.Logger
}

// NewTelemetryHandler is the constructor for TelemetryHandler
func NewTelemetryHandler(params TelemetryHandlerParams) *TelemetryHandler {
	return &TelemetryHandler{
		healthUC: params.HealthUC,
		logger:   params.Logger,
	}
}

// RecordReadingRequest is one collar sample. Timestamp defaults to the time of receipt.
type RecordReadingRequest struct {
	Timestamp     *time.Time `json:"timestamp"`
	HeartRate     int        `json:"heart_rate" validate:"min=30,max=250"`
	Temperature   float64    `json:"temperature" validate:"min=95,max=106"`
	SpO2          int        `json:"spo2" validate:"min=80,max=100"`
	ActivityLevel float64    `json:"activity_level" validate:"min=0,max=10"`
	Latitude      *float64   `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude     *float64   `json:"longitude" validate:"omitempty,min=-180,max=180"`
	BatteryLevel  *int       `json:"battery_level" validate:"omitempty,min=0,max=100"`
	CollarID      string     `json:"collar_id" validate:"max=50"`
}

type recordReadingResponse struct {
	Message      string           `json:"message"`
	Reading      *readingResponse `json:"reading"`
	AlertCreated bool             `json:"alert_created"`
}

// RecordReading stores a collar sample for an owned pet.
func (h *TelemetryHandler) RecordReading(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	petID, err := petIDParam(c)
	if err != nil {
		return err
	}

	var req RecordReadingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sensor reading")
	}

	if err := c.Validate(&req); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return domainerrors.ErrInvalidReading.WithDetails(appErr.Details())
		}

		return errors.WithStack(err)
	}

	reading := &entity.SensorReading{
		HeartRate:     req.HeartRate,
		Temperature:   req.Temperature,
		SpO2:          req.SpO2,
		ActivityLevel: req.ActivityLevel,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		BatteryLevel:  req.BatteryLevel,
		CollarID:      req.CollarID,
	}
	if req.Timestamp != nil {
		reading.Timestamp = req.Timestamp.UTC()
	}

	output, err := h.healthUC.RecordReading(c.Request().Context(), user.ID, petID, reading)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, recordReadingResponse{
		Message:      "Reading recorded",
		Reading:      toReadingResponse(output.Reading),
		AlertCreated: output.Alert != nil,
	})
}

// ListReadings returns recent readings, newest first. ?limit= overrides the page size.
func (h *TelemetryHandler) ListReadings(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	petID, err := petIDParam(c)
	if err != nil {
		return err
	}

	// An unparsable limit falls back to the default page size.
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	readings, err := h.healthUC.ListReadings(c.Request().Context(), user.ID, petID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]*readingResponse, 0, len(readings))
	for _, reading := range readings {
		body = append(body, toReadingResponse(reading))
	}

	return c.JSON(http.StatusOK, body)
}

// CurrentLocation returns the last GPS fix reported for an owned pet.
func (h *TelemetryHandler) CurrentLocation(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	petID, err := petIDParam(c)
	if err != nil {
		return err
	}

	location, err := h.healthUC.CurrentLocation(c.Request().Context(), user.ID, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, locationResponse{
		PetID:      location.PetID,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		RecordedAt: location.RecordedAt,
	})
}
