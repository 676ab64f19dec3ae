package handler

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	deliverycontext "hauspet/internal/delivery/context"
	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OptionalID accepts a JSON number or a numeric string. Any other value,
// including null and zero, decodes as absent.
type OptionalID struct {
	value *uint
}

// UnmarshalJSON implements json.Unmarshaler and never fails.
func (id *OptionalID) UnmarshalJSON(data []byte) error {
	id.value = parseOptionalID(string(bytes.Trim(data, `"`)))

	return nil
}

// Ptr returns the parsed id or nil.
func (id OptionalID) Ptr() *uint {
	return id.value
}

func parseOptionalID(raw string) *uint {
	parsed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || parsed == 0 {
		return nil
	}
	id := uint(parsed)

	return &id
}

type userResponse struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type profileResponse struct {
	userResponse
	Role string `json:"role"`
}

type authResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    *userResponse `json:"user"`
}

type petResponse struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Species string   `json:"species"`
	Breed   *string  `json:"breed"`
	Age     *int     `json:"age"`
	Weight  *float64 `json:"weight"`
}

type petMessageResponse struct {
	Message string       `json:"message"`
	Pet     *petResponse `json:"pet"`
}

type readingResponse struct {
	ID            uint      `json:"id"`
	PetID         uint      `json:"pet_id"`
	Timestamp     time.Time `json:"timestamp"`
	HeartRate     int       `json:"heart_rate"`
	Temperature   float64   `json:"temperature"`
	SpO2          int       `json:"spo2"`
	ActivityLevel float64   `json:"activity_level"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	BatteryLevel  *int      `json:"battery_level,omitempty"`
	CollarID      string    `json:"collar_id,omitempty"`
}

type locationResponse struct {
	PetID      uint      `json:"pet_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: nullable(user.FirstName),
		LastName:  nullable(user.LastName),
	}
}

func toAuthResponse(message string, output *usecase.AuthOutput) *authResponse {
	return &authResponse{
		Message: message,
		Token:   output.Token,
		User:    toUserResponse(output.User),
	}
}

func toPetResponse(pet *entity.Pet) *petResponse {
	return &petResponse{
		ID:      pet.ID,
		Name:    pet.Name,
		Species: pet.Species,
		Breed:   pet.Breed,
		Age:     pet.Age,
		Weight:  pet.Weight,
	}
}

func toReadingResponse(reading *entity.SensorReading) *readingResponse {
	return &readingResponse{
		ID:            reading.ID,
		PetID:         reading.PetID,
		Timestamp:     reading.Timestamp,
		HeartRate:     reading.HeartRate,
		Temperature:   reading.Temperature,
		SpO2:          reading.SpO2,
		ActivityLevel: reading.ActivityLevel,
		Latitude:      reading.Latitude,
		Longitude:     reading.Longitude,
		BatteryLevel:  reading.BatteryLevel,
		CollarID:      reading.CollarID,
	}
}

// currentUser returns the account resolved by the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.CurrentUser(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrTokenMissing)
	}

	return user, nil
}

// petIDParam reads the :id path segment. A non-numeric id cannot name a pet.
func petIDParam(c echo.Context) (uint, error) {
	id := parseOptionalID(c.Param("id"))
	if id == nil {
		return 0, domainerrors.ErrPetNotFound.WrapMessage("parse pet id")
	}

	return *id, nil
}
