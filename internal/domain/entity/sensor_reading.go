package entity

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SensorReading is a single sample reported by a pet's collar.
type SensorReading struct {
	ID            uint
	PetID         uint
	Timestamp     time.Time
	HeartRate     int     // beats per minute
	Temperature   float64 // degrees Fahrenheit
	SpO2          int     // blood oxygen saturation, percent
	ActivityLevel float64 // 0 (resting) to 10
	Latitude      *float64
	Longitude     *float64
	BatteryLevel  *int
	CollarID      string
}

// Accepted input ranges. Values outside them are rejected as sensor faults.
const (
	MinHeartRate   = 30
	MaxHeartRate   = 250
	MinTemperature = 95.0
	MaxTemperature = 106.0
	MinSpO2        = 80
	MaxSpO2        = 100
	MinActivity    = 0.0
	MaxActivity    = 10.0
	MaxLatitude    = 90.0
	MaxLongitude   = 180.0
)

// Alert thresholds shared by every species.
const (
	FeverTemperature       = 103.5
	HypothermiaTemperature = 99.0
	LowSpO2                = 92
)

// VitalRange is an inclusive heart-rate band considered normal for a species.
type VitalRange struct {
	MinHeartRate int
	MaxHeartRate int
}

var speciesHeartRates = map[string]VitalRange{
	SpeciesDog: {MinHeartRate: 50, MaxHeartRate: 180},
	SpeciesCat: {MinHeartRate: 110, MaxHeartRate: 240},
}

var defaultHeartRate = VitalRange{MinHeartRate: 40, MaxHeartRate: 240}

// HeartRateRange returns the normal heart-rate band for a species.
func HeartRateRange(species string) VitalRange {
	if r, ok := speciesHeartRates[strings.ToLower(strings.TrimSpace(species))]; ok {
		return r
	}

	return defaultHeartRate
}

// Validate rejects readings that no working collar can produce.
func (r *SensorReading) Validate() error {
	switch {
	case r.HeartRate < MinHeartRate || r.HeartRate > MaxHeartRate:
		return errors.Errorf("heart_rate must be between %d and %d", MinHeartRate, MaxHeartRate)
	case r.Temperature < MinTemperature || r.Temperature > MaxTemperature:
		return errors.Errorf("temperature must be between %.0f and %.0f", MinTemperature, MaxTemperature)
	case r.SpO2 < MinSpO2 || r.SpO2 > MaxSpO2:
		return errors.Errorf("spo2 must be between %d and %d", MinSpO2, MaxSpO2)
	case r.ActivityLevel < MinActivity || r.ActivityLevel > MaxActivity:
		return errors.Errorf("activity_level must be between %.0f and %.0f", MinActivity, MaxActivity)
	case r.BatteryLevel != nil && (*r.BatteryLevel < 0 || *r.BatteryLevel > 100):
		return errors.New("battery_level must be between 0 and 100")
	case (r.Latitude == nil) != (r.Longitude == nil):
		return errors.New("latitude and longitude must be provided together")
	case r.Latitude != nil && math.Abs(*r.Latitude) > MaxLatitude:
		return errors.Errorf("latitude must be between %.0f and %.0f", -MaxLatitude, MaxLatitude)
	case r.Longitude != nil && math.Abs(*r.Longitude) > MaxLongitude:
		return errors.Errorf("longitude must be between %.0f and %.0f", -MaxLongitude, MaxLongitude)
	}

	return nil
}

// HasLocation reports whether the reading carries GPS coordinates.
func (r *SensorReading) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Anomalies lists the vitals of the reading that fall outside normal ranges for the species.
// An empty result means the reading is unremarkable.
func (r *SensorReading) Anomalies(species string) []string {
	var findings []string

	hr := HeartRateRange(species)
	if r.HeartRate < hr.MinHeartRate {
		findings = append(findings, fmt.Sprintf("low heart rate (%d bpm)", r.HeartRate))
	} else if r.HeartRate > hr.MaxHeartRate {
		findings = append(findings, fmt.Sprintf("high heart rate (%d bpm)", r.HeartRate))
	}

	if r.Temperature > FeverTemperature {
		findings = append(findings, fmt.Sprintf("fever (%.1f°F)", r.Temperature))
	} else if r.Temperature < HypothermiaTemperature {
		findings = append(findings, fmt.Sprintf("low body temperature (%.1f°F)", r.Temperature))
	}

	if r.SpO2 < LowSpO2 {
		findings = append(findings, fmt.Sprintf("low blood oxygen (%d%%)", r.SpO2))
	}

	return findings
}
