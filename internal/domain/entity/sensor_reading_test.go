package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func normalDogReading() *SensorReading {
	return &SensorReading{
		PetID:         1,
		HeartRate:     80,
		Temperature:   101.5,
		SpO2:          98,
		ActivityLevel: 6,
	}
}

func TestSensorReading_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *SensorReading)
		wantErr string
	}{
		{name: "valid", mutate: func(*SensorReading) {}},
		{name: "heart rate too low", mutate: func(r *SensorReading) { r.HeartRate = 10 }, wantErr: "heart_rate"},
		{name: "temperature too high", mutate: func(r *SensorReading) { r.Temperature = 110 }, wantErr: "temperature"},
		{name: "spo2 above 100", mutate: func(r *SensorReading) { r.SpO2 = 101 }, wantErr: "spo2"},
		{name: "negative activity", mutate: func(r *SensorReading) { r.ActivityLevel = -1 }, wantErr: "activity_level"},
		{name: "battery out of range", mutate: func(r *SensorReading) { r.BatteryLevel = ptr(150) }, wantErr: "battery_level"},
		{name: "latitude without longitude", mutate: func(r *SensorReading) { r.Latitude = ptr(40.7) }, wantErr: "latitude"},
		{name: "latitude out of range", mutate: func(r *SensorReading) { r.Latitude, r.Longitude = ptr(500.0), ptr(10.0) }, wantErr: "latitude must be between -90 and 90"},
		{name: "longitude out of range", mutate: func(r *SensorReading) { r.Latitude, r.Longitude = ptr(10.0), ptr(-999.0) }, wantErr: "longitude must be between -180 and 180"},
		{name: "poles and antimeridian", mutate: func(r *SensorReading) { r.Latitude, r.Longitude = ptr(-90.0), ptr(180.0) }},
		{name: "full location", mutate: func(r *SensorReading) { r.Latitude, r.Longitude = ptr(40.7), ptr(-74.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := normalDogReading()
			tt.mutate(r)

			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSensorReading_Anomalies(t *testing.T) {
	tests := []struct {
		name    string
		species string
		mutate  func(r *SensorReading)
		want    int
	}{
		{name: "healthy dog", species: "dog", mutate: func(*SensorReading) {}, want: 0},
		{name: "feverish dog", species: "Dog", mutate: func(r *SensorReading) { r.Temperature = 104.2 }, want: 1},
		{name: "dog heart rate is low for a cat", species: "cat", mutate: func(*SensorReading) {}, want: 1},
		{name: "sick dog", species: "dog", mutate: func(r *SensorReading) {
			r.HeartRate = 190
			r.Temperature = 104
			r.SpO2 = 90
		}, want: 3},
		{name: "cold unknown species", species: "rabbit", mutate: func(r *SensorReading) { r.Temperature = 98.2 }, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := normalDogReading()
			tt.mutate(r)

			assert.Len(t, r.Anomalies(tt.species), tt.want)
		})
	}
}

func TestHeartRateRange(t *testing.T) {
	assert.Equal(t, VitalRange{MinHeartRate: 50, MaxHeartRate: 180}, HeartRateRange(" DOG "))
	assert.Equal(t, VitalRange{MinHeartRate: 110, MaxHeartRate: 240}, HeartRateRange("cat"))
	assert.Equal(t, defaultHeartRate, HeartRateRange("parrot"))
}
