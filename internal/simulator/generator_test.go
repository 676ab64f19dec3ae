package simulator

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGenerate_StaysWithinSensorBounds(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, profile := range Profiles {
		for _, scenario := range Scenarios {
			t.Run(name+"/"+string(scenario), func(t *testing.T) {
				g := NewGenerator(profile, "COLLAR_001", seeded())

				for range 500 {
					r := g.Generate(scenario, now)

					assert.GreaterOrEqual(t, r.HeartRate, minHeartRate)
					assert.LessOrEqual(t, r.HeartRate, maxHeartRate)
					assert.GreaterOrEqual(t, r.Temperature, minTemperature)
					assert.LessOrEqual(t, r.Temperature, maxTemperature)
					assert.GreaterOrEqual(t, r.SpO2, minSpO2)
					assert.LessOrEqual(t, r.SpO2, maxSpO2)
					assert.GreaterOrEqual(t, r.ActivityLevel, minActivity)
					assert.LessOrEqual(t, r.ActivityLevel, maxActivity)
					assert.GreaterOrEqual(t, r.BatteryLevel, minBattery)
					assert.LessOrEqual(t, r.BatteryLevel, maxBattery)
					assert.InDelta(t, homeLatitude, r.Latitude, gpsJitter)
					assert.InDelta(t, homeLongitude, r.Longitude, gpsJitter)
					assert.Equal(t, "COLLAR_001", r.CollarID)
					assert.Equal(t, now, r.Timestamp)
				}
			})
		}
	}
}

func TestGenerate_ScenarioShapes(t *testing.T) {
	oscar := Profiles["oscar"]
	g := NewGenerator(oscar, "c", seeded())
	now := time.Now()

	for range 200 {
		sick := g.Generate(ScenarioSick, now)
		assert.GreaterOrEqual(t, sick.Temperature, oscar.Baseline.Temperature+2.0-0.05)
		assert.LessOrEqual(t, sick.SpO2, oscar.Baseline.SpO2-3)

		excited := g.Generate(ScenarioExcited, now)
		assert.GreaterOrEqual(t, excited.HeartRate, oscar.Baseline.HeartRate+20)

		sleeping := g.Generate(ScenarioSleeping, now)
		assert.LessOrEqual(t, sleeping.ActivityLevel, 0.5)
		assert.LessOrEqual(t, sleeping.HeartRate, oscar.Baseline.HeartRate-10)
	}
}

func TestGenerate_ClampsExtremeBaselines(t *testing.T) {
	hot := Profile{Baseline: Vitals{HeartRate: 400, Temperature: 120, SpO2: 120, Activity: 20}}
	g := NewGenerator(hot, "c", seeded())

	r := g.Generate(ScenarioNormal, time.Now())

	assert.Equal(t, maxHeartRate, r.HeartRate)
	assert.InDelta(t, maxTemperature, r.Temperature, 1e-9)
	assert.Equal(t, maxSpO2, r.SpO2)
	assert.InDelta(t, maxActivity, r.ActivityLevel, 1e-9)
}

func TestNextScenario(t *testing.T) {
	g := NewGenerator(Profiles["luna"], "c", seeded())

	for range 50 {
		assert.Equal(t, ScenarioSick, g.NextScenario(ScenarioSick, 0))
		assert.Contains(t, Scenarios, g.NextScenario(ScenarioSick, 1))
	}
}

func TestParseScenario(t *testing.T) {
	for _, s := range []string{"normal", "excited", "sick", "sleeping", "random"} {
		got, err := ParseScenario(s)
		require.NoError(t, err)
		assert.Equal(t, Scenario(s), got)
	}

	_, err := ParseScenario("zombie")
	assert.ErrorContains(t, err, `unknown scenario "zombie"`)
}
