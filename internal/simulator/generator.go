// Package simulator produces collar readings for a pet profile and posts them to the API.
package simulator

import (
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/pkg/errors"
)

// Scenario shapes how readings drift from a profile's baseline.
type Scenario string

const (
	ScenarioNormal   Scenario = "normal"
	ScenarioExcited  Scenario = "excited"
	ScenarioSick     Scenario = "sick"
	ScenarioSleeping Scenario = "sleeping"
	// ScenarioRandom starts normal and drifts between the other scenarios.
	ScenarioRandom Scenario = "random"
)

// Scenarios lists the concrete scenarios a random run switches between.
var Scenarios = []Scenario{ScenarioNormal, ScenarioExcited, ScenarioSick, ScenarioSleeping}

// ParseScenario accepts any concrete scenario or "random".
func ParseScenario(s string) (Scenario, error) {
	scenario := Scenario(s)
	if scenario == ScenarioRandom || slices.Contains(Scenarios, scenario) {
		return scenario, nil
	}

	return "", errors.Errorf("unknown scenario %q", s)
}

// Vitals are the four values a collar samples.
type Vitals struct {
	HeartRate   int
	Temperature float64
	SpO2        int
	Activity    float64
}

// Profile is a simulated animal and its resting vitals.
type Profile struct {
	Name     string
	Species  string
	Age      int
	Weight   float64
	Baseline Vitals
}

// Profiles are the built-in animals, keyed by name.
var Profiles = map[string]Profile{
	"oscar": {
		Name: "oscar", Species: "dog", Age: 3, Weight: 65,
		Baseline: Vitals{HeartRate: 80, Temperature: 101.5, SpO2: 98, Activity: 6.0},
	},
	"luna": {
		Name: "luna", Species: "cat", Age: 2, Weight: 12,
		Baseline: Vitals{HeartRate: 160, Temperature: 101.0, SpO2: 97, Activity: 4.0},
	},
}

// Sensor bounds applied after the scenario offsets.
const (
	minHeartRate   = 30
	maxHeartRate   = 250
	minTemperature = 95.0
	maxTemperature = 106.0
	minSpO2        = 80
	maxSpO2        = 100
	minActivity    = 0.0
	maxActivity    = 10.0
	minBattery     = 20
	maxBattery     = 100

	homeLatitude  = 40.7128
	homeLongitude = -74.0060
	gpsJitter     = 0.001
)

// Reading is the JSON body accepted by POST /api/v1/pets/:id/health.
type Reading struct {
	Timestamp     time.Time `json:"timestamp"`
	HeartRate     int       `json:"heart_rate"`
	Temperature   float64   `json:"temperature"`
	SpO2          int       `json:"spo2"`
	ActivityLevel float64   `json:"activity_level"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	BatteryLevel  int       `json:"battery_level"`
	CollarID      string    `json:"collar_id"`
}

// Generator derives readings from a profile. It is not safe for concurrent use.
type Generator struct {
	rng      *rand.Rand
	profile  Profile
	collarID string
}

// NewGenerator returns a generator for profile. A nil rng uses a randomly seeded source.
func NewGenerator(profile Profile, collarID string, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Generator{rng: rng, profile: profile, collarID: collarID}
}

// Generate samples one reading under scenario at time now.
func (g *Generator) Generate(scenario Scenario, now time.Time) Reading {
	v := g.profile.Baseline

	switch scenario {
	case ScenarioExcited:
		v.HeartRate += g.intBetween(20, 50)
		v.Activity += g.between(2.0, 4.0)
		v.Temperature += g.between(0.5, 1.0)
	case ScenarioSick:
		v.Temperature += g.between(2.0, 4.0)
		v.HeartRate += g.intBetween(15, 30)
		v.SpO2 -= g.intBetween(3, 8)
		v.Activity -= g.between(2.0, 4.0)
	case ScenarioSleeping:
		v.HeartRate -= g.intBetween(10, 20)
		v.Activity = g.between(0.0, 0.5)
		v.Temperature -= g.between(0.2, 0.5)
	default:
		v.HeartRate += g.intBetween(-10, 10)
		v.Temperature += g.between(-0.3, 0.3)
		v.SpO2 += g.intBetween(-2, 2)
		v.Activity += g.between(-1.0, 1.0)
	}

	return Reading{
		Timestamp:     now.UTC(),
		HeartRate:     clamp(v.HeartRate, minHeartRate, maxHeartRate),
		Temperature:   round1(clamp(v.Temperature, minTemperature, maxTemperature)),
		SpO2:          clamp(v.SpO2, minSpO2, maxSpO2),
		ActivityLevel: round1(clamp(v.Activity, minActivity, maxActivity)),
		Latitude:      homeLatitude + g.between(-gpsJitter, gpsJitter),
		Longitude:     homeLongitude + g.between(-gpsJitter, gpsJitter),
		BatteryLevel:  g.intBetween(minBattery, maxBattery),
		CollarID:      g.collarID,
	}
}

// NextScenario switches to a random concrete scenario with probability p.
func (g *Generator) NextScenario(current Scenario, p float64) Scenario {
	if g.rng.Float64() >= p {
		return current
	}

	return Scenarios[g.rng.IntN(len(Scenarios))]
}

func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween is inclusive on both ends.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func clamp[T int | float64](v, lo, hi T) T {
	return max(lo, min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
