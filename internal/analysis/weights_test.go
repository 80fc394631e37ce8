package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWeightsAlwaysNormalized(t *testing.T) {
	for _, risk := range []RiskTolerance{RiskLow, RiskModerate, RiskHigh} {
		for _, dur := range []StayDuration{StayShort, StayLong} {
			w := ResolveWeights(risk, dur)

			assert.GreaterOrEqual(t, w.TravelRisk, 0.0)
			assert.GreaterOrEqual(t, w.HealthInfrastructure, 0.0)
			assert.GreaterOrEqual(t, w.EnvironmentalStability, 0.0)

			sum := w.TravelRisk + w.HealthInfrastructure + w.EnvironmentalStability
			assert.InDelta(t, 1.0, sum, 1e-3, "risk=%s duration=%s", risk, dur)
		}
	}
}

func TestResolveWeightsModerateLong(t *testing.T) {
	// Moderate leaves the base untouched; long shifts 0.10 into health
	// infrastructure, funded evenly by the other two.
	w := ResolveWeights(RiskModerate, StayLong)
	assert.InDelta(t, 0.35, w.TravelRisk, 1e-9)
	assert.InDelta(t, 0.45, w.HealthInfrastructure, 1e-9)
	assert.InDelta(t, 0.20, w.EnvironmentalStability, 1e-9)
}

func TestResolveWeightsModerateShort(t *testing.T) {
	w := ResolveWeights(RiskModerate, StayShort)
	assert.InDelta(t, 0.40, w.TravelRisk, 1e-9)
	assert.InDelta(t, 0.27, w.HealthInfrastructure, 1e-9)
	assert.InDelta(t, 0.33, w.EnvironmentalStability, 1e-9)
}

func TestResolveWeightsLowLong(t *testing.T) {
	// Low tolerance boosts travel risk before the long-stay phase applies
	// its shifts to the renormalized profile.
	w := ResolveWeights(RiskLow, StayLong)
	assert.InDelta(t, 0.4261904762, w.TravelRisk, 1e-9)
	assert.InDelta(t, 0.3380952381, w.HealthInfrastructure, 1e-9)
	assert.InDelta(t, 0.2357142857, w.EnvironmentalStability, 1e-9)
}

func TestRoundedReportsThreeDecimals(t *testing.T) {
	w := ResolveWeights(RiskLow, StayLong).Rounded()
	assert.InDelta(t, 0.426, w.TravelRisk, 1e-12)
	assert.InDelta(t, 0.338, w.HealthInfrastructure, 1e-12)
	assert.InDelta(t, 0.236, w.EnvironmentalStability, 1e-12)
}

func TestHeaviestDimension(t *testing.T) {
	dim, weight := ResolveWeights(RiskModerate, StayLong).heaviest()
	assert.Equal(t, DimensionHealthInfrastructure, dim)
	assert.InDelta(t, 0.45, weight, 1e-9)

	dim, _ = ResolveWeights(RiskHigh, StayShort).heaviest()
	assert.Equal(t, DimensionEnvironmentalStability, dim)
}
