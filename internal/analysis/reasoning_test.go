package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relocateiq/country-analyzer/internal/country"
)

func TestTravelRiskSentencePositive(t *testing.T) {
	s := travelRiskSentence(Breakdown{Score: 80})
	assert.Contains(t, s, "Low travel risk")
}

func TestTravelRiskSentenceListsConcerns(t *testing.T) {
	b := Breakdown{
		Score: 30,
		Components: map[string]int{
			subAdvisory:           20,
			subAirQuality:         35,
			subTemperatureComfort: 90,
			subWeatherEvent:       50,
		},
	}
	s := travelRiskSentence(b)
	assert.Contains(t, s, "safety advisories")
	assert.Contains(t, s, "poor air quality")
	assert.NotContains(t, s, "temperatures")
}

func TestTravelRiskSentenceFallsBackToMultipleFactors(t *testing.T) {
	// Low overall score but no individual sub-component below 40.
	b := Breakdown{
		Score: 40,
		Components: map[string]int{
			subAdvisory:           45,
			subAirQuality:         45,
			subTemperatureComfort: 45,
			subWeatherEvent:       45,
		},
	}
	assert.Contains(t, travelRiskSentence(b), "multiple factors")
}

func TestHealthSentenceCitesValues(t *testing.T) {
	ds := country.DataSet{
		Economy: &country.Economy{
			LifeExpectancy:       fptr(82.34),
			HealthExpenditurePct: fptr(9.876),
		},
	}
	s := healthSentence(Breakdown{Score: 85}, ds)
	assert.Contains(t, s, "82.3")
	assert.Contains(t, s, "9.9")
}

func TestHealthSentenceRendersMissingAsNA(t *testing.T) {
	s := healthSentence(Breakdown{Score: 20}, country.DataSet{})
	assert.Contains(t, s, "N/A")
}

func TestEnvironmentSentenceSilentInMiddle(t *testing.T) {
	assert.Empty(t, environmentSentence(Breakdown{Score: 55}))
}

func TestEnvironmentSentenceNamesWorstOffender(t *testing.T) {
	b := Breakdown{
		Score: 30,
		Components: map[string]int{
			subAirQuality:            10,
			subHumidityDeviation:     60,
			subTemperatureVolatility: 50,
			subWindSpeed:             50,
		},
	}
	assert.Contains(t, environmentSentence(b), "air quality")

	b.Components[subAirQuality] = 60
	b.Components[subHumidityDeviation] = 10
	assert.Contains(t, environmentSentence(b), "humidity")

	b.Components[subHumidityDeviation] = 60
	b.Components[subTemperatureVolatility] = 10
	assert.Contains(t, environmentSentence(b), "weather volatility")
}

func TestReasoningAlwaysEndsWithWeightingSentence(t *testing.T) {
	w := ResolveWeights(RiskModerate, StayShort)
	r := RankedResult{
		TravelRisk:             Breakdown{Score: 55, Components: map[string]int{}},
		HealthInfrastructure:   Breakdown{Score: 55},
		EnvironmentalStability: Breakdown{Score: 55},
	}

	sentences := buildReasoning(r, country.DataSet{}, w, RiskModerate, StayShort)
	require.NotEmpty(t, sentences)

	last := sentences[len(sentences)-1]
	assert.Contains(t, last, "travel risk")
	assert.Contains(t, last, "40.0%")
	assert.Contains(t, last, "moderate")
	assert.Contains(t, last, "short")
}
