package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/relocateiq/country-analyzer/internal/country"
)

// buildReasoning produces the ordered explanation sentences for one ranked
// country. Each dimension contributes independently; the closing sentence
// always ties the weighting back to the caller's inputs.
func buildReasoning(r RankedResult, ds country.DataSet, w WeightProfile, risk RiskTolerance, duration StayDuration) []string {
	var sentences []string

	if s := travelRiskSentence(r.TravelRisk); s != "" {
		sentences = append(sentences, s)
	}
	if s := healthSentence(r.HealthInfrastructure, ds); s != "" {
		sentences = append(sentences, s)
	}
	if s := environmentSentence(r.EnvironmentalStability); s != "" {
		sentences = append(sentences, s)
	}

	dim, weight := w.heaviest()
	sentences = append(sentences, fmt.Sprintf(
		"Scoring weighted %s highest (%.1f%%) based on your %s risk tolerance and %s stay.",
		dim, weight*100, risk, duration))

	return sentences
}

func travelRiskSentence(b Breakdown) string {
	switch {
	case b.Score >= 75:
		return "Low travel risk with favorable safety, air quality, and weather conditions."
	case b.Score <= 40:
		var concerns []string
		if b.Components[subAdvisory] < 40 {
			concerns = append(concerns, "safety advisories")
		}
		if b.Components[subAirQuality] < 40 {
			concerns = append(concerns, "poor air quality")
		}
		if b.Components[subTemperatureComfort] < 40 {
			concerns = append(concerns, "uncomfortable temperatures")
		}
		if len(concerns) == 0 {
			return "Elevated travel risk driven by multiple factors."
		}
		return fmt.Sprintf("Elevated travel risk driven by %s.", strings.Join(concerns, ", "))
	default:
		if weakestComponent(b) == subAdvisory {
			return "Moderate travel risk; safety advisories are the main concern."
		}
		return "Moderate travel risk; local conditions are the main concern."
	}
}

func healthSentence(b Breakdown, ds country.DataSet) string {
	var life, spend *float64
	if ds.Economy != nil {
		life = ds.Economy.LifeExpectancy
		spend = ds.Economy.HealthExpenditurePct
	}

	switch {
	case b.Score >= 70:
		return fmt.Sprintf(
			"Strong health infrastructure: life expectancy of %s years and healthcare spending at %s%% of GDP.",
			fmtMetric(life), fmtMetric(spend))
	case b.Score <= 40:
		return fmt.Sprintf(
			"Limited health infrastructure: life expectancy of %s years and healthcare spending at %s%% of GDP.",
			fmtMetric(life), fmtMetric(spend))
	default:
		return "Health infrastructure is adequate for most needs."
	}
}

func environmentSentence(b Breakdown) string {
	switch {
	case b.Score >= 70:
		return "Stable environmental conditions with clean air and mild weather."
	case b.Score <= 40:
		var issue string
		switch weakestComponent(b) {
		case subAirQuality:
			issue = "air quality"
		case subHumidityDeviation:
			issue = "humidity levels"
		default:
			issue = "weather volatility"
		}
		return fmt.Sprintf("Unstable environmental conditions; %s is the biggest issue.", issue)
	default:
		// Middling stability is not worth a sentence.
		return ""
	}
}

// weakestComponent returns the name of the lowest-scoring sub-component.
// Ties resolve deterministically by name so output is reproducible.
func weakestComponent(b Breakdown) string {
	weakest, score := "", 101
	for _, name := range sortedComponentNames(b) {
		if b.Components[name] < score {
			weakest, score = name, b.Components[name]
		}
	}
	return weakest
}

func sortedComponentNames(b Breakdown) []string {
	names := make([]string, 0, len(b.Components))
	for name := range b.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fmtMetric renders a possibly-missing metric for reasoning text.
func fmtMetric(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *v)
}
