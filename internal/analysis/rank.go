package analysis

import (
	"fmt"
	"sort"

	"github.com/relocateiq/country-analyzer/internal/country"
)

// RankedResult is one country's scored, ranked, and explained entry in an
// analysis response. It is request-scoped and never persisted.
type RankedResult struct {
	Country country.DataSet `json:"country"`

	TravelRisk             Breakdown `json:"travelRisk"`
	HealthInfrastructure   Breakdown `json:"healthInfrastructure"`
	EnvironmentalStability Breakdown `json:"environmentalStability"`

	CompositeScore int      `json:"compositeScore"`
	Rank           int      `json:"rank"`
	Label          string   `json:"label"`
	Reasoning      []string `json:"reasoning"`
	CacheHit       bool     `json:"cacheHit"`
}

// compositeScore blends the three dimension scores under the resolved
// weight profile.
func compositeScore(r RankedResult, w WeightProfile) int {
	blended := float64(r.TravelRisk.Score)*w.TravelRisk +
		float64(r.HealthInfrastructure.Score)*w.HealthInfrastructure +
		float64(r.EnvironmentalStability.Score)*w.EnvironmentalStability
	return clampScore(blended)
}

// rankResults orders results by composite score descending and assigns
// ranks and labels. The sort is stable, so ties keep first-seen input order.
func rankResults(results []RankedResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompositeScore > results[j].CompositeScore
	})
	for i := range results {
		results[i].Rank = i + 1
		results[i].Label = rankLabel(i + 1)
	}
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "Best Match"
	case 2:
		return "Strong Alternative"
	case 3:
		return "Good Option"
	default:
		return fmt.Sprintf("#%d Option", rank)
	}
}
