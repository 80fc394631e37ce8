package analysis

import "math"

// RiskTolerance is the caller's appetite for travel risk.
type RiskTolerance string

const (
	RiskLow      RiskTolerance = "low"
	RiskModerate RiskTolerance = "moderate"
	RiskHigh     RiskTolerance = "high"
)

// StayDuration is how long the caller intends to stay.
type StayDuration string

const (
	StayShort StayDuration = "short"
	StayLong  StayDuration = "long"
)

// WeightProfile is the blend applied to the three dimension scores.
// Weights are non-negative and sum to 1.0 (up to rounding at the
// reporting boundary).
type WeightProfile struct {
	TravelRisk             float64 `json:"travelRisk"`
	HealthInfrastructure   float64 `json:"healthInfrastructure"`
	EnvironmentalStability float64 `json:"environmentalStability"`
}

func baseWeights() WeightProfile {
	return WeightProfile{
		TravelRisk:             0.40,
		HealthInfrastructure:   0.35,
		EnvironmentalStability: 0.25,
	}
}

// ResolveWeights derives the weight profile from risk tolerance and stay
// duration. Each phase nudges the base profile and renormalizes before the
// next, so the duration phase operates on already-balanced weights.
func ResolveWeights(risk RiskTolerance, duration StayDuration) WeightProfile {
	w := baseWeights()

	switch risk {
	case RiskLow:
		w.TravelRisk += 0.10
		w.EnvironmentalStability += 0.05
		w.HealthInfrastructure -= 0.10
	case RiskHigh:
		w.TravelRisk -= 0.10
		w.HealthInfrastructure -= 0.05
		w.EnvironmentalStability += 0.10
	}
	w = w.renormalized()

	switch duration {
	case StayLong:
		w.HealthInfrastructure += 0.10
		w.TravelRisk -= 0.05
		w.EnvironmentalStability -= 0.05
	case StayShort:
		w.EnvironmentalStability += 0.08
		w.HealthInfrastructure -= 0.08
	}
	return w.renormalized()
}

func (w WeightProfile) renormalized() WeightProfile {
	sum := w.TravelRisk + w.HealthInfrastructure + w.EnvironmentalStability
	if sum == 0 {
		return w
	}
	return WeightProfile{
		TravelRisk:             w.TravelRisk / sum,
		HealthInfrastructure:   w.HealthInfrastructure / sum,
		EnvironmentalStability: w.EnvironmentalStability / sum,
	}
}

// Rounded returns the profile rounded to three decimals for external
// reporting. The triple may then miss 1.0 by a small epsilon; internal
// computation always uses the unrounded values.
func (w WeightProfile) Rounded() WeightProfile {
	return WeightProfile{
		TravelRisk:             round3(w.TravelRisk),
		HealthInfrastructure:   round3(w.HealthInfrastructure),
		EnvironmentalStability: round3(w.EnvironmentalStability),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// heaviest returns the dimension carrying the single highest weight.
func (w WeightProfile) heaviest() (Dimension, float64) {
	dim, weight := DimensionTravelRisk, w.TravelRisk
	if w.HealthInfrastructure > weight {
		dim, weight = DimensionHealthInfrastructure, w.HealthInfrastructure
	}
	if w.EnvironmentalStability > weight {
		dim, weight = DimensionEnvironmentalStability, w.EnvironmentalStability
	}
	return dim, weight
}
