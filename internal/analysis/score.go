package analysis

import (
	"math"

	"github.com/relocateiq/country-analyzer/internal/country"
)

// Dimension identifies one of the three scored dimensions.
type Dimension int

const (
	DimensionTravelRisk Dimension = iota
	DimensionHealthInfrastructure
	DimensionEnvironmentalStability
)

// String returns the display name used in API payloads and reasoning text.
func (d Dimension) String() string {
	switch d {
	case DimensionTravelRisk:
		return "travel risk"
	case DimensionHealthInfrastructure:
		return "health infrastructure"
	case DimensionEnvironmentalStability:
		return "environmental stability"
	default:
		return "unknown"
	}
}

// Breakdown is a 0-100 dimension score plus its named sub-component scores,
// kept for explainability.
type Breakdown struct {
	Score      int            `json:"score"`
	Components map[string]int `json:"components"`
}

// Sub-component names shared by scoring and reasoning.
const (
	subTemperatureComfort    = "temperatureComfort"
	subAirQuality            = "airQuality"
	subAdvisory              = "advisory"
	subWeatherEvent          = "weatherEvent"
	subHealthExpenditure     = "healthExpenditure"
	subLifeExpectancy        = "lifeExpectancy"
	subPopulationPressure    = "populationPressure"
	subTemperatureVolatility = "temperatureVolatility"
	subWindSpeed             = "windSpeed"
	subHumidityDeviation     = "humidityDeviation"
)

// idealTempC is the comfort reference temperature.
const idealTempC = 21.5

// TravelRiskScore blends temperature comfort, air quality, the travel
// advisory level, and active weather severity.
func TravelRiskScore(ds country.DataSet) Breakdown {
	var tempDist *float64
	if ds.Weather != nil && ds.Weather.TempC != nil {
		d := math.Abs(*ds.Weather.TempC - idealTempC)
		tempDist = &d
	}

	var aqi *float64
	if ds.AirQuality != nil {
		aqi = ds.AirQuality.AQI
	}

	var advisory *float64
	if ds.Advisory != nil {
		advisory = ds.Advisory.Score
	}

	// An absent condition code is an absent metric, not a calm one.
	weatherEvent := DefaultScore
	if ds.Weather != nil && ds.Weather.ConditionCode != nil {
		weatherEvent = 100 - severityPenalty(*ds.Weather.ConditionCode)
	}

	components := map[string]int{
		subTemperatureComfort: Normalize(tempDist, 0, 40, false),
		subAirQuality:         Normalize(aqi, 0, 300, false),
		subAdvisory:           Normalize(advisory, 1, 5, false),
		subWeatherEvent:       weatherEvent,
	}

	weighted := 0.20*float64(components[subTemperatureComfort]) +
		0.30*float64(components[subAirQuality]) +
		0.35*float64(components[subAdvisory]) +
		0.15*float64(components[subWeatherEvent])

	return Breakdown{Score: clampScore(weighted), Components: components}
}

// HealthInfrastructureScore blends healthcare spending, life expectancy,
// and population pressure.
func HealthInfrastructureScore(ds country.DataSet) Breakdown {
	var expenditure, lifeExpectancy *float64
	if ds.Economy != nil {
		expenditure = ds.Economy.HealthExpenditurePct
		lifeExpectancy = ds.Economy.LifeExpectancy
	}

	// Population pressure compares orders of magnitude, not raw counts.
	var logPop *float64
	if ds.Profile != nil && ds.Profile.Population != nil && *ds.Profile.Population > 0 {
		lp := math.Log10(float64(*ds.Profile.Population))
		logPop = &lp
	}

	components := map[string]int{
		subHealthExpenditure:  Normalize(expenditure, 1, 15, true),
		subLifeExpectancy:     Normalize(lifeExpectancy, 45, 90, true),
		subPopulationPressure: Normalize(logPop, math.Log10(1e5), math.Log10(2e9), false),
	}

	weighted := 0.40*float64(components[subHealthExpenditure]) +
		0.45*float64(components[subLifeExpectancy]) +
		0.15*float64(components[subPopulationPressure])

	return Breakdown{Score: clampScore(weighted), Components: components}
}

// EnvironmentalStabilityScore blends air quality, temperature volatility,
// wind speed, and humidity deviation.
func EnvironmentalStabilityScore(ds country.DataSet) Breakdown {
	var aqi *float64
	if ds.AirQuality != nil {
		aqi = ds.AirQuality.AQI
	}

	var volatility, wind, humidityDev *float64
	if ds.Weather != nil {
		if ds.Weather.TempMaxC != nil && ds.Weather.TempMinC != nil {
			v := *ds.Weather.TempMaxC - *ds.Weather.TempMinC
			volatility = &v
		}
		wind = ds.Weather.WindSpeedMS
		if ds.Weather.HumidityPct != nil {
			d := math.Abs(*ds.Weather.HumidityPct - 45)
			humidityDev = &d
		}
	}

	components := map[string]int{
		subAirQuality:            Normalize(aqi, 0, 300, false),
		subTemperatureVolatility: Normalize(volatility, 0, 20, false),
		subWindSpeed:             Normalize(wind, 0, 20, false),
		subHumidityDeviation:     Normalize(humidityDev, 0, 55, false),
	}

	weighted := 0.35*float64(components[subAirQuality]) +
		0.25*float64(components[subTemperatureVolatility]) +
		0.15*float64(components[subWindSpeed]) +
		0.25*float64(components[subHumidityDeviation])

	return Breakdown{Score: clampScore(weighted), Components: components}
}

// severityPenalty maps an OpenWeather condition code band to a deduction
// from the weather-event sub-score. Clear sky (800) costs nothing.
func severityPenalty(code int) int {
	switch {
	case code >= 200 && code <= 299: // thunderstorm
		return 70
	case code >= 300 && code <= 399: // drizzle
		return 20
	case code >= 500 && code <= 599: // rain
		return 40
	case code >= 600 && code <= 699: // snow
		return 60
	case code >= 700 && code <= 799: // atmosphere (fog, dust, ...)
		return 50
	case code == 800:
		return 0
	case code >= 801 && code <= 809: // clouds
		return 10
	default:
		return 0
	}
}
