package country

// Profile holds the identity data for a country as reported by the
// profile source. Pointer fields are nil when the upstream omitted them.
type Profile struct {
	Name       string   `json:"name"`
	ISOCode    string   `json:"isoCode"` // alpha-2
	Capital    string   `json:"capital,omitempty"`
	Region     string   `json:"region,omitempty"`
	Population *int64   `json:"population,omitempty"`
	Currencies []string `json:"currencies,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Flag       string   `json:"flag,omitempty"`

	// Capital coordinates, when the profile source reports them.
	CapitalLat *float64 `json:"capitalLat,omitempty"`
	CapitalLon *float64 `json:"capitalLon,omitempty"`
}

// Economy holds the development indicators used for health scoring.
type Economy struct {
	LifeExpectancy       *float64 `json:"lifeExpectancyYears,omitempty"`
	HealthExpenditurePct *float64 `json:"healthExpenditurePctGDP,omitempty"`
}

// Weather is the current-conditions snapshot for the capital city.
type Weather struct {
	TempC         *float64 `json:"tempC,omitempty"`
	TempMinC      *float64 `json:"tempMinC,omitempty"`
	TempMaxC      *float64 `json:"tempMaxC,omitempty"`
	HumidityPct   *float64 `json:"humidityPercent,omitempty"`
	WindSpeedMS   *float64 `json:"windSpeedMS,omitempty"`
	ConditionCode *int     `json:"conditionCode,omitempty"`
}

// AirQuality is the capital-city air quality reading.
type AirQuality struct {
	AQI               *float64 `json:"aqi,omitempty"`
	DominantPollutant string   `json:"dominantPollutant,omitempty"`
}

// Advisory is the travel advisory risk reading, 1 (safe) to 5 (avoid).
type Advisory struct {
	Score   *float64 `json:"score,omitempty"`
	Message string   `json:"message,omitempty"`
}

// DataSet is the merged, partially-nullable view of one country across all
// sources. A nil section means that source failed or had nothing; scoring
// treats absent metrics as neutral rather than erroring.
type DataSet struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`

	Profile    *Profile    `json:"profile,omitempty"`
	Economy    *Economy    `json:"economy,omitempty"`
	Weather    *Weather    `json:"weather,omitempty"`
	AirQuality *AirQuality `json:"airQuality,omitempty"`
	Advisory   *Advisory   `json:"advisory,omitempty"`
}
