package country

import "context"

// Provider is the single capability the analysis core consumes: fetch the
// full merged dataset for a country name.
type Provider interface {
	Fetch(ctx context.Context, name string) (DataSet, error)
}

// ProfileSource resolves a country name to its identity profile. Its failure
// fails the whole country fetch, since every other source keys off the
// profile's ISO code and capital.
type ProfileSource interface {
	FetchProfile(ctx context.Context, name string) (Profile, error)
}

// EconomySource fetches development indicators by ISO alpha-2 code.
type EconomySource interface {
	FetchEconomy(ctx context.Context, isoCode string) (Economy, error)
}

// WeatherSource fetches current weather for a city.
type WeatherSource interface {
	FetchWeather(ctx context.Context, city, isoCode string) (Weather, error)
}

// AirQualityQuery locates an air quality reading. Lat/Lon are preferred when
// present; otherwise implementations may geocode City/ISOCode.
type AirQualityQuery struct {
	City    string
	ISOCode string
	Lat     *float64
	Lon     *float64
}

// AirQualitySource fetches an air quality reading for a location.
type AirQualitySource interface {
	FetchAirQuality(ctx context.Context, q AirQualityQuery) (AirQuality, error)
}

// AdvisorySource fetches the travel advisory score by ISO alpha-2 code.
type AdvisorySource interface {
	FetchAdvisory(ctx context.Context, isoCode string) (Advisory, error)
}
