package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kelvins/geocoder"
	"github.com/relocateiq/country-analyzer/internal/country"
)

// WAQISource implements country.AirQualitySource against the World Air
// Quality Index project feed. The feed is keyed by coordinates; when the
// caller has none, the capital city is geocoded first.
type WAQISource struct {
	token   string
	baseURL string
	client  *sourceClient
}

func NewWAQISource(client *http.Client, token, geocoderAPIKey string) *WAQISource {
	// The geocoder package keys off a package-level API key.
	if geocoderAPIKey != "" {
		geocoder.ApiKey = geocoderAPIKey
	}
	return &WAQISource{
		token:   token,
		baseURL: "https://api.waqi.info/feed",
		client:  newSourceClient(client, "waqi"),
	}
}

func (s *WAQISource) FetchAirQuality(ctx context.Context, q country.AirQualityQuery) (country.AirQuality, error) {
	if s.token == "" {
		return country.AirQuality{}, fmt.Errorf("waqi api token is not configured")
	}

	lat, lon, err := s.coordinates(q)
	if err != nil {
		return country.AirQuality{}, fmt.Errorf("waqi: %w", err)
	}

	var payload struct {
		Status string `json:"status"`
		Data   struct {
			AQI         float64 `json:"aqi"`
			DominentPol string  `json:"dominentpol"`
		} `json:"data"`
	}

	u := fmt.Sprintf("%s/geo:%f;%f/?token=%s", s.baseURL, lat, lon, url.QueryEscape(s.token))
	if err := s.client.getJSON(ctx, u, &payload); err != nil {
		return country.AirQuality{}, fmt.Errorf("waqi: %w", err)
	}
	if payload.Status != "ok" {
		return country.AirQuality{}, fmt.Errorf("waqi: status %q", payload.Status)
	}

	aqi := payload.Data.AQI
	return country.AirQuality{
		AQI:               &aqi,
		DominantPollutant: payload.Data.DominentPol,
	}, nil
}

func (s *WAQISource) coordinates(q country.AirQualityQuery) (float64, float64, error) {
	if q.Lat != nil && q.Lon != nil {
		return *q.Lat, *q.Lon, nil
	}
	if q.City == "" {
		return 0, 0, fmt.Errorf("no coordinates and no city to geocode")
	}

	loc, err := geocoder.Geocoding(geocoder.Address{
		City:    q.City,
		Country: q.ISOCode,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding %q: %w", q.City, err)
	}
	return loc.Latitude, loc.Longitude, nil
}
