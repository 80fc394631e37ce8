package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/relocateiq/country-analyzer/internal/country"
)

// OpenWeatherSource implements country.WeatherSource against OpenWeatherMap's
// current weather endpoint, queried by capital city.
type OpenWeatherSource struct {
	apiKey  string
	baseURL string
	client  *sourceClient
}

func NewOpenWeatherSource(client *http.Client, apiKey string) *OpenWeatherSource {
	return &OpenWeatherSource{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		client:  newSourceClient(client, "openweather"),
	}
}

func (s *OpenWeatherSource) FetchWeather(ctx context.Context, city, isoCode string) (country.Weather, error) {
	if s.apiKey == "" {
		return country.Weather{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("appid", s.apiKey)
	values.Set("units", "metric")
	q := city
	if isoCode != "" {
		q = fmt.Sprintf("%s,%s", city, isoCode)
	}
	values.Set("q", q)

	var payload struct {
		Main struct {
			Temp     *float64 `json:"temp"`
			TempMin  *float64 `json:"temp_min"`
			TempMax  *float64 `json:"temp_max"`
			Humidity *float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed *float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			ID int `json:"id"`
		} `json:"weather"`
	}

	u := fmt.Sprintf("%s?%s", s.baseURL, values.Encode())
	if err := s.client.getJSON(ctx, u, &payload); err != nil {
		return country.Weather{}, fmt.Errorf("openweather: %w", err)
	}

	w := country.Weather{
		TempC:       payload.Main.Temp,
		TempMinC:    payload.Main.TempMin,
		TempMaxC:    payload.Main.TempMax,
		HumidityPct: payload.Main.Humidity,
		WindSpeedMS: payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		code := payload.Weather[0].ID
		w.ConditionCode = &code
	}

	return w, nil
}
