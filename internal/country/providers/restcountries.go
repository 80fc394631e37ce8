package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/relocateiq/country-analyzer/internal/country"
)

// RestCountriesSource implements country.ProfileSource against the
// REST Countries v3 API. No API key required.
type RestCountriesSource struct {
	baseURL string
	client  *sourceClient
}

func NewRestCountriesSource(client *http.Client) *RestCountriesSource {
	return &RestCountriesSource{
		baseURL: "https://restcountries.com/v3.1/name",
		client:  newSourceClient(client, "restcountries"),
	}
}

func (s *RestCountriesSource) FetchProfile(ctx context.Context, name string) (country.Profile, error) {
	u := fmt.Sprintf("%s/%s?fullText=false", s.baseURL, url.PathEscape(name))

	var payload []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
		CCA2       string            `json:"cca2"`
		Capital    []string          `json:"capital"`
		Region     string            `json:"region"`
		Population int64             `json:"population"`
		Languages  map[string]string `json:"languages"`
		Currencies map[string]struct {
			Name string `json:"name"`
		} `json:"currencies"`
		Flags struct {
			PNG string `json:"png"`
		} `json:"flags"`
		CapitalInfo struct {
			LatLng []float64 `json:"latlng"`
		} `json:"capitalInfo"`
	}

	if err := s.client.getJSON(ctx, u, &payload); err != nil {
		return country.Profile{}, fmt.Errorf("restcountries: %w", err)
	}
	if len(payload) == 0 {
		return country.Profile{}, fmt.Errorf("restcountries: no match for %q", name)
	}

	// The API returns fuzzy matches; the first entry is the best one.
	m := payload[0]

	profile := country.Profile{
		Name:    m.Name.Common,
		ISOCode: m.CCA2,
		Region:  m.Region,
		Flag:    m.Flags.PNG,
	}

	if len(m.Capital) > 0 {
		profile.Capital = m.Capital[0]
	}
	if m.Population > 0 {
		pop := m.Population
		profile.Population = &pop
	}
	for _, lang := range m.Languages {
		profile.Languages = append(profile.Languages, lang)
	}
	for _, cur := range m.Currencies {
		profile.Currencies = append(profile.Currencies, cur.Name)
	}
	if len(m.CapitalInfo.LatLng) == 2 {
		lat, lon := m.CapitalInfo.LatLng[0], m.CapitalInfo.LatLng[1]
		profile.CapitalLat = &lat
		profile.CapitalLon = &lon
	}

	return profile, nil
}
