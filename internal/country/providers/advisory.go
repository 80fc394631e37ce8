package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/relocateiq/country-analyzer/internal/country"
)

// TravelAdvisorySource implements country.AdvisorySource against the
// travel-advisory.info API. Scores run from 1 (safe) to 5 (avoid).
type TravelAdvisorySource struct {
	baseURL string
	client  *sourceClient
}

func NewTravelAdvisorySource(client *http.Client) *TravelAdvisorySource {
	return &TravelAdvisorySource{
		baseURL: "https://www.travel-advisory.info/api",
		client:  newSourceClient(client, "travel-advisory"),
	}
}

func (s *TravelAdvisorySource) FetchAdvisory(ctx context.Context, isoCode string) (country.Advisory, error) {
	iso := strings.ToUpper(isoCode)

	var payload struct {
		Data map[string]struct {
			Advisory struct {
				Score   float64 `json:"score"`
				Message string  `json:"message"`
			} `json:"advisory"`
		} `json:"data"`
	}

	u := fmt.Sprintf("%s?countrycode=%s", s.baseURL, url.QueryEscape(iso))
	if err := s.client.getJSON(ctx, u, &payload); err != nil {
		return country.Advisory{}, fmt.Errorf("travel-advisory: %w", err)
	}

	entry, ok := payload.Data[iso]
	if !ok {
		return country.Advisory{}, fmt.Errorf("travel-advisory: no entry for %s", iso)
	}

	score := entry.Advisory.Score
	return country.Advisory{
		Score:   &score,
		Message: entry.Advisory.Message,
	}, nil
}
