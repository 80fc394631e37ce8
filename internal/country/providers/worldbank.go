package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/relocateiq/country-analyzer/internal/country"
)

const (
	indicatorLifeExpectancy    = "SP.DYN.LE00.IN"
	indicatorHealthExpenditure = "SH.XPD.CHEX.GD.ZS"
)

// WorldBankSource implements country.EconomySource against the World Bank
// indicators API, taking the most recent non-empty value per indicator.
type WorldBankSource struct {
	baseURL string
	client  *sourceClient
}

func NewWorldBankSource(client *http.Client) *WorldBankSource {
	return &WorldBankSource{
		baseURL: "https://api.worldbank.org/v2",
		client:  newSourceClient(client, "worldbank"),
	}
}

func (s *WorldBankSource) FetchEconomy(ctx context.Context, isoCode string) (country.Economy, error) {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		eco     country.Economy
		lastErr error
	)

	fetch := func(indicator string, assign func(*float64)) {
		defer wg.Done()
		v, err := s.fetchIndicator(ctx, isoCode, indicator)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			lastErr = err
			return
		}
		assign(v)
	}

	wg.Add(2)
	go fetch(indicatorLifeExpectancy, func(v *float64) { eco.LifeExpectancy = v })
	go fetch(indicatorHealthExpenditure, func(v *float64) { eco.HealthExpenditurePct = v })
	wg.Wait()

	// Partial data is usable; fail only when both indicators are missing.
	if eco.LifeExpectancy == nil && eco.HealthExpenditurePct == nil && lastErr != nil {
		return country.Economy{}, fmt.Errorf("worldbank: %w", lastErr)
	}
	return eco, nil
}

// fetchIndicator returns the most recent non-empty value, or nil when the
// indicator has no data for the country.
func (s *WorldBankSource) fetchIndicator(ctx context.Context, isoCode, indicator string) (*float64, error) {
	u := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&mrnev=1&per_page=1",
		s.baseURL, isoCode, indicator)

	// The World Bank response is a two-element array: [metadata, rows].
	var raw []json.RawMessage
	if err := s.client.getJSON(ctx, u, &raw); err != nil {
		return nil, err
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("malformed response for %s", indicator)
	}

	var rows []struct {
		Value *float64 `json:"value"`
		Date  string   `json:"date"`
	}
	if err := json.Unmarshal(raw[1], &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 || rows[0].Value == nil {
		return nil, nil
	}
	return rows[0].Value, nil
}
