package country

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// AggregatedProvider merges the five upstream sources into one DataSet.
// The profile source is authoritative: if it cannot resolve the name, the
// whole fetch fails. The remaining sources are fetched concurrently and a
// failure in any of them only leaves its section nil.
type AggregatedProvider struct {
	profile    ProfileSource
	economy    EconomySource
	weather    WeatherSource
	airQuality AirQualitySource
	advisory   AdvisorySource
}

// NewAggregatedProvider wires the five sources. Any source other than
// profile may be nil; its section is then always absent.
func NewAggregatedProvider(
	profile ProfileSource,
	economy EconomySource,
	weather WeatherSource,
	airQuality AirQualitySource,
	advisory AdvisorySource,
) *AggregatedProvider {
	return &AggregatedProvider{
		profile:    profile,
		economy:    economy,
		weather:    weather,
		airQuality: airQuality,
		advisory:   advisory,
	}
}

// Fetch resolves the profile first, then fans out to the remaining sources.
func (p *AggregatedProvider) Fetch(ctx context.Context, name string) (DataSet, error) {
	if p.profile == nil {
		return DataSet{}, fmt.Errorf("no profile source configured")
	}

	profile, err := p.profile.FetchProfile(ctx, name)
	if err != nil {
		return DataSet{}, fmt.Errorf("country %q: %w", name, err)
	}

	ds := DataSet{
		Name:    name,
		Found:   true,
		Profile: &profile,
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	if p.economy != nil && profile.ISOCode != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			eco, err := p.economy.FetchEconomy(ctx, profile.ISOCode)
			if err != nil {
				// Log and continue; we want partial success when possible.
				log.Printf("economy fetch failed for %s: %v", name, err)
				return
			}
			mu.Lock()
			ds.Economy = &eco
			mu.Unlock()
		}()
	}

	if p.weather != nil && profile.Capital != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, err := p.weather.FetchWeather(ctx, profile.Capital, profile.ISOCode)
			if err != nil {
				log.Printf("weather fetch failed for %s: %v", name, err)
				return
			}
			mu.Lock()
			ds.Weather = &w
			mu.Unlock()
		}()
	}

	if p.airQuality != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			aq, err := p.airQuality.FetchAirQuality(ctx, AirQualityQuery{
				City:    profile.Capital,
				ISOCode: profile.ISOCode,
				Lat:     profile.CapitalLat,
				Lon:     profile.CapitalLon,
			})
			if err != nil {
				log.Printf("air quality fetch failed for %s: %v", name, err)
				return
			}
			mu.Lock()
			ds.AirQuality = &aq
			mu.Unlock()
		}()
	}

	if p.advisory != nil && profile.ISOCode != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			adv, err := p.advisory.FetchAdvisory(ctx, profile.ISOCode)
			if err != nil {
				log.Printf("advisory fetch failed for %s: %v", name, err)
				return
			}
			mu.Lock()
			ds.Advisory = &adv
			mu.Unlock()
		}()
	}

	wg.Wait()
	return ds, nil
}
