package analysis

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/relocateiq/country-analyzer/internal/cache"
	"github.com/relocateiq/country-analyzer/internal/country"
)

// ErrNoValidCountries is returned when none of the requested countries
// could be resolved; scoring is skipped entirely in that case.
var ErrNoValidCountries = errors.New("no valid countries to analyze")

// Request carries the caller's inputs for one analysis.
type Request struct {
	Countries     []string
	RiskTolerance RiskTolerance
	Duration      StayDuration
}

// FailedCountry records one country whose data fetch failed. Its failure
// never affects sibling countries.
type FailedCountry struct {
	Country string `json:"country"`
	Reason  string `json:"reason"`
}

// Counts aggregates per-request accounting.
type Counts struct {
	Analyzed    int `json:"analyzed"`
	Failed      int `json:"failed"`
	CacheHits   int `json:"cacheHits"`
	CacheMisses int `json:"cacheMisses"`
}

// Result is the full response for one analysis request.
type Result struct {
	Ranked        []RankedResult  `json:"ranked"`
	Failed        []FailedCountry `json:"failed"`
	WeightProfile WeightProfile   `json:"weightProfile"`
	Counts        Counts          `json:"counts"`
}

// Service drives the per-request pipeline: concurrent cache-or-fetch per
// unique country, failure partitioning, scoring, and ranking. The cache is
// the only state shared across requests.
type Service struct {
	provider country.Provider
	cache    *cache.Cache[country.DataSet]
}

// NewService creates a Service around a data provider and a shared cache.
func NewService(provider country.Provider, c *cache.Cache[country.DataSet]) *Service {
	return &Service{
		provider: provider,
		cache:    c,
	}
}

// Analyze fetches, scores, and ranks the requested countries.
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	names := dedupeNames(req.Countries)
	if len(names) == 0 {
		return nil, ErrNoValidCountries
	}

	type outcome struct {
		name string
		data country.DataSet
		hit  bool
		err  error
	}

	// One fetch per unique country, all concurrent. Slots keep first-seen
	// input order so ranking ties stay deterministic.
	outcomes := make([]outcome, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			data, hit, err := s.cache.GetOrFetch(strings.ToLower(name), func() (country.DataSet, error) {
				return s.provider.Fetch(ctx, name)
			})
			outcomes[i] = outcome{name: name, data: data, hit: hit, err: err}
		}(i, name)
	}
	wg.Wait()

	result := &Result{}
	var valid []RankedResult

	for _, o := range outcomes {
		if o.hit {
			result.Counts.CacheHits++
		} else {
			result.Counts.CacheMisses++
		}

		if o.err != nil || !o.data.Found {
			reason := "country not found"
			if o.err != nil {
				reason = o.err.Error()
			}
			result.Failed = append(result.Failed, FailedCountry{Country: o.name, Reason: reason})
			result.Counts.Failed++
			continue
		}

		valid = append(valid, RankedResult{
			Country:                o.data,
			TravelRisk:             TravelRiskScore(o.data),
			HealthInfrastructure:   HealthInfrastructureScore(o.data),
			EnvironmentalStability: EnvironmentalStabilityScore(o.data),
			CacheHit:               o.hit,
		})
	}

	if len(valid) == 0 {
		return nil, ErrNoValidCountries
	}

	// Weights depend only on the request inputs, never per-country.
	weights := ResolveWeights(req.RiskTolerance, req.Duration)

	for i := range valid {
		valid[i].CompositeScore = compositeScore(valid[i], weights)
	}
	rankResults(valid)
	for i := range valid {
		valid[i].Reasoning = buildReasoning(valid[i], valid[i].Country, weights, req.RiskTolerance, req.Duration)
	}

	result.Ranked = valid
	result.Counts.Analyzed = len(valid)
	result.WeightProfile = weights.Rounded()
	return result, nil
}

// Warm fetches the given countries through the cache so interactive
// requests find fresh entries. Failures are logged and skipped.
func (s *Service) Warm(ctx context.Context, countries []string) {
	for _, name := range dedupeNames(countries) {
		_, _, err := s.cache.GetOrFetch(strings.ToLower(name), func() (country.DataSet, error) {
			return s.provider.Fetch(ctx, name)
		})
		if err != nil {
			log.Printf("cache warm failed for %s: %v", name, err)
		}
	}
}

// dedupeNames removes duplicate names case-insensitively, preserving
// first-seen order and trimming surrounding whitespace.
func dedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
