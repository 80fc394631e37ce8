package country

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfile struct {
	profile Profile
	err     error
}

func (f *fakeProfile) FetchProfile(context.Context, string) (Profile, error) {
	return f.profile, f.err
}

type fakeEconomy struct {
	economy Economy
	err     error
}

func (f *fakeEconomy) FetchEconomy(context.Context, string) (Economy, error) {
	return f.economy, f.err
}

type fakeWeather struct {
	weather Weather
	err     error
}

func (f *fakeWeather) FetchWeather(context.Context, string, string) (Weather, error) {
	return f.weather, f.err
}

type fakeAirQuality struct {
	air AirQuality
	err error
}

func (f *fakeAirQuality) FetchAirQuality(context.Context, AirQualityQuery) (AirQuality, error) {
	return f.air, f.err
}

type fakeAdvisory struct {
	advisory Advisory
	err      error
}

func (f *fakeAdvisory) FetchAdvisory(context.Context, string) (Advisory, error) {
	return f.advisory, f.err
}

func fullProfile() Profile {
	pop := int64(10_000_000)
	return Profile{
		Name:       "Portugal",
		ISOCode:    "PT",
		Capital:    "Lisbon",
		Population: &pop,
	}
}

func TestFetchMergesAllSources(t *testing.T) {
	life := 81.0
	aqi := 42.0
	score := 1.5
	temp := 19.0

	p := NewAggregatedProvider(
		&fakeProfile{profile: fullProfile()},
		&fakeEconomy{economy: Economy{LifeExpectancy: &life}},
		&fakeWeather{weather: Weather{TempC: &temp}},
		&fakeAirQuality{air: AirQuality{AQI: &aqi}},
		&fakeAdvisory{advisory: Advisory{Score: &score}},
	)

	ds, err := p.Fetch(context.Background(), "Portugal")
	require.NoError(t, err)

	assert.True(t, ds.Found)
	require.NotNil(t, ds.Profile)
	assert.Equal(t, "PT", ds.Profile.ISOCode)
	require.NotNil(t, ds.Economy)
	assert.Equal(t, life, *ds.Economy.LifeExpectancy)
	require.NotNil(t, ds.Weather)
	require.NotNil(t, ds.AirQuality)
	require.NotNil(t, ds.Advisory)
}

func TestFetchFailsWhenProfileFails(t *testing.T) {
	p := NewAggregatedProvider(
		&fakeProfile{err: errors.New("no match")},
		&fakeEconomy{},
		&fakeWeather{},
		&fakeAirQuality{},
		&fakeAdvisory{},
	)

	_, err := p.Fetch(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Atlantis")
}

// Secondary source failures leave their sections nil but never fail the fetch.
func TestFetchToleratesSecondarySourceFailures(t *testing.T) {
	boom := errors.New("upstream down")

	p := NewAggregatedProvider(
		&fakeProfile{profile: fullProfile()},
		&fakeEconomy{err: boom},
		&fakeWeather{err: boom},
		&fakeAirQuality{err: boom},
		&fakeAdvisory{err: boom},
	)

	ds, err := p.Fetch(context.Background(), "Portugal")
	require.NoError(t, err)

	assert.True(t, ds.Found)
	assert.NotNil(t, ds.Profile)
	assert.Nil(t, ds.Economy)
	assert.Nil(t, ds.Weather)
	assert.Nil(t, ds.AirQuality)
	assert.Nil(t, ds.Advisory)
}

func TestFetchSkipsWeatherWithoutCapital(t *testing.T) {
	profile := fullProfile()
	profile.Capital = ""

	weatherCalled := false
	p := NewAggregatedProvider(
		&fakeProfile{profile: profile},
		nil,
		weatherFunc(func() { weatherCalled = true }),
		nil,
		nil,
	)

	ds, err := p.Fetch(context.Background(), "Portugal")
	require.NoError(t, err)
	assert.False(t, weatherCalled)
	assert.Nil(t, ds.Weather)
}

type weatherFunc func()

func (f weatherFunc) FetchWeather(context.Context, string, string) (Weather, error) {
	f()
	return Weather{}, nil
}
