package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	OpenWeatherAPIKey string
	WAQIAPIToken      string
	GeocoderAPIKey    string

	// HTTPTimeout bounds every outbound provider call, so one hung upstream
	// cannot stall a whole analysis fan-in.
	HTTPTimeout time.Duration

	// CacheTTL is how long a fetched country dataset stays valid.
	CacheTTL time.Duration

	// WarmCountries are fetched periodically so interactive requests hit
	// warm cache entries.
	WarmCountries []string
	WarmInterval  time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.WAQIAPIToken = os.Getenv("WAQI_API_TOKEN")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "5s")
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	ttl, err := getenvDuration("CACHE_TTL", "60m")
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	interval, err := getenvDuration("WARM_INTERVAL", "30m")
	if err != nil {
		return nil, fmt.Errorf("invalid WARM_INTERVAL: %w", err)
	}
	cfg.WarmInterval = interval

	if list := os.Getenv("WARM_COUNTRIES"); list != "" {
		for _, name := range strings.Split(list, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.WarmCountries = append(cfg.WarmCountries, name)
			}
		}
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	return time.ParseDuration(getenvDefault(key, def))
}
