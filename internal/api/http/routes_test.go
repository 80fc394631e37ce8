package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/relocateiq/country-analyzer/internal/analysis"
	"github.com/relocateiq/country-analyzer/internal/cache"
	"github.com/relocateiq/country-analyzer/internal/country"
)

// fakeProvider resolves every name except those in missing.
type fakeProvider struct {
	missing map[string]bool
}

func (p *fakeProvider) Fetch(_ context.Context, name string) (country.DataSet, error) {
	if p.missing[strings.ToLower(name)] {
		return country.DataSet{}, errors.New("country not found")
	}
	return country.DataSet{Name: name, Found: true}, nil
}

func newTestApp(provider country.Provider) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": true, "message": err.Error()})
		},
	})
	svc := analysis.NewService(provider, cache.New[country.DataSet](time.Hour))
	RegisterRoutes(app, svc)
	return app
}

func postAnalyze(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

// TestAnalyzeValidation verifies that malformed requests are rejected with 400.
func TestAnalyzeValidation(t *testing.T) {
	app := newTestApp(&fakeProvider{})

	cases := []struct {
		name string
		body string
	}{
		{"empty countries", `{"countries":[],"riskTolerance":"moderate","duration":"short"}`},
		{"missing risk tolerance", `{"countries":["Portugal"],"duration":"short"}`},
		{"invalid risk tolerance", `{"countries":["Portugal"],"riskTolerance":"extreme","duration":"short"}`},
		{"invalid duration", `{"countries":["Portugal"],"riskTolerance":"low","duration":"forever"}`},
		{"blank country entry", `{"countries":[""],"riskTolerance":"low","duration":"short"}`},
		{"not json", `countries=Portugal`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postAnalyze(t, app, tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
			}
		})
	}
}

func TestAnalyzeReturnsRankedResults(t *testing.T) {
	app := newTestApp(&fakeProvider{})

	resp := postAnalyze(t, app, `{"countries":["Portugal","Spain"],"riskTolerance":"moderate","duration":"long"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var result analysis.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Ranked) != 2 {
		t.Fatalf("expected 2 ranked countries, got %d", len(result.Ranked))
	}
	if result.Counts.Analyzed != 2 {
		t.Fatalf("expected 2 analyzed, got %d", result.Counts.Analyzed)
	}
}

func TestAnalyzeAllCountriesUnknown(t *testing.T) {
	app := newTestApp(&fakeProvider{missing: map[string]bool{"atlantis": true}})

	resp := postAnalyze(t, app, `{"countries":["Atlantis"],"riskTolerance":"moderate","duration":"short"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}
