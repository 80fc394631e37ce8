package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/relocateiq/country-analyzer/internal/analysis"
)

var validate = validator.New()

// analyzeRequest is the JSON body for the analyze endpoint.
type analyzeRequest struct {
	Countries     []string `json:"countries" validate:"required,min=1,dive,required"`
	RiskTolerance string   `json:"riskTolerance" validate:"required,oneof=low moderate high"`
	Duration      string   `json:"duration" validate:"required,oneof=short long"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *analysis.Service) {
	v1 := app.Group("/api/v1")

	v1.Post("/analyze", func(c *fiber.Ctx) error {
		var req analyzeRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.Analyze(c.Context(), analysis.Request{
			Countries:     req.Countries,
			RiskTolerance: analysis.RiskTolerance(req.RiskTolerance),
			Duration:      analysis.StayDuration(req.Duration),
		})
		if err != nil {
			if errors.Is(err, analysis.ErrNoValidCountries) {
				return fiber.NewError(fiber.StatusNotFound, "none of the requested countries could be resolved")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "analysis failed")
		}

		return c.JSON(result)
	})
}
