package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"groupdine/internal/errors"
	"groupdine/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	catalogService service.CatalogService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(catalogService service.CatalogService) *SeedHandler {
	return &SeedHandler{catalogService: catalogService}
}

// SeedRestaurantsResponse represents the seed response.
type SeedRestaurantsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedRestaurants godoc
// @Summary Seed the default restaurant catalog (no-op when the catalog is non-empty)
// @Tags seed
// @Produce json
// @Success 200 {object} SeedRestaurantsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/restaurants [get]
func (h *SeedHandler) SeedRestaurants(c echo.Context) error {
	count, err := h.catalogService.SeedDefaultCatalog(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	message := "catalog seeded successfully"
	if count == 0 {
		message = "catalog already populated, nothing to do"
	}
	return c.JSON(http.StatusOK, SeedRestaurantsResponse{
		Message: message,
		Count:   count,
	})
}
