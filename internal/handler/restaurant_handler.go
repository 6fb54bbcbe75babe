package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"groupdine/internal/errors"
	"groupdine/internal/model"
	"groupdine/internal/service"
)

// RestaurantHandler handles catalog endpoints.
type RestaurantHandler struct {
	catalogService service.CatalogService
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(catalogService service.CatalogService) *RestaurantHandler {
	return &RestaurantHandler{catalogService: catalogService}
}

// CreateRestaurantRequest represents a restaurant creation request.
type CreateRestaurantRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Cuisine string `json:"cuisine" validate:"required,min=1,max=50"`
	Price   int    `json:"price" validate:"required,gte=1,lte=4"`
}

// UpdateRestaurantRequest represents a partial restaurant update.
type UpdateRestaurantRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Cuisine *string `json:"cuisine" validate:"omitempty,min=1,max=50"`
	Price   *int    `json:"price" validate:"omitempty,gte=1,lte=4"`
}

// ListRestaurants godoc
// @Summary List the restaurant catalog
// @Tags restaurants
// @Produce json
// @Success 200 {array} model.Restaurant
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.catalogService.ListRestaurants(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant godoc
// @Summary Get restaurant by id
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} model.Restaurant
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid restaurant id",
			Code:  "INVALID_ID",
		})
	}

	restaurant, err := h.catalogService.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, restaurant)
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRestaurantRequest true "Restaurant data"
// @Success 201 {object} model.Restaurant
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants [post]
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	restaurant := &model.Restaurant{
		Name:    req.Name,
		Cuisine: req.Cuisine,
		Price:   req.Price,
	}
	if err := h.catalogService.CreateRestaurant(c.Request().Context(), restaurant); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, restaurant)
}

// UpdateRestaurant godoc
// @Summary Update restaurant fields
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Param request body UpdateRestaurantRequest true "Fields to update"
// @Success 200 {object} model.Restaurant
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurants/{id} [put]
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid restaurant id",
			Code:  "INVALID_ID",
		})
	}

	var req UpdateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if req.Name == nil && req.Cuisine == nil && req.Price == nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "no fields to update",
			Code:  "EMPTY_UPDATE",
		})
	}

	restaurant, err := h.catalogService.UpdateRestaurant(c.Request().Context(), id, service.RestaurantUpdate{
		Name:    req.Name,
		Cuisine: req.Cuisine,
		Price:   req.Price,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, restaurant)
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurants/{id} [delete]
func (h *RestaurantHandler) DeleteRestaurant(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid restaurant id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.catalogService.DeleteRestaurant(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "restaurant deleted"})
}

// SearchRestaurants godoc
// @Summary Search restaurants by cuisine and/or max price
// @Tags restaurants
// @Produce json
// @Param cuisine query string false "Cuisine substring"
// @Param max_price query int false "Maximum price tier (1-4)"
// @Success 200 {array} model.Restaurant
// @Failure 400 {object} errors.ErrorResponse
// @Router /restaurants/search [get]
func (h *RestaurantHandler) SearchRestaurants(c echo.Context) error {
	cuisine := c.QueryParam("cuisine")
	maxPrice := 0
	if raw := c.QueryParam("max_price"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 4 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "max_price must be an integer between 1 and 4",
				Code:  "INVALID_PRICE",
			})
		}
		maxPrice = parsed
	}

	restaurants, err := h.catalogService.SearchRestaurants(c.Request().Context(), cuisine, maxPrice)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, restaurants)
}

// ListCuisines godoc
// @Summary List distinct cuisines derived from the catalog
// @Tags restaurants
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} errors.ErrorResponse
// @Router /cuisines [get]
func (h *RestaurantHandler) ListCuisines(c echo.Context) error {
	cuisines, err := h.catalogService.ListCuisines(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cuisines)
}
