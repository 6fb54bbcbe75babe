package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"groupdine/internal/errors"
	"groupdine/internal/service"
)

// PreferenceHandler handles base preference and day-of rating endpoints.
type PreferenceHandler struct {
	preferenceService service.PreferenceService
}

// NewPreferenceHandler creates a new preference handler.
func NewPreferenceHandler(preferenceService service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// targetFromQuery reads a preference target from query parameters: one of
// restaurant_id or cuisine_name. Validity is checked by the service.
func targetFromQuery(c echo.Context) (service.TargetInput, error) {
	var target service.TargetInput
	if raw := c.QueryParam("restaurant_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return target, errors.ErrInvalidTarget
		}
		target.RestaurantID = uint(id)
	}
	target.CuisineName = c.QueryParam("cuisine_name")
	return target, nil
}

// GetPreferences godoc
// @Summary Get a user's base preferences
// @Tags preferences
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} service.BasePreferences
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/preferences [get]
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, ok := parseID(c, "id")
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}

	prefs, err := h.preferenceService.GetBasePreferences(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, prefs)
}

// SetPreference godoc
// @Summary Set (create or update) a base preference
// @Tags preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body RatingPayload true "Target and rating"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/preferences [put]
func (h *PreferenceHandler) SetPreference(c echo.Context) error {
	userID, ok := parseID(c, "id")
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}

	var req RatingPayload
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

	if err := h.preferenceService.SetPreference(c.Request().Context(), userID, req.toInput()); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "preference saved"})
}

// RemovePreference godoc
// @Summary Remove a base preference
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param restaurant_id query int false "Restaurant ID target"
// @Param cuisine_name query string false "Cuisine target"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/preferences [delete]
func (h *PreferenceHandler) RemovePreference(c echo.Context) error {
	userID, ok := parseID(c, "id")
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}

	target, err := targetFromQuery(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.preferenceService.RemovePreference(c.Request().Context(), userID, target); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "preference removed"})
}

// ListDayOfRatings godoc
// @Summary List a user's day-of ratings
// @Tags day-of
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.DayOfRating
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/dayof [get]
func (h *PreferenceHandler) ListDayOfRatings(c echo.Context) error {
	userID, ok := parseID(c, "id")
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}

	ratings, err := h.preferenceService.ListDayOfRatings(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ratings)
}

// SetDayOfRating godoc
// @Summary Set (create or update) a day-of rating, capped at 3 per user
// @Tags day-of
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body RatingPayload true "Target and rating"
// @Success 200 {object} model.DayOfRating
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id}/dayof [put]
func (h *PreferenceHandler) SetDayOfRating(c echo.Context) error {
	userID, ok := parseID(c, "id")
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}

	var req RatingPayload
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

	rating, err := h.preferenceService.SetDayOfRating(c.Request().Context(), userID, req.toInput())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rating)
}

// RemoveDayOfRating godoc
// @Summary Remove one day-of rating, or all of them when no target is given
// @Tags day-of
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param restaurant_id query int false "Restaurant ID target"
// @Param cuisine_name query string false "Cuisine target"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/dayof [delete]
func (h *PreferenceHandler) RemoveDayOfRating(c echo.Context) error {
	userID, ok := parseID(c, "id")
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}

	target, err := targetFromQuery(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	ctx := c.Request().Context()
	if target.RestaurantID == 0 && target.CuisineName == "" {
		if err := h.preferenceService.ClearDayOfRatings(ctx, userID); err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "day-of ratings cleared"})
	}

	if err := h.preferenceService.RemoveDayOfRating(ctx, userID, target); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "day-of rating removed"})
}
