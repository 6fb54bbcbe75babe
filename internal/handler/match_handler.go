package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"groupdine/internal/errors"
	"groupdine/internal/match"
	"groupdine/internal/service"
)

// MatchHandler handles the group matching endpoint.
type MatchHandler struct {
	matchService service.MatchService
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(matchService service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// MatchParticipantRequest is one user's entry in a match request. Omitting
// override_ratings uses the user's stored preferences; supplying it, even as
// an empty list, replaces them for this request.
type MatchParticipantRequest struct {
	UserID          uint            `json:"user_id" validate:"required"`
	OverrideRatings []RatingPayload `json:"override_ratings" validate:"omitempty,dive"`
}

// MatchRequest represents a group match request.
type MatchRequest struct {
	Users []MatchParticipantRequest `json:"users" validate:"required,min=2,dive"`
}

// MatchResponse represents the ranked outcome of a match request. An empty
// Results with Count 0 means no restaurant had any contributor, which is a
// valid outcome and not an error.
type MatchResponse struct {
	Results []match.Result `json:"results"`
	Count   int            `json:"count"`
}

// Match godoc
// @Summary Compute a ranked restaurant list for a group of users
// @Tags match
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Participants with optional day-of override ratings"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /match [post]
func (h *MatchHandler) Match(c echo.Context) error {
	var req MatchRequest
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

	participants := make([]service.Participant, 0, len(req.Users))
	for _, u := range req.Users {
		p := service.Participant{UserID: u.UserID}
		if u.OverrideRatings != nil {
			p.Overrides = toInputs(u.OverrideRatings)
		}
		participants = append(participants, p)
	}

	results, err := h.matchService.Match(c.Request().Context(), participants)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MatchResponse{
		Results: results,
		Count:   len(results),
	})
}
