package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a requested user id is unknown.
	ErrUserNotFound = errors.New("user not found")
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPreferenceNotFound is returned when removing a preference that does not exist.
	ErrPreferenceNotFound = errors.New("preference not found")
	// ErrInsufficientUsers is returned when a match is requested for fewer than 2 distinct users.
	ErrInsufficientUsers = errors.New("a match requires at least 2 distinct users")
	// ErrDayOfLimitReached is returned when a user already has the maximum number of day-of ratings.
	ErrDayOfLimitReached = errors.New("day-of rating limit reached")
	// ErrDuplicatePreference is returned when creating a preference key that already exists.
	ErrDuplicatePreference = errors.New("preference already exists")
	// ErrUsernameTaken is returned when the requested username is already in use.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidRating is returned when a rating is outside [1.0, 10.0].
	ErrInvalidRating = errors.New("rating must be between 1.0 and 10.0")
	// ErrInvalidTarget is returned when a rating names neither or both of restaurant and cuisine.
	ErrInvalidTarget = errors.New("exactly one of restaurant_id or cuisine_name must be set")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrRestaurantNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "RESTAURANT_NOT_FOUND")
	case ErrPreferenceNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PREFERENCE_NOT_FOUND")
	case ErrInsufficientUsers:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INSUFFICIENT_USERS")
	case ErrDayOfLimitReached:
		return NewHTTPError(http.StatusConflict, err.Error(), "DAY_OF_LIMIT_REACHED")
	case ErrDuplicatePreference:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_PREFERENCE")
	case ErrUsernameTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case ErrInvalidRating:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RATING")
	case ErrInvalidTarget:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TARGET")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
