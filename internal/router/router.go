package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"groupdine/internal/config"
	"groupdine/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	restaurantHandler *handler.RestaurantHandler,
	preferenceHandler *handler.PreferenceHandler,
	matchHandler *handler.MatchHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/seed/restaurants", seedHandler.SeedRestaurants)

	// Users and their preference state
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users/:id", userHandler.GetUser)
	api.GET("/users/:id/preferences", preferenceHandler.GetPreferences)
	api.GET("/users/:id/dayof", preferenceHandler.ListDayOfRatings)

	// Catalog reads
	api.GET("/restaurants", restaurantHandler.ListRestaurants)
	api.GET("/restaurants/search", restaurantHandler.SearchRestaurants)
	api.GET("/restaurants/:id", restaurantHandler.GetRestaurant)
	api.GET("/cuisines", restaurantHandler.ListCuisines)

	// The matching engine itself
	api.POST("/match", matchHandler.Match)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Preference mutations
	secured.PUT("/users/:id/preferences", preferenceHandler.SetPreference)
	secured.DELETE("/users/:id/preferences", preferenceHandler.RemovePreference)
	secured.PUT("/users/:id/dayof", preferenceHandler.SetDayOfRating)
	secured.DELETE("/users/:id/dayof", preferenceHandler.RemoveDayOfRating)
	secured.DELETE("/users/:id", userHandler.DeleteUser)

	// Catalog administration
	secured.POST("/restaurants", restaurantHandler.CreateRestaurant)
	secured.PUT("/restaurants/:id", restaurantHandler.UpdateRestaurant)
	secured.DELETE("/restaurants/:id", restaurantHandler.DeleteRestaurant)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
