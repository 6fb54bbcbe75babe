package main

import (
	"log"
	"net/http"
	"os"

	_ "groupdine/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"groupdine/internal/auth"
	"groupdine/internal/cache"
	"groupdine/internal/config"
	"groupdine/internal/db"
	"groupdine/internal/handler"
	"groupdine/internal/model"
	"groupdine/internal/repository"
	"groupdine/internal/router"
	"groupdine/internal/service"
)

// @title Group Dine API
// @version 1.0
// @description Group restaurant matching API: users, preferences, day-of overrides and consensus-ranked match results.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.DayOfRating{},
			&model.CuisinePreference{},
			&model.RestaurantPreference{},
			&model.Restaurant{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	restaurantRepo := repository.NewRestaurantRepository(gormDB)
	preferenceRepo := repository.NewPreferenceRepository(gormDB)
	dayOfRepo := repository.NewDayOfRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	catalogService := service.NewCatalogService(restaurantRepo, cacheClient, cfg.CatalogCacheTTL)
	userService := service.NewUserService(userRepo, cacheClient)
	preferenceService := service.NewPreferenceService(userRepo, restaurantRepo, preferenceRepo, dayOfRepo, cacheClient)
	matchService := service.NewMatchService(userRepo, preferenceRepo, dayOfRepo, catalogService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	restaurantHandler := handler.NewRestaurantHandler(catalogService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)
	matchHandler := handler.NewMatchHandler(matchService)
	seedHandler := handler.NewSeedHandler(catalogService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		restaurantHandler,
		preferenceHandler,
		matchHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
