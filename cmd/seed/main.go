package main

import (
	"context"
	"log"

	"groupdine/internal/config"
	"groupdine/internal/db"
	"groupdine/internal/repository"
	"groupdine/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	restaurantRepo := repository.NewRestaurantRepository(gormDB)
	catalogService := service.NewCatalogService(restaurantRepo, nil, 0)

	count, err := catalogService.SeedDefaultCatalog(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if count == 0 {
		log.Println("Catalog already populated, nothing to do")
		return
	}
	log.Printf("Seeded %d restaurants", count)
}
