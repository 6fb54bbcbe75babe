package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"groupdine/internal/cache"
	"groupdine/internal/errors"
	"groupdine/internal/model"
	"groupdine/internal/repository"
)

const (
	restaurantsCacheKey = "catalog:restaurants"
	cuisinesCacheKey    = "catalog:cuisines"
)

// RestaurantUpdate carries the fields of a partial restaurant update; nil
// means "leave unchanged".
type RestaurantUpdate struct {
	Name    *string
	Cuisine *string
	Price   *int
}

// CatalogService manages the restaurant catalog and its derived cuisine list.
type CatalogService interface {
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	GetRestaurant(ctx context.Context, id uint) (*model.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) error
	UpdateRestaurant(ctx context.Context, id uint, update RestaurantUpdate) (*model.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id uint) error
	SearchRestaurants(ctx context.Context, cuisine string, maxPrice int) ([]model.Restaurant, error)
	ListCuisines(ctx context.Context) ([]string, error)
	SeedDefaultCatalog(ctx context.Context) (int, error)
}

type catalogService struct {
	repo  repository.RestaurantRepository
	cache *cache.Client
	ttl   time.Duration
}

// NewCatalogService builds a CatalogService with repository and cache.
func NewCatalogService(repo repository.RestaurantRepository, cache *cache.Client, ttl time.Duration) CatalogService {
	return &catalogService{repo: repo, cache: cache, ttl: ttl}
}

// ListRestaurants returns the full catalog, cached for the configured TTL.
func (s *catalogService) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	var cached []model.Restaurant
	if s.cache.GetJSON(ctx, restaurantsCacheKey, &cached) {
		return cached, nil
	}

	restaurants, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, restaurantsCacheKey, restaurants, s.ttl)
	return restaurants, nil
}

func (s *catalogService) GetRestaurant(ctx context.Context, id uint) (*model.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *catalogService) CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) error {
	if err := s.repo.Create(ctx, restaurant); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) UpdateRestaurant(ctx context.Context, id uint, update RestaurantUpdate) (*model.Restaurant, error) {
	restaurant, err := s.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		restaurant.Name = *update.Name
	}
	if update.Cuisine != nil {
		restaurant.Cuisine = *update.Cuisine
	}
	if update.Price != nil {
		restaurant.Price = *update.Price
	}
	if err := s.repo.Save(ctx, restaurant); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return restaurant, nil
}

func (s *catalogService) DeleteRestaurant(ctx context.Context, id uint) error {
	if _, err := s.GetRestaurant(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) SearchRestaurants(ctx context.Context, cuisine string, maxPrice int) ([]model.Restaurant, error) {
	return s.repo.Search(ctx, cuisine, maxPrice)
}

// ListCuisines derives the deduplicated cuisine list from the catalog's
// comma-separated tags, case-sensitive as stored, sorted for stable output.
func (s *catalogService) ListCuisines(ctx context.Context) ([]string, error) {
	var cached []string
	if s.cache.GetJSON(ctx, cuisinesCacheKey, &cached) {
		return cached, nil
	}

	restaurants, err := s.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	cuisines := make([]string, 0)
	for _, r := range restaurants {
		for _, tag := range r.CuisineTags() {
			if !seen[tag] {
				seen[tag] = true
				cuisines = append(cuisines, tag)
			}
		}
	}
	sort.Strings(cuisines)

	s.cache.SetJSON(ctx, cuisinesCacheKey, cuisines, s.ttl)
	return cuisines, nil
}

// SeedDefaultCatalog inserts the built-in starter catalog when the restaurant
// table is empty. Returns how many restaurants were inserted.
func (s *catalogService) SeedDefaultCatalog(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	restaurants := DefaultRestaurants()
	if err := s.repo.CreateBatch(ctx, restaurants); err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return len(restaurants), nil
}

func (s *catalogService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, restaurantsCacheKey)
	_ = s.cache.Delete(ctx, cuisinesCacheKey)
}
