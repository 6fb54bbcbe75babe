package repository

import (
	"context"

	"gorm.io/gorm"

	"groupdine/internal/model"
)

// RestaurantRepository defines catalog persistence operations.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	CreateBatch(ctx context.Context, restaurants []model.Restaurant) error
	Save(ctx context.Context, restaurant *model.Restaurant) error
	FindByID(ctx context.Context, id uint) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	Search(ctx context.Context, cuisine string, maxPrice int) ([]model.Restaurant, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository builds a GORM-backed repository.
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) CreateBatch(ctx context.Context, restaurants []model.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&restaurants).Error
}

func (r *restaurantRepository) Save(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Search filters by cuisine substring and/or maximum price tier. Zero values
// mean "no filter".
func (r *restaurantRepository) Search(ctx context.Context, cuisine string, maxPrice int) ([]model.Restaurant, error) {
	q := r.db.WithContext(ctx).Model(&model.Restaurant{})
	if cuisine != "" {
		q = q.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}
	if maxPrice > 0 {
		q = q.Where("price <= ?", maxPrice)
	}
	var restaurants []model.Restaurant
	if err := q.Order("name ASC").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Restaurant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Restaurant{}, id).Error
}
