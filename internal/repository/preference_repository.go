package repository

import (
	"context"

	"gorm.io/gorm"

	"groupdine/internal/model"
)

// PreferenceRepository defines persistence for base preferences (restaurant-
// and cuisine-keyed ratings).
type PreferenceRepository interface {
	ListRestaurantPreferences(ctx context.Context, userID uint) ([]model.RestaurantPreference, error)
	ListCuisinePreferences(ctx context.Context, userID uint) ([]model.CuisinePreference, error)
	FindRestaurantPreference(ctx context.Context, userID, restaurantID uint) (*model.RestaurantPreference, error)
	FindCuisinePreference(ctx context.Context, userID uint, cuisine string) (*model.CuisinePreference, error)
	CreateRestaurantPreference(ctx context.Context, pref *model.RestaurantPreference) error
	CreateCuisinePreference(ctx context.Context, pref *model.CuisinePreference) error
	SaveRestaurantPreference(ctx context.Context, pref *model.RestaurantPreference) error
	SaveCuisinePreference(ctx context.Context, pref *model.CuisinePreference) error
	DeleteRestaurantPreference(ctx context.Context, userID, restaurantID uint) error
	DeleteCuisinePreference(ctx context.Context, userID uint, cuisine string) error
}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository builds a GORM-backed repository.
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) ListRestaurantPreferences(ctx context.Context, userID uint) ([]model.RestaurantPreference, error) {
	var prefs []model.RestaurantPreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *preferenceRepository) ListCuisinePreferences(ctx context.Context, userID uint) ([]model.CuisinePreference, error) {
	var prefs []model.CuisinePreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *preferenceRepository) FindRestaurantPreference(ctx context.Context, userID, restaurantID uint) (*model.RestaurantPreference, error) {
	var pref model.RestaurantPreference
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) FindCuisinePreference(ctx context.Context, userID uint, cuisine string) (*model.CuisinePreference, error) {
	var pref model.CuisinePreference
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND cuisine = ?", userID, cuisine).
		First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) CreateRestaurantPreference(ctx context.Context, pref *model.RestaurantPreference) error {
	return r.db.WithContext(ctx).Create(pref).Error
}

func (r *preferenceRepository) CreateCuisinePreference(ctx context.Context, pref *model.CuisinePreference) error {
	return r.db.WithContext(ctx).Create(pref).Error
}

func (r *preferenceRepository) SaveRestaurantPreference(ctx context.Context, pref *model.RestaurantPreference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}

func (r *preferenceRepository) SaveCuisinePreference(ctx context.Context, pref *model.CuisinePreference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}

func (r *preferenceRepository) DeleteRestaurantPreference(ctx context.Context, userID, restaurantID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.RestaurantPreference{}).Error
}

func (r *preferenceRepository) DeleteCuisinePreference(ctx context.Context, userID uint, cuisine string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND cuisine = ?", userID, cuisine).
		Delete(&model.CuisinePreference{}).Error
}
