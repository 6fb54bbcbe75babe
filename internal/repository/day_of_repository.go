package repository

import (
	"context"

	"gorm.io/gorm"

	"groupdine/internal/model"
)

// DayOfRepository defines persistence for ephemeral day-of ratings.
type DayOfRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.DayOfRating, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Find(ctx context.Context, userID uint, kind model.TargetKind, restaurantID uint, cuisine string) (*model.DayOfRating, error)
	Create(ctx context.Context, rating *model.DayOfRating) error
	Save(ctx context.Context, rating *model.DayOfRating) error
	Delete(ctx context.Context, userID uint, kind model.TargetKind, restaurantID uint, cuisine string) error
	DeleteAllByUser(ctx context.Context, userID uint) error
}

type dayOfRepository struct {
	db *gorm.DB
}

// NewDayOfRepository builds a GORM-backed repository.
func NewDayOfRepository(db *gorm.DB) DayOfRepository {
	return &dayOfRepository{db: db}
}

func (r *dayOfRepository) ListByUser(ctx context.Context, userID uint) ([]model.DayOfRating, error) {
	var ratings []model.DayOfRating
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *dayOfRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.DayOfRating{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dayOfRepository) Find(ctx context.Context, userID uint, kind model.TargetKind, restaurantID uint, cuisine string) (*model.DayOfRating, error) {
	var rating model.DayOfRating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND restaurant_id = ? AND cuisine = ?", userID, kind, restaurantID, cuisine).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *dayOfRepository) Create(ctx context.Context, rating *model.DayOfRating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *dayOfRepository) Save(ctx context.Context, rating *model.DayOfRating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *dayOfRepository) Delete(ctx context.Context, userID uint, kind model.TargetKind, restaurantID uint, cuisine string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND restaurant_id = ? AND cuisine = ?", userID, kind, restaurantID, cuisine).
		Delete(&model.DayOfRating{}).Error
}

func (r *dayOfRepository) DeleteAllByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.DayOfRating{}).Error
}
