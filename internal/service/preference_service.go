package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"groupdine/internal/cache"
	"groupdine/internal/errors"
	"groupdine/internal/model"
	"groupdine/internal/repository"
)

// BasePreferences bundles a user's durable preference sets.
type BasePreferences struct {
	Restaurants []model.RestaurantPreference `json:"restaurant_preferences"`
	Cuisines    []model.CuisinePreference    `json:"cuisine_preferences"`
}

// PreferenceService is the preference store: durable base preferences plus the
// capped, ephemeral day-of overrides.
type PreferenceService interface {
	GetBasePreferences(ctx context.Context, userID uint) (*BasePreferences, error)
	SetPreference(ctx context.Context, userID uint, in RatingInput) error
	RemovePreference(ctx context.Context, userID uint, target TargetInput) error
	ListDayOfRatings(ctx context.Context, userID uint) ([]model.DayOfRating, error)
	SetDayOfRating(ctx context.Context, userID uint, in RatingInput) (*model.DayOfRating, error)
	RemoveDayOfRating(ctx context.Context, userID uint, target TargetInput) error
	ClearDayOfRatings(ctx context.Context, userID uint) error
}

type preferenceService struct {
	users       repository.UserRepository
	restaurants repository.RestaurantRepository
	prefs       repository.PreferenceRepository
	dayOf       repository.DayOfRepository
	cache       *cache.Client
}

// NewPreferenceService builds a PreferenceService.
func NewPreferenceService(
	users repository.UserRepository,
	restaurants repository.RestaurantRepository,
	prefs repository.PreferenceRepository,
	dayOf repository.DayOfRepository,
	cache *cache.Client,
) PreferenceService {
	return &preferenceService{
		users:       users,
		restaurants: restaurants,
		prefs:       prefs,
		dayOf:       dayOf,
		cache:       cache,
	}
}

func (s *preferenceService) requireUser(ctx context.Context, userID uint) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *preferenceService) requireRestaurant(ctx context.Context, id uint) error {
	if _, err := s.restaurants.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRestaurantNotFound
		}
		return err
	}
	return nil
}

// invalidateUser drops the cached user snapshot, which embeds preferences.
func (s *preferenceService) invalidateUser(ctx context.Context, userID uint) {
	_ = s.cache.Delete(ctx, fmt.Sprintf("user:%d", userID))
}

func (s *preferenceService) GetBasePreferences(ctx context.Context, userID uint) (*BasePreferences, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	restaurants, err := s.prefs.ListRestaurantPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	cuisines, err := s.prefs.ListCuisinePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &BasePreferences{Restaurants: restaurants, Cuisines: cuisines}, nil
}

// SetPreference upserts a base preference: a new target is created, an
// existing one has its rating updated in place.
func (s *preferenceService) SetPreference(ctx context.Context, userID uint, in RatingInput) error {
	kind, err := in.Kind()
	if err != nil {
		return err
	}
	rating, err := normalizeRating(in.Rating)
	if err != nil {
		return err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	switch kind {
	case model.TargetRestaurant:
		if err := s.requireRestaurant(ctx, in.RestaurantID); err != nil {
			return err
		}
		existing, err := s.prefs.FindRestaurantPreference(ctx, userID, in.RestaurantID)
		if err == nil {
			existing.Rating = rating
			err = s.prefs.SaveRestaurantPreference(ctx, existing)
		} else if err == gorm.ErrRecordNotFound {
			err = s.prefs.CreateRestaurantPreference(ctx, &model.RestaurantPreference{
				UserID:       userID,
				RestaurantID: in.RestaurantID,
				Rating:       rating,
			})
		}
		if err != nil {
			return fmt.Errorf("set restaurant preference: %w", err)
		}
	case model.TargetCuisine:
		existing, err := s.prefs.FindCuisinePreference(ctx, userID, in.CuisineName)
		if err == nil {
			existing.Rating = rating
			err = s.prefs.SaveCuisinePreference(ctx, existing)
		} else if err == gorm.ErrRecordNotFound {
			err = s.prefs.CreateCuisinePreference(ctx, &model.CuisinePreference{
				UserID:  userID,
				Cuisine: in.CuisineName,
				Rating:  rating,
			})
		}
		if err != nil {
			return fmt.Errorf("set cuisine preference: %w", err)
		}
	}

	s.invalidateUser(ctx, userID)
	return nil
}

func (s *preferenceService) RemovePreference(ctx context.Context, userID uint, target TargetInput) error {
	kind, err := target.Kind()
	if err != nil {
		return err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	switch kind {
	case model.TargetRestaurant:
		if _, err := s.prefs.FindRestaurantPreference(ctx, userID, target.RestaurantID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPreferenceNotFound
			}
			return err
		}
		if err := s.prefs.DeleteRestaurantPreference(ctx, userID, target.RestaurantID); err != nil {
			return fmt.Errorf("remove restaurant preference: %w", err)
		}
	case model.TargetCuisine:
		if _, err := s.prefs.FindCuisinePreference(ctx, userID, target.CuisineName); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPreferenceNotFound
			}
			return err
		}
		if err := s.prefs.DeleteCuisinePreference(ctx, userID, target.CuisineName); err != nil {
			return fmt.Errorf("remove cuisine preference: %w", err)
		}
	}

	s.invalidateUser(ctx, userID)
	return nil
}

func (s *preferenceService) ListDayOfRatings(ctx context.Context, userID uint) ([]model.DayOfRating, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.dayOf.ListByUser(ctx, userID)
}

// SetDayOfRating records or updates a day-of override. Re-rating an existing
// target does not consume a slot; a new target beyond the cap fails and
// leaves the stored ratings untouched.
func (s *preferenceService) SetDayOfRating(ctx context.Context, userID uint, in RatingInput) (*model.DayOfRating, error) {
	kind, err := in.Kind()
	if err != nil {
		return nil, err
	}
	rating, err := normalizeRating(in.Rating)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if kind == model.TargetRestaurant {
		if err := s.requireRestaurant(ctx, in.RestaurantID); err != nil {
			return nil, err
		}
	}

	existing, err := s.dayOf.Find(ctx, userID, kind, in.RestaurantID, in.CuisineName)
	if err == nil {
		existing.Rating = rating
		if err := s.dayOf.Save(ctx, existing); err != nil {
			return nil, fmt.Errorf("update day-of rating: %w", err)
		}
		s.invalidateUser(ctx, userID)
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	count, err := s.dayOf.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= model.MaxDayOfRatings {
		return nil, errors.ErrDayOfLimitReached
	}

	created := &model.DayOfRating{
		UserID:       userID,
		Kind:         kind,
		RestaurantID: in.RestaurantID,
		Cuisine:      in.CuisineName,
		Rating:       rating,
	}
	if err := s.dayOf.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("create day-of rating: %w", err)
	}
	s.invalidateUser(ctx, userID)
	return created, nil
}

func (s *preferenceService) RemoveDayOfRating(ctx context.Context, userID uint, target TargetInput) error {
	kind, err := target.Kind()
	if err != nil {
		return err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.dayOf.Find(ctx, userID, kind, target.RestaurantID, target.CuisineName); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPreferenceNotFound
		}
		return err
	}
	if err := s.dayOf.Delete(ctx, userID, kind, target.RestaurantID, target.CuisineName); err != nil {
		return fmt.Errorf("remove day-of rating: %w", err)
	}
	s.invalidateUser(ctx, userID)
	return nil
}

func (s *preferenceService) ClearDayOfRatings(ctx context.Context, userID uint) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	if err := s.dayOf.DeleteAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("clear day-of ratings: %w", err)
	}
	s.invalidateUser(ctx, userID)
	return nil
}
