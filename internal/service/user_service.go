package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"groupdine/internal/cache"
	"groupdine/internal/errors"
	"groupdine/internal/model"
	"groupdine/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user lifecycle operations.
type UserService interface {
	CreateUser(ctx context.Context, username string, prefs []RatingInput) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// CreateUser creates a user together with an optional list of initial
// preferences. The same target appearing twice in the list is a duplicate,
// not an update.
func (s *userService) CreateUser(ctx context.Context, username string, prefs []RatingInput) (*model.User, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUsernameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}

	user := &model.User{Username: username}
	seenRestaurants := make(map[uint]bool)
	seenCuisines := make(map[string]bool)
	for _, in := range prefs {
		kind, err := in.Kind()
		if err != nil {
			return nil, err
		}
		rating, err := normalizeRating(in.Rating)
		if err != nil {
			return nil, err
		}
		switch kind {
		case model.TargetRestaurant:
			if seenRestaurants[in.RestaurantID] {
				return nil, errors.ErrDuplicatePreference
			}
			seenRestaurants[in.RestaurantID] = true
			user.RestaurantPreferences = append(user.RestaurantPreferences, model.RestaurantPreference{
				RestaurantID: in.RestaurantID,
				Rating:       rating,
			})
		case model.TargetCuisine:
			if seenCuisines[in.CuisineName] {
				return nil, errors.ErrDuplicatePreference
			}
			seenCuisines[in.CuisineName] = true
			user.CuisinePreferences = append(user.CuisinePreferences, model.CuisinePreference{
				Cuisine: in.CuisineName,
				Rating:  rating,
			})
		}
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser returns a user with preferences preloaded, cached briefly.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByIDWithPreferences(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
