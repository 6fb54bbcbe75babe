package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"groupdine/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDWithPreferences(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRestaurantRepository is a mock implementation of RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) CreateBatch(ctx context.Context, restaurants []model.Restaurant) error {
	args := m.Called(ctx, restaurants)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Save(ctx context.Context, restaurant *model.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id uint) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Search(ctx context.Context, cuisine string, maxPrice int) ([]model.Restaurant, error) {
	args := m.Called(ctx, cuisine, maxPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPreferenceRepository is a mock implementation of PreferenceRepository.
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) ListRestaurantPreferences(ctx context.Context, userID uint) ([]model.RestaurantPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RestaurantPreference), args.Error(1)
}

func (m *MockPreferenceRepository) ListCuisinePreferences(ctx context.Context, userID uint) ([]model.CuisinePreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CuisinePreference), args.Error(1)
}

func (m *MockPreferenceRepository) FindRestaurantPreference(ctx context.Context, userID, restaurantID uint) (*model.RestaurantPreference, error) {
	args := m.Called(ctx, userID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RestaurantPreference), args.Error(1)
}

func (m *MockPreferenceRepository) FindCuisinePreference(ctx context.Context, userID uint, cuisine string) (*model.CuisinePreference, error) {
	args := m.Called(ctx, userID, cuisine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CuisinePreference), args.Error(1)
}

func (m *MockPreferenceRepository) CreateRestaurantPreference(ctx context.Context, pref *model.RestaurantPreference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

func (m *MockPreferenceRepository) CreateCuisinePreference(ctx context.Context, pref *model.CuisinePreference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

func (m *MockPreferenceRepository) SaveRestaurantPreference(ctx context.Context, pref *model.RestaurantPreference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

func (m *MockPreferenceRepository) SaveCuisinePreference(ctx context.Context, pref *model.CuisinePreference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

func (m *MockPreferenceRepository) DeleteRestaurantPreference(ctx context.Context, userID, restaurantID uint) error {
	args := m.Called(ctx, userID, restaurantID)
	return args.Error(0)
}

func (m *MockPreferenceRepository) DeleteCuisinePreference(ctx context.Context, userID uint, cuisine string) error {
	args := m.Called(ctx, userID, cuisine)
	return args.Error(0)
}

// MockDayOfRepository is a mock implementation of DayOfRepository.
type MockDayOfRepository struct {
	mock.Mock
}

func (m *MockDayOfRepository) ListByUser(ctx context.Context, userID uint) ([]model.DayOfRating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DayOfRating), args.Error(1)
}

func (m *MockDayOfRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDayOfRepository) Find(ctx context.Context, userID uint, kind model.TargetKind, restaurantID uint, cuisine string) (*model.DayOfRating, error) {
	args := m.Called(ctx, userID, kind, restaurantID, cuisine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DayOfRating), args.Error(1)
}

func (m *MockDayOfRepository) Create(ctx context.Context, rating *model.DayOfRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockDayOfRepository) Save(ctx context.Context, rating *model.DayOfRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockDayOfRepository) Delete(ctx context.Context, userID uint, kind model.TargetKind, restaurantID uint, cuisine string) error {
	args := m.Called(ctx, userID, kind, restaurantID, cuisine)
	return args.Error(0)
}

func (m *MockDayOfRepository) DeleteAllByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
