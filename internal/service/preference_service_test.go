package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "groupdine/internal/errors"
	"groupdine/internal/model"
)

func newPreferenceFixture() (*MockUserRepository, *MockRestaurantRepository, *MockPreferenceRepository, *MockDayOfRepository, PreferenceService) {
	mockUsers := new(MockUserRepository)
	mockRestaurants := new(MockRestaurantRepository)
	mockPrefs := new(MockPreferenceRepository)
	mockDayOf := new(MockDayOfRepository)
	svc := NewPreferenceService(mockUsers, mockRestaurants, mockPrefs, mockDayOf, nil)
	return mockUsers, mockRestaurants, mockPrefs, mockDayOf, svc
}

func restaurantRating(id uint, rating float64) RatingInput {
	return RatingInput{TargetInput: TargetInput{RestaurantID: id}, Rating: decimal.NewFromFloat(rating)}
}

func cuisineRating(name string, rating float64) RatingInput {
	return RatingInput{TargetInput: TargetInput{CuisineName: name}, Rating: decimal.NewFromFloat(rating)}
}

func TestPreferenceService_SetPreference(t *testing.T) {
	tests := []struct {
		name          string
		input         RatingInput
		setupMock     func(*MockUserRepository, *MockRestaurantRepository, *MockPreferenceRepository)
		expectedError error
	}{
		{
			name:  "creates a new restaurant preference",
			input: restaurantRating(3, 8),
			setupMock: func(mUsers *MockUserRepository, mRestaurants *MockRestaurantRepository, mPrefs *MockPreferenceRepository) {
				mUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				mRestaurants.On("FindByID", mock.Anything, uint(3)).Return(&model.Restaurant{ID: 3}, nil)
				mPrefs.On("FindRestaurantPreference", mock.Anything, uint(1), uint(3)).Return(nil, gorm.ErrRecordNotFound)
				mPrefs.On("CreateRestaurantPreference", mock.Anything, mock.AnythingOfType("*model.RestaurantPreference")).Return(nil)
			},
		},
		{
			name:  "updates an existing restaurant preference in place",
			input: restaurantRating(3, 2),
			setupMock: func(mUsers *MockUserRepository, mRestaurants *MockRestaurantRepository, mPrefs *MockPreferenceRepository) {
				mUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				mRestaurants.On("FindByID", mock.Anything, uint(3)).Return(&model.Restaurant{ID: 3}, nil)
				mPrefs.On("FindRestaurantPreference", mock.Anything, uint(1), uint(3)).Return(&model.RestaurantPreference{
					UserID: 1, RestaurantID: 3, Rating: decimal.NewFromInt(9),
				}, nil)
				mPrefs.On("SaveRestaurantPreference", mock.Anything, mock.MatchedBy(func(p *model.RestaurantPreference) bool {
					return p.Rating.Equal(decimal.NewFromInt(2))
				})).Return(nil)
			},
		},
		{
			name:  "creates a cuisine preference",
			input: cuisineRating("Thai", 7.5),
			setupMock: func(mUsers *MockUserRepository, mRestaurants *MockRestaurantRepository, mPrefs *MockPreferenceRepository) {
				mUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				mPrefs.On("FindCuisinePreference", mock.Anything, uint(1), "Thai").Return(nil, gorm.ErrRecordNotFound)
				mPrefs.On("CreateCuisinePreference", mock.Anything, mock.AnythingOfType("*model.CuisinePreference")).Return(nil)
			},
		},
		{
			name:          "unknown user",
			input:         restaurantRating(3, 8),
			setupMock:     func(mUsers *MockUserRepository, mRestaurants *MockRestaurantRepository, mPrefs *MockPreferenceRepository) {
				mUsers.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:  "unknown restaurant",
			input: restaurantRating(99, 8),
			setupMock: func(mUsers *MockUserRepository, mRestaurants *MockRestaurantRepository, mPrefs *MockPreferenceRepository) {
				mUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				mRestaurants.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrRestaurantNotFound,
		},
		{
			name:          "rating above the scale",
			input:         restaurantRating(3, 10.5),
			setupMock:     func(*MockUserRepository, *MockRestaurantRepository, *MockPreferenceRepository) {},
			expectedError: apperrors.ErrInvalidRating,
		},
		{
			name:          "target naming both restaurant and cuisine",
			input:         RatingInput{TargetInput: TargetInput{RestaurantID: 3, CuisineName: "Thai"}, Rating: decimal.NewFromInt(5)},
			setupMock:     func(*MockUserRepository, *MockRestaurantRepository, *MockPreferenceRepository) {},
			expectedError: apperrors.ErrInvalidTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers, mockRestaurants, mockPrefs, _, svc := newPreferenceFixture()
			tt.setupMock(mockUsers, mockRestaurants, mockPrefs)

			err := svc.SetPreference(context.Background(), 1, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockUsers.AssertExpectations(t)
			mockRestaurants.AssertExpectations(t)
			mockPrefs.AssertExpectations(t)
		})
	}
}

func TestPreferenceService_RemovePreference_NotFound(t *testing.T) {
	mockUsers, _, mockPrefs, _, svc := newPreferenceFixture()
	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	mockPrefs.On("FindCuisinePreference", mock.Anything, uint(1), "Thai").Return(nil, gorm.ErrRecordNotFound)

	err := svc.RemovePreference(context.Background(), 1, TargetInput{CuisineName: "Thai"})

	assert.ErrorIs(t, err, apperrors.ErrPreferenceNotFound)
	mockPrefs.AssertNotCalled(t, "DeleteCuisinePreference", mock.Anything, mock.Anything, mock.Anything)
}

func TestPreferenceService_SetDayOfRating(t *testing.T) {
	t.Run("creates under the cap", func(t *testing.T) {
		mockUsers, _, _, mockDayOf, svc := newPreferenceFixture()
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
		mockDayOf.On("Find", mock.Anything, uint(1), model.TargetCuisine, uint(0), "Thai").Return(nil, gorm.ErrRecordNotFound)
		mockDayOf.On("CountByUser", mock.Anything, uint(1)).Return(int64(2), nil)
		mockDayOf.On("Create", mock.Anything, mock.AnythingOfType("*model.DayOfRating")).Return(nil)

		rating, err := svc.SetDayOfRating(context.Background(), 1, cuisineRating("Thai", 9))

		assert.NoError(t, err)
		assert.NotNil(t, rating)
		assert.Equal(t, model.TargetCuisine, rating.Kind)
		assert.Equal(t, "Thai", rating.Cuisine)
		mockDayOf.AssertExpectations(t)
	})

	t.Run("fourth distinct target is rejected", func(t *testing.T) {
		mockUsers, _, _, mockDayOf, svc := newPreferenceFixture()
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
		mockDayOf.On("Find", mock.Anything, uint(1), model.TargetCuisine, uint(0), "Sushi").Return(nil, gorm.ErrRecordNotFound)
		mockDayOf.On("CountByUser", mock.Anything, uint(1)).Return(int64(3), nil)

		rating, err := svc.SetDayOfRating(context.Background(), 1, cuisineRating("Sushi", 9))

		assert.ErrorIs(t, err, apperrors.ErrDayOfLimitReached)
		assert.Nil(t, rating)
		mockDayOf.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("re-rating an existing target does not consume a slot", func(t *testing.T) {
		mockUsers, _, _, mockDayOf, svc := newPreferenceFixture()
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
		mockDayOf.On("Find", mock.Anything, uint(1), model.TargetCuisine, uint(0), "Thai").Return(&model.DayOfRating{
			UserID: 1, Kind: model.TargetCuisine, Cuisine: "Thai", Rating: decimal.NewFromInt(4),
		}, nil)
		mockDayOf.On("Save", mock.Anything, mock.MatchedBy(func(r *model.DayOfRating) bool {
			return r.Rating.Equal(decimal.NewFromInt(9))
		})).Return(nil)

		rating, err := svc.SetDayOfRating(context.Background(), 1, cuisineRating("Thai", 9))

		assert.NoError(t, err)
		assert.NotNil(t, rating)
		mockDayOf.AssertNotCalled(t, "CountByUser", mock.Anything, mock.Anything)
	})

	t.Run("restaurant target must exist", func(t *testing.T) {
		mockUsers, mockRestaurants, _, mockDayOf, svc := newPreferenceFixture()
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
		mockRestaurants.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		rating, err := svc.SetDayOfRating(context.Background(), 1, restaurantRating(99, 9))

		assert.ErrorIs(t, err, apperrors.ErrRestaurantNotFound)
		assert.Nil(t, rating)
		mockDayOf.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPreferenceService_RemoveDayOfRating(t *testing.T) {
	t.Run("removes an existing rating", func(t *testing.T) {
		mockUsers, _, _, mockDayOf, svc := newPreferenceFixture()
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
		mockDayOf.On("Find", mock.Anything, uint(1), model.TargetRestaurant, uint(3), "").Return(&model.DayOfRating{
			UserID: 1, Kind: model.TargetRestaurant, RestaurantID: 3,
		}, nil)
		mockDayOf.On("Delete", mock.Anything, uint(1), model.TargetRestaurant, uint(3), "").Return(nil)

		err := svc.RemoveDayOfRating(context.Background(), 1, TargetInput{RestaurantID: 3})

		assert.NoError(t, err)
		mockDayOf.AssertExpectations(t)
	})

	t.Run("missing rating", func(t *testing.T) {
		mockUsers, _, _, mockDayOf, svc := newPreferenceFixture()
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
		mockDayOf.On("Find", mock.Anything, uint(1), model.TargetRestaurant, uint(3), "").Return(nil, gorm.ErrRecordNotFound)

		err := svc.RemoveDayOfRating(context.Background(), 1, TargetInput{RestaurantID: 3})

		assert.ErrorIs(t, err, apperrors.ErrPreferenceNotFound)
	})
}

func TestPreferenceService_ClearDayOfRatings(t *testing.T) {
	mockUsers, _, _, mockDayOf, svc := newPreferenceFixture()
	mockUsers.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5}, nil)
	mockDayOf.On("DeleteAllByUser", mock.Anything, uint(5)).Return(nil)

	err := svc.ClearDayOfRatings(context.Background(), 5)

	assert.NoError(t, err)
	mockDayOf.AssertExpectations(t)
}
