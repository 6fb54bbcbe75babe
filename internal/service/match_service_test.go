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

func newMatchFixture() (*MockUserRepository, *MockPreferenceRepository, *MockDayOfRepository, *MockRestaurantRepository, MatchService) {
	mockUsers := new(MockUserRepository)
	mockPrefs := new(MockPreferenceRepository)
	mockDayOf := new(MockDayOfRepository)
	mockRestaurants := new(MockRestaurantRepository)
	catalog := NewCatalogService(mockRestaurants, nil, 0)
	svc := NewMatchService(mockUsers, mockPrefs, mockDayOf, catalog)
	return mockUsers, mockPrefs, mockDayOf, mockRestaurants, svc
}

func TestMatchService_Match_InsufficientUsers(t *testing.T) {
	tests := []struct {
		name         string
		participants []Participant
	}{
		{
			name:         "no participants",
			participants: nil,
		},
		{
			name:         "one participant",
			participants: []Participant{{UserID: 1}},
		},
		{
			name:         "duplicates collapse to one",
			participants: []Participant{{UserID: 1}, {UserID: 1}, {UserID: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, svc := newMatchFixture()

			results, err := svc.Match(context.Background(), tt.participants)

			assert.ErrorIs(t, err, apperrors.ErrInsufficientUsers)
			assert.Nil(t, results)
		})
	}
}

func TestMatchService_Match_UnknownUserFailsBeforeScoring(t *testing.T) {
	mockUsers, mockPrefs, _, _, svc := newMatchFixture()
	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	mockUsers.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	results, err := svc.Match(context.Background(), []Participant{{UserID: 1}, {UserID: 42}})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, results)
	mockUsers.AssertExpectations(t)
	mockPrefs.AssertNotCalled(t, "ListRestaurantPreferences", mock.Anything, mock.Anything)
}

func TestMatchService_Match_StoredPreferencesWithDayOfOverrides(t *testing.T) {
	mockUsers, mockPrefs, mockDayOf, mockRestaurants, svc := newMatchFixture()

	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	mockUsers.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)

	mockPrefs.On("ListRestaurantPreferences", mock.Anything, uint(1)).Return([]model.RestaurantPreference{
		{UserID: 1, RestaurantID: 1, Rating: decimal.NewFromInt(8)},
	}, nil)
	mockPrefs.On("ListCuisinePreferences", mock.Anything, uint(1)).Return([]model.CuisinePreference{
		{UserID: 1, Cuisine: "Mexican", Rating: decimal.NewFromInt(4)},
	}, nil)
	// the day-of rating supersedes the stored Mexican preference
	mockDayOf.On("ListByUser", mock.Anything, uint(1)).Return([]model.DayOfRating{
		{UserID: 1, Kind: model.TargetCuisine, Cuisine: "mexican", Rating: decimal.NewFromInt(9)},
	}, nil)

	mockPrefs.On("ListRestaurantPreferences", mock.Anything, uint(2)).Return([]model.RestaurantPreference{}, nil)
	mockPrefs.On("ListCuisinePreferences", mock.Anything, uint(2)).Return([]model.CuisinePreference{
		{UserID: 2, Cuisine: "Thai", Rating: decimal.NewFromInt(6)},
		{UserID: 2, Cuisine: "Mexican", Rating: decimal.NewFromInt(5)},
	}, nil)
	mockDayOf.On("ListByUser", mock.Anything, uint(2)).Return([]model.DayOfRating{}, nil)

	mockRestaurants.On("List", mock.Anything).Return([]model.Restaurant{
		{ID: 1, Name: "Thai Orchid", Cuisine: "Thai"},
		{ID: 2, Name: "Burger Barn", Cuisine: "American"},
		{ID: 3, Name: "Taco Town", Cuisine: "Mexican"},
	}, nil)

	results, err := svc.Match(context.Background(), []Participant{{UserID: 1}, {UserID: 2}})

	assert.NoError(t, err)
	assert.Len(t, results, 2)

	// Thai Orchid: 8 (direct) * 6 (Thai) = 48; Taco Town: 9 (day-of) * 5 = 45
	assert.Equal(t, "Thai Orchid", results[0].Restaurant.Name)
	assert.Equal(t, 48.0, results[0].Score)
	assert.Equal(t, 10.0, results[0].DisplayScore)
	assert.Equal(t, 2, results[0].Contributors)

	assert.Equal(t, "Taco Town", results[1].Restaurant.Name)
	assert.Equal(t, 45.0, results[1].Score)
	assert.Equal(t, 9.4, results[1].DisplayScore)

	mockUsers.AssertExpectations(t)
	mockPrefs.AssertExpectations(t)
	mockDayOf.AssertExpectations(t)
}

func TestMatchService_Match_OverridesReplaceStoredPreferences(t *testing.T) {
	mockUsers, mockPrefs, mockDayOf, mockRestaurants, svc := newMatchFixture()

	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	mockUsers.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)

	mockPrefs.On("ListRestaurantPreferences", mock.Anything, uint(1)).Return([]model.RestaurantPreference{
		{UserID: 1, RestaurantID: 1, Rating: decimal.NewFromInt(5)},
	}, nil)
	mockPrefs.On("ListCuisinePreferences", mock.Anything, uint(1)).Return([]model.CuisinePreference{}, nil)
	mockDayOf.On("ListByUser", mock.Anything, uint(1)).Return([]model.DayOfRating{}, nil)

	mockRestaurants.On("List", mock.Anything).Return([]model.Restaurant{
		{ID: 1, Name: "Thai Orchid", Cuisine: "Thai"},
	}, nil)

	overrides := []RatingInput{
		{TargetInput: TargetInput{RestaurantID: 1}, Rating: decimal.NewFromInt(10)},
	}
	results, err := svc.Match(context.Background(), []Participant{
		{UserID: 1},
		{UserID: 2, Overrides: overrides},
	})

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 50.0, results[0].Score)
	assert.Equal(t, 2, results[0].Contributors)

	// user 2's stored data was never read
	mockPrefs.AssertNotCalled(t, "ListRestaurantPreferences", mock.Anything, uint(2))
	mockDayOf.AssertNotCalled(t, "ListByUser", mock.Anything, uint(2))
}

func TestMatchService_Match_EmptyOverrideListMeansNoVotes(t *testing.T) {
	mockUsers, mockPrefs, mockDayOf, mockRestaurants, svc := newMatchFixture()

	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	mockUsers.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)

	mockPrefs.On("ListRestaurantPreferences", mock.Anything, uint(1)).Return([]model.RestaurantPreference{
		{UserID: 1, RestaurantID: 1, Rating: decimal.NewFromInt(7)},
	}, nil)
	mockPrefs.On("ListCuisinePreferences", mock.Anything, uint(1)).Return([]model.CuisinePreference{}, nil)
	mockDayOf.On("ListByUser", mock.Anything, uint(1)).Return([]model.DayOfRating{}, nil)

	mockRestaurants.On("List", mock.Anything).Return([]model.Restaurant{
		{ID: 1, Name: "Thai Orchid", Cuisine: "Thai"},
	}, nil)

	// non-nil empty slice: participate, but wipe stored preferences for this run
	results, err := svc.Match(context.Background(), []Participant{
		{UserID: 1},
		{UserID: 2, Overrides: []RatingInput{}},
	})

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 7.0, results[0].Score)
	assert.Equal(t, 1, results[0].Contributors)
}

func TestMatchService_Match_InvalidOverrideRating(t *testing.T) {
	mockUsers, _, _, _, svc := newMatchFixture()

	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	mockUsers.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)

	overrides := []RatingInput{
		{TargetInput: TargetInput{RestaurantID: 1}, Rating: decimal.NewFromInt(11)},
	}
	results, err := svc.Match(context.Background(), []Participant{
		{UserID: 1, Overrides: overrides},
		{UserID: 2, Overrides: []RatingInput{}},
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidRating)
	assert.Nil(t, results)
}

func TestMatchService_Match_NoCommonGround(t *testing.T) {
	mockUsers, mockPrefs, mockDayOf, mockRestaurants, svc := newMatchFixture()

	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	mockUsers.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)

	for _, id := range []uint{1, 2} {
		mockPrefs.On("ListRestaurantPreferences", mock.Anything, id).Return([]model.RestaurantPreference{}, nil)
		mockPrefs.On("ListCuisinePreferences", mock.Anything, id).Return([]model.CuisinePreference{}, nil)
		mockDayOf.On("ListByUser", mock.Anything, id).Return([]model.DayOfRating{}, nil)
	}
	mockRestaurants.On("List", mock.Anything).Return([]model.Restaurant{
		{ID: 1, Name: "Thai Orchid", Cuisine: "Thai"},
	}, nil)

	results, err := svc.Match(context.Background(), []Participant{{UserID: 1}, {UserID: 2}})

	assert.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
