package model

import "time"

// User represents a diner in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"size:255"` // empty for users created without credentials
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	RestaurantPreferences []RestaurantPreference `json:"restaurant_preferences,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CuisinePreferences    []CuisinePreference    `json:"cuisine_preferences,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DayOfRatings          []DayOfRating          `json:"day_of_ratings,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
