package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestaurantPreference is a user's durable rating of a specific restaurant.
// At most one row per (user, restaurant); re-rating updates in place.
type RestaurantPreference struct {
	ID           uint            `json:"-" gorm:"primaryKey"`
	UserID       uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_user_restaurant"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_user_restaurant"`
	Rating       decimal.Decimal `json:"rating" gorm:"type:decimal(3,1);not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CuisinePreference is a user's durable rating of a whole cuisine.
// At most one row per (user, cuisine name).
type CuisinePreference struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_user_cuisine"`
	Cuisine   string          `json:"cuisine" gorm:"size:50;not null;uniqueIndex:idx_user_cuisine"`
	Rating    decimal.Decimal `json:"rating" gorm:"type:decimal(3,1);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
