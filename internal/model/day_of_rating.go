package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TargetKind discriminates what a day-of rating points at.
type TargetKind string

const (
	TargetRestaurant TargetKind = "restaurant"
	TargetCuisine    TargetKind = "cuisine"
)

// MaxDayOfRatings is the hard cap on day-of ratings per user.
const MaxDayOfRatings = 3

// DayOfRating is an ephemeral override rating scoped to a single matching
// session. The target is exactly one of a restaurant or a cuisine; Kind says
// which of RestaurantID/Cuisine is meaningful.
type DayOfRating struct {
	ID           uint            `json:"-" gorm:"primaryKey"`
	UserID       uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_user_dayof_target"`
	Kind         TargetKind      `json:"kind" gorm:"type:varchar(20);not null;uniqueIndex:idx_user_dayof_target"`
	RestaurantID uint            `json:"restaurant_id,omitempty" gorm:"uniqueIndex:idx_user_dayof_target"`
	Cuisine      string          `json:"cuisine,omitempty" gorm:"size:50;uniqueIndex:idx_user_dayof_target"`
	Rating       decimal.Decimal `json:"rating" gorm:"type:decimal(3,1);not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
