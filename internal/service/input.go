package service

import (
	"github.com/shopspring/decimal"

	"groupdine/internal/errors"
	"groupdine/internal/match"
	"groupdine/internal/model"
)

var (
	ratingFloor = decimal.NewFromInt(1)
	ratingCeil  = decimal.NewFromInt(10)
)

// TargetInput names exactly one of a restaurant or a cuisine.
type TargetInput struct {
	RestaurantID uint
	CuisineName  string
}

// Kind reports which target variant is set, or ErrInvalidTarget when neither
// or both are.
func (t TargetInput) Kind() (model.TargetKind, error) {
	switch {
	case t.RestaurantID != 0 && t.CuisineName == "":
		return model.TargetRestaurant, nil
	case t.RestaurantID == 0 && t.CuisineName != "":
		return model.TargetCuisine, nil
	default:
		return "", errors.ErrInvalidTarget
	}
}

// RatingInput is a target plus a rating, as submitted by callers.
type RatingInput struct {
	TargetInput
	Rating decimal.Decimal
}

// normalizeRating bounds-checks a rating and rounds it to one decimal place,
// the stored precision.
func normalizeRating(d decimal.Decimal) (decimal.Decimal, error) {
	if d.LessThan(ratingFloor) || d.GreaterThan(ratingCeil) {
		return decimal.Decimal{}, errors.ErrInvalidRating
	}
	return d.Round(1), nil
}

// toMatchRating converts a validated input into the core's rating type.
func toMatchRating(in RatingInput) (match.Rating, error) {
	kind, err := in.Kind()
	if err != nil {
		return match.Rating{}, err
	}
	rating, err := normalizeRating(in.Rating)
	if err != nil {
		return match.Rating{}, err
	}
	score := rating.InexactFloat64()
	if kind == model.TargetRestaurant {
		return match.Rating{Target: match.RestaurantTarget(in.RestaurantID), Score: score}, nil
	}
	return match.Rating{Target: match.CuisineTarget(in.CuisineName), Score: score}, nil
}
