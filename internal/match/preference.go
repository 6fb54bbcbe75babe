// Package match implements the group matching engine: resolving each user's
// effective per-restaurant score, folding the group's scores into one score per
// restaurant, and ranking the outcome. Everything here is pure and safe for
// concurrent callers.
package match

import (
	"strings"

	"groupdine/internal/model"
)

// Target identifies what a rating applies to: exactly one of a restaurant or a
// cuisine, discriminated by Kind.
type Target struct {
	Kind         model.TargetKind
	RestaurantID uint
	Cuisine      string
}

// RestaurantTarget builds a restaurant-keyed target.
func RestaurantTarget(id uint) Target {
	return Target{Kind: model.TargetRestaurant, RestaurantID: id}
}

// CuisineTarget builds a cuisine-keyed target.
func CuisineTarget(name string) Target {
	return Target{Kind: model.TargetCuisine, Cuisine: name}
}

// Rating is one preference signal feeding a matching run.
type Rating struct {
	Target Target
	Score  float64
}

// PreferenceSet is one user's effective preference input for a single matching
// run, split into restaurant-keyed and cuisine-keyed ratings. Cuisine keys are
// normalized so that "Thai", " thai " and "THAI" collide.
type PreferenceSet struct {
	restaurants map[uint]float64
	cuisines    map[string]float64
}

// NewPreferenceSet builds a set from a rating list. A later rating for the
// same target replaces the earlier one.
func NewPreferenceSet(ratings []Rating) PreferenceSet {
	s := PreferenceSet{
		restaurants: make(map[uint]float64),
		cuisines:    make(map[string]float64),
	}
	s.apply(ratings)
	return s
}

// Overlay returns a copy of the set with the given ratings superseding the
// existing rating for each target they name. Targets not named are untouched.
func (s PreferenceSet) Overlay(ratings []Rating) PreferenceSet {
	out := PreferenceSet{
		restaurants: make(map[uint]float64, len(s.restaurants)),
		cuisines:    make(map[string]float64, len(s.cuisines)),
	}
	for id, v := range s.restaurants {
		out.restaurants[id] = v
	}
	for name, v := range s.cuisines {
		out.cuisines[name] = v
	}
	out.apply(ratings)
	return out
}

func (s PreferenceSet) apply(ratings []Rating) {
	for _, r := range ratings {
		switch r.Target.Kind {
		case model.TargetRestaurant:
			s.restaurants[r.Target.RestaurantID] = r.Score
		case model.TargetCuisine:
			if key := normalizeCuisine(r.Target.Cuisine); key != "" {
				s.cuisines[key] = r.Score
			}
		}
	}
}

func normalizeCuisine(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
