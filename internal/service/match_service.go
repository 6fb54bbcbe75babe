package service

import (
	"context"

	"gorm.io/gorm"

	"groupdine/internal/errors"
	"groupdine/internal/match"
	"groupdine/internal/model"
	"groupdine/internal/repository"
)

// Participant is one user's entry in a match request. A nil Overrides means
// "use stored preferences"; a non-nil slice, even an empty one, replaces the
// user's stored preferences entirely for this run.
type Participant struct {
	UserID    uint
	Overrides []RatingInput
}

// MatchService runs the group matching computation over a snapshot of
// preference data and the catalog.
type MatchService interface {
	Match(ctx context.Context, participants []Participant) ([]match.Result, error)
}

type matchService struct {
	users   repository.UserRepository
	prefs   repository.PreferenceRepository
	dayOf   repository.DayOfRepository
	catalog CatalogService
}

// NewMatchService builds a MatchService.
func NewMatchService(
	users repository.UserRepository,
	prefs repository.PreferenceRepository,
	dayOf repository.DayOfRepository,
	catalog CatalogService,
) MatchService {
	return &matchService{users: users, prefs: prefs, dayOf: dayOf, catalog: catalog}
}

// Match validates the request, resolves each participant's effective
// preference set and runs the pure matching core. All validation happens
// before any scoring; an empty result is a valid outcome, not an error.
func (s *matchService) Match(ctx context.Context, participants []Participant) ([]match.Result, error) {
	seen := make(map[uint]bool, len(participants))
	distinct := make([]Participant, 0, len(participants))
	for _, p := range participants {
		if seen[p.UserID] {
			continue
		}
		seen[p.UserID] = true
		distinct = append(distinct, p)
	}
	if len(distinct) < 2 {
		return nil, errors.ErrInsufficientUsers
	}

	for _, p := range distinct {
		if _, err := s.users.FindByID(ctx, p.UserID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrUserNotFound
			}
			return nil, err
		}
	}

	sets := make([]match.PreferenceSet, 0, len(distinct))
	for _, p := range distinct {
		set, err := s.effectiveSet(ctx, p)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	catalog, err := s.catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	return match.Run(sets, catalog), nil
}

// effectiveSet builds one participant's preference input for this run: the
// submitted override list verbatim when present, otherwise the stored base
// preferences with the user's day-of ratings superseding per target.
func (s *matchService) effectiveSet(ctx context.Context, p Participant) (match.PreferenceSet, error) {
	if p.Overrides != nil {
		ratings := make([]match.Rating, 0, len(p.Overrides))
		for _, in := range p.Overrides {
			r, err := toMatchRating(in)
			if err != nil {
				return match.PreferenceSet{}, err
			}
			ratings = append(ratings, r)
		}
		return match.NewPreferenceSet(ratings), nil
	}

	restaurantPrefs, err := s.prefs.ListRestaurantPreferences(ctx, p.UserID)
	if err != nil {
		return match.PreferenceSet{}, err
	}
	cuisinePrefs, err := s.prefs.ListCuisinePreferences(ctx, p.UserID)
	if err != nil {
		return match.PreferenceSet{}, err
	}
	dayOf, err := s.dayOf.ListByUser(ctx, p.UserID)
	if err != nil {
		return match.PreferenceSet{}, err
	}

	base := make([]match.Rating, 0, len(restaurantPrefs)+len(cuisinePrefs))
	for _, pref := range restaurantPrefs {
		base = append(base, match.Rating{
			Target: match.RestaurantTarget(pref.RestaurantID),
			Score:  pref.Rating.InexactFloat64(),
		})
	}
	for _, pref := range cuisinePrefs {
		base = append(base, match.Rating{
			Target: match.CuisineTarget(pref.Cuisine),
			Score:  pref.Rating.InexactFloat64(),
		})
	}

	overrides := make([]match.Rating, 0, len(dayOf))
	for _, r := range dayOf {
		target := match.CuisineTarget(r.Cuisine)
		if r.Kind == model.TargetRestaurant {
			target = match.RestaurantTarget(r.RestaurantID)
		}
		overrides = append(overrides, match.Rating{Target: target, Score: r.Rating.InexactFloat64()})
	}

	return match.NewPreferenceSet(base).Overlay(overrides), nil
}
