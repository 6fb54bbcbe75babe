package match

import "groupdine/internal/model"

// Score is one user's effective score for one restaurant. Cuisine holds the
// catalog tag (as stored) that produced a cuisine-derived score, and is empty
// when the restaurant was rated directly.
type Score struct {
	Value   float64
	Cuisine string
}

// Resolve computes the user's effective score for every restaurant in the
// catalog. A restaurant-keyed rating always wins outright; otherwise the score
// is the arithmetic mean of the cuisine ratings matching any of the
// restaurant's comma-separated tags. Restaurants matching neither are absent
// from the result entirely: unscored, not zero.
func Resolve(set PreferenceSet, catalog []model.Restaurant) map[uint]Score {
	scores := make(map[uint]Score, len(catalog))
	for _, r := range catalog {
		if v, ok := set.restaurants[r.ID]; ok {
			scores[r.ID] = Score{Value: v}
			continue
		}

		var sum float64
		var n int
		var label string
		seen := make(map[string]bool)
		for _, tag := range r.CuisineTags() {
			key := normalizeCuisine(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			if v, ok := set.cuisines[key]; ok {
				sum += v
				n++
				if label == "" {
					label = tag
				}
			}
		}
		if n > 0 {
			scores[r.ID] = Score{Value: sum / float64(n), Cuisine: label}
		}
	}
	return scores
}
