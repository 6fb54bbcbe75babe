package match

import (
	"math"
	"sort"

	"groupdine/internal/model"
)

// Result is one entry of the final ranked list.
type Result struct {
	Restaurant   model.Restaurant `json:"restaurant"`
	Cuisine      string           `json:"cuisine,omitempty"`
	Score        float64          `json:"score"`
	DisplayScore float64          `json:"display_score"`
	Contributors int              `json:"contributors"`
}

// Rank orders group scores descending, ties broken by restaurant id ascending.
// Display scores are normalized to 10 * score / max and rounded to one
// decimal, so the top entry always reads exactly 10.0. The result is never
// nil; an empty slice means no restaurant had a contributor.
func Rank(group map[uint]GroupScore, catalog []model.Restaurant) []Result {
	byID := make(map[uint]model.Restaurant, len(catalog))
	for _, r := range catalog {
		byID[r.ID] = r
	}

	results := make([]Result, 0, len(group))
	var max float64
	for id, g := range group {
		r, ok := byID[id]
		if !ok {
			continue
		}
		results = append(results, Result{
			Restaurant:   r,
			Cuisine:      g.Cuisine,
			Score:        g.Value,
			Contributors: g.Contributors,
		})
		if g.Value > max {
			max = g.Value
		}
	}
	if max <= 0 {
		// ratings live in [1,10] so every product is positive; this also
		// covers the empty set without dividing by zero below
		return []Result{}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Restaurant.ID < results[j].Restaurant.ID
	})

	for i := range results {
		results[i].DisplayScore = math.Round(results[i].Score/max*100) / 10
	}
	return results
}

// Run executes one full matching pass: resolve each user's effective scores,
// aggregate them and rank the outcome.
func Run(sets []PreferenceSet, catalog []model.Restaurant) []Result {
	perUser := make([]map[uint]Score, 0, len(sets))
	for _, set := range sets {
		perUser = append(perUser, Resolve(set, catalog))
	}
	return Rank(Aggregate(perUser), catalog)
}
