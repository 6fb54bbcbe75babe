package match

// GroupScore is the combined score of all contributing users for one
// restaurant.
type GroupScore struct {
	Value        float64
	Contributors int
	Cuisine      string
}

// Aggregate folds per-user effective scores into one group score per
// restaurant. The group score is the product of the contributing scores, so a
// restaurant everyone rates 6 outranks one rated 9 by most and 1 by one hater.
// Restaurants no user scored are absent entirely; a lone contributor's score
// stands as-is.
func Aggregate(perUser []map[uint]Score) map[uint]GroupScore {
	group := make(map[uint]GroupScore)
	for _, scores := range perUser {
		for id, s := range scores {
			g, ok := group[id]
			if !ok {
				g = GroupScore{Value: 1}
			}
			g.Value *= s.Value
			g.Contributors++
			if g.Cuisine == "" {
				g.Cuisine = s.Cuisine
			}
			group[id] = g
		}
	}
	return group
}
