package service

import "groupdine/internal/model"

// DefaultRestaurants returns the starter catalog used when seeding an empty
// database.
func DefaultRestaurants() []model.Restaurant {
	return []model.Restaurant{
		{Name: "Mama Mia Trattoria", Cuisine: "Italian", Price: 3},
		{Name: "Pizza Napoli", Cuisine: "Italian", Price: 2},
		{Name: "Bella Vista", Cuisine: "Italian", Price: 4},
		{Name: "Taco Fiesta", Cuisine: "Mexican", Price: 1},
		{Name: "El Mariachi", Cuisine: "Mexican", Price: 2},
		{Name: "Casa Grande", Cuisine: "Mexican", Price: 3},
		{Name: "Golden Dragon", Cuisine: "Chinese", Price: 2},
		{Name: "Szechuan Palace", Cuisine: "Chinese", Price: 3},
		{Name: "Dim Sum House", Cuisine: "Chinese", Price: 2},
		{Name: "Sakura Sushi", Cuisine: "Japanese, Sushi", Price: 3},
		{Name: "Ramen Bowl", Cuisine: "Japanese", Price: 2},
		{Name: "Tokyo Grill", Cuisine: "Japanese", Price: 4},
		{Name: "The Burger Joint", Cuisine: "American", Price: 2},
		{Name: "Steakhouse Prime", Cuisine: "American", Price: 4},
		{Name: "Diner Deluxe", Cuisine: "American", Price: 1},
		{Name: "Curry House", Cuisine: "Indian", Price: 2},
		{Name: "Taj Mahal", Cuisine: "Indian", Price: 3},
		{Name: "Bombay Spice", Cuisine: "Indian", Price: 2},
		{Name: "Thai Basil", Cuisine: "Thai", Price: 2},
		{Name: "Bangkok Street Food", Cuisine: "Thai", Price: 1},
		{Name: "Royal Thai", Cuisine: "Thai", Price: 3},
		{Name: "Le Petit Bistro", Cuisine: "French", Price: 4},
		{Name: "Cafe Paris", Cuisine: "French", Price: 3},
		{Name: "Olive Garden Bistro", Cuisine: "Mediterranean", Price: 3},
		{Name: "Greek Taverna", Cuisine: "Mediterranean, Greek", Price: 2},
	}
}
