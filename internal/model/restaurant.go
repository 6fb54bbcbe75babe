package model

import (
	"strings"
	"time"
)

// Restaurant is an immutable catalog entry, administered separately from users.
// Cuisine is a single string but may carry several comma-separated tags
// (e.g. "Japanese, Sushi").
type Restaurant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;index"`
	Cuisine   string    `json:"cuisine" gorm:"size:50;not null"`
	Price     int       `json:"price" gorm:"not null"` // 1 ($) to 4 ($$$$)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CuisineTags splits the comma-separated cuisine field into individual tags,
// trimmed, empty entries dropped. Original casing is preserved.
func (r Restaurant) CuisineTags() []string {
	parts := strings.Split(r.Cuisine, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
