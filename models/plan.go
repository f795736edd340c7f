package models

import "time"

// Plan is a read-only membership tier. Rows are seeded at startup; no API
// surface mutates them.
type Plan struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Badge     string    `json:"badge"`
	Perks     string    `json:"perks"`
	CreatedAt time.Time `json:"created_at"`
}
