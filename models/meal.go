package models

import "time"

// MealStatus represents where a meal sits in the catalog lifecycle
type MealStatus string

const (
	MealUpcoming  MealStatus = "upcoming"
	MealPublished MealStatus = "published"
)

type Meal struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Title            string     `json:"title" gorm:"not null"`
	Category         string     `json:"category"`
	Image            string     `json:"image"`
	Ingredients      string     `json:"ingredients"`
	Description      string     `json:"description"`
	Price            float64    `json:"price" gorm:"not null"`
	Rating           float64    `json:"rating" gorm:"default:0"`
	Likes            int64      `json:"likes" gorm:"default:0"`
	ReviewsCount     int64      `json:"reviews_count" gorm:"default:0"`
	Status           MealStatus `json:"status" gorm:"not null;default:'published'"`
	PostTime         *time.Time `json:"post_time"`
	DistributorName  string     `json:"distributor_name"`
	DistributorEmail string     `json:"distributor_email"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
