package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MealID    uint      `json:"meal_id" gorm:"not null"`
	MealTitle string    `json:"meal_title"`
	UserEmail string    `json:"user_email" gorm:"not null;index"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
