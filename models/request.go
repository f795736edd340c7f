package models

import "time"

// RequestStatus represents the lifecycle of a meal request
type RequestStatus string

const (
	RequestPending RequestStatus = "pending"
	RequestServed  RequestStatus = "served"
)

type Request struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	MealID       uint          `json:"meal_id" gorm:"not null"`
	MealTitle    string        `json:"meal_title"`
	RequestEmail string        `json:"request_email" gorm:"not null;index"`
	UserName     string        `json:"user_name"`
	Status       RequestStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
