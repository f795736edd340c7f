package models

import "time"

type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserEmail     string    `json:"user_email" gorm:"not null;index"`
	UserName      string    `json:"user_name"`
	Amount        float64   `json:"amount" gorm:"not null"`
	PlanName      string    `json:"plan_name"`
	TransactionID string    `json:"transaction_id" gorm:"uniqueIndex"`
	Status        string    `json:"status" gorm:"default:'succeeded'"`
	CreatedAt     time.Time `json:"created_at"`
}
