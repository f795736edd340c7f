package models

import "time"

// UserRole defines the privilege levels in the system. Anything other than
// "admin" (including the zero value) is a regular member.
type UserRole string

const (
	RoleMember UserRole = ""
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Role      UserRole  `json:"role"`
	Badge     string    `json:"badge" gorm:"default:'Bronze'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
