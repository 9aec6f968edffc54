package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleChef  UserRole = "chef"
	RoleAdmin UserRole = "admin"
)

// User is keyed by email. Role starts at "user" and only changes through an
// approved role request.
type User struct {
	Email        string    `json:"email" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role" gorm:"not null;default:'user'"`
	Status       string    `json:"status" gorm:"not null;default:'active'"`
	ChefID       string    `json:"chef_id,omitempty"` // set on chef promotion
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
