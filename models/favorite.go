package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite bookmarks a meal for a user. A given (email, meal_id) pair exists
// at most once, enforced by a check before insert rather than a storage-level
// constraint.
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"index;not null"`
	MealID    string    `json:"meal_id" gorm:"not null"`
	MealName  string    `json:"meal_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
