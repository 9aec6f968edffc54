package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Meal struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	ChefEmail    string    `json:"chef_email" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Price        float64   `json:"price"`
	Ingredients  string    `json:"ingredients"`
	DeliveryTime string    `json:"delivery_time"` // e.g. "30-40 min"
	Experience   string    `json:"experience"`    // chef's self-reported experience
	CreatedAt    time.Time `json:"created_at"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
