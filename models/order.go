package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is append-only from the client's perspective and queried by buyer
// email. Price and name are snapshots taken at order time.
type Order struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"index;not null"`
	MealID    string    `json:"meal_id"`
	MealName  string    `json:"meal_name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
