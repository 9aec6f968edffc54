package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestType is the role a user asks to be promoted to.
type RequestType string

const (
	RequestChef  RequestType = "chef"
	RequestAdmin RequestType = "admin"
)

// RequestStatus values. Any status other than "approved" leaves the
// requester's user document untouched.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

type RoleRequest struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	Email     string      `json:"email" gorm:"index;not null"`
	Type      RequestType `json:"type" gorm:"not null"`
	Status    string      `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt time.Time   `json:"created_at"`
}

func (r *RoleRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
