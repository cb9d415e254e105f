package models

import (
	"hallbook/src/types"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	RecipientID *uint     `json:"recipient_id,omitempty"`
	Email       string    `json:"email,omitempty"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Link        *string   `json:"link,omitempty"`
	Status      string    `gorm:"default:'sent'" json:"status"`

	types.Timestamps
}
