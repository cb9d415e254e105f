package models

import (
	"hallbook/src/types"
)

type Hall struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	Name           string           `json:"name,omitempty"`
	Slug           string           `gorm:"uniqueIndex" json:"slug,omitempty"`
	About          *string          `json:"about,omitempty"`
	Location       string           `json:"location,omitempty"`
	HourlyRate     *float64         `json:"hourly_rate,omitempty"`
	DailyRate      *float64         `json:"daily_rate,omitempty"`
	DepositPercent float64          `gorm:"default:20" json:"deposit_percent,omitempty"`
	BufferHours    uint             `json:"buffer_hours,omitempty"`
	ContactEmail   string           `json:"email,omitempty"`
	Status         types.HallStatus `gorm:"default:'open'" json:"status,omitempty"`
	OwnerID        uint             `json:"owner,omitempty"`

	Owner      User       `gorm:"foreignKey:owner_id" json:"-"`
	Facilities []Facility `gorm:"foreignKey:hall_id" json:"facilities,omitempty"`

	types.Timestamps
}

type Facility struct {
	ID           uint               `gorm:"primarykey" json:"id"`
	HallID       uint               `json:"hall_id,omitempty"`
	Name         string             `json:"name,omitempty"`
	Cost         float64            `json:"cost,omitempty"`
	ChargeMethod types.ChargeMethod `gorm:"default:'flat'" json:"charge_method,omitempty"`
	Status       string             `gorm:"default:'available'" json:"status,omitempty"`

	Hall Hall `gorm:"foreignKey:hall_id" json:"-"`

	types.Timestamps
}
