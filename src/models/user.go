package models

import "hallbook/src/types"

type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `gorm:"default:'customer'" json:"role,omitempty"`
	UID   string `json:"uid,omitempty"`

	Bookings     []Booking     `gorm:"foreignKey:user_id" json:"bookings,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:user_id" json:"reservations,omitempty"`
	Halls        []Hall        `gorm:"foreignKey:owner_id" json:"halls,omitempty"`

	types.Timestamps
}
