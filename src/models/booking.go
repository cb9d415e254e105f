package models

import "hallbook/src/types"

type Booking struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	Code   string `gorm:"uniqueIndex" json:"code,omitempty"`
	HallID uint   `json:"hall_id,omitempty"`
	UserID *uint  `json:"user_id,omitempty"`

	BookingDates    types.DateRanges      `gorm:"type:jsonb" json:"booking_dates,omitempty"`
	TotalPrice      float64               `json:"total_price,omitempty"`
	HallPrice       float64               `json:"hall_price,omitempty"`
	FacilitiesPrice float64               `json:"facilities_price,omitempty"`
	Facilities      types.FacilityCharges `gorm:"type:jsonb" json:"facilities,omitempty"`

	PaymentMethod string                `json:"payment_method,omitempty"`
	PaymentStatus types.PaymentStatus   `gorm:"default:'pending'" json:"payment_status,omitempty"`
	Status        types.BookingStatus   `gorm:"default:'confirmed'" json:"status,omitempty"`
	BookingType   types.BookingType     `gorm:"default:'online'" json:"booking_type,omitempty"`
	WalkIn        *types.WalkInCustomer `gorm:"type:jsonb" json:"walk_in,omitempty"`
	ReservationID *uint                 `json:"reservation_id,omitempty"`

	Hall        Hall         `gorm:"foreignKey:hall_id" json:"hall,omitempty"`
	User        *User        `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Reservation *Reservation `gorm:"foreignKey:reservation_id" json:"reservation,omitempty"`

	types.Timestamps
}
