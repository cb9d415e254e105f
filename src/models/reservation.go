package models

import (
	"hallbook/src/types"
	"time"
)

// Reservation is a time-boxed hold on hall slots pending full payment.
// Price fields are snapshots computed at creation time; BookingDates and
// Facilities are carried over verbatim when the reservation converts.
type Reservation struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	Code         string  `gorm:"uniqueIndex" json:"code,omitempty"`
	Reference    *string `gorm:"uniqueIndex" json:"reference,omitempty"`
	HallID       uint    `json:"hall_id,omitempty"`
	UserID       *uint   `json:"user_id,omitempty"`
	ReservedByID uint    `json:"reserved_by,omitempty"`

	BookingDates    types.DateRanges      `gorm:"type:jsonb" json:"booking_dates,omitempty"`
	TotalPrice      float64               `json:"total_price,omitempty"`
	HallPrice       float64               `json:"hall_price,omitempty"`
	FacilitiesPrice float64               `json:"facilities_price,omitempty"`
	ReservationFee  float64               `json:"reservation_fee,omitempty"`
	Facilities      types.FacilityCharges `gorm:"type:jsonb" json:"facilities,omitempty"`

	PaymentStatus types.PaymentStatus     `gorm:"default:'pending'" json:"payment_status,omitempty"`
	PaymentMethod string                  `json:"payment_method,omitempty"`
	Status        types.ReservationStatus `gorm:"default:'active'" json:"status,omitempty"`
	CutoffDate    time.Time               `json:"cutoff_date,omitempty"`
	RemindersSent types.TimeList          `gorm:"type:jsonb;default:'[]'" json:"reminders_sent,omitempty"`
	WalkIn        *types.WalkInCustomer   `gorm:"type:jsonb" json:"walk_in,omitempty"`
	GatewayTxnID  *string                 `json:"gateway_txn_id,omitempty"`

	Hall       Hall  `gorm:"foreignKey:hall_id" json:"hall,omitempty"`
	User       *User `gorm:"foreignKey:user_id" json:"user,omitempty"`
	ReservedBy User  `gorm:"foreignKey:reserved_by_id" json:"-"`

	types.Timestamps
}

// Customer returns the unified customer shape for notifications,
// preferring the registered user over walk-in details.
func (r *Reservation) Customer() types.Customer {
	if r.UserID != nil {
		c := types.Customer{UserID: r.UserID}
		if r.User != nil {
			c.FullName = r.User.Name
			c.Email = r.User.Email
			c.Phone = r.User.Phone
		}
		return c
	}
	if r.WalkIn != nil {
		return types.Customer{
			FullName: r.WalkIn.FullName,
			Email:    r.WalkIn.Email,
			Phone:    r.WalkIn.Phone,
		}
	}
	return types.Customer{}
}

func (r *Reservation) RemainingBalance() float64 {
	return r.TotalPrice - r.ReservationFee
}
