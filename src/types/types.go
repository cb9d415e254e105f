package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any
type Metadata map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

func (a Metadata) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *Metadata) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// DateRange is a half-open interval [StartTime, EndTime).
type DateRange struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (r DateRange) Hours() float64 {
	return r.EndTime.Sub(r.StartTime).Hours()
}

type DateRanges []DateRange

func (a DateRanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *DateRanges) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// EarliestStart returns the smallest StartTime across the ranges. The zero
// time is returned for an empty slice.
func (a DateRanges) EarliestStart() time.Time {
	var earliest time.Time
	for i, r := range a {
		if i == 0 || r.StartTime.Before(earliest) {
			earliest = r.StartTime
		}
	}
	return earliest
}

// FacilityCharge is the per-facility cost snapshot stored on reservations
// and bookings at creation time.
type FacilityCharge struct {
	FacilityID   uint    `json:"facility_id"`
	Name         string  `json:"name"`
	Qty          uint    `json:"qty"`
	ChargeMethod string  `json:"charge_method"`
	UnitCost     float64 `json:"unit_cost"`
	Cost         float64 `json:"cost"`
}

type FacilityCharges []FacilityCharge

func (a FacilityCharges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *FacilityCharges) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type TimeList []time.Time

func (a TimeList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *TimeList) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// WalkInCustomer identifies a customer without a registered account,
// supplied by staff on the walk-in path.
type WalkInCustomer struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email,omitempty"`
}

func (a WalkInCustomer) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *WalkInCustomer) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// Customer is the unified shape consumed by notification and finalize
// logic. A registered customer carries a UserID; a walk-in does not.
type Customer struct {
	UserID   *uint  `json:"user_id,omitempty"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func (c Customer) Registered() bool { return c.UserID != nil }

type ReservationStatus string

const (
	RESERVATION_ACTIVE            ReservationStatus = "active"
	RESERVATION_CONVERTED         ReservationStatus = "converted"
	RESERVATION_EXPIRED           ReservationStatus = "expired"
	RESERVATION_CONVERSION_FAILED ReservationStatus = "conversion_failed"
)

type PaymentStatus string

const (
	PAYMENT_PENDING PaymentStatus = "pending"
	PAYMENT_PAID    PaymentStatus = "paid"
	PAYMENT_FAILED  PaymentStatus = "failed"
)

type BookingStatus string

const (
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELED  BookingStatus = "cancelled"
)

type BookingType string

const (
	BOOKING_ONLINE BookingType = "online"
	BOOKING_WALKIN BookingType = "walk_in"
)

type TransactionStatus string

const (
	TRANSACTION_PENDING TransactionStatus = "pending"
	TRANSACTION_PAID    TransactionStatus = "paid"
	TRANSACTION_FAILED  TransactionStatus = "failed"
)

type HallStatus string

const (
	HALL_DRAFT    HallStatus = "draft"
	HALL_OPEN     HallStatus = "open"
	HALL_ARCHIVED HallStatus = "archived"
)

const (
	ROLE_CUSTOMER = "customer"
	ROLE_STAFF    = "staff"
	ROLE_OWNER    = "owner"
	ROLE_ADMIN    = "admin"
)

type ChargeMethod string

const (
	CHARGE_FLAT   ChargeMethod = "flat"
	CHARGE_HOURLY ChargeMethod = "hourly"
)

type DateRangeInput struct {
	StartTime string `json:"start_time" binding:"required,bookabledate" time_format:"2006-01-02 15:04:05 -07:00"`
	EndTime   string `json:"end_time" binding:"required" time_format:"2006-01-02 15:04:05 -07:00"`
}

type FacilitySelection struct {
	FacilityID uint `json:"facility" binding:"required"`
	Qty        uint `json:"qty,omitempty"`
}

type CreateReservationRequestBody struct {
	HallID     uint                `json:"hall" binding:"required"`
	Dates      []DateRangeInput    `json:"dates" binding:"required,min=1"`
	Facilities []FacilitySelection `json:"facilities,omitempty"`
}

type CreateWalkInReservationRequestBody struct {
	HallID        uint                `json:"hall" binding:"required"`
	Dates         []DateRangeInput    `json:"dates" binding:"required,min=1"`
	Facilities    []FacilitySelection `json:"facilities,omitempty"`
	Customer      WalkInCustomer      `json:"customer" binding:"required"`
	PaymentMethod string              `json:"payment_method" binding:"required"`
}

type ConvertReservationRequestBody struct {
	PaymentMethod string `json:"payment_method,omitempty"`
}

type ReservationQueryFilters struct {
	Status        string `form:"status,omitempty"`
	PaymentStatus string `form:"payment_status,omitempty"`
	Page          int    `form:"page,omitempty"`
	Limit         int    `form:"limit,omitempty"`
}

type CreateHallRequestBody struct {
	Name           string   `json:"name" binding:"required"`
	About          string   `json:"about,omitempty"`
	Location       string   `json:"location,omitempty"`
	HourlyRate     *float64 `json:"hourly_rate,omitempty"`
	DailyRate      *float64 `json:"daily_rate,omitempty"`
	DepositPercent float64  `json:"deposit_percent,omitempty"`
	BufferHours    uint     `json:"buffer_hours,omitempty"`
	ContactEmail   string   `json:"email,omitempty"`
}

type CreateFacilityRequestBody struct {
	Name         string  `json:"name" binding:"required"`
	Cost         float64 `json:"cost" binding:"required"`
	ChargeMethod string  `json:"charge_method,omitempty"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CodeRequestParams struct {
	Code string `uri:"code" binding:"required"`
}

type VerifyPaymentQuery struct {
	Reference string `form:"reference" binding:"required"`
}

type Claims struct {
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}
