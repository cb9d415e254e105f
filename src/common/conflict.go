package common

import (
	"fmt"
	"time"

	"hallbook/src/models"
	"hallbook/src/types"

	"gorm.io/gorm"
)

// RangeValidationError names the offending range when a requested slot is
// malformed.
type RangeValidationError struct {
	Index  int
	Reason string
}

func (e *RangeValidationError) Error() string {
	return fmt.Sprintf("invalid date range at position %d: %s", e.Index, e.Reason)
}

// ConflictError reports a slot collision, identifying whether the blocking
// record is a booking or a reservation so clients can offer a different UX
// than for plain validation failures.
type ConflictError struct {
	Kind      string // "booking" or "reservation"
	Requested types.DateRange
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested slot %s - %s conflicts with an existing %s",
		e.Requested.StartTime.Format(time.RFC3339), e.Requested.EndTime.Format(time.RFC3339), e.Kind)
}

// ValidateDateRanges checks every range for start<end and start not in the
// past relative to now.
func ValidateDateRanges(ranges []types.DateRange, now time.Time) error {
	if len(ranges) == 0 {
		return &RangeValidationError{Index: 0, Reason: "at least one date range is required"}
	}
	for i, r := range ranges {
		if !r.StartTime.Before(r.EndTime) {
			return &RangeValidationError{Index: i, Reason: "start_time must be before end_time"}
		}
		if r.StartTime.Before(now) {
			return &RangeValidationError{Index: i, Reason: "start_time must not be in the past"}
		}
	}
	return nil
}

// RangesConflict reports whether the requested range intersects the stored
// range once the hall buffer is padded around the stored one. A booking
// 14:00-16:00 with a 2h buffer blocks 12:00-18:00.
func RangesConflict(requested, stored types.DateRange, bufferHours uint) bool {
	buffer := time.Duration(bufferHours) * time.Hour
	blockStart := stored.StartTime.Add(-buffer)
	blockEnd := stored.EndTime.Add(buffer)
	return requested.StartTime.Before(blockEnd) && blockStart.Before(requested.EndTime)
}

// rangesBlock checks a requested range against every stored range of a set
// of records.
func rangesBlock(requested types.DateRange, stored []types.DateRanges, bufferHours uint) bool {
	for _, ranges := range stored {
		for _, r := range ranges {
			if RangesConflict(requested, r, bufferHours) {
				return true
			}
		}
	}
	return false
}

// CheckHallAvailability fails with a ConflictError when any requested range
// overlaps a confirmed or payment-pending booking, or an active paid
// reservation, on the given hall. Candidate rows are loaded and compared in
// process; callers serialize check-then-insert through the per-hall
// advisory lock.
func CheckHallAvailability(tx *gorm.DB, hallId uint, ranges []types.DateRange, bufferHours uint) error {
	var bookings []models.Booking
	if err := tx.
		Model(&models.Booking{}).
		Select("id", "booking_dates").
		Where("hall_id = ?", hallId).
		Where("status = ? OR payment_status = ?", types.BOOKING_CONFIRMED, types.PAYMENT_PENDING).
		Find(&bookings).
		Error; err != nil {
		return err
	}
	var reservations []models.Reservation
	if err := tx.
		Model(&models.Reservation{}).
		Select("id", "booking_dates").
		Where("hall_id = ?", hallId).
		Where("status = ? AND payment_status = ?", types.RESERVATION_ACTIVE, types.PAYMENT_PAID).
		Find(&reservations).
		Error; err != nil {
		return err
	}

	bookedRanges := make([]types.DateRanges, 0, len(bookings))
	for _, b := range bookings {
		bookedRanges = append(bookedRanges, b.BookingDates)
	}
	reservedRanges := make([]types.DateRanges, 0, len(reservations))
	for _, r := range reservations {
		reservedRanges = append(reservedRanges, r.BookingDates)
	}

	for _, requested := range ranges {
		if rangesBlock(requested, bookedRanges, bufferHours) {
			return &ConflictError{Kind: "booking", Requested: requested}
		}
		if rangesBlock(requested, reservedRanges, bufferHours) {
			return &ConflictError{Kind: "reservation", Requested: requested}
		}
	}
	return nil
}
