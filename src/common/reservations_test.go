package common

import (
	"testing"
	"time"

	"hallbook/src/models"
	"hallbook/src/types"

	"github.com/stretchr/testify/assert"
)

var offlineMethods = []string{"cash", "transfer", "pos"}

func activeReservation(now time.Time) *models.Reservation {
	return &models.Reservation{
		ID:             1,
		Code:           "HB-AAAA1111",
		Status:         types.RESERVATION_ACTIVE,
		PaymentStatus:  types.PAYMENT_PAID,
		TotalPrice:     15000,
		ReservationFee: 3000,
		CutoffDate:     now.Add(96 * time.Hour),
	}
}

func TestPlanConversionGateway(t *testing.T) {
	now := time.Now()
	res := activeReservation(now)

	plan, err := PlanConversion(res, now, types.ROLE_CUSTOMER, "", offlineMethods)
	assert.Nil(t, err)
	assert.Equal(t, CONVERSION_GATEWAY, plan.Action)
	assert.Equal(t, 12000.0, plan.Balance)
}

func TestPlanConversionZeroBalanceFinalizes(t *testing.T) {
	now := time.Now()
	res := activeReservation(now)
	res.ReservationFee = res.TotalPrice
	res.PaymentMethod = "cash"

	plan, err := PlanConversion(res, now, types.ROLE_CUSTOMER, "", offlineMethods)
	assert.Nil(t, err)
	assert.Equal(t, CONVERSION_FINALIZE, plan.Action)
	assert.Equal(t, "cash", plan.PaymentMethod)
	assert.Equal(t, 0.0, plan.Balance)
}

func TestPlanConversionPastCutoffExpires(t *testing.T) {
	now := time.Now()
	res := activeReservation(now)
	res.CutoffDate = now.Add(-time.Minute)

	plan, err := PlanConversion(res, now, types.ROLE_CUSTOMER, "", offlineMethods)
	assert.Nil(t, err)
	assert.Equal(t, CONVERSION_EXPIRE, plan.Action)
}

func TestPlanConversionDepositUnpaid(t *testing.T) {
	now := time.Now()
	res := activeReservation(now)
	res.PaymentStatus = types.PAYMENT_PENDING

	_, err := PlanConversion(res, now, types.ROLE_CUSTOMER, "", offlineMethods)
	assert.ErrorIs(t, err, ErrDepositUnpaid)
}

func TestPlanConversionTerminalStatesAreImmutable(t *testing.T) {
	now := time.Now()

	res := activeReservation(now)
	res.Status = types.RESERVATION_CONVERTED
	_, err := PlanConversion(res, now, types.ROLE_CUSTOMER, "", offlineMethods)
	assert.ErrorIs(t, err, ErrAlreadyConverted)

	for _, status := range []types.ReservationStatus{
		types.RESERVATION_EXPIRED,
		types.RESERVATION_CONVERSION_FAILED,
	} {
		res := activeReservation(now)
		res.Status = status
		_, err := PlanConversion(res, now, types.ROLE_CUSTOMER, "", offlineMethods)
		assert.ErrorIs(t, err, ErrReservationNotActive)
	}
}

func TestPlanConversionOfflineMethods(t *testing.T) {
	now := time.Now()

	// Staff can record an offline settlement of the balance.
	res := activeReservation(now)
	plan, err := PlanConversion(res, now, types.ROLE_STAFF, "cash", offlineMethods)
	assert.Nil(t, err)
	assert.Equal(t, CONVERSION_FINALIZE, plan.Action)
	assert.Equal(t, "cash", plan.PaymentMethod)
	assert.Equal(t, 12000.0, plan.Balance)

	// Customers cannot.
	plan, err = PlanConversion(res, now, types.ROLE_CUSTOMER, "cash", offlineMethods)
	assert.Nil(t, err)
	assert.Equal(t, CONVERSION_GATEWAY, plan.Action)

	// Unknown methods are rejected outright.
	_, err = PlanConversion(res, now, types.ROLE_STAFF, "barter", offlineMethods)
	assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)
}

func TestComputeCutoffDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Plenty of lead time: cutoff sits 96h before the start.
	start := now.Add(30 * 24 * time.Hour)
	cutoff := ComputeCutoffDate(start, now, 96)
	assert.Equal(t, start.Add(-96*time.Hour), cutoff)

	// Short notice: cutoff is halfway between now and the start.
	start = now.Add(48 * time.Hour)
	cutoff = ComputeCutoffDate(start, now, 96)
	assert.Equal(t, now.Add(24*time.Hour), cutoff)

	// The cutoff always lands strictly before the start.
	for _, lead := range []time.Duration{time.Hour, 12 * time.Hour, 95 * time.Hour, 200 * time.Hour} {
		start := now.Add(lead)
		cutoff := ComputeCutoffDate(start, now, 96)
		assert.True(t, cutoff.Before(start), "lead %s", lead)
		assert.True(t, cutoff.After(now), "lead %s", lead)
	}
}

func TestRemainingBalance(t *testing.T) {
	res := &models.Reservation{TotalPrice: 15000, ReservationFee: 3000}
	assert.Equal(t, 12000.0, res.RemainingBalance())
}
