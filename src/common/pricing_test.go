package common

import (
	"testing"
	"time"

	"hallbook/src/models"
	"hallbook/src/types"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestComputeQuoteHourly(t *testing.T) {
	hall := &models.Hall{
		ID:             1,
		HourlyRate:     f64(5000),
		DailyRate:      f64(90000),
		DepositPercent: 20,
	}

	// 3 hours at 5000/h with a 20% deposit.
	quote, err := ComputeQuote(hall, nil, nil, []types.DateRange{
		mkRange(t, "2026-10-01", "14:00", "17:00"),
	})
	assert.Nil(t, err)
	assert.Equal(t, 15000.0, quote.HallPrice)
	assert.Equal(t, 15000.0, quote.TotalPrice)
	assert.Equal(t, 3000.0, quote.ReservationFee)
	assert.Empty(t, quote.Facilities)
}

func TestComputeQuoteDailyOver24Hours(t *testing.T) {
	hall := &models.Hall{
		ID:             1,
		HourlyRate:     f64(5000),
		DailyRate:      f64(90000),
		DepositPercent: 20,
	}

	// 30 hours bills as 2 whole days.
	quote, err := ComputeQuote(hall, nil, nil, []types.DateRange{
		{
			StartTime: mkRange(t, "2026-10-01", "10:00", "11:00").StartTime,
			EndTime:   mkRange(t, "2026-10-02", "16:00", "17:00").StartTime,
		},
	})
	assert.Nil(t, err)
	assert.Equal(t, 180000.0, quote.HallPrice)
	assert.Equal(t, 36000.0, quote.ReservationFee)
}

func TestComputeQuoteHourlyOnlyLongBooking(t *testing.T) {
	hall := &models.Hall{ID: 1, HourlyRate: f64(100), DepositPercent: 10}

	// Without a daily rate even long bookings bill per hour.
	quote, err := ComputeQuote(hall, nil, nil, []types.DateRange{
		{
			StartTime: mkRange(t, "2026-10-01", "10:00", "11:00").StartTime,
			EndTime:   mkRange(t, "2026-10-02", "16:00", "17:00").StartTime,
		},
	})
	assert.Nil(t, err)
	assert.Equal(t, 3000.0, quote.HallPrice)
}

func TestComputeQuoteDailyOnlyRejectsShortBooking(t *testing.T) {
	hall := &models.Hall{ID: 1, DailyRate: f64(90000), DepositPercent: 20}

	_, err := ComputeQuote(hall, nil, nil, []types.DateRange{
		mkRange(t, "2026-10-01", "14:00", "17:00"),
	})
	assert.ErrorIs(t, err, ErrDailyRateOnly)
}

func TestComputeQuoteDurationBounds(t *testing.T) {
	hall := &models.Hall{ID: 1, HourlyRate: f64(100), DepositPercent: 20}

	_, err := ComputeQuote(hall, nil, nil, []types.DateRange{
		mkRange(t, "2026-10-01", "14:00", "14:15"),
	})
	assert.ErrorIs(t, err, ErrDurationTooShort)

	start := mkRange(t, "2026-10-01", "10:00", "11:00").StartTime
	_, err = ComputeQuote(hall, nil, nil, []types.DateRange{
		{StartTime: start, EndTime: start.Add(8 * 24 * time.Hour)},
	})
	assert.ErrorIs(t, err, ErrDurationTooLong)
}

func TestComputeQuoteNoRates(t *testing.T) {
	hall := &models.Hall{ID: 1, DepositPercent: 20}

	_, err := ComputeQuote(hall, nil, nil, []types.DateRange{
		mkRange(t, "2026-10-01", "14:00", "17:00"),
	})
	assert.ErrorIs(t, err, ErrNoRates)
}

func TestComputeQuoteFacilities(t *testing.T) {
	hall := &models.Hall{ID: 1, HourlyRate: f64(1000), DepositPercent: 20}
	catalog := []models.Facility{
		{ID: 10, HallID: 1, Name: "Projector", Cost: 500, ChargeMethod: types.CHARGE_FLAT},
		{ID: 11, HallID: 1, Name: "Sound system", Cost: 200, ChargeMethod: types.CHARGE_HOURLY},
	}

	quote, err := ComputeQuote(hall, catalog, []types.FacilitySelection{
		{FacilityID: 10},
		{FacilityID: 11, Qty: 2},
	}, []types.DateRange{
		mkRange(t, "2026-10-01", "14:00", "17:00"),
	})
	assert.Nil(t, err)
	assert.Equal(t, 3000.0, quote.HallPrice)
	// Flat 500 plus hourly 200 x 3h x 2.
	assert.Equal(t, 1700.0, quote.FacilitiesPrice)
	assert.Equal(t, 4700.0, quote.TotalPrice)
	assert.Equal(t, 940.0, quote.ReservationFee)
	assert.Len(t, quote.Facilities, 2)
	assert.Equal(t, uint(1), quote.Facilities[0].Qty)
	assert.Equal(t, uint(2), quote.Facilities[1].Qty)
}

func TestComputeQuoteUnknownFacility(t *testing.T) {
	hall := &models.Hall{ID: 1, HourlyRate: f64(1000), DepositPercent: 20}

	_, err := ComputeQuote(hall, nil, []types.FacilitySelection{{FacilityID: 99}}, []types.DateRange{
		mkRange(t, "2026-10-01", "14:00", "17:00"),
	})
	var notFound *FacilityNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(99), notFound.FacilityID)
}
