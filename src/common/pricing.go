package common

import (
	"errors"
	"fmt"
	"math"

	"hallbook/src/models"
	"hallbook/src/types"
	"hallbook/src/utils"
)

var (
	ErrDurationTooShort = errors.New("booking duration must be at least 30 minutes")
	ErrDurationTooLong  = errors.New("booking duration must not exceed 7 days")
	ErrNoRates          = errors.New("hall has no pricing configured")
	ErrDailyRateOnly    = errors.New("hall only accepts bookings of 24 hours or longer")
)

type FacilityNotFoundError struct {
	FacilityID uint
}

func (e *FacilityNotFoundError) Error() string {
	return fmt.Sprintf("facility [%d] not found for this hall", e.FacilityID)
}

// Quote is the price snapshot persisted on a reservation at creation time.
type Quote struct {
	TotalPrice      float64               `json:"total_price"`
	HallPrice       float64               `json:"hall_price"`
	FacilitiesPrice float64               `json:"facilities_price"`
	ReservationFee  float64               `json:"reservation_fee"`
	Facilities      types.FacilityCharges `json:"facilities"`
}

// rangePrice prices a single date range against the hall rates. Durations
// under 24h use the hourly rate when available; 24h and over are billed in
// whole days.
func rangePrice(hall *models.Hall, r types.DateRange) (float64, error) {
	hours := r.Hours()
	if hours < 0.5 {
		return 0, ErrDurationTooShort
	}
	if hours > 7*24 {
		return 0, ErrDurationTooLong
	}
	hasHourly := hall.HourlyRate != nil
	hasDaily := hall.DailyRate != nil
	switch {
	case hasHourly && hasDaily:
		if hours < 24 {
			return *hall.HourlyRate * hours, nil
		}
		return math.Ceil(hours/24) * *hall.DailyRate, nil
	case hasHourly:
		return *hall.HourlyRate * hours, nil
	case hasDaily:
		if hours < 24 {
			return 0, ErrDailyRateOnly
		}
		return math.Ceil(hours/24) * *hall.DailyRate, nil
	default:
		return 0, ErrNoRates
	}
}

// facilityCharge prices one selected facility over the total booked hours.
func facilityCharge(f *models.Facility, qty uint, hours float64) types.FacilityCharge {
	if qty == 0 {
		qty = 1
	}
	cost := f.Cost * float64(qty)
	if f.ChargeMethod == types.CHARGE_HOURLY {
		cost = f.Cost * hours * float64(qty)
	}
	return types.FacilityCharge{
		FacilityID:   f.ID,
		Name:         f.Name,
		Qty:          qty,
		ChargeMethod: string(f.ChargeMethod),
		UnitCost:     f.Cost,
		Cost:         utils.Round2(cost),
	}
}

// ComputeQuote derives the full price snapshot for the requested ranges and
// facility selections. The reservation fee is the hall's configured deposit
// percentage of the total, rounded to 2 decimal places.
func ComputeQuote(hall *models.Hall, catalog []models.Facility, selections []types.FacilitySelection, ranges []types.DateRange) (*Quote, error) {
	var hallPrice float64
	var totalHours float64
	for _, r := range ranges {
		price, err := rangePrice(hall, r)
		if err != nil {
			return nil, err
		}
		hallPrice += price
		totalHours += r.Hours()
	}

	byId := make(map[uint]*models.Facility, len(catalog))
	for i := range catalog {
		byId[catalog[i].ID] = &catalog[i]
	}

	var facilitiesPrice float64
	charges := make(types.FacilityCharges, 0, len(selections))
	for _, sel := range selections {
		f, ok := byId[sel.FacilityID]
		if !ok {
			return nil, &FacilityNotFoundError{FacilityID: sel.FacilityID}
		}
		charge := facilityCharge(f, sel.Qty, totalHours)
		charges = append(charges, charge)
		facilitiesPrice += charge.Cost
	}

	hallPrice = utils.Round2(hallPrice)
	facilitiesPrice = utils.Round2(facilitiesPrice)
	total := utils.Round2(hallPrice + facilitiesPrice)
	fee := utils.Round2(total * hall.DepositPercent / 100)
	return &Quote{
		TotalPrice:      total,
		HallPrice:       hallPrice,
		FacilitiesPrice: facilitiesPrice,
		ReservationFee:  fee,
		Facilities:      charges,
	}, nil
}
