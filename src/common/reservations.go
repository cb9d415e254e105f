package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hallbook/src/config"
	"hallbook/src/db"
	"hallbook/src/lib"
	"hallbook/src/models"
	"hallbook/src/types"
	"hallbook/src/utils"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrReservationNotFound      = errors.New("reservation not found")
	ErrReservationNotActive     = errors.New("reservation is no longer active")
	ErrAlreadyConverted         = errors.New("reservation has already been converted")
	ErrDepositUnpaid            = errors.New("reservation deposit has not been paid")
	ErrReservationExpired       = errors.New("reservation payment window has expired")
	ErrDepositPaymentFailed     = errors.New("deposit payment was not completed")
	ErrConversionPaymentFailed  = errors.New("balance payment was not completed")
	ErrPaymentPending           = errors.New("payment has not completed yet")
	ErrWalkInIdentity           = errors.New("walk-in reservations require the customer's full name and phone")
	ErrNotAllowed               = errors.New("not enough permissions to perform this action")
	ErrCodeAllocation           = errors.New("could not allocate a unique reservation code")
	ErrHallNotFound             = errors.New("hall not found")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
)

// hallSlotsLockClass namespaces the per-hall advisory lock that serializes
// conflict-check-then-insert for a hall.
const hallSlotsLockClass int32 = 7201

const (
	maxCodeAttempts  = 5
	codeRetryBackoff = 50 * time.Millisecond
)

// paymentLinkResendDelay is how long after creation an unpaid deposit gets
// its payment link re-sent.
const paymentLinkResendDelay = 24 * time.Hour

// DefaultCutoffHours is how long before the earliest booked range the
// remaining balance falls due, unless overridden by settings.
const DefaultCutoffHours = 96.0

func elevatedRole(role string) bool {
	switch role {
	case types.ROLE_STAFF, types.ROLE_OWNER, types.ROLE_ADMIN:
		return true
	}
	return false
}

// ComputeCutoffDate derives the payment deadline. The cutoff sits
// cutoffHours before the earliest booked range; for short-notice
// reservations where that point is already past, the deadline is halfway
// between now and the start, which keeps it strictly before the start.
func ComputeCutoffDate(earliestStart, now time.Time, cutoffHours float64) time.Time {
	cutoff := earliestStart.Add(-time.Duration(cutoffHours * float64(time.Hour)))
	if !cutoff.After(now) {
		cutoff = now.Add(earliestStart.Sub(now) / 2)
	}
	return cutoff
}

type CreateReservationInput struct {
	HallID        uint
	Dates         []types.DateRange
	Facilities    []types.FacilitySelection
	Customer      types.Customer
	ReservedByID  uint
	ActorRole     string
	PaymentMethod string // walk-in path only; empty means online
}

type CreateReservationResult struct {
	Reservation *models.Reservation `json:"reservation"`
	DepositDue  float64             `json:"deposit_due"`
	PaymentURL  string              `json:"payment_url,omitempty"`
}

// CreateReservation runs the conflict check and pricing and persists a new
// ACTIVE reservation. The whole check-then-insert runs under a per-hall
// advisory lock so concurrent requests for overlapping slots cannot both
// pass the check. Notifications are dispatched best-effort after commit.
func CreateReservation(in *CreateReservationInput) (*CreateReservationResult, error) {
	now := time.Now()
	walkIn := !in.Customer.Registered()
	if walkIn {
		if !elevatedRole(in.ActorRole) {
			return nil, ErrNotAllowed
		}
		if in.Customer.FullName == "" || in.Customer.Phone == "" {
			return nil, ErrWalkInIdentity
		}
	}
	if err := ValidateDateRanges(in.Dates, now); err != nil {
		return nil, err
	}

	offlineSettlement := false
	if walkIn && in.PaymentMethod != "" && in.PaymentMethod != string(types.BOOKING_ONLINE) {
		offlineMethods := models.GetSettingList("payments.offline_methods", []string{"cash", "transfer", "pos"})
		if !contains(offlineMethods, in.PaymentMethod) {
			return nil, ErrUnsupportedPaymentMethod
		}
		offlineSettlement = true
	}

	gdb := db.GetDb()
	var reservation models.Reservation
	var err error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		reservation = models.Reservation{}
		err = gdb.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", hallSlotsLockClass, int32(in.HallID)).Error; err != nil {
				return err
			}
			var hall models.Hall
			if err := tx.
				Model(&models.Hall{}).
				Where(&models.Hall{ID: in.HallID, Status: types.HALL_OPEN}).
				Preload("Facilities").
				First(&hall).
				Error; err != nil {
				return ErrHallNotFound
			}
			if err := CheckHallAvailability(tx, in.HallID, in.Dates, hall.BufferHours); err != nil {
				return err
			}
			quote, err := ComputeQuote(&hall, hall.Facilities, in.Facilities, in.Dates)
			if err != nil {
				return err
			}

			cutoffHours := models.GetSettingFloat("reservation.cutoff_hours", DefaultCutoffHours)
			dates := types.DateRanges(in.Dates)
			reservation = models.Reservation{
				Code:            utils.GenerateReservationCode("HB"),
				HallID:          in.HallID,
				UserID:          in.Customer.UserID,
				ReservedByID:    in.ReservedByID,
				BookingDates:    dates,
				TotalPrice:      quote.TotalPrice,
				HallPrice:       quote.HallPrice,
				FacilitiesPrice: quote.FacilitiesPrice,
				ReservationFee:  quote.ReservationFee,
				Facilities:      quote.Facilities,
				Status:          types.RESERVATION_ACTIVE,
				PaymentStatus:   types.PAYMENT_PENDING,
				CutoffDate:      ComputeCutoffDate(dates.EarliestStart(), now, cutoffHours),
				RemindersSent:   types.TimeList{},
			}
			if walkIn {
				customer := types.WalkInCustomer{
					FullName: in.Customer.FullName,
					Phone:    in.Customer.Phone,
					Email:    in.Customer.Email,
				}
				reservation.WalkIn = &customer
			}
			if offlineSettlement {
				reservation.PaymentStatus = types.PAYMENT_PAID
				reservation.PaymentMethod = in.PaymentMethod
			}
			if err := tx.Create(&reservation).Error; err != nil {
				return err
			}
			reference := utils.NewPaymentReference(utils.REF_PREFIX_RESERVATION, reservation.ID)
			if err := tx.
				Model(&models.Reservation{}).
				Where(&models.Reservation{ID: reservation.ID}).
				Update("reference", reference).
				Error; err != nil {
				return err
			}
			reservation.Reference = &reference
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("Reservation code collision on attempt %d, retrying\n", attempt+1)
			time.Sleep(codeRetryBackoff)
			continue
		}
		return nil, err
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodeAllocation
		}
		return nil, err
	}

	result := &CreateReservationResult{
		Reservation: &reservation,
		DepositDue:  reservation.ReservationFee,
	}

	if offlineSettlement {
		go notifyReservationConfirmed(reservation.ID)
		return result, nil
	}

	// A deposit is due: register the gateway transaction up front so the
	// payment link can be returned and emailed.
	paymentUrl, err := initializeGatewayPayment(&reservation, utils.REF_PREFIX_RESERVATION, *reservation.Reference, reservation.ReservationFee, in.Customer.Email, "/api/v1/payments/reservations/verify")
	if err != nil {
		// Never leave a reservation pending with no way to pay it.
		if derr := gdb.Delete(&models.Reservation{}, reservation.ID).Error; derr != nil {
			log.Printf("Error removing reservation [%d] after gateway failure: %s\n", reservation.ID, derr.Error())
		}
		return nil, err
	}
	result.PaymentURL = paymentUrl
	go notifyReservationPending(reservation.ID, paymentUrl)
	schedulePaymentLinkResend(&reservation, paymentUrl, now)
	return result, nil
}

// schedulePaymentLinkResend registers a one-shot job that re-sends the
// deposit payment link if the reservation is still unpaid by then. Skipped
// when the cutoff lands before the resend would fire.
func schedulePaymentLinkResend(reservation *models.Reservation, paymentUrl string, now time.Time) {
	resendAt := now.Add(paymentLinkResendDelay)
	if !reservation.CutoffDate.After(resendAt) {
		return
	}
	_, err := lib.CreateOneTimeCronJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(resendAt)),
		gocron.NewTask(ResendPaymentLink, reservation.ID, paymentUrl),
	)
	if err != nil {
		log.Printf("Error scheduling payment link resend for reservation [%s]: %s\n", reservation.Code, err.Error())
	}
}

// ResendPaymentLink re-sends the deposit payment link to the customer when
// the reservation is still awaiting its deposit.
func ResendPaymentLink(reservationId uint, paymentUrl string) {
	reservation := loadReservationForNotify(reservationId)
	if reservation == nil {
		return
	}
	if reservation.Status != types.RESERVATION_ACTIVE || reservation.PaymentStatus != types.PAYMENT_PENDING {
		return
	}
	Notify(reservation.Customer(), "Reservation deposit reminder",
		fmt.Sprintf("Your reservation %s is still awaiting its %.2f deposit. Pay it before %s to keep the held slots.",
			reservation.Code, reservation.ReservationFee, reservation.CutoffDate.Format(config.TIME_PARSE_FORMAT)), &paymentUrl)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// initializeGatewayPayment records the transaction audit row and opens the
// gateway payment session for the given reference.
func initializeGatewayPayment(reservation *models.Reservation, purpose, reference string, amount float64, customerEmail, verifyPath string) (string, error) {
	gdb := db.GetDb()
	reservationId := reservation.ID
	txn := models.Transaction{
		Reference:     reference,
		Purpose:       purpose,
		ReservationID: &reservationId,
		Amount:        amount,
		Currency:      "usd",
		Status:        types.TRANSACTION_PENDING,
	}
	if err := gdb.Create(&txn).Error; err != nil {
		return "", err
	}
	gateway := lib.GetPaymentGateway()
	init, err := gateway.InitializeTransaction(context.Background(), &lib.InitializeTransactionInput{
		Amount:        amount,
		Currency:      "usd",
		Reference:     reference,
		Description:   fmt.Sprintf("Reservation %s", reservation.Code),
		CustomerEmail: customerEmail,
		RedirectURL:   config.APIHost() + verifyPath,
	})
	if err != nil {
		if uerr := gdb.
			Model(&models.Transaction{}).
			Where("reference = ?", reference).
			Update("status", types.TRANSACTION_FAILED).
			Error; uerr != nil {
			log.Printf("Error marking transaction [%s] failed: %s\n", reference, uerr.Error())
		}
		return "", err
	}
	return init.PaymentURL, nil
}

func updateTransactionOutcome(tx *gorm.DB, reference string, status types.TransactionStatus, gatewayTxnId string) {
	updates := models.Transaction{Status: status}
	if gatewayTxnId != "" {
		updates.GatewayTxnID = &gatewayTxnId
	}
	if err := tx.
		Model(&models.Transaction{}).
		Where("reference = ?", reference).
		Updates(&updates).
		Error; err != nil {
		log.Printf("Error updating transaction [%s]: %s\n", reference, err.Error())
	}
}

// ApplyDepositPayment applies a verified deposit outcome to the originating
// reservation, exactly once. A duplicate delivery of an already-applied
// success is a no-op; a failed deposit deletes the reservation outright
// since the slot was never really held.
func ApplyDepositPayment(reference string, result *lib.VerifyTransactionResult) (*models.Reservation, error) {
	prefix, reservationId, err := utils.ParsePaymentReference(reference)
	if err != nil {
		return nil, err
	}
	if prefix != utils.REF_PREFIX_RESERVATION {
		return nil, fmt.Errorf("reference [%s] is not a reservation deposit", reference)
	}

	gdb := db.GetDb()
	var reservation models.Reservation
	applied := false
	deleted := false
	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Reservation{ID: reservationId}).
			Where("reference = ?", reference).
			First(&reservation).
			Error; err != nil {
			return ErrReservationNotFound
		}
		if reservation.PaymentStatus == types.PAYMENT_PAID {
			return nil
		}
		switch result.PaymentStatus {
		case types.PAYMENT_PAID:
			if err := tx.
				Model(&models.Reservation{}).
				Where(&models.Reservation{ID: reservation.ID}).
				Updates(map[string]any{
					"payment_status": types.PAYMENT_PAID,
					"payment_method": string(types.BOOKING_ONLINE),
					"gateway_txn_id": result.GatewayTxnID,
				}).
				Error; err != nil {
				return err
			}
			updateTransactionOutcome(tx, reference, types.TRANSACTION_PAID, result.GatewayTxnID)
			reservation.PaymentStatus = types.PAYMENT_PAID
			applied = true
			return nil
		case types.PAYMENT_FAILED:
			if err := tx.Delete(&models.Reservation{}, reservation.ID).Error; err != nil {
				return err
			}
			updateTransactionOutcome(tx, reference, types.TRANSACTION_FAILED, result.GatewayTxnID)
			deleted = true
			return nil
		default:
			return ErrPaymentPending
		}
	})
	if err != nil {
		return nil, err
	}
	if deleted {
		return nil, ErrDepositPaymentFailed
	}
	if applied {
		go notifyReservationConfirmed(reservation.ID)
	}
	return &reservation, nil
}

type ConversionAction string

const (
	CONVERSION_EXPIRE   ConversionAction = "expire"
	CONVERSION_FINALIZE ConversionAction = "finalize"
	CONVERSION_GATEWAY  ConversionAction = "gateway"
)

type ConversionPlan struct {
	Action        ConversionAction
	PaymentMethod string
	Balance       float64
}

// PlanConversion decides, without side effects, what converting the given
// reservation entails right now: expire it, finalize it immediately (zero
// balance or staff-recorded offline settlement), or collect the balance
// through the gateway.
func PlanConversion(reservation *models.Reservation, now time.Time, actorRole, method string, offlineMethods []string) (*ConversionPlan, error) {
	switch reservation.Status {
	case types.RESERVATION_ACTIVE:
	case types.RESERVATION_CONVERTED:
		return nil, ErrAlreadyConverted
	default:
		return nil, ErrReservationNotActive
	}
	if now.After(reservation.CutoffDate) {
		return &ConversionPlan{Action: CONVERSION_EXPIRE}, nil
	}
	if reservation.PaymentStatus != types.PAYMENT_PAID {
		return nil, ErrDepositUnpaid
	}
	balance := utils.Round2(reservation.RemainingBalance())
	if balance <= 0 {
		method := reservation.PaymentMethod
		if method == "" {
			method = string(types.BOOKING_ONLINE)
		}
		return &ConversionPlan{Action: CONVERSION_FINALIZE, PaymentMethod: method, Balance: balance}, nil
	}
	if elevatedRole(actorRole) && method != "" && method != string(types.BOOKING_ONLINE) {
		if !contains(offlineMethods, method) {
			return nil, ErrUnsupportedPaymentMethod
		}
		return &ConversionPlan{Action: CONVERSION_FINALIZE, PaymentMethod: method, Balance: balance}, nil
	}
	return &ConversionPlan{Action: CONVERSION_GATEWAY, PaymentMethod: string(types.BOOKING_ONLINE), Balance: balance}, nil
}

type ConversionOutcome struct {
	Booking    *models.Booking `json:"booking,omitempty"`
	PaymentURL string          `json:"payment_url,omitempty"`
	Reference  string          `json:"reference,omitempty"`
}

// ConvertReservation drives a convert request from the holder or staff.
// Depending on the plan it either finalizes on the spot, returns gateway
// redirect data, or flips the reservation to EXPIRED and rejects.
func ConvertReservation(code string, actorId uint, actorRole, method string) (*ConversionOutcome, error) {
	gdb := db.GetDb()
	var reservation models.Reservation
	if err := gdb.
		Model(&models.Reservation{}).
		Where(&models.Reservation{Code: code}).
		Preload("User").
		First(&reservation).
		Error; err != nil {
		return nil, ErrReservationNotFound
	}
	owns := (reservation.UserID != nil && *reservation.UserID == actorId) || reservation.ReservedByID == actorId
	if !owns && !elevatedRole(actorRole) {
		return nil, ErrNotAllowed
	}

	offlineMethods := models.GetSettingList("payments.offline_methods", []string{"cash", "transfer", "pos"})
	plan, err := PlanConversion(&reservation, time.Now(), actorRole, method, offlineMethods)
	if err != nil {
		return nil, err
	}

	switch plan.Action {
	case CONVERSION_EXPIRE:
		// The rejection has a side effect: the reservation is expired
		// before the error is surfaced.
		if err := gdb.
			Model(&models.Reservation{}).
			Where("id = ? AND status = ?", reservation.ID, types.RESERVATION_ACTIVE).
			Update("status", types.RESERVATION_EXPIRED).
			Error; err != nil {
			log.Printf("Error expiring reservation [%s]: %s\n", reservation.Code, err.Error())
		}
		return nil, ErrReservationExpired
	case CONVERSION_FINALIZE:
		booking, err := FinalizeConversion(reservation.ID, plan.PaymentMethod)
		if err != nil {
			return nil, err
		}
		return &ConversionOutcome{Booking: booking}, nil
	default:
		reference := utils.NewPaymentReference(utils.REF_PREFIX_CONVERSION, reservation.ID)
		paymentUrl, err := initializeGatewayPayment(&reservation, utils.REF_PREFIX_CONVERSION, reference, plan.Balance, reservation.Customer().Email, "/api/v1/payments/conversions/verify")
		if err != nil {
			return nil, err
		}
		return &ConversionOutcome{PaymentURL: paymentUrl, Reference: reference}, nil
	}
}

// FinalizeConversion creates the booking and marks the reservation
// CONVERTED in one transaction; a partial failure rolls both back. Calling
// it on an already-converted reservation returns the existing booking.
func FinalizeConversion(reservationId uint, method string) (*models.Booking, error) {
	gdb := db.GetDb()
	var booking models.Booking
	alreadyConverted := false
	var err error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		err = gdb.Transaction(func(tx *gorm.DB) error {
			var reservation models.Reservation
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(&models.Reservation{ID: reservationId}).
				First(&reservation).
				Error; err != nil {
				return ErrReservationNotFound
			}
			if reservation.Status == types.RESERVATION_CONVERTED {
				alreadyConverted = true
				return tx.
					Where(&models.Booking{ReservationID: &reservation.ID}).
					First(&booking).
					Error
			}
			if reservation.Status != types.RESERVATION_ACTIVE {
				return ErrReservationNotActive
			}
			bookingType := types.BOOKING_ONLINE
			if reservation.WalkIn != nil {
				bookingType = types.BOOKING_WALKIN
			}
			booking = models.Booking{
				Code:            utils.GenerateReservationCode("BK"),
				HallID:          reservation.HallID,
				UserID:          reservation.UserID,
				BookingDates:    reservation.BookingDates,
				TotalPrice:      reservation.TotalPrice,
				HallPrice:       reservation.HallPrice,
				FacilitiesPrice: reservation.FacilitiesPrice,
				Facilities:      reservation.Facilities,
				PaymentMethod:   method,
				PaymentStatus:   types.PAYMENT_PAID,
				Status:          types.BOOKING_CONFIRMED,
				BookingType:     bookingType,
				WalkIn:          reservation.WalkIn,
				ReservationID:   &reservation.ID,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}
			res := tx.
				Model(&models.Reservation{}).
				Where("id = ? AND status = ?", reservation.ID, types.RESERVATION_ACTIVE).
				Update("status", types.RESERVATION_CONVERTED)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				return ErrReservationNotActive
			}
			return nil
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			time.Sleep(codeRetryBackoff)
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodeAllocation
		}
		return nil, err
	}
	if !alreadyConverted {
		go notifyBookingConfirmed(&booking)
	}
	return &booking, nil
}

// ApplyConversionPayment applies a verified balance-payment outcome. A
// failed balance payment marks the reservation CONVERSION_FAILED but keeps
// the row: the deposit was captured, so an auditable record must remain.
func ApplyConversionPayment(reference string, result *lib.VerifyTransactionResult) (*models.Booking, error) {
	prefix, reservationId, err := utils.ParsePaymentReference(reference)
	if err != nil {
		return nil, err
	}
	if prefix != utils.REF_PREFIX_CONVERSION {
		return nil, fmt.Errorf("reference [%s] is not a conversion payment", reference)
	}

	gdb := db.GetDb()
	var reservation models.Reservation
	if err := gdb.
		Model(&models.Reservation{}).
		Where(&models.Reservation{ID: reservationId}).
		Preload("User").
		First(&reservation).
		Error; err != nil {
		return nil, ErrReservationNotFound
	}
	if reservation.Status == types.RESERVATION_CONVERTED {
		var booking models.Booking
		if err := gdb.
			Where(&models.Booking{ReservationID: &reservation.ID}).
			First(&booking).
			Error; err != nil {
			return nil, err
		}
		return &booking, nil
	}

	switch result.PaymentStatus {
	case types.PAYMENT_PAID:
		booking, err := FinalizeConversion(reservation.ID, string(types.BOOKING_ONLINE))
		if err != nil {
			return nil, err
		}
		updateTransactionOutcome(gdb, reference, types.TRANSACTION_PAID, result.GatewayTxnID)
		return booking, nil
	case types.PAYMENT_FAILED:
		transitioned := false
		err := gdb.Transaction(func(tx *gorm.DB) error {
			res := tx.
				Model(&models.Reservation{}).
				Where("id = ? AND status = ?", reservation.ID, types.RESERVATION_ACTIVE).
				Update("status", types.RESERVATION_CONVERSION_FAILED)
			if res.Error != nil {
				return res.Error
			}
			transitioned = res.RowsAffected == 1
			updateTransactionOutcome(tx, reference, types.TRANSACTION_FAILED, result.GatewayTxnID)
			return nil
		})
		if err != nil {
			return nil, err
		}
		if transitioned {
			customer := reservation.Customer()
			go Notify(customer, "Balance payment failed",
				fmt.Sprintf("The balance payment for reservation %s did not complete. Please contact support.", reservation.Code), nil)
		}
		return nil, ErrConversionPaymentFailed
	default:
		return nil, ErrPaymentPending
	}
}

func loadReservationForNotify(reservationId uint) *models.Reservation {
	gdb := db.GetDb()
	var reservation models.Reservation
	if err := gdb.
		Model(&models.Reservation{}).
		Where(&models.Reservation{ID: reservationId}).
		Preload("User").
		First(&reservation).
		Error; err != nil {
		log.Printf("Could not load reservation [%d] for notification: %s\n", reservationId, err.Error())
		return nil
	}
	return &reservation
}

func notifyReservationPending(reservationId uint, paymentUrl string) {
	reservation := loadReservationForNotify(reservationId)
	if reservation == nil {
		return
	}
	link := &paymentUrl
	if paymentUrl == "" {
		link = nil
	}
	Notify(reservation.Customer(), "Reservation pending payment",
		fmt.Sprintf("Your reservation %s is being held. Pay the %.2f deposit to confirm it.", reservation.Code, reservation.ReservationFee), link)
	NotifyHallOwner(reservation.HallID, "New reservation pending",
		fmt.Sprintf("Reservation %s is awaiting its deposit payment.", reservation.Code), nil)
	NotifyAdmins("New reservation pending",
		fmt.Sprintf("Reservation %s is awaiting its deposit payment.", reservation.Code), nil)
}

func notifyReservationConfirmed(reservationId uint) {
	reservation := loadReservationForNotify(reservationId)
	if reservation == nil {
		return
	}
	Notify(reservation.Customer(), "Reservation confirmed",
		fmt.Sprintf("Your deposit for reservation %s has been received. Settle the balance before %s to complete your booking.",
			reservation.Code, reservation.CutoffDate.Format(config.TIME_PARSE_FORMAT)), nil)
	NotifyHallOwner(reservation.HallID, "Reservation confirmed",
		fmt.Sprintf("The deposit for reservation %s has been received.", reservation.Code), nil)
	NotifyAdmins("Reservation confirmed",
		fmt.Sprintf("The deposit for reservation %s has been received.", reservation.Code), nil)
}

func notifyBookingConfirmed(booking *models.Booking) {
	gdb := db.GetDb()
	var full models.Booking
	if err := gdb.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: booking.ID}).
		Preload("User").
		First(&full).
		Error; err != nil {
		log.Printf("Could not load booking [%d] for notification: %s\n", booking.ID, err.Error())
		full = *booking
	}
	customer := types.Customer{}
	if full.UserID != nil {
		customer.UserID = full.UserID
		if full.User != nil {
			customer.FullName = full.User.Name
			customer.Email = full.User.Email
		}
	} else if full.WalkIn != nil {
		customer.FullName = full.WalkIn.FullName
		customer.Email = full.WalkIn.Email
	}
	Notify(customer, "Booking confirmed",
		fmt.Sprintf("Your booking %s is confirmed. See you there!", full.Code), nil)
	NotifyHallOwner(full.HallID, "Booking confirmed",
		fmt.Sprintf("Booking %s has been confirmed.", full.Code), nil)
	NotifyAdmins("Booking confirmed",
		fmt.Sprintf("Booking %s has been confirmed.", full.Code), nil)
}
