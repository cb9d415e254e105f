package common

import (
	"fmt"
	"log"
	"time"

	"hallbook/src/db"
	"hallbook/src/models"
	"hallbook/src/types"

	"gorm.io/gorm"
)

const (
	// Reminders go out roughly a day before the cutoff. The sweep runs
	// hourly, so the window is one hour wide to avoid double sends.
	reminderLeadHours   = 72
	reminderWindowHours = 1
)

// InReminderWindow reports whether a reservation with the given cutoff is
// due a reminder on this sweep pass: the cutoff falls within the one-hour
// slice that sits reminderLeadHours ahead of now.
func InReminderWindow(cutoff, now time.Time) bool {
	windowStart := now.Add((reminderLeadHours - reminderWindowHours) * time.Hour)
	windowEnd := now.Add(reminderLeadHours * time.Hour)
	return !cutoff.Before(windowStart) && cutoff.Before(windowEnd)
}

// RunReservationSweep is the hourly background job: it expires stale
// reservations and sends cutoff reminders. Each pass is independent; a
// failure in one does not stop the other.
func RunReservationSweep() {
	now := time.Now()
	if err := ExpireStaleReservations(now); err != nil {
		log.Printf("Error expiring stale reservations: %s\n", err.Error())
	}
	if err := SendCutoffReminders(now); err != nil {
		log.Printf("Error sending cutoff reminders: %s\n", err.Error())
	}
}

// ExpireStaleReservations flips every ACTIVE reservation whose cutoff has
// passed to EXPIRED. Rows are processed one by one so a bad row does not
// poison the batch, and each flip is guarded against a concurrent convert.
func ExpireStaleReservations(now time.Time) error {
	gdb := db.GetDb()
	var stale []models.Reservation
	if err := gdb.
		Model(&models.Reservation{}).
		Where("status = ? AND cutoff_date < ?", types.RESERVATION_ACTIVE, now).
		Preload("User").
		Find(&stale).
		Error; err != nil {
		return err
	}
	for i := range stale {
		reservation := &stale[i]
		res := gdb.
			Model(&models.Reservation{}).
			Where("id = ? AND status = ?", reservation.ID, types.RESERVATION_ACTIVE).
			Update("status", types.RESERVATION_EXPIRED)
		if res.Error != nil {
			log.Printf("Error expiring reservation [%s]: %s\n", reservation.Code, res.Error.Error())
			continue
		}
		if res.RowsAffected == 0 {
			// Converted or expired since we loaded it.
			continue
		}
		log.Printf("Reservation [%s] expired\n", reservation.Code)
		customer := reservation.Customer()
		go Notify(customer, "Reservation expired",
			fmt.Sprintf("Your reservation %s has expired because the balance was not settled before %s. The held slots have been released.",
				reservation.Code, reservation.CutoffDate.Format("2006-01-02 15:04")), nil)
	}
	return nil
}

// SendCutoffReminders notifies holders of ACTIVE, deposit-paid reservations
// whose cutoff enters the reminder window. The reminders_sent guard in the
// update makes a concurrent sweep pass a no-op.
func SendCutoffReminders(now time.Time) error {
	gdb := db.GetDb()
	windowStart := now.Add((reminderLeadHours - reminderWindowHours) * time.Hour)
	windowEnd := now.Add(reminderLeadHours * time.Hour)
	var due []models.Reservation
	if err := gdb.
		Model(&models.Reservation{}).
		Where("status = ? AND payment_status = ?", types.RESERVATION_ACTIVE, types.PAYMENT_PAID).
		Where("cutoff_date >= ? AND cutoff_date < ?", windowStart, windowEnd).
		Where("reminders_sent IS NULL OR reminders_sent = '[]'").
		Preload("User").
		Find(&due).
		Error; err != nil {
		return err
	}
	for i := range due {
		reservation := &due[i]
		err := gdb.Transaction(func(tx *gorm.DB) error {
			res := tx.
				Model(&models.Reservation{}).
				Where("id = ?", reservation.ID).
				Where("reminders_sent IS NULL OR reminders_sent = '[]'").
				Update("reminders_sent", types.TimeList{now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
			customer := reservation.Customer()
			go Notify(customer, "Balance payment reminder",
				fmt.Sprintf("The balance of %.2f for reservation %s is due before %s. Pay it in time to keep your slots.",
					reservation.RemainingBalance(), reservation.Code, reservation.CutoffDate.Format("2006-01-02 15:04")), nil)
			return nil
		})
		if err != nil {
			log.Printf("Error reminding reservation [%s]: %s\n", reservation.Code, err.Error())
		}
	}
	return nil
}
