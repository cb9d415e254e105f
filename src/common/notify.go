package common

import (
	"log"
	"os"

	"hallbook/src/db"
	"hallbook/src/lib"
	"hallbook/src/models"
	"hallbook/src/types"
)

// Notify delivers a message to one customer, best effort. Errors are logged
// and swallowed; a notification must never fail the state transition that
// triggered it. Each attempt is recorded for auditability.
func Notify(recipient types.Customer, subject, message string, link *string) {
	status := "sent"
	if recipient.Email != "" {
		body := message
		if link != nil {
			body = message + "\n\n" + *link
		}
		err := lib.SendMail(&lib.SendMailInput{
			From:     os.Getenv("MAIL_FROM"),
			FromName: os.Getenv("MAIL_FROM_NAME"),
			To:       []string{recipient.Email},
			Subject:  subject,
			Body:     body,
		})
		if err != nil {
			log.Printf("Error sending notification to %s: %s\n", recipient.Email, err.Error())
			status = "failed"
		}
	}
	db := db.GetDb()
	n := models.Notification{
		RecipientID: recipient.UserID,
		Email:       recipient.Email,
		Subject:     subject,
		Message:     message,
		Link:        link,
		Status:      status,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("Error recording notification: %s\n", err.Error())
	}
}

// NotifyHallOwner resolves the hall owner and notifies them.
func NotifyHallOwner(hallId uint, subject, message string, link *string) {
	db := db.GetDb()
	var hall models.Hall
	if err := db.
		Model(&models.Hall{}).
		Where(&models.Hall{ID: hallId}).
		Preload("Owner").
		First(&hall).
		Error; err != nil {
		log.Printf("Could not resolve owner for hall [%d]: %s\n", hallId, err.Error())
		return
	}
	ownerId := hall.Owner.ID
	Notify(types.Customer{
		UserID:   &ownerId,
		FullName: hall.Owner.Name,
		Email:    hall.Owner.Email,
	}, subject, message, link)
}

// NotifyAdmins fans the message out to every platform admin.
func NotifyAdmins(subject, message string, link *string) {
	db := db.GetDb()
	var admins []models.User
	if err := db.
		Model(&models.User{}).
		Where(&models.User{Role: types.ROLE_ADMIN}).
		Find(&admins).
		Error; err != nil {
		log.Printf("Could not list admins: %s\n", err.Error())
		return
	}
	for _, admin := range admins {
		adminId := admin.ID
		Notify(types.Customer{
			UserID:   &adminId,
			FullName: admin.Name,
			Email:    admin.Email,
		}, subject, message, link)
	}
}
