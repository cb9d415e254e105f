package boot

import (
	"log"
	"time"

	"hallbook/src/common"
	"hallbook/src/db"
	"hallbook/src/lib"
	"hallbook/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Hall{},
		&models.Facility{},
		&models.Reservation{},
		&models.Booking{},
		&models.Transaction{},
		&models.Notification{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler registers the hourly reservation sweep and starts the
// scheduler.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	jobId, err := lib.CreateCronJob(common.RunReservationSweep, time.Hour)
	if err != nil {
		log.Printf("Error registering sweep job: %s\n", err.Error())
		return
	}
	log.Printf("Sweep job registered: %s\n", *jobId)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while shutting stopping Scheduler. Check logs for info")
		return
	}
}
