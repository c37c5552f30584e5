package helper

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

// StartScreeningScheduler marks elapsed screenings every 5 minutes. The
// status flag is bookkeeping for listings; booking always checks end_time.
func StartScreeningScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc("*/5 * * * *", markEndedScreenings)
	if err != nil {
		log.Printf("screening scheduler init: %v", err)
		return
	}

	scheduler.Start()
	log.Println("screening scheduler started (every 5 minutes)")
}

func markEndedScreenings() {
	now := time.Now()
	result := database.DB.Model(&model.Screening{}).
		Where("status = ? AND end_time < ?", model.ScreeningAvailable, now).
		Update("status", model.ScreeningEnded)

	if result.Error != nil {
		log.Printf("marking ended screenings: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("marked %d screenings as ended", result.RowsAffected)
	}
}

func StopScreeningScheduler() {
	if scheduler != nil {
		scheduler.Stop()
		log.Println("screening scheduler stopped")
	}
}
