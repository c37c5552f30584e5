package helper

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var reportScheduler gocron.Scheduler

// DailySalesReport logs yesterday's booked quantity and revenue at the
// current screening prices.
func DailySalesReport() {
	db := database.DB
	today := time.Now().Truncate(24 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)

	var quantity uint
	if err := db.Model(&model.Order{}).
		Where("orders.created_at >= ? AND orders.created_at < ?", yesterday, today).
		Select("COALESCE(SUM(orders.quantity), 0)").
		Scan(&quantity).Error; err != nil {
		log.Printf("daily sales report: %v", err)
		return
	}

	var revenue uint
	if err := db.Model(&model.Order{}).
		Joins("JOIN screenings ON screenings.id = orders.screening_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", yesterday, today).
		Select("COALESCE(SUM(orders.quantity * screenings.price), 0)").
		Scan(&revenue).Error; err != nil {
		log.Printf("daily sales report: %v", err)
		return
	}

	log.Printf("sales %s: %d tickets, %d revenue", yesterday.Format("2006-01-02"), quantity, revenue)
}

func StartReportScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	reportScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(DailySalesReport),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("report scheduler started (00:05)")
}

func StopReportScheduler() {
	if reportScheduler != nil {
		_ = reportScheduler.Shutdown()
	}
}
