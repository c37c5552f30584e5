package service

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database limited to a single
// connection so that concurrent transactions serialize the way a real
// server's row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.Migrate(db)
	return db
}

func seedVenue(t *testing.T, db *gorm.DB, name string, capacity uint) *model.Venue {
	t.Helper()
	venue, err := CreateVenue(db, model.CreateVenueInput{Name: name, Capacity: capacity})
	require.NoError(t, err)
	return venue
}

// seedFilm creates a film whose run starts today and lasts the given number
// of days.
func seedFilm(t *testing.T, db *gorm.DB, name string, days int) *model.Film {
	t.Helper()
	begin := time.Now().Truncate(24 * time.Hour)
	film, err := CreateFilm(db, name, begin, begin.AddDate(0, 0, days))
	require.NoError(t, err)
	return film
}

func seedAccount(t *testing.T, db *gorm.DB, username string) *model.Account {
	t.Helper()
	account := model.Account{Username: username, Password: "x"}
	require.NoError(t, db.Create(&account).Error)
	return &account
}

// screeningAt schedules a screening offset hours from now, lasting two
// hours.
func screeningAt(venueID, filmID uint, offsetHours int, price uint) model.CreateScreeningInput {
	start := time.Now().Add(time.Duration(offsetHours) * time.Hour)
	return model.CreateScreeningInput{
		VenueId:   venueID,
		FilmId:    filmID,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Price:     price,
	}
}
