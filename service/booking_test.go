package service

import (
	"cinema_booking/model"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveHappyPath(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)
	account := seedAccount(t, db, "alice")

	screening, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)

	order, remaining, err := Reserve(db, screening.ID, account.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), order.Quantity)
	assert.Equal(t, uint(97), remaining)
	assert.NotEmpty(t, order.PublicCode)

	reloaded, err := GetScreening(db, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), reloaded.Occupancy)
}

func TestReserveOverCapacity(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)
	account := seedAccount(t, db, "alice")

	screening, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)

	_, _, err = Reserve(db, screening.ID, account.ID, 101)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// failure leaves no trace: occupancy unchanged, no order recorded
	reloaded, err := GetScreening(db, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(0), reloaded.Occupancy)
	var orders int64
	db.Model(&model.Order{}).Count(&orders)
	assert.Zero(t, orders)
}

func TestReserveSequentialExhaustion(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)
	account := seedAccount(t, db, "alice")

	screening, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)

	_, remaining, err := Reserve(db, screening.ID, account.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, uint(40), remaining)

	_, _, err = Reserve(db, screening.ID, account.ID, 50)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	reloaded, err := GetScreening(db, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(60), reloaded.Occupancy)
}

func TestReserveInvalidInputs(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)
	account := seedAccount(t, db, "alice")

	screening, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)

	_, _, err = Reserve(db, 999, account.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = Reserve(db, screening.ID, account.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, _, err = Reserve(db, screening.ID, account.ID, -4)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestReserveEndedShow(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)
	account := seedAccount(t, db, "alice")

	// bypass the store to plant an already-elapsed screening
	past := time.Now().Add(-4 * time.Hour)
	screening := model.Screening{
		VenueId:   venue.ID,
		FilmId:    film.ID,
		StartTime: past,
		EndTime:   past.Add(2 * time.Hour),
		Price:     10,
		Status:    model.ScreeningAvailable,
	}
	require.NoError(t, db.Create(&screening).Error)

	_, _, err := Reserve(db, screening.ID, account.ID, 1)
	assert.ErrorIs(t, err, ErrShowEnded)
}

func TestReserveConcurrentAtomicity(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)
	account := seedAccount(t, db, "alice")

	screening, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)

	const workers = 8
	const each = 30

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := Reserve(db, screening.ID, account.ID, each)
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, ErrCapacityExceeded)
			}
		}()
	}
	wg.Wait()

	// no overselling: k reservations of 30 against capacity 100
	assert.LessOrEqual(t, successes*each, 100)
	assert.Equal(t, 3, successes)

	reloaded, err := GetScreening(db, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(successes*each), reloaded.Occupancy)

	// the ledger reconciles with the occupancy counter
	var orders []model.Order
	require.NoError(t, db.Where("screening_id = ?", screening.ID).Find(&orders).Error)
	assert.Len(t, orders, successes)
	var sum uint
	for _, o := range orders {
		sum += o.Quantity
	}
	assert.Equal(t, reloaded.Occupancy, sum)
}
