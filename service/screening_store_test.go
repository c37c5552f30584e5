package service

import (
	"cinema_booking/model"
	"cinema_booking/utils"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScreening(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)

	screening, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)
	assert.Equal(t, uint(0), screening.Occupancy)
	assert.Equal(t, model.ScreeningAvailable, screening.Status)
	assert.Equal(t, venue.Name, screening.Venue.Name)
	assert.Equal(t, film.Name, screening.Film.Name)
}

func TestCreateScreeningDoubleBooked(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)

	_, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)

	// second screening shifted one hour into the first
	_, err = CreateScreening(db, screeningAt(venue.ID, film.ID, 25, 10))
	assert.ErrorIs(t, err, ErrVenueDoubleBooked)

	var count int64
	db.Model(&model.Screening{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateScreeningConcurrentSameSlot(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)

	const workers = 6
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, ErrVenueDoubleBooked)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	var count int64
	db.Model(&model.Screening{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateScreening(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)

	screening, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)

	updated, err := UpdateScreening(db, screening.ID, model.UpdateScreeningInput{
		Price: utils.Ptr(uint(25)),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(25), updated.Price)

	// moving the interval keeps the overlap exclusion for the row itself
	newStart := screening.StartTime.Add(time.Hour)
	newEnd := screening.EndTime.Add(time.Hour)
	updated, err = UpdateScreening(db, screening.ID, model.UpdateScreeningInput{
		StartTime: utils.Ptr(newStart),
		EndTime:   utils.Ptr(newEnd),
	})
	require.NoError(t, err)
	assert.WithinDuration(t, newStart, updated.StartTime, time.Second)
}

func TestUpdateScreeningLocked(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)
	account := seedAccount(t, db, "alice")

	screening, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)

	_, _, err = Reserve(db, screening.ID, account.ID, 60)
	require.NoError(t, err)

	// any patch is rejected once tickets are sold, even a bare price change
	_, err = UpdateScreening(db, screening.ID, model.UpdateScreeningInput{
		Price: utils.Ptr(uint(20)),
	})
	assert.ErrorIs(t, err, ErrScreeningLocked)

	locked, err := ScreeningLocked(db, screening.ID)
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestUpdateScreeningNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateScreening(db, 42, model.UpdateScreeningInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteScreenings(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)
	account := seedAccount(t, db, "alice")

	free, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)
	sold, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 48, 10))
	require.NoError(t, err)
	_, _, err = Reserve(db, sold.ID, account.ID, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteScreenings(db, []uint{sold.ID}), ErrScreeningLocked)
	require.NoError(t, DeleteScreenings(db, []uint{free.ID}))

	_, err = GetScreening(db, free.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListScreeningsFilters(t *testing.T) {
	db := newTestDB(t)
	hall := seedVenue(t, db, "Grand Hall", 100)
	annex := seedVenue(t, db, "Annex", 50)
	film := seedFilm(t, db, "Solaris", 30)

	_, err := CreateScreening(db, screeningAt(hall.ID, film.ID, 30, 30))
	require.NoError(t, err)
	_, err = CreateScreening(db, screeningAt(annex.ID, film.ID, 30, 10))
	require.NoError(t, err)
	_, err = CreateScreening(db, screeningAt(hall.ID, film.ID, 60, 20))
	require.NoError(t, err)

	rows, total, err := ListScreenings(db, model.FilterScreeningInput{Venue: "Grand Hall"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, s := range rows {
		assert.Equal(t, hall.ID, s.VenueId)
	}

	rows, _, err = ListScreenings(db, model.FilterScreeningInput{Sort: "price"})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Price <= rows[1].Price && rows[1].Price <= rows[2].Price)

	// default ordering is by start time
	rows, _, err = ListScreenings(db, model.FilterScreeningInput{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, !rows[1].StartTime.Before(rows[0].StartTime))
}

func TestListScreeningsDayAndHourFilters(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)

	now := time.Now()
	tomorrowNoon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	_, err := CreateScreening(db, model.CreateScreeningInput{
		VenueId:   venue.ID,
		FilmId:    film.ID,
		StartTime: tomorrowNoon,
		EndTime:   tomorrowNoon.Add(2 * time.Hour),
		Price:     10,
	})
	require.NoError(t, err)

	rows, _, err := ListScreenings(db, model.FilterScreeningInput{Day: "tomorrow"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, _, err = ListScreenings(db, model.FilterScreeningInput{Day: "today"})
	require.NoError(t, err)
	assert.Empty(t, rows)

	// explicit hour bounds are anchored to today
	rows, _, err = ListScreenings(db, model.FilterScreeningInput{StartHour: utils.Ptr(0)})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, _, err = ListScreenings(db, model.FilterScreeningInput{EndHour: utils.Ptr(23)})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestVenueAndFilmLocks(t *testing.T) {
	db := newTestDB(t)
	venue := seedVenue(t, db, "Grand Hall", 100)
	film := seedFilm(t, db, "Solaris", 30)
	account := seedAccount(t, db, "alice")

	screening, err := CreateScreening(db, screeningAt(venue.ID, film.ID, 24, 10))
	require.NoError(t, err)

	locked, err := VenueLocked(db, venue.ID)
	require.NoError(t, err)
	assert.False(t, locked)

	_, _, err = Reserve(db, screening.ID, account.ID, 1)
	require.NoError(t, err)

	locked, err = VenueLocked(db, venue.ID)
	require.NoError(t, err)
	assert.True(t, locked)

	locked, err = FilmLocked(db, film.ID)
	require.NoError(t, err)
	assert.True(t, locked)
}
