package service

import (
	"cinema_booking/model"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// dateOf drops the time of day, keeping the calendar date in the value's
// own location. Run-window containment compares dates only.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateScreening runs the ordered checks a candidate screening must pass
// before it may be persisted. excludeID is the screening being updated, or
// zero on creation; the past-start check only applies on creation. Cheap
// structural checks run before the overlap query.
func ValidateScreening(db *gorm.DB, candidate *model.Screening, excludeID uint) error {
	if !candidate.StartTime.Before(candidate.EndTime) {
		return ErrInvalidInterval
	}

	if excludeID == 0 && candidate.StartTime.Before(time.Now()) {
		return ErrPastScheduling
	}

	var film model.Film
	if err := db.First(&film, candidate.FilmId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("film %d: %w", candidate.FilmId, ErrNotFound)
		}
		return err
	}
	runBegin := dateOf(film.RunBegin)
	runEnd := dateOf(film.RunEnd)
	for _, d := range []time.Time{dateOf(candidate.StartTime), dateOf(candidate.EndTime)} {
		if d.Before(runBegin) || d.After(runEnd) {
			return ErrOutsideFilmRun
		}
	}

	var venue model.Venue
	if err := db.First(&venue, candidate.VenueId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("venue %d: %w", candidate.VenueId, ErrNotFound)
		}
		return err
	}
	if candidate.Occupancy > venue.Capacity {
		return ErrCapacityExceeded
	}

	// Closed-interval overlap: [s1,e1] and [s2,e2] collide when
	// s1 <= e2 and s2 <= e1.
	var conflicts int64
	query := db.Model(&model.Screening{}).
		Where("venue_id = ? AND start_time <= ? AND end_time >= ?",
			candidate.VenueId, candidate.EndTime, candidate.StartTime)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&conflicts).Error; err != nil {
		return err
	}
	if conflicts > 0 {
		return ErrVenueDoubleBooked
	}

	return nil
}
