package service

import (
	"cinema_booking/model"
	"cinema_booking/utils"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// venueLocks serializes screening writes per venue so that two concurrent
// creates cannot both pass the overlap check and land colliding shows. The
// validation still re-runs inside the write transaction.
var venueLocks sync.Map

func lockVenues(ids ...uint) func() {
	seen := map[uint]bool{}
	var order []uint
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	var held []*sync.Mutex
	for _, id := range order {
		v, _ := venueLocks.LoadOrStore(id, &sync.Mutex{})
		mu := v.(*sync.Mutex)
		mu.Lock()
		held = append(held, mu)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func CreateScreening(db *gorm.DB, input model.CreateScreeningInput) (*model.Screening, error) {
	unlock := lockVenues(input.VenueId)
	defer unlock()

	screening := model.Screening{
		VenueId:   input.VenueId,
		FilmId:    input.FilmId,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Occupancy: 0,
		Price:     input.Price,
		Status:    model.ScreeningAvailable,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ValidateScreening(tx, &screening, 0); err != nil {
			return err
		}
		return tx.Create(&screening).Error
	})
	if err != nil {
		return nil, err
	}
	return GetScreening(db, screening.ID)
}

func UpdateScreening(db *gorm.DB, id uint, input model.UpdateScreeningInput) (*model.Screening, error) {
	var current model.Screening
	if err := db.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	venueIds := []uint{current.VenueId}
	if input.VenueId != nil {
		venueIds = append(venueIds, *input.VenueId)
	}
	unlock := lockVenues(venueIds...)
	defer unlock()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		// No edits once any ticket is sold, regardless of the fields patched.
		if current.Occupancy > 0 {
			return ErrScreeningLocked
		}
		if err := copier.CopyWithOption(&current, &input, copier.Option{IgnoreEmpty: true}); err != nil {
			return err
		}
		if err := ValidateScreening(tx, &current, id); err != nil {
			return err
		}
		return tx.Save(&current).Error
	})
	if err != nil {
		return nil, err
	}
	return GetScreening(db, id)
}

// DeleteScreenings removes screenings and their orders. Screenings with
// sold tickets are locked against direct deletion.
func DeleteScreenings(db *gorm.DB, ids []uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var locked int64
		if err := tx.Model(&model.Screening{}).
			Where("id IN ? AND occupancy > 0", ids).
			Count(&locked).Error; err != nil {
			return err
		}
		if locked > 0 {
			return ErrScreeningLocked
		}
		if err := tx.Where("screening_id IN ?", ids).Delete(&model.Order{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.Screening{}).Error
	})
}

func GetScreening(db *gorm.DB, id uint) (*model.Screening, error) {
	var screening model.Screening
	if err := db.Preload("Venue").Preload("Film").First(&screening, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &screening, nil
}

func ListScreenings(db *gorm.DB, filter model.FilterScreeningInput) ([]model.Screening, int64, error) {
	condition := db.Model(&model.Screening{}).
		Joins("JOIN venues ON venues.id = screenings.venue_id")

	if filter.Venue != "" {
		condition = condition.Where("venues.name = ?", filter.Venue)
	}

	now := time.Now()
	switch filter.Day {
	case "today":
		from, to := dayBounds(now)
		condition = condition.Where("screenings.start_time BETWEEN ? AND ?", from, to)
	case "tomorrow":
		from, to := dayBounds(now.AddDate(0, 0, 1))
		condition = condition.Where("screenings.start_time BETWEEN ? AND ?", from, to)
	}
	if filter.StartHour != nil {
		from, _ := dayBounds(now)
		condition = condition.Where("screenings.start_time >= ?", from.Add(time.Duration(*filter.StartHour)*time.Hour))
	}
	if filter.EndHour != nil {
		from, _ := dayBounds(now)
		condition = condition.Where("screenings.start_time <= ?", from.Add(time.Duration(*filter.EndHour)*time.Hour))
	}

	var total int64
	if err := condition.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "price":
		condition = condition.Order("screenings.price ASC")
	default:
		condition = condition.Order("screenings.start_time ASC")
	}

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var screenings []model.Screening
	if err := condition.Preload("Venue").Preload("Film").Find(&screenings).Error; err != nil {
		return nil, 0, err
	}
	if screenings == nil {
		screenings = []model.Screening{}
	}
	return screenings, total, nil
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24*time.Hour - time.Second)
}

// ScreeningLocked reports whether any ticket has been sold for the screening.
func ScreeningLocked(db *gorm.DB, id uint) (bool, error) {
	var screening model.Screening
	if err := db.Select("occupancy").First(&screening, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return screening.Occupancy > 0, nil
}

// VenueLocked reports whether any screening at the venue has sold tickets,
// which freezes venue edits.
func VenueLocked(db *gorm.DB, venueID uint) (bool, error) {
	var count int64
	err := db.Model(&model.Screening{}).
		Where("venue_id = ? AND occupancy > 0", venueID).
		Count(&count).Error
	return count > 0, err
}

// FilmLocked mirrors VenueLocked for films: a film referenced by a
// screening with sold tickets cannot be edited.
func FilmLocked(db *gorm.DB, filmID uint) (bool, error) {
	var count int64
	err := db.Model(&model.Screening{}).
		Where("film_id = ? AND occupancy > 0", filmID).
		Count(&count).Error
	return count > 0, err
}
