package service

import (
	"cinema_booking/model"
	"errors"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func CreateVenue(db *gorm.DB, input model.CreateVenueInput) (*model.Venue, error) {
	var count int64
	if err := db.Model(&model.Venue{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	venue := model.Venue{Name: input.Name, Capacity: input.Capacity}
	if err := db.Create(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func UpdateVenue(db *gorm.DB, id uint, input model.UpdateVenueInput) (*model.Venue, error) {
	var venue model.Venue
	if err := db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	locked, err := VenueLocked(db, id)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, ErrScreeningLocked
	}

	if input.Name != nil && *input.Name != venue.Name {
		var count int64
		if err := db.Model(&model.Venue{}).
			Where("name = ? AND id <> ?", *input.Name, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateName
		}
	}

	if err := copier.CopyWithOption(&venue, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if err := db.Save(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// DeleteVenues removes venues together with their screenings and the
// orders hanging off those screenings.
func DeleteVenues(db *gorm.DB, ids []uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var screeningIds []uint
		if err := tx.Model(&model.Screening{}).
			Where("venue_id IN ?", ids).
			Pluck("id", &screeningIds).Error; err != nil {
			return err
		}
		if len(screeningIds) > 0 {
			if err := tx.Where("screening_id IN ?", screeningIds).Delete(&model.Order{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", screeningIds).Delete(&model.Screening{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id IN ?", ids).Delete(&model.Venue{}).Error
	})
}

func GetVenue(db *gorm.DB, id uint) (*model.Venue, error) {
	var venue model.Venue
	if err := db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func ListVenues(db *gorm.DB) ([]model.Venue, error) {
	var venues []model.Venue
	if err := db.Order("name ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	if venues == nil {
		venues = []model.Venue{}
	}
	return venues, nil
}
