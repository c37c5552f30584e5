package service

import (
	"cinema_booking/helper"
	"cinema_booking/model"
	"errors"
	"time"

	"gorm.io/gorm"
)

func CreateFilm(db *gorm.DB, name string, runBegin, runEnd time.Time) (*model.Film, error) {
	if runBegin.After(runEnd) {
		return nil, ErrInvalidRunWindow
	}

	var count int64
	if err := db.Model(&model.Film{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	film := model.Film{Name: name, RunBegin: runBegin, RunEnd: runEnd}
	err := db.Transaction(func(tx *gorm.DB) error {
		film.Slug = helper.GenerateUniqueFilmSlug(tx, name)
		return tx.Create(&film).Error
	})
	if err != nil {
		return nil, err
	}
	return &film, nil
}

func UpdateFilm(db *gorm.DB, id uint, input model.UpdateFilmInput) (*model.Film, error) {
	var film model.Film
	if err := db.First(&film, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	locked, err := FilmLocked(db, id)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, ErrScreeningLocked
	}

	if input.RunBegin != nil {
		begin, err := time.Parse("2006-01-02", *input.RunBegin)
		if err != nil {
			return nil, ErrInvalidRunWindow
		}
		film.RunBegin = begin
	}
	if input.RunEnd != nil {
		end, err := time.Parse("2006-01-02", *input.RunEnd)
		if err != nil {
			return nil, ErrInvalidRunWindow
		}
		film.RunEnd = end
	}
	if film.RunBegin.After(film.RunEnd) {
		return nil, ErrInvalidRunWindow
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if input.Name != nil && *input.Name != film.Name {
			var count int64
			if err := tx.Model(&model.Film{}).
				Where("name = ? AND id <> ?", *input.Name, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateName
			}
			film.Name = *input.Name
			film.Slug = helper.GenerateUniqueFilmSlug(tx, film.Name)
		}
		return tx.Save(&film).Error
	})
	if err != nil {
		return nil, err
	}
	return &film, nil
}

// DeleteFilms removes films together with their screenings and orders.
func DeleteFilms(db *gorm.DB, ids []uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var screeningIds []uint
		if err := tx.Model(&model.Screening{}).
			Where("film_id IN ?", ids).
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
		return tx.Where("id IN ?", ids).Delete(&model.Film{}).Error
	})
}

func GetFilm(db *gorm.DB, id uint) (*model.Film, error) {
	var film model.Film
	if err := db.First(&film, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &film, nil
}

func ListFilms(db *gorm.DB) ([]model.Film, error) {
	var films []model.Film
	if err := db.Order("name ASC").Find(&films).Error; err != nil {
		return nil, err
	}
	if films == nil {
		films = []model.Film{}
	}
	return films, nil
}
