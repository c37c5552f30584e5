package model

import "time"

type Film struct {
	DTO
	Name     string    `gorm:"size:100;uniqueIndex" json:"name"`
	Slug     string    `gorm:"size:120;uniqueIndex" json:"slug"`
	RunBegin time.Time `json:"runBegin"`
	RunEnd   time.Time `json:"runEnd"`

	Screenings []Screening `gorm:"foreignKey:FilmId" json:"screenings,omitempty"`
}

type CreateFilmInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	RunBegin string `json:"runBegin" validate:"required,datetime=2006-01-02"`
	RunEnd   string `json:"runEnd" validate:"required,datetime=2006-01-02"`
}

type UpdateFilmInput struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	RunBegin *string `json:"runBegin" validate:"omitempty,datetime=2006-01-02"`
	RunEnd   *string `json:"runEnd" validate:"omitempty,datetime=2006-01-02"`
}
