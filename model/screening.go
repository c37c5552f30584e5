package model

import "time"

const (
	ScreeningAvailable = "available"
	ScreeningEnded     = "ended"
)

type Screening struct {
	DTO
	VenueId   uint      `json:"venueId"`
	FilmId    uint      `json:"filmId"`
	StartTime time.Time `json:"start"`
	EndTime   time.Time `json:"end"`
	Occupancy uint      `json:"occupancy"`
	Price     uint      `json:"price"`
	Status    string    `gorm:"size:20;default:available" json:"status"`

	Venue Venue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:VenueId" json:"venue"`
	Film  Film  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:FilmId" json:"film"`

	Orders []Order `gorm:"foreignKey:ScreeningId" json:"orders,omitempty"`
}

// Remaining is the number of tickets still available against the venue size.
func (s *Screening) Remaining() uint {
	if s.Occupancy >= s.Venue.Capacity {
		return 0
	}
	return s.Venue.Capacity - s.Occupancy
}

type CreateScreeningInput struct {
	VenueId   uint      `json:"venueId" validate:"required,gt=0"`
	FilmId    uint      `json:"filmId" validate:"required,gt=0"`
	StartTime time.Time `json:"start" validate:"required"`
	EndTime   time.Time `json:"end" validate:"required"`
	Price     uint      `json:"price"`
}

type UpdateScreeningInput struct {
	VenueId   *uint      `json:"venueId" validate:"omitempty,gt=0"`
	FilmId    *uint      `json:"filmId" validate:"omitempty,gt=0"`
	StartTime *time.Time `json:"start"`
	EndTime   *time.Time `json:"end"`
	Price     *uint      `json:"price"`
}

type FilterScreeningInput struct {
	Pagination
	Venue     string `query:"venue"`
	Day       string `query:"day" validate:"omitempty,oneof=today tomorrow"`
	StartHour *int   `query:"start" validate:"omitempty,gte=0,lte=23"`
	EndHour   *int   `query:"end" validate:"omitempty,gte=0,lte=23"`
	Sort      string `query:"sort" validate:"omitempty,oneof=date price"`
}

type BookInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}
