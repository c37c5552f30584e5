package model

type Venue struct {
	DTO
	Name     string `gorm:"size:40;uniqueIndex" json:"name"`
	Capacity uint   `json:"capacity"`

	Screenings []Screening `gorm:"foreignKey:VenueId" json:"screenings,omitempty"`
}

type CreateVenueInput struct {
	Name     string `json:"name" validate:"required,max=40"`
	Capacity uint   `json:"capacity" validate:"required,gt=0"`
}

type UpdateVenueInput struct {
	Name     *string `json:"name" validate:"omitempty,max=40"`
	Capacity *uint   `json:"capacity" validate:"omitempty,gt=0"`
}
