package model

type Order struct {
	DTO
	PublicCode  string `gorm:"size:16;uniqueIndex" json:"publicCode"`
	AccountId   uint   `json:"accountId"`
	ScreeningId uint   `json:"screeningId"`
	Quantity    uint   `json:"quantity"`

	Account   Account   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:AccountId" json:"-"`
	Screening Screening `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:ScreeningId" json:"screening"`
}

type BookingResponse struct {
	Order     Order `json:"order"`
	Remaining uint  `json:"remaining"`
}
