package model

type Account struct {
	DTO
	Username string `gorm:"size:50;uniqueIndex" json:"username"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"isAdmin"`
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Confirm  string `json:"confirm" validate:"required"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
