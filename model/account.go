package model

// Account is a back-office user. Only ADMIN and STAFF accounts may log in.
type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Active   bool   `gorm:"not null" json:"active"`
	Role     string `gorm:"size:20;not null" json:"role"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}
