package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Section is the set of marketing content blocks served on the home page.
type Section interface {
	HeroSection | AboutSection | ContactInfo | FeaturedProduct
}

type HeroSection struct {
	DTO
	Title           string  `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Subtitle        string  `gorm:"type:text" json:"subtitle"`
	ButtonText      string  `gorm:"size:50;not null;default:Ordenar Ahora" json:"button_text" validate:"max=50"`
	ButtonURL       string  `gorm:"size:200;not null;default:#menu" json:"button_url" validate:"max=200"`
	BackgroundImage *string `json:"background_image"`
	IsActive        bool    `gorm:"not null" json:"is_active"`
}

type AboutSection struct {
	DTO
	Title           string  `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Subtitle        string  `gorm:"size:300" json:"subtitle" validate:"max=300"`
	Description     string  `gorm:"type:text" json:"description"`
	Image1          *string `json:"image_1"`
	Image2          *string `json:"image_2"`
	YearsExperience int     `gorm:"not null" json:"years_experience" validate:"gte=0"`
	IsActive        bool    `gorm:"not null" json:"is_active"`
}

type ContactInfo struct {
	DTO
	Phone     string  `gorm:"size:20;not null" json:"phone" validate:"required,max=20"`
	Email     string  `gorm:"size:254;not null" json:"email" validate:"required,email"`
	Address   string  `gorm:"type:text;not null" json:"address" validate:"required"`
	Whatsapp  *string `gorm:"size:20" json:"whatsapp" validate:"omitempty,max=20"`
	Facebook  *string `json:"facebook" validate:"omitempty,url"`
	Instagram *string `json:"instagram" validate:"omitempty,url"`
	IsActive  bool    `gorm:"not null" json:"is_active"`
}

type FeaturedProduct struct {
	DTO
	Name               string           `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	Description        string           `gorm:"type:text" json:"description"`
	Price              decimal.Decimal  `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice      *decimal.Decimal `gorm:"type:numeric(10,2)" json:"original_price"`
	DiscountPercentage int              `gorm:"not null" json:"discount_percentage" validate:"gte=0,lte=100"`
	Image              *string          `json:"image"`
	PreparationTime    string           `gorm:"size:50;not null;default:15-20 min" json:"preparation_time" validate:"max=50"`
	Servings           string           `gorm:"size:50;not null;default:4 personas" json:"servings" validate:"max=50"`
	Rating             decimal.Decimal  `gorm:"type:numeric(3,1);not null;default:4.9" json:"rating"`
	ReviewsCount       int              `gorm:"not null" json:"reviews_count" validate:"gte=0"`
	IsActive           bool             `gorm:"not null" json:"is_active"`

	DiscountAmount               decimal.Decimal `gorm:"-" json:"discount_amount"`
	DiscountPercentageCalculated int             `gorm:"-" json:"discount_percentage_calculated"`
}

// ComputeDiscount fills the read-only discount fields from the two prices.
func (f *FeaturedProduct) ComputeDiscount() {
	f.DiscountAmount = decimal.Zero
	f.DiscountPercentageCalculated = 0
	if f.OriginalPrice == nil || !f.OriginalPrice.GreaterThan(f.Price) {
		return
	}
	f.DiscountAmount = f.OriginalPrice.Sub(f.Price)
	f.DiscountPercentageCalculated = int(f.DiscountAmount.Div(*f.OriginalPrice).Mul(decimal.NewFromInt(100)).IntPart())
}

func (f *FeaturedProduct) AfterFind(tx *gorm.DB) error {
	f.ComputeDiscount()
	return nil
}

func (f *FeaturedProduct) AfterSave(tx *gorm.DB) error {
	f.ComputeDiscount()
	return nil
}
