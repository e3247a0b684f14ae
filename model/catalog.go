package model

import "github.com/shopspring/decimal"

type Category struct {
	DTO
	Name          string    `gorm:"size:100;not null" json:"name"`
	Slug          string    `gorm:"uniqueIndex;size:120;not null" json:"slug"`
	Icon          string    `gorm:"size:10" json:"icon"`
	Products      []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	ProductsCount int64     `gorm:"->;-:migration" json:"products_count"`
}

type Product struct {
	DTO
	Name        string              `gorm:"size:200;not null" json:"name"`
	Description string              `gorm:"type:text" json:"description"`
	Price       decimal.Decimal     `gorm:"type:numeric(10,2);not null" json:"price"`
	CategoryID  uint                `gorm:"not null;index" json:"category_id"`
	Category    *Category           `json:"category,omitempty"`
	Image       *string             `json:"image"`
	IsActive    bool                `gorm:"not null" json:"is_active"`
	Tags        []ProductTag        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"tags"`
	Ingredients []ProductIngredient `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product_ingredients"`
}

type ProductTag struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Name      string `gorm:"size:50;not null" json:"name"`
}

type Ingredient struct {
	DTO
	Name     string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}

// ProductIngredient is the pricing rule of an ingredient on a product.
type ProductIngredient struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ProductID       uint            `gorm:"not null;uniqueIndex:idx_product_ingredient" json:"product_id"`
	IngredientID    uint            `gorm:"not null;uniqueIndex:idx_product_ingredient" json:"ingredient_id"`
	Ingredient      Ingredient      `gorm:"constraint:OnDelete:CASCADE" json:"ingredient"`
	DefaultIncluded bool            `gorm:"not null" json:"default_included"`
	ExtraCost       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"extra_cost"`
	IsActive        bool            `gorm:"not null" json:"is_active"`
}

type CategoryInput struct {
	Name string `json:"name" validate:"required,max=100"`
	Icon string `json:"icon" validate:"max=10"`
}

type ProductIngredientInput struct {
	IngredientID    uint            `json:"ingredient_id" validate:"required"`
	DefaultIncluded *bool           `json:"default_included"`
	ExtraCost       decimal.Decimal `json:"extra_cost"`
	IsActive        *bool           `json:"is_active"`
}

type CreateProductInput struct {
	Name               string                   `json:"name" validate:"required,max=200"`
	Description        string                   `json:"description"`
	Price              decimal.Decimal          `json:"price"`
	CategoryID         uint                     `json:"category_id" validate:"required"`
	Image              *string                  `json:"image"`
	IsActive           *bool                    `json:"is_active"`
	Tags               []string                 `json:"tags" validate:"dive,required,max=50"`
	ProductIngredients []ProductIngredientInput `json:"product_ingredients" validate:"dive"`
}

// UpdateProductInput replaces tags and pricing rules only when they are sent.
type UpdateProductInput struct {
	Name               *string                   `json:"name" validate:"omitempty,max=200"`
	Description        *string                   `json:"description"`
	Price              *decimal.Decimal          `json:"price"`
	CategoryID         *uint                     `json:"category_id"`
	Image              *string                   `json:"image"`
	IsActive           *bool                     `json:"is_active"`
	Tags               *[]string                 `json:"tags" validate:"omitempty,dive,required,max=50"`
	ProductIngredients *[]ProductIngredientInput `json:"product_ingredients" validate:"omitempty,dive"`
}

type ProductFilter struct {
	Pagination
	Category string `query:"category"`
	Search   string `query:"search"`
}

type TagInput struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=50"`
}

type IngredientInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	IsActive *bool  `json:"is_active"`
}

type PricingRuleInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	ProductIngredientInput
}

// PriceQuoteInput accepts either a list of extra ids (one unit each) or an id to quantity map.
type PriceQuoteInput struct {
	ExtraIDs []uint                    `json:"extra_ids"`
	Extras   map[string]NumberOrString `json:"extras"`
}

type PriceQuote struct {
	BasePrice   decimal.Decimal `json:"base_price"`
	ExtrasTotal decimal.Decimal `json:"extras_total"`
	Total       decimal.Decimal `json:"total"`
	ExtraIDs    []uint          `json:"extra_ids"`
}
