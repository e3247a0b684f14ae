package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	DTO
	OrderNumber       string          `gorm:"uniqueIndex;size:20;not null" json:"order_number"`
	CustomerName      string          `gorm:"size:200;not null" json:"customer_name"`
	CustomerEmail     string          `gorm:"size:254;not null" json:"customer_email"`
	CustomerPhone     string          `gorm:"size:20;not null" json:"customer_phone"`
	DeliveryStreet    string          `gorm:"size:200;not null" json:"delivery_street"`
	DeliveryNumber    string          `gorm:"size:20;not null" json:"delivery_number"`
	DeliveryApartment *string         `gorm:"size:100" json:"delivery_apartment"`
	DeliveryCity      string          `gorm:"size:100;not null" json:"delivery_city"`
	DeliveryRegion    string          `gorm:"size:100;not null" json:"delivery_region"`
	DeliveryAddress   string          `gorm:"type:text;not null" json:"delivery_address"`
	Notes             *string         `gorm:"type:text" json:"notes"`
	Status            OrderStatus     `gorm:"size:20;not null;default:pending;index" json:"status"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"total_amount"`
	Items             []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID                 uint                  `gorm:"primaryKey" json:"id"`
	OrderID            uint                  `gorm:"not null;index" json:"order_id"`
	ProductID          uint                  `gorm:"not null;index" json:"product_id"`
	ProductName        string                `gorm:"size:200;not null" json:"product_name"`
	ProductDescription string                `gorm:"type:text" json:"product_description"`
	Quantity           int                   `gorm:"not null" json:"quantity"`
	UnitPrice          decimal.Decimal       `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	TotalPrice         decimal.Decimal       `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Extras             []OrderItemExtra      `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE" json:"extras"`
	Ingredients        []OrderItemIngredient `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE" json:"ingredients"`
	CreatedAt          time.Time             `json:"created_at"`
}

type OrderItemExtra struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderItemID    uint            `gorm:"not null;index" json:"order_item_id"`
	IngredientID   uint            `gorm:"not null" json:"ingredient_id"`
	IngredientName string          `gorm:"size:100;not null" json:"ingredient_name"`
	Quantity       int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
}

type OrderItemIngredient struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	OrderItemID    uint   `gorm:"not null;uniqueIndex:idx_order_item_ingredient" json:"order_item_id"`
	IngredientID   uint   `gorm:"not null;uniqueIndex:idx_order_item_ingredient" json:"ingredient_id"`
	IngredientName string `gorm:"size:100;not null" json:"ingredient_name"`
	IsIncluded     bool   `gorm:"not null" json:"is_included"`
	WasDefault     bool   `gorm:"not null" json:"was_default"`
}

type OrderFilter struct {
	Pagination
	Status string `query:"status"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}
