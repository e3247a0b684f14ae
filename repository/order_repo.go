package repository

import (
	"context"
	"errors"
	"restaurant_backend/model"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderListFilter struct {
	Status *model.OrderStatus
	Limit  int
	Offset int
}

type OrderRepo interface {
	Create(ctx context.Context, o *model.Order) error
	CreateItem(ctx context.Context, it *model.OrderItem) error
	CreateItemExtra(ctx context.Context, ex *model.OrderItemExtra) error
	CreateItemIngredients(ctx context.Context, rows []model.OrderItemIngredient) error
	UpdateTotal(ctx context.Context, id uint, total decimal.Decimal) error
	NumberExists(ctx context.Context, number string) (bool, error)
	GetByID(ctx context.Context, id uint) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error
	CountPendingBefore(ctx context.Context, before time.Time) (int64, error)

	// WithTx runs fn with catalog reads and order writes bound to one transaction.
	WithTx(ctx context.Context, fn func(catalog PricingCatalog, txRepo OrderRepo) error) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Create(o).Error
}

func (r *orderRepo) CreateItem(ctx context.Context, it *model.OrderItem) error {
	return r.db.WithContext(ctx).Omit("Extras", "Ingredients").Create(it).Error
}

func (r *orderRepo) CreateItemExtra(ctx context.Context, ex *model.OrderItemExtra) error {
	return r.db.WithContext(ctx).Create(ex).Error
}

func (r *orderRepo) CreateItemIngredients(ctx context.Context, rows []model.OrderItemIngredient) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *orderRepo) UpdateTotal(ctx context.Context, id uint, total decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("total_amount", total).Error
}

func (r *orderRepo) NumberExists(ctx context.Context, number string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Where("order_number = ?", number).Count(&cnt).Error
	return cnt > 0, err
}

func (r *orderRepo) full(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Extras", func(db *gorm.DB) *gorm.DB { return db.Order("ingredient_id ASC") }).
		Preload("Items.Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredient_id ASC") })
}

func (r *orderRepo) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	var ord model.Order
	err := r.full(ctx).First(&ord, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	var ord model.Order
	err := r.full(ctx).Where("order_number = ?", number).First(&ord).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []model.Order
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).
		Preload("Items.Extras").
		Preload("Items.Ingredients").
		Find(&list).Error
	return list, total, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepo) CountPendingBefore(ctx context.Context, before time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status = ? AND created_at < ?", model.OrderStatusPending, before).
		Count(&cnt).Error
	return cnt, err
}

func (r *orderRepo) WithTx(ctx context.Context, fn func(catalog PricingCatalog, txRepo OrderRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&productRepo{db: tx}, &orderRepo{db: tx})
	})
}
