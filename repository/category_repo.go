package repository

import (
	"context"
	"errors"
	"restaurant_backend/helper"
	"restaurant_backend/model"

	"gorm.io/gorm"
)

const activeProductsCount = "(SELECT COUNT(*) FROM products WHERE products.category_id = categories.id AND products.is_active = true) AS products_count"

type CategoryRepo interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id uint) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, ids []uint) (int64, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepo { return &categoryRepo{db: db} }

func (r *categoryRepo) withCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Category{}).Select("categories.*, " + activeProductsCount)
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.withCount(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

func (r *categoryRepo) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	err := r.withCount(ctx).Where("categories.id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c.Slug = helper.GenerateUniqueSlug(tx, &model.Category{}, c.Name, 0)
		return tx.Create(c).Error
	})
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c.Slug = helper.GenerateUniqueSlug(tx, &model.Category{}, c.Name, c.ID)
		return tx.Model(c).Select("name", "slug", "icon").Updates(c).Error
	})
}

func (r *categoryRepo) Delete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Category{})
	return res.RowsAffected, res.Error
}
