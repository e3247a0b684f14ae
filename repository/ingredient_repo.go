package repository

import (
	"context"
	"errors"
	"restaurant_backend/model"

	"gorm.io/gorm"
)

type IngredientRepo interface {
	List(ctx context.Context, onlyActive bool) ([]model.Ingredient, error)
	GetByID(ctx context.Context, id uint) (*model.Ingredient, error)
	Create(ctx context.Context, in *model.Ingredient) error
	Update(ctx context.Context, in *model.Ingredient) error
	Delete(ctx context.Context, ids []uint) (int64, error)
}

type ingredientRepo struct{ db *gorm.DB }

func NewIngredientRepo(db *gorm.DB) IngredientRepo { return &ingredientRepo{db: db} }

func (r *ingredientRepo) List(ctx context.Context, onlyActive bool) ([]model.Ingredient, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	var list []model.Ingredient
	err := q.Find(&list).Error
	return list, err
}

func (r *ingredientRepo) GetByID(ctx context.Context, id uint) (*model.Ingredient, error) {
	var in model.Ingredient
	err := r.db.WithContext(ctx).First(&in, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &in, err
}

func (r *ingredientRepo) Create(ctx context.Context, in *model.Ingredient) error {
	return r.db.WithContext(ctx).Create(in).Error
}

func (r *ingredientRepo) Update(ctx context.Context, in *model.Ingredient) error {
	return r.db.WithContext(ctx).Model(in).Select("name", "is_active").Updates(in).Error
}

func (r *ingredientRepo) Delete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Ingredient{})
	return res.RowsAffected, res.Error
}
