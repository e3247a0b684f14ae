package repository

import (
	"context"
	"errors"
	"restaurant_backend/model"

	"gorm.io/gorm"
)

type ContentRepo[T model.Section] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	// Active returns the oldest active row, or nil when every row is inactive.
	Active(ctx context.Context) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id uint, item *T) error
	Delete(ctx context.Context, ids []uint) (int64, error)
}

type contentRepo[T model.Section] struct{ db *gorm.DB }

func NewContentRepo[T model.Section](db *gorm.DB) ContentRepo[T] {
	return &contentRepo[T]{db: db}
}

func (r *contentRepo[T]) List(ctx context.Context) ([]T, error) {
	var list []T
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *contentRepo[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *contentRepo[T]) Active(ctx context.Context) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *contentRepo[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *contentRepo[T]) Update(ctx context.Context, id uint, item *T) error {
	return r.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(item).Error
}

func (r *contentRepo[T]) Delete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(new(T))
	return res.RowsAffected, res.Error
}
