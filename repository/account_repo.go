package repository

import (
	"context"
	"errors"
	"restaurant_backend/model"

	"gorm.io/gorm"
)

type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	GetByID(ctx context.Context, id uint) (*model.Account, error)
}

type accountRepo struct{ db *gorm.DB }

func NewAccountRepo(db *gorm.DB) AccountRepo { return &accountRepo{db: db} }

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	var acc model.Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &acc, err
}

func (r *accountRepo) GetByID(ctx context.Context, id uint) (*model.Account, error) {
	var acc model.Account
	err := r.db.WithContext(ctx).First(&acc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &acc, err
}
