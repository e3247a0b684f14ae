package service

import (
	"context"
	"fmt"
	"restaurant_backend/model"
	"restaurant_backend/repository"
)

// ContentService manages one kind of home page section.
type ContentService[T model.Section] struct {
	repo repository.ContentRepo[T]
}

func NewContentService[T model.Section](repo repository.ContentRepo[T]) *ContentService[T] {
	return &ContentService[T]{repo: repo}
}

func (s *ContentService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *ContentService[T]) Get(ctx context.Context, id uint) (*T, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrContentNotFound
	}
	return item, nil
}

func (s *ContentService[T]) Active(ctx context.Context) (*T, error) {
	item, err := s.repo.Active(ctx)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrContentNotFound
	}
	return item, nil
}

func (s *ContentService[T]) Create(ctx context.Context, item T) (*T, error) {
	if errs := structErrors(item); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return &item, nil
}

// Update replaces every editable field of the section with the input.
func (s *ContentService[T]) Update(ctx context.Context, id uint, in T) (*T, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if errs := structErrors(in); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	if err := s.repo.Update(ctx, id, &in); err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *ContentService[T]) Delete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDs
	}
	return s.repo.Delete(ctx, ids)
}
