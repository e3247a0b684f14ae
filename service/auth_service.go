package service

import (
	"context"
	"restaurant_backend/constants"
	"restaurant_backend/helper"
	"restaurant_backend/model"
	"restaurant_backend/repository"
	"strings"

	"go.uber.org/zap"
)

type AuthService struct {
	accounts repository.AccountRepo
	log      *zap.Logger
}

func NewAuthService(accounts repository.AccountRepo, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{accounts: accounts, log: log}
}

func isStaffRole(role string) bool {
	return role == constants.ROLE_ADMIN || role == constants.ROLE_STAFF
}

// Login checks the credentials of a staff account and issues an access token.
func (s *AuthService) Login(ctx context.Context, in model.LoginInput) (*model.Account, string, error) {
	acc, err := s.accounts.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, "", err
	}
	if acc == nil || !helper.CheckPasswordHash(in.Password, acc.Password) {
		s.log.Info("login rejected", zap.String("username", in.Username))
		return nil, "", ErrInvalidCredentials
	}
	if !acc.Active {
		return nil, "", ErrAccountInactive
	}
	if !isStaffRole(acc.Role) {
		return nil, "", ErrNotStaff
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: acc.ID,
		Username:  acc.Username,
		Role:      acc.Role,
	})
	if err != nil {
		return nil, "", err
	}
	return acc, token, nil
}

func (s *AuthService) Me(ctx context.Context, accountID uint) (*model.Account, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}
