package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/repository"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
	cache    RankingCache
}

func NewUserService(userRepo repository.UserRepository, cache RankingCache) *UserService {
	return &UserService{userRepo: userRepo, cache: cache}
}

type CreateUserRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
}

type UpdateUserRequest struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
}

func (s *UserService) GetUser(ctx context.Context, nickname string) (*model.User, error) {
	user, err := s.userRepo.FindByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if _, err := s.userRepo.FindByNickname(ctx, req.Nickname); err == nil {
		return nil, fmt.Errorf("user present: %w", common.ErrConflict)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("checking user existence: %w", err)
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Nickname: req.Nickname,
		Name:     req.Name,
		Surname:  req.Surname,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	invalidateRanking(ctx, s.cache)
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, nickname string, req UpdateUserRequest) (*model.User, error) {
	user, err := s.GetUser(ctx, nickname)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Surname = req.Surname
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	invalidateRanking(ctx, s.cache)
	return user, nil
}

// DeleteUser removes a user and returns the record as it was before
// deletion. Pull requests submitted by the user are not cascaded.
func (s *UserService) DeleteUser(ctx context.Context, nickname string) (*model.User, error) {
	user, err := s.GetUser(ctx, nickname)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, nickname); err != nil {
		return nil, err
	}

	invalidateRanking(ctx, s.cache)
	return user, nil
}
