package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ProblemService struct {
	problemRepo repository.ProblemRepository
	cache       RankingCache
}

func NewProblemService(problemRepo repository.ProblemRepository, cache RankingCache) *ProblemService {
	return &ProblemService{problemRepo: problemRepo, cache: cache}
}

type CreateProblemRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	LevelName   string  `json:"level_name" validate:"required"`
	BasePoints  float64 `json:"base_points" validate:"gte=0"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

type UpdateProblemRequest struct {
	Name        string  `json:"name" validate:"required"`
	LevelName   string  `json:"level_name" validate:"required"`
	BasePoints  float64 `json:"base_points" validate:"gte=0"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

func (s *ProblemService) GetProblem(ctx context.Context, problemID string) (*model.Problem, error) {
	problem, err := s.problemRepo.FindByProblemID(ctx, problemID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("problem not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return problem, nil
}

func (s *ProblemService) ListProblems(ctx context.Context) ([]model.Problem, error) {
	return s.problemRepo.List(ctx)
}

func (s *ProblemService) CreateProblem(ctx context.Context, req CreateProblemRequest) (*model.Problem, error) {
	problemID := req.ID
	if problemID == "" {
		problemID = slug.Make(req.Name)
	}

	if _, err := s.problemRepo.FindByProblemID(ctx, problemID); err == nil {
		return nil, fmt.Errorf("problem present: %w", common.ErrConflict)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("checking problem existence: %w", err)
	}

	problem := &model.Problem{
		ID:          uuid.NewString(),
		ProblemID:   problemID,
		Name:        req.Name,
		LevelName:   req.LevelName,
		BasePoints:  req.BasePoints,
		Multiplier:  req.Multiplier,
		Description: req.Description,
	}
	if err := s.problemRepo.Create(ctx, problem); err != nil {
		return nil, err
	}

	invalidateRanking(ctx, s.cache)
	return problem, nil
}

func (s *ProblemService) UpdateProblem(ctx context.Context, problemID string, req UpdateProblemRequest) (*model.Problem, error) {
	problem, err := s.GetProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	problem.Name = req.Name
	problem.LevelName = req.LevelName
	problem.BasePoints = req.BasePoints
	problem.Multiplier = req.Multiplier
	problem.Description = req.Description
	if err := s.problemRepo.Update(ctx, problem); err != nil {
		return nil, err
	}

	invalidateRanking(ctx, s.cache)
	return problem, nil
}

func (s *ProblemService) DeleteProblem(ctx context.Context, problemID string) (*model.Problem, error) {
	problem, err := s.GetProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	if err := s.problemRepo.Delete(ctx, problemID); err != nil {
		return nil, err
	}

	invalidateRanking(ctx, s.cache)
	return problem, nil
}
