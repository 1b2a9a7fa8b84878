package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/repository"

	"github.com/google/uuid"
)

type PullRequestService struct {
	prRepo      repository.PullRequestRepository
	userRepo    repository.UserRepository
	problemRepo repository.ProblemRepository
	cache       RankingCache
	now         func() time.Time
}

func NewPullRequestService(
	prRepo repository.PullRequestRepository,
	userRepo repository.UserRepository,
	problemRepo repository.ProblemRepository,
	cache RankingCache,
) *PullRequestService {
	return &PullRequestService{
		prRepo:      prRepo,
		userRepo:    userRepo,
		problemRepo: problemRepo,
		cache:       cache,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type CreatePullRequestRequest struct {
	ID           string  `json:"id" validate:"required"`
	ProblemID    string  `json:"problem_id" validate:"required"`
	Nickname     string  `json:"nickname" validate:"required"`
	BonusPoints  float64 `json:"bonus_points"`
	BonusComment string  `json:"bonus_comment"`
}

type UpdatePullRequestRequest struct {
	ProblemID    string  `json:"problem_id"`
	BonusPoints  float64 `json:"bonus_points"`
	BonusComment string  `json:"bonus_comment"`
	Reviewed     bool    `json:"reviewed"`
}

func (s *PullRequestService) GetPullRequest(ctx context.Context, prID string) (*model.PullRequest, error) {
	pr, err := s.prRepo.FindByPRID(ctx, prID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("pr not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return pr, nil
}

func (s *PullRequestService) ListPullRequests(ctx context.Context) ([]model.PullRequest, error) {
	return s.prRepo.List(ctx)
}

// CreatePullRequest registers a manually submitted PR. The submitter and the
// referenced problem must already exist; the merge timestamp is stamped
// server-side.
func (s *PullRequestService) CreatePullRequest(ctx context.Context, req CreatePullRequestRequest) (*model.PullRequest, error) {
	if _, err := s.userRepo.FindByNickname(ctx, req.Nickname); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.problemRepo.FindByProblemID(ctx, req.ProblemID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("problem not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.prRepo.FindByPRID(ctx, req.ID); err == nil {
		return nil, fmt.Errorf("pr present: %w", common.ErrConflict)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("checking pr existence: %w", err)
	}

	pr := &model.PullRequest{
		ID:           uuid.NewString(),
		PRID:         req.ID,
		ProblemID:    req.ProblemID,
		Nickname:     req.Nickname,
		BonusPoints:  req.BonusPoints,
		BonusComment: req.BonusComment,
		MergeTime:    s.now(),
		Reviewed:     false,
		ReviewedAt:   model.ReviewedAtSentinel,
	}
	if err := s.prRepo.Create(ctx, pr); err != nil {
		return nil, err
	}

	invalidateRanking(ctx, s.cache)
	return pr, nil
}

// UpdatePullRequest overwrites the reviewable fields. Every edit counts as a
// review touch, so reviewed_at is stamped unconditionally.
func (s *PullRequestService) UpdatePullRequest(ctx context.Context, prID string, req UpdatePullRequestRequest) (*model.PullRequest, error) {
	pr, err := s.GetPullRequest(ctx, prID)
	if err != nil {
		return nil, err
	}

	if req.ProblemID != "" {
		if _, err := s.problemRepo.FindByProblemID(ctx, req.ProblemID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, fmt.Errorf("problem not found: %w", common.ErrNotFound)
			}
			return nil, err
		}
	}

	pr.ProblemID = req.ProblemID
	pr.BonusPoints = req.BonusPoints
	pr.BonusComment = req.BonusComment
	pr.Reviewed = req.Reviewed
	pr.ReviewedAt = s.now()
	if err := s.prRepo.Update(ctx, pr); err != nil {
		return nil, err
	}

	invalidateRanking(ctx, s.cache)
	return pr, nil
}

func (s *PullRequestService) DeletePullRequest(ctx context.Context, prID string) (*model.PullRequest, error) {
	pr, err := s.GetPullRequest(ctx, prID)
	if err != nil {
		return nil, err
	}

	if err := s.prRepo.Delete(ctx, prID); err != nil {
		return nil, err
	}

	invalidateRanking(ctx, s.cache)
	return pr, nil
}
