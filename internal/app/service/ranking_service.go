package service

import (
	"context"
	"log"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/repository"
)

// RankingCache is implemented by platform/cache.RankingCache. A nil cache
// disables caching entirely; cache failures never fail a request.
type RankingCache interface {
	GetRanking(ctx context.Context) ([]model.RankingEntry, error)
	SetRanking(ctx context.Context, entries []model.RankingEntry) error
	InvalidateRanking(ctx context.Context) error
}

func invalidateRanking(ctx context.Context, cache RankingCache) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateRanking(ctx); err != nil {
		log.Printf("WARN: failed to invalidate ranking cache: %v", err)
	}
}

type RankingService struct {
	userRepo    repository.UserRepository
	problemRepo repository.ProblemRepository
	prRepo      repository.PullRequestRepository
	cache       RankingCache
}

func NewRankingService(
	userRepo repository.UserRepository,
	problemRepo repository.ProblemRepository,
	prRepo repository.PullRequestRepository,
	cache RankingCache,
) *RankingService {
	return &RankingService{
		userRepo:    userRepo,
		problemRepo: problemRepo,
		prRepo:      prRepo,
		cache:       cache,
	}
}

// GetRanking joins the three collections in memory and totals points per
// user. Only reviewed PRs count; each contributes
// bonus_points + base_points * multiplier of its assigned problem. Entries
// keep the user listing order.
func (s *RankingService) GetRanking(ctx context.Context) ([]model.RankingEntry, error) {
	if s.cache != nil {
		entries, err := s.cache.GetRanking(ctx)
		if err != nil {
			log.Printf("WARN: ranking cache read failed: %v", err)
		} else if entries != nil {
			return entries, nil
		}
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	problems, err := s.problemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	prs, err := s.prRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	reviewed := make([]model.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr.Reviewed {
			reviewed = append(reviewed, pr)
		}
	}

	entries := make([]model.RankingEntry, 0, len(users))
	for _, user := range users {
		entry := model.RankingEntry{
			Nickname: user.Nickname,
			Name:     user.Name,
			Surname:  user.Surname,
			Points:   0,
		}
		for _, pr := range reviewed {
			if pr.Nickname != user.Nickname {
				continue
			}
			problem, ok := findProblem(problems, pr.ProblemID)
			if !ok {
				// Unassigned or dangling problem reference: contributes
				// nothing. Dangling ones indicate a review mistake.
				if pr.ProblemID != "" {
					log.Printf("WARN: pr %s references unknown problem %q, skipped in ranking", pr.PRID, pr.ProblemID)
				}
				continue
			}
			entry.Points += pr.BonusPoints + problem.BasePoints*problem.Multiplier
		}
		entries = append(entries, entry)
	}

	if s.cache != nil {
		if err := s.cache.SetRanking(ctx, entries); err != nil {
			log.Printf("WARN: ranking cache write failed: %v", err)
		}
	}
	return entries, nil
}

func findProblem(problems []model.Problem, problemID string) (*model.Problem, bool) {
	if problemID == "" {
		return nil, false
	}
	for i := range problems {
		if problems[i].ProblemID == problemID {
			return &problems[i], true
		}
	}
	return nil, false
}
