package service

import (
	"context"
	"fmt"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"
)

// In-memory repository fakes. Slices keep insertion order, matching the
// created_at ordering of the pg implementations.

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Nickname == user.Nickname {
			return fmt.Errorf("user present: %w", common.ErrConflict)
		}
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByNickname(ctx context.Context, nickname string) (*model.User, error) {
	for _, u := range f.users {
		if u.Nickname == nickname {
			user := u
			return &user, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	return append([]model.User{}, f.users...), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	for i := range f.users {
		if f.users[i].Nickname == user.Nickname {
			f.users[i].Name = user.Name
			f.users[i].Surname = user.Surname
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, nickname string) error {
	for i := range f.users {
		if f.users[i].Nickname == nickname {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeProblemRepo struct {
	problems []model.Problem
}

func (f *fakeProblemRepo) Create(ctx context.Context, problem *model.Problem) error {
	for _, p := range f.problems {
		if p.ProblemID == problem.ProblemID {
			return fmt.Errorf("problem present: %w", common.ErrConflict)
		}
	}
	f.problems = append(f.problems, *problem)
	return nil
}

func (f *fakeProblemRepo) FindByProblemID(ctx context.Context, problemID string) (*model.Problem, error) {
	for _, p := range f.problems {
		if p.ProblemID == problemID {
			problem := p
			return &problem, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeProblemRepo) List(ctx context.Context) ([]model.Problem, error) {
	return append([]model.Problem{}, f.problems...), nil
}

func (f *fakeProblemRepo) Update(ctx context.Context, problem *model.Problem) error {
	for i := range f.problems {
		if f.problems[i].ProblemID == problem.ProblemID {
			f.problems[i] = *problem
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeProblemRepo) Delete(ctx context.Context, problemID string) error {
	for i := range f.problems {
		if f.problems[i].ProblemID == problemID {
			f.problems = append(f.problems[:i], f.problems[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type fakePullRequestRepo struct {
	prs []model.PullRequest
}

func (f *fakePullRequestRepo) Create(ctx context.Context, pr *model.PullRequest) error {
	for _, p := range f.prs {
		if p.PRID == pr.PRID {
			return fmt.Errorf("pr present: %w", common.ErrConflict)
		}
	}
	f.prs = append(f.prs, *pr)
	return nil
}

func (f *fakePullRequestRepo) FindByPRID(ctx context.Context, prID string) (*model.PullRequest, error) {
	for _, p := range f.prs {
		if p.PRID == prID {
			pr := p
			return &pr, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakePullRequestRepo) List(ctx context.Context) ([]model.PullRequest, error) {
	return append([]model.PullRequest{}, f.prs...), nil
}

func (f *fakePullRequestRepo) Update(ctx context.Context, pr *model.PullRequest) error {
	for i := range f.prs {
		if f.prs[i].PRID == pr.PRID {
			f.prs[i] = *pr
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakePullRequestRepo) Delete(ctx context.Context, prID string) error {
	for i := range f.prs {
		if f.prs[i].PRID == prID {
			f.prs = append(f.prs[:i], f.prs[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

// fakeRankingCache records calls; Get serves entries only when primed.
type fakeRankingCache struct {
	entries       []model.RankingEntry
	sets          int
	invalidations int
}

func (f *fakeRankingCache) GetRanking(ctx context.Context) ([]model.RankingEntry, error) {
	return f.entries, nil
}

func (f *fakeRankingCache) SetRanking(ctx context.Context, entries []model.RankingEntry) error {
	f.entries = entries
	f.sets++
	return nil
}

func (f *fakeRankingCache) InvalidateRanking(ctx context.Context) error {
	f.entries = nil
	f.invalidations++
	return nil
}
