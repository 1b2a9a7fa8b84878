package service

import (
	"context"
	"testing"
	"time"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPullRequestFixture() (*PullRequestService, *fakeUserRepo, *fakeProblemRepo, *fakePullRequestRepo) {
	userRepo := &fakeUserRepo{users: []model.User{
		{ID: "u1", Nickname: "mrossi", Name: "Mario", Surname: "Rossi"},
	}}
	problemRepo := &fakeProblemRepo{problems: []model.Problem{
		{ID: "p1", ProblemID: "two-sum", Name: "Two Sum", LevelName: "easy", BasePoints: 10, Multiplier: 2},
	}}
	prRepo := &fakePullRequestRepo{}
	svc := NewPullRequestService(prRepo, userRepo, problemRepo, nil)
	return svc, userRepo, problemRepo, prRepo
}

func TestPullRequestService_CreateStampsMergeTime(t *testing.T) {
	svc, _, _, _ := newPullRequestFixture()
	now := time.Date(2021, 10, 5, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	pr, err := svc.CreatePullRequest(context.Background(), CreatePullRequestRequest{
		ID:          "17",
		ProblemID:   "two-sum",
		Nickname:    "mrossi",
		BonusPoints: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, now, pr.MergeTime)
	assert.False(t, pr.Reviewed)
	assert.Equal(t, model.ReviewedAtSentinel, pr.ReviewedAt)
}

func TestPullRequestService_CreateValidatesReferences(t *testing.T) {
	svc, _, _, prRepo := newPullRequestFixture()
	ctx := context.Background()

	_, err := svc.CreatePullRequest(ctx, CreatePullRequestRequest{ID: "17", ProblemID: "two-sum", Nickname: "nobody"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorContains(t, err, "user not found")

	_, err = svc.CreatePullRequest(ctx, CreatePullRequestRequest{ID: "17", ProblemID: "missing", Nickname: "mrossi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorContains(t, err, "problem not found")

	assert.Empty(t, prRepo.prs)
}

func TestPullRequestService_CreateDuplicate(t *testing.T) {
	svc, _, _, _ := newPullRequestFixture()
	ctx := context.Background()

	_, err := svc.CreatePullRequest(ctx, CreatePullRequestRequest{ID: "17", ProblemID: "two-sum", Nickname: "mrossi"})
	require.NoError(t, err)

	_, err = svc.CreatePullRequest(ctx, CreatePullRequestRequest{ID: "17", ProblemID: "two-sum", Nickname: "mrossi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestPullRequestService_UpdateAlwaysStampsReviewedAt(t *testing.T) {
	svc, _, _, _ := newPullRequestFixture()
	ctx := context.Background()

	_, err := svc.CreatePullRequest(ctx, CreatePullRequestRequest{ID: "17", ProblemID: "two-sum", Nickname: "mrossi"})
	require.NoError(t, err)

	reviewTime := time.Date(2021, 10, 6, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return reviewTime }

	// Edit without touching the reviewed flag still counts as a review touch.
	updated, err := svc.UpdatePullRequest(ctx, "17", UpdatePullRequestRequest{
		ProblemID:    "two-sum",
		BonusComment: "nice work",
	})
	require.NoError(t, err)
	assert.False(t, updated.Reviewed)
	assert.Equal(t, reviewTime, updated.ReviewedAt)

	laterTime := reviewTime.Add(time.Hour)
	svc.now = func() time.Time { return laterTime }

	updated, err = svc.UpdatePullRequest(ctx, "17", UpdatePullRequestRequest{
		ProblemID:   "two-sum",
		BonusPoints: 5,
		Reviewed:    true,
	})
	require.NoError(t, err)
	assert.True(t, updated.Reviewed)
	assert.Equal(t, laterTime, updated.ReviewedAt)
}

func TestPullRequestService_UpdateValidatesProblemReference(t *testing.T) {
	svc, _, _, _ := newPullRequestFixture()
	ctx := context.Background()

	_, err := svc.CreatePullRequest(ctx, CreatePullRequestRequest{ID: "17", ProblemID: "two-sum", Nickname: "mrossi"})
	require.NoError(t, err)

	_, err = svc.UpdatePullRequest(ctx, "17", UpdatePullRequestRequest{ProblemID: "missing", Reviewed: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, "problem not found")

	_, err = svc.UpdatePullRequest(ctx, "404", UpdatePullRequestRequest{ProblemID: "two-sum"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPullRequestService_Delete(t *testing.T) {
	svc, _, _, _ := newPullRequestFixture()
	ctx := context.Background()

	_, err := svc.DeletePullRequest(ctx, "17")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.CreatePullRequest(ctx, CreatePullRequestRequest{ID: "17", ProblemID: "two-sum", Nickname: "mrossi"})
	require.NoError(t, err)

	deleted, err := svc.DeletePullRequest(ctx, "17")
	require.NoError(t, err)
	assert.Equal(t, "17", deleted.PRID)

	_, err = svc.GetPullRequest(ctx, "17")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
