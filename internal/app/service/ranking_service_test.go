package service

import (
	"context"
	"testing"
	"time"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingService_UserWithoutReviewedPRsScoresZero(t *testing.T) {
	svc := NewRankingService(
		&fakeUserRepo{users: []model.User{{Nickname: "mrossi", Name: "Mario", Surname: "Rossi"}}},
		&fakeProblemRepo{},
		&fakePullRequestRepo{},
		nil,
	)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].Points)
}

func TestRankingService_PointsFormula(t *testing.T) {
	svc := NewRankingService(
		&fakeUserRepo{users: []model.User{{Nickname: "mrossi", Name: "Mario", Surname: "Rossi"}}},
		&fakeProblemRepo{problems: []model.Problem{
			{ProblemID: "two-sum", BasePoints: 10, Multiplier: 2},
		}},
		&fakePullRequestRepo{prs: []model.PullRequest{
			{PRID: "17", ProblemID: "two-sum", Nickname: "mrossi", BonusPoints: 5, Reviewed: true},
		}},
		nil,
	)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 25.0, entries[0].Points) // 5 + 10*2
}

func TestRankingService_UnreviewedPRsContributeNothing(t *testing.T) {
	svc := NewRankingService(
		&fakeUserRepo{users: []model.User{{Nickname: "mrossi"}}},
		&fakeProblemRepo{problems: []model.Problem{
			{ProblemID: "two-sum", BasePoints: 100, Multiplier: 10},
		}},
		&fakePullRequestRepo{prs: []model.PullRequest{
			{PRID: "17", ProblemID: "two-sum", Nickname: "mrossi", BonusPoints: 50, Reviewed: false},
		}},
		nil,
	)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].Points)
}

func TestRankingService_UnassignedAndDanglingProblemsSkipped(t *testing.T) {
	svc := NewRankingService(
		&fakeUserRepo{users: []model.User{{Nickname: "mrossi"}}},
		&fakeProblemRepo{problems: []model.Problem{
			{ProblemID: "two-sum", BasePoints: 10, Multiplier: 2},
		}},
		&fakePullRequestRepo{prs: []model.PullRequest{
			{PRID: "1", ProblemID: "", Nickname: "mrossi", BonusPoints: 3, Reviewed: true},
			{PRID: "2", ProblemID: "deleted-problem", Nickname: "mrossi", BonusPoints: 4, Reviewed: true},
			{PRID: "3", ProblemID: "two-sum", Nickname: "mrossi", Reviewed: true},
		}},
		nil,
	)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 20.0, entries[0].Points) // only the resolvable PR counts
}

func TestRankingService_KeepsUserListingOrder(t *testing.T) {
	svc := NewRankingService(
		&fakeUserRepo{users: []model.User{
			{Nickname: "zeta"},
			{Nickname: "alpha"},
			{Nickname: "mid"},
		}},
		&fakeProblemRepo{problems: []model.Problem{
			{ProblemID: "two-sum", BasePoints: 10, Multiplier: 1},
		}},
		&fakePullRequestRepo{prs: []model.PullRequest{
			{PRID: "1", ProblemID: "two-sum", Nickname: "alpha", Reviewed: true},
		}},
		nil,
	)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// No sorting by score: listing order wins even though alpha has points.
	assert.Equal(t, "zeta", entries[0].Nickname)
	assert.Equal(t, "alpha", entries[1].Nickname)
	assert.Equal(t, "mid", entries[2].Nickname)
	assert.Equal(t, 10.0, entries[1].Points)
}

func TestRankingService_CacheHitSkipsRecomputation(t *testing.T) {
	cached := []model.RankingEntry{{Nickname: "cached", Points: 99}}
	cache := &fakeRankingCache{entries: cached}

	svc := NewRankingService(
		&fakeUserRepo{users: []model.User{{Nickname: "mrossi"}}},
		&fakeProblemRepo{},
		&fakePullRequestRepo{},
		cache,
	)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, entries)
	assert.Equal(t, 0, cache.sets)
}

func TestRankingService_CacheMissComputesAndStores(t *testing.T) {
	cache := &fakeRankingCache{}
	mergeTime := time.Date(2021, 10, 5, 12, 0, 0, 0, time.UTC)

	svc := NewRankingService(
		&fakeUserRepo{users: []model.User{{Nickname: "mrossi", Name: "Mario", Surname: "Rossi"}}},
		&fakeProblemRepo{problems: []model.Problem{
			{ProblemID: "two-sum", BasePoints: 10, Multiplier: 2},
		}},
		&fakePullRequestRepo{prs: []model.PullRequest{
			{PRID: "17", ProblemID: "two-sum", Nickname: "mrossi", MergeTime: mergeTime, Reviewed: true},
		}},
		cache,
	)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 20.0, entries[0].Points)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, entries, cache.entries)
}
