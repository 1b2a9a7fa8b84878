package model

import "time"

// ReviewedAtSentinel marks a pull request that has never been reviewed.
var ReviewedAtSentinel = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// PullRequest is a merged contest submission. ProblemID stays empty until a
// reviewer assigns the PR to a problem; only reviewed PRs count toward the
// ranking.
type PullRequest struct {
	ID           string    `json:"-"`
	PRID         string    `json:"id"`
	ProblemID    string    `json:"problem_id"`
	Nickname     string    `json:"nickname"`
	BonusPoints  float64   `json:"bonus_points"`
	BonusComment string    `json:"bonus_comment"`
	MergeTime    time.Time `json:"merge_time"`
	Reviewed     bool      `json:"reviewed"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}
