package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/repository"

	"github.com/google/uuid"
)

// githubTimeLayout is the merged_at format sent by GitHub: UTC, no
// fractional seconds.
const githubTimeLayout = "2006-01-02T15:04:05Z"

type WebhookService struct {
	userRepo repository.UserRepository
	prRepo   repository.PullRequestRepository
	cache    RankingCache

	githubRepo    string
	acceptedLabel string
	closedAction  string
}

func NewWebhookService(
	userRepo repository.UserRepository,
	prRepo repository.PullRequestRepository,
	cache RankingCache,
	githubRepo, acceptedLabel, closedAction string,
) *WebhookService {
	return &WebhookService{
		userRepo:      userRepo,
		prRepo:        prRepo,
		cache:         cache,
		githubRepo:    githubRepo,
		acceptedLabel: acceptedLabel,
		closedAction:  closedAction,
	}
}

// Event payload shapes, a subset of GitHub's pull_request event schema.
// Pointer fields distinguish "absent" from zero values so malformed
// deliveries can be told apart from legitimately empty ones.
type PullRequestEventPayload struct {
	Action      string            `json:"action"`
	PullRequest *PullRequestEvent `json:"pull_request"`
	Repository  *RepositoryEvent  `json:"repository"`
}

type PullRequestEvent struct {
	Number   *int          `json:"number"`
	State    *string       `json:"state"`
	Merged   bool          `json:"merged"`
	MergedAt *string       `json:"merged_at"`
	User     *AccountEvent `json:"user"`
	Labels   *[]LabelEvent `json:"labels"`
}

type AccountEvent struct {
	Login *string `json:"login"`
}

type LabelEvent struct {
	Name *string `json:"name"`
}

type RepositoryEvent struct {
	FullName *string `json:"full_name"`
}

// IngestOutcome is the result of one webhook delivery. Ignored deliveries
// carry a reason for the log; the HTTP response is identical either way so
// senders cannot probe validation rules.
type IngestOutcome struct {
	Accepted    bool
	Reason      string
	PullRequest *model.PullRequest
}

func ignored(reason string) *IngestOutcome {
	return &IngestOutcome{Accepted: false, Reason: reason}
}

// HandlePullRequestEvent runs the ingestion pipeline for an authenticated
// pull_request event. Errors are returned only for internal failures; every
// validation miss yields an Ignored outcome instead.
func (s *WebhookService) HandlePullRequestEvent(ctx context.Context, payload PullRequestEventPayload) (*IngestOutcome, error) {
	if reason, ok := checkShape(payload); !ok {
		return s.finish(ignored(reason)), nil
	}
	pr := payload.PullRequest

	accepted := false
	for _, label := range *pr.Labels {
		if label.Name == nil {
			return s.finish(ignored("label without a name")), nil
		}
		if *label.Name == s.acceptedLabel {
			accepted = true
		}
	}

	switch {
	case *payload.Repository.FullName != s.githubRepo:
		return s.finish(ignored("repository " + *payload.Repository.FullName + " is not the contest repository")), nil
	case !accepted:
		return s.finish(ignored("accepted label not present")), nil
	case !pr.Merged:
		return s.finish(ignored("pull request not merged")), nil
	case payload.Action != s.closedAction:
		return s.finish(ignored("action " + payload.Action + " is not " + s.closedAction)), nil
	}

	nickname := *pr.User.Login
	if _, err := s.userRepo.FindByNickname(ctx, nickname); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return s.finish(ignored("unknown user " + nickname)), nil
		}
		return nil, fmt.Errorf("looking up webhook user: %w", err)
	}

	prID := strconv.Itoa(*pr.Number)
	if _, err := s.prRepo.FindByPRID(ctx, prID); err == nil {
		// GitHub redelivers events; ingestion is idempotent per PR number.
		return s.finish(ignored("pr " + prID + " already registered")), nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("checking webhook pr existence: %w", err)
	}

	mergeTime, err := time.Parse(githubTimeLayout, *pr.MergedAt)
	if err != nil {
		return s.finish(ignored("unparseable merged_at " + *pr.MergedAt)), nil
	}

	record := &model.PullRequest{
		ID:           uuid.NewString(),
		PRID:         prID,
		ProblemID:    "", // assigned later during review
		Nickname:     nickname,
		BonusPoints:  0,
		BonusComment: "",
		MergeTime:    mergeTime,
		Reviewed:     false,
		ReviewedAt:   model.ReviewedAtSentinel,
	}
	if err := s.prRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("registering webhook pr: %w", err)
	}

	invalidateRanking(ctx, s.cache)
	log.Printf("Webhook registered pr %s for user %s", prID, nickname)
	return &IngestOutcome{Accepted: true, PullRequest: record}, nil
}

func (s *WebhookService) finish(outcome *IngestOutcome) *IngestOutcome {
	log.Printf("Webhook ignored: %s", outcome.Reason)
	return outcome
}

func checkShape(payload PullRequestEventPayload) (string, bool) {
	pr := payload.PullRequest
	switch {
	case pr == nil:
		return "missing pull_request", false
	case pr.Number == nil:
		return "missing pull_request.number", false
	case pr.State == nil:
		return "missing pull_request.state", false
	case pr.User == nil || pr.User.Login == nil:
		return "missing pull_request.user.login", false
	case pr.MergedAt == nil:
		return "missing pull_request.merged_at", false
	case pr.Labels == nil:
		return "missing pull_request.labels", false
	case payload.Repository == nil || payload.Repository.FullName == nil:
		return "missing repository.full_name", false
	}
	return "", true
}
