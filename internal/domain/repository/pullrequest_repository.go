package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type PullRequestRepository interface {
	Create(ctx context.Context, pr *model.PullRequest) error
	FindByPRID(ctx context.Context, prID string) (*model.PullRequest, error)
	List(ctx context.Context) ([]model.PullRequest, error)
	Update(ctx context.Context, pr *model.PullRequest) error
	Delete(ctx context.Context, prID string) error
}

type pgPullRequestRepository struct {
	db *sql.DB
}

func NewPgPullRequestRepository(db *sql.DB) PullRequestRepository {
	return &pgPullRequestRepository{db: db}
}

func (r *pgPullRequestRepository) Create(ctx context.Context, pr *model.PullRequest) error {
	query := `INSERT INTO pull_requests (id, pr_id, problem_id, nickname, bonus_points, bonus_comment, merge_time, reviewed, reviewed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		pr.ID, pr.PRID, pr.ProblemID, pr.Nickname, pr.BonusPoints,
		pr.BonusComment, pr.MergeTime, pr.Reviewed, pr.ReviewedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("pr present: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgPullRequestRepository.Create: %w", err)
	}
	return nil
}

func (r *pgPullRequestRepository) FindByPRID(ctx context.Context, prID string) (*model.PullRequest, error) {
	query := `SELECT id, pr_id, problem_id, nickname, bonus_points, bonus_comment, merge_time, reviewed, reviewed_at
	          FROM pull_requests WHERE pr_id = $1`
	pr := &model.PullRequest{}
	err := r.db.QueryRowContext(ctx, query, prID).Scan(
		&pr.ID, &pr.PRID, &pr.ProblemID, &pr.Nickname, &pr.BonusPoints,
		&pr.BonusComment, &pr.MergeTime, &pr.Reviewed, &pr.ReviewedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgPullRequestRepository.FindByPRID: %w", err)
	}
	return pr, nil
}

func (r *pgPullRequestRepository) List(ctx context.Context) ([]model.PullRequest, error) {
	query := `SELECT id, pr_id, problem_id, nickname, bonus_points, bonus_comment, merge_time, reviewed, reviewed_at
	          FROM pull_requests ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgPullRequestRepository.List: %w", err)
	}
	defer rows.Close()

	prs := []model.PullRequest{}
	for rows.Next() {
		var pr model.PullRequest
		if err := rows.Scan(
			&pr.ID, &pr.PRID, &pr.ProblemID, &pr.Nickname, &pr.BonusPoints,
			&pr.BonusComment, &pr.MergeTime, &pr.Reviewed, &pr.ReviewedAt,
		); err != nil {
			return nil, fmt.Errorf("pgPullRequestRepository.List scan: %w", err)
		}
		prs = append(prs, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgPullRequestRepository.List rows: %w", err)
	}
	return prs, nil
}

func (r *pgPullRequestRepository) Update(ctx context.Context, pr *model.PullRequest) error {
	query := `UPDATE pull_requests SET problem_id = $1, bonus_points = $2, bonus_comment = $3, reviewed = $4, reviewed_at = $5
	          WHERE pr_id = $6`
	res, err := r.db.ExecContext(ctx, query,
		pr.ProblemID, pr.BonusPoints, pr.BonusComment, pr.Reviewed, pr.ReviewedAt, pr.PRID,
	)
	if err != nil {
		return fmt.Errorf("pgPullRequestRepository.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgPullRequestRepository) Delete(ctx context.Context, prID string) error {
	query := `DELETE FROM pull_requests WHERE pr_id = $1`
	res, err := r.db.ExecContext(ctx, query, prID)
	if err != nil {
		return fmt.Errorf("pgPullRequestRepository.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
