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

type ProblemRepository interface {
	Create(ctx context.Context, problem *model.Problem) error
	FindByProblemID(ctx context.Context, problemID string) (*model.Problem, error)
	List(ctx context.Context) ([]model.Problem, error)
	Update(ctx context.Context, problem *model.Problem) error
	Delete(ctx context.Context, problemID string) error
}

type pgProblemRepository struct {
	db *sql.DB
}

func NewPgProblemRepository(db *sql.DB) ProblemRepository {
	return &pgProblemRepository{db: db}
}

func (r *pgProblemRepository) Create(ctx context.Context, problem *model.Problem) error {
	query := `INSERT INTO problems (id, problem_id, name, level_name, base_points, multiplier, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		problem.ID, problem.ProblemID, problem.Name, problem.LevelName,
		problem.BasePoints, problem.Multiplier, problem.Description,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("problem present: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgProblemRepository.Create: %w", err)
	}
	return nil
}

func (r *pgProblemRepository) FindByProblemID(ctx context.Context, problemID string) (*model.Problem, error) {
	query := `SELECT id, problem_id, name, level_name, base_points, multiplier, description
	          FROM problems WHERE problem_id = $1`
	problem := &model.Problem{}
	err := r.db.QueryRowContext(ctx, query, problemID).Scan(
		&problem.ID, &problem.ProblemID, &problem.Name, &problem.LevelName,
		&problem.BasePoints, &problem.Multiplier, &problem.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProblemRepository.FindByProblemID: %w", err)
	}
	return problem, nil
}

func (r *pgProblemRepository) List(ctx context.Context) ([]model.Problem, error) {
	query := `SELECT id, problem_id, name, level_name, base_points, multiplier, description
	          FROM problems ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgProblemRepository.List: %w", err)
	}
	defer rows.Close()

	problems := []model.Problem{}
	for rows.Next() {
		var problem model.Problem
		if err := rows.Scan(
			&problem.ID, &problem.ProblemID, &problem.Name, &problem.LevelName,
			&problem.BasePoints, &problem.Multiplier, &problem.Description,
		); err != nil {
			return nil, fmt.Errorf("pgProblemRepository.List scan: %w", err)
		}
		problems = append(problems, problem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.List rows: %w", err)
	}
	return problems, nil
}

func (r *pgProblemRepository) Update(ctx context.Context, problem *model.Problem) error {
	query := `UPDATE problems SET name = $1, level_name = $2, base_points = $3, multiplier = $4, description = $5
	          WHERE problem_id = $6`
	res, err := r.db.ExecContext(ctx, query,
		problem.Name, problem.LevelName, problem.BasePoints, problem.Multiplier,
		problem.Description, problem.ProblemID,
	)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgProblemRepository) Delete(ctx context.Context, problemID string) error {
	query := `DELETE FROM problems WHERE problem_id = $1`
	res, err := r.db.ExecContext(ctx, query, problemID)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
