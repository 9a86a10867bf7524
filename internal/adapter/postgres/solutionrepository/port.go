package solutionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/domain"
	"gitlab.com/golf-2025.net/internal/static/errs"
	querybuilder "gitlab.com/golf-2025.net/internal/utils"
)

// uniqueViolation is the Postgres error code raised by the (author, challenge, language) constraint
const uniqueViolation = "23505"

var _ secondary.SolutionRepository = (*SolutionRepository)(nil)

// SolutionRepository implements the SolutionRepository interface with PostgreSQL
type SolutionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// New creates a new PostgreSQL solution repository
func New(db *sqlx.DB, logger primary.Logger, schema string) *SolutionRepository {
	return &SolutionRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// Get retrieves the solution stored for a key, nil when there is none
func (r *SolutionRepository) Get(ctx context.Context, key domain.TripleKey) (*domain.Solution, error) {
	tbl := domain.GetSolutionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.Columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.Author), key.Author).
		And(fmt.Sprintf("%s = ?", tbl.Challenge), key.Challenge).
		And(fmt.Sprintf("%s = ?", tbl.Language), key.Language).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var solution domain.Solution
	if err := r.db.GetContext(ctx, &solution, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get solution", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	return &solution, nil
}

// Insert stores a first solution; errs.ErrSolutionConflict when the key is already taken
func (r *SolutionRepository) Insert(ctx context.Context, s *domain.Solution) error {
	tbl := domain.GetSolutionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(tbl.Columns()...).
		Into(tbl.TableName()).
		Values(
			s.ID, s.Author, s.Challenge, s.Language, s.LanguageVersion, s.Code,
			s.Score, s.Valid, s.ValidatedAt, s.LastImprovedAt, s.Revision,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.ErrSolutionConflict
		}
		r.logger.Error("Failed to insert solution", "key", s.Key(), "error", err)
		return fmt.Errorf("failed to insert solution: %w", err)
	}

	return nil
}

// UpdateByKey overwrites the solution of key if it is still at revision.
// errs.ErrSolutionNotFound means another writer got there first.
func (r *SolutionRepository) UpdateByKey(ctx context.Context, key domain.TripleKey, revision int64, next *domain.Solution) error {
	tbl := domain.GetSolutionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Update(tbl.TableName(), querybuilder.UpdateData{
			querybuilder.Set(tbl.LanguageVersion, next.LanguageVersion),
			querybuilder.Set(tbl.Code, next.Code),
			querybuilder.Set(tbl.Score, next.Score),
			querybuilder.Set(tbl.Valid, next.Valid),
			querybuilder.Set(tbl.ValidatedAt, next.ValidatedAt),
			querybuilder.Set(tbl.LastImprovedAt, next.LastImprovedAt),
			querybuilder.Set(tbl.Revision, querybuilder.Raw(tbl.Revision+" + 1")),
		}).
		Where(fmt.Sprintf("%s = ?", tbl.Author), key.Author).
		And(fmt.Sprintf("%s = ?", tbl.Challenge), key.Challenge).
		And(fmt.Sprintf("%s = ?", tbl.Language), key.Language).
		And(fmt.Sprintf("%s = ?", tbl.Revision), revision).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update solution", "key", key, "error", err)
		return fmt.Errorf("failed to update solution: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Error checking rows affected", "error", err)
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errs.ErrSolutionNotFound
	}

	next.Revision = revision + 1
	return nil
}

// ListValid retrieves every valid solution of a challenge in a language
func (r *SolutionRepository) ListValid(ctx context.Context, challenge int64, language string) ([]*domain.Solution, error) {
	tbl := domain.GetSolutionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.Columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.Challenge), challenge).
		And(fmt.Sprintf("%s = ?", tbl.Language), language).
		And(fmt.Sprintf("%s = ?", tbl.Valid), true).
		OrderBy(tbl.Score, true).
		OrderBy(tbl.LastImprovedAt, true).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var solutions []*domain.Solution
	if err := r.db.SelectContext(ctx, &solutions, query, args...); err != nil {
		r.logger.Error("Failed to list valid solutions", "challenge", challenge, "language", language, "error", err)
		return nil, fmt.Errorf("failed to list valid solutions: %w", err)
	}

	return solutions, nil
}

// ListStale retrieves valid solutions validated before cutoff or judged with an outdated language version.
// Postponed solutions wait until their revalidate_after has passed and then queue behind the rest.
func (r *SolutionRepository) ListStale(ctx context.Context, cutoff, now time.Time, limit int) ([]*domain.Solution, error) {
	tbl := domain.GetSolutionTable()
	langTbl := domain.GetLanguageTable()

	cols := tbl.Columns()
	for i, col := range cols {
		cols[i] = "s." + col
	}

	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(cols...).
		From(tbl.TableName()+" s").
		Join(querybuilder.JoinTypeInner, langTbl.TableName(), "l",
			fmt.Sprintf("l.%s = s.%s", langTbl.Name, tbl.Language)).
		Where(fmt.Sprintf("s.%s = ?", tbl.Valid), true).
		And(fmt.Sprintf("s.%s <= ?", tbl.RevalidateAfter), now).
		AndGroup(func(qb querybuilder.QueryBuilder) {
			qb.Where(fmt.Sprintf("s.%s < ?", tbl.ValidatedAt), cutoff).
				Or(fmt.Sprintf("s.%s <> l.%s", tbl.LanguageVersion, langTbl.LatestVersion))
		}).
		OrderBy("s."+tbl.RevalidateAfter, true).
		OrderBy("s."+tbl.ValidatedAt, true).
		Limit(limit).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var solutions []*domain.Solution
	if err := r.db.SelectContext(ctx, &solutions, query, args...); err != nil {
		r.logger.Error("Failed to list stale solutions", "cutoff", cutoff, "error", err)
		return nil, fmt.Errorf("failed to list stale solutions: %w", err)
	}

	return solutions, nil
}

// Postpone moves a solution back in the revalidation queue without touching its revision
func (r *SolutionRepository) Postpone(ctx context.Context, key domain.TripleKey, revision int64, until time.Time) error {
	tbl := domain.GetSolutionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Update(tbl.TableName(), querybuilder.UpdateData{
			querybuilder.Set(tbl.RevalidateAfter, until),
		}).
		Where(fmt.Sprintf("%s = ?", tbl.Author), key.Author).
		And(fmt.Sprintf("%s = ?", tbl.Challenge), key.Challenge).
		And(fmt.Sprintf("%s = ?", tbl.Language), key.Language).
		And(fmt.Sprintf("%s = ?", tbl.Revision), revision).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to postpone solution", "key", key, "error", err)
		return fmt.Errorf("failed to postpone solution: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Error checking rows affected", "error", err)
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errs.ErrSolutionNotFound
	}
	return nil
}
