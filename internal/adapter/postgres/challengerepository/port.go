package challengerepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/domain"
	querybuilder "gitlab.com/golf-2025.net/internal/utils"
)

var _ secondary.ChallengeRepository = &challengeRepo{}

type challengeRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.ChallengeRepository {
	return &challengeRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (c challengeRepo) GetByID(ctx context.Context, id int64) (*domain.Challenge, error) {
	tbl := domain.GetChallengeTable()
	query, args := querybuilder.NewQueryBuilder(c.schema).
		Select(tbl.ID, tbl.Name, tbl.Judge, tbl.Author).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.ID), id).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var challenge domain.Challenge
	err := c.db.GetContext(ctx, &challenge, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		c.logger.Error("Failed to get challenge", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return &challenge, nil
}
