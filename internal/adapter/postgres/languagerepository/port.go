package languagerepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/domain"
	querybuilder "gitlab.com/golf-2025.net/internal/utils"
)

var _ secondary.LanguageRepository = (*LanguageRepository)(nil)

// LanguageRepository implements the LanguageRepository interface with PostgreSQL
type LanguageRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
	now    func() time.Time
}

// New creates a new PostgreSQL language repository
func New(db *sqlx.DB, logger primary.Logger, schema string) *LanguageRepository {
	return &LanguageRepository{
		db:     db,
		logger: logger,
		schema: schema,
		now:    time.Now,
	}
}

func columns(tbl domain.LanguageTable) []string {
	return []string{tbl.Name, tbl.DisplayName, tbl.LatestVersion, tbl.Active, tbl.CreatedAt, tbl.UpdatedAt}
}

// Get retrieves a language, nil when it is unknown
func (r *LanguageRepository) Get(ctx context.Context, name string) (*domain.Language, error) {
	tbl := domain.GetLanguageTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns(tbl)...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.Name), name).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var language domain.Language
	if err := r.db.GetContext(ctx, &language, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get language", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get language: %w", err)
	}

	return &language, nil
}

// ListActive retrieves all languages accepting submissions
func (r *LanguageRepository) ListActive(ctx context.Context) ([]*domain.Language, error) {
	tbl := domain.GetLanguageTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns(tbl)...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.Active), true).
		OrderBy(tbl.Name, true).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	languages := make([]*domain.Language, 0)
	if err := r.db.SelectContext(ctx, &languages, query, args...); err != nil {
		r.logger.Error("Failed to list active languages", "error", err)
		return nil, fmt.Errorf("failed to list active languages: %w", err)
	}

	return languages, nil
}

// Save inserts a language or updates its version and status
func (r *LanguageRepository) Save(ctx context.Context, language *domain.Language) error {
	// Validation
	if language.Name == "" {
		return fmt.Errorf("language name cannot be empty")
	}
	if language.LatestVersion == "" {
		return fmt.Errorf("language %s has no version", language.Name)
	}
	if language.DisplayName == "" {
		language.DisplayName = language.Name
	}

	// Set timestamps
	now := r.now()
	if language.CreatedAt.IsZero() {
		language.CreatedAt = now
	}
	language.UpdatedAt = now

	tbl := domain.GetLanguageTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(columns(tbl)...).
		Into(tbl.TableName()).
		Values(
			language.Name, language.DisplayName, language.LatestVersion,
			language.Active, language.CreatedAt, language.UpdatedAt,
		).
		OnConflict(tbl.Name).
		SetExclude(tbl.DisplayName, tbl.LatestVersion, tbl.Active, tbl.UpdatedAt).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save language", "name", language.Name, "error", err)
		return fmt.Errorf("failed to save language: %w", err)
	}

	r.logger.Info("Saved language", "name", language.Name, "version", language.LatestVersion, "active", language.Active)
	return nil
}
