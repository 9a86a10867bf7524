package languagerepository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/golf-2025.net/internal/adapter/logging"
	"gitlab.com/golf-2025.net/internal/domain"
)

var (
	created = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cols    = []string{"name", "display_name", "latest_version", "active", "created_at", "updated_at"}
)

func newRepo(t *testing.T) (*LanguageRepository, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	repo := New(sqlx.NewDb(mockDB, "postgres"), logging.NewNopLogger(), "public")
	repo.now = func() time.Time { return created }
	return repo, mock
}

func TestLanguageRepository_Get(t *testing.T) {
	selectSQL := regexp.QuoteMeta("SELECT name, display_name, latest_version, active, created_at, updated_at " +
		"FROM public.languages WHERE name = $1")

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(selectSQL).WithArgs("python").WillReturnRows(
			sqlmock.NewRows(cols).AddRow("python", "Python", "3.12", true, created, created))

		got, err := repo.Get(context.Background(), "python")
		require.NoError(t, err)
		assert.Equal(t, &domain.Language{
			Name: "python", DisplayName: "Python", LatestVersion: "3.12", Active: true,
			CreatedAt: created, UpdatedAt: created,
		}, got)
	})

	t.Run("unknown", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(selectSQL).WithArgs("cobol").WillReturnRows(sqlmock.NewRows(cols))

		got, err := repo.Get(context.Background(), "cobol")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(selectSQL).WillReturnError(errors.New("bad connection"))

		_, err := repo.Get(context.Background(), "python")
		assert.Error(t, err)
	})
}

func TestLanguageRepository_ListActive(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM public.languages WHERE active = $1 ORDER BY name ASC")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("go", "Go", "1.23", true, created, created).
			AddRow("python", "Python", "3.12", true, created, created))

	got, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "go", got[0].Name)
	assert.Equal(t, "3.12", got[1].LatestVersion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLanguageRepository_Save(t *testing.T) {
	upsertSQL := regexp.QuoteMeta("INSERT INTO public.languages (name, display_name, latest_version, active, created_at, updated_at) " +
		"VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (name) DO UPDATE SET display_name = EXCLUDED.display_name, " +
		"latest_version = EXCLUDED.latest_version, active = EXCLUDED.active, updated_at = EXCLUDED.updated_at")

	testCases := []struct {
		name     string
		language *domain.Language
		mock     func(mock sqlmock.Sqlmock)
		wantErr  bool
	}{
		{
			name:     "upserted",
			language: &domain.Language{Name: "go", LatestVersion: "1.23", Active: true},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertSQL).
					WithArgs("go", "go", "1.23", true, created, created).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:     "missing name",
			language: &domain.Language{LatestVersion: "1.23"},
			mock:     func(sqlmock.Sqlmock) {},
			wantErr:  true,
		},
		{
			name:     "missing version",
			language: &domain.Language{Name: "go"},
			mock:     func(sqlmock.Sqlmock) {},
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tc.mock(mock)

			err := repo.Save(context.Background(), tc.language)
			assert.Equal(t, tc.wantErr, err != nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
