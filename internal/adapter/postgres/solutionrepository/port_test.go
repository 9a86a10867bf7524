package solutionrepository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/golf-2025.net/internal/adapter/logging"
	"gitlab.com/golf-2025.net/internal/domain"
	"gitlab.com/golf-2025.net/internal/static/errs"
)

var (
	solutionID = uuid.MustParse("5f1c9d7e-2b1a-4c3e-9d8f-7a6b5c4d3e2f")
	validated  = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	improved   = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	key        = domain.TripleKey{Author: 7, Challenge: 3, Language: "go"}
	columns    = domain.GetSolutionTable().Columns()
)

func newRepo(t *testing.T) (*SolutionRepository, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return New(sqlx.NewDb(mockDB, "postgres"), logging.NewNopLogger(), "public"), mock
}

func solution() *domain.Solution {
	return &domain.Solution{
		ID:              solutionID,
		Author:          7,
		Challenge:       3,
		Language:        "go",
		LanguageVersion: "1.23",
		Code:            "package main",
		Score:           12,
		Valid:           true,
		ValidatedAt:     validated,
		LastImprovedAt:  improved,
		Revision:        4,
	}
}

func solutionRow(rows *sqlmock.Rows, s *domain.Solution) *sqlmock.Rows {
	return rows.AddRow(
		s.ID.String(), s.Author, s.Challenge, s.Language, s.LanguageVersion, s.Code,
		s.Score, s.Valid, s.ValidatedAt, s.LastImprovedAt, s.Revision,
	)
}

func TestSolutionRepository_Get(t *testing.T) {
	selectSQL := regexp.QuoteMeta("SELECT id, author, challenge, language, language_version, code, score, valid, " +
		"validated_at, last_improved_date, revision FROM public.solutions " +
		"WHERE author = $1 AND challenge = $2 AND language = $3")

	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Solution
		wantErr bool
	}{
		{
			name: "found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs(int64(7), int64(3), "go").
					WillReturnRows(solutionRow(sqlmock.NewRows(columns), solution()))
			},
			want: solution(),
		},
		{
			name: "no history",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs(int64(7), int64(3), "go").
					WillReturnRows(sqlmock.NewRows(columns))
			},
		},
		{
			name: "database error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tc.mock(mock)

			got, err := repo.Get(context.Background(), key)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSolutionRepository_Insert(t *testing.T) {
	insertSQL := regexp.QuoteMeta("INSERT INTO public.solutions (id, author, challenge, language, language_version, " +
		"code, score, valid, validated_at, last_improved_date, revision) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)")

	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "inserted",
			mock: func(mock sqlmock.Sqlmock) {
				s := solution()
				mock.ExpectExec(insertSQL).
					WithArgs(s.ID, s.Author, s.Challenge, s.Language, s.LanguageVersion, s.Code,
						s.Score, s.Valid, s.ValidatedAt, s.LastImprovedAt, s.Revision).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "key already taken",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: errs.ErrSolutionConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tc.mock(mock)

			err := repo.Insert(context.Background(), solution())
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("database error is not a conflict", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(insertSQL).WillReturnError(errors.New("disk full"))

		err := repo.Insert(context.Background(), solution())
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrSolutionConflict)
	})
}

func TestSolutionRepository_UpdateByKey(t *testing.T) {
	updateSQL := regexp.QuoteMeta("UPDATE public.solutions SET language_version = $1, code = $2, score = $3, " +
		"valid = $4, validated_at = $5, last_improved_date = $6, revision = revision + 1 " +
		"WHERE author = $7 AND challenge = $8 AND language = $9 AND revision = $10")

	testCases := []struct {
		name         string
		mock         func(mock sqlmock.Sqlmock)
		wantErr      error
		wantRevision int64
	}{
		{
			name: "updated",
			mock: func(mock sqlmock.Sqlmock) {
				s := solution()
				mock.ExpectExec(updateSQL).
					WithArgs(s.LanguageVersion, s.Code, s.Score, s.Valid, s.ValidatedAt, s.LastImprovedAt,
						int64(7), int64(3), "go", int64(4)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantRevision: 5,
		},
		{
			name: "revision moved on",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:      errs.ErrSolutionNotFound,
			wantRevision: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tc.mock(mock)

			next := solution()
			err := repo.UpdateByKey(context.Background(), key, 4, next)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRevision, next.Revision)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSolutionRepository_ListValid(t *testing.T) {
	repo, mock := newRepo(t)

	second := solution()
	second.Author = 9
	second.Score = 20
	mock.ExpectQuery(regexp.QuoteMeta("FROM public.solutions WHERE challenge = $1 AND language = $2 AND valid = $3 "+
		"ORDER BY score ASC, last_improved_date ASC")).
		WithArgs(int64(3), "go", true).
		WillReturnRows(solutionRow(solutionRow(sqlmock.NewRows(columns), solution()), second))

	got, err := repo.ListValid(context.Background(), 3, "go")
	require.NoError(t, err)
	assert.Equal(t, []*domain.Solution{solution(), second}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSolutionRepository_ListStale(t *testing.T) {
	repo, mock := newRepo(t)

	cutoff := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM public.solutions s INNER JOIN public.languages l ON l.name = s.language "+
		"WHERE s.valid = $1 AND s.revalidate_after <= $2 "+
		"AND (s.validated_at < $3 OR s.language_version <> l.latest_version) "+
		"ORDER BY s.revalidate_after ASC, s.validated_at ASC LIMIT $4")).
		WithArgs(true, now, cutoff, 50).
		WillReturnRows(solutionRow(sqlmock.NewRows(columns), solution()))

	got, err := repo.ListStale(context.Background(), cutoff, now, 50)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Solution{solution()}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSolutionRepository_Postpone(t *testing.T) {
	postponeSQL := regexp.QuoteMeta("UPDATE public.solutions SET revalidate_after = $1 " +
		"WHERE author = $2 AND challenge = $3 AND language = $4 AND revision = $5")
	until := time.Date(2026, 5, 1, 1, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "postponed",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(postponeSQL).
					WithArgs(until, int64(7), int64(3), "go", int64(4)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "revision moved on",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(postponeSQL).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: errs.ErrSolutionNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tc.mock(mock)

			err := repo.Postpone(context.Background(), key, 4, until)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
