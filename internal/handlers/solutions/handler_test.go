package solutions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.com/golf-2025.net/internal/adapter/crypto"
	"gitlab.com/golf-2025.net/internal/adapter/logging"
	"gitlab.com/golf-2025.net/internal/core/services/submission"
	submissionmocks "gitlab.com/golf-2025.net/internal/core/services/submission/mocks"
	"gitlab.com/golf-2025.net/internal/domain"
	"gitlab.com/golf-2025.net/internal/handlers"
	"gitlab.com/golf-2025.net/internal/static/errs"
)

var (
	jwtService = crypto.JWTServiceImpl{HMACSecretKey: "test-secret", TokenTTL: time.Hour}
	challenge  = &domain.Challenge{ID: 3, Name: "Fizz Buzz", Author: 1}
	board      = []domain.LeaderboardEntry{{Rank: 1, Author: 7, Score: 30}}
)

func bearer(t *testing.T, account int64) string {
	token, err := jwtService.GenerateTokenHMAC(context.Background(), domain.AuthPayload{AccountID: account})
	require.NoError(t, err)
	return "Bearer " + token
}

func newRouter(svc submission.ISubmissionService) *mux.Router {
	router := mux.NewRouter()
	logger := logging.NewNopLogger()
	NewHandler(svc, logger).RegisterRoutes(router, handlers.New(jwtService, logger))
	return router
}

func TestHandler_Submit(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) submission.ISubmissionService
		auth       bool
		path       string
		body       string
		wantStatus int
		wantBody   func(t *testing.T, body []byte)
	}{
		{
			name: "created",
			mock: func(ctrl *gomock.Controller) submission.ISubmissionService {
				svc := submissionmocks.NewMockISubmissionService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), submission.SubmitRequest{
					Account: 7, Challenge: 3, Language: "python", Code: "print(1)",
				}).Return(&submission.SubmitResult{
					Outcome:     domain.OutcomeCreated,
					Verdict:     &domain.Verdict{Pass: true, Tests: json.RawMessage(`[]`)},
					Challenge:   challenge,
					Leaderboard: board,
				}, nil)
				return svc
			},
			auth:       true,
			path:       "/api/challenges/3/solutions/python",
			body:       `{"code":"print(1)"}`,
			wantStatus: http.StatusCreated,
			wantBody: func(t *testing.T, body []byte) {
				var resp SolutionsResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, domain.OutcomeCreated, resp.Outcome)
				assert.Equal(t, board, resp.Leaderboard)
				require.NotNil(t, resp.Code)
				assert.Equal(t, "print(1)", *resp.Code)
				require.NotNil(t, resp.Tests)
				assert.True(t, resp.Tests.Pass)
			},
		},
		{
			name: "updated",
			mock: func(ctrl *gomock.Controller) submission.ISubmissionService {
				svc := submissionmocks.NewMockISubmissionService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&submission.SubmitResult{
					Outcome:                 domain.OutcomeUpdated,
					Verdict:                 &domain.Verdict{Pass: true},
					Challenge:               challenge,
					PreviousSolutionInvalid: true,
				}, nil)
				return svc
			},
			auth:       true,
			path:       "/api/challenges/3/solutions/python",
			body:       `{"code":"x"}`,
			wantStatus: http.StatusCreated,
			wantBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"previous_solution_invalid":true`)
				assert.Contains(t, string(body), `"leaderboard":[]`)
			},
		},
		{
			name: "unchanged",
			mock: func(ctrl *gomock.Controller) submission.ISubmissionService {
				svc := submissionmocks.NewMockISubmissionService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&submission.SubmitResult{
					Outcome: domain.OutcomeUnchanged, Verdict: &domain.Verdict{Pass: true}, Challenge: challenge,
				}, nil)
				return svc
			},
			auth:       true,
			path:       "/api/challenges/3/solutions/python",
			body:       `{"code":"xxxxxxxx"}`,
			wantStatus: http.StatusOK,
		},
		{
			name: "rejected",
			mock: func(ctrl *gomock.Controller) submission.ISubmissionService {
				svc := submissionmocks.NewMockISubmissionService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&submission.SubmitResult{
					Outcome: domain.OutcomeRejected, Verdict: &domain.Verdict{Pass: false}, Challenge: challenge,
				}, nil)
				return svc
			},
			auth:       true,
			path:       "/api/challenges/3/solutions/python",
			body:       `{"code":"nope"}`,
			wantStatus: http.StatusBadRequest,
			wantBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"outcome":"rejected"`)
			},
		},
		{
			name: "unknown challenge",
			mock: func(ctrl *gomock.Controller) submission.ISubmissionService {
				svc := submissionmocks.NewMockISubmissionService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: 3", errs.ErrChallengeNotFound))
				return svc
			},
			auth:       true,
			path:       "/api/challenges/3/solutions/python",
			body:       `{"code":"x"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "judge unavailable",
			mock: func(ctrl *gomock.Controller) submission.ISubmissionService {
				svc := submissionmocks.NewMockISubmissionService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errs.ErrJudgeUnavailable)
				return svc
			},
			auth:       true,
			path:       "/api/challenges/3/solutions/python",
			body:       `{"code":"x"}`,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "store conflict",
			mock: func(ctrl *gomock.Controller) submission.ISubmissionService {
				svc := submissionmocks.NewMockISubmissionService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errs.ErrStoreConflict)
				return svc
			},
			auth:       true,
			path:       "/api/challenges/3/solutions/python",
			body:       `{"code":"x"}`,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "anonymous",
			mock: func(ctrl *gomock.Controller) submission.ISubmissionService {
				return submissionmocks.NewMockISubmissionService(ctrl)
			},
			path:       "/api/challenges/3/solutions/python",
			body:       `{"code":"x"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bad body",
			mock: func(ctrl *gomock.Controller) submission.ISubmissionService {
				return submissionmocks.NewMockISubmissionService(ctrl)
			},
			auth:       true,
			path:       "/api/challenges/3/solutions/python",
			body:       `{"code":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			if tc.auth {
				req.Header.Set("Authorization", bearer(t, 7))
			}
			recorder := httptest.NewRecorder()
			newRouter(tc.mock(ctrl)).ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			if tc.wantBody != nil {
				tc.wantBody(t, recorder.Body.Bytes())
			}
		})
	}
}

func TestHandler_Submit_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/challenges/3/solutions/python", strings.NewReader(`{"code":"x"}`))
	req.Header.Set("Authorization", "Bearer forged")
	recorder := httptest.NewRecorder()
	newRouter(submissionmocks.NewMockISubmissionService(ctrl)).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_ViewChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := submissionmocks.NewMockISubmissionService(ctrl)
	svc.EXPECT().ViewChallenge(gomock.Any(), (*int64)(nil), int64(3), "python").Return(&submission.ChallengeView{
		Challenge: challenge, Leaderboard: board,
	}, nil)
	svc.EXPECT().ViewChallenge(gomock.Any(), gomock.Not(gomock.Nil()), int64(3), "python").DoAndReturn(
		func(_ context.Context, account *int64, _ int64, _ string) (*submission.ChallengeView, error) {
			assert.Equal(t, int64(7), *account)
			return &submission.ChallengeView{
				Challenge:               challenge,
				Leaderboard:             board,
				Best:                    &domain.BestSolution{Code: "print(1)", Valid: false},
				PreviousSolutionInvalid: true,
			}, nil
		})
	router := newRouter(svc)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/challenges/3/solutions/python", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":null`)

	req := httptest.NewRequest(http.MethodGet, "/api/challenges/3/solutions/python", nil)
	req.Header.Set("Authorization", bearer(t, 7))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp SolutionsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotNil(t, resp.Code)
	assert.Equal(t, "print(1)", *resp.Code)
	assert.True(t, resp.PreviousSolutionInvalid)
	assert.Nil(t, resp.Tests)
}

func TestHandler_GetBest(t *testing.T) {
	testCases := []struct {
		name       string
		best       *domain.BestSolution
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid",
			best:       &domain.BestSolution{Code: "print(1)", Valid: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"code":"print(1)","valid":true}`,
		},
		{name: "no history", wantStatus: http.StatusNotFound},
		{name: "store down", err: errs.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := submissionmocks.NewMockISubmissionService(ctrl)
			svc.EXPECT().GetBest(gomock.Any(), int64(7), int64(3), "python").Return(tc.best, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/api/challenges/3/solutions/python/best", nil)
			req.Header.Set("Authorization", bearer(t, 7))
			recorder := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestHandler_GetLanguages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := submissionmocks.NewMockISubmissionService(ctrl)
	svc.EXPECT().GetLanguages(gomock.Any()).Return([]*domain.Language{
		{Name: "go", DisplayName: "Go", LatestVersion: "1.23", Active: true},
	}, nil)

	recorder := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/languages", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp LanguagesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.Languages, 1)
	assert.Equal(t, "1.23", resp.Languages[0].LatestVersion)
}
