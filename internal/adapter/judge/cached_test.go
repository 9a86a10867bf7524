package judge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gitlab.com/golf-2025.net/internal/adapter/logging"
	secondarymocks "gitlab.com/golf-2025.net/internal/core/ports/secondary/mocks"
	"gitlab.com/golf-2025.net/internal/domain"
	"gitlab.com/golf-2025.net/internal/static/errs"
)

func TestCachedJudge_Evaluate(t *testing.T) {
	passing := &domain.Verdict{Pass: true}
	failing := &domain.Verdict{Pass: false}

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (*secondarymocks.MockJudge, *secondarymocks.MockVerdictCache)
		want    *domain.Verdict
		wantErr error
	}{
		{
			name: "hit skips the judge",
			mock: func(ctrl *gomock.Controller) (*secondarymocks.MockJudge, *secondarymocks.MockVerdictCache) {
				cache := secondarymocks.NewMockVerdictCache(ctrl)
				cache.EXPECT().Get(gomock.Any(), request).Return(passing, nil)
				return secondarymocks.NewMockJudge(ctrl), cache
			},
			want: passing,
		},
		{
			name: "miss judges and remembers",
			mock: func(ctrl *gomock.Controller) (*secondarymocks.MockJudge, *secondarymocks.MockVerdictCache) {
				cache := secondarymocks.NewMockVerdictCache(ctrl)
				judge := secondarymocks.NewMockJudge(ctrl)
				cache.EXPECT().Get(gomock.Any(), request).Return(nil, nil)
				judge.EXPECT().Evaluate(gomock.Any(), request).Return(passing, nil)
				cache.EXPECT().Set(gomock.Any(), request, passing).Return(nil)
				return judge, cache
			},
			want: passing,
		},
		{
			name: "broken cache still judges",
			mock: func(ctrl *gomock.Controller) (*secondarymocks.MockJudge, *secondarymocks.MockVerdictCache) {
				cache := secondarymocks.NewMockVerdictCache(ctrl)
				judge := secondarymocks.NewMockJudge(ctrl)
				cache.EXPECT().Get(gomock.Any(), request).Return(nil, errors.New("redis down"))
				judge.EXPECT().Evaluate(gomock.Any(), request).Return(passing, nil)
				cache.EXPECT().Set(gomock.Any(), request, passing).Return(errors.New("redis down"))
				return judge, cache
			},
			want: passing,
		},
		{
			name: "failing verdict is not cached",
			mock: func(ctrl *gomock.Controller) (*secondarymocks.MockJudge, *secondarymocks.MockVerdictCache) {
				cache := secondarymocks.NewMockVerdictCache(ctrl)
				judge := secondarymocks.NewMockJudge(ctrl)
				cache.EXPECT().Get(gomock.Any(), request).Return(nil, nil)
				judge.EXPECT().Evaluate(gomock.Any(), request).Return(failing, nil)
				return judge, cache
			},
			want: failing,
		},
		{
			name: "judge failure is not cached",
			mock: func(ctrl *gomock.Controller) (*secondarymocks.MockJudge, *secondarymocks.MockVerdictCache) {
				cache := secondarymocks.NewMockVerdictCache(ctrl)
				judge := secondarymocks.NewMockJudge(ctrl)
				cache.EXPECT().Get(gomock.Any(), request).Return(nil, nil)
				judge.EXPECT().Evaluate(gomock.Any(), request).Return(nil, errs.ErrJudgeUnavailable)
				return judge, cache
			},
			wantErr: errs.ErrJudgeUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			judge, cache := tc.mock(ctrl)
			got, err := NewCachedJudge(judge, cache, logging.NewNopLogger()).Evaluate(context.Background(), request)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}
