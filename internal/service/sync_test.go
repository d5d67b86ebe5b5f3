package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Devdiop221/deenquest/internal/models"
	mock_service "github.com/Devdiop221/deenquest/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSyncServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockActionAPII, *mock_service.MockQueueI, *mock_service.MockStorageI, *mock_service.MockResultCacheI, *mock_service.MockMonitorI)) *SyncS {
	t.Helper()

	api := mock_service.NewMockActionAPII(ctrl)
	q := mock_service.NewMockQueueI(ctrl)
	st := mock_service.NewMockStorageI(ctrl)
	rc := mock_service.NewMockResultCacheI(ctrl)
	mon := mock_service.NewMockMonitorI(ctrl)
	if setupMock != nil {
		setupMock(api, q, st, rc, mon)
	}

	return &SyncS{
		api:           api,
		queue:         q,
		monitor:       mon,
		storage:       st,
		results:       rc,
		actionTimeout: time.Second,
		log:           zap.NewNop(),
	}
}

func mustAction(t *testing.T, id string, kind models.ActionKind, payload any) models.OfflineAction {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	return models.OfflineAction{
		ID:         id,
		Kind:       kind,
		Payload:    data,
		EnqueuedAt: time.Now(),
	}
}

func TestSyncS_Sync(t *testing.T) {
	t.Parallel()

	quizPayload := models.QuizAnswerPayload{UserID: "u1", QuizID: "q1", SelectedAnswer: 2}
	favPayload := models.FavoritePayload{UserID: "u1", ContentID: "q7", ContentType: "quiz"}
	lecturePayload := models.LectureCompletePayload{UserID: "u1", LectureID: "l1"}

	tests := []struct {
		name    string
		f       func(*mock_service.MockActionAPII, *mock_service.MockQueueI, *mock_service.MockStorageI, *mock_service.MockResultCacheI, *mock_service.MockMonitorI)
		want    models.SyncResult
		wantErr bool
	}{
		{
			name: "empty queue",
			f: func(api *mock_service.MockActionAPII, q *mock_service.MockQueueI, st *mock_service.MockStorageI, rc *mock_service.MockResultCacheI, mon *mock_service.MockMonitorI) {
				q.EXPECT().PeekAll(gomock.Any()).Return(nil, nil)
				st.EXPECT().Set(gomock.Any(), lastSyncKey, gomock.Any()).Return(nil)
			},
			want: models.SyncResult{},
		},
		{
			name: "failed action stays queued, drain continues in order",
			f: func(api *mock_service.MockActionAPII, q *mock_service.MockQueueI, st *mock_service.MockStorageI, rc *mock_service.MockResultCacheI, mon *mock_service.MockMonitorI) {
				actions := []models.OfflineAction{
					mustAction(t, "a1", models.ActionQuizAnswer, quizPayload),
					mustAction(t, "a2", models.ActionFavoriteAdd, favPayload),
					mustAction(t, "a3", models.ActionLectureComplete, lecturePayload),
				}
				confirmed := models.QuizAnswerResult{IsCorrect: true, CorrectAnswer: 2, XPEarned: 10}

				q.EXPECT().PeekAll(gomock.Any()).Return(actions, nil)
				gomock.InOrder(
					api.EXPECT().SubmitQuizAnswer(gomock.Any(), quizPayload).Return(confirmed, nil),
					api.EXPECT().AddFavorite(gomock.Any(), favPayload).Return(errors.New("service unavailable")),
					api.EXPECT().CompleteLecture(gomock.Any(), lecturePayload).Return(models.LectureCompleteResult{XPEarned: 15}, nil),
				)
				rc.EXPECT().SetResult("a1", confirmed)
				q.EXPECT().Remove(gomock.Any(), "a1").Return(nil)
				q.EXPECT().MarkAttempt(gomock.Any(), "a2").Return(nil)
				q.EXPECT().Remove(gomock.Any(), "a3").Return(nil)
				st.EXPECT().Set(gomock.Any(), lastSyncKey, gomock.Any()).Return(nil)
			},
			want: models.SyncResult{Processed: 3, Synced: 2, Failed: 1},
		},
		{
			name: "undecodable payload is kept, not dropped",
			f: func(api *mock_service.MockActionAPII, q *mock_service.MockQueueI, st *mock_service.MockStorageI, rc *mock_service.MockResultCacheI, mon *mock_service.MockMonitorI) {
				broken := models.OfflineAction{ID: "a1", Kind: models.ActionQuizAnswer, Payload: []byte("{not json")}

				q.EXPECT().PeekAll(gomock.Any()).Return([]models.OfflineAction{broken}, nil)
				q.EXPECT().MarkAttempt(gomock.Any(), "a1").Return(nil)
				st.EXPECT().Set(gomock.Any(), lastSyncKey, gomock.Any()).Return(nil)
			},
			want: models.SyncResult{Processed: 1, Failed: 1},
		},
		{
			name: "removal failure leaves action counted as unsynced",
			f: func(api *mock_service.MockActionAPII, q *mock_service.MockQueueI, st *mock_service.MockStorageI, rc *mock_service.MockResultCacheI, mon *mock_service.MockMonitorI) {
				actions := []models.OfflineAction{mustAction(t, "a1", models.ActionFavoriteRemove, favPayload)}

				q.EXPECT().PeekAll(gomock.Any()).Return(actions, nil)
				api.EXPECT().RemoveFavorite(gomock.Any(), favPayload).Return(nil)
				q.EXPECT().Remove(gomock.Any(), "a1").Return(errors.New("store closed"))
				st.EXPECT().Set(gomock.Any(), lastSyncKey, gomock.Any()).Return(nil)
			},
			want: models.SyncResult{Processed: 1},
		},
		{
			name: "queue snapshot failure aborts the drain",
			f: func(api *mock_service.MockActionAPII, q *mock_service.MockQueueI, st *mock_service.MockStorageI, rc *mock_service.MockResultCacheI, mon *mock_service.MockMonitorI) {
				q.EXPECT().PeekAll(gomock.Any()).Return(nil, errors.New("store closed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newSyncServiceMock(t, ctrl, tt.f)

			got, err := s.Sync(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.want.Processed, got.Processed)
			assert.Equal(t, tt.want.Synced, got.Synced)
			assert.Equal(t, tt.want.Failed, got.Failed)
			assert.False(t, got.FinishedAt.Before(got.StartedAt))
		})
	}
}

func TestSyncS_Sync_singleFlight(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSyncServiceMock(t, ctrl, nil)
	s.syncing.Store(true)

	_, err := s.Sync(context.Background())
	require.ErrorIs(t, err, ErrSyncInProgress)
}

func TestSyncS_Status(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSyncServiceMock(t, ctrl, func(api *mock_service.MockActionAPII, q *mock_service.MockQueueI, st *mock_service.MockStorageI, rc *mock_service.MockResultCacheI, mon *mock_service.MockMonitorI) {
		mon.EXPECT().CurrentlyOnline().Return(true)
	})

	last := time.Now().Add(-time.Minute)
	s.lastSyncAt = &last

	status := s.Status()
	assert.False(t, status.IsSyncing)
	assert.True(t, status.IsOnline)
	require.NotNil(t, status.LastSyncAt)
	assert.Equal(t, last, *status.LastSyncAt)
}
