package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/internal/mock"
	"github.com/mbarbosa/mesasync/models"
)

// stubMetadata is an in-memory MetadataStore for tests; gomock would
// over-specify the bookkeeping calls the engine makes on every attempt.
type stubMetadata struct {
	mu         sync.Mutex
	timestamps map[string]int64
	recorded   []models.SyncMetadata
}

func newStubMetadata() *stubMetadata {
	return &stubMetadata{timestamps: make(map[string]int64)}
}

func (s *stubMetadata) LastTimestamp(_ context.Context, entityType string, _ int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timestamps[entityType]
}

func (s *stubMetadata) GlobalLastSync(ctx context.Context, userID int64) int64 {
	return s.LastTimestamp(ctx, models.GlobalSyncEntity, userID)
}

func (s *stubMetadata) Record(_ context.Context, md models.SyncMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append(s.recorded, md)
	s.timestamps[md.EntityType] = md.LastTimestamp
}

func (s *stubMetadata) ForUser(context.Context, int64) ([]models.SyncMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recorded, nil
}

func (s *stubMetadata) lastFor(entityType string) (models.SyncMetadata, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.recorded) - 1; i >= 0; i-- {
		if s.recorded[i].EntityType == entityType {
			return s.recorded[i], true
		}
	}
	return models.SyncMetadata{}, false
}

type stubSession struct {
	actx models.AccessContext
	err  error
}

func (s *stubSession) LoggedIn() bool { return s.err == nil }

func (s *stubSession) Current(context.Context) (models.AccessContext, error) {
	return s.actx, s.err
}

var rosterNames = []string{
	CollectionRoutes, CollectionCollaborators, CollectionClients, CollectionTables,
	CollectionContracts, CollectionSettlements, CollectionExpenses, CollectionCycles,
	CollectionCollaboratorRoutes, CollectionGoals, CollectionCollaboratorGoals,
	CollectionSignatures, CollectionVehicles, CollectionEquipment, CollectionStock,
}

func newTestOrchestrator(t *testing.T, ctrl *gomock.Controller) (*Orchestrator, []*mock.MockEntityHandler, *stubMetadata, *publisher) {
	t.Helper()

	mocks := make([]*mock.MockEntityHandler, 0, len(rosterNames))
	handlers := make([]EntityHandler, 0, len(rosterNames))
	for _, name := range rosterNames {
		h := mock.NewMockEntityHandler(ctrl)
		h.EXPECT().EntityType().Return(name).AnyTimes()
		mocks = append(mocks, h)
		handlers = append(handlers, h)
	}

	meta := newStubMetadata()
	pub := NewPublisher()
	session := &stubSession{actx: models.NewAccessContext(10, "empresa-1", false, []int64{1, 2})}

	return NewOrchestrator(handlers, session, meta, pub, logger.Nop()), mocks, meta, pub
}

func TestSyncAll_CleanFullSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mocks, meta, pub := newTestOrchestrator(t, ctrl)
	for _, h := range mocks {
		h.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(5, nil)
		h.EXPECT().Push(gomock.Any(), gomock.Any()).Return(3, nil)
	}

	result := orch.SyncAll(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, 120, result.SyncedCount)
	assert.Empty(t, result.Errors)

	global, ok := meta.lastFor(models.GlobalSyncEntity)
	require.True(t, ok, "successful cycle must record the global bookmark")
	assert.Equal(t, int64(10), global.UserID)

	status := pub.Snapshot()
	assert.Equal(t, models.PhaseSuccess, status.Phase)
	assert.Equal(t, 100, status.ProgressPercent)
}

func TestSyncAll_PartialFailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mocks, meta, pub := newTestOrchestrator(t, ctrl)
	for i, h := range mocks {
		switch rosterNames[i] {
		case CollectionClients:
			h.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(0, errors.New("Network error"))
			h.EXPECT().Push(gomock.Any(), gomock.Any()).Return(2, nil)
		case CollectionSettlements:
			h.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(4, nil)
			h.EXPECT().Push(gomock.Any(), gomock.Any()).Return(0, errors.New("Firebase timeout"))
		default:
			h.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(4, nil)
			h.EXPECT().Push(gomock.Any(), gomock.Any()).Return(2, nil)
		}
	}

	result := orch.SyncAll(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, []string{"Network error", "Firebase timeout"}, result.Errors)
	// 13 clean handlers contribute 4+2, the client handler still pushes
	// 2, the settlement handler still pulls 4
	assert.Equal(t, 13*6+2+4, result.SyncedCount)

	_, ok := meta.lastFor(models.GlobalSyncEntity)
	assert.False(t, ok, "failed cycle must not advance the global bookmark")

	status := pub.Snapshot()
	assert.Equal(t, models.PhaseError, status.Phase)
	assert.Equal(t, "Network error; Firebase timeout", status.Message)
}

func TestPushAll_NeverPulls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mocks, meta, _ := newTestOrchestrator(t, ctrl)
	for _, h := range mocks {
		h.EXPECT().Push(gomock.Any(), gomock.Any()).Return(3, nil)
	}

	result := orch.PushAll(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, 45, result.SyncedCount)

	_, ok := meta.lastFor(models.GlobalSyncEntity)
	assert.False(t, ok, "push-only cycle must not advance the global bookmark")
}

func TestPushAll_ReverseRosterOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mocks, _, _ := newTestOrchestrator(t, ctrl)

	var order []string
	for i, h := range mocks {
		name := rosterNames[i]
		h.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, models.AccessContext) (int, error) {
				order = append(order, name)
				return 0, nil
			})
	}

	orch.PushAll(context.Background())

	require.Len(t, order, len(rosterNames))
	assert.Equal(t, CollectionStock, order[0])
	assert.Equal(t, CollectionRoutes, order[len(order)-1])
}

func TestSyncAll_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, _, _, pub := newTestOrchestrator(t, ctrl)
	orch.session = &stubSession{err: ErrNotLoggedIn}

	result := orch.SyncAll(context.Background())

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ErrNotLoggedIn.Error(), result.Errors[0])
	assert.Equal(t, models.PhaseError, pub.Snapshot().Phase)
}

func TestSyncAll_CancelledBetweenHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mocks, _, _ := newTestOrchestrator(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	mocks[0].EXPECT().Pull(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.AccessContext) (int, error) {
			cancel()
			return 5, nil
		})
	mocks[0].EXPECT().Push(gomock.Any(), gomock.Any()).Return(3, nil)
	// no expectations on the remaining handlers: the cycle must stop
	// before reaching them

	result := orch.SyncAll(ctx)

	assert.False(t, result.Success)
	assert.Equal(t, 8, result.SyncedCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, context.Canceled.Error(), result.Errors[0])
}

func TestSyncAll_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mocks, _, pub := newTestOrchestrator(t, ctrl)
	mocks[0].EXPECT().Pull(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.AccessContext) (int, error) {
			panic("corrupted roster")
		})

	result := orch.SyncAll(context.Background())

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "critical failure")
	assert.Contains(t, result.Errors[0], "corrupted roster")
	assert.Equal(t, models.PhaseError, pub.Snapshot().Phase)
}

func TestOrchestrator_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mocks, _, _ := newTestOrchestrator(t, ctrl)
	for _, h := range mocks {
		h.EXPECT().Pending(gomock.Any(), int64(10)).Return(2, nil)
	}

	pending, err := orch.Pending(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 30, pending)
}

func TestOrchestrator_PendingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, mocks, _, _ := newTestOrchestrator(t, ctrl)
	mocks[0].EXPECT().Pending(gomock.Any(), int64(10)).Return(0, errors.New("database is locked"))

	_, err := orch.Pending(context.Background(), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), CollectionRoutes)
}
