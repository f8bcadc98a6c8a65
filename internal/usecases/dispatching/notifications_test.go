package dispatching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/memstore"
	docmocks "github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/mocks"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/views"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	n1 = domain.Notification{Details: "N1", Date: "2024-01-01", User: "Ana"}
	n2 = domain.Notification{Details: "N2", Date: "2024-01-02", User: "Bruno"}
	n3 = domain.Notification{Details: "N3", Date: "2024-01-03", User: "Carla"}
)

func seededService(t *testing.T, list ...domain.Notification) (*NotificationService, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	t.Cleanup(func() { _ = store.Close() })

	ref := domain.NotificationsDocument
	require.NoError(t, store.Seed(ref.Collection, ref.ID, domain.NotificationsSnapshot{Notifications: list}))
	return NewNotificationService(store), store
}

func TestNotificationService_DeleteThenUndoRestoresStorageOrder(t *testing.T) {
	svc, _ := seededService(t, n1, n2, n3)
	history := NewNotificationHistory()
	ctx := context.Background()

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Notification{n3, n2, n1}, views.ReverseLatestFirst(current))

	require.NoError(t, svc.DeleteNotification(ctx, history, 1))

	afterDelete, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Notification{n1, n3}, afterDelete)
	assert.True(t, history.CanUndo())

	require.NoError(t, svc.UndoNotifications(ctx, history))

	restored, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Notification{n1, n2, n3}, restored)
	assert.False(t, history.CanUndo())
}

func TestNotificationService_DeleteNotification_InvalidIndex(t *testing.T) {
	svc, _ := seededService(t, n1, n2)
	history := NewNotificationHistory()

	for _, index := range []int{-1, 2, 10} {
		err := svc.DeleteNotification(context.Background(), history, index)

		var dispatchErr *DispatchError
		require.ErrorAs(t, err, &dispatchErr)
		assert.ErrorIs(t, err, ErrNotificationIndex)
		assert.Equal(t, apiErrors.ErrNotificationIndex, dispatchErr.Code)
	}
	assert.False(t, history.CanUndo())
}

func TestNotificationService_ClearAndUndo(t *testing.T) {
	svc, _ := seededService(t, n1, n2, n3)
	history := NewNotificationHistory()
	ctx := context.Background()

	require.NoError(t, svc.ClearNotifications(ctx, history))

	cleared, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, cleared)

	require.NoError(t, svc.UndoNotifications(ctx, history))
	restored, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Notification{n1, n2, n3}, restored)

	err = svc.UndoNotifications(ctx, history)
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestNotificationService_HistoryKeepsOnlyLastChange(t *testing.T) {
	svc, _ := seededService(t, n1, n2, n3)
	history := NewNotificationHistory()
	ctx := context.Background()

	require.NoError(t, svc.DeleteNotification(ctx, history, 0))
	require.NoError(t, svc.DeleteNotification(ctx, history, 0))
	require.NoError(t, svc.UndoNotifications(ctx, history))

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Notification{n1, n2}, current)
}

func TestNotificationService_AppendNotification_ConcurrentAppendsPreserved(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			errs <- svc.AppendNotification(ctx, n1)
		}()
	}
	for i := 0; i < 20; i++ {
		require.NoError(t, <-errs)
	}

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Len(t, current, 20)
}

func TestNotificationService_CurrentMissingDocument(t *testing.T) {
	store := memstore.New()
	defer store.Close()

	current, err := NewNotificationService(store).Current(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, current)
	assert.Empty(t, current)
}

func TestNotificationService_UndoFailureKeepsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := docmocks.NewMockStore(ctrl)
	svc := NewNotificationService(store)
	history := NewNotificationHistory()
	history.Remember([]domain.Notification{n1})

	ref := domain.NotificationsDocument
	store.EXPECT().
		UpdateDoc(gomock.Any(), ref.Collection, ref.ID, gomock.Any()).
		Return(errors.New("conexão perdida"))

	err := svc.UndoNotifications(context.Background(), history)
	assert.ErrorIs(t, err, ErrStoreOperation)
	assert.True(t, history.CanUndo())
}

func TestNotificationService_AppendNotification_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := docmocks.NewMockStore(ctrl)
	svc := NewNotificationService(store)

	ref := domain.NotificationsDocument
	store.EXPECT().
		ArrayAppend(gomock.Any(), ref.Collection, ref.ID, domain.NotificationsField, n1).
		Return(errors.New("timeout"))

	err := svc.AppendNotification(context.Background(), n1)

	var dispatchErr *DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, dispatchErr.Code)
}

func TestNotificationService_NewEntry(t *testing.T) {
	svc := NewNotificationService(memstore.New())
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }

	entry := svc.NewEntry(&domain.Identity{DisplayName: "Ana Lima", PhotoURL: "https://img/ana.png"}, "Estoque atualizado")
	assert.Equal(t, domain.Notification{
		Details: "Estoque atualizado",
		Date:    "2024-03-05",
		User:    "Ana Lima",
		Avatar:  "https://img/ana.png",
	}, entry)

	anonymous := svc.NewEntry(nil, "Sistema")
	assert.Empty(t, anonymous.User)
}
