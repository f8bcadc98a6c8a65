package realtime

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/memstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/mocks"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timeout aguardando snapshot")
		var zero T
		return zero
	}
}

func TestBridge_Watch_DeliversDecodedSnapshots(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	defer store.Close()

	bridge := NewBridge(store)
	snapshots := make(chan *domain.NotificationsSnapshot, 8)

	sub, err := WatchDocument(ctx, bridge, domain.NotificationsDocument, func(s *domain.NotificationsSnapshot) {
		snapshots <- s
	})
	require.NoError(t, err)
	defer sub.Unwatch()

	assert.Nil(t, waitFor(t, snapshots), "documento inexistente deve chegar como nil")

	require.NoError(t, store.ArrayAppend(ctx, "notifications", "main", domain.NotificationsField, domain.Notification{Details: "N1"}))
	require.NoError(t, store.ArrayAppend(ctx, "notifications", "main", domain.NotificationsField, domain.Notification{Details: "N2"}))

	first := waitFor(t, snapshots)
	require.NotNil(t, first)
	assert.Len(t, first.Notifications, 1)

	second := waitFor(t, snapshots)
	require.NotNil(t, second)
	require.Len(t, second.Notifications, 2)
	assert.Equal(t, "N2", second.Notifications[1].Details)
}

func TestBridge_Unwatch_IsIdempotentAndStopsCallbacks(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	defer store.Close()

	bridge := NewBridge(store)
	calls := make(chan *docstore.Document, 8)

	sub, err := bridge.Watch(ctx, domain.SalesDocument, func(doc *docstore.Document) {
		calls <- doc
	})
	require.NoError(t, err)
	waitFor(t, calls)

	sub.Unwatch()
	sub.Unwatch()

	require.NoError(t, store.UpdateDoc(ctx, "sales", "main", map[string]any{"orders": []any{}}))

	select {
	case <-calls:
		t.Fatal("callback após Unwatch")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBridge_Unwatch_WaitsForCallbackInFlight(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	defer store.Close()

	bridge := NewBridge(store)
	started := make(chan struct{}, 1)
	var finished atomic.Bool

	sub, err := bridge.Watch(ctx, domain.SalesDocument, func(doc *docstore.Document) {
		select {
		case started <- struct{}{}:
		default:
		}
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
	})
	require.NoError(t, err)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("callback não iniciou")
	}

	sub.Unwatch()
	assert.True(t, finished.Load(), "Unwatch retornou com callback em andamento")
}

func TestBridge_Watch_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().
		OnSnapshot(gomock.Any(), "dashboard", "main", gomock.Any()).
		Return(nil, errors.New("connection refused"))

	sub, err := NewBridge(store).Watch(context.Background(), domain.DashboardDocument, func(*docstore.Document) {})
	assert.Error(t, err)
	assert.Nil(t, sub)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		doc      *docstore.Document
		validate func(t *testing.T, s *domain.SalesSnapshot)
	}{
		{
			name: "documento ausente",
			doc:  nil,
			validate: func(t *testing.T, s *domain.SalesSnapshot) {
				assert.Nil(t, s)
			},
		},
		{
			name: "documento malformado",
			doc:  &docstore.Document{Collection: "sales", ID: "main", Data: []byte(`{"orders": "oops"`)},
			validate: func(t *testing.T, s *domain.SalesSnapshot) {
				assert.Nil(t, s)
			},
		},
		{
			name: "campos ausentes viram zero",
			doc:  &docstore.Document{Collection: "sales", ID: "main", Data: []byte(`{}`)},
			validate: func(t *testing.T, s *domain.SalesSnapshot) {
				require.NotNil(t, s)
				assert.Empty(t, s.Orders)
				assert.Empty(t, s.FinancialData)
			},
		},
		{
			name: "pedido com previsão",
			doc: &docstore.Document{Collection: "sales", ID: "main", Data: []byte(
				`{"orders":[{"id":"02131","product":"Wheat","price":21.78,"date":"04/17/23","predicted_quantity_sold":12}]}`,
			)},
			validate: func(t *testing.T, s *domain.SalesSnapshot) {
				require.NotNil(t, s)
				require.Len(t, s.Orders, 1)
				assert.Equal(t, "21.78", s.Orders[0].Price.String())
				require.NotNil(t, s.Orders[0].PredictedQuantitySold)
				assert.Equal(t, 12.0, *s.Orders[0].PredictedQuantitySold)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Decode[domain.SalesSnapshot](tt.doc))
		})
	}
}

func TestMirror_LatestFollowsDocument(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	defer store.Close()

	require.NoError(t, store.Seed("dashboard", "main", map[string]any{"balance": 1500.5}))

	mirror := NewMirror[domain.DashboardSnapshot](NewBridge(store), domain.DashboardDocument)
	require.NoError(t, mirror.Start(ctx))
	defer mirror.Close()

	assert.ErrorIs(t, mirror.Start(ctx), ErrMirrorStarted)

	waitFor(t, mirror.Ready())

	latest, loaded := mirror.Latest()
	assert.True(t, loaded)
	require.NotNil(t, latest)
	assert.Equal(t, "1500.5", latest.Balance.String())

	require.NoError(t, store.UpdateDoc(ctx, "dashboard", "main", map[string]any{"balance": 99}))
	assert.Eventually(t, func() bool {
		latest, _ := mirror.Latest()
		return latest != nil && latest.Balance.String() == "99"
	}, 2*time.Second, 10*time.Millisecond)
}
