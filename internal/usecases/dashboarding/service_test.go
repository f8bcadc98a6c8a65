package dashboarding

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/memstore"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/realtime"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/internal/views"
)

func floatPtr(v float64) *float64 {
	return &v
}

func seedAll(t *testing.T, store *memstore.Store) {
	t.Helper()

	dashboard := domain.DashboardSnapshot{
		Balance: decimal.NewFromInt(15000),
		PieData: []domain.CategoryEntry{
			{Name: "Online shopping", Value: 1132.5, Color: "#a99cff", Quantity: floatPtr(12)},
			{Name: "Car services", Value: 1090.7, Color: "#7c8aff", Quantity: floatPtr(40)},
			{Name: "Entertainments", Value: 2302, Color: "#b6b6f7"},
		},
	}
	sales := domain.SalesSnapshot{
		Orders: []domain.Order{
			{ID: "02131", Product: "Wheat", Customer: "Leslie Alexander", Price: decimal.NewFromInt(10), Date: "04/17/23", Payment: "Paid", Status: "Shipping"},
			{ID: "02132", Product: "Snacks", Customer: "Jenny Wilson", Price: decimal.NewFromInt(50), Date: "04/18/23", Payment: "Unpaid", Status: "Cancelled"},
		},
		FinancialData: []domain.FinancialRecord{{Month: "Feb", Revenue: 10, Expense: 5}},
	}
	notifications := domain.NotificationsSnapshot{
		Notifications: []domain.Notification{{Details: "N1"}, {Details: "N2"}, {Details: "N3"}},
	}

	require.NoError(t, store.Seed(domain.DashboardDocument.Collection, domain.DashboardDocument.ID, dashboard))
	require.NoError(t, store.Seed(domain.SalesDocument.Collection, domain.SalesDocument.ID, sales))
	require.NoError(t, store.Seed(domain.NotificationsDocument.Collection, domain.NotificationsDocument.ID, notifications))
}

func startedService(t *testing.T) (*Service, *memstore.Store) {
	t.Helper()

	store := memstore.New()
	seedAll(t, store)

	svc := NewService(realtime.NewBridge(store), config.Views{})
	require.NoError(t, svc.Start(context.Background()))
	t.Cleanup(func() {
		svc.Close()
		_ = store.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.WaitReady(ctx))
	return svc, store
}

func TestService_Views(t *testing.T) {
	svc, _ := startedService(t)

	dashboard := svc.Dashboard(ViewParams{})
	assert.True(t, dashboard.Loaded)
	assert.Equal(t, float64(views.DefaultLowStockThreshold), svc.LowStockThreshold())
	require.Len(t, dashboard.LowStock, 1)
	assert.Equal(t, "Online shopping", dashboard.LowStock[0].Name)

	wide := svc.Dashboard(ViewParams{LowStockThreshold: 50})
	assert.Len(t, wide.LowStock, 2)
	assert.Len(t, svc.LowStock(50), 2)

	sales := svc.Sales(ViewParams{Sort: views.SortDesc})
	require.Len(t, sales.Orders, 2)
	assert.Equal(t, "02132", sales.Orders[0].ID)
	assert.Len(t, sales.FinancialSeries, 12)

	notifications := svc.Notifications(ViewParams{})
	require.Len(t, notifications.Notifications, 3)
	assert.Equal(t, "N3", notifications.Notifications[0].Details)
	assert.False(t, notifications.CanUndo)
}

func TestService_OrderOverlayIsLocalToSession(t *testing.T) {
	svc, _ := startedService(t)

	mine := dispatching.NewOrderOverlay()
	require.NoError(t, svc.DeleteOrder(mine, "02131"))
	require.NoError(t, svc.EditOrder(mine, "02132", domain.Order{Product: "Basmati Rice", Price: decimal.NewFromInt(60)}))
	assert.ErrorIs(t, svc.EditOrder(mine, "02131", domain.Order{}), dispatching.ErrOrderNotFound)

	mineView := svc.Sales(ViewParams{Orders: mine})
	require.Len(t, mineView.Orders, 1)
	assert.Equal(t, "Basmati Rice", mineView.Orders[0].Product)

	othersView := svc.Sales(ViewParams{Orders: dispatching.NewOrderOverlay()})
	assert.Len(t, othersView.Orders, 2)
}

func TestService_Watch(t *testing.T) {
	svc, store := startedService(t)

	updates := make(chan domain.NotificationsView, 10)
	sub, err := svc.Watch(context.Background(), AreaNotifications, ViewParams{Search: "n"}, func(view any) {
		updates <- view.(domain.NotificationsView)
	})
	require.NoError(t, err)
	defer sub.Unwatch()

	select {
	case first := <-updates:
		assert.Len(t, first.Notifications, 3)
	case <-time.After(2 * time.Second):
		t.Fatal("visão inicial não chegou")
	}

	ref := domain.NotificationsDocument
	require.NoError(t, store.ArrayAppend(context.Background(), ref.Collection, ref.ID, domain.NotificationsField, domain.Notification{Details: "N4"}))

	select {
	case next := <-updates:
		require.Len(t, next.Notifications, 4)
		assert.Equal(t, "N4", next.Notifications[0].Details)
	case <-time.After(2 * time.Second):
		t.Fatal("atualização não chegou")
	}

	_, err = svc.Watch(context.Background(), Area("reports"), ViewParams{}, func(any) {})
	assert.ErrorIs(t, err, ErrUnknownArea)
}

func TestParseArea(t *testing.T) {
	area, err := ParseArea("sales")
	require.NoError(t, err)
	assert.Equal(t, AreaSales, area)

	_, err = ParseArea("admin")
	assert.ErrorIs(t, err, ErrUnknownArea)
}

func TestService_ExportCSV(t *testing.T) {
	svc, _ := startedService(t)

	orders, err := svc.ExportOrdersCSV(ViewParams{Filter: views.OrderFilter{Payment: "Paid"}})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(orders)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,product,customer,price,date,payment,status"))
	assert.True(t, strings.HasPrefix(lines[1], "02131,Wheat,Leslie Alexander,10,"))

	empty, err := svc.ExportNotificationsCSV(ViewParams{Search: "nada-disso"})
	require.NoError(t, err)
	assert.Equal(t, "details,date,user,avatar\n", string(empty))
}

func TestService_EmptyBeforeDocumentsExist(t *testing.T) {
	store := memstore.New()
	defer store.Close()

	svc := NewService(realtime.NewBridge(store), config.Views{LowStockThreshold: 5})
	dashboard := svc.Dashboard(ViewParams{})
	assert.False(t, dashboard.Loaded)
	assert.Empty(t, svc.LowStock(0))
	assert.Empty(t, svc.Sales(ViewParams{}).Orders)
}

func TestService_Ready(t *testing.T) {
	store := memstore.New()
	defer store.Close()

	idle := NewService(realtime.NewBridge(store), config.Views{})
	assert.False(t, idle.Ready())

	svc, _ := startedService(t)
	assert.True(t, svc.Ready())
}
