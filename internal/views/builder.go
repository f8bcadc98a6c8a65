package views

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

// DashboardView monta o painel principal. Snapshot nil vira uma visão vazia com Loaded=false.
func DashboardView(snapshot *domain.DashboardSnapshot, lowStockThreshold float64) domain.DashboardView {
	if snapshot == nil {
		return domain.DashboardView{
			Balance:      decimal.Zero,
			PieData:      []domain.CategoryEntry{},
			Transactions: []domain.Transaction{},
			TopProducts:  []domain.TopProduct{},
			LowStock:     []domain.CategoryEntry{},
		}
	}

	return domain.DashboardView{
		Loaded:        true,
		Balance:       snapshot.Balance,
		BalanceChange: snapshot.BalanceChange,
		PieData:       cloneOrEmpty(snapshot.PieData),
		Transactions:  cloneOrEmpty(snapshot.Transactions),
		TopProducts:   cloneOrEmpty(snapshot.TopProducts),
		LowStock:      FilterLowStock(snapshot.PieData, lowStockThreshold),
	}
}

func SalesView(snapshot *domain.SalesSnapshot, filter OrderFilter, direction SortDirection) domain.SalesView {
	if snapshot == nil {
		return domain.SalesView{
			Orders:          []domain.Order{},
			FinancialSeries: ToMonthSeries(nil, canonicalMonths),
		}
	}

	orders := SortOrdersByDate(FilterOrders(snapshot.Orders, filter), direction)

	return domain.SalesView{
		Loaded:          true,
		Orders:          orders,
		TotalOrders:     len(snapshot.Orders),
		FinancialSeries: ToMonthSeries(snapshot.FinancialData, canonicalMonths),
	}
}

// NotificationsView exibe da mais recente para a mais antiga; a busca não altera a ordem
func NotificationsView(snapshot *domain.NotificationsSnapshot, search string, canUndo bool) domain.NotificationsView {
	if snapshot == nil {
		return domain.NotificationsView{
			Notifications: []domain.Notification{},
			CanUndo:       canUndo,
		}
	}

	latestFirst := ReverseLatestFirst(snapshot.Notifications)

	return domain.NotificationsView{
		Loaded:        true,
		Notifications: FilterNotifications(latestFirst, search),
		Total:         len(snapshot.Notifications),
		CanUndo:       canUndo,
	}
}

func cloneOrEmpty[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}
