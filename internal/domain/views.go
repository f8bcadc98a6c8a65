package domain

import "github.com/shopspring/decimal"

// DashboardView é o painel pronto para os gráficos e tabelas
type DashboardView struct {
	Loaded        bool            `json:"loaded"`
	Balance       decimal.Decimal `json:"balance"`
	BalanceChange float64         `json:"balance_change"`
	PieData       []CategoryEntry `json:"pie_data"`
	Transactions  []Transaction   `json:"transactions"`
	TopProducts   []TopProduct    `json:"top_products"`
	LowStock      []CategoryEntry `json:"low_stock"`
}

type SalesView struct {
	Loaded          bool              `json:"loaded"`
	Orders          []Order           `json:"orders"`
	TotalOrders     int               `json:"total_orders"`
	FinancialSeries []FinancialRecord `json:"financial_series"`
}

// NotificationsView lista as notificações da mais recente para a mais antiga
type NotificationsView struct {
	Loaded        bool           `json:"loaded"`
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	CanUndo       bool           `json:"can_undo"`
}
