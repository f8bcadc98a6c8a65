package domain

import "github.com/shopspring/decimal"

// CategoryEntry é uma fatia do gráfico de pizza / legenda do painel.
// Quantity é opcional: entradas sem quantidade não participam do filtro de estoque baixo.
type CategoryEntry struct {
	Name     string   `json:"name"`
	Value    float64  `json:"value"`
	Color    string   `json:"color"`
	Quantity *float64 `json:"quantity,omitempty"`
}

type Transaction struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Positive bool            `json:"positive"`
}

type TopProduct struct {
	Name   string  `json:"name"`
	Demand float64 `json:"demand"`
	Color  string  `json:"color"`
}

// DashboardSnapshot é o conteúdo do documento dashboard/main
type DashboardSnapshot struct {
	Balance       decimal.Decimal `json:"balance"`
	BalanceChange float64         `json:"balanceChange"`
	PieData       []CategoryEntry `json:"pieData"`
	Transactions  []Transaction   `json:"transactions"`
	TopProducts   []TopProduct    `json:"topProducts"`
}
