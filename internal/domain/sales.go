package domain

import "github.com/shopspring/decimal"

// Order é um pedido da lista de vendas. O ID não é garantidamente único.
type Order struct {
	ID                    string          `json:"id" csv:"id"`
	Product               string          `json:"product" csv:"product"`
	Customer              string          `json:"customer" csv:"customer"`
	Price                 decimal.Decimal `json:"price" csv:"price"`
	Date                  string          `json:"date" csv:"date"`
	Payment               string          `json:"payment" csv:"payment"`
	Status                string          `json:"status" csv:"status"`
	PredictedQuantitySold *float64        `json:"predicted_quantity_sold,omitempty" csv:"predicted_quantity_sold,omitempty"`
}

// FinancialRecord é o registro financeiro de um mês
type FinancialRecord struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expense  float64 `json:"expense"`
	Quantity float64 `json:"quantity"`
}

// SalesSnapshot é o conteúdo do documento sales/main
type SalesSnapshot struct {
	Orders        []Order           `json:"orders"`
	FinancialData []FinancialRecord `json:"financialData"`
}
