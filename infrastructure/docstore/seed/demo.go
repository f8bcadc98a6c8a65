// Package seed grava os documentos de demonstração do painel
package seed

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func quantity(v float64) *float64 {
	return &v
}

func DemoDashboard() domain.DashboardSnapshot {
	return domain.DashboardSnapshot{
		Balance:       decimal.NewFromInt(15700),
		BalanceChange: 12.1,
		PieData: []domain.CategoryEntry{
			{Name: "Online shopping", Value: 1132.5, Color: "#a99cff", Quantity: quantity(12)},
			{Name: "Car services", Value: 1090.7, Color: "#7c8aff", Quantity: quantity(48)},
			{Name: "Entertainments", Value: 2302, Color: "#b6b6f7", Quantity: quantity(7)},
			{Name: "Shopping", Value: 2007.3, Color: "#a3e0ff"},
		},
		Transactions: []domain.Transaction{
			{Name: "Netflix Standard Plan", Amount: decimal.NewFromInt(1200), Date: "25 April at 09:30 am"},
			{Name: "Online Shopping", Amount: decimal.NewFromInt(11232), Date: "25 April at 09:30 am"},
			{Name: "Wedding Photography", Amount: decimal.NewFromInt(45200), Date: "25 April at 09:30 am"},
			{Name: "Hotstar Premium plan", Amount: decimal.NewFromInt(799), Date: "25 April at 09:30 am"},
		},
		TopProducts: []domain.TopProduct{
			{Name: "Basmati Rice", Demand: 45, Color: "#7c8aff"},
			{Name: "Wheat", Demand: 29, Color: "#a3e0ff"},
			{Name: "Bathroom Essentials", Demand: 18, Color: "#b6b6f7"},
			{Name: "Snacks", Demand: 25, Color: "#ffa76d"},
		},
	}
}

func DemoSales() domain.SalesSnapshot {
	price := decimal.RequireFromString("21.78")

	return domain.SalesSnapshot{
		Orders: []domain.Order{
			{ID: "02131", Product: "Kanly Kitadakate (Green)", Customer: "Leslie Alexander", Price: price, Date: "04/17/23", Payment: "Paid", Status: "Shipping"},
			{ID: "02132", Product: "Kanly Kitadakate (Green)", Customer: "Jenny Wilson", Price: price, Date: "04/18/23", Payment: "Unpaid", Status: "Cancelled"},
			{ID: "02133", Product: "Story Honora (Cream)", Customer: "Leslie Alexander", Price: price, Date: "04/19/23", Payment: "Paid", Status: "Shipping"},
			{ID: "02134", Product: "Story Honora (Cream)", Customer: "Kristin Watson", Price: price, Date: "04/20/23", Payment: "Unpaid", Status: "Cancelled"},
		},
		FinancialData: []domain.FinancialRecord{
			{Month: "Jan", Revenue: 12000, Expense: 1100},
			{Month: "Feb", Revenue: 15000, Expense: 1300},
			{Month: "Mar", Revenue: 17000, Expense: 1400},
			{Month: "Apr", Revenue: 20000, Expense: 1600},
			{Month: "May", Revenue: 22000, Expense: 1800},
			{Month: "Jun", Revenue: 18000, Expense: 1700},
			{Month: "Jul", Revenue: 25000, Expense: 2100},
			{Month: "Aug", Revenue: 3000, Expense: 2200},
			{Month: "Sep", Revenue: 35000, Expense: 2500},
			{Month: "Oct", Revenue: 40000, Expense: 2700},
			{Month: "Nov", Revenue: 32000, Expense: 2300},
			{Month: "Dec", Revenue: 42000, Expense: 3100},
		},
	}
}

func DemoNotifications() domain.NotificationsSnapshot {
	return domain.NotificationsSnapshot{
		Notifications: []domain.Notification{
			{Details: "Estoque de Wheat atualizado", Date: "2023-05-20", User: "Jane Carter"},
			{Details: "Previsão de vendas gerada", Date: "2023-05-22", User: "Jane Carter"},
		},
	}
}

// Demo grava os documentos que ainda não existem. Documentos existentes não são tocados.
func Demo(ctx context.Context, store docstore.Store) error {
	documents := []struct {
		ref  domain.DocumentRef
		data any
	}{
		{domain.DashboardDocument, DemoDashboard()},
		{domain.SalesDocument, DemoSales()},
		{domain.NotificationsDocument, DemoNotifications()},
	}

	for _, d := range documents {
		existing, err := store.GetDoc(ctx, d.ref.Collection, d.ref.ID)
		if err != nil {
			return fmt.Errorf("erro ao ler %s: %w", d.ref, err)
		}
		if existing != nil {
			logrus.WithField("document", d.ref.String()).Debug("Documento já existe, seed ignorado")
			continue
		}

		patch, err := toPatch(d.data)
		if err != nil {
			return fmt.Errorf("erro ao codificar %s: %w", d.ref, err)
		}
		if err := store.UpdateDoc(ctx, d.ref.Collection, d.ref.ID, patch); err != nil {
			return fmt.Errorf("erro ao gravar %s: %w", d.ref, err)
		}
		logrus.WithField("document", d.ref.String()).Info("Documento de demonstração gravado")
	}
	return nil
}

func toPatch(data any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var patch map[string]any
	if err := json.Unmarshal(raw, &patch); err != nil {
		return nil, err
	}
	return patch, nil
}
