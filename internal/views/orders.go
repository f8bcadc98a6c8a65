package views

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

// All é o valor de filtro que significa "sem restrição"
const All = "All"

// OrderFilter combina todos os critérios com E. Campos vazios, "All" e limites nil
// não restringem nada.
type OrderFilter struct {
	Search       string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	Product      string
	Payment      string
	Status       string
	Customer     string
	PredictedMin *float64
	PredictedMax *float64
}

func (f OrderFilter) predictedRangeSet() bool {
	return f.PredictedMin != nil || f.PredictedMax != nil
}

func FilterOrders(orders []domain.Order, filter OrderFilter) []domain.Order {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	customer := strings.ToLower(strings.TrimSpace(filter.Customer))

	out := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if search != "" &&
			!containsFold(order.ID, search) &&
			!containsFold(order.Product, search) &&
			!containsFold(order.Customer, search) {
			continue
		}

		if filter.PriceMin != nil && order.Price.LessThan(*filter.PriceMin) {
			continue
		}
		if filter.PriceMax != nil && order.Price.GreaterThan(*filter.PriceMax) {
			continue
		}

		if !matchesExact(order.Product, filter.Product) ||
			!matchesExact(order.Payment, filter.Payment) ||
			!matchesExact(order.Status, filter.Status) {
			continue
		}

		if customer != "" && !containsFold(order.Customer, customer) {
			continue
		}

		if filter.predictedRangeSet() {
			// Sem previsão o pedido não tem como estar dentro do intervalo
			if order.PredictedQuantitySold == nil {
				continue
			}
			predicted := *order.PredictedQuantitySold
			if filter.PredictedMin != nil && predicted < *filter.PredictedMin {
				continue
			}
			if filter.PredictedMax != nil && predicted > *filter.PredictedMax {
				continue
			}
		}

		out = append(out, order)
	}

	return out
}

func matchesExact(value, filter string) bool {
	if filter == "" || filter == All {
		return true
	}
	return value == filter
}

func containsFold(value, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(value), lowerTerm)
}

type SortDirection string

const (
	SortDesc SortDirection = "desc"
	SortAsc  SortDirection = "asc"
)

// ParseSortDirection aceita "asc"/"desc"; qualquer outro valor vira desc (mais recentes primeiro)
func ParseSortDirection(value string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(value), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

var orderDateLayouts = []string{
	"01/02/06",
	"01/02/2006",
	"2006-01-02",
	time.RFC3339,
	"02 Jan 2006",
	"2 Jan 2006",
}

// ParseOrderDate interpreta a data de um pedido. Datas ilegíveis devolvem ok=false.
func ParseOrderDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortOrdersByDate ordena uma cópia de forma estável. Datas ilegíveis contam como a mais antiga possível.
func SortOrdersByDate(orders []domain.Order, direction SortDirection) []domain.Order {
	sorted := make([]domain.Order, len(orders))
	copy(sorted, orders)

	keys := make([]time.Time, len(sorted))
	for i, order := range sorted {
		// time.Time{} é anterior a qualquer data válida
		keys[i], _ = ParseOrderDate(order.Date)
	}

	indexes := make([]int, len(sorted))
	for i := range indexes {
		indexes[i] = i
	}

	sort.SliceStable(indexes, func(a, b int) bool {
		ta, tb := keys[indexes[a]], keys[indexes[b]]
		if direction == SortAsc {
			return ta.Before(tb)
		}
		return ta.After(tb)
	})

	out := make([]domain.Order, len(sorted))
	for i, idx := range indexes {
		out[i] = sorted[idx]
	}
	return out
}
