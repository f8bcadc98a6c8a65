package views

import "github.com/vfg2006/inventory-dashboard-api/internal/domain"

// DefaultLowStockThreshold é o limite usado pelo painel quando nada é configurado
const DefaultLowStockThreshold = 20

// FilterLowStock devolve as entradas com quantidade definida e estritamente menor que threshold.
// Entradas sem quantidade ficam de fora, nunca contam como zero.
func FilterLowStock(entries []domain.CategoryEntry, threshold float64) []domain.CategoryEntry {
	out := make([]domain.CategoryEntry, 0)
	for _, entry := range entries {
		if entry.Quantity == nil || *entry.Quantity >= threshold {
			continue
		}
		quantity := *entry.Quantity
		entry.Quantity = &quantity
		out = append(out, entry)
	}
	return out
}
