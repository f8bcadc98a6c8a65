// Package views monta as visões derivadas dos snapshots. Todas as funções são puras:
// não alteram a entrada e toleram snapshots nil ou campos ausentes.
package views

import (
	"strings"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

var canonicalMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// CanonicalMonths devolve os doze rótulos de mês do eixo X
func CanonicalMonths() []string {
	out := make([]string, len(canonicalMonths))
	copy(out, canonicalMonths)
	return out
}

// ToMonthSeries devolve exatamente um registro por mês canônico, na ordem dos meses.
// Meses sem registro saem zerados. Se um mês aparece mais de uma vez vale o primeiro.
func ToMonthSeries(records []domain.FinancialRecord, months []string) []domain.FinancialRecord {
	byMonth := make(map[string]domain.FinancialRecord, len(records))
	for _, record := range records {
		key := monthKey(record.Month)
		if key == "" {
			continue
		}
		if _, exists := byMonth[key]; !exists {
			byMonth[key] = record
		}
	}

	series := make([]domain.FinancialRecord, 0, len(months))
	for _, month := range months {
		record, ok := byMonth[monthKey(month)]
		if !ok {
			series = append(series, domain.FinancialRecord{Month: month})
			continue
		}
		record.Month = month
		series = append(series, record)
	}

	return series
}

// monthKey compara meses pelas três primeiras letras, sem diferenciar maiúsculas ("jan", "January")
func monthKey(month string) string {
	month = strings.ToLower(strings.TrimSpace(month))
	if len(month) > 3 {
		return month[:3]
	}
	return month
}
