package dashboarding

import (
	"strings"

	"github.com/jszwec/csvutil"
)

// ExportOrdersCSV exporta os pedidos da visão de vendas, com filtros e ordenação aplicados
func (s *Service) ExportOrdersCSV(params ViewParams) ([]byte, error) {
	view := s.Sales(params)
	return marshalCSV(view.Orders)
}

// ExportNotificationsCSV exporta as notificações na ordem exibida
func (s *Service) ExportNotificationsCSV(params ViewParams) ([]byte, error) {
	view := s.Notifications(params)
	return marshalCSV(view.Notifications)
}

// marshalCSV escreve só o cabeçalho quando a lista está vazia
func marshalCSV[T any](rows []T) ([]byte, error) {
	if len(rows) == 0 {
		var zero T
		header, err := csvutil.Header(zero, "csv")
		if err != nil {
			return nil, err
		}
		return []byte(strings.Join(header, ",") + "\n"), nil
	}
	return csvutil.Marshal(rows)
}
