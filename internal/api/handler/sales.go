package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/views"
	"github.com/vfg2006/inventory-dashboard-api/internal/workspace"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/middleware"
)

func parseDecimalParam(query url.Values, name string) (*decimal.Decimal, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s inválido: %s", name, raw)
	}
	return &value, nil
}

func parseFloatParam(query url.Values, name string) (*float64, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s inválido: %s", name, raw)
	}
	return &value, nil
}

// parseOrderFilter monta o filtro dos pedidos a partir da query string
func parseOrderFilter(query url.Values) (views.OrderFilter, error) {
	filter := views.OrderFilter{
		Search:   query.Get("search"),
		Product:  query.Get("product"),
		Payment:  query.Get("payment"),
		Status:   query.Get("status"),
		Customer: query.Get("customer"),
	}

	var err error
	if filter.PriceMin, err = parseDecimalParam(query, "price_min"); err != nil {
		return filter, err
	}
	if filter.PriceMax, err = parseDecimalParam(query, "price_max"); err != nil {
		return filter, err
	}
	if filter.PredictedMin, err = parseFloatParam(query, "predicted_min"); err != nil {
		return filter, err
	}
	if filter.PredictedMax, err = parseFloatParam(query, "predicted_max"); err != nil {
		return filter, err
	}
	return filter, nil
}

// salesParams junta filtro, ordenação e o overlay de pedidos da sessão
func salesParams(w http.ResponseWriter, r *http.Request) (dashboarding.ViewParams, *workspace.Workspace, bool) {
	ws, ok := middleware.WorkspaceFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return dashboarding.ViewParams{}, nil, false
	}

	query := r.URL.Query()
	filter, err := parseOrderFilter(query)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return dashboarding.ViewParams{}, nil, false
	}

	return dashboarding.ViewParams{
		Filter: filter,
		Sort:   views.ParseSortDirection(query.Get("sort")),
		Orders: ws.Orders,
	}, ws, true
}

func GetSales(service *dashboarding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, _, ok := salesParams(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, service.Sales(params))
	}
}

func ExportOrders(service *dashboarding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, _, ok := salesParams(w, r)
		if !ok {
			return
		}

		body, err := service.ExportOrdersCSV(params)
		if err != nil {
			handleError(w, err, "Erro ao exportar pedidos")
			return
		}
		writeCSV(w, "orders", body)
	}
}

func writeCSV(w http.ResponseWriter, name string, body []byte) {
	fileName := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	if _, err := w.Write(body); err != nil {
		logrus.WithError(err).Warn("Erro ao escrever CSV")
	}
}

// UpdateOrder edita o pedido apenas na visão desta sessão. O corpo é mesclado
// sobre o pedido atual: campos ausentes mantêm o valor que a sessão já vê.
func UpdateOrder(service *dashboarding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateOrder")

		params, ws, ok := salesParams(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pedido é obrigatório", nil)
			return
		}

		order, _ := service.Order(ws.Orders, id)
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.EditOrder(ws.Orders, id, order); err != nil {
			handleError(w, err, "Erro ao editar pedido")
			return
		}
		writeJSON(w, http.StatusOK, service.Sales(params))
	}
}

func DeleteOrder(service *dashboarding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteOrder")

		params, ws, ok := salesParams(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteOrder(ws.Orders, id); err != nil {
			handleError(w, err, "Erro ao remover pedido")
			return
		}
		writeJSON(w, http.StatusOK, service.Sales(params))
	}
}
