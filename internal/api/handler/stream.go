package handler

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/views"
	"github.com/vfg2006/inventory-dashboard-api/internal/workspace"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/lifecycle"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

const (
	streamHeartbeat        = 25 * time.Second
	sessionEndedEvent      = "session-ended"
	streamErrorEventFormat = "event: error\ndata: %s\n\n"
)

// streamParams monta os parâmetros da visão a partir da mesma query das rotas REST
func streamParams(r *http.Request, area dashboarding.Area, ws *workspace.Workspace) (dashboarding.ViewParams, error) {
	switch area {
	case dashboarding.AreaDashboard:
		threshold, err := parseThreshold(r)
		if err != nil {
			return dashboarding.ViewParams{}, fmt.Errorf("%s inválido", lowStockThresholdParam)
		}
		return dashboarding.ViewParams{LowStockThreshold: threshold}, nil
	case dashboarding.AreaSales:
		query := r.URL.Query()
		filter, err := parseOrderFilter(query)
		if err != nil {
			return dashboarding.ViewParams{}, err
		}
		return dashboarding.ViewParams{
			Filter: filter,
			Sort:   views.ParseSortDirection(query.Get("sort")),
			Orders: ws.Orders,
		}, nil
	default:
		return notificationParams(r, ws), nil
	}
}

// StreamArea mantém uma visão viva por SSE: cada alteração remota gera a visão remontada.
// A assinatura termina quando o cliente desconecta ou a sessão é encerrada.
func StreamArea(service *dashboarding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		area, err := dashboarding.ParseArea(httprouter.ParamsFromContext(r.Context()).ByName("area"))
		if err != nil {
			handleError(w, err, "Área do painel desconhecida")
			return
		}

		ws, ok := requireWorkspace(w, r)
		if !ok {
			return
		}

		params, err := streamParams(r, area, ws)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		guard := lifecycle.NewGuard(r.Context())

		emit := func(view any) {
			guard.Apply(func() {
				payload, err := json.Marshal(view)
				if err != nil {
					logger.WithError(err).Error("Erro ao codificar visão do stream")
					return
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", area, payload)
				flusher.Flush()
			})
		}

		sub, err := service.Watch(guard.Context(), area, params, emit)
		if err != nil {
			guard.Apply(func() {
				fmt.Fprintf(w, streamErrorEventFormat, "não foi possível assinar o documento")
				flusher.Flush()
			})
			guard.End()
			logger.WithError(err).Error("Erro ao abrir assinatura do stream")
			return
		}
		defer sub.Unwatch()
		defer guard.End()

		sessionEnded := make(chan struct{})
		var once sync.Once
		unlisten := ws.Session.Listen(func(identity *domain.Identity) {
			if identity == nil {
				once.Do(func() { close(sessionEnded) })
			}
		})
		defer unlisten()

		logger.WithFields(log.Fields{
			"area":       area,
			"session_id": ws.SessionID,
		}).Info("Stream aberto")

		ticker := time.NewTicker(streamHeartbeat)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				logger.WithField("area", area).Info("Stream encerrado pelo cliente")
				return
			case <-sessionEnded:
				guard.Apply(func() {
					fmt.Fprintf(w, "event: %s\ndata: {}\n\n", sessionEndedEvent)
					flusher.Flush()
				})
				logger.WithField("area", area).Info("Stream encerrado pelo logout")
				return
			case <-ticker.C:
				guard.Apply(func() {
					fmt.Fprint(w, ": ping\n\n")
					flusher.Flush()
				})
			}
		}
	}
}
