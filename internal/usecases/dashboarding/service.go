package dashboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/realtime"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/internal/views"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

var ErrUnknownArea = errors.New("área do painel desconhecida")

// Area é uma das telas do painel, cada uma ligada a um documento
type Area string

const (
	AreaDashboard     Area = "dashboard"
	AreaSales         Area = "sales"
	AreaNotifications Area = "notifications"
)

func ParseArea(value string) (Area, error) {
	switch Area(value) {
	case AreaDashboard, AreaSales, AreaNotifications:
		return Area(value), nil
	}
	return "", dispatching.NewDispatchError(ErrUnknownArea, apiErrors.ErrViewNotFound, value)
}

// ViewParams são os parâmetros de uma visão. Campos que não se aplicam à área são ignorados.
type ViewParams struct {
	LowStockThreshold float64
	Filter            views.OrderFilter
	Sort              views.SortDirection
	Search            string
	Orders            *dispatching.OrderOverlay
	History           *dispatching.NotificationHistory
}

// Service mantém um espelho por documento e monta as visões a partir deles
type Service struct {
	dashboard     *realtime.Mirror[domain.DashboardSnapshot]
	sales         *realtime.Mirror[domain.SalesSnapshot]
	notifications *realtime.Mirror[domain.NotificationsSnapshot]
	bridge        *realtime.Bridge

	lowStockThreshold float64
}

func NewService(bridge *realtime.Bridge, cfg config.Views) *Service {
	threshold := cfg.LowStockThreshold
	if threshold <= 0 {
		threshold = views.DefaultLowStockThreshold
	}

	return &Service{
		dashboard:         realtime.NewMirror[domain.DashboardSnapshot](bridge, domain.DashboardDocument),
		sales:             realtime.NewMirror[domain.SalesSnapshot](bridge, domain.SalesDocument),
		notifications:     realtime.NewMirror[domain.NotificationsSnapshot](bridge, domain.NotificationsDocument),
		bridge:            bridge,
		lowStockThreshold: threshold,
	}
}

// Start abre as três assinaturas de longa duração
func (s *Service) Start(ctx context.Context) error {
	if err := s.dashboard.Start(ctx); err != nil {
		return fmt.Errorf("erro ao assinar %s: %w", s.dashboard.Document(), err)
	}
	if err := s.sales.Start(ctx); err != nil {
		s.dashboard.Close()
		return fmt.Errorf("erro ao assinar %s: %w", s.sales.Document(), err)
	}
	if err := s.notifications.Start(ctx); err != nil {
		s.dashboard.Close()
		s.sales.Close()
		return fmt.Errorf("erro ao assinar %s: %w", s.notifications.Document(), err)
	}

	logrus.Info("Espelhos dos documentos do painel iniciados")
	return nil
}

func (s *Service) readyChannels() []<-chan struct{} {
	return []<-chan struct{}{s.dashboard.Ready(), s.sales.Ready(), s.notifications.Ready()}
}

// WaitReady espera o primeiro snapshot de cada documento
func (s *Service) WaitReady(ctx context.Context) error {
	for _, ready := range s.readyChannels() {
		select {
		case <-ready:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Ready informa, sem bloquear, se todos os documentos já entregaram o primeiro snapshot
func (s *Service) Ready() bool {
	for _, ready := range s.readyChannels() {
		select {
		case <-ready:
		default:
			return false
		}
	}
	return true
}

func (s *Service) Close() {
	s.dashboard.Close()
	s.sales.Close()
	s.notifications.Close()
}

// LowStockThreshold devolve o limite configurado para o painel
func (s *Service) LowStockThreshold() float64 {
	return s.lowStockThreshold
}

func (s *Service) threshold(params ViewParams) float64 {
	if params.LowStockThreshold > 0 {
		return params.LowStockThreshold
	}
	return s.lowStockThreshold
}

func (s *Service) Dashboard(params ViewParams) domain.DashboardView {
	snapshot, _ := s.dashboard.Latest()
	return views.DashboardView(snapshot, s.threshold(params))
}

// LowStock devolve as categorias abaixo do limite no snapshot atual
func (s *Service) LowStock(threshold float64) []domain.CategoryEntry {
	if threshold <= 0 {
		threshold = s.lowStockThreshold
	}
	snapshot, _ := s.dashboard.Latest()
	if snapshot == nil {
		return []domain.CategoryEntry{}
	}
	return views.FilterLowStock(snapshot.PieData, threshold)
}

func (s *Service) Sales(params ViewParams) domain.SalesView {
	snapshot, _ := s.sales.Latest()
	return salesView(snapshot, params)
}

func (s *Service) Notifications(params ViewParams) domain.NotificationsView {
	snapshot, _ := s.notifications.Latest()
	return notificationsView(snapshot, params)
}

// EditOrder altera o pedido só na visão da sessão; nada é gravado no store
func (s *Service) EditOrder(overlay *dispatching.OrderOverlay, id string, order domain.Order) error {
	return overlay.Edit(s.orders(), id, order)
}

// Order devolve o pedido visível na sessão
func (s *Service) Order(overlay *dispatching.OrderOverlay, id string) (domain.Order, bool) {
	return overlay.Current(s.orders(), id)
}

// DeleteOrder remove o pedido só na visão da sessão
func (s *Service) DeleteOrder(overlay *dispatching.OrderOverlay, id string) error {
	return overlay.Delete(s.orders(), id)
}

func (s *Service) orders() []domain.Order {
	snapshot, _ := s.sales.Latest()
	if snapshot == nil {
		return nil
	}
	return snapshot.Orders
}

func salesView(snapshot *domain.SalesSnapshot, params ViewParams) domain.SalesView {
	if snapshot != nil && params.Orders != nil {
		overlaid := *snapshot
		overlaid.Orders = params.Orders.Apply(snapshot.Orders)
		snapshot = &overlaid
	}
	return views.SalesView(snapshot, params.Filter, params.Sort)
}

func notificationsView(snapshot *domain.NotificationsSnapshot, params ViewParams) domain.NotificationsView {
	canUndo := params.History != nil && params.History.CanUndo()
	return views.NotificationsView(snapshot, params.Search, canUndo)
}
