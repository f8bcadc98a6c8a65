package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/connect"
	"github.com/vfg2006/inventory-dashboard-api/internal/realtime"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/views"
)

var (
	watchThreshold float64
	watchSearch    string
	watchSort      string
)

var watchCmd = &cobra.Command{
	Use:       "watch <dashboard|sales|notifications>",
	Short:     "Mostra a visão da área a cada alteração remota",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(dashboarding.AreaDashboard), string(dashboarding.AreaSales), string(dashboarding.AreaNotifications)},
	RunE:      runWatch,
}

func init() {
	watchCmd.Flags().Float64Var(&watchThreshold, "low-stock-threshold", 0, "limite de estoque baixo do painel")
	watchCmd.Flags().StringVar(&watchSearch, "search", "", "busca nos pedidos ou notificações")
	watchCmd.Flags().StringVar(&watchSort, "sort", "desc", "ordem dos pedidos por data: asc ou desc")
}

// openStore abre o document store configurado; o driver postgres precisa da conexão
func openStore(ctx context.Context) (docstore.Store, func(), error) {
	var conn *postgres.Connection
	if cfg.DocStore.Driver == connect.DriverPostgres || cfg.DocStore.Driver == "" {
		c, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		conn = c
	}

	store, err := connect.Open(ctx, cfg.DocStore, conn)
	if err != nil {
		if conn != nil {
			_ = conn.Close()
		}
		return nil, nil, err
	}

	return store, func() {
		_ = store.Close()
		if conn != nil {
			_ = conn.Close()
		}
	}, nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	area, err := dashboarding.ParseArea(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	return watchArea(ctx, cmd, dashboarding.NewService(realtime.NewBridge(store), cfg.Views), area)
}

func watchArea(ctx context.Context, cmd *cobra.Command, service *dashboarding.Service, area dashboarding.Area) error {
	params := dashboarding.ViewParams{
		LowStockThreshold: watchThreshold,
		Filter:            views.OrderFilter{Search: watchSearch},
		Sort:              views.ParseSortDirection(watchSort),
		Search:            watchSearch,
	}

	// Uma linha JSON por visão
	encoder := json.NewEncoder(cmd.OutOrStdout())
	updates := make(chan any, 16)

	// Cancelado antes do Unwatch, que espera o callback em andamento
	ctx, cancel := context.WithCancel(ctx)

	sub, err := service.Watch(ctx, area, params, func(view any) {
		select {
		case updates <- view:
		case <-ctx.Done():
		}
	})
	if err != nil {
		cancel()
		return err
	}
	defer sub.Unwatch()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case view := <-updates:
			if err := encoder.Encode(view); err != nil {
				return err
			}
		}
	}
}
