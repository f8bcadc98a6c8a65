// Package connect escolhe o adaptador do document store a partir da configuração
package connect

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/memstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/mongostore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/pgstore"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Open abre o document store configurado. conn só é usado pelo driver postgres.
func Open(ctx context.Context, cfg config.DocStore, conn *postgres.Connection) (docstore.Store, error) {
	logrus.WithField("driver", cfg.Driver).Info("Abrindo document store")

	switch cfg.Driver {
	case DriverPostgres, "":
		if conn == nil {
			return nil, fmt.Errorf("docstore postgres requer conexão com o banco")
		}
		return pgstore.New(conn, cfg.NotifyChannel)
	case DriverMongo:
		return mongostore.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case DriverMemory:
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("driver de document store desconhecido: %s", cfg.Driver)
	}
}
