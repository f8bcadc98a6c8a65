// Package migration cria as tabelas do serviço: usuários e documentos em tempo real
package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/pgstore"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	lastname TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	avatar_url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Statements devolve o DDL na ordem de execução
func Statements(notifyChannel string) []string {
	return []string{usersSchema, pgstore.Schema(notifyChannel)}
}

// Run aplica o DDL numa transação. Pode ser executado várias vezes.
func Run(ctx context.Context, conn postgres.Conn, notifyChannel string) error {
	logrus.Info("Aplicando migrações do banco de dados")

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range Statements(notifyChannel) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro na migração %d: %w", i+1, err)
			}
		}
		return nil
	})
}
