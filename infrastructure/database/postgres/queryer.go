package postgres

import (
	"context"
	"database/sql"
)

// Queryer é atendido tanto pelo pool quanto por uma transação, então o
// repositório de usuários roda dentro ou fora de RunInTransaction.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
	_ Conn    = (*Connection)(nil)
)
