package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de database/sql usado pelos repositórios,
// satisfeito tanto pela conexão quanto por uma transação
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
