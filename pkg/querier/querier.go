package querier

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier runs statements on the transaction carried by ctx, or on the pool
// when there is none, and records how long postgres took to answer.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := q.executor(ctx).Exec(ctx, sql, args...)
	observe(methodExec, start, err)
	return tag, err
}

// Query measures the time to the first response only; rows are read lazily.
func (q *Querier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	start := time.Now()
	rows, err := q.executor(ctx).Query(ctx, sql, args...)
	observe(methodQuery, start, err)
	return rows, err
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	start := time.Now()
	return &row{
		row:   q.executor(ctx).QueryRow(ctx, sql, args...),
		start: start,
	}
}

func (q *Querier) executor(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

// row defers the observation to Scan, where pgx reports the query error.
type row struct {
	row   pgx.Row
	start time.Time
}

func (r *row) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	observe(methodQueryRow, r.start, err)
	return err
}
