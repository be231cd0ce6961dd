package sqlsource

import (
	"context"
	"database/sql"
	"io"

	pkgerrors "github.com/pkg/errors"

	"github.com/ib-77/relay/pkg/relay"
)

// Querier is the subset of database/sql both *sql.DB and *sql.Tx
// satisfy, and that TxScope re-exposes for the active transaction.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Rows streams a result set one row at a time through an injected
// scan function. It satisfies relay.Source.
type Rows[T any] struct {
	rows *sql.Rows
	scan func(*sql.Rows) (T, error)
}

func New[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) *Rows[T] {
	return &Rows[T]{rows: rows, scan: scan}
}

func (r *Rows[T]) Next() (T, error) {
	var zero T

	if r.rows.Next() {
		return r.scan(r.rows)
	}
	if err := r.rows.Err(); err != nil {
		return zero, pkgerrors.Wrap(err, "advance rows")
	}
	return zero, io.EOF
}

func (r *Rows[T]) Close() error {
	return r.rows.Close()
}

// Factory returns a source factory that runs query on q when the
// worker starts. Pass the TxScope itself as q to query inside the
// scope's read-only transaction.
func Factory[T any](q Querier, scan func(*sql.Rows) (T, error), query string, args ...any) relay.SourceFactory[T] {
	return func(ctx context.Context) (relay.Source[T], error) {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "query")
		}
		return New(rows, scan), nil
	}
}
