package sqlsource

import (
	"context"
	"database/sql"

	pkgerrors "github.com/pkg/errors"
)

// TxScope wraps a whole transfer in one read-only transaction. The
// transaction is opened when the scope runs and rolled back on every
// exit path; the action's error, if any, is returned after teardown.
//
// While the scope is running, TxScope is a Querier over the open
// transaction, so a Factory built on the scope queries inside it.
// A TxScope belongs to exactly one run at a time.
type TxScope struct {
	ctx context.Context
	db  *sql.DB
	tx  *sql.Tx
}

func NewTxScope(ctx context.Context, db *sql.DB) *TxScope {
	return &TxScope{ctx: ctx, db: db}
}

func (s *TxScope) Run(action func() error) error {
	tx, err := s.db.BeginTx(s.ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return pkgerrors.Wrap(err, "begin read-only tx")
	}

	s.tx = tx
	defer func() {
		s.tx = nil
		_ = tx.Rollback()
	}()

	return action()
}

func (s *TxScope) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if s.tx == nil {
		return nil, pkgerrors.New("no transaction in scope")
	}
	return s.tx.QueryContext(ctx, query, args...)
}
