package sqlsource

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
)

// memDriver is the smallest driver that supports what the package
// needs: context queries and read-only transactions. Every query
// returns the rows currently configured on the driver.
type memDriver struct {
	mu        sync.Mutex
	cols      []string
	rows      [][]driver.Value
	failAfter int // row index whose advance fails; 0 means never
	queryErr  error

	begun     int
	readOnly  bool
	rollbacks int
	commits   int
}

func (d *memDriver) reset(cols []string, rows [][]driver.Value) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cols = cols
	d.rows = rows
	d.failAfter = 0
	d.queryErr = nil
	d.begun = 0
	d.readOnly = false
	d.rollbacks = 0
	d.commits = 0
}

func (d *memDriver) Open(name string) (driver.Conn, error) {
	return &memConn{d: d}, nil
}

type memConn struct {
	d *memDriver
}

func (c *memConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("memdriver: prepared statements not supported")
}

func (c *memConn) Close() error {
	return nil
}

func (c *memConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *memConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	c.d.mu.Lock()
	c.d.begun++
	c.d.readOnly = opts.ReadOnly
	c.d.mu.Unlock()
	return &memTx{d: c.d}, nil
}

func (c *memConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.d.mu.Lock()
	defer c.d.mu.Unlock()
	if c.d.queryErr != nil {
		return nil, c.d.queryErr
	}
	return &memRows{
		cols:      c.d.cols,
		rows:      c.d.rows,
		failAfter: c.d.failAfter,
	}, nil
}

type memTx struct {
	d *memDriver
}

func (t *memTx) Commit() error {
	t.d.mu.Lock()
	t.d.commits++
	t.d.mu.Unlock()
	return nil
}

func (t *memTx) Rollback() error {
	t.d.mu.Lock()
	t.d.rollbacks++
	t.d.mu.Unlock()
	return nil
}

type memRows struct {
	cols      []string
	rows      [][]driver.Value
	failAfter int
	idx       int
}

func (r *memRows) Columns() []string {
	return r.cols
}

func (r *memRows) Close() error {
	return nil
}

func (r *memRows) Next(dest []driver.Value) error {
	if r.failAfter > 0 && r.idx == r.failAfter {
		return errors.New("cursor lost")
	}
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}

var memdrv = &memDriver{}

func init() {
	sql.Register("relaymem", memdrv)
}

func openMemDB() (*sql.DB, error) {
	return sql.Open("relaymem", "")
}
