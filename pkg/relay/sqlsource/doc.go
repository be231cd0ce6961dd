// Package sqlsource adapts a streaming database query to the bridge: a
// relay.Source over *sql.Rows and a Scope that holds the whole transfer
// inside one read-only transaction.
package sqlsource
