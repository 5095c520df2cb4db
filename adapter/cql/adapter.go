// Package cql provides CQL-specific adapter interfaces for different gocql versions.
package cql

import (
	"context"

	"github.com/cervantes79/cassandracrud/types"
)

// Type aliases for convenience - re-export from types package.
type (
	BatchType   = types.BatchType
	Consistency = types.Consistency
)

// Re-export batch type constants for convenience.
const (
	LoggedBatch   = types.LoggedBatch
	UnloggedBatch = types.UnloggedBatch
	CounterBatch  = types.CounterBatch
)

// Re-export consistency level constants for convenience.
const (
	Any         = types.Any
	One         = types.One
	Two         = types.Two
	Three       = types.Three
	Quorum      = types.Quorum
	All         = types.All
	LocalQuorum = types.LocalQuorum
	EachQuorum  = types.EachQuorum
	Serial      = types.Serial
	LocalSerial = types.LocalSerial
	LocalOne    = types.LocalOne
)

// Session represents a raw CQL session from the underlying driver.
//
// This interface is implemented by adapters for gocql v1 and v2. It is the
// complete driver contract this library depends on: parameterized query
// execution, batch execution, and shutdown. Node discovery, pooling, retry
// policies, and consistency semantics all live behind it.
type Session interface {
	// Query creates a new query for the given statement.
	//
	// Parameters:
	//   - stmt: CQL statement with ? placeholders
	//   - values: Values to bind to placeholders
	//
	// Returns:
	//   - Query: A query builder
	Query(stmt string, values ...any) Query

	// Batch creates a new batch of the given type.
	//
	// Parameters:
	//   - kind: Type of batch
	//
	// Returns:
	//   - Batch: A batch builder
	Batch(kind BatchType) Batch

	// Close terminates the session.
	Close()
}

// Query represents a raw CQL query from the underlying driver.
type Query interface {
	// WithContext associates a context with the query.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - Query: The same query for chaining
	WithContext(ctx context.Context) Query

	// Consistency sets the consistency level for the query.
	//
	// Parameters:
	//   - c: Consistency level
	//
	// Returns:
	//   - Query: The same query for chaining
	Consistency(c Consistency) Query

	// Exec executes the query without returning rows.
	//
	// Returns:
	//   - error: nil on success, error if execution fails
	Exec() error

	// Iter executes the query and returns an iterator over result rows.
	//
	// Returns:
	//   - Iter: Iterator for scanning rows
	Iter() Iter

	// MapScan executes the query and scans a single row into the map.
	//
	// Parameters:
	//   - m: Map to receive column name to value pairs
	//
	// Returns:
	//   - error: nil on success, error if the read fails
	MapScan(m map[string]any) error

	// Statement returns the CQL statement text.
	Statement() string

	// Values returns the bound values.
	Values() []any
}

// Batch represents a raw CQL batch from the underlying driver.
type Batch interface {
	// Query adds a statement to the batch.
	//
	// Parameters:
	//   - stmt: CQL statement with ? placeholders
	//   - args: Values to bind to placeholders
	//
	// Returns:
	//   - Batch: The same batch for chaining
	Query(stmt string, args ...any) Batch

	// Consistency sets the consistency level for the batch.
	//
	// Parameters:
	//   - c: Consistency level
	//
	// Returns:
	//   - Batch: The same batch for chaining
	Consistency(c Consistency) Batch

	// WithContext associates a context with the batch.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - Batch: The same batch for chaining
	WithContext(ctx context.Context) Batch

	// Size returns the number of statements in the batch.
	Size() int

	// Exec executes the batch in one round trip.
	//
	// Returns:
	//   - error: nil on success, error if execution fails
	Exec() error
}

// ColumnInfo holds metadata about a column in query results.
type ColumnInfo struct {
	// Keyspace is the keyspace containing the table.
	Keyspace string

	// Table is the table name.
	Table string

	// Name is the column name.
	Name string

	// TypeInfo describes the CQL type (implementation-specific).
	TypeInfo any
}

// Iter represents an iterator over query results from the underlying driver.
type Iter interface {
	// MapScan reads the next row into the map.
	//
	// Parameters:
	//   - m: Map to receive column name to value pairs
	//
	// Returns:
	//   - bool: true if a row was read, false if no more rows
	MapScan(m map[string]any) bool

	// SliceMap reads all remaining rows into a slice of maps.
	//
	// Returns:
	//   - []map[string]any: All remaining rows
	//   - error: Any error that occurred
	SliceMap() ([]map[string]any, error)

	// Columns returns metadata about the columns in the result set.
	//
	// Returns:
	//   - []ColumnInfo: Slice of column metadata
	Columns() []ColumnInfo

	// NumRows returns the number of rows in the current page.
	NumRows() int

	// Close closes the iterator and returns any error from iteration.
	//
	// Returns:
	//   - error: Any error that occurred during iteration
	Close() error
}
