// Package types provides shared types and errors for the cassandracrud library.
//
// This is a "leaf" package with no imports from other cassandracrud packages,
// allowing it to be imported by any package without causing import cycles.
package types

import (
	"errors"
	"sort"
	"strings"
)

// TableDescriptor describes one table discovered from a keyspace's
// system-schema metadata.
//
// A descriptor is built once during schema discovery and never mutated
// afterwards, so it is safe to share across goroutines without locking.
type TableDescriptor struct {
	// Name is the raw table name as reported by system_schema.tables.
	Name string

	// RecordType is the CamelCase type name derived from the table name
	// (e.g. "user_profile" becomes "UserProfile"). It is informational
	// only; rows are always represented as generic Records.
	RecordType string

	// PartitionKeys lists every column with kind 'partition_key', in the
	// order reported by the metadata query. Composite partition keys are
	// preserved in full rather than collapsed to the first column.
	PartitionKeys []string

	// Columns maps each column name to its declared CQL type string.
	// Type strings are opaque at this layer and are never interpreted
	// into native Go types; value coercion belongs to the driver.
	Columns map[string]string
}

// PrimaryKey returns the first partition-key column, or an empty string if
// the table has none. Callers needing the full composite key should use
// PartitionKeys directly.
func (d *TableDescriptor) PrimaryKey() string {
	if len(d.PartitionKeys) == 0 {
		return ""
	}
	return d.PartitionKeys[0]
}

// HasColumn reports whether the table declares the given column.
func (d *TableDescriptor) HasColumn(name string) bool {
	_, ok := d.Columns[name]
	return ok
}

// ColumnNames returns the table's column names in sorted order.
func (d *TableDescriptor) ColumnNames() []string {
	names := make([]string, 0, len(d.Columns))
	for name := range d.Columns {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Record is a single row expressed as a mapping from column name to value.
//
// Values are whatever the underlying driver produced for the column's CQL
// type; this layer performs no coercion.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// Keys returns the record's column names in sorted order.
//
// Sorted order makes generated statements deterministic, which matters for
// bulk inserts where rows sharing a key set must share one statement.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// KeySignature returns a canonical representation of the record's key set.
// Two records with equal signatures can be bound to the same INSERT text.
func (r Record) KeySignature() string {
	return strings.Join(r.Keys(), ",")
}

// Rows is the tabular result of a raw query: named columns in driver order
// plus one Record per returned row.
type Rows struct {
	// Columns holds the column names in the order reported by the driver.
	// Empty when the result set had no rows and the driver reported no
	// column metadata.
	Columns []string

	// Records holds one entry per returned row.
	Records []Record
}

// Len returns the number of rows in the result.
func (r *Rows) Len() int {
	return len(r.Records)
}

// Consistency represents the Cassandra consistency level.
type Consistency uint16

// Common consistency levels matching gocql.
const (
	Any         Consistency = 0x00
	One         Consistency = 0x01
	Two         Consistency = 0x02
	Three       Consistency = 0x03
	Quorum      Consistency = 0x04
	All         Consistency = 0x05
	LocalQuorum Consistency = 0x06
	EachQuorum  Consistency = 0x07
	Serial      Consistency = 0x08
	LocalSerial Consistency = 0x09
	LocalOne    Consistency = 0x0A
)

// BatchType represents the type of batch operation.
//
// Bulk inserts default to LoggedBatch. A Cassandra batch is a delivery
// optimization, not a transaction: atomicity across partitions is not
// guaranteed beyond what the logged-batch default provides within one
// partition.
type BatchType byte

// Batch types matching gocql.
const (
	LoggedBatch   BatchType = 0
	UnloggedBatch BatchType = 1
	CounterBatch  BatchType = 2
)

// Sentinel errors for common failure scenarios.
var (
	// ErrConnectFailed indicates that connection establishment failed after
	// exhausting the fixed retry budget.
	ErrConnectFailed = errors.New("cassandracrud: failed to connect after retries")

	// ErrTableNotFound indicates a CRUD operation targeted a table that is
	// absent from the catalog. Use errors.Is against this sentinel, or
	// errors.As with *TableNotFoundError to recover the table name.
	ErrTableNotFound = errors.New("cassandracrud: table not found in catalog")

	// ErrInvalidInput indicates a CRUD operation received input of the
	// wrong shape (e.g. empty conditions on delete).
	ErrInvalidInput = errors.New("cassandracrud: invalid input")

	// ErrNilSession indicates that a nil session was provided.
	ErrNilSession = errors.New("cassandracrud: session cannot be nil")

	// ErrClientClosed indicates an operation was attempted on a closed client.
	ErrClientClosed = errors.New("cassandracrud: client is closed")
)

// TableNotFoundError reports a CRUD call against a table the catalog never
// discovered. The catalog is not auto-refreshed; callers must re-run
// discovery to pick up new tables.
type TableNotFoundError struct {
	// Table is the table name the caller asked for.
	Table string
}

// Error implements the error interface.
func (e *TableNotFoundError) Error() string {
	return "cassandracrud: table " + e.Table + " not found in catalog"
}

// Unwrap returns ErrTableNotFound for errors.Is compatibility.
func (e *TableNotFoundError) Unwrap() error {
	return ErrTableNotFound
}

// InvalidInputError reports input of the wrong shape to a CRUD operation.
type InvalidInputError struct {
	// Op is the operation that rejected the input (create, read, update, delete).
	Op string

	// Reason describes what was wrong with the input.
	Reason string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return "cassandracrud: " + e.Op + ": " + e.Reason
}

// Unwrap returns ErrInvalidInput for errors.Is compatibility.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// QueryError wraps a driver-level execution failure with the statement that
// triggered it. The statement text is included so failures are diagnosable
// without re-deriving the generated CQL.
type QueryError struct {
	// Statement is the CQL text that failed.
	Statement string

	// Cause is the underlying driver error.
	Cause error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return "cassandracrud: query failed: " + e.Cause.Error() + " (statement: " + e.Statement + ")"
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *QueryError) Unwrap() error {
	return e.Cause
}
