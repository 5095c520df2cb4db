// Package types provides shared types and error definitions for the
// cassandracrud library.
//
// This is a leaf package with zero cassandracrud imports to prevent import
// cycles. All packages in cassandracrud can safely import this package.
//
// # Types
//
// TableDescriptor captures the shape of one discovered table: its raw name,
// derived record-type name, partition-key columns, and column-to-CQL-type
// mapping. Descriptors are immutable after discovery.
//
// Record is the generic row representation: a map from column name to an
// untyped value. Rows wraps a raw query result with column ordering.
//
// Consistency levels mirror gocql:
//
//	const (
//	    Any         Consistency = 0x00
//	    One         Consistency = 0x01
//	    Quorum      Consistency = 0x04
//	    LocalQuorum Consistency = 0x06
//	    ...
//	)
//
// # Errors
//
// Sentinel errors are provided for common failure scenarios:
//
//   - ErrConnectFailed: connection retries exhausted
//   - ErrTableNotFound: CRUD call against an undiscovered table
//   - ErrInvalidInput: input of the wrong shape
//   - ErrNilSession: a nil session was provided
//   - ErrClientClosed: operation on a closed client
//
// Structured variants (TableNotFoundError, InvalidInputError, QueryError)
// carry context and unwrap to the matching sentinel for errors.Is checks.
package types
