// Package v2 provides an adapter for gocql v2 (github.com/apache/cassandra-gocql-driver).
package v2

import (
	"context"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/cervantes79/cassandracrud/adapter/cql"
)

// Session wraps a gocql v2 session.
type Session struct {
	session *gocql.Session
}

// NewSession creates a new v2 adapter from a gocql session.
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - *Session: An adapter implementing cql.Session
func NewSession(session *gocql.Session) *Session {
	return &Session{session: session}
}

// WrapSession is an alias for NewSession that wraps a gocql v2 session.
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	session, _ := cluster.CreateSession()
//	client, _ := cassandracrud.ConnectWithSession(ctx, v2.WrapSession(session), "my_keyspace")
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - cql.Session: An adapter implementing cql.Session interface
func WrapSession(session *gocql.Session) cql.Session {
	return NewSession(session)
}

// Query creates a new query for the given statement.
//
// Parameters:
//   - stmt: CQL statement with ? placeholders
//   - values: Values to bind to placeholders
//
// Returns:
//   - cql.Query: A query builder
func (s *Session) Query(stmt string, values ...any) cql.Query {
	return &Query{
		query:     s.session.Query(stmt, values...),
		statement: stmt,
		values:    values,
	}
}

// Batch creates a new batch of the given type.
//
// Parameters:
//   - kind: Type of batch
//
// Returns:
//   - cql.Batch: A batch builder
func (s *Session) Batch(kind cql.BatchType) cql.Batch {
	return &Batch{
		batch: s.session.Batch(gocql.BatchType(kind)),
	}
}

// Close terminates the session.
func (s *Session) Close() {
	s.session.Close()
}

// Query wraps a gocql v2 query.
type Query struct {
	query     *gocql.Query
	statement string
	values    []any
	ctx       context.Context
}

// WithContext associates a context with the query.
//
// The v2 driver deprecates WithContext in favor of the *Context execution
// methods; the context is stored here and applied at execution time.
func (q *Query) WithContext(ctx context.Context) cql.Query {
	q.ctx = ctx
	return q
}

// Consistency sets the consistency level.
func (q *Query) Consistency(c cql.Consistency) cql.Query {
	q.query = q.query.Consistency(gocql.Consistency(c))
	return q
}

// Exec executes the query.
func (q *Query) Exec() error {
	if q.ctx != nil {
		return q.query.ExecContext(q.ctx)
	}
	return q.query.Exec()
}

// Iter returns an iterator for results.
func (q *Query) Iter() cql.Iter {
	if q.ctx != nil {
		return &Iter{iter: q.query.IterContext(q.ctx)}
	}
	return &Iter{iter: q.query.Iter()}
}

// MapScan executes and scans a single row into a map.
func (q *Query) MapScan(m map[string]any) error {
	if q.ctx != nil {
		return q.query.MapScanContext(q.ctx, m)
	}
	return q.query.MapScan(m)
}

// Statement returns the CQL statement.
func (q *Query) Statement() string {
	return q.statement
}

// Values returns the bound values.
func (q *Query) Values() []any {
	return q.values
}

// Batch wraps a gocql v2 batch.
type Batch struct {
	batch *gocql.Batch
	size  int
	ctx   context.Context
}

// Query adds a statement to the batch.
func (b *Batch) Query(stmt string, args ...any) cql.Batch {
	b.batch = b.batch.Query(stmt, args...)
	b.size++

	return b
}

// Consistency sets the consistency level.
func (b *Batch) Consistency(c cql.Consistency) cql.Batch {
	b.batch = b.batch.Consistency(gocql.Consistency(c))
	return b
}

// WithContext associates a context with the batch.
//
// The v2 driver deprecates WithContext in favor of ExecContext; the context
// is stored here and applied at execution time.
func (b *Batch) WithContext(ctx context.Context) cql.Batch {
	b.ctx = ctx
	return b
}

// Size returns the number of statements in the batch.
func (b *Batch) Size() int {
	return b.size
}

// Exec executes the batch.
func (b *Batch) Exec() error {
	if b.ctx != nil {
		return b.batch.ExecContext(b.ctx)
	}
	return b.batch.Exec()
}

// Iter wraps a gocql v2 iterator.
type Iter struct {
	iter *gocql.Iter
}

// MapScan reads the next row into a map.
func (i *Iter) MapScan(m map[string]any) bool {
	if i.iter == nil {
		return false
	}

	return i.iter.MapScan(m)
}

// SliceMap reads all rows into a slice of maps.
func (i *Iter) SliceMap() ([]map[string]any, error) {
	if i.iter == nil {
		return nil, nil
	}

	return i.iter.SliceMap()
}

// Columns returns metadata about the columns in the result set.
func (i *Iter) Columns() []cql.ColumnInfo {
	if i.iter == nil {
		return nil
	}

	gocqlCols := i.iter.Columns()
	result := make([]cql.ColumnInfo, len(gocqlCols))
	for idx, col := range gocqlCols {
		result[idx] = cql.ColumnInfo{
			Keyspace: col.Keyspace,
			Table:    col.Table,
			Name:     col.Name,
			TypeInfo: col.TypeInfo,
		}
	}

	return result
}

// NumRows returns the number of rows in the current page.
func (i *Iter) NumRows() int {
	if i.iter == nil {
		return 0
	}

	return i.iter.NumRows()
}

// Close closes the iterator.
func (i *Iter) Close() error {
	if i.iter == nil {
		return nil
	}

	return i.iter.Close()
}
