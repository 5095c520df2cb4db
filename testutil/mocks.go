package testutil

import (
	"context"
	"sync"

	"github.com/cervantes79/cassandracrud/adapter/cql"
)

// MockSession is a scriptable implementation of cql.Session for testing.
//
// Result rows and errors are keyed by exact statement text via SetRows and
// SetError. Every issued query and batch is recorded for later inspection.
type MockSession struct {
	mu      sync.Mutex
	queries []*MockQuery
	batches []*MockBatch
	rows    map[string][]map[string]any
	errs    map[string]error
	closed  bool

	// BatchErr, when set, is returned by every batch execution.
	BatchErr error

	// OnQuery, when set, overrides SetRows/SetError: the hook receives the
	// statement and bound values and returns the rows and error for that
	// query. Useful when the same statement text is issued with different
	// parameters.
	OnQuery func(stmt string, values ...any) ([]map[string]any, error)
}

// Compile-time assertion that MockSession implements cql.Session.
var _ cql.Session = (*MockSession)(nil)

// NewMockSession creates a new mock session with no scripted results.
func NewMockSession() *MockSession {
	return &MockSession{
		rows: make(map[string][]map[string]any),
		errs: make(map[string]error),
	}
}

// SetRows scripts the result rows returned for the given statement.
func (m *MockSession) SetRows(stmt string, rows ...map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows[stmt] = rows
}

// SetError scripts an execution error for the given statement.
func (m *MockSession) SetError(stmt string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errs[stmt] = err
}

// Query records and returns a mock query for the given statement.
func (m *MockSession) Query(stmt string, values ...any) cql.Query {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := &MockQuery{
		stmt:   stmt,
		values: values,
		rows:   m.rows[stmt],
		err:    m.errs[stmt],
	}
	if m.OnQuery != nil {
		q.rows, q.err = m.OnQuery(stmt, values...)
	}
	m.queries = append(m.queries, q)

	return q
}

// Batch records and returns a mock batch of the given type.
func (m *MockSession) Batch(kind cql.BatchType) cql.Batch {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := &MockBatch{kind: kind, err: m.BatchErr}
	m.batches = append(m.batches, b)

	return b
}

// Close marks the session as closed.
func (m *MockSession) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
}

// IsClosed reports whether the session has been closed.
func (m *MockSession) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closed
}

// Queries returns every query issued through the session, in order.
func (m *MockSession) Queries() []*MockQuery {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*MockQuery(nil), m.queries...)
}

// Statements returns the statement text of every issued query, in order.
func (m *MockSession) Statements() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	stmts := make([]string, len(m.queries))
	for i, q := range m.queries {
		stmts[i] = q.stmt
	}

	return stmts
}

// Batches returns every batch issued through the session, in order.
func (m *MockSession) Batches() []*MockBatch {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*MockBatch(nil), m.batches...)
}

// MockQuery is a mock implementation of cql.Query.
type MockQuery struct {
	stmt   string
	values []any
	rows   []map[string]any
	err    error
	execed bool
}

// Compile-time assertion that MockQuery implements cql.Query.
var _ cql.Query = (*MockQuery)(nil)

// WithContext is a no-op for the mock.
func (q *MockQuery) WithContext(_ context.Context) cql.Query { return q }

// Consistency is a no-op for the mock.
func (q *MockQuery) Consistency(_ cql.Consistency) cql.Query { return q }

// Exec records execution and returns the scripted error.
func (q *MockQuery) Exec() error {
	q.execed = true
	return q.err
}

// Iter returns an iterator over the scripted rows.
func (q *MockQuery) Iter() cql.Iter {
	q.execed = true
	return &MockIter{rows: q.rows, err: q.err}
}

// MapScan copies the first scripted row into m.
func (q *MockQuery) MapScan(m map[string]any) error {
	q.execed = true
	if q.err != nil {
		return q.err
	}
	if len(q.rows) > 0 {
		for k, v := range q.rows[0] {
			m[k] = v
		}
	}

	return nil
}

// Statement returns the query's statement text.
func (q *MockQuery) Statement() string { return q.stmt }

// Values returns the query's bound values.
func (q *MockQuery) Values() []any { return q.values }

// Executed reports whether the query was executed.
func (q *MockQuery) Executed() bool { return q.execed }

// BatchEntry is one recorded statement in a MockBatch.
type BatchEntry struct {
	Statement string
	Args      []any
}

// MockBatch is a mock implementation of cql.Batch.
type MockBatch struct {
	kind    cql.BatchType
	entries []BatchEntry
	err     error
	execed  bool
}

// Compile-time assertion that MockBatch implements cql.Batch.
var _ cql.Batch = (*MockBatch)(nil)

// Query records a statement in the batch.
func (b *MockBatch) Query(stmt string, args ...any) cql.Batch {
	b.entries = append(b.entries, BatchEntry{Statement: stmt, Args: args})
	return b
}

// Consistency is a no-op for the mock.
func (b *MockBatch) Consistency(_ cql.Consistency) cql.Batch { return b }

// WithContext is a no-op for the mock.
func (b *MockBatch) WithContext(_ context.Context) cql.Batch { return b }

// Size returns the number of recorded statements.
func (b *MockBatch) Size() int { return len(b.entries) }

// Exec records execution and returns the scripted error.
func (b *MockBatch) Exec() error {
	b.execed = true
	return b.err
}

// Kind returns the batch type.
func (b *MockBatch) Kind() cql.BatchType { return b.kind }

// Entries returns the recorded statements, in order.
func (b *MockBatch) Entries() []BatchEntry { return b.entries }

// Executed reports whether the batch was executed.
func (b *MockBatch) Executed() bool { return b.execed }

// MockIter is a mock implementation of cql.Iter backed by a row slice.
type MockIter struct {
	rows    []map[string]any
	idx     int
	err     error
	columns []cql.ColumnInfo
}

// Compile-time assertion that MockIter implements cql.Iter.
var _ cql.Iter = (*MockIter)(nil)

// NewMockIter creates an iterator over the given rows.
func NewMockIter(rows ...map[string]any) *MockIter {
	return &MockIter{rows: rows}
}

// SetColumns scripts the column metadata returned by Columns.
func (i *MockIter) SetColumns(cols ...cql.ColumnInfo) {
	i.columns = cols
}

// MapScan copies the next row into m.
func (i *MockIter) MapScan(m map[string]any) bool {
	if i.err != nil || i.idx >= len(i.rows) {
		return false
	}
	for k, v := range i.rows[i.idx] {
		m[k] = v
	}
	i.idx++

	return true
}

// SliceMap returns all remaining rows.
func (i *MockIter) SliceMap() ([]map[string]any, error) {
	if i.err != nil {
		return nil, i.err
	}
	remaining := i.rows[i.idx:]
	i.idx = len(i.rows)

	return remaining, nil
}

// Columns returns the scripted column metadata.
func (i *MockIter) Columns() []cql.ColumnInfo {
	return i.columns
}

// NumRows returns the total scripted row count.
func (i *MockIter) NumRows() int {
	return len(i.rows)
}

// Close returns the scripted iteration error.
func (i *MockIter) Close() error {
	return i.err
}
