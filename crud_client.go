package cassandracrud

import (
	"context"
	"sync/atomic"

	"github.com/cervantes79/cassandracrud/adapter/cql"
	"github.com/cervantes79/cassandracrud/catalog"
	"github.com/cervantes79/cassandracrud/types"
)

// Client exposes generic CRUD operations over a discovered keyspace schema.
//
// Every operation is a single-shot, stateless translation of its input into
// one parameterized statement (or one batch), executed through the driver
// session. The client owns no retry or consistency logic; both belong to
// the driver. The catalog is populated once at construction and read-only
// afterwards, so a single client is safe for concurrent use from multiple
// goroutines.
//
// # Lifecycle
//
// Create a client with Connect or ConnectWithSession and release the
// underlying session with Close:
//
//	client, err := cassandracrud.Connect(ctx, []string{"127.0.0.1"}, "my_keyspace")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
// After Close, operations return ErrClientClosed.
type Client struct {
	session cql.Session
	catalog *catalog.Catalog
	config  *ClientConfig
	closed  atomic.Bool
}

// Catalog returns the schema catalog discovered at construction.
//
// The catalog is read-only; it is never refreshed after construction. A
// table created after discovery is invisible until a new client is built.
func (c *Client) Catalog() *catalog.Catalog {
	return c.catalog
}

// Create inserts one or more rows into the table.
//
// rows may be a single Record (or map[string]any), inserted with one
// statement, or a slice of them, inserted as one batch sent in a single
// round trip. Rows in a batch are grouped by key set so each distinct key
// set shares one INSERT text. An empty slice is a no-op: zero statements
// are sent and nil is returned.
//
// A batch is a delivery optimization, not a transaction: atomicity across
// partitions is not guaranteed beyond the logged-batch default.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - table: Target table name
//   - rows: Record, map[string]any, []Record, or []map[string]any
//
// Returns:
//   - error: *types.TableNotFoundError if the table is unknown,
//     *types.InvalidInputError for unsupported shapes, *types.QueryError
//     if execution fails
func (c *Client) Create(ctx context.Context, table string, rows any) error {
	if c.closed.Load() {
		return types.ErrClientClosed
	}
	if _, ok := c.catalog.Lookup(table); !ok {
		return &types.TableNotFoundError{Table: table}
	}

	switch input := rows.(type) {
	case types.Record:
		return c.insertOne(ctx, table, input)
	case map[string]any:
		return c.insertOne(ctx, table, types.Record(input))
	case []types.Record:
		return c.insertBatch(ctx, table, input)
	case []map[string]any:
		records := make([]types.Record, len(input))
		for i, row := range input {
			records[i] = types.Record(row)
		}

		return c.insertBatch(ctx, table, records)
	default:
		return &types.InvalidInputError{Op: "create", Reason: "rows must be a record or a slice of records"}
	}
}

// Read selects rows from the table.
//
// conditions restricts the result: equality per key, or membership when the
// value is a slice (bound as one IN parameter). nil or empty conditions
// select the whole table. columns restricts the projection; nil selects
// every column. Rows come back in driver order; Cassandra applies no
// implicit ordering across partitions.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - table: Target table name
//   - conditions: Column filters conjoined with AND, may be nil
//   - columns: Projection, nil for all columns
//
// Returns:
//   - []Record: Matching rows; empty (non-nil) when nothing matched
//   - error: *types.TableNotFoundError if the table is unknown,
//     *types.QueryError if execution fails
func (c *Client) Read(ctx context.Context, table string, conditions types.Record, columns []string) ([]types.Record, error) {
	if c.closed.Load() {
		return nil, types.ErrClientClosed
	}
	if _, ok := c.catalog.Lookup(table); !ok {
		return nil, &types.TableNotFoundError{Table: table}
	}

	stmt, params := buildSelect(table, columns, conditions)

	iter := c.session.Query(stmt, params...).WithContext(ctx).Consistency(c.config.Consistency).Iter()

	records := make([]types.Record, 0)
	row := make(map[string]any)
	for iter.MapScan(row) {
		records = append(records, types.Record(row))
		row = make(map[string]any)
	}
	if err := iter.Close(); err != nil {
		return nil, c.queryFailed(stmt, err)
	}

	return records, nil
}

// Update modifies columns on rows matching the conditions.
//
// Both data and conditions must be non-empty. Data values are bound first,
// condition values after, each in sorted key order.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - table: Target table name
//   - data: Column assignments, must be non-empty
//   - conditions: Column filters conjoined with AND, must be non-empty
//
// Returns:
//   - error: *types.TableNotFoundError if the table is unknown,
//     *types.InvalidInputError for empty data or conditions,
//     *types.QueryError if execution fails
func (c *Client) Update(ctx context.Context, table string, data, conditions types.Record) error {
	if c.closed.Load() {
		return types.ErrClientClosed
	}
	if _, ok := c.catalog.Lookup(table); !ok {
		return &types.TableNotFoundError{Table: table}
	}
	if len(data) == 0 {
		return &types.InvalidInputError{Op: "update", Reason: "data cannot be empty"}
	}
	if len(conditions) == 0 {
		return &types.InvalidInputError{Op: "update", Reason: "conditions cannot be empty"}
	}

	stmt, params := buildUpdate(table, data, conditions)

	return c.exec(ctx, stmt, params)
}

// Delete removes rows matching the conditions.
//
// conditions must be non-empty: an unconditional delete is intentionally
// unsupported so a missing filter can never wipe a table. Callers that
// truly need one must issue it through ExecRaw.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - table: Target table name
//   - conditions: Column filters conjoined with AND, must be non-empty
//
// Returns:
//   - error: *types.TableNotFoundError if the table is unknown,
//     *types.InvalidInputError for empty conditions, *types.QueryError if
//     execution fails
func (c *Client) Delete(ctx context.Context, table string, conditions types.Record) error {
	if c.closed.Load() {
		return types.ErrClientClosed
	}
	if _, ok := c.catalog.Lookup(table); !ok {
		return &types.TableNotFoundError{Table: table}
	}
	if len(conditions) == 0 {
		return &types.InvalidInputError{Op: "delete", Reason: "conditions cannot be empty"}
	}

	stmt, params := buildDelete(table, conditions)

	return c.exec(ctx, stmt, params)
}

// ExecRaw passes a statement straight through to the driver, bypassing the
// catalog, and returns the tabular result unmodified.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - query: CQL statement with ? placeholders
//   - params: Values to bind to placeholders
//
// Returns:
//   - *Rows: Column names in driver order plus one Record per row
//   - error: *types.QueryError if execution fails
func (c *Client) ExecRaw(ctx context.Context, query string, params ...any) (*types.Rows, error) {
	if c.closed.Load() {
		return nil, types.ErrClientClosed
	}

	iter := c.session.Query(query, params...).WithContext(ctx).Consistency(c.config.Consistency).Iter()

	var columns []string
	for _, col := range iter.Columns() {
		columns = append(columns, col.Name)
	}

	raw, err := iter.SliceMap()
	if err != nil {
		_ = iter.Close()
		return nil, c.queryFailed(query, err)
	}
	if err := iter.Close(); err != nil {
		return nil, c.queryFailed(query, err)
	}

	records := make([]types.Record, len(raw))
	for i, row := range raw {
		records[i] = types.Record(row)
	}

	return &types.Rows{Columns: columns, Records: records}, nil
}

// Close releases the underlying session. The client cannot be reused.
func (c *Client) Close() {
	if c.closed.CompareAndSwap(false, true) {
		c.session.Close()
		c.config.Logger.Info("connection closed", "keyspace", c.catalog.Keyspace())
	}
}

// insertOne sends a single INSERT.
func (c *Client) insertOne(ctx context.Context, table string, row types.Record) error {
	if len(row) == 0 {
		return &types.InvalidInputError{Op: "create", Reason: "row cannot be empty"}
	}

	keys := row.Keys()
	stmt := buildInsert(table, keys)
	params := make([]any, len(keys))
	for i, key := range keys {
		params[i] = row[key]
	}

	return c.exec(ctx, stmt, params)
}

// insertBatch sends every row as one batch in a single round trip. One
// INSERT text is built per distinct key set and reused across rows.
func (c *Client) insertBatch(ctx context.Context, table string, rows []types.Record) error {
	if len(rows) == 0 {
		return nil
	}

	statements := make(map[string]string, 1)
	batch := c.session.Batch(c.config.BatchType).WithContext(ctx).Consistency(c.config.Consistency)

	for _, row := range rows {
		if len(row) == 0 {
			return &types.InvalidInputError{Op: "create", Reason: "rows cannot contain empty records"}
		}

		sig := row.KeySignature()
		stmt, ok := statements[sig]
		if !ok {
			stmt = buildInsert(table, row.Keys())
			statements[sig] = stmt
		}

		keys := row.Keys()
		params := make([]any, len(keys))
		for i, key := range keys {
			params[i] = row[key]
		}
		batch.Query(stmt, params...)
	}

	if err := batch.Exec(); err != nil {
		return c.queryFailed("batch insert into "+table, err)
	}

	c.config.Logger.Debug("batch insert complete", "table", table, "rows", len(rows))

	return nil
}

// exec runs a single mutation statement.
func (c *Client) exec(ctx context.Context, stmt string, params []any) error {
	err := c.session.Query(stmt, params...).WithContext(ctx).Consistency(c.config.Consistency).Exec()
	if err != nil {
		return c.queryFailed(stmt, err)
	}

	return nil
}

// queryFailed logs an execution failure together with the statement text
// and wraps it for the caller.
func (c *Client) queryFailed(stmt string, err error) error {
	c.config.Logger.Error("query execution failed",
		"statement", stmt,
		"error", err,
	)

	return &types.QueryError{Statement: stmt, Cause: err}
}
