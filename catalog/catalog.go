// Package catalog discovers keyspace schemas from Cassandra system metadata
// and exposes them as immutable table descriptors.
//
// Discovery issues one metadata query for the keyspace's table list plus two
// per table (columns, partition keys). The populated catalog is read-only
// afterwards and safe for concurrent lookups without synchronization.
package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/cervantes79/cassandracrud/adapter/cql"
	"github.com/cervantes79/cassandracrud/internal/logging"
	"github.com/cervantes79/cassandracrud/types"
)

// Metadata queries against the system_schema keyspace. The kind predicate is
// not part of the columns table's primary key, so ALLOW FILTERING is required.
const (
	tablesCQL  = "SELECT table_name FROM system_schema.tables WHERE keyspace_name = ?"
	columnsCQL = "SELECT column_name, type FROM system_schema.columns WHERE keyspace_name = ? AND table_name = ?"
	partKeyCQL = "SELECT column_name, position FROM system_schema.columns WHERE keyspace_name = ? AND table_name = ? AND kind = 'partition_key' ALLOW FILTERING"
)

// Catalog maps raw table names to their discovered descriptors.
//
// A catalog is populated once by Discover and never mutated afterwards.
// Create one catalog per keyspace/connection; there is no global state.
type Catalog struct {
	keyspace string
	tables   map[string]*types.TableDescriptor
	logger   types.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the structured logger used during discovery.
//
// If not set, a no-op logger is used.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New creates an empty catalog.
//
// Returns:
//   - *Catalog: A catalog ready for Discover
func New(opts ...Option) *Catalog {
	c := &Catalog{
		tables: make(map[string]*types.TableDescriptor),
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Discover populates the catalog from the keyspace's system-schema metadata.
//
// For each table reported by system_schema.tables, the column set and
// partition-key columns are fetched and stored as one TableDescriptor keyed
// by the raw table name. A table whose metadata queries fail is logged and
// skipped, yielding a partial catalog rather than an error; only a failure
// of the table-list query itself is returned.
//
// Discover is not safe to call concurrently with Lookup. Populate the
// catalog before sharing it.
//
// Parameters:
//   - ctx: Context for cancellation and timeout, forwarded to the driver
//   - session: The driver session to query metadata through
//   - keyspace: Name of an existing keyspace on the connected cluster
//
// Returns:
//   - error: nil on (possibly partial) success, error if the keyspace's
//     table list cannot be fetched
func (c *Catalog) Discover(ctx context.Context, session cql.Session, keyspace string) error {
	if session == nil {
		return types.ErrNilSession
	}
	if keyspace == "" {
		return errors.New("cassandracrud: keyspace cannot be empty")
	}

	c.keyspace = keyspace

	names, err := c.tableNames(ctx, session, keyspace)
	if err != nil {
		return &types.QueryError{Statement: tablesCQL, Cause: err}
	}

	for _, name := range names {
		desc, err := c.describeTable(ctx, session, keyspace, name)
		if err != nil {
			// Partial catalog: the table is skipped, discovery continues.
			c.logger.Error("failed to describe table, skipping",
				"keyspace", keyspace,
				"table", name,
				"error", err,
			)

			continue
		}

		c.tables[name] = desc
	}

	c.logger.Info("schema discovery complete",
		"keyspace", keyspace,
		"tables", len(c.tables),
	)

	return nil
}

// Lookup returns the descriptor for the given raw table name.
//
// Parameters:
//   - table: Raw table name as stored during discovery
//
// Returns:
//   - *types.TableDescriptor: The descriptor, or nil if not found
//   - bool: true if the table was discovered
func (c *Catalog) Lookup(table string) (*types.TableDescriptor, bool) {
	desc, ok := c.tables[table]
	return desc, ok
}

// Keyspace returns the keyspace this catalog was discovered from.
func (c *Catalog) Keyspace() string {
	return c.keyspace
}

// Tables returns the discovered table names in sorted order.
func (c *Catalog) Tables() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of discovered tables.
func (c *Catalog) Len() int {
	return len(c.tables)
}

// tableNames fetches the keyspace's table list.
func (c *Catalog) tableNames(ctx context.Context, session cql.Session, keyspace string) ([]string, error) {
	iter := session.Query(tablesCQL, keyspace).WithContext(ctx).Iter()

	var names []string
	row := make(map[string]any)
	for iter.MapScan(row) {
		if name, ok := row["table_name"].(string); ok {
			names = append(names, name)
		}
		row = make(map[string]any)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return names, nil
}

// describeTable fetches a single table's column set and partition keys and
// assembles its descriptor.
func (c *Catalog) describeTable(ctx context.Context, session cql.Session, keyspace, table string) (*types.TableDescriptor, error) {
	columns, err := c.tableColumns(ctx, session, keyspace, table)
	if err != nil {
		return nil, &types.QueryError{Statement: columnsCQL, Cause: err}
	}

	partKeys, err := c.partitionKeys(ctx, session, keyspace, table)
	if err != nil {
		return nil, &types.QueryError{Statement: partKeyCQL, Cause: err}
	}

	return &types.TableDescriptor{
		Name:          table,
		RecordType:    RecordTypeName(table),
		PartitionKeys: partKeys,
		Columns:       columns,
	}, nil
}

// tableColumns fetches the (column_name, type) pairs for one table.
func (c *Catalog) tableColumns(ctx context.Context, session cql.Session, keyspace, table string) (map[string]string, error) {
	iter := session.Query(columnsCQL, keyspace, table).WithContext(ctx).Iter()

	columns := make(map[string]string)
	row := make(map[string]any)
	for iter.MapScan(row) {
		name, nameOK := row["column_name"].(string)
		typ, typeOK := row["type"].(string)
		if nameOK && typeOK {
			columns[name] = typ
		}
		row = make(map[string]any)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return columns, nil
}

// partitionKeys fetches the partition-key columns for one table, ordered by
// their position in the composite key. Ordering by position makes the
// "first" partition key deterministic across clusters, which the raw
// metadata query does not guarantee.
func (c *Catalog) partitionKeys(ctx context.Context, session cql.Session, keyspace, table string) ([]string, error) {
	iter := session.Query(partKeyCQL, keyspace, table).WithContext(ctx).Iter()

	type keyCol struct {
		name     string
		position int
	}

	var keys []keyCol
	row := make(map[string]any)
	for iter.MapScan(row) {
		name, ok := row["column_name"].(string)
		if ok {
			keys = append(keys, keyCol{name: name, position: columnPosition(row["position"])})
		}
		row = make(map[string]any)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.SliceStable(keys, func(i, j int) bool { return keys[i].position < keys[j].position })

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.name
	}

	return names, nil
}

// columnPosition normalizes the metadata position value, which drivers may
// yield as different integer widths.
func columnPosition(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}

// RecordTypeName derives a CamelCase record-type name from a snake_case
// table name: "user_profile" becomes "UserProfile".
//
// Parameters:
//   - table: Raw table name
//
// Returns:
//   - string: The derived type name
func RecordTypeName(table string) string {
	var b strings.Builder
	for _, segment := range strings.Split(table, "_") {
		if segment == "" {
			continue
		}
		runes := []rune(segment)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	return b.String()
}
