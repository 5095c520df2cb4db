package cassandracrud_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	crud "github.com/cervantes79/cassandracrud"
	"github.com/cervantes79/cassandracrud/testutil"
	"github.com/cervantes79/cassandracrud/types"
)

// newTestClient builds a client whose catalog holds a single users table
// with columns {id:int, name:text, email:text} and partition key id.
func newTestClient(t *testing.T) (*crud.Client, *testutil.MockSession) {
	t.Helper()

	session := testutil.NewMockSession()
	session.OnQuery = func(stmt string, values ...any) ([]map[string]any, error) {
		switch {
		case strings.Contains(stmt, "FROM system_schema.tables"):
			return []map[string]any{{"table_name": "users"}}, nil
		case strings.Contains(stmt, "kind = 'partition_key'"):
			return []map[string]any{{"column_name": "id", "position": 0}}, nil
		case strings.Contains(stmt, "FROM system_schema.columns"):
			return []map[string]any{
				{"column_name": "id", "type": "int"},
				{"column_name": "name", "type": "text"},
				{"column_name": "email", "type": "text"},
			}, nil
		}

		return nil, nil
	}

	client, err := crud.ConnectWithSession(context.Background(), session, "app")
	require.NoError(t, err)

	// Post-discovery statements are scripted per test.
	session.OnQuery = nil

	return client, session
}

// lastQuery returns the most recent non-metadata query issued.
func lastQuery(t *testing.T, session *testutil.MockSession) *testutil.MockQuery {
	t.Helper()

	queries := session.Queries()
	require.NotEmpty(t, queries)

	return queries[len(queries)-1]
}

func TestCreate_SingleRecord(t *testing.T) {
	client, session := newTestClient(t)

	err := client.Create(context.Background(), "users", crud.Record{
		"id": 1, "name": "John", "email": "j@x.com",
	})
	require.NoError(t, err)

	q := lastQuery(t, session)
	require.Equal(t, "INSERT INTO users (email, id, name) VALUES (?, ?, ?)", q.Statement())
	require.Equal(t, []any{"j@x.com", 1, "John"}, q.Values())
	require.Empty(t, session.Batches(), "single insert must not use a batch")
}

func TestCreate_PlainMap(t *testing.T) {
	client, session := newTestClient(t)

	err := client.Create(context.Background(), "users", map[string]any{"id": 2, "name": "Jane"})
	require.NoError(t, err)

	q := lastQuery(t, session)
	require.Equal(t, "INSERT INTO users (id, name) VALUES (?, ?)", q.Statement())
}

func TestCreate_BulkUsesOneBatch(t *testing.T) {
	client, session := newTestClient(t)

	err := client.Create(context.Background(), "users", []crud.Record{
		{"id": 1, "name": "John"},
		{"id": 2, "name": "Jane"},
	})
	require.NoError(t, err)

	batches := session.Batches()
	require.Len(t, batches, 1)
	require.True(t, batches[0].Executed())
	require.Equal(t, 2, batches[0].Size())

	entries := batches[0].Entries()
	require.Equal(t, "INSERT INTO users (id, name) VALUES (?, ?)", entries[0].Statement)
	require.Equal(t, entries[0].Statement, entries[1].Statement, "homogeneous rows share one statement text")
	require.Equal(t, []any{1, "John"}, entries[0].Args)
	require.Equal(t, []any{2, "Jane"}, entries[1].Args)
}

func TestCreate_BulkDistinctKeySets(t *testing.T) {
	client, session := newTestClient(t)

	err := client.Create(context.Background(), "users", []crud.Record{
		{"id": 1, "name": "John", "email": "j@x.com"},
		{"id": 2, "name": "Jane"},
	})
	require.NoError(t, err)

	entries := session.Batches()[0].Entries()
	require.Equal(t, "INSERT INTO users (email, id, name) VALUES (?, ?, ?)", entries[0].Statement)
	require.Equal(t, "INSERT INTO users (id, name) VALUES (?, ?)", entries[1].Statement)
}

func TestCreate_EmptyBulkIsNoOp(t *testing.T) {
	client, session := newTestClient(t)

	err := client.Create(context.Background(), "users", []crud.Record{})
	require.NoError(t, err)
	require.Empty(t, session.Batches())

	// Only the discovery queries were issued.
	for _, stmt := range session.Statements() {
		require.Contains(t, stmt, "system_schema")
	}
}

func TestCreate_InvalidShapes(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	err := client.Create(ctx, "users", "not a record")
	require.ErrorIs(t, err, crud.ErrInvalidInput)

	err = client.Create(ctx, "users", 42)
	require.ErrorIs(t, err, crud.ErrInvalidInput)

	err = client.Create(ctx, "users", crud.Record{})
	require.ErrorIs(t, err, crud.ErrInvalidInput)
}

func TestCrud_UnknownTable(t *testing.T) {
	client, session := newTestClient(t)
	ctx := context.Background()
	before := len(session.Statements())

	var notFound *types.TableNotFoundError

	err := client.Create(ctx, "ghosts", crud.Record{"id": 1})
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "ghosts", notFound.Table)

	_, err = client.Read(ctx, "ghosts", nil, nil)
	require.ErrorIs(t, err, crud.ErrTableNotFound)

	err = client.Update(ctx, "ghosts", crud.Record{"a": 1}, crud.Record{"b": 2})
	require.ErrorIs(t, err, crud.ErrTableNotFound)

	err = client.Delete(ctx, "ghosts", crud.Record{"id": 1})
	require.ErrorIs(t, err, crud.ErrTableNotFound)

	require.Len(t, session.Statements(), before, "unknown table must not reach the driver")
}

func TestRead_MapsRowsInDriverOrder(t *testing.T) {
	client, session := newTestClient(t)

	session.SetRows("SELECT * FROM users WHERE id = ?",
		map[string]any{"id": 1, "name": "John", "email": "j@x.com"},
	)

	records, err := client.Read(context.Background(), "users", crud.Record{"id": 1}, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, crud.Record{"id": 1, "name": "John", "email": "j@x.com"}, records[0])

	q := lastQuery(t, session)
	require.Equal(t, []any{1}, q.Values())
}

func TestRead_InCondition(t *testing.T) {
	client, session := newTestClient(t)

	session.SetRows("SELECT * FROM users WHERE id IN ?",
		map[string]any{"id": 1, "name": "John"},
		map[string]any{"id": 2, "name": "Jane"},
	)

	records, err := client.Read(context.Background(), "users", crud.Record{"id": []int{1, 2, 3}}, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	q := lastQuery(t, session)
	require.Equal(t, "SELECT * FROM users WHERE id IN ?", q.Statement())
	require.Len(t, q.Values(), 1, "membership test binds the sequence as one parameter")
	require.Equal(t, []int{1, 2, 3}, q.Values()[0])
}

func TestRead_NoMatchesYieldsEmptySlice(t *testing.T) {
	client, _ := newTestClient(t)

	records, err := client.Read(context.Background(), "users", crud.Record{"id": 404}, nil)
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestRead_Projection(t *testing.T) {
	client, session := newTestClient(t)

	_, err := client.Read(context.Background(), "users", nil, []string{"id", "email"})
	require.NoError(t, err)

	require.Equal(t, "SELECT id, email FROM users", lastQuery(t, session).Statement())
}

func TestUpdate(t *testing.T) {
	client, session := newTestClient(t)

	err := client.Update(context.Background(), "users",
		crud.Record{"email": "new@x.com"},
		crud.Record{"id": 1},
	)
	require.NoError(t, err)

	q := lastQuery(t, session)
	require.Equal(t, "UPDATE users SET email = ? WHERE id = ?", q.Statement())
	require.Equal(t, []any{"new@x.com", 1}, q.Values())
}

func TestUpdate_EmptyInputs(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	err := client.Update(ctx, "users", crud.Record{}, crud.Record{"id": 1})
	require.ErrorIs(t, err, crud.ErrInvalidInput)

	err = client.Update(ctx, "users", crud.Record{"email": "x"}, crud.Record{})
	require.ErrorIs(t, err, crud.ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	client, session := newTestClient(t)

	err := client.Delete(context.Background(), "users", crud.Record{"id": 1})
	require.NoError(t, err)

	q := lastQuery(t, session)
	require.Equal(t, "DELETE FROM users WHERE id = ?", q.Statement())
	require.Equal(t, []any{1}, q.Values())
}

func TestDelete_EmptyConditionsRejectedBeforeDriver(t *testing.T) {
	client, session := newTestClient(t)
	before := len(session.Statements())

	err := client.Delete(context.Background(), "users", crud.Record{})
	require.ErrorIs(t, err, crud.ErrInvalidInput)
	require.Len(t, session.Statements(), before, "no DELETE statement may be constructed")
}

func TestExecRaw_BypassesCatalog(t *testing.T) {
	client, session := newTestClient(t)

	session.SetRows("SELECT * FROM undiscovered_table",
		map[string]any{"k": "v"},
	)

	rows, err := client.ExecRaw(context.Background(), "SELECT * FROM undiscovered_table")
	require.NoError(t, err)
	require.Equal(t, 1, rows.Len())
	require.Equal(t, crud.Record{"k": "v"}, rows.Records[0])
}

func TestQueryFailure_ReturnsStructuredError(t *testing.T) {
	client, session := newTestClient(t)

	driverErr := errors.New("no hosts available in the pool")
	session.SetError("DELETE FROM users WHERE id = ?", driverErr)

	err := client.Delete(context.Background(), "users", crud.Record{"id": 1})
	require.Error(t, err)

	var queryErr *types.QueryError
	require.ErrorAs(t, err, &queryErr)
	require.Equal(t, "DELETE FROM users WHERE id = ?", queryErr.Statement)
	require.ErrorIs(t, err, driverErr)
}

func TestClose_RejectsFurtherOperations(t *testing.T) {
	client, session := newTestClient(t)
	ctx := context.Background()

	client.Close()
	require.True(t, session.IsClosed())

	err := client.Create(ctx, "users", crud.Record{"id": 1})
	require.ErrorIs(t, err, crud.ErrClientClosed)

	_, err = client.Read(ctx, "users", nil, nil)
	require.ErrorIs(t, err, crud.ErrClientClosed)

	_, err = client.ExecRaw(ctx, "SELECT now() FROM system.local")
	require.ErrorIs(t, err, crud.ErrClientClosed)

	// Close is idempotent.
	client.Close()
}

func TestCatalogAccessor(t *testing.T) {
	client, _ := newTestClient(t)

	cat := client.Catalog()
	require.Equal(t, []string{"users"}, cat.Tables())

	desc, ok := cat.Lookup("users")
	require.True(t, ok)
	require.Equal(t, "id", desc.PrimaryKey())
}

func TestConnectWithSession_NilSession(t *testing.T) {
	_, err := crud.ConnectWithSession(context.Background(), nil, "app")
	require.ErrorIs(t, err, crud.ErrNilSession)
}
