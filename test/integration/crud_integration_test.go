package integration_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	crud "github.com/cervantes79/cassandracrud"
	v1 "github.com/cervantes79/cassandracrud/adapter/cql/v1"
	"github.com/cervantes79/cassandracrud/testutil"
	"github.com/cervantes79/cassandracrud/types"
)

// TestCRUDIntegration runs the full discovery and CRUD cycle against a real
// Cassandra container. The container is started once and shared by all
// subtests; each subtest uses its own rows keyed by fresh UUIDs.
func TestCRUDIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("SKIP_INTEGRATION_TESTS") == "1" {
		t.Skip("skipping integration tests (SKIP_INTEGRATION_TESTS=1)")
	}

	ctx := context.Background()

	container, err := testutil.StartCassandra(ctx, t, nil)
	require.NoError(t, err)

	require.NoError(t, testutil.CreateTable(container.Session, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT,
			email TEXT
		)
	`))
	require.NoError(t, testutil.CreateTable(container.Session, `
		CREATE TABLE IF NOT EXISTS user_events (
			user_id UUID,
			bucket INT,
			event TEXT,
			PRIMARY KEY ((user_id, bucket))
		)
	`))

	client, err := crud.ConnectWithSession(ctx, v1.NewSession(container.Session), "crud_test")
	require.NoError(t, err)
	defer client.Close()

	t.Run("DiscoversSchema", func(t *testing.T) {
		cat := client.Catalog()
		require.Equal(t, "crud_test", cat.Keyspace())

		users, ok := cat.Lookup("users")
		require.True(t, ok)
		require.Equal(t, "Users", users.RecordType)
		require.Equal(t, []string{"id"}, users.PartitionKeys)
		require.Equal(t, "uuid", users.Columns["id"])
		require.Equal(t, "text", users.Columns["name"])

		events, ok := cat.Lookup("user_events")
		require.True(t, ok)
		require.Equal(t, "UserEvents", events.RecordType)
		require.Equal(t, []string{"user_id", "bucket"}, events.PartitionKeys)
	})

	t.Run("CreateAndRead", func(t *testing.T) {
		id := uuid.NewString()
		err := client.Create(ctx, "users", crud.Record{
			"id":    id,
			"name":  "Alice",
			"email": "alice@example.com",
		})
		require.NoError(t, err)

		records, err := client.Read(ctx, "users", crud.Record{"id": id}, nil)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "Alice", records[0]["name"])
		require.Equal(t, "alice@example.com", records[0]["email"])
	})

	t.Run("BulkCreateAndReadIn", func(t *testing.T) {
		ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
		rows := make([]crud.Record, len(ids))
		for i, id := range ids {
			rows[i] = crud.Record{
				"id":    id,
				"name":  fmt.Sprintf("bulk-%d", i),
				"email": fmt.Sprintf("bulk-%d@example.com", i),
			}
		}
		require.NoError(t, client.Create(ctx, "users", rows))

		records, err := client.Read(ctx, "users", crud.Record{"id": ids}, nil)
		require.NoError(t, err)
		require.Len(t, records, 3)
	})

	t.Run("ReadProjection", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, client.Create(ctx, "users", crud.Record{
			"id":    id,
			"name":  "Projected",
			"email": "projected@example.com",
		}))

		records, err := client.Read(ctx, "users", crud.Record{"id": id}, []string{"name"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "Projected", records[0]["name"])
		require.NotContains(t, records[0], "email")
	})

	t.Run("Update", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, client.Create(ctx, "users", crud.Record{
			"id":    id,
			"name":  "Before",
			"email": "before@example.com",
		}))

		err := client.Update(ctx, "users",
			crud.Record{"email": "after@example.com"},
			crud.Record{"id": id},
		)
		require.NoError(t, err)

		records, err := client.Read(ctx, "users", crud.Record{"id": id}, nil)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "after@example.com", records[0]["email"])
	})

	t.Run("Delete", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, client.Create(ctx, "users", crud.Record{
			"id":    id,
			"name":  "Doomed",
			"email": "doomed@example.com",
		}))

		require.NoError(t, client.Delete(ctx, "users", crud.Record{"id": id}))

		records, err := client.Read(ctx, "users", crud.Record{"id": id}, nil)
		require.NoError(t, err)
		require.Empty(t, records)
	})

	t.Run("CompositePartitionKey", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, client.Create(ctx, "user_events", crud.Record{
			"user_id": id,
			"bucket":  1,
			"event":   "login",
		}))

		records, err := client.Read(ctx, "user_events",
			crud.Record{"user_id": id, "bucket": 1}, nil)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "login", records[0]["event"])
	})

	t.Run("ExecRaw", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, client.Create(ctx, "users", crud.Record{
			"id":    id,
			"name":  "Raw",
			"email": "raw@example.com",
		}))

		rows, err := client.ExecRaw(ctx, "SELECT name, email FROM users WHERE id = ?", id)
		require.NoError(t, err)
		require.Equal(t, 1, rows.Len())
		require.Contains(t, rows.Columns, "name")
		require.Contains(t, rows.Columns, "email")
		require.Equal(t, "Raw", rows.Records[0]["name"])
	})
}

// TestCRUDErrorsIntegration exercises the error paths that need a live server.
func TestCRUDErrorsIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("SKIP_INTEGRATION_TESTS") == "1" {
		t.Skip("skipping integration tests (SKIP_INTEGRATION_TESTS=1)")
	}

	ctx := context.Background()

	container, err := testutil.StartCassandra(ctx, t, nil)
	require.NoError(t, err)

	require.NoError(t, testutil.CreateTable(container.Session, `
		CREATE TABLE IF NOT EXISTS items (
			id UUID PRIMARY KEY,
			label TEXT
		)
	`))

	client, err := crud.ConnectWithSession(ctx, v1.NewSession(container.Session), "crud_test")
	require.NoError(t, err)
	defer client.Close()

	t.Run("UnknownTableReturnsTableNotFound", func(t *testing.T) {
		_, err := client.Read(ctx, "no_such_table", crud.Record{"id": 1}, nil)
		require.Error(t, err)
		require.ErrorIs(t, err, types.ErrTableNotFound)

		var tnf *types.TableNotFoundError
		require.True(t, errors.As(err, &tnf))
		require.Equal(t, "no_such_table", tnf.Table)
	})

	t.Run("InvalidRawQueryReturnsQueryError", func(t *testing.T) {
		_, err := client.ExecRaw(ctx, "SELECT * FROM definitely not cql")
		require.Error(t, err)

		var qe *types.QueryError
		require.True(t, errors.As(err, &qe))
		require.NotEmpty(t, qe.Statement)
	})

	t.Run("ClosedClientRejectsOperations", func(t *testing.T) {
		short, err := crud.ConnectWithSession(ctx, v1.NewSession(container.Session), "crud_test")
		require.NoError(t, err)
		short.Close()

		_, readErr := short.Read(ctx, "items", crud.Record{"id": uuid.NewString()}, nil)
		require.ErrorIs(t, readErr, types.ErrClientClosed)
	})
}
