package integration_test

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	crud "github.com/cervantes79/cassandracrud"
	v1 "github.com/cervantes79/cassandracrud/adapter/cql/v1"
	"github.com/cervantes79/cassandracrud/testutil"
)

// checkAIOAvailability checks if the system has available AIO slots.
// ScyllaDB requires Linux AIO even with --reactor-backend=epoll.
func checkAIOAvailability(t *testing.T) {
	t.Helper()

	aioNrData, err := os.ReadFile("/proc/sys/fs/aio-nr")
	if err != nil {
		t.Skipf("Cannot read /proc/sys/fs/aio-nr: %v (not on Linux?)", err)
	}

	aioMaxNrData, err := os.ReadFile("/proc/sys/fs/aio-max-nr")
	if err != nil {
		t.Skipf("Cannot read /proc/sys/fs/aio-max-nr: %v", err)
	}

	aioNr, _ := strconv.ParseInt(strings.TrimSpace(string(aioNrData)), 10, 64)
	aioMaxNr, _ := strconv.ParseInt(strings.TrimSpace(string(aioMaxNrData)), 10, 64)

	if aioNr >= aioMaxNr {
		t.Skipf("No AIO slots available: aio-nr=%d >= aio-max-nr=%d. "+
			"Fix with: sudo sysctl -w fs.aio-max-nr=1048576", aioNr, aioMaxNr)
	}
}

// TestCRUDIntegrationScyllaDB runs the discovery and CRUD cycle against a
// ScyllaDB container to confirm the layer is not tied to one server
// implementation of system_schema.
func TestCRUDIntegrationScyllaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("SKIP_INTEGRATION_TESTS") == "1" {
		t.Skip("skipping integration tests (SKIP_INTEGRATION_TESTS=1)")
	}
	checkAIOAvailability(t)

	ctx := context.Background()

	container, err := testutil.StartScyllaDB(ctx, t, nil)
	require.NoError(t, err)

	require.NoError(t, testutil.CreateTable(container.Session, `
		CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			owner TEXT,
			balance INT
		)
	`))

	client, err := crud.ConnectWithSession(ctx, v1.NewSession(container.Session), "crud_test")
	require.NoError(t, err)
	defer client.Close()

	t.Run("DiscoversSchema", func(t *testing.T) {
		accounts, ok := client.Catalog().Lookup("accounts")
		require.True(t, ok)
		require.Equal(t, "Accounts", accounts.RecordType)
		require.Equal(t, []string{"id"}, accounts.PartitionKeys)
		require.Equal(t, "uuid", accounts.Columns["id"])
		require.Equal(t, "int", accounts.Columns["balance"])
	})

	t.Run("CRUDCycle", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, client.Create(ctx, "accounts", crud.Record{
			"id":      id,
			"owner":   "alice",
			"balance": 100,
		}))

		records, err := client.Read(ctx, "accounts", crud.Record{"id": id}, nil)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "alice", records[0]["owner"])

		require.NoError(t, client.Update(ctx, "accounts",
			crud.Record{"balance": 250}, crud.Record{"id": id}))

		records, err = client.Read(ctx, "accounts", crud.Record{"id": id}, []string{"balance"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, 250, records[0]["balance"])

		require.NoError(t, client.Delete(ctx, "accounts", crud.Record{"id": id}))

		records, err = client.Read(ctx, "accounts", crud.Record{"id": id}, nil)
		require.NoError(t, err)
		require.Empty(t, records)
	})

	t.Run("BulkCreate", func(t *testing.T) {
		ids := []string{uuid.NewString(), uuid.NewString()}
		rows := make([]crud.Record, len(ids))
		for i, id := range ids {
			rows[i] = crud.Record{
				"id":      id,
				"owner":   fmt.Sprintf("bulk-%d", i),
				"balance": i,
			}
		}
		require.NoError(t, client.Create(ctx, "accounts", rows))

		records, err := client.Read(ctx, "accounts", crud.Record{"id": ids}, nil)
		require.NoError(t, err)
		require.Len(t, records, 2)
	})
}
