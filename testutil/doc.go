// Package testutil provides test utilities and mock implementations for cassandracrud testing.
//
// This package provides mock implementations of the adapter interfaces for unit
// testing, as well as helper functions for integration tests.
//
// # Mock Implementations
//
//   - [MockSession]: Scriptable implementation of cql.Session
//   - [MockQuery]: Mock implementation of cql.Query
//   - [MockBatch]: Mock implementation of cql.Batch
//   - [MockIter]: Mock implementation of cql.Iter
//
// # Usage
//
// Script result rows per statement and inspect what was executed:
//
//	session := testutil.NewMockSession()
//	session.SetRows("SELECT * FROM users WHERE id = ?",
//	    map[string]any{"id": 1, "name": "John"},
//	)
//
//	client, _ := cassandracrud.ConnectWithSession(ctx, session, "my_keyspace")
//	records, _ := client.Read(ctx, "users", cassandracrud.Record{"id": 1}, nil)
//
//	require.Equal(t, []string{...}, session.Statements())
//
// # Integration Test Helpers
//
// For integration tests against real databases (requires Docker):
//
//   - StartCassandra: Starts a Cassandra test container
//   - StartScyllaDB: Starts a ScyllaDB test container
package testutil
