// Package cassandracrud provides a thin, schema-aware CRUD layer over
// Cassandra drivers.
//
// On connect, the client discovers every table in a keyspace through
// system-schema metadata queries and builds one immutable descriptor per
// table (columns, CQL type strings, partition keys). Generic CRUD helpers
// then translate map-shaped input into parameterized CQL and map result
// rows back into generic records. Everything hard about a Cassandra client
// (node discovery, pooling, token-aware routing, retries, consistency) is
// delegated to the underlying driver.
//
// # Basic Usage
//
//	client, err := cassandracrud.Connect(ctx, []string{"127.0.0.1"}, "my_keyspace")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Insert a row
//	err = client.Create(ctx, "users", cassandracrud.Record{
//	    "id": 1, "name": "John", "email": "j@x.com",
//	})
//
//	// Bulk insert as one batch round trip
//	err = client.Create(ctx, "users", []cassandracrud.Record{
//	    {"id": 2, "name": "Jane"},
//	    {"id": 3, "name": "Joe"},
//	})
//
//	// Read with equality and membership filters
//	rows, err := client.Read(ctx, "users", cassandracrud.Record{"id": []int{1, 2}}, nil)
//
//	// Update and delete always require conditions
//	err = client.Update(ctx, "users", cassandracrud.Record{"email": "new@x.com"},
//	    cassandracrud.Record{"id": 1})
//	err = client.Delete(ctx, "users", cassandracrud.Record{"id": 1})
//
//	// Raw statements bypass the catalog entirely
//	result, err := client.ExecRaw(ctx, "SELECT * FROM users WHERE id = ?", 1)
//
// # Driver Adapters
//
// The client works against the adapter interfaces in
// [github.com/cervantes79/cassandracrud/adapter/cql]. Adapters are provided
// for gocql v1 (github.com/gocql/gocql) and the Apache v2 driver
// (github.com/apache/cassandra-gocql-driver/v2); bring an existing session
// via ConnectWithSession, or let Connect dial with gocql v1.
//
// # Error Handling
//
// Operations return structured errors that unwrap to sentinels:
//
//	err := client.Delete(ctx, "unknown_table", cassandracrud.Record{"id": 1})
//	if errors.Is(err, cassandracrud.ErrTableNotFound) {
//	    // table was not discovered; the catalog is never auto-refreshed
//	}
//
// Driver-level execution failures are logged with the offending statement
// text and returned as *types.QueryError; callers can always distinguish
// "no rows matched" from "the query failed".
//
// # Concurrency
//
// A Client is safe for concurrent use. The schema catalog is populated once
// during construction and read-only afterwards; no locks are taken on the
// CRUD path.
package cassandracrud
