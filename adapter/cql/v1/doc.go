// Package v1 provides an adapter for gocql v1.x to work with the cassandracrud library.
//
// This adapter wraps gocql sessions, queries, batches, and iterators to implement
// the cassandracrud CQL interfaces.
//
// # Installation
//
// Import this package along with gocql v1.x:
//
//	import (
//	    "github.com/gocql/gocql"
//	    "github.com/cervantes79/cassandracrud/adapter/cql/v1"
//	)
//
// # Usage
//
// Create a gocql session and wrap it with the v1 adapter:
//
//	// Configure gocql cluster
//	cluster := gocql.NewCluster("127.0.0.1", "127.0.0.2")
//	cluster.Keyspace = "my_keyspace"
//	cluster.Consistency = gocql.LocalQuorum
//
//	// Create session
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Wrap with the adapter and hand off to the client
//	session := v1.NewSession(gocqlSession)
//	client, err := cassandracrud.ConnectWithSession(ctx, session, "my_keyspace")
//
// # Type Conversions
//
// The adapter provides helper functions for converting between cassandracrud and gocql types:
//
//   - [ToGocqlConsistency]: Converts cassandracrud Consistency to gocql.Consistency
//   - [FromGocqlConsistency]: Converts gocql.Consistency to cassandracrud Consistency
//   - [ToGocqlBatchType]: Converts cassandracrud BatchType to gocql.BatchType
//   - [FromGocqlBatchType]: Converts gocql.BatchType to cassandracrud BatchType
//   - [UnwrapSession]: Returns the underlying gocql.Session
//
// # Thread Safety
//
// All adapter types are safe for concurrent use, matching gocql's thread safety guarantees.
package v1
