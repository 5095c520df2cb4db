// Package v2 provides an adapter for the Apache Cassandra gocql driver v2.x
// (github.com/apache/cassandra-gocql-driver) to work with the cassandracrud library.
//
// This adapter wraps v2 sessions, queries, batches, and iterators to implement
// the cassandracrud CQL interfaces.
//
// # Usage
//
// Create a v2 session and wrap it with the adapter:
//
//	import (
//	    gocql "github.com/apache/cassandra-gocql-driver/v2"
//	    "github.com/cervantes79/cassandracrud/adapter/cql/v2"
//	)
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Keyspace = "my_keyspace"
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session := v2.NewSession(gocqlSession)
//	client, err := cassandracrud.ConnectWithSession(ctx, session, "my_keyspace")
//
// # Context Handling
//
// The v2 driver deprecates WithContext in favor of explicit *Context methods
// (ExecContext, IterContext, MapScanContext). The adapter stores contexts set
// via WithContext and applies them at execution time, so either style works
// through the cassandracrud interfaces.
//
// # Thread Safety
//
// All adapter types are safe for concurrent use, matching the driver's
// thread safety guarantees.
package v2
