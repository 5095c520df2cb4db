// Package cql provides adapter interfaces and implementations for CQL (Cassandra Query Language)
// database drivers.
//
// This package defines the common interfaces that CQL driver adapters must implement,
// allowing cassandracrud to work with different versions of gocql or other CQL drivers.
//
// # Interfaces
//
// The package defines interfaces that mirror the gocql API:
//
//   - Session: Wraps a database session for executing queries
//   - Query: Represents a CQL query with bind parameters
//   - Batch: Groups multiple queries for one-round-trip execution
//   - Iter: Iterates over query results
//
// # Adapters
//
// Driver-specific adapters are provided in subpackages:
//
//   - [github.com/cervantes79/cassandracrud/adapter/cql/v1]: Adapter for gocql v1.x
//   - [github.com/cervantes79/cassandracrud/adapter/cql/v2]: Adapter for apache/cassandra-gocql-driver v2.x
//
// # Usage
//
// Import the appropriate adapter for your gocql version:
//
//	import (
//	    "github.com/cervantes79/cassandracrud"
//	    "github.com/cervantes79/cassandracrud/adapter/cql/v1"
//	    "github.com/gocql/gocql"
//	)
//
//	// Create gocql cluster and session
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Keyspace = "my_keyspace"
//	gocqlSession, _ := cluster.CreateSession()
//
//	// Wrap with the adapter and hand off to the client
//	session := v1.NewSession(gocqlSession)
//	client, _ := cassandracrud.ConnectWithSession(context.Background(), session, "my_keyspace")
package cql
