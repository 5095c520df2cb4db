package v2

import (
	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/cervantes79/cassandracrud/adapter/cql"
)

// ToGocqlConsistency converts a cassandracrud Consistency to gocql.Consistency.
//
// Parameters:
//   - c: cassandracrud consistency level
//
// Returns:
//   - gocql.Consistency: The equivalent gocql consistency level
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Consistency = v2.ToGocqlConsistency(cql.Quorum)
func ToGocqlConsistency(c cql.Consistency) gocql.Consistency {
	return gocql.Consistency(c)
}

// FromGocqlConsistency converts a gocql.Consistency to cassandracrud Consistency.
//
// Parameters:
//   - c: gocql consistency level
//
// Returns:
//   - cql.Consistency: The equivalent cassandracrud consistency level
func FromGocqlConsistency(c gocql.Consistency) cql.Consistency {
	return cql.Consistency(c)
}

// ToGocqlBatchType converts a cassandracrud BatchType to gocql.BatchType.
//
// Parameters:
//   - bt: cassandracrud batch type
//
// Returns:
//   - gocql.BatchType: The equivalent gocql batch type
func ToGocqlBatchType(bt cql.BatchType) gocql.BatchType {
	return gocql.BatchType(bt)
}

// FromGocqlBatchType converts a gocql.BatchType to cassandracrud BatchType.
//
// Parameters:
//   - bt: gocql batch type
//
// Returns:
//   - cql.BatchType: The equivalent cassandracrud batch type
func FromGocqlBatchType(bt gocql.BatchType) cql.BatchType {
	return cql.BatchType(bt)
}

// UnwrapSession returns the underlying gocql.Session from a v2 adapter.
//
// Parameters:
//   - s: The v2 adapter session
//
// Returns:
//   - *gocql.Session: The wrapped gocql session
func UnwrapSession(s *Session) *gocql.Session {
	return s.session
}
