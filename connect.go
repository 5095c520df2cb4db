package cassandracrud

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"github.com/cervantes79/cassandracrud/adapter/cql"
	v1 "github.com/cervantes79/cassandracrud/adapter/cql/v1"
	"github.com/cervantes79/cassandracrud/catalog"
)

// Connect dials the cluster, discovers the keyspace schema, and returns a
// ready Client.
//
// Connection establishment is retried with a fixed backoff (3 attempts, 1
// second apart by default; see WithConnectAttempts and WithConnectBackoff).
// Once the retry budget is exhausted, the returned error wraps
// ErrConnectFailed. No further retries happen at this layer; statement
// retries belong to the driver's own policies.
//
// Parameters:
//   - ctx: Context bounding connection attempts and schema discovery
//   - hosts: Cluster contact points
//   - keyspace: Keyspace to connect to and discover
//   - opts: Optional configuration
//
// Returns:
//   - *Client: A connected client with a populated catalog
//   - error: Wraps ErrConnectFailed after exhausting attempts, or the
//     discovery error
func Connect(ctx context.Context, hosts []string, keyspace string, opts ...Option) (*Client, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	cluster := gocql.NewCluster(hosts...)
	cluster.Port = config.Port
	cluster.Keyspace = keyspace
	cluster.Consistency = v1.ToGocqlConsistency(config.Consistency)
	cluster.Timeout = config.Timeout
	cluster.ConnectTimeout = config.ConnectTimeout
	if config.ProtoVersion > 0 {
		cluster.ProtoVersion = config.ProtoVersion
	}
	if config.Username != "" && config.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: config.Username,
			Password: config.Password,
		}
	}

	var session *gocql.Session
	var err error
	for attempt := 1; attempt <= config.ConnectAttempts; attempt++ {
		session, err = cluster.CreateSession()
		if err == nil {
			config.Logger.Info("connected to keyspace",
				"keyspace", keyspace,
				"hosts", hosts,
				"attempt", attempt,
			)

			break
		}

		config.Logger.Error("connection attempt failed",
			"keyspace", keyspace,
			"attempt", attempt,
			"error", err,
		)

		if attempt < config.ConnectAttempts {
			select {
			case <-time.After(config.ConnectBackoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w", ErrConnectFailed, ctx.Err())
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	client, err := newClient(ctx, v1.NewSession(session), keyspace, config)
	if err != nil {
		session.Close()
		return nil, err
	}

	return client, nil
}

// ConnectWithSession builds a client on an already-established driver
// session (wrapped by an adapter from adapter/cql/v1 or v2) and runs schema
// discovery against the keyspace.
//
// The client takes ownership of the session: Close closes it.
//
// Parameters:
//   - ctx: Context bounding schema discovery
//   - session: An adapter-wrapped driver session
//   - keyspace: Keyspace to discover
//   - opts: Optional configuration
//
// Returns:
//   - *Client: A client with a populated catalog
//   - error: ErrNilSession, or the discovery error
func ConnectWithSession(ctx context.Context, session cql.Session, keyspace string, opts ...Option) (*Client, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	return newClient(ctx, session, keyspace, config)
}

// newClient runs discovery and assembles the client.
func newClient(ctx context.Context, session cql.Session, keyspace string, config *ClientConfig) (*Client, error) {
	cat := catalog.New(catalog.WithLogger(config.Logger))
	if err := cat.Discover(ctx, session, keyspace); err != nil {
		return nil, err
	}

	return &Client{
		session: session,
		catalog: cat,
		config:  config,
	}, nil
}
