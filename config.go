package cassandracrud

import (
	"time"

	"github.com/cervantes79/cassandracrud/internal/logging"
	"github.com/cervantes79/cassandracrud/types"
)

// ClientConfig holds configuration for cassandracrud clients.
type ClientConfig struct {
	// Port is the CQL native transport port. Defaults to 9042.
	Port int

	// Username and Password enable plain-text authentication when both
	// are non-empty.
	Username string
	Password string

	// Consistency is the default consistency level for all statements.
	// Defaults to LocalQuorum.
	Consistency types.Consistency

	// Timeout is the per-request timeout passed to the driver.
	// Defaults to 15 seconds.
	Timeout time.Duration

	// ConnectTimeout is the timeout for establishing the initial
	// connection. Defaults to 10 seconds.
	ConnectTimeout time.Duration

	// ConnectAttempts is the number of connection attempts before giving
	// up. Defaults to 3.
	ConnectAttempts int

	// ConnectBackoff is the fixed delay between connection attempts.
	// Defaults to 1 second.
	ConnectBackoff time.Duration

	// ProtoVersion pins the CQL native protocol version. Defaults to 5,
	// the version every supported Cassandra 4.x cluster speaks. Set to 0
	// to let the driver negotiate.
	ProtoVersion int

	// BatchType is the batch kind used for bulk inserts.
	// Defaults to LoggedBatch.
	BatchType types.BatchType

	// Logger receives structured log messages. Defaults to a no-op logger.
	Logger types.Logger
}

// DefaultConfig returns a ClientConfig with sensible defaults.
//
// Returns:
//   - *ClientConfig: Configuration with default settings
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Port:            9042,
		Consistency:     types.LocalQuorum,
		Timeout:         15 * time.Second,
		ConnectTimeout:  10 * time.Second,
		ConnectAttempts: 3,
		ConnectBackoff:  time.Second,
		ProtoVersion:    5,
		BatchType:       types.LoggedBatch,
		Logger:          logging.NewNopLogger(),
	}
}

// Option configures a ClientConfig.
type Option func(*ClientConfig)

// WithPort sets the CQL native transport port.
//
// Parameters:
//   - port: The port to dial (default 9042)
//
// Returns:
//   - Option: Configuration option
func WithPort(port int) Option {
	return func(c *ClientConfig) {
		c.Port = port
	}
}

// WithCredentials enables plain-text authentication.
//
// Parameters:
//   - username: The username
//   - password: The password
//
// Returns:
//   - Option: Configuration option
func WithCredentials(username, password string) Option {
	return func(c *ClientConfig) {
		c.Username = username
		c.Password = password
	}
}

// WithConsistency sets the default consistency level for all statements.
//
// Parameters:
//   - consistency: Consistency level (e.g. types.LocalQuorum)
//
// Returns:
//   - Option: Configuration option
func WithConsistency(consistency types.Consistency) Option {
	return func(c *ClientConfig) {
		c.Consistency = consistency
	}
}

// WithTimeout sets the per-request timeout passed to the driver.
//
// Parameters:
//   - timeout: Request timeout
//
// Returns:
//   - Option: Configuration option
func WithTimeout(timeout time.Duration) Option {
	return func(c *ClientConfig) {
		c.Timeout = timeout
	}
}

// WithConnectTimeout sets the timeout for establishing the connection.
//
// Parameters:
//   - timeout: Connection timeout
//
// Returns:
//   - Option: Configuration option
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *ClientConfig) {
		c.ConnectTimeout = timeout
	}
}

// WithConnectAttempts sets the number of connection attempts before
// Connect gives up with ErrConnectFailed.
//
// Parameters:
//   - attempts: Attempt budget (default 3)
//
// Returns:
//   - Option: Configuration option
func WithConnectAttempts(attempts int) Option {
	return func(c *ClientConfig) {
		c.ConnectAttempts = attempts
	}
}

// WithConnectBackoff sets the fixed delay between connection attempts.
//
// Parameters:
//   - backoff: Delay between attempts (default 1 second)
//
// Returns:
//   - Option: Configuration option
func WithConnectBackoff(backoff time.Duration) Option {
	return func(c *ClientConfig) {
		c.ConnectBackoff = backoff
	}
}

// WithProtocolVersion pins the CQL native protocol version.
//
// Pass 0 to let the driver negotiate the version with the cluster.
//
// Parameters:
//   - version: Protocol version (default 5)
//
// Returns:
//   - Option: Configuration option
func WithProtocolVersion(version int) Option {
	return func(c *ClientConfig) {
		c.ProtoVersion = version
	}
}

// WithBatchType sets the batch kind used for bulk inserts.
//
// The default LoggedBatch trades throughput for batch-log durability.
// Use UnloggedBatch when rows target the same partition and the batch log
// overhead is not wanted.
//
// Parameters:
//   - kind: Batch type
//
// Returns:
//   - Option: Configuration option
func WithBatchType(kind types.BatchType) Option {
	return func(c *ClientConfig) {
		c.BatchType = kind
	}
}

// WithLogger sets the structured logger.
//
// If not set, a no-op logger is used that discards all messages.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(c *ClientConfig) {
		c.Logger = logger
	}
}
