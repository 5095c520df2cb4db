package cassandracrud

import "github.com/cervantes79/cassandracrud/types"

// Type aliases for convenience - re-export from types package.
type (
	TableDescriptor = types.TableDescriptor
	Record          = types.Record
	Rows            = types.Rows
	Consistency     = types.Consistency
	BatchType       = types.BatchType
	Logger          = types.Logger
)

// Re-export consistency level constants for convenience.
const (
	Any         = types.Any
	One         = types.One
	Two         = types.Two
	Three       = types.Three
	Quorum      = types.Quorum
	All         = types.All
	LocalQuorum = types.LocalQuorum
	EachQuorum  = types.EachQuorum
	Serial      = types.Serial
	LocalSerial = types.LocalSerial
	LocalOne    = types.LocalOne
)

// Re-export batch type constants for convenience.
const (
	LoggedBatch   = types.LoggedBatch
	UnloggedBatch = types.UnloggedBatch
	CounterBatch  = types.CounterBatch
)

// Re-export sentinel errors for convenience.
var (
	ErrConnectFailed = types.ErrConnectFailed
	ErrTableNotFound = types.ErrTableNotFound
	ErrInvalidInput  = types.ErrInvalidInput
	ErrNilSession    = types.ErrNilSession
	ErrClientClosed  = types.ErrClientClosed
)
