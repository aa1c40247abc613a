package statemachine

// OperationType classifies the kind of apply the consensus layer is
// currently driving. Services use it to refuse mutation on the query path
// without needing to inspect the envelope themselves.
type OperationType int

const (
	// OperationCommand marks a mutating apply.
	OperationCommand OperationType = iota
	// OperationQuery marks a non-mutating apply.
	OperationQuery
)

func (t OperationType) String() string {
	switch t {
	case OperationCommand:
		return "command"
	case OperationQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Context is the read-only handle the consensus layer supplies to every
// apply call. The manager forwards it unmodified to every hosted service;
// nothing under this module may mutate it. It carries no wall-clock reads
// of its own -- the embedded timestamp is whatever the consensus layer
// decided to stamp the entry with, so replaying the same log yields the
// same Context on every replica.
type Context struct {
	index         uint64
	operationType OperationType
	timestamp     int64
}

// NewContext builds a Context. index is the log index of the entry being
// applied (for queries between log entries, the index of the last applied
// command). timestamp is the consensus layer's replicated clock reading
// for this entry, not a local wall-clock read.
func NewContext(index uint64, operationType OperationType, timestamp int64) Context {
	return Context{index: index, operationType: operationType, timestamp: timestamp}
}

// Index returns the current log index.
func (ctx Context) Index() uint64 {
	return ctx.index
}

// OperationType returns whether the current apply is a command or query.
func (ctx Context) OperationType() OperationType {
	return ctx.operationType
}

// Timestamp returns the consensus layer's replicated clock reading for the
// entry currently being applied.
func (ctx Context) Timestamp() int64 {
	return ctx.timestamp
}

// withIndex returns a copy of ctx with a new index, leaving ctx itself
// unchanged.
func (ctx Context) withIndex(index uint64) Context {
	ctx.index = index
	return ctx
}
