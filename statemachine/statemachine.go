// Package statemachine describes the contract between the (out-of-scope)
// consensus/log layer and a replicated state machine: deterministic apply
// of commands and queries, streaming variants of both, and full
// snapshot/restore for follower recovery. See Manager in
// statemachine/manager for the concrete multiplexing implementation of
// this interface.
package statemachine

import "io"

// StateMachine is driven by the consensus layer's single-threaded apply
// loop: Apply(command) and Apply(query) are invoked sequentially in log
// order, and the loop awaits each returned error/future before delivering
// the next entry. Implementations must not suspend or block outside of the
// primitives they host, and must never read the wall clock or iterate an
// unordered collection in a way that could diverge between replicas.
type StateMachine interface {
	// Init is called once before any Apply, Snapshot, or Install call.
	Init(ctx Context) error

	// Apply delivers a committed command to the state machine and returns
	// the response bytes to propagate back to the caller.
	Apply(ctx Context, command []byte) ([]byte, error)

	// ApplyStream is the streaming variant of Apply for commands. Exactly
	// one of sink.Complete or sink.Error must be called, after all sink.Next
	// calls, once the command has been fully processed.
	ApplyStream(ctx Context, command []byte, sink Sink) error

	// Query delivers a non-mutating read and returns the response bytes.
	Query(ctx Context, query []byte) ([]byte, error)

	// QueryStream is the streaming variant of Query.
	QueryStream(ctx Context, query []byte, sink Sink) error

	// Snapshot serializes the entire state machine to output. The layout
	// is the state machine's own concern; the consensus layer treats the
	// result as an opaque, self-delimiting byte stream.
	Snapshot(output io.Writer) error

	// Install replaces the current state with a snapshot previously
	// produced by Snapshot. The state machine afterward must be
	// indistinguishable from the state the snapshot was taken from.
	Install(input io.Reader) error

	// CanDelete reports whether every piece of state needed to correctly
	// apply entries at or below index has already been incorporated, i.e.
	// whether the consensus layer may safely truncate its log up to index.
	// It must be monotonic: once true for i it remains true for any j >= i
	// unless new state is produced at some k in (i, j].
	CanDelete(index uint64) bool
}
