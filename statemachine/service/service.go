// Package service describes the capability set every primitive hosted by
// the multiplexer must implement: apply-command, apply-query, their
// streaming variants, snapshot, restore, and can-delete. It is the
// dynamic-dispatch seam the manager uses to host a heterogeneous set of
// primitives behind one ServiceId -> instance map, in place of the
// annotation-driven reflective dispatch the original system used (see
// DESIGN.md, "Annotation-driven dispatch in the source").
package service

import (
	"io"

	"github.com/jrife/statemux/statemachine"
)

// PrimitiveService is the contract every hosted primitive (counter, map,
// lock, ...) must satisfy. Commands are mutating; queries must never
// alter any state visible to a subsequent Snapshot. Every method must be
// deterministic: identical command sequences starting from identical
// snapshots must produce byte-identical responses and byte-identical
// snapshots on every replica. No wall-clock reads, no randomness, no
// iteration over an unordered collection without an explicit ordering.
type PrimitiveService interface {
	// Init is called once when the instance is created, whether by an
	// explicit create envelope, an implicit create-on-first-reference, or
	// during restore. On the apply path ctx is the context of the apply
	// that created the instance; on restore it is the context the manager
	// received in its own Init.
	Init(ctx statemachine.Context) error

	// ApplyCommand applies a mutating operation and returns its response
	// bytes. It may mutate service state but must never perform I/O or
	// otherwise escape the deterministic replay guarantee.
	ApplyCommand(ctx statemachine.Context, command []byte) ([]byte, error)

	// ApplyCommandStream is the streaming variant of ApplyCommand. Exactly
	// one terminal call (sink.Complete or sink.Error) is required, after
	// all sink.Next calls.
	ApplyCommandStream(ctx statemachine.Context, command []byte, sink statemachine.Sink) error

	// ApplyQuery applies a non-mutating read and returns its response
	// bytes.
	ApplyQuery(ctx statemachine.Context, query []byte) ([]byte, error)

	// ApplyQueryStream is the streaming variant of ApplyQuery.
	ApplyQueryStream(ctx statemachine.Context, query []byte, sink statemachine.Sink) error

	// Snapshot writes a deterministic, self-delimiting serialization of
	// the current state to output.
	Snapshot(output io.Writer) error

	// Restore replaces all state with what was written by a prior call to
	// Snapshot, consuming exactly the bytes that call wrote and leaving
	// input positioned immediately after them.
	Restore(input io.Reader) error

	// CanDelete reports whether this instance no longer needs log entries
	// at or below index, i.e. retains no state that depends on them --
	// e.g. pending session data a client might still retry. Monotonic: see
	// statemachine.StateMachine.CanDelete.
	CanDelete(index uint64) bool
}

// Type is a factory that produces fresh PrimitiveService instances of one
// service type. Registered against a type tag in a registry.Registry.
type Type func() PrimitiveService
