// Package instance binds one ServiceId to the PrimitiveService hosted at
// that address, the one-to-one binding replica.Replica makes between a
// partition and its consensus session, adapted here to bind an address to
// a primitive instead.
package instance

import (
	"io"

	"github.com/jrife/statemux/statemachine"
	"github.com/jrife/statemux/statemachine/protocol"
	"github.com/jrife/statemux/statemachine/service"
)

// Instance is a running PrimitiveService addressed by a ServiceId. The
// manager creates one the first time a request references an address and
// keeps it until the address is deleted or garbage collected.
type Instance struct {
	id          protocol.ServiceId
	service     service.PrimitiveService
	initialized bool
}

// New wraps svc under id. The caller must call Init before issuing any
// other operation against the instance.
func New(id protocol.ServiceId, svc service.PrimitiveService) *Instance {
	return &Instance{id: id, service: svc}
}

// Id returns the address this instance is bound to.
func (i *Instance) Id() protocol.ServiceId {
	return i.id
}

// Init runs the primitive's one-time setup. It is a no-op on every call
// after the first, so callers on both the apply path (first reference)
// and the restore path (reading a snapshot record) can call it
// unconditionally.
func (i *Instance) Init(ctx statemachine.Context) error {
	if i.initialized {
		return nil
	}

	if err := i.service.Init(ctx); err != nil {
		return service.Wrap(i.id.Type, err)
	}

	i.initialized = true

	return nil
}

// ApplyCommand forwards a non-streaming command to the hosted service.
func (i *Instance) ApplyCommand(ctx statemachine.Context, command []byte) ([]byte, error) {
	result, err := i.service.ApplyCommand(ctx, command)

	return result, service.Wrap(i.id.Type, err)
}

// ApplyCommandStream forwards a streaming command to the hosted service.
func (i *Instance) ApplyCommandStream(ctx statemachine.Context, command []byte, sink statemachine.Sink) error {
	return service.Wrap(i.id.Type, i.service.ApplyCommandStream(ctx, command, sink))
}

// ApplyQuery forwards a non-streaming query to the hosted service.
func (i *Instance) ApplyQuery(ctx statemachine.Context, query []byte) ([]byte, error) {
	result, err := i.service.ApplyQuery(ctx, query)

	return result, service.Wrap(i.id.Type, err)
}

// ApplyQueryStream forwards a streaming query to the hosted service.
func (i *Instance) ApplyQueryStream(ctx statemachine.Context, query []byte, sink statemachine.Sink) error {
	return service.Wrap(i.id.Type, i.service.ApplyQueryStream(ctx, query, sink))
}

// Snapshot writes the hosted service's state, self-delimited, to output.
func (i *Instance) Snapshot(output io.Writer) error {
	return service.Wrap(i.id.Type, i.service.Snapshot(output))
}

// Restore replaces the hosted service's state by reading a snapshot
// previously produced by Snapshot, then marks the instance initialized so
// a later Init call is a no-op.
func (i *Instance) Restore(input io.Reader) error {
	if err := i.service.Restore(input); err != nil {
		return service.Wrap(i.id.Type, err)
	}

	i.initialized = true

	return nil
}

// CanDelete reports whether the hosted service has no further use for log
// entries up to and including index.
func (i *Instance) CanDelete(index uint64) bool {
	return i.service.CanDelete(index)
}
