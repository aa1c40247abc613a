// Package manager implements the routing state machine: a single
// statemachine.StateMachine that dispatches each ServiceRequest to the
// PrimitiveService instance it addresses, creating instances on first
// reference and deleting them on request, the way
// ServiceManagerStateMachine routes across the primitives it hosts.
package manager

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/maps/treemap"
	"go.uber.org/zap"

	"github.com/jrife/statemux/statemachine"
	"github.com/jrife/statemux/statemachine/instance"
	"github.com/jrife/statemux/statemachine/protocol"
	"github.com/jrife/statemux/statemachine/registry"
	"github.com/jrife/statemux/statemachine/service"
)

// Manager is the top-level statemachine.StateMachine that every replica
// runs. It owns no primitive logic itself; it only routes.
type Manager struct {
	registry *registry.Registry
	services *treemap.Map
	logger   *zap.Logger
	initCtx  statemachine.Context
}

// New builds a Manager that creates instances using reg. A nil logger
// falls back to zap.NewNop(), the convention the rest of this module's
// ambient logging follows.
func New(reg *registry.Registry, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Manager{
		registry: reg,
		services: treemap.NewWith(protocol.Compare),
		logger:   logger,
	}
}

var _ statemachine.StateMachine = (*Manager)(nil)

// Init retains ctx for Install to initialize restored instances with;
// hosted instances are otherwise initialized individually as they are
// created or restored.
func (m *Manager) Init(ctx statemachine.Context) error {
	m.initCtx = ctx

	return nil
}

func (m *Manager) get(id protocol.ServiceId) (*instance.Instance, bool) {
	v, ok := m.services.Get(id)

	if !ok {
		return nil, false
	}

	return v.(*instance.Instance), true
}

// newInstance constructs and initializes a fresh instance for id, the one
// path both Apply's implicit create and Install's restore funnel through
// so init-time behavior never diverges between the two.
func (m *Manager) newInstance(ctx statemachine.Context, id protocol.ServiceId) (*instance.Instance, error) {
	svc, ok := m.registry.New(id.Type)

	if !ok {
		return nil, statemachine.ErrUnknownType
	}

	inst := instance.New(id, svc)

	if err := inst.Init(ctx); err != nil {
		return nil, err
	}

	return inst, nil
}

// createIfAbsent returns the instance addressed by id, creating and
// registering one if it does not already exist.
func (m *Manager) createIfAbsent(ctx statemachine.Context, id protocol.ServiceId) (*instance.Instance, error) {
	if inst, ok := m.get(id); ok {
		return inst, nil
	}

	inst, err := m.newInstance(ctx, id)

	if err != nil {
		return nil, err
	}

	m.services.Put(id, inst)

	m.logger.Debug("created service instance",
		zap.String("type", id.Type),
		zap.String("name", id.Name),
		zap.Uint64("index", ctx.Index()))

	return inst, nil
}

// Apply dispatches a single, non-streaming command envelope.
func (m *Manager) Apply(ctx statemachine.Context, command []byte) ([]byte, error) {
	request, err := protocol.DecodeRequest(command)

	if err != nil {
		return nil, statemachine.ErrDecode
	}

	switch request.Kind {
	case protocol.RequestCreate:
		if _, err := m.createIfAbsent(ctx, request.Id); err != nil {
			return nil, err
		}

		return protocol.EncodeResponse(protocol.NewCreateResponse())
	case protocol.RequestDelete:
		m.services.Remove(request.Id)

		return protocol.EncodeResponse(protocol.NewDeleteResponse())
	case protocol.RequestCommand:
		inst, err := m.createIfAbsent(ctx, request.Id)

		if err != nil {
			return nil, err
		}

		payload, err := inst.ApplyCommand(ctx, request.Command.Payload)

		if err != nil {
			return nil, err
		}

		return protocol.EncodeResponse(protocol.NewCommandResponse(payload))
	default:
		return nil, fmt.Errorf("manager: %s is not a valid command request kind", request.Kind)
	}
}

// ApplyStream dispatches a single streaming command envelope. Only
// RequestCommand may stream; every chunk the hosted service produces is
// re-framed as a CommandResponse before reaching sink.
func (m *Manager) ApplyStream(ctx statemachine.Context, command []byte, sink statemachine.Sink) error {
	request, err := protocol.DecodeRequest(command)

	if err != nil {
		sink.Error(statemachine.ErrDecode)

		return nil
	}

	if request.Kind != protocol.RequestCommand {
		sink.Error(fmt.Errorf("manager: %s is not a streamable command request kind", request.Kind))

		return nil
	}

	inst, err := m.createIfAbsent(ctx, request.Id)

	if err != nil {
		sink.Error(err)

		return nil
	}

	wrapped := newEnvelopeSink(sink, func(payload []byte) *protocol.ServiceResponse {
		return protocol.NewCommandResponse(payload)
	})

	return inst.ApplyCommandStream(ctx, request.Command.Payload, wrapped)
}

// Query dispatches a single, non-streaming read-only envelope: either a
// metadata listing or a query against one instance. A query against an
// address with no installed instance is served by a transient instance
// that is discarded immediately after, rather than failing -- the same
// asymmetry with QueryStream the routing state machine this was modeled
// on exhibits.
func (m *Manager) Query(ctx statemachine.Context, query []byte) ([]byte, error) {
	request, err := protocol.DecodeRequest(query)

	if err != nil {
		return nil, statemachine.ErrDecode
	}

	switch request.Kind {
	case protocol.RequestMetadata:
		var typeFilter string
		var limit int32

		if request.Metadata != nil {
			typeFilter = request.Metadata.Type
			limit = request.Metadata.Limit
		}

		return protocol.EncodeResponse(protocol.NewMetadataResponse(listServices(m.services, typeFilter, limit, m.logger)))
	case protocol.RequestQuery:
		inst, ok := m.get(request.Id)

		if !ok {
			inst, err = m.newInstance(ctx, request.Id)

			if err != nil {
				return nil, err
			}
		}

		payload, err := inst.ApplyQuery(ctx, request.Query.Payload)

		if err != nil {
			return nil, err
		}

		return protocol.EncodeResponse(protocol.NewQueryResponse(payload))
	default:
		return nil, fmt.Errorf("manager: %s is not a valid query request kind", request.Kind)
	}
}

// QueryStream dispatches a single streaming query. Unlike Query, a
// streaming query against an address with no installed instance fails
// with ErrUnknownService instead of falling back to a transient instance,
// since a streaming read has no single return value to synthesize a
// not-found response into.
func (m *Manager) QueryStream(ctx statemachine.Context, query []byte, sink statemachine.Sink) error {
	request, err := protocol.DecodeRequest(query)

	if err != nil {
		sink.Error(statemachine.ErrDecode)

		return nil
	}

	if request.Kind != protocol.RequestQuery {
		sink.Error(fmt.Errorf("manager: %s is not a streamable query request kind", request.Kind))

		return nil
	}

	inst, ok := m.get(request.Id)

	if !ok {
		sink.Error(statemachine.ErrUnknownService)

		return nil
	}

	wrapped := newEnvelopeSink(sink, func(payload []byte) *protocol.ServiceResponse {
		return protocol.NewQueryResponse(payload)
	})

	return inst.ApplyQueryStream(ctx, request.Query.Payload, wrapped)
}

// Snapshot writes every hosted instance as a ServiceId record followed by
// that instance's own self-delimited snapshot bytes, in ascending
// (Type, Name) order so two replicas that applied the same log produce
// byte-identical snapshots.
func (m *Manager) Snapshot(output io.Writer) error {
	iter := m.services.Iterator()
	iter.Begin()

	for iter.Next() {
		id := iter.Key().(protocol.ServiceId)
		inst := iter.Value().(*instance.Instance)

		if err := protocol.WriteServiceId(output, id); err != nil {
			return err
		}

		if err := inst.Snapshot(output); err != nil {
			return err
		}
	}

	return nil
}

// Install discards every hosted instance and replaces them with the ones
// encoded in input, a stream of ServiceId records and their snapshot
// bytes previously produced by Snapshot.
func (m *Manager) Install(input io.Reader) error {
	m.services = treemap.NewWith(protocol.Compare)

	for {
		id, err := protocol.ReadServiceId(input)

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		inst, err := m.newInstance(m.initCtx, id)

		if err != nil {
			return err
		}

		if err := inst.Restore(input); err != nil {
			return service.Wrap(id.Type, err)
		}

		m.services.Put(id, inst)
	}
}

// CanDelete reports whether every hosted instance is done with log entries
// up to and including index. A manager with no hosted instances imposes no
// constraint of its own.
func (m *Manager) CanDelete(index uint64) bool {
	iter := m.services.Iterator()
	iter.Begin()

	for iter.Next() {
		inst := iter.Value().(*instance.Instance)

		if !inst.CanDelete(index) {
			return false
		}
	}

	return true
}
