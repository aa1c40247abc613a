package counter

import (
	"fmt"
	"io"

	"github.com/jrife/statemux/statemachine"
	"github.com/jrife/statemux/statemachine/service"
	"github.com/jrife/statemux/utils/lvstream"
)

// Counter is an atomic int64, the smallest complete primitive service:
// every command it handles mutates a single word of state and every
// response is derived purely from the request and that state.
type Counter struct {
	value int64
}

// New builds a fresh Counter, initialized to zero. Suitable for use as a
// statemachine/service.Type.
func New() service.PrimitiveService {
	return &Counter{}
}

var _ service.PrimitiveService = (*Counter)(nil)

// Init has nothing to set up; the zero value is a valid counter.
func (c *Counter) Init(ctx statemachine.Context) error {
	return nil
}

func decodeRequest(payload []byte) (*CounterRequest, error) {
	request := &CounterRequest{}

	if err := request.Unmarshal(payload); err != nil {
		return nil, statemachine.ErrDecode
	}

	return request, nil
}

// ApplyCommand handles set, check-and-set, increment and decrement -- the
// counter's mutating operations.
func (c *Counter) ApplyCommand(ctx statemachine.Context, command []byte) ([]byte, error) {
	request, err := decodeRequest(command)

	if err != nil {
		return nil, err
	}

	switch request.Op {
	case OpSet:
		previous := c.value
		c.value = request.Set.Value

		return (&CounterResponse{Op: OpSet, Set: &SetResponse{PreviousValue: previous}}).Marshal()
	case OpCheckAndSet:
		succeeded := c.value == request.CheckAndSet.Expect

		if succeeded {
			c.value = request.CheckAndSet.Update
		}

		return (&CounterResponse{Op: OpCheckAndSet, CheckAndSet: &CheckAndSetResponse{Succeeded: succeeded}}).Marshal()
	case OpIncrement:
		previous := c.value
		delta := request.Increment.Delta

		if delta == 0 {
			delta = 1
		}

		c.value += delta

		return (&CounterResponse{Op: OpIncrement, Increment: &IncrementResponse{PreviousValue: previous, NextValue: c.value}}).Marshal()
	case OpDecrement:
		previous := c.value
		delta := request.Decrement.Delta

		if delta == 0 {
			delta = 1
		}

		c.value -= delta

		return (&CounterResponse{Op: OpDecrement, Decrement: &DecrementResponse{PreviousValue: previous, NextValue: c.value}}).Marshal()
	default:
		return nil, fmt.Errorf("counter: %d is not a valid command operation", request.Op)
	}
}

// ApplyCommandStream has no streaming commands; the counter's mutations
// are always single request/response.
func (c *Counter) ApplyCommandStream(ctx statemachine.Context, command []byte, sink statemachine.Sink) error {
	result, err := c.ApplyCommand(ctx, command)

	if err != nil {
		sink.Error(err)

		return nil
	}

	if err := sink.Next(result); err != nil {
		return err
	}

	sink.Complete()

	return nil
}

// ApplyQuery handles get, the counter's only non-mutating operation.
func (c *Counter) ApplyQuery(ctx statemachine.Context, query []byte) ([]byte, error) {
	request, err := decodeRequest(query)

	if err != nil {
		return nil, err
	}

	if request.Op != OpGet {
		return nil, fmt.Errorf("counter: %d is not a valid query operation", request.Op)
	}

	return (&CounterResponse{Op: OpGet, Get: &GetResponse{Value: c.value}}).Marshal()
}

// ApplyQueryStream has no streaming queries.
func (c *Counter) ApplyQueryStream(ctx statemachine.Context, query []byte, sink statemachine.Sink) error {
	result, err := c.ApplyQuery(ctx, query)

	if err != nil {
		sink.Error(err)

		return nil
	}

	if err := sink.Next(result); err != nil {
		return err
	}

	sink.Complete()

	return nil
}

// Snapshot writes the counter's value as a single length-delimited
// record.
func (c *Counter) Snapshot(output io.Writer) error {
	data, err := (&Snapshot{Counter: c.value}).Marshal()

	if err != nil {
		return err
	}

	return lvstream.WriteOne(output, data)
}

// Restore replaces the counter's value from a snapshot previously
// produced by Snapshot.
func (c *Counter) Restore(input io.Reader) error {
	data, err := lvstream.ReadOne(input)

	if err != nil {
		return err
	}

	var snapshot Snapshot

	if err := snapshot.Unmarshal(data); err != nil {
		return err
	}

	c.value = snapshot.Counter

	return nil
}

// CanDelete reports true unconditionally: a counter never needs the
// commands that produced its current value to stay in the log once it has
// been snapshotted.
func (c *Counter) CanDelete(index uint64) bool {
	return true
}
