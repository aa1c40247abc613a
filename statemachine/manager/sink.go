package manager

import (
	"github.com/jrife/statemux/statemachine"
	"github.com/jrife/statemux/statemachine/protocol"
)

// envelopeSink wraps an outer statemachine.Sink so a hosted service can be
// handed a plain statemachine.Sink of its own raw payload bytes, while
// every chunk it produces is re-framed as a ServiceResponse envelope
// before reaching the caller. The service never needs to know it's being
// multiplexed.
type envelopeSink struct {
	outer   statemachine.Sink
	wrap    func(payload []byte) *protocol.ServiceResponse
	errored bool
}

func newEnvelopeSink(outer statemachine.Sink, wrap func(payload []byte) *protocol.ServiceResponse) statemachine.Sink {
	return &envelopeSink{outer: outer, wrap: wrap}
}

func (s *envelopeSink) Next(chunk []byte) error {
	response := s.wrap(chunk)

	data, err := protocol.EncodeResponse(response)

	if err != nil {
		return err
	}

	return s.outer.Next(data)
}

func (s *envelopeSink) Complete() {
	s.outer.Complete()
}

func (s *envelopeSink) Error(err error) {
	s.errored = true
	s.outer.Error(err)
}
