// Package pb carries the wire messages and gRPC service definition for
// the multiplex service, hand-written in the shape a protoc --go_out
// --go-grpc_out run would produce. No .proto source was retrieved for
// this pack, so this is maintained by hand rather than generated, same
// as the teacher's own generated grpc pb package is for its Raft service.
package pb

import "github.com/golang/protobuf/proto"

// Envelope carries one statemachine/protocol envelope's bytes, opaque to
// every type in this package.
type Envelope struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Envelope) Reset()         { *m = Envelope{} }
func (m *Envelope) String() string { return proto.CompactTextString(m) }
func (*Envelope) ProtoMessage()    {}

// envelopeWire is Envelope's underlying struct shape without its Marshal
// and Unmarshal methods, so proto.Marshal/proto.Unmarshal reach the
// reflective codec instead of redispatching into those very methods
// through the Marshaler/Unmarshaler interfaces.
type envelopeWire Envelope

func (m *envelopeWire) Reset()         { *m = envelopeWire{} }
func (m *envelopeWire) String() string { return proto.CompactTextString(m) }
func (*envelopeWire) ProtoMessage()    {}

// Marshal encodes the envelope wrapper.
func (m *Envelope) Marshal() ([]byte, error) { return proto.Marshal((*envelopeWire)(m)) }

// Unmarshal decodes an envelope wrapper previously written by Marshal.
func (m *Envelope) Unmarshal(data []byte) error { return proto.Unmarshal(data, (*envelopeWire)(m)) }

// Empty carries no data; it is the request for Snapshot and the response
// for Install.
type Empty struct{}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

// emptyWire is Empty's underlying struct shape without its Marshal and
// Unmarshal methods; see envelopeWire.
type emptyWire Empty

func (m *emptyWire) Reset()         { *m = emptyWire{} }
func (m *emptyWire) String() string { return proto.CompactTextString(m) }
func (*emptyWire) ProtoMessage()    {}

func (m *Empty) Marshal() ([]byte, error)    { return proto.Marshal((*emptyWire)(m)) }
func (m *Empty) Unmarshal(data []byte) error { return proto.Unmarshal(data, (*emptyWire)(m)) }
