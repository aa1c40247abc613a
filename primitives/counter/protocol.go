// Package counter implements the atomic counter primitive: a single int64
// mutated by Set, CheckAndSet, Increment and Decrement, ported from
// CounterService in the system this module's primitive contract was
// distilled from.
package counter

import "github.com/gogo/protobuf/proto"

// OperationKind selects one of the counter's five command/query
// operations inside a CounterRequest, the same tagged-union shape
// statemachine/protocol uses for the outer envelope.
type OperationKind int32

const (
	OpUnknown OperationKind = iota
	OpSet
	OpGet
	OpCheckAndSet
	OpIncrement
	OpDecrement
)

// SetRequest replaces the counter's value.
type SetRequest struct {
	Value int64 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
}

// SetResponse carries the value the counter held before the set.
type SetResponse struct {
	PreviousValue int64 `protobuf:"varint,1,opt,name=previous_value,proto3" json:"previous_value,omitempty"`
}

// GetRequest has no fields; it simply reads the current value.
type GetRequest struct{}

// GetResponse carries the counter's current value.
type GetResponse struct {
	Value int64 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
}

// CheckAndSetRequest sets the counter to Update if its current value is
// Expect.
type CheckAndSetRequest struct {
	Expect int64 `protobuf:"varint,1,opt,name=expect,proto3" json:"expect,omitempty"`
	Update int64 `protobuf:"varint,2,opt,name=update,proto3" json:"update,omitempty"`
}

// CheckAndSetResponse reports whether the compare-and-set succeeded.
type CheckAndSetResponse struct {
	Succeeded bool `protobuf:"varint,1,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
}

// IncrementRequest adds Delta to the counter. A zero Delta increments by
// exactly one, matching CounterService's getAndIncrement fallback.
type IncrementRequest struct {
	Delta int64 `protobuf:"varint,1,opt,name=delta,proto3" json:"delta,omitempty"`
}

// IncrementResponse carries the values on either side of the increment.
type IncrementResponse struct {
	PreviousValue int64 `protobuf:"varint,1,opt,name=previous_value,proto3" json:"previous_value,omitempty"`
	NextValue     int64 `protobuf:"varint,2,opt,name=next_value,proto3" json:"next_value,omitempty"`
}

// DecrementRequest subtracts Delta from the counter. A zero Delta
// decrements by exactly one.
type DecrementRequest struct {
	Delta int64 `protobuf:"varint,1,opt,name=delta,proto3" json:"delta,omitempty"`
}

// DecrementResponse carries the values on either side of the decrement.
type DecrementResponse struct {
	PreviousValue int64 `protobuf:"varint,1,opt,name=previous_value,proto3" json:"previous_value,omitempty"`
	NextValue     int64 `protobuf:"varint,2,opt,name=next_value,proto3" json:"next_value,omitempty"`
}

// CounterRequest is the operation envelope carried as the Payload of a
// statemachine/protocol CommandRequest or QueryRequest.
type CounterRequest struct {
	Op           OperationKind        `protobuf:"varint,1,opt,name=op,enum=counter.OperationKind" json:"op,omitempty"`
	Set          *SetRequest          `protobuf:"bytes,2,opt,name=set" json:"set,omitempty"`
	Get          *GetRequest          `protobuf:"bytes,3,opt,name=get" json:"get,omitempty"`
	CheckAndSet  *CheckAndSetRequest  `protobuf:"bytes,4,opt,name=check_and_set" json:"check_and_set,omitempty"`
	Increment    *IncrementRequest    `protobuf:"bytes,5,opt,name=increment" json:"increment,omitempty"`
	Decrement    *DecrementRequest    `protobuf:"bytes,6,opt,name=decrement" json:"decrement,omitempty"`
}

func (m *CounterRequest) Reset()         { *m = CounterRequest{} }
func (m *CounterRequest) String() string { return proto.CompactTextString(m) }
func (*CounterRequest) ProtoMessage()    {}

// counterRequestWire is CounterRequest's underlying struct shape without
// its Marshal and Unmarshal methods, so proto.Marshal/proto.Unmarshal
// reach the reflective codec instead of redispatching into those very
// methods through the Marshaler/Unmarshaler interfaces.
type counterRequestWire CounterRequest

func (m *counterRequestWire) Reset()         { *m = counterRequestWire{} }
func (m *counterRequestWire) String() string { return proto.CompactTextString(m) }
func (*counterRequestWire) ProtoMessage()    {}

func (m *CounterRequest) Marshal() ([]byte, error)    { return proto.Marshal((*counterRequestWire)(m)) }
func (m *CounterRequest) Unmarshal(data []byte) error { return proto.Unmarshal(data, (*counterRequestWire)(m)) }

// CounterResponse is the operation result envelope carried as the Payload
// of a statemachine/protocol CommandResponse or QueryResponse.
type CounterResponse struct {
	Op          OperationKind        `protobuf:"varint,1,opt,name=op,enum=counter.OperationKind" json:"op,omitempty"`
	Set         *SetResponse         `protobuf:"bytes,2,opt,name=set" json:"set,omitempty"`
	Get         *GetResponse         `protobuf:"bytes,3,opt,name=get" json:"get,omitempty"`
	CheckAndSet *CheckAndSetResponse `protobuf:"bytes,4,opt,name=check_and_set" json:"check_and_set,omitempty"`
	Increment   *IncrementResponse   `protobuf:"bytes,5,opt,name=increment" json:"increment,omitempty"`
	Decrement   *DecrementResponse   `protobuf:"bytes,6,opt,name=decrement" json:"decrement,omitempty"`
}

func (m *CounterResponse) Reset()         { *m = CounterResponse{} }
func (m *CounterResponse) String() string { return proto.CompactTextString(m) }
func (*CounterResponse) ProtoMessage()    {}

// counterResponseWire is CounterResponse's underlying struct shape
// without its Marshal and Unmarshal methods; see counterRequestWire.
type counterResponseWire CounterResponse

func (m *counterResponseWire) Reset()         { *m = counterResponseWire{} }
func (m *counterResponseWire) String() string { return proto.CompactTextString(m) }
func (*counterResponseWire) ProtoMessage()    {}

func (m *CounterResponse) Marshal() ([]byte, error) {
	return proto.Marshal((*counterResponseWire)(m))
}
func (m *CounterResponse) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*counterResponseWire)(m))
}

// Snapshot is the on-disk representation of a counter's state, written as
// a single length-delimited record.
type Snapshot struct {
	Counter int64 `protobuf:"varint,1,opt,name=counter,proto3" json:"counter,omitempty"`
}

func (m *Snapshot) Reset()         { *m = Snapshot{} }
func (m *Snapshot) String() string { return proto.CompactTextString(m) }
func (*Snapshot) ProtoMessage()    {}

// snapshotWire is Snapshot's underlying struct shape without its Marshal
// and Unmarshal methods; see counterRequestWire.
type snapshotWire Snapshot

func (m *snapshotWire) Reset()         { *m = snapshotWire{} }
func (m *snapshotWire) String() string { return proto.CompactTextString(m) }
func (*snapshotWire) ProtoMessage()    {}

func (m *Snapshot) Marshal() ([]byte, error)    { return proto.Marshal((*snapshotWire)(m)) }
func (m *Snapshot) Unmarshal(data []byte) error { return proto.Unmarshal(data, (*snapshotWire)(m)) }
