// Package protocol is the wire format for the multiplexer: ServiceId plus
// the ServiceRequest/ServiceResponse envelope, framed as length-delimited
// records. Message types are hand-written in the shape protoc-gen-gogo
// would produce for messages with no custom marshaler: plain structs with
// protobuf struct tags, encoded and decoded through gogo/protobuf's
// struct-tag reflection codec rather than generated Marshal/Size methods.
// No .proto sources were retrieved for this pack, so these are maintained
// by hand rather than generated, the way ptarmiganpb/flockpb are checked
// in alongside their .proto files in the teacher repo.
package protocol

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
)

// ServiceId uniquely identifies a hosted primitive within one manager.
// Equality is structural over both fields; it is immutable once assigned.
type ServiceId struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type string `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
}

func (m *ServiceId) Reset()         { *m = ServiceId{} }
func (m *ServiceId) String() string { return proto.CompactTextString(m) }
func (*ServiceId) ProtoMessage()    {}

// Less orders ServiceIds lexicographically by (Type, Name), the order
// metadata responses and snapshot iteration must follow for two replicas
// applying the same log to converge on byte-identical output.
func (m ServiceId) Less(other ServiceId) bool {
	if m.Type != other.Type {
		return m.Type < other.Type
	}

	return m.Name < other.Name
}

// Compare returns -1, 0, or 1 as m sorts before, equal to, or after other
// under the (Type, Name) order. It is suitable for use as a
// github.com/emirpasic/gods utils.Comparator.
func Compare(a, b interface{}) int {
	x, ok1 := a.(ServiceId)
	y, ok2 := b.(ServiceId)

	if !ok1 || !ok2 {
		panic(fmt.Sprintf("protocol.Compare: expected ServiceId, got %T and %T", a, b))
	}

	if x.Type != y.Type {
		if x.Type < y.Type {
			return -1
		}

		return 1
	}

	if x.Name != y.Name {
		if x.Name < y.Name {
			return -1
		}

		return 1
	}

	return 0
}

// serviceIdWire is ServiceId's underlying struct shape without its Marshal
// and Unmarshal methods, so proto.Marshal/proto.Unmarshal reach the
// reflective codec instead of redispatching into those very methods
// through the Marshaler/Unmarshaler interfaces.
type serviceIdWire ServiceId

func (m *serviceIdWire) Reset()         { *m = serviceIdWire{} }
func (m *serviceIdWire) String() string { return proto.CompactTextString(m) }
func (*serviceIdWire) ProtoMessage()    {}

// Marshal encodes the ServiceId as a single protobuf message (not yet
// length-framed; see codec.go for the length-delimited record format used
// in the envelope and snapshot streams).
func (m *ServiceId) Marshal() ([]byte, error) {
	return proto.Marshal((*serviceIdWire)(m))
}

// Unmarshal decodes a ServiceId previously written by Marshal.
func (m *ServiceId) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*serviceIdWire)(m))
}
