// Package atomicmap implements an ordered string -> []byte map primitive,
// exposing Put, Get, Remove, Clear, Size and a streaming Entries query
// that walks the map in key order.
package atomicmap

import "github.com/gogo/protobuf/proto"

// OperationKind selects one of the map's operations inside a MapRequest.
type OperationKind int32

const (
	OpUnknown OperationKind = iota
	OpPut
	OpGet
	OpRemove
	OpClear
	OpSize
	OpEntries
)

// PutRequest inserts or overwrites the value at Key.
type PutRequest struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

// PutResponse carries the value previously stored at Key, if any.
type PutResponse struct {
	PreviousValue []byte `protobuf:"bytes,1,opt,name=previous_value,proto3" json:"previous_value,omitempty"`
	Existed       bool   `protobuf:"varint,2,opt,name=existed,proto3" json:"existed,omitempty"`
}

// GetRequest reads the value at Key.
type GetRequest struct {
	Key string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

// GetResponse carries the value at the requested key, if it existed.
type GetResponse struct {
	Value   []byte `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	Existed bool   `protobuf:"varint,2,opt,name=existed,proto3" json:"existed,omitempty"`
}

// RemoveRequest deletes the entry at Key.
type RemoveRequest struct {
	Key string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

// RemoveResponse carries the value that was removed, if any.
type RemoveResponse struct {
	PreviousValue []byte `protobuf:"bytes,1,opt,name=previous_value,proto3" json:"previous_value,omitempty"`
	Existed       bool   `protobuf:"varint,2,opt,name=existed,proto3" json:"existed,omitempty"`
}

// ClearRequest empties the map.
type ClearRequest struct{}

// ClearResponse has no fields.
type ClearResponse struct{}

// SizeRequest reads the number of entries in the map.
type SizeRequest struct{}

// SizeResponse carries the number of entries in the map.
type SizeResponse struct {
	Size int64 `protobuf:"varint,1,opt,name=size,proto3" json:"size,omitempty"`
}

// EntriesRequest starts a stream of every entry in the map, in ascending
// key order.
type EntriesRequest struct{}

// Entry is one key/value pair streamed back by an Entries query.
type Entry struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Entry) Reset()         { *m = Entry{} }
func (m *Entry) String() string { return proto.CompactTextString(m) }
func (*Entry) ProtoMessage()    {}

// entryWire is Entry's underlying struct shape without its Marshal and
// Unmarshal methods, so proto.Marshal/proto.Unmarshal reach the
// reflective codec instead of redispatching into those very methods
// through the Marshaler/Unmarshaler interfaces.
type entryWire Entry

func (m *entryWire) Reset()         { *m = entryWire{} }
func (m *entryWire) String() string { return proto.CompactTextString(m) }
func (*entryWire) ProtoMessage()    {}

func (m *Entry) Marshal() ([]byte, error)    { return proto.Marshal((*entryWire)(m)) }
func (m *Entry) Unmarshal(data []byte) error { return proto.Unmarshal(data, (*entryWire)(m)) }

// MapRequest is the operation envelope carried as the Payload of a
// statemachine/protocol CommandRequest or QueryRequest.
type MapRequest struct {
	Op      OperationKind   `protobuf:"varint,1,opt,name=op,enum=atomicmap.OperationKind" json:"op,omitempty"`
	Put     *PutRequest     `protobuf:"bytes,2,opt,name=put" json:"put,omitempty"`
	Get     *GetRequest     `protobuf:"bytes,3,opt,name=get" json:"get,omitempty"`
	Remove  *RemoveRequest  `protobuf:"bytes,4,opt,name=remove" json:"remove,omitempty"`
	Clear   *ClearRequest   `protobuf:"bytes,5,opt,name=clear" json:"clear,omitempty"`
	Size    *SizeRequest    `protobuf:"bytes,6,opt,name=size" json:"size,omitempty"`
	Entries *EntriesRequest `protobuf:"bytes,7,opt,name=entries" json:"entries,omitempty"`
}

func (m *MapRequest) Reset()         { *m = MapRequest{} }
func (m *MapRequest) String() string { return proto.CompactTextString(m) }
func (*MapRequest) ProtoMessage()    {}

// mapRequestWire is MapRequest's underlying struct shape without its
// Marshal and Unmarshal methods; see entryWire.
type mapRequestWire MapRequest

func (m *mapRequestWire) Reset()         { *m = mapRequestWire{} }
func (m *mapRequestWire) String() string { return proto.CompactTextString(m) }
func (*mapRequestWire) ProtoMessage()    {}

func (m *MapRequest) Marshal() ([]byte, error)    { return proto.Marshal((*mapRequestWire)(m)) }
func (m *MapRequest) Unmarshal(data []byte) error { return proto.Unmarshal(data, (*mapRequestWire)(m)) }

// MapResponse is the operation result envelope carried as the Payload of a
// statemachine/protocol CommandResponse or QueryResponse.
type MapResponse struct {
	Op     OperationKind   `protobuf:"varint,1,opt,name=op,enum=atomicmap.OperationKind" json:"op,omitempty"`
	Put    *PutResponse    `protobuf:"bytes,2,opt,name=put" json:"put,omitempty"`
	Get    *GetResponse    `protobuf:"bytes,3,opt,name=get" json:"get,omitempty"`
	Remove *RemoveResponse `protobuf:"bytes,4,opt,name=remove" json:"remove,omitempty"`
	Clear  *ClearResponse  `protobuf:"bytes,5,opt,name=clear" json:"clear,omitempty"`
	Size   *SizeResponse   `protobuf:"bytes,6,opt,name=size" json:"size,omitempty"`
}

func (m *MapResponse) Reset()         { *m = MapResponse{} }
func (m *MapResponse) String() string { return proto.CompactTextString(m) }
func (*MapResponse) ProtoMessage()    {}

// mapResponseWire is MapResponse's underlying struct shape without its
// Marshal and Unmarshal methods; see entryWire.
type mapResponseWire MapResponse

func (m *mapResponseWire) Reset()         { *m = mapResponseWire{} }
func (m *mapResponseWire) String() string { return proto.CompactTextString(m) }
func (*mapResponseWire) ProtoMessage()    {}

func (m *MapResponse) Marshal() ([]byte, error) { return proto.Marshal((*mapResponseWire)(m)) }
func (m *MapResponse) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*mapResponseWire)(m))
}
