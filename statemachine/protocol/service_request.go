package protocol

import "github.com/gogo/protobuf/proto"

// RequestKind is the tagged-union discriminant for ServiceRequest, used
// for a plain match-on-tag dispatch instead of the reflective,
// annotation-driven dispatch the original system used (see DESIGN.md,
// "Annotation-driven dispatch in the source").
type RequestKind int32

const (
	RequestUnknown RequestKind = iota
	RequestCreate
	RequestDelete
	RequestMetadata
	RequestCommand
	RequestQuery
)

func (k RequestKind) String() string {
	switch k {
	case RequestCreate:
		return "create"
	case RequestDelete:
		return "delete"
	case RequestMetadata:
		return "metadata"
	case RequestCommand:
		return "command"
	case RequestQuery:
		return "query"
	default:
		return "unknown"
	}
}

// CreateRequest acknowledges creation of the addressed service. It carries
// no payload.
type CreateRequest struct{}

// DeleteRequest removes the addressed service from the manager. It carries
// no payload.
type DeleteRequest struct{}

// MetadataRequest lists known ServiceIds, optionally filtered by type. An
// empty Type lists every service. A non-positive Limit means unbounded.
type MetadataRequest struct {
	Type  string `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Limit int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

// CommandRequest delivers a mutating operation's payload to a service.
type CommandRequest struct {
	Payload []byte `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
}

// QueryRequest delivers a non-mutating operation's payload to a service.
type QueryRequest struct {
	Payload []byte `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
}

// ServiceRequest is the inbound envelope: a ServiceId plus exactly one of
// {create, delete, metadata, command, query}, selected by Kind.
type ServiceRequest struct {
	Id       ServiceId        `protobuf:"bytes,1,opt,name=id" json:"id"`
	Kind     RequestKind      `protobuf:"varint,2,opt,name=kind,enum=protocol.RequestKind" json:"kind,omitempty"`
	Create   *CreateRequest   `protobuf:"bytes,3,opt,name=create" json:"create,omitempty"`
	Delete   *DeleteRequest   `protobuf:"bytes,4,opt,name=delete" json:"delete,omitempty"`
	Metadata *MetadataRequest `protobuf:"bytes,5,opt,name=metadata" json:"metadata,omitempty"`
	Command  *CommandRequest  `protobuf:"bytes,6,opt,name=command" json:"command,omitempty"`
	Query    *QueryRequest    `protobuf:"bytes,7,opt,name=query" json:"query,omitempty"`
}

func (m *ServiceRequest) Reset()         { *m = ServiceRequest{} }
func (m *ServiceRequest) String() string { return proto.CompactTextString(m) }
func (*ServiceRequest) ProtoMessage()    {}

// serviceRequestWire is ServiceRequest's underlying struct shape without
// its Marshal and Unmarshal methods, so proto.Marshal/proto.Unmarshal
// reach the reflective codec instead of redispatching into those very
// methods through the Marshaler/Unmarshaler interfaces.
type serviceRequestWire ServiceRequest

func (m *serviceRequestWire) Reset()         { *m = serviceRequestWire{} }
func (m *serviceRequestWire) String() string { return proto.CompactTextString(m) }
func (*serviceRequestWire) ProtoMessage()    {}

// Marshal encodes the request (not yet length-framed; see codec.go).
func (m *ServiceRequest) Marshal() ([]byte, error) {
	return proto.Marshal((*serviceRequestWire)(m))
}

// Unmarshal decodes a request previously written by Marshal.
func (m *ServiceRequest) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*serviceRequestWire)(m))
}

// NewCreateRequest builds a create envelope addressed to id.
func NewCreateRequest(id ServiceId) *ServiceRequest {
	return &ServiceRequest{Id: id, Kind: RequestCreate, Create: &CreateRequest{}}
}

// NewDeleteRequest builds a delete envelope addressed to id.
func NewDeleteRequest(id ServiceId) *ServiceRequest {
	return &ServiceRequest{Id: id, Kind: RequestDelete, Delete: &DeleteRequest{}}
}

// NewMetadataRequest builds a metadata query, optionally filtered by type.
// An empty typeFilter lists every service.
func NewMetadataRequest(typeFilter string) *ServiceRequest {
	return &ServiceRequest{Kind: RequestMetadata, Metadata: &MetadataRequest{Type: typeFilter}}
}

// NewMetadataRequestLimit builds a metadata query filtered by type and
// capped at the first limit matches. A non-positive limit is unbounded.
func NewMetadataRequestLimit(typeFilter string, limit int32) *ServiceRequest {
	return &ServiceRequest{Kind: RequestMetadata, Metadata: &MetadataRequest{Type: typeFilter, Limit: limit}}
}

// NewCommandRequest builds a command envelope addressed to id.
func NewCommandRequest(id ServiceId, payload []byte) *ServiceRequest {
	return &ServiceRequest{Id: id, Kind: RequestCommand, Command: &CommandRequest{Payload: payload}}
}

// NewQueryRequest builds a query envelope addressed to id.
func NewQueryRequest(id ServiceId, payload []byte) *ServiceRequest {
	return &ServiceRequest{Id: id, Kind: RequestQuery, Query: &QueryRequest{Payload: payload}}
}
