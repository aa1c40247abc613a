package protocol

import "github.com/gogo/protobuf/proto"

// CreateResponse acknowledges a create request. No payload.
type CreateResponse struct{}

// DeleteResponse acknowledges a delete request. No payload.
type DeleteResponse struct{}

// MetadataResponse lists the ServiceIds matching a metadata request, in
// ascending (Type, Name) order.
type MetadataResponse struct {
	Services []ServiceId `protobuf:"bytes,1,rep,name=services" json:"services,omitempty"`
}

// CommandResponse carries the bytes a service's ApplyCommand produced.
type CommandResponse struct {
	Payload []byte `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
}

// QueryResponse carries the bytes a service's ApplyQuery produced.
type QueryResponse struct {
	Payload []byte `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
}

// ServiceResponse is the outbound envelope, mirroring ServiceRequest's
// kinds.
type ServiceResponse struct {
	Kind     RequestKind       `protobuf:"varint,1,opt,name=kind,enum=protocol.RequestKind" json:"kind,omitempty"`
	Create   *CreateResponse   `protobuf:"bytes,2,opt,name=create" json:"create,omitempty"`
	Delete   *DeleteResponse   `protobuf:"bytes,3,opt,name=delete" json:"delete,omitempty"`
	Metadata *MetadataResponse `protobuf:"bytes,4,opt,name=metadata" json:"metadata,omitempty"`
	Command  *CommandResponse  `protobuf:"bytes,5,opt,name=command" json:"command,omitempty"`
	Query    *QueryResponse    `protobuf:"bytes,6,opt,name=query" json:"query,omitempty"`
}

func (m *ServiceResponse) Reset()         { *m = ServiceResponse{} }
func (m *ServiceResponse) String() string { return proto.CompactTextString(m) }
func (*ServiceResponse) ProtoMessage()    {}

// serviceResponseWire is ServiceResponse's underlying struct shape
// without its Marshal and Unmarshal methods, so proto.Marshal/
// proto.Unmarshal reach the reflective codec instead of redispatching
// into those very methods through the Marshaler/Unmarshaler interfaces.
type serviceResponseWire ServiceResponse

func (m *serviceResponseWire) Reset()         { *m = serviceResponseWire{} }
func (m *serviceResponseWire) String() string { return proto.CompactTextString(m) }
func (*serviceResponseWire) ProtoMessage()    {}

// Marshal encodes the response (not yet length-framed; see codec.go).
func (m *ServiceResponse) Marshal() ([]byte, error) {
	return proto.Marshal((*serviceResponseWire)(m))
}

// Unmarshal decodes a response previously written by Marshal.
func (m *ServiceResponse) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*serviceResponseWire)(m))
}

// NewCreateResponse builds an empty create acknowledgement.
func NewCreateResponse() *ServiceResponse {
	return &ServiceResponse{Kind: RequestCreate, Create: &CreateResponse{}}
}

// NewDeleteResponse builds an empty delete acknowledgement.
func NewDeleteResponse() *ServiceResponse {
	return &ServiceResponse{Kind: RequestDelete, Delete: &DeleteResponse{}}
}

// NewMetadataResponse builds a metadata listing response.
func NewMetadataResponse(services []ServiceId) *ServiceResponse {
	return &ServiceResponse{Kind: RequestMetadata, Metadata: &MetadataResponse{Services: services}}
}

// NewCommandResponse wraps a command's raw response bytes.
func NewCommandResponse(payload []byte) *ServiceResponse {
	return &ServiceResponse{Kind: RequestCommand, Command: &CommandResponse{Payload: payload}}
}

// NewQueryResponse wraps a query's raw response bytes.
func NewQueryResponse(payload []byte) *ServiceResponse {
	return &ServiceResponse{Kind: RequestQuery, Query: &QueryResponse{Payload: payload}}
}
