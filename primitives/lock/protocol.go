// Package lock implements a fenced, single-holder lock: at most one
// holder token owns the lock at a time, and every successful acquisition
// is stamped with a monotonically increasing fencing counter a holder can
// present to downstream systems to detect a stale grant.
package lock

import "github.com/gogo/protobuf/proto"

// OperationKind selects one of the lock's operations inside a
// LockRequest.
type OperationKind int32

const (
	OpUnknown OperationKind = iota
	OpLock
	OpUnlock
	OpIsLocked
)

// LockRequest attempts to acquire the lock for Holder. It succeeds
// without changing the fence if Holder already holds the lock.
type LockRequest struct {
	Holder string `protobuf:"bytes,1,opt,name=holder,proto3" json:"holder,omitempty"`
}

// LockResponse reports whether the acquisition succeeded and, if so, the
// fencing token it was granted.
type LockResponse struct {
	Acquired bool   `protobuf:"varint,1,opt,name=acquired,proto3" json:"acquired,omitempty"`
	Fence    uint64 `protobuf:"varint,2,opt,name=fence,proto3" json:"fence,omitempty"`
}

// UnlockRequest releases the lock on behalf of Holder. It has no effect
// if Holder does not currently hold the lock.
type UnlockRequest struct {
	Holder string `protobuf:"bytes,1,opt,name=holder,proto3" json:"holder,omitempty"`
}

// UnlockResponse reports whether the lock was released as a result of
// this request.
type UnlockResponse struct {
	Released bool `protobuf:"varint,1,opt,name=released,proto3" json:"released,omitempty"`
}

// IsLockedRequest has no fields; it reads the lock's current state.
type IsLockedRequest struct{}

// IsLockedResponse reports the lock's current holder, fence and locked
// state. Holder and Fence are zero-valued when Locked is false.
type IsLockedResponse struct {
	Locked bool   `protobuf:"varint,1,opt,name=locked,proto3" json:"locked,omitempty"`
	Holder string `protobuf:"bytes,2,opt,name=holder,proto3" json:"holder,omitempty"`
	Fence  uint64 `protobuf:"varint,3,opt,name=fence,proto3" json:"fence,omitempty"`
}

// LockPrimitiveRequest is the operation envelope carried as the Payload
// of a statemachine/protocol CommandRequest or QueryRequest.
type LockPrimitiveRequest struct {
	Op       OperationKind    `protobuf:"varint,1,opt,name=op,enum=lock.OperationKind" json:"op,omitempty"`
	Lock     *LockRequest     `protobuf:"bytes,2,opt,name=lock" json:"lock,omitempty"`
	Unlock   *UnlockRequest   `protobuf:"bytes,3,opt,name=unlock" json:"unlock,omitempty"`
	IsLocked *IsLockedRequest `protobuf:"bytes,4,opt,name=is_locked" json:"is_locked,omitempty"`
}

func (m *LockPrimitiveRequest) Reset()         { *m = LockPrimitiveRequest{} }
func (m *LockPrimitiveRequest) String() string { return proto.CompactTextString(m) }
func (*LockPrimitiveRequest) ProtoMessage()    {}

// lockPrimitiveRequestWire is LockPrimitiveRequest's underlying struct
// shape without its Marshal and Unmarshal methods, so proto.Marshal/
// proto.Unmarshal reach the reflective codec instead of redispatching
// into those very methods through the Marshaler/Unmarshaler interfaces.
type lockPrimitiveRequestWire LockPrimitiveRequest

func (m *lockPrimitiveRequestWire) Reset()         { *m = lockPrimitiveRequestWire{} }
func (m *lockPrimitiveRequestWire) String() string { return proto.CompactTextString(m) }
func (*lockPrimitiveRequestWire) ProtoMessage()    {}

func (m *LockPrimitiveRequest) Marshal() ([]byte, error) {
	return proto.Marshal((*lockPrimitiveRequestWire)(m))
}
func (m *LockPrimitiveRequest) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*lockPrimitiveRequestWire)(m))
}

// LockPrimitiveResponse is the operation result envelope carried as the
// Payload of a statemachine/protocol CommandResponse or QueryResponse.
type LockPrimitiveResponse struct {
	Op       OperationKind     `protobuf:"varint,1,opt,name=op,enum=lock.OperationKind" json:"op,omitempty"`
	Lock     *LockResponse     `protobuf:"bytes,2,opt,name=lock" json:"lock,omitempty"`
	Unlock   *UnlockResponse   `protobuf:"bytes,3,opt,name=unlock" json:"unlock,omitempty"`
	IsLocked *IsLockedResponse `protobuf:"bytes,4,opt,name=is_locked" json:"is_locked,omitempty"`
}

func (m *LockPrimitiveResponse) Reset()         { *m = LockPrimitiveResponse{} }
func (m *LockPrimitiveResponse) String() string { return proto.CompactTextString(m) }
func (*LockPrimitiveResponse) ProtoMessage()    {}

// lockPrimitiveResponseWire is LockPrimitiveResponse's underlying struct
// shape without its Marshal and Unmarshal methods; see
// lockPrimitiveRequestWire.
type lockPrimitiveResponseWire LockPrimitiveResponse

func (m *lockPrimitiveResponseWire) Reset()         { *m = lockPrimitiveResponseWire{} }
func (m *lockPrimitiveResponseWire) String() string { return proto.CompactTextString(m) }
func (*lockPrimitiveResponseWire) ProtoMessage()    {}

func (m *LockPrimitiveResponse) Marshal() ([]byte, error) {
	return proto.Marshal((*lockPrimitiveResponseWire)(m))
}
func (m *LockPrimitiveResponse) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*lockPrimitiveResponseWire)(m))
}

// Snapshot is the on-disk representation of a lock's state.
type Snapshot struct {
	Holder string `protobuf:"bytes,1,opt,name=holder,proto3" json:"holder,omitempty"`
	Fence  uint64 `protobuf:"varint,2,opt,name=fence,proto3" json:"fence,omitempty"`
	Locked bool   `protobuf:"varint,3,opt,name=locked,proto3" json:"locked,omitempty"`
}

func (m *Snapshot) Reset()         { *m = Snapshot{} }
func (m *Snapshot) String() string { return proto.CompactTextString(m) }
func (*Snapshot) ProtoMessage()    {}

// snapshotWire is Snapshot's underlying struct shape without its Marshal
// and Unmarshal methods; see lockPrimitiveRequestWire.
type snapshotWire Snapshot

func (m *snapshotWire) Reset()         { *m = snapshotWire{} }
func (m *snapshotWire) String() string { return proto.CompactTextString(m) }
func (*snapshotWire) ProtoMessage()    {}

func (m *Snapshot) Marshal() ([]byte, error)    { return proto.Marshal((*snapshotWire)(m)) }
func (m *Snapshot) Unmarshal(data []byte) error { return proto.Unmarshal(data, (*snapshotWire)(m)) }
