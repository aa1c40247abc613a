// Package consensus defines the boundary this module's replicas sit on
// top of: a replicated log that drives the manager's Apply/ApplyStream
// calls. Implementing that log is explicitly out of scope -- see
// SPEC_FULL.md's non-goals -- so this package only carries the interface
// shape a replica binds to, adapted from raft/raft.go.
package consensus

import (
	"context"

	"github.com/coreos/etcd/raft"
	"github.com/coreos/etcd/raft/raftpb"
)

// RaftID identifies one raft group within a process hosting several.
type RaftID string

// Raft is the subset of a raft node's surface a replica needs: enough to
// drive the etcd/raft state machine and propose entries, without this
// module owning how Ready() is processed or how the log is persisted.
type Raft interface {
	ID() RaftID
	Tick()
	Propose(ctx context.Context, data []byte) error
	ProposeConfChange(ctx context.Context, cc raftpb.ConfChange) error
	Step(ctx context.Context, msg raftpb.Message) error
	Advance()
	ApplyConfChange(cc raftpb.ConfChange) *raftpb.ConfState
	HasReady() bool
	Ready() raft.Ready
}
