// Package replica binds one consensus.Raft group to the
// statemachine.StateMachine it drives, the one-to-one pairing a process
// hosting several raft groups needs to route a group's committed entries
// to the right manager.
package replica

import (
	"github.com/jrife/statemux/consensus"
	"github.com/jrife/statemux/statemachine"
)

// ID identifies a replica independent of the raft group backing it, so a
// caller can look one up by the address it was registered under even
// before a RaftID is known.
type ID string

// Replica pairs a consensus.Raft group with the statemachine.StateMachine
// it applies committed entries to.
type Replica interface {
	ID() ID
	StateMachine() statemachine.StateMachine
	Raft() consensus.Raft
}

type replica struct {
	id           ID
	stateMachine statemachine.StateMachine
	raft         consensus.Raft
}

// New binds sm to r under id.
func New(id ID, sm statemachine.StateMachine, r consensus.Raft) Replica {
	return &replica{id: id, stateMachine: sm, raft: r}
}

func (r *replica) ID() ID                                   { return r.id }
func (r *replica) StateMachine() statemachine.StateMachine { return r.stateMachine }
func (r *replica) Raft() consensus.Raft                     { return r.raft }
