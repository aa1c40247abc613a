package replica

import (
	"sync"

	"github.com/jrife/statemux/consensus"
	"github.com/jrife/statemux/utils/observable_map"
)

// SetObserver is an observer callback for an ObservableSet.
type SetObserver func(replica Replica)

// ObservableSet is a type-safe wrapper around two observable_maps that
// keeps every hosted Replica indexed both by its own ID and by the
// consensus.RaftID of the group driving it, so a caller can look one up
// from either direction: an inbound client request addresses a Replica by
// ID, while a raft message addresses it by RaftID.
type ObservableSet struct {
	mu        sync.Mutex
	byID      *observable_map.ObservableMap
	byRaftID  *observable_map.ObservableMap
}

// NewObservableSet creates an empty ObservableSet.
func NewObservableSet() *ObservableSet {
	return &ObservableSet{
		byID:     observable_map.New(),
		byRaftID: observable_map.New(),
	}
}

func ensureInvariants(r Replica) {
	if r == nil {
		panic("nil replica")
	}

	if r.Raft() == nil {
		panic("nil Raft")
	}

	if r.StateMachine() == nil {
		panic("nil StateMachine")
	}
}

// Add adds a replica to the set, maintaining the 1-1 invariant between
// replica IDs and raft IDs. Add is idempotent: adding the same replica
// twice has no effect. It panics if r, r.Raft() or r.StateMachine() is
// nil, or if r's ID or RaftID is already bound to a different replica.
func (set *ObservableSet) Add(r Replica) {
	ensureInvariants(r)

	set.mu.Lock()
	defer set.mu.Unlock()

	existingByID, idExists := set.byID.Get(r.ID())
	existingByRaftID, raftIDExists := set.byRaftID.Get(r.Raft().ID())

	if idExists != raftIDExists {
		panic("1-1 invariant violation")
	} else if idExists && (existingByID != r || existingByRaftID != r) {
		panic("1-1 invariant violation")
	} else if !idExists {
		set.byID.Put(r.ID(), r)
		set.byRaftID.Put(r.Raft().ID(), r)
	}
}

// Delete removes a replica from the set.
func (set *ObservableSet) Delete(r Replica) {
	ensureInvariants(r)

	set.mu.Lock()
	defer set.mu.Unlock()

	set.byID.Delete(r.ID())
	set.byRaftID.Delete(r.Raft().ID())
}

// Get looks up a replica by its own ID.
func (set *ObservableSet) Get(id ID) (Replica, bool) {
	value, ok := set.byID.Get(id)

	if !ok {
		return nil, false
	}

	return value.(Replica), true
}

// GetByRaft looks up a replica by the RaftID of the group driving it.
func (set *ObservableSet) GetByRaft(raftID consensus.RaftID) (Replica, bool) {
	value, ok := set.byRaftID.Get(raftID)

	if !ok {
		return nil, false
	}

	return value.(Replica), true
}

// OnAdd registers an observer invoked every time a new replica is added.
func (set *ObservableSet) OnAdd(cb SetObserver) {
	set.byID.OnAdd(func(key interface{}, value interface{}) {
		cb(value.(Replica))
	})
}

// OnDelete registers an observer invoked every time a replica is removed.
func (set *ObservableSet) OnDelete(cb SetObserver) {
	set.byID.OnDelete(func(key interface{}, value interface{}) {
		cb(value.(Replica))
	})
}
