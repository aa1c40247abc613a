package replica_test

import (
	"context"
	"testing"

	"github.com/coreos/etcd/raft"
	"github.com/coreos/etcd/raft/raftpb"
	"go.uber.org/zap"

	"github.com/jrife/statemux/consensus"
	"github.com/jrife/statemux/primitives/counter"
	"github.com/jrife/statemux/replica"
	"github.com/jrife/statemux/statemachine/manager"
	"github.com/jrife/statemux/statemachine/registry"
)

// fakeRaft is just enough of consensus.Raft to give a replica something
// concretely typed to hold; it drives nothing on its own.
type fakeRaft struct {
	id consensus.RaftID
}

func (r *fakeRaft) ID() consensus.RaftID { return r.id }
func (r *fakeRaft) Tick()                {}
func (r *fakeRaft) Propose(ctx context.Context, data []byte) error {
	return nil
}
func (r *fakeRaft) ProposeConfChange(ctx context.Context, cc raftpb.ConfChange) error {
	return nil
}
func (r *fakeRaft) Step(ctx context.Context, msg raftpb.Message) error {
	return nil
}
func (r *fakeRaft) Advance() {}
func (r *fakeRaft) ApplyConfChange(cc raftpb.ConfChange) *raftpb.ConfState {
	return nil
}
func (r *fakeRaft) HasReady() bool   { return false }
func (r *fakeRaft) Ready() raft.Ready { return raft.Ready{} }

func newManager() *manager.Manager {
	reg := registry.New()
	reg.Register("counter", counter.New)

	return manager.New(reg, zap.NewNop())
}

func TestObservableSetAddAndLookup(t *testing.T) {
	set := replica.NewObservableSet()
	r := replica.New("replica-1", newManager(), &fakeRaft{id: "raft-1"})

	set.Add(r)

	if got, ok := set.Get("replica-1"); !ok || got.ID() != "replica-1" {
		t.Fatalf("Get(replica-1) = %v, %v, want r, true", got, ok)
	}

	if got, ok := set.GetByRaft("raft-1"); !ok || got.Raft().ID() != "raft-1" {
		t.Fatalf("GetByRaft(raft-1) = %v, %v, want r, true", got, ok)
	}

	if _, ok := set.Get("missing"); ok {
		t.Fatalf("Get(missing) = _, true, want false")
	}
}

func TestObservableSetAddIsIdempotent(t *testing.T) {
	set := replica.NewObservableSet()
	r := replica.New("replica-1", newManager(), &fakeRaft{id: "raft-1"})

	set.Add(r)
	set.Add(r)

	if got, ok := set.Get("replica-1"); !ok || got != r {
		t.Fatalf("Get(replica-1) after double Add = %v, %v, want the same replica, true", got, ok)
	}
}

func TestObservableSetDeleteAndNotify(t *testing.T) {
	set := replica.NewObservableSet()
	r := replica.New("replica-1", newManager(), &fakeRaft{id: "raft-1"})

	var added, deleted []replica.ID

	set.OnAdd(func(r replica.Replica) { added = append(added, r.ID()) })
	set.OnDelete(func(r replica.Replica) { deleted = append(deleted, r.ID()) })

	set.Add(r)
	set.Delete(r)

	if len(added) != 1 || added[0] != "replica-1" {
		t.Fatalf("OnAdd callbacks = %v, want [replica-1]", added)
	}

	if len(deleted) != 1 || deleted[0] != "replica-1" {
		t.Fatalf("OnDelete callbacks = %v, want [replica-1]", deleted)
	}

	if _, ok := set.Get("replica-1"); ok {
		t.Fatalf("Get(replica-1) after Delete = _, true, want false")
	}
}

func TestObservableSetPanicsOnNilCollaborator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Add with a nil Raft did not panic")
		}
	}()

	set := replica.NewObservableSet()
	set.Add(replica.New("replica-1", newManager(), nil))
}
