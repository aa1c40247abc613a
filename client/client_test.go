package client_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/jrife/statemux/client"
	"github.com/jrife/statemux/primitives/atomicmap"
	"github.com/jrife/statemux/primitives/counter"
	"github.com/jrife/statemux/primitives/lock"
	"github.com/jrife/statemux/statemachine/manager"
	"github.com/jrife/statemux/statemachine/registry"
	"github.com/jrife/statemux/transport"
)

func newTestClient() *client.Client {
	reg := registry.New()
	reg.Register("counter", counter.New)
	reg.Register("map", atomicmap.New)
	reg.Register("lock", lock.New)

	sm := manager.New(reg, zap.NewNop())

	return client.NewLocal(transport.NewServer(sm))
}

func TestCounterEndToEnd(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()
	counters := c.Counter("requests")

	if next, err := counters.Increment(ctx, 0); err != nil || next != 1 {
		t.Fatalf("Increment() = %d, %v, want 1, nil", next, err)
	}

	if next, err := counters.Increment(ctx, 4); err != nil || next != 5 {
		t.Fatalf("Increment() = %d, %v, want 5, nil", next, err)
	}

	if value, err := counters.Get(ctx); err != nil || value != 5 {
		t.Fatalf("Get() = %d, %v, want 5, nil", value, err)
	}

	if ok, err := counters.CheckAndSet(ctx, 5, 100); err != nil || !ok {
		t.Fatalf("CheckAndSet() = %v, %v, want true, nil", ok, err)
	}

	if value, err := counters.Get(ctx); err != nil || value != 100 {
		t.Fatalf("Get() = %d, %v, want 100, nil", value, err)
	}
}

func TestMapEndToEnd(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()
	m := c.Map("config")

	if _, existed, err := m.Put(ctx, "b", []byte("2")); err != nil || existed {
		t.Fatalf("Put(b) = _, %v, %v, want false, nil", existed, err)
	}

	if _, existed, err := m.Put(ctx, "a", []byte("1")); err != nil || existed {
		t.Fatalf("Put(a) = _, %v, %v, want false, nil", existed, err)
	}

	if value, existed, err := m.Get(ctx, "a"); err != nil || !existed || string(value) != "1" {
		t.Fatalf("Get(a) = %q, %v, %v, want \"1\", true, nil", value, existed, err)
	}

	if size, err := m.Size(ctx); err != nil || size != 2 {
		t.Fatalf("Size() = %d, %v, want 2, nil", size, err)
	}

	var keys []string

	err := m.Entries(ctx, func(key string, value []byte) error {
		keys = append(keys, key)

		return nil
	})

	if err != nil {
		t.Fatalf("Entries() returned %v", err)
	}

	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Fatalf("Entries() produced keys in the wrong order (-want +got):\n%s", diff)
	}

	if prev, existed, err := m.Remove(ctx, "a"); err != nil || !existed || string(prev) != "1" {
		t.Fatalf("Remove(a) = %q, %v, %v, want \"1\", true, nil", prev, existed, err)
	}
}

func TestLockEndToEnd(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()
	mutex := c.Lock("leader")

	holderA := client.NewHolderToken()
	holderB := client.NewHolderToken()

	if holderA == holderB {
		t.Fatalf("NewHolderToken() produced two identical tokens")
	}

	acquired, fenceA, err := mutex.Acquire(ctx, holderA)

	if err != nil || !acquired || fenceA == 0 {
		t.Fatalf("Acquire(holderA) = %v, %d, %v, want true, nonzero, nil", acquired, fenceA, err)
	}

	if acquired, _, err := mutex.Acquire(ctx, holderB); err != nil || acquired {
		t.Fatalf("Acquire(holderB) = %v, %v, want false, nil", acquired, err)
	}

	locked, holder, fence, err := mutex.IsLocked(ctx)

	if err != nil || !locked || holder != holderA || fence != fenceA {
		t.Fatalf("IsLocked() = %v, %q, %d, %v, want true, %q, %d, nil", locked, holder, fence, err, holderA, fenceA)
	}

	if released, err := mutex.Release(ctx, holderB); err != nil || released {
		t.Fatalf("Release(holderB) = %v, %v, want false, nil", released, err)
	}

	if released, err := mutex.Release(ctx, holderA); err != nil || !released {
		t.Fatalf("Release(holderA) = %v, %v, want true, nil", released, err)
	}

	acquired, fenceC, err := mutex.Acquire(ctx, holderB)

	if err != nil || !acquired || fenceC <= fenceA {
		t.Fatalf("Acquire(holderB) after release = %v, %d, %v, want true, > %d, nil", acquired, fenceC, err, fenceA)
	}
}
