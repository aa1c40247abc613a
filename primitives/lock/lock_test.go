package lock_test

import (
	"bytes"
	"testing"

	"github.com/jrife/statemux/primitives/lock"
	"github.com/jrife/statemux/statemachine"
)

type commandApplier interface {
	ApplyCommand(statemachine.Context, []byte) ([]byte, error)
}

func applyCommand(t *testing.T, l commandApplier, req *lock.LockPrimitiveRequest) *lock.LockPrimitiveResponse {
	t.Helper()

	payload, err := req.Marshal()

	if err != nil {
		t.Fatalf("could not marshal request: %s", err.Error())
	}

	result, err := l.ApplyCommand(statemachine.NewContext(1, statemachine.OperationCommand, 0), payload)

	if err != nil {
		t.Fatalf("unexpected error applying command: %s", err.Error())
	}

	resp := &lock.LockPrimitiveResponse{}

	if err := resp.Unmarshal(result); err != nil {
		t.Fatalf("could not unmarshal response: %s", err.Error())
	}

	return resp
}

func TestLockAcquireAndReject(t *testing.T) {
	l := lock.New()

	first := applyCommand(t, l, &lock.LockPrimitiveRequest{Op: lock.OpLock, Lock: &lock.LockRequest{Holder: "a"}})

	if !first.Lock.Acquired || first.Lock.Fence != 1 {
		t.Fatalf("expected first lock to acquire with fence 1, got %+v", first.Lock)
	}

	second := applyCommand(t, l, &lock.LockPrimitiveRequest{Op: lock.OpLock, Lock: &lock.LockRequest{Holder: "b"}})

	if second.Lock.Acquired {
		t.Errorf("expected second holder's lock attempt to be rejected")
	}
}

func TestLockReentrantForSameHolder(t *testing.T) {
	l := lock.New()

	applyCommand(t, l, &lock.LockPrimitiveRequest{Op: lock.OpLock, Lock: &lock.LockRequest{Holder: "a"}})
	again := applyCommand(t, l, &lock.LockPrimitiveRequest{Op: lock.OpLock, Lock: &lock.LockRequest{Holder: "a"}})

	if !again.Lock.Acquired || again.Lock.Fence != 1 {
		t.Errorf("expected re-acquisition by the same holder to succeed without changing the fence, got %+v", again.Lock)
	}
}

func TestLockUnlockOnlyByHolder(t *testing.T) {
	l := lock.New()

	applyCommand(t, l, &lock.LockPrimitiveRequest{Op: lock.OpLock, Lock: &lock.LockRequest{Holder: "a"}})

	wrongHolder := applyCommand(t, l, &lock.LockPrimitiveRequest{Op: lock.OpUnlock, Unlock: &lock.UnlockRequest{Holder: "b"}})

	if wrongHolder.Unlock.Released {
		t.Errorf("expected unlock by a non-holder to fail")
	}

	rightHolder := applyCommand(t, l, &lock.LockPrimitiveRequest{Op: lock.OpUnlock, Unlock: &lock.UnlockRequest{Holder: "a"}})

	if !rightHolder.Unlock.Released {
		t.Errorf("expected unlock by the current holder to succeed")
	}

	next := applyCommand(t, l, &lock.LockPrimitiveRequest{Op: lock.OpLock, Lock: &lock.LockRequest{Holder: "b"}})

	if !next.Lock.Acquired || next.Lock.Fence != 2 {
		t.Errorf("expected the next acquisition after release to bump the fence, got %+v", next.Lock)
	}
}

func TestLockSnapshotRoundTrip(t *testing.T) {
	l := lock.New()

	applyCommand(t, l, &lock.LockPrimitiveRequest{Op: lock.OpLock, Lock: &lock.LockRequest{Holder: "a"}})

	var buf bytes.Buffer

	if err := l.Snapshot(&buf); err != nil {
		t.Fatalf("unexpected error taking snapshot: %s", err.Error())
	}

	restored := lock.New()

	if err := restored.Restore(&buf); err != nil {
		t.Fatalf("unexpected error restoring snapshot: %s", err.Error())
	}

	queryPayload, err := (&lock.LockPrimitiveRequest{Op: lock.OpIsLocked, IsLocked: &lock.IsLockedRequest{}}).Marshal()

	if err != nil {
		t.Fatalf("could not marshal query: %s", err.Error())
	}

	result, err := restored.ApplyQuery(statemachine.NewContext(1, statemachine.OperationQuery, 0), queryPayload)

	if err != nil {
		t.Fatalf("unexpected error applying query: %s", err.Error())
	}

	resp := &lock.LockPrimitiveResponse{}

	if err := resp.Unmarshal(result); err != nil {
		t.Fatalf("could not unmarshal response: %s", err.Error())
	}

	if !resp.IsLocked.Locked || resp.IsLocked.Holder != "a" || resp.IsLocked.Fence != 1 {
		t.Errorf("expected restored lock state to match what was snapshotted, got %+v", resp.IsLocked)
	}
}
