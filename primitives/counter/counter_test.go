package counter_test

import (
	"bytes"
	"testing"

	"github.com/jrife/statemux/primitives/counter"
	"github.com/jrife/statemux/statemachine"
)

func applyCommand(t *testing.T, c interface {
	ApplyCommand(statemachine.Context, []byte) ([]byte, error)
}, req *counter.CounterRequest) *counter.CounterResponse {
	t.Helper()

	payload, err := req.Marshal()

	if err != nil {
		t.Fatalf("could not marshal request: %s", err.Error())
	}

	result, err := c.ApplyCommand(statemachine.NewContext(1, statemachine.OperationCommand, 0), payload)

	if err != nil {
		t.Fatalf("unexpected error applying command: %s", err.Error())
	}

	resp := &counter.CounterResponse{}

	if err := resp.Unmarshal(result); err != nil {
		t.Fatalf("could not unmarshal response: %s", err.Error())
	}

	return resp
}

func TestCounterSetAndGet(t *testing.T) {
	c := counter.New()

	resp := applyCommand(t, c, &counter.CounterRequest{Op: counter.OpSet, Set: &counter.SetRequest{Value: 5}})

	if resp.Set.PreviousValue != 0 {
		t.Errorf("expected previous value 0, got %d", resp.Set.PreviousValue)
	}

	queryPayload, err := (&counter.CounterRequest{Op: counter.OpGet, Get: &counter.GetRequest{}}).Marshal()

	if err != nil {
		t.Fatalf("could not marshal query: %s", err.Error())
	}

	result, err := c.ApplyQuery(statemachine.NewContext(1, statemachine.OperationQuery, 0), queryPayload)

	if err != nil {
		t.Fatalf("unexpected error applying query: %s", err.Error())
	}

	getResp := &counter.CounterResponse{}

	if err := getResp.Unmarshal(result); err != nil {
		t.Fatalf("could not unmarshal response: %s", err.Error())
	}

	if getResp.Get.Value != 5 {
		t.Errorf("expected value 5, got %d", getResp.Get.Value)
	}
}

func TestCounterCheckAndSet(t *testing.T) {
	c := counter.New()

	applyCommand(t, c, &counter.CounterRequest{Op: counter.OpSet, Set: &counter.SetRequest{Value: 10}})

	failed := applyCommand(t, c, &counter.CounterRequest{Op: counter.OpCheckAndSet, CheckAndSet: &counter.CheckAndSetRequest{Expect: 999, Update: 20}})

	if failed.CheckAndSet.Succeeded {
		t.Errorf("expected check-and-set against wrong expected value to fail")
	}

	succeeded := applyCommand(t, c, &counter.CounterRequest{Op: counter.OpCheckAndSet, CheckAndSet: &counter.CheckAndSetRequest{Expect: 10, Update: 20}})

	if !succeeded.CheckAndSet.Succeeded {
		t.Errorf("expected check-and-set against correct expected value to succeed")
	}
}

func TestCounterIncrementDefaultsToOne(t *testing.T) {
	c := counter.New()

	resp := applyCommand(t, c, &counter.CounterRequest{Op: counter.OpIncrement, Increment: &counter.IncrementRequest{}})

	if resp.Increment.NextValue != 1 {
		t.Errorf("expected next value 1, got %d", resp.Increment.NextValue)
	}
}

func TestCounterDecrementWithDelta(t *testing.T) {
	c := counter.New()

	applyCommand(t, c, &counter.CounterRequest{Op: counter.OpSet, Set: &counter.SetRequest{Value: 10}})
	resp := applyCommand(t, c, &counter.CounterRequest{Op: counter.OpDecrement, Decrement: &counter.DecrementRequest{Delta: 4}})

	if resp.Decrement.NextValue != 6 {
		t.Errorf("expected next value 6, got %d", resp.Decrement.NextValue)
	}
}

func TestCounterSnapshotRoundTrip(t *testing.T) {
	c := counter.New()

	applyCommand(t, c, &counter.CounterRequest{Op: counter.OpSet, Set: &counter.SetRequest{Value: 42}})

	var buf bytes.Buffer

	if err := c.Snapshot(&buf); err != nil {
		t.Fatalf("unexpected error taking snapshot: %s", err.Error())
	}

	restored := counter.New()

	if err := restored.Restore(&buf); err != nil {
		t.Fatalf("unexpected error restoring snapshot: %s", err.Error())
	}

	queryPayload, err := (&counter.CounterRequest{Op: counter.OpGet, Get: &counter.GetRequest{}}).Marshal()

	if err != nil {
		t.Fatalf("could not marshal query: %s", err.Error())
	}

	result, err := restored.ApplyQuery(statemachine.NewContext(1, statemachine.OperationQuery, 0), queryPayload)

	if err != nil {
		t.Fatalf("unexpected error applying query: %s", err.Error())
	}

	resp := &counter.CounterResponse{}

	if err := resp.Unmarshal(result); err != nil {
		t.Fatalf("could not unmarshal response: %s", err.Error())
	}

	if resp.Get.Value != 42 {
		t.Errorf("expected restored value 42, got %d", resp.Get.Value)
	}
}

func TestCounterCanDelete(t *testing.T) {
	c := counter.New().(interface{ CanDelete(uint64) bool })

	if !c.CanDelete(100) {
		t.Errorf("expected counter to always allow log truncation")
	}
}
