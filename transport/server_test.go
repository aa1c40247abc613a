package transport_test

import (
	"context"
	"io"
	"testing"

	"go.uber.org/zap"

	"github.com/jrife/statemux/primitives/counter"
	"github.com/jrife/statemux/statemachine/manager"
	"github.com/jrife/statemux/statemachine/protocol"
	"github.com/jrife/statemux/statemachine/registry"
	"github.com/jrife/statemux/transport"
)

func newManager() *manager.Manager {
	reg := registry.New()
	reg.Register("counter", counter.New)

	return manager.New(reg, zap.NewNop())
}

func apply(t *testing.T, server transport.Server, req *protocol.ServiceRequest) *protocol.ServiceResponse {
	t.Helper()

	data, err := protocol.EncodeRequest(req)

	if err != nil {
		t.Fatalf("EncodeRequest() returned %v", err)
	}

	var respData []byte

	if req.Kind == protocol.RequestQuery || req.Kind == protocol.RequestMetadata {
		respData, err = server.ExecuteQuery(context.Background(), data)
	} else {
		respData, err = server.ExecuteCommand(context.Background(), data)
	}

	if err != nil {
		t.Fatalf("apply returned %v", err)
	}

	resp, err := protocol.DecodeResponse(respData)

	if err != nil {
		t.Fatalf("DecodeResponse() returned %v", err)
	}

	return resp
}

func TestServerSnapshotInstallRoundTrip(t *testing.T) {
	source := transport.NewServer(newManager())
	id := protocol.ServiceId{Type: "counter", Name: "requests"}

	setReq := &counter.CounterRequest{Op: counter.OpSet, Set: &counter.SetRequest{Value: 42}}
	payload, err := setReq.Marshal()

	if err != nil {
		t.Fatalf("Marshal() returned %v", err)
	}

	apply(t, source, protocol.NewCommandRequest(id, payload))

	var chunks [][]byte

	err = source.Snapshot(context.Background(), func(chunk []byte) error {
		chunks = append(chunks, chunk)

		return nil
	})

	if err != nil {
		t.Fatalf("Snapshot() returned %v", err)
	}

	if len(chunks) == 0 {
		t.Fatalf("Snapshot() produced no chunks")
	}

	target := transport.NewServer(newManager())
	i := 0

	err = target.Install(context.Background(), func() ([]byte, error) {
		if i >= len(chunks) {
			return nil, io.EOF
		}

		chunk := chunks[i]
		i++

		return chunk, nil
	})

	if err != nil {
		t.Fatalf("Install() returned %v", err)
	}

	getReq := &counter.CounterRequest{Op: counter.OpGet, Get: &counter.GetRequest{}}
	queryPayload, err := getReq.Marshal()

	if err != nil {
		t.Fatalf("Marshal() returned %v", err)
	}

	resp := apply(t, target, protocol.NewQueryRequest(id, queryPayload))

	if resp.Query == nil {
		t.Fatalf("response has no query payload")
	}

	counterResp := &counter.CounterResponse{}

	if err := counterResp.Unmarshal(resp.Query.Payload); err != nil {
		t.Fatalf("Unmarshal() returned %v", err)
	}

	if counterResp.Get.Value != 42 {
		t.Fatalf("Get().Value = %d, want 42 after Install", counterResp.Get.Value)
	}
}
