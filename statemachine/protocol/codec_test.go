package protocol_test

import (
	"bytes"
	"testing"

	"github.com/jrife/statemux/statemachine/protocol"
)

// TestServiceIdRoundTrip guards against Marshal/Unmarshal recursing into
// themselves instead of reaching the reflective codec: a self-recursive
// implementation stack-overflows rather than returning, so this test would
// never complete if that regression came back.
func TestServiceIdRoundTrip(t *testing.T) {
	id := protocol.ServiceId{Name: "n1", Type: "counter"}

	data, err := id.Marshal()

	if err != nil {
		t.Fatalf("unexpected error marshaling: %s", err.Error())
	}

	var decoded protocol.ServiceId

	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("unexpected error unmarshaling: %s", err.Error())
	}

	if decoded != id {
		t.Fatalf("%+v != %+v", decoded, id)
	}
}

func TestServiceRequestRoundTrip(t *testing.T) {
	id := protocol.ServiceId{Name: "n1", Type: "counter"}

	tests := []*protocol.ServiceRequest{
		protocol.NewCreateRequest(id),
		protocol.NewDeleteRequest(id),
		protocol.NewMetadataRequest("counter"),
		protocol.NewMetadataRequestLimit("counter", 5),
		protocol.NewCommandRequest(id, []byte("command payload")),
		protocol.NewQueryRequest(id, []byte("query payload")),
	}

	for _, request := range tests {
		data, err := request.Marshal()

		if err != nil {
			t.Fatalf("unexpected error marshaling %s request: %s", request.Kind, err.Error())
		}

		decoded, err := protocol.DecodeRequest(data)

		if err != nil {
			t.Fatalf("unexpected error decoding %s request: %s", request.Kind, err.Error())
		}

		if decoded.Kind != request.Kind {
			t.Fatalf("kind: %s != %s", decoded.Kind, request.Kind)
		}

		if decoded.Id != request.Id {
			t.Fatalf("id: %+v != %+v", decoded.Id, request.Id)
		}

		switch request.Kind {
		case protocol.RequestMetadata:
			if decoded.Metadata.Type != request.Metadata.Type || decoded.Metadata.Limit != request.Metadata.Limit {
				t.Fatalf("metadata: %+v != %+v", decoded.Metadata, request.Metadata)
			}
		case protocol.RequestCommand:
			if !bytes.Equal(decoded.Command.Payload, request.Command.Payload) {
				t.Fatalf("command payload: %q != %q", decoded.Command.Payload, request.Command.Payload)
			}
		case protocol.RequestQuery:
			if !bytes.Equal(decoded.Query.Payload, request.Query.Payload) {
				t.Fatalf("query payload: %q != %q", decoded.Query.Payload, request.Query.Payload)
			}
		}
	}
}

func TestServiceResponseRoundTrip(t *testing.T) {
	services := []protocol.ServiceId{
		{Name: "n1", Type: "counter"},
		{Name: "n2", Type: "map"},
	}

	tests := []*protocol.ServiceResponse{
		protocol.NewCreateResponse(),
		protocol.NewDeleteResponse(),
		protocol.NewMetadataResponse(services),
		protocol.NewCommandResponse([]byte("command response")),
		protocol.NewQueryResponse([]byte("query response")),
	}

	for _, response := range tests {
		data, err := response.Marshal()

		if err != nil {
			t.Fatalf("unexpected error marshaling %s response: %s", response.Kind, err.Error())
		}

		decoded, err := protocol.DecodeResponse(data)

		if err != nil {
			t.Fatalf("unexpected error decoding %s response: %s", response.Kind, err.Error())
		}

		if decoded.Kind != response.Kind {
			t.Fatalf("kind: %s != %s", decoded.Kind, response.Kind)
		}

		switch response.Kind {
		case protocol.RequestMetadata:
			if len(decoded.Metadata.Services) != len(response.Metadata.Services) {
				t.Fatalf("services: %+v != %+v", decoded.Metadata.Services, response.Metadata.Services)
			}

			for i, id := range response.Metadata.Services {
				if decoded.Metadata.Services[i] != id {
					t.Fatalf("service %d: %+v != %+v", i, decoded.Metadata.Services[i], id)
				}
			}
		case protocol.RequestCommand:
			if !bytes.Equal(decoded.Command.Payload, response.Command.Payload) {
				t.Fatalf("command payload: %q != %q", decoded.Command.Payload, response.Command.Payload)
			}
		case protocol.RequestQuery:
			if !bytes.Equal(decoded.Query.Payload, response.Query.Payload) {
				t.Fatalf("query payload: %q != %q", decoded.Query.Payload, response.Query.Payload)
			}
		}
	}
}

// TestWriteReadServiceId exercises the length-delimited single-record
// framing codec.go layers on top of ServiceId.Marshal/Unmarshal.
func TestWriteReadServiceId(t *testing.T) {
	ids := []protocol.ServiceId{
		{Name: "n1", Type: "counter"},
		{Name: "n2", Type: "map"},
		{Name: "n3", Type: "lock"},
	}

	var buf bytes.Buffer

	for _, id := range ids {
		if err := protocol.WriteServiceId(&buf, id); err != nil {
			t.Fatalf("unexpected error writing service id: %s", err.Error())
		}
	}

	for i, want := range ids {
		got, err := protocol.ReadServiceId(&buf)

		if err != nil {
			t.Fatalf("unexpected error reading service id %d: %s", i, err.Error())
		}

		if got != want {
			t.Fatalf("service id %d: %+v != %+v", i, got, want)
		}
	}
}
