package pb_test

import (
	"bytes"
	"testing"

	"github.com/jrife/statemux/transport/grpc/pb"
)

// TestEnvelopeRoundTrip guards against Marshal/Unmarshal recursing into
// themselves instead of reaching the reflective codec.
func TestEnvelopeRoundTrip(t *testing.T) {
	envelope := &pb.Envelope{Data: []byte("opaque payload")}

	data, err := envelope.Marshal()

	if err != nil {
		t.Fatalf("unexpected error marshaling: %s", err.Error())
	}

	var decoded pb.Envelope

	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("unexpected error unmarshaling: %s", err.Error())
	}

	if !bytes.Equal(decoded.Data, envelope.Data) {
		t.Fatalf("%q != %q", decoded.Data, envelope.Data)
	}
}

func TestEmptyRoundTrip(t *testing.T) {
	data, err := (&pb.Empty{}).Marshal()

	if err != nil {
		t.Fatalf("unexpected error marshaling: %s", err.Error())
	}

	if err := (&pb.Empty{}).Unmarshal(data); err != nil {
		t.Fatalf("unexpected error unmarshaling: %s", err.Error())
	}
}
