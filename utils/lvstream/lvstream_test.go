package lvstream_test

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/jrife/statemux/utils/lvstream"
)

func TestLVStreamRoundTrip(t *testing.T) {
	input := [][]byte{
		[]byte("a"),
		[]byte("bb"),
		[]byte("ccc"),
	}

	var buf bytes.Buffer
	i := 0
	encoder := lvstream.NewLVStreamEncoder(func() ([]byte, error) {
		if i >= len(input) {
			return nil, io.EOF
		}

		value := input[i]
		i++

		return value, nil
	}, func() {})

	if _, err := io.Copy(&buf, encoder); err != nil && err != io.EOF {
		t.Fatalf("unexpected error copying encoder output: %s", err.Error())
	}

	output := [][]byte{}
	decoder := lvstream.NewLVStreamDecoder(func(value []byte) error {
		copied := make([]byte, len(value))
		copy(copied, value)
		output = append(output, copied)

		return nil
	})

	if _, err := decoder.Write(buf.Bytes()); err != nil {
		t.Fatalf("unexpected error decoding: %s", err.Error())
	}

	if !reflect.DeepEqual(input, output) {
		t.Errorf("%v != %v", input, output)
	}
}

// TestReadOneReadsExactlyOneRecord guards against ReadOne over-consuming a
// shared reader: each call must return the next record in order and leave
// the reader positioned right after it, never past it.
func TestReadOneReadsExactlyOneRecord(t *testing.T) {
	records := [][]byte{[]byte("a"), []byte("bb"), []byte("ccc")}

	var buf bytes.Buffer

	for _, record := range records {
		if err := lvstream.WriteOne(&buf, record); err != nil {
			t.Fatalf("unexpected error writing record: %s", err.Error())
		}
	}

	for i, want := range records {
		got, err := lvstream.ReadOne(&buf)

		if err != nil {
			t.Fatalf("unexpected error reading record %d: %s", i, err.Error())
		}

		if !bytes.Equal(got, want) {
			t.Fatalf("record %d: got %q, want %q", i, got, want)
		}
	}

	if _, err := lvstream.ReadOne(&buf); err != io.EOF {
		t.Fatalf("expected io.EOF after the last record, got %v", err)
	}
}
