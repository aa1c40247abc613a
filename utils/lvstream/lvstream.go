package lvstream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
)

// 10 GB
var MaxValueSize = 10 * 1024 * 1024 * 1024

// msg,msg,msg -> [length|msg|length|msg...]
// [length|msg|length|msg...] -> msg,msg,msg
var EClosed = errors.New("Closed")

var _ io.ReadCloser = (*LVStreamEncoder)(nil)

type LVStreamEncoder struct {
	nextValue func() ([]byte, error)
	cleanup   func()
	isLength  bool
	length    []byte
	value     []byte
	chunk     []byte
	err       error
}

func NewLVStreamEncoder(nextValue func() ([]byte, error), cleanup func()) *LVStreamEncoder {
	encoder := &LVStreamEncoder{
		length:    make([]byte, 4),
		nextValue: nextValue,
		cleanup:   cleanup,
	}

	return encoder
}

// Read implements io.Reader
// It will panic if any of the preconditions
// are not met.
func (encoder *LVStreamEncoder) Read(p []byte) (int, error) {
	if encoder.err != nil {
		return 0, encoder.err
	}

	n := 0
	pLen := len(p)

	for n < pLen {
		if len(encoder.chunk) == 0 {
			if encoder.isLength {
				encoder.isLength = false
				encoder.chunk = encoder.value
			} else {
				encoder.isLength = true
				value, err := encoder.nextValue()

				if err != nil {
					encoder.close(err)

					return n, encoder.err
				}

				encoder.value = value
				binary.BigEndian.PutUint32(encoder.length, uint32(len(value)))
				encoder.chunk = encoder.length
			}
		}

		c := copy(p, encoder.chunk)
		encoder.chunk = encoder.chunk[c:]
		p = p[c:]
		n += c
	}

	return n, nil
}

func (encoder *LVStreamEncoder) close(err error) {
	if encoder.err != nil {
		return
	}

	encoder.err = err
	encoder.cleanup()
}

func (encoder *LVStreamEncoder) Close() error {
	encoder.close(EClosed)

	return nil
}

var _ io.WriteCloser = (*LVStreamDecoder)(nil)

type LVStreamDecoder struct {
	nextValue func([]byte) error
	isLength  bool
	chunkSize int
	chunk     []byte
	errMu     sync.Mutex
	err       error
}

func NewLVStreamDecoder(nextValue func([]byte) error) *LVStreamDecoder {
	decoder := &LVStreamDecoder{
		chunkSize: 4,
		isLength:  true,
		nextValue: nextValue,
	}

	decoder.chunk = reallocate(decoder.chunk, decoder.chunkSize)

	return decoder
}

func (decoder *LVStreamDecoder) Write(p []byte) (int, error) {
	if decoder.err != nil {
		return 0, decoder.err
	}

	pLen := len(p)

	for len(p) > 0 {
		// cap(chunk) >= chunkSize
		// copy p to chunk up to min(len(p), chunkSize)
		copyAmount := min(decoder.chunkSize, len(p))
		decoder.chunk = append(decoder.chunk, p[:copyAmount]...)
		p = p[copyAmount:]

		// Have we read all bytes for the current chunk?
		if len(decoder.chunk) == decoder.chunkSize {
			if decoder.isLength {
				// It's the length prefix. This becomes our new chunk size
				length := binary.BigEndian.Uint32(decoder.chunk)

				if uint64(length) > uint64(MaxValueSize) {
					decoder.err = fmt.Errorf("Encoded value length is too large: %d > max(%d)", length, MaxValueSize)

					return 0, decoder.err
				}

				decoder.chunkSize = int(length)
				decoder.chunk = reallocate(decoder.chunk, decoder.chunkSize)
				decoder.isLength = false
			} else {
				// It's the next value. Call submit
				if err := decoder.nextValue(decoder.chunk); err != nil {
					decoder.err = err

					return 0, decoder.err
				}

				decoder.chunkSize = 4
				decoder.chunk = reallocate(decoder.chunk, decoder.chunkSize)
				decoder.isLength = true
			}
		}
	}

	return pLen, nil
}

func (decoder *LVStreamDecoder) close(err error) error {
	decoder.errMu.Lock()
	defer decoder.errMu.Unlock()

	if decoder.err == nil {
		decoder.err = err
	}

	return decoder.err
}

func (decoder *LVStreamDecoder) Close() error {
	return decoder.close(EClosed)
}

// ReadOne reads exactly one length-value record from input, leaving input
// positioned right after it, the common case of decoding a single
// self-delimited message (a ServiceId record, a primitive's single-record
// snapshot) or pulling records one at a time off a shared reader without
// wiring up a full decoder loop at every call site.
func ReadOne(input io.Reader) ([]byte, error) {
	length := make([]byte, 4)

	if _, err := io.ReadFull(input, length); err != nil {
		return nil, err
	}

	n := binary.BigEndian.Uint32(length)

	if uint64(n) > uint64(MaxValueSize) {
		return nil, fmt.Errorf("Encoded value length is too large: %d > max(%d)", n, MaxValueSize)
	}

	value := make([]byte, n)

	if _, err := io.ReadFull(input, value); err != nil {
		return nil, err
	}

	return value, nil
}

// WriteOne writes a single length-value record containing value to
// output.
func WriteOne(output io.Writer, value []byte) error {
	sent := false
	encoder := NewLVStreamEncoder(func() ([]byte, error) {
		if sent {
			return nil, io.EOF
		}

		sent = true

		return value, nil
	}, func() {})

	_, err := io.Copy(output, encoder)

	return err
}

func min(a, b int) int {
	if a > b {
		return b
	}

	return a
}

func reallocate(b []byte, capacity int) []byte {
	if cap(b) < capacity {
		return make([]byte, 0, capacity)
	}

	return b[:0]
}
