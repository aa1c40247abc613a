package transport

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/jrife/statemux/statemachine"
)

// NewServer adapts a statemachine.StateMachine directly into a Server,
// standing in for the consensus layer that would normally sequence
// commands through a replicated log before applying them. It assigns
// each command the next monotonically increasing index itself and serves
// every call, including queries, under one lock that stands in for the
// log's single-threaded apply loop -- this module's StateMachine
// implementations assume they are never entered concurrently. That
// serialization, and the synthesized index/timestamp, are only sound for
// a single, unreplicated node; the actual sequencing consensus.Raft would
// provide is explicitly out of scope.
//
// It calls sm.Init once up front, the way a real consensus driver would
// before delivering any Apply, Snapshot, or Install call. sm here is
// always a Manager, whose Init only records the context for later
// restores and never fails.
func NewServer(sm statemachine.StateMachine) Server {
	_ = sm.Init(statemachine.NewContext(0, statemachine.OperationCommand, time.Now().UnixNano()))

	return &localServer{sm: sm}
}

type localServer struct {
	sm    statemachine.StateMachine
	mu    sync.Mutex
	index uint64
}

func (s *localServer) ExecuteCommand(ctx context.Context, envelope []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index++

	return s.sm.Apply(statemachine.NewContext(s.index, statemachine.OperationCommand, time.Now().UnixNano()), envelope)
}

func (s *localServer) ExecuteCommandStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index++

	sink, result := chunkSink(onChunk)
	sctx := statemachine.NewContext(s.index, statemachine.OperationCommand, time.Now().UnixNano())

	if err := s.sm.ApplyStream(sctx, envelope, sink); err != nil {
		return err
	}

	return *result
}

func (s *localServer) ExecuteQuery(ctx context.Context, envelope []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sm.Query(statemachine.NewContext(s.index, statemachine.OperationQuery, time.Now().UnixNano()), envelope)
}

func (s *localServer) ExecuteQueryStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sink, result := chunkSink(onChunk)
	sctx := statemachine.NewContext(s.index, statemachine.OperationQuery, time.Now().UnixNano())

	if err := s.sm.QueryStream(sctx, envelope, sink); err != nil {
		return err
	}

	return *result
}

// chunkSink adapts onChunk into a statemachine.Sink, capturing whatever
// error the hosted service's stream terminates with so the caller can
// surface it as the streaming call's own result.
func chunkSink(onChunk func([]byte) error) (statemachine.Sink, *error) {
	var streamErr error

	sink := statemachine.NewSink(onChunk, func() {}, func(err error) { streamErr = err })

	return sink, &streamErr
}

// Snapshot writes the state machine's snapshot out through onChunk, one
// io.Writer.Write call per chunk.
func (s *localServer) Snapshot(ctx context.Context, onChunk func([]byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sm.Snapshot(&chunkWriter{onChunk: onChunk})
}

// Install replaces the state machine's state with a snapshot pulled in
// through next until it returns io.EOF.
func (s *localServer) Install(ctx context.Context, next func() ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sm.Install(&chunkReader{next: next})
}

// chunkWriter adapts a chunk callback into an io.Writer, the shape
// statemachine.StateMachine.Snapshot requires.
type chunkWriter struct {
	onChunk func([]byte) error
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	chunk := make([]byte, len(p))
	copy(chunk, p)

	if err := w.onChunk(chunk); err != nil {
		return 0, err
	}

	return len(p), nil
}

// chunkReader adapts a pull callback into an io.Reader, the shape
// statemachine.StateMachine.Install requires.
type chunkReader struct {
	next func() ([]byte, error)
	buf  []byte
	done bool
}

func (r *chunkReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		if r.done {
			return 0, io.EOF
		}

		chunk, err := r.next()

		if err == io.EOF {
			r.done = true

			return 0, io.EOF
		}

		if err != nil {
			return 0, err
		}

		r.buf = chunk
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]

	return n, nil
}
