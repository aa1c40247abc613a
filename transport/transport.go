// Package transport describes the operations a multiplexer exposes over
// the wire, independent of the protocol carrying them, the same
// separation transport/transport.go drew between PtarmiganServer and its
// frontends. statemachine/protocol's envelope bytes are opaque to every
// type in this package; only statemachine/manager interprets them.
package transport

import "context"

// Server is the interface a protocol frontend (see transport/grpc) binds
// to in order to expose a multiplexer over the wire. Every method accepts
// and returns statemachine/protocol envelope bytes.
type Server interface {
	// ExecuteCommand applies a single non-streaming command envelope.
	ExecuteCommand(ctx context.Context, envelope []byte) ([]byte, error)
	// ExecuteCommandStream applies a single streaming command envelope,
	// invoking onChunk once per response chunk the hosted service
	// produces, in order.
	ExecuteCommandStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error
	// ExecuteQuery applies a single non-streaming query envelope.
	ExecuteQuery(ctx context.Context, envelope []byte) ([]byte, error)
	// ExecuteQueryStream is the streaming variant of ExecuteQuery.
	ExecuteQueryStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error
	// Snapshot streams the underlying state machine's full snapshot out
	// as a sequence of opaque chunks, invoking onChunk once per chunk in
	// the order they must be replayed.
	Snapshot(ctx context.Context, onChunk func([]byte) error) error
	// Install replaces the underlying state machine's state with a
	// snapshot streamed in via next, which returns io.EOF once every
	// chunk a prior Snapshot call produced has been consumed.
	Install(ctx context.Context, next func() ([]byte, error)) error
}

// Client is the interface a caller of a remote multiplexer uses,
// independent of the protocol that carries the call.
type Client interface {
	ExecuteCommand(ctx context.Context, envelope []byte) ([]byte, error)
	ExecuteCommandStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error
	ExecuteQuery(ctx context.Context, envelope []byte) ([]byte, error)
	ExecuteQueryStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error
	Snapshot(ctx context.Context, onChunk func([]byte) error) error
	Install(ctx context.Context, next func() ([]byte, error)) error
	Close() error
}
