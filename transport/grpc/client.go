package grpc

import (
	"context"
	"io"

	"google.golang.org/grpc"

	"github.com/jrife/statemux/transport"
	"github.com/jrife/statemux/transport/grpc/pb"
)

var _ transport.Client = (*Client)(nil)

// Client is a transport.Client backed by a gRPC connection to a Frontend.
type Client struct {
	conn   *grpc.ClientConn
	client pb.MultiplexClient
}

// Dial connects to a Frontend listening at target.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	conn, err := grpc.Dial(target, opts...)

	if err != nil {
		return nil, err
	}

	return &Client{conn: conn, client: pb.NewMultiplexClient(conn)}, nil
}

// ExecuteCommand applies a single non-streaming command envelope.
func (c *Client) ExecuteCommand(ctx context.Context, envelope []byte) ([]byte, error) {
	resp, err := c.client.ExecuteCommand(ctx, &pb.Envelope{Data: envelope})

	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// ExecuteCommandStream applies a single streaming command envelope,
// invoking onChunk once per response chunk in order.
func (c *Client) ExecuteCommandStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error {
	stream, err := c.client.ExecuteCommandStream(ctx, &pb.Envelope{Data: envelope})

	if err != nil {
		return err
	}

	return drain(stream, onChunk)
}

// ExecuteQuery applies a single non-streaming query envelope.
func (c *Client) ExecuteQuery(ctx context.Context, envelope []byte) ([]byte, error) {
	resp, err := c.client.ExecuteQuery(ctx, &pb.Envelope{Data: envelope})

	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// ExecuteQueryStream applies a single streaming query envelope.
func (c *Client) ExecuteQueryStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error {
	stream, err := c.client.ExecuteQueryStream(ctx, &pb.Envelope{Data: envelope})

	if err != nil {
		return err
	}

	return drain(stream, onChunk)
}

// Snapshot streams the remote multiplexer's full snapshot, invoking
// onChunk once per chunk in order.
func (c *Client) Snapshot(ctx context.Context, onChunk func([]byte) error) error {
	stream, err := c.client.Snapshot(ctx, &pb.Empty{})

	if err != nil {
		return err
	}

	return drain(stream, onChunk)
}

// Install streams a snapshot to the remote multiplexer, pulling chunks
// from next until it returns io.EOF.
func (c *Client) Install(ctx context.Context, next func() ([]byte, error)) error {
	stream, err := c.client.Install(ctx)

	if err != nil {
		return err
	}

	for {
		chunk, err := next()

		if err == io.EOF {
			break
		}

		if err != nil {
			return err
		}

		if err := stream.Send(&pb.Envelope{Data: chunk}); err != nil {
			return err
		}
	}

	_, err = stream.CloseAndRecv()

	return err
}

type envelopeStream interface {
	Recv() (*pb.Envelope, error)
}

func drain(stream envelopeStream, onChunk func([]byte) error) error {
	for {
		chunk, err := stream.Recv()

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if err := onChunk(chunk.Data); err != nil {
			return err
		}
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
