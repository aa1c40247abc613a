// Package grpc adapts a transport.Server onto the wire as a gRPC service,
// the way the teacher's grpc frontend adapted PtarmiganServer onto gRPC's
// Raft service -- NewFrontend binds a transport.Server, Listen serves it.
package grpc

import (
	"context"
	"errors"
	"io"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jrife/statemux/statemachine"
	"github.com/jrife/statemux/transport"
	"github.com/jrife/statemux/transport/grpc/pb"
)

// Frontend listens for gRPC connections and forwards every call to the
// transport.Server it wraps.
type Frontend struct {
	server     transport.Server
	logger     *zap.Logger
	grpcServer *grpc.Server
}

// NewFrontend builds a Frontend bound to server. A nil logger falls back
// to zap.NewNop().
func NewFrontend(server transport.Server, logger *zap.Logger) *Frontend {
	if logger == nil {
		logger = zap.NewNop()
	}

	frontend := &Frontend{server: server, logger: logger}
	frontend.grpcServer = grpc.NewServer()

	pb.RegisterMultiplexServer(frontend.grpcServer, &multiplexServer{server: server, logger: logger})

	return frontend
}

// Listen blocks accepting connections from listener until the frontend is
// stopped.
func (frontend *Frontend) Listen(listener net.Listener) error {
	return frontend.grpcServer.Serve(listener)
}

// Stop stops accepting new connections and closes existing ones.
func (frontend *Frontend) Stop() {
	frontend.grpcServer.GracefulStop()
}

var _ pb.MultiplexServer = (*multiplexServer)(nil)

type multiplexServer struct {
	server transport.Server
	logger *zap.Logger
}

func (s *multiplexServer) ExecuteCommand(ctx context.Context, in *pb.Envelope) (*pb.Envelope, error) {
	result, err := s.server.ExecuteCommand(ctx, in.Data)

	if err != nil {
		s.logger.Error("ExecuteCommand failed", zap.Error(err))

		return nil, toStatus(err)
	}

	return &pb.Envelope{Data: result}, nil
}

func (s *multiplexServer) ExecuteQuery(ctx context.Context, in *pb.Envelope) (*pb.Envelope, error) {
	result, err := s.server.ExecuteQuery(ctx, in.Data)

	if err != nil {
		s.logger.Error("ExecuteQuery failed", zap.Error(err))

		return nil, toStatus(err)
	}

	return &pb.Envelope{Data: result}, nil
}

func (s *multiplexServer) ExecuteCommandStream(in *pb.Envelope, stream pb.Multiplex_ExecuteCommandStreamServer) error {
	err := s.server.ExecuteCommandStream(stream.Context(), in.Data, func(chunk []byte) error {
		return stream.Send(&pb.Envelope{Data: chunk})
	})

	if err != nil {
		s.logger.Error("ExecuteCommandStream failed", zap.Error(err))

		return toStatus(err)
	}

	return nil
}

func (s *multiplexServer) ExecuteQueryStream(in *pb.Envelope, stream pb.Multiplex_ExecuteQueryStreamServer) error {
	err := s.server.ExecuteQueryStream(stream.Context(), in.Data, func(chunk []byte) error {
		return stream.Send(&pb.Envelope{Data: chunk})
	})

	if err != nil {
		s.logger.Error("ExecuteQueryStream failed", zap.Error(err))

		return toStatus(err)
	}

	return nil
}

func (s *multiplexServer) Snapshot(in *pb.Empty, stream pb.Multiplex_SnapshotServer) error {
	err := s.server.Snapshot(stream.Context(), func(chunk []byte) error {
		return stream.Send(&pb.Envelope{Data: chunk})
	})

	if err != nil {
		s.logger.Error("Snapshot failed", zap.Error(err))

		return toStatus(err)
	}

	return nil
}

func (s *multiplexServer) Install(stream pb.Multiplex_InstallServer) error {
	err := s.server.Install(stream.Context(), func() ([]byte, error) {
		chunk, err := stream.Recv()

		if err == io.EOF {
			return nil, io.EOF
		}

		if err != nil {
			return nil, err
		}

		return chunk.Data, nil
	})

	if err != nil {
		s.logger.Error("Install failed", zap.Error(err))

		return toStatus(err)
	}

	return stream.SendAndClose(&pb.Empty{})
}

func toStatus(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, statemachine.ErrUnknownService):
		return status.Newf(codes.NotFound, "%s", err.Error()).Err()
	case errors.Is(err, statemachine.ErrUnknownType):
		return status.Newf(codes.FailedPrecondition, "%s", err.Error()).Err()
	default:
		return status.Newf(codes.Internal, "%s", err.Error()).Err()
	}
}
