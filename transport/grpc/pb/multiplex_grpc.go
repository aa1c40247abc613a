package pb

import (
	"context"

	"google.golang.org/grpc"
)

// MultiplexClient is the client-side stub for the multiplex service.
type MultiplexClient interface {
	ExecuteCommand(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (*Envelope, error)
	ExecuteCommandStream(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (Multiplex_ExecuteCommandStreamClient, error)
	ExecuteQuery(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (*Envelope, error)
	ExecuteQueryStream(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (Multiplex_ExecuteQueryStreamClient, error)
	Snapshot(ctx context.Context, in *Empty, opts ...grpc.CallOption) (Multiplex_SnapshotClient, error)
	Install(ctx context.Context, opts ...grpc.CallOption) (Multiplex_InstallClient, error)
}

type multiplexClient struct {
	cc *grpc.ClientConn
}

// NewMultiplexClient wraps cc as a MultiplexClient.
func NewMultiplexClient(cc *grpc.ClientConn) MultiplexClient {
	return &multiplexClient{cc}
}

func (c *multiplexClient) ExecuteCommand(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (*Envelope, error) {
	out := new(Envelope)

	if err := c.cc.Invoke(ctx, "/statemux.Multiplex/ExecuteCommand", in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *multiplexClient) ExecuteQuery(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (*Envelope, error) {
	out := new(Envelope)

	if err := c.cc.Invoke(ctx, "/statemux.Multiplex/ExecuteQuery", in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *multiplexClient) ExecuteCommandStream(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (Multiplex_ExecuteCommandStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Multiplex_serviceDesc.Streams[0], "/statemux.Multiplex/ExecuteCommandStream", opts...)

	if err != nil {
		return nil, err
	}

	x := &multiplexExecuteCommandStreamClient{stream}

	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}

	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

func (c *multiplexClient) ExecuteQueryStream(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (Multiplex_ExecuteQueryStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Multiplex_serviceDesc.Streams[1], "/statemux.Multiplex/ExecuteQueryStream", opts...)

	if err != nil {
		return nil, err
	}

	x := &multiplexExecuteQueryStreamClient{stream}

	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}

	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

func (c *multiplexClient) Snapshot(ctx context.Context, in *Empty, opts ...grpc.CallOption) (Multiplex_SnapshotClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Multiplex_serviceDesc.Streams[2], "/statemux.Multiplex/Snapshot", opts...)

	if err != nil {
		return nil, err
	}

	x := &multiplexSnapshotClient{stream}

	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}

	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

func (c *multiplexClient) Install(ctx context.Context, opts ...grpc.CallOption) (Multiplex_InstallClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Multiplex_serviceDesc.Streams[3], "/statemux.Multiplex/Install", opts...)

	if err != nil {
		return nil, err
	}

	return &multiplexInstallClient{stream}, nil
}

// Multiplex_SnapshotClient is the client-side handle for the streaming
// Snapshot call.
type Multiplex_SnapshotClient interface {
	Recv() (*Envelope, error)
	grpc.ClientStream
}

type multiplexSnapshotClient struct {
	grpc.ClientStream
}

func (x *multiplexSnapshotClient) Recv() (*Envelope, error) {
	m := new(Envelope)

	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Multiplex_InstallClient is the client-side handle for the streaming
// Install call: the caller sends a sequence of Envelope chunks, then
// calls CloseAndRecv to get the server's acknowledgement.
type Multiplex_InstallClient interface {
	Send(*Envelope) error
	CloseAndRecv() (*Empty, error)
	grpc.ClientStream
}

type multiplexInstallClient struct {
	grpc.ClientStream
}

func (x *multiplexInstallClient) Send(m *Envelope) error {
	return x.ClientStream.SendMsg(m)
}

func (x *multiplexInstallClient) CloseAndRecv() (*Empty, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	m := new(Empty)

	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Multiplex_ExecuteCommandStreamClient is the client-side handle for a
// streaming ExecuteCommandStream call.
type Multiplex_ExecuteCommandStreamClient interface {
	Recv() (*Envelope, error)
	grpc.ClientStream
}

type multiplexExecuteCommandStreamClient struct {
	grpc.ClientStream
}

func (x *multiplexExecuteCommandStreamClient) Recv() (*Envelope, error) {
	m := new(Envelope)

	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Multiplex_ExecuteQueryStreamClient is the client-side handle for a
// streaming ExecuteQueryStream call.
type Multiplex_ExecuteQueryStreamClient interface {
	Recv() (*Envelope, error)
	grpc.ClientStream
}

type multiplexExecuteQueryStreamClient struct {
	grpc.ClientStream
}

func (x *multiplexExecuteQueryStreamClient) Recv() (*Envelope, error) {
	m := new(Envelope)

	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

// MultiplexServer is the server-side interface for the multiplex service.
type MultiplexServer interface {
	ExecuteCommand(context.Context, *Envelope) (*Envelope, error)
	ExecuteCommandStream(*Envelope, Multiplex_ExecuteCommandStreamServer) error
	ExecuteQuery(context.Context, *Envelope) (*Envelope, error)
	ExecuteQueryStream(*Envelope, Multiplex_ExecuteQueryStreamServer) error
	Snapshot(*Empty, Multiplex_SnapshotServer) error
	Install(Multiplex_InstallServer) error
}

// Multiplex_SnapshotServer is the server-side handle for the streaming
// Snapshot call.
type Multiplex_SnapshotServer interface {
	Send(*Envelope) error
	grpc.ServerStream
}

type multiplexSnapshotServer struct {
	grpc.ServerStream
}

func (x *multiplexSnapshotServer) Send(m *Envelope) error {
	return x.ServerStream.SendMsg(m)
}

// Multiplex_InstallServer is the server-side handle for the streaming
// Install call.
type Multiplex_InstallServer interface {
	Recv() (*Envelope, error)
	SendAndClose(*Empty) error
	grpc.ServerStream
}

type multiplexInstallServer struct {
	grpc.ServerStream
}

func (x *multiplexInstallServer) Recv() (*Envelope, error) {
	m := new(Envelope)

	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

func (x *multiplexInstallServer) SendAndClose(m *Empty) error {
	return x.ServerStream.SendMsg(m)
}

// Multiplex_ExecuteCommandStreamServer is the server-side handle for a
// streaming ExecuteCommandStream call.
type Multiplex_ExecuteCommandStreamServer interface {
	Send(*Envelope) error
	grpc.ServerStream
}

type multiplexExecuteCommandStreamServer struct {
	grpc.ServerStream
}

func (x *multiplexExecuteCommandStreamServer) Send(m *Envelope) error {
	return x.ServerStream.SendMsg(m)
}

// Multiplex_ExecuteQueryStreamServer is the server-side handle for a
// streaming ExecuteQueryStream call.
type Multiplex_ExecuteQueryStreamServer interface {
	Send(*Envelope) error
	grpc.ServerStream
}

type multiplexExecuteQueryStreamServer struct {
	grpc.ServerStream
}

func (x *multiplexExecuteQueryStreamServer) Send(m *Envelope) error {
	return x.ServerStream.SendMsg(m)
}

// RegisterMultiplexServer registers srv with s.
func RegisterMultiplexServer(s *grpc.Server, srv MultiplexServer) {
	s.RegisterService(&_Multiplex_serviceDesc, srv)
}

func _Multiplex_ExecuteCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Envelope)

	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(MultiplexServer).ExecuteCommand(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/statemux.Multiplex/ExecuteCommand"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MultiplexServer).ExecuteCommand(ctx, req.(*Envelope))
	}

	return interceptor(ctx, in, info, handler)
}

func _Multiplex_ExecuteQuery_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Envelope)

	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(MultiplexServer).ExecuteQuery(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/statemux.Multiplex/ExecuteQuery"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MultiplexServer).ExecuteQuery(ctx, req.(*Envelope))
	}

	return interceptor(ctx, in, info, handler)
}

func _Multiplex_ExecuteCommandStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Envelope)

	if err := stream.RecvMsg(m); err != nil {
		return err
	}

	return srv.(MultiplexServer).ExecuteCommandStream(m, &multiplexExecuteCommandStreamServer{stream})
}

func _Multiplex_ExecuteQueryStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Envelope)

	if err := stream.RecvMsg(m); err != nil {
		return err
	}

	return srv.(MultiplexServer).ExecuteQueryStream(m, &multiplexExecuteQueryStreamServer{stream})
}

func _Multiplex_Snapshot_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Empty)

	if err := stream.RecvMsg(m); err != nil {
		return err
	}

	return srv.(MultiplexServer).Snapshot(m, &multiplexSnapshotServer{stream})
}

func _Multiplex_Install_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(MultiplexServer).Install(&multiplexInstallServer{stream})
}

var _Multiplex_serviceDesc = grpc.ServiceDesc{
	ServiceName: "statemux.Multiplex",
	HandlerType: (*MultiplexServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ExecuteCommand", Handler: _Multiplex_ExecuteCommand_Handler},
		{MethodName: "ExecuteQuery", Handler: _Multiplex_ExecuteQuery_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ExecuteCommandStream", Handler: _Multiplex_ExecuteCommandStream_Handler, ServerStreams: true},
		{StreamName: "ExecuteQueryStream", Handler: _Multiplex_ExecuteQueryStream_Handler, ServerStreams: true},
		{StreamName: "Snapshot", Handler: _Multiplex_Snapshot_Handler, ServerStreams: true},
		{StreamName: "Install", Handler: _Multiplex_Install_Handler, ClientStreams: true},
	},
	Metadata: "multiplex.proto",
}
