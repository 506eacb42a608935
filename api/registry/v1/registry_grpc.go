// Package registryv1 holds the gRPC contract of the devproc daemon.
package registryv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	NameRegistry_Ping_FullMethodName          = "/devproc.registry.v1.NameRegistry/Ping"
	NameRegistry_Lookup_FullMethodName        = "/devproc.registry.v1.NameRegistry/Lookup"
	NameRegistry_Add_FullMethodName           = "/devproc.registry.v1.NameRegistry/Add"
	NameRegistry_ListProcesses_FullMethodName = "/devproc.registry.v1.NameRegistry/ListProcesses"
)

// NameRegistryClient is the client API for the NameRegistry service.
type NameRegistryClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Lookup(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error)
	Add(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListProcesses(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type nameRegistryClient struct {
	cc grpc.ClientConnInterface
}

func NewNameRegistryClient(cc grpc.ClientConnInterface) NameRegistryClient {
	return &nameRegistryClient{cc}
}

func (c *nameRegistryClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, NameRegistry_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameRegistryClient) Lookup(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error) {
	out := new(wrapperspb.Int32Value)
	if err := c.cc.Invoke(ctx, NameRegistry_Lookup_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameRegistryClient) Add(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, NameRegistry_Add_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameRegistryClient) ListProcesses(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, NameRegistry_ListProcesses_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// NameRegistryServer is the server API for the NameRegistry service.
// Implementations must embed UnimplementedNameRegistryServer.
type NameRegistryServer interface {
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	Lookup(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int32Value, error)
	Add(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	ListProcesses(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	mustEmbedUnimplementedNameRegistryServer()
}

// UnimplementedNameRegistryServer returns Unimplemented for every method.
type UnimplementedNameRegistryServer struct{}

func (UnimplementedNameRegistryServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedNameRegistryServer) Lookup(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int32Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Lookup not implemented")
}
func (UnimplementedNameRegistryServer) Add(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Add not implemented")
}
func (UnimplementedNameRegistryServer) ListProcesses(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProcesses not implemented")
}
func (UnimplementedNameRegistryServer) mustEmbedUnimplementedNameRegistryServer() {}

func RegisterNameRegistryServer(s grpc.ServiceRegistrar, srv NameRegistryServer) {
	s.RegisterService(&NameRegistry_ServiceDesc, srv)
}

func _NameRegistry_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NameRegistryServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: NameRegistry_Ping_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NameRegistryServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _NameRegistry_Lookup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NameRegistryServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: NameRegistry_Lookup_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NameRegistryServer).Lookup(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _NameRegistry_Add_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NameRegistryServer).Add(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: NameRegistry_Add_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NameRegistryServer).Add(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _NameRegistry_ListProcesses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NameRegistryServer).ListProcesses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: NameRegistry_ListProcesses_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NameRegistryServer).ListProcesses(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// NameRegistry_ServiceDesc is the grpc.ServiceDesc for the NameRegistry service.
var NameRegistry_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "devproc.registry.v1.NameRegistry",
	HandlerType: (*NameRegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: _NameRegistry_Ping_Handler},
		{MethodName: "Lookup", Handler: _NameRegistry_Lookup_Handler},
		{MethodName: "Add", Handler: _NameRegistry_Add_Handler},
		{MethodName: "ListProcesses", Handler: _NameRegistry_ListProcesses_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/registry/v1/registry.proto",
}
