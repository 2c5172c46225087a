// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: finpilot/v1/copilot.proto

package finpilotv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	FinPilotService_BuildContext_FullMethodName   = "/finpilot.v1.FinPilotService/BuildContext"
	FinPilotService_ExecuteCommand_FullMethodName = "/finpilot.v1.FinPilotService/ExecuteCommand"
	FinPilotService_Rollback_FullMethodName       = "/finpilot.v1.FinPilotService/Rollback"
	FinPilotService_SearchRelevant_FullMethodName = "/finpilot.v1.FinPilotService/SearchRelevant"
)

// FinPilotServiceClient is the client API for FinPilotService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// FinPilotService is the backend surface of the finance copilot: context
// aggregation for the conversational layer and command execution with
// rollback.
type FinPilotServiceClient interface {
	// BuildContext returns the aggregate financial snapshot for a user,
	// served from cache when fresh.
	BuildContext(ctx context.Context, in *BuildContextRequest, opts ...grpc.CallOption) (*BuildContextResponse, error)
	// ExecuteCommand runs one parsed command against the financial store.
	ExecuteCommand(ctx context.Context, in *ExecuteCommandRequest, opts ...grpc.CallOption) (*ExecuteCommandResponse, error)
	// Rollback undoes a previously executed operation by id.
	Rollback(ctx context.Context, in *RollbackRequest, opts ...grpc.CallOption) (*RollbackResponse, error)
	// SearchRelevant performs a best-effort free-text lookup across the
	// user's financial records.
	SearchRelevant(ctx context.Context, in *SearchRelevantRequest, opts ...grpc.CallOption) (*SearchRelevantResponse, error)
}

type finPilotServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFinPilotServiceClient(cc grpc.ClientConnInterface) FinPilotServiceClient {
	return &finPilotServiceClient{cc}
}

func (c *finPilotServiceClient) BuildContext(ctx context.Context, in *BuildContextRequest, opts ...grpc.CallOption) (*BuildContextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BuildContextResponse)
	err := c.cc.Invoke(ctx, FinPilotService_BuildContext_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *finPilotServiceClient) ExecuteCommand(ctx context.Context, in *ExecuteCommandRequest, opts ...grpc.CallOption) (*ExecuteCommandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExecuteCommandResponse)
	err := c.cc.Invoke(ctx, FinPilotService_ExecuteCommand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *finPilotServiceClient) Rollback(ctx context.Context, in *RollbackRequest, opts ...grpc.CallOption) (*RollbackResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RollbackResponse)
	err := c.cc.Invoke(ctx, FinPilotService_Rollback_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *finPilotServiceClient) SearchRelevant(ctx context.Context, in *SearchRelevantRequest, opts ...grpc.CallOption) (*SearchRelevantResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchRelevantResponse)
	err := c.cc.Invoke(ctx, FinPilotService_SearchRelevant_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FinPilotServiceServer is the server API for FinPilotService service.
// All implementations must embed UnimplementedFinPilotServiceServer
// for forward compatibility.
//
// FinPilotService is the backend surface of the finance copilot: context
// aggregation for the conversational layer and command execution with
// rollback.
type FinPilotServiceServer interface {
	// BuildContext returns the aggregate financial snapshot for a user,
	// served from cache when fresh.
	BuildContext(context.Context, *BuildContextRequest) (*BuildContextResponse, error)
	// ExecuteCommand runs one parsed command against the financial store.
	ExecuteCommand(context.Context, *ExecuteCommandRequest) (*ExecuteCommandResponse, error)
	// Rollback undoes a previously executed operation by id.
	Rollback(context.Context, *RollbackRequest) (*RollbackResponse, error)
	// SearchRelevant performs a best-effort free-text lookup across the
	// user's financial records.
	SearchRelevant(context.Context, *SearchRelevantRequest) (*SearchRelevantResponse, error)
	mustEmbedUnimplementedFinPilotServiceServer()
}

// UnimplementedFinPilotServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFinPilotServiceServer struct{}

func (UnimplementedFinPilotServiceServer) BuildContext(context.Context, *BuildContextRequest) (*BuildContextResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BuildContext not implemented")
}
func (UnimplementedFinPilotServiceServer) ExecuteCommand(context.Context, *ExecuteCommandRequest) (*ExecuteCommandResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExecuteCommand not implemented")
}
func (UnimplementedFinPilotServiceServer) Rollback(context.Context, *RollbackRequest) (*RollbackResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Rollback not implemented")
}
func (UnimplementedFinPilotServiceServer) SearchRelevant(context.Context, *SearchRelevantRequest) (*SearchRelevantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchRelevant not implemented")
}
func (UnimplementedFinPilotServiceServer) mustEmbedUnimplementedFinPilotServiceServer() {}
func (UnimplementedFinPilotServiceServer) testEmbeddedByValue()                         {}

// UnsafeFinPilotServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FinPilotServiceServer will
// result in compilation errors.
type UnsafeFinPilotServiceServer interface {
	mustEmbedUnimplementedFinPilotServiceServer()
}

func RegisterFinPilotServiceServer(s grpc.ServiceRegistrar, srv FinPilotServiceServer) {
	// If the following call panics, it indicates UnimplementedFinPilotServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FinPilotService_ServiceDesc, srv)
}

func _FinPilotService_BuildContext_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BuildContextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinPilotServiceServer).BuildContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinPilotService_BuildContext_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinPilotServiceServer).BuildContext(ctx, req.(*BuildContextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FinPilotService_ExecuteCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteCommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinPilotServiceServer).ExecuteCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinPilotService_ExecuteCommand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinPilotServiceServer).ExecuteCommand(ctx, req.(*ExecuteCommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FinPilotService_Rollback_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RollbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinPilotServiceServer).Rollback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinPilotService_Rollback_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinPilotServiceServer).Rollback(ctx, req.(*RollbackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FinPilotService_SearchRelevant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchRelevantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinPilotServiceServer).SearchRelevant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinPilotService_SearchRelevant_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinPilotServiceServer).SearchRelevant(ctx, req.(*SearchRelevantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FinPilotService_ServiceDesc is the grpc.ServiceDesc for FinPilotService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FinPilotService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "finpilot.v1.FinPilotService",
	HandlerType: (*FinPilotServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BuildContext",
			Handler:    _FinPilotService_BuildContext_Handler,
		},
		{
			MethodName: "ExecuteCommand",
			Handler:    _FinPilotService_ExecuteCommand_Handler,
		},
		{
			MethodName: "Rollback",
			Handler:    _FinPilotService_Rollback_Handler,
		},
		{
			MethodName: "SearchRelevant",
			Handler:    _FinPilotService_SearchRelevant_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "finpilot/v1/copilot.proto",
}
