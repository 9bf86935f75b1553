package indexerpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Service and method names match indexer.proto. Calls are encoded with Codec;
// servers need ServerCodec.
const (
	Indexer_Ping_FullMethodName     = "/indexer.Indexer/Ping"
	Indexer_Extract_FullMethodName  = "/indexer.Indexer/Extract"
	Indexer_Terms_FullMethodName    = "/indexer.Indexer/Terms"
	Indexer_Index_FullMethodName    = "/indexer.Indexer/Index"
	Indexer_Document_FullMethodName = "/indexer.Indexer/Document"
	Indexer_Stats_FullMethodName    = "/indexer.Indexer/Stats"
	Indexer_Drop_FullMethodName     = "/indexer.Indexer/Drop"
	Indexer_Reload_FullMethodName   = "/indexer.Indexer/Reload"
)

// IndexerClient is the client API for the Indexer service.
type IndexerClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Extract(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*KeywordList, error)
	Terms(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*TermList, error)
	Index(ctx context.Context, in *Document, opts ...grpc.CallOption) (*KeywordList, error)
	Document(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*TermList, error)
	Stats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*Stats, error)
	Drop(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Reload(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type indexerClient struct {
	cc grpc.ClientConnInterface
}

func NewIndexerClient(cc grpc.ClientConnInterface) IndexerClient {
	return &indexerClient{cc}
}

func (c *indexerClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod(), grpc.ForceCodecV2(Codec{})}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Indexer_Ping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexerClient) Extract(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*KeywordList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod(), grpc.ForceCodecV2(Codec{})}, opts...)
	out := new(KeywordList)
	err := c.cc.Invoke(ctx, Indexer_Extract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexerClient) Terms(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*TermList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod(), grpc.ForceCodecV2(Codec{})}, opts...)
	out := new(TermList)
	err := c.cc.Invoke(ctx, Indexer_Terms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexerClient) Index(ctx context.Context, in *Document, opts ...grpc.CallOption) (*KeywordList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod(), grpc.ForceCodecV2(Codec{})}, opts...)
	out := new(KeywordList)
	err := c.cc.Invoke(ctx, Indexer_Index_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexerClient) Document(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*TermList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod(), grpc.ForceCodecV2(Codec{})}, opts...)
	out := new(TermList)
	err := c.cc.Invoke(ctx, Indexer_Document_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexerClient) Stats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*Stats, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod(), grpc.ForceCodecV2(Codec{})}, opts...)
	out := new(Stats)
	err := c.cc.Invoke(ctx, Indexer_Stats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexerClient) Drop(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod(), grpc.ForceCodecV2(Codec{})}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Indexer_Drop_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexerClient) Reload(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod(), grpc.ForceCodecV2(Codec{})}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Indexer_Reload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IndexerServer is the server API for the Indexer service.
// Implementations must embed UnimplementedIndexerServer.
type IndexerServer interface {
	Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Extract(context.Context, *TextRequest) (*KeywordList, error)
	Terms(context.Context, *TextRequest) (*TermList, error)
	Index(context.Context, *Document) (*KeywordList, error)
	Document(context.Context, *IDRequest) (*TermList, error)
	Stats(context.Context, *emptypb.Empty) (*Stats, error)
	Drop(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Reload(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	mustEmbedUnimplementedIndexerServer()
}

// UnimplementedIndexerServer must be embedded by value.
type UnimplementedIndexerServer struct{}

func (UnimplementedIndexerServer) Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedIndexerServer) Extract(context.Context, *TextRequest) (*KeywordList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Extract not implemented")
}
func (UnimplementedIndexerServer) Terms(context.Context, *TextRequest) (*TermList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Terms not implemented")
}
func (UnimplementedIndexerServer) Index(context.Context, *Document) (*KeywordList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Index not implemented")
}
func (UnimplementedIndexerServer) Document(context.Context, *IDRequest) (*TermList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Document not implemented")
}
func (UnimplementedIndexerServer) Stats(context.Context, *emptypb.Empty) (*Stats, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Stats not implemented")
}
func (UnimplementedIndexerServer) Drop(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Drop not implemented")
}
func (UnimplementedIndexerServer) Reload(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Reload not implemented")
}
func (UnimplementedIndexerServer) mustEmbedUnimplementedIndexerServer() {}
func (UnimplementedIndexerServer) testEmbeddedByValue()                 {}

func RegisterIndexerServer(s grpc.ServiceRegistrar, srv IndexerServer) {
	// panics at registration instead of at first call when embedded by pointer and nil
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Indexer_ServiceDesc, srv)
}

func _Indexer_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexerServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Indexer_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IndexerServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Indexer_Extract_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexerServer).Extract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Indexer_Extract_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IndexerServer).Extract(ctx, req.(*TextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Indexer_Terms_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexerServer).Terms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Indexer_Terms_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IndexerServer).Terms(ctx, req.(*TextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Indexer_Index_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Document)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexerServer).Index(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Indexer_Index_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IndexerServer).Index(ctx, req.(*Document))
	}
	return interceptor(ctx, in, info, handler)
}

func _Indexer_Document_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexerServer).Document(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Indexer_Document_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IndexerServer).Document(ctx, req.(*IDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Indexer_Stats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexerServer).Stats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Indexer_Stats_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IndexerServer).Stats(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Indexer_Drop_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexerServer).Drop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Indexer_Drop_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IndexerServer).Drop(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Indexer_Reload_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexerServer).Reload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Indexer_Reload_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IndexerServer).Reload(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var Indexer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "indexer.Indexer",
	HandlerType: (*IndexerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _Indexer_Ping_Handler,
		},
		{
			MethodName: "Extract",
			Handler:    _Indexer_Extract_Handler,
		},
		{
			MethodName: "Terms",
			Handler:    _Indexer_Terms_Handler,
		},
		{
			MethodName: "Index",
			Handler:    _Indexer_Index_Handler,
		},
		{
			MethodName: "Document",
			Handler:    _Indexer_Document_Handler,
		},
		{
			MethodName: "Stats",
			Handler:    _Indexer_Stats_Handler,
		},
		{
			MethodName: "Drop",
			Handler:    _Indexer_Drop_Handler,
		},
		{
			MethodName: "Reload",
			Handler:    _Indexer_Reload_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "indexer.proto",
}
