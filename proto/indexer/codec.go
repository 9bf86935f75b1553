package indexerpb

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/mem"
)

// Codec encodes the indexer.proto messages and hands every other
// proto.Message (Empty, health, reflection) to the registered proto codec.
// Its name keeps the application/grpc+proto content type.
type Codec struct{}

func (Codec) Name() string {
	return grpcproto.Name
}

func (Codec) Marshal(v any) (mem.BufferSlice, error) {
	m, ok := v.(Message)
	if !ok {
		return fallback().Marshal(v)
	}
	return mem.BufferSlice{mem.SliceBuffer(m.AppendWire(nil))}, nil
}

func (Codec) Unmarshal(data mem.BufferSlice, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fallback().Unmarshal(data, v)
	}
	return m.UnmarshalWire(data.Materialize())
}

// ServerCodec installs Codec on a gRPC server serving Indexer.
func ServerCodec() grpc.ServerOption {
	return grpc.ForceServerCodecV2(Codec{})
}

func fallback() encoding.CodecV2 {
	codec := encoding.GetCodecV2(grpcproto.Name)
	if codec == nil {
		panic(fmt.Sprintf("codec %q is not registered", grpcproto.Name))
	}
	return codec
}
