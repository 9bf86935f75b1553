package indexer_test

import (
	"context"
	"keyword-index/api/adapters/indexer"
	"keyword-index/api/core"
	indexerpb "keyword-index/proto/indexer"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

type fakeIndexer struct {
	indexerpb.UnimplementedIndexerServer
	err error
}

func (f *fakeIndexer) Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &emptypb.Empty{}, nil
}

func (f *fakeIndexer) Extract(_ context.Context, in *indexerpb.TextRequest) (*indexerpb.KeywordList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &indexerpb.KeywordList{Keywords: []indexerpb.Keyword{
		{Stem: "meet", Terms: []string{"meet", "meets"}, Frequency: 2},
	}}, nil
}

func (f *fakeIndexer) Terms(_ context.Context, in *indexerpb.TextRequest) (*indexerpb.TermList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &indexerpb.TermList{Terms: []string{"go", "going"}}, nil
}

func (f *fakeIndexer) Index(_ context.Context, in *indexerpb.Document) (*indexerpb.KeywordList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &indexerpb.KeywordList{Keywords: []indexerpb.Keyword{{Stem: in.Text, Terms: []string{in.ID}, Frequency: 1}}}, nil
}

func (f *fakeIndexer) Document(_ context.Context, in *indexerpb.IDRequest) (*indexerpb.TermList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &indexerpb.TermList{Terms: []string{in.ID}}, nil
}

func (f *fakeIndexer) Stats(context.Context, *emptypb.Empty) (*indexerpb.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &indexerpb.Stats{Documents: 1, TermsTotal: 2, TermsUnique: 2, ReferenceSize: 3}, nil
}

func (f *fakeIndexer) Drop(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, f.err
}

func (f *fakeIndexer) Reload(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, f.err
}

func newClient(t *testing.T, srv *fakeIndexer) *indexer.Client {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	s := grpc.NewServer(indexerpb.ServerCodec())
	indexerpb.RegisterIndexerServer(s, srv)
	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	client, err := indexer.NewClient("passthrough:///bufnet", slog.Default(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestClient(t *testing.T) {
	client := newClient(t, &fakeIndexer{})
	ctx := context.Background()

	require.NoError(t, client.Ping(ctx))

	keywords, err := client.Extract(ctx, "meet meets")
	require.NoError(t, err)
	require.Equal(t, []core.Keyword{{Stem: "meet", Terms: []string{"meet", "meets"}, Frequency: 2}}, keywords)

	terms, err := client.Terms(ctx, "go going")
	require.NoError(t, err)
	require.Equal(t, []string{"go", "going"}, terms)

	keywords, err = client.Index(ctx, core.Document{ID: "a", Text: "dog"})
	require.NoError(t, err)
	require.Equal(t, []core.Keyword{{Stem: "dog", Terms: []string{"a"}, Frequency: 1}}, keywords)

	terms, err = client.Document(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, terms)

	stats, err := client.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, core.IndexStats{Documents: 1, TermsTotal: 2, TermsUnique: 2, ReferenceSize: 3}, stats)

	require.NoError(t, client.Drop(ctx))
	require.NoError(t, client.Reload(ctx))
}

func TestClientErrors(t *testing.T) {
	testCases := []struct {
		desc     string
		code     codes.Code
		expected error
	}{
		{desc: "unavailable", code: codes.Unavailable, expected: core.ErrServiceUnavailable},
		{desc: "invalid argument", code: codes.InvalidArgument, expected: core.ErrBadArguments},
		{desc: "resource exhausted", code: codes.ResourceExhausted, expected: core.ErrTooLarge},
		{desc: "not found", code: codes.NotFound, expected: core.ErrNotFound},
		{desc: "already exists", code: codes.AlreadyExists, expected: core.ErrAlreadyExists},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			client := newClient(t, &fakeIndexer{err: status.Error(tc.code, tc.desc)})
			ctx := context.Background()

			require.ErrorIs(t, client.Ping(ctx), tc.expected)
			_, err := client.Extract(ctx, "text")
			require.ErrorIs(t, err, tc.expected)
			_, err = client.Terms(ctx, "text")
			require.ErrorIs(t, err, tc.expected)
			_, err = client.Index(ctx, core.Document{ID: "a", Text: "text"})
			require.ErrorIs(t, err, tc.expected)
			_, err = client.Document(ctx, "a")
			require.ErrorIs(t, err, tc.expected)
			_, err = client.Stats(ctx)
			require.ErrorIs(t, err, tc.expected)
			require.ErrorIs(t, client.Drop(ctx), tc.expected)
			require.ErrorIs(t, client.Reload(ctx), tc.expected)
		})
	}
}

func TestClientInternalError(t *testing.T) {
	client := newClient(t, &fakeIndexer{err: status.Error(codes.Internal, "boom")})

	err := client.Ping(context.Background())
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}
