package grpc

import (
	"context"
	"errors"
	"keyword-index/indexer/core"
	indexerpb "keyword-index/proto/indexer"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type Server struct {
	indexerpb.UnimplementedIndexerServer
	service core.Indexer
}

func NewServer(service core.Indexer) *Server {
	return &Server{service: service}
}

func toStatus(err error) error {
	code := codes.Internal
	switch {
	case errors.Is(err, core.ErrBadArguments):
		code = codes.InvalidArgument
	case errors.Is(err, core.ErrTooLarge):
		code = codes.ResourceExhausted
	case errors.Is(err, core.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, core.ErrAlreadyExists):
		code = codes.AlreadyExists
	case errors.Is(err, core.ErrReferenceLimit):
		code = codes.FailedPrecondition
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	}
	return status.Error(code, err.Error())
}

func toProto(keywords []core.Keyword) *indexerpb.KeywordList {
	list := make([]indexerpb.Keyword, len(keywords))
	for i, kw := range keywords {
		list[i] = indexerpb.Keyword{
			Stem:      kw.Stem,
			Terms:     kw.Terms,
			Frequency: int64(kw.Frequency),
		}
	}
	return &indexerpb.KeywordList{Keywords: list}
}

func (s *Server) Ping(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func (s *Server) Extract(ctx context.Context, in *indexerpb.TextRequest) (*indexerpb.KeywordList, error) {
	keywords, err := s.service.Extract(ctx, in.Text)
	if err != nil {
		return nil, toStatus(err)
	}
	return toProto(keywords), nil
}

func (s *Server) Terms(ctx context.Context, in *indexerpb.TextRequest) (*indexerpb.TermList, error) {
	terms, err := s.service.Terms(ctx, in.Text)
	if err != nil {
		return nil, toStatus(err)
	}
	return &indexerpb.TermList{Terms: terms}, nil
}

func (s *Server) Index(ctx context.Context, in *indexerpb.Document) (*indexerpb.KeywordList, error) {
	keywords, err := s.service.Index(ctx, core.Document{ID: in.ID, Text: in.Text})
	if err != nil {
		return nil, toStatus(err)
	}
	return toProto(keywords), nil
}

func (s *Server) Document(ctx context.Context, in *indexerpb.IDRequest) (*indexerpb.TermList, error) {
	terms, err := s.service.Document(ctx, in.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &indexerpb.TermList{Terms: terms}, nil
}

func (s *Server) Stats(ctx context.Context, _ *emptypb.Empty) (*indexerpb.Stats, error) {
	stats, err := s.service.Stats(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &indexerpb.Stats{
		Documents:     stats.Documents,
		TermsTotal:    stats.TermsTotal,
		TermsUnique:   stats.TermsUnique,
		ReferenceSize: stats.ReferenceSize,
	}, nil
}

func (s *Server) Drop(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.service.Drop(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) Reload(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.service.ReloadReference(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}
