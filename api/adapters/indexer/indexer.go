package indexer

import (
	"context"
	"fmt"
	"keyword-index/api/core"
	indexerpb "keyword-index/proto/indexer"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type Client struct {
	log    *slog.Logger
	conn   *grpc.ClientConn
	client indexerpb.IndexerClient
}

func NewClient(address string, log *slog.Logger, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  1 * time.Second,
				Multiplier: 1.6,
				MaxDelay:   10 * time.Second,
			},
			MinConnectTimeout: 10 * time.Second,
		}),
	}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		log:    log,
		conn:   conn,
		client: indexerpb.NewIndexerClient(conn),
	}, nil
}

func (c *Client) Close() {
	if err := c.conn.Close(); err != nil {
		c.log.Warn("failed to close gRPC connection", "error", err)
	}
}

func fromStatus(err error) error {
	switch status.Code(err) {
	case codes.Unavailable:
		return core.ErrServiceUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%s: %w", status.Convert(err).Message(), core.ErrBadArguments)
	case codes.ResourceExhausted:
		return core.ErrTooLarge
	case codes.NotFound:
		return core.ErrNotFound
	case codes.AlreadyExists:
		return core.ErrAlreadyExists
	default:
		return err
	}
}

func fromProto(keywords []indexerpb.Keyword) []core.Keyword {
	result := make([]core.Keyword, len(keywords))
	for i, kw := range keywords {
		result[i] = core.Keyword{
			Stem:      kw.Stem,
			Terms:     kw.Terms,
			Frequency: kw.Frequency,
		}
	}
	return result
}

func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.client.Ping(ctx, &emptypb.Empty{}); err != nil {
		return fromStatus(err)
	}
	return nil
}

func (c *Client) Extract(ctx context.Context, text string) ([]core.Keyword, error) {
	reply, err := c.client.Extract(ctx, &indexerpb.TextRequest{Text: text})
	if err != nil {
		return nil, fromStatus(err)
	}
	return fromProto(reply.Keywords), nil
}

func (c *Client) Terms(ctx context.Context, text string) ([]string, error) {
	reply, err := c.client.Terms(ctx, &indexerpb.TextRequest{Text: text})
	if err != nil {
		return nil, fromStatus(err)
	}
	return reply.Terms, nil
}

func (c *Client) Index(ctx context.Context, doc core.Document) ([]core.Keyword, error) {
	reply, err := c.client.Index(ctx, &indexerpb.Document{ID: doc.ID, Text: doc.Text})
	if err != nil {
		return nil, fromStatus(err)
	}
	return fromProto(reply.Keywords), nil
}

func (c *Client) Document(ctx context.Context, id string) ([]string, error) {
	reply, err := c.client.Document(ctx, &indexerpb.IDRequest{ID: id})
	if err != nil {
		return nil, fromStatus(err)
	}
	return reply.Terms, nil
}

func (c *Client) Stats(ctx context.Context) (core.IndexStats, error) {
	reply, err := c.client.Stats(ctx, &emptypb.Empty{})
	if err != nil {
		return core.IndexStats{}, fromStatus(err)
	}
	return core.IndexStats{
		Documents:     reply.Documents,
		TermsTotal:    reply.TermsTotal,
		TermsUnique:   reply.TermsUnique,
		ReferenceSize: reply.ReferenceSize,
	}, nil
}

func (c *Client) Drop(ctx context.Context) error {
	if _, err := c.client.Drop(ctx, &emptypb.Empty{}); err != nil {
		return fromStatus(err)
	}
	return nil
}

func (c *Client) Reload(ctx context.Context) error {
	if _, err := c.client.Reload(ctx, &emptypb.Empty{}); err != nil {
		return fromStatus(err)
	}
	return nil
}
