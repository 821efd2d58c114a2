package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AuthClient
}

func NewAuthClientService(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// requestIDInterceptor attaches a fresh x-request-id to every outgoing call
// unless the caller already set one.
func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Register(ctx context.Context, user string, keys zkp.PublicKeys) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RegisterRequest{User: user, Y1: zkp.Encode(keys.Y1), Y2: zkp.Encode(keys.Y2)}

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateChallenge(ctx context.Context, user string, cm zkp.Commitment) (string, *big.Int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.AuthenticationChallengeRequest{User: user, R1: zkp.Encode(cm.R1), R2: zkp.Encode(cm.R2)}

	resp, err := s.client.CreateAuthenticationChallenge(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}

	c, err := zkp.Decode(resp.GetC())
	if err != nil {
		return "", nil, fmt.Errorf("%w: challenge: %v", ErrBadResponse, err)
	}
	if resp.GetAuthId() == "" {
		return "", nil, fmt.Errorf("%w: empty auth_id", ErrBadResponse)
	}

	return resp.GetAuthId(), c, nil
}

func (s *GRPCClient) VerifyAnswer(ctx context.Context, authID string, sv *big.Int) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.AuthenticationAnswerRequest{AuthId: authID, S: zkp.Encode(sv)}

	resp, err := s.client.VerifyAuthentication(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetSessionId(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return ErrAlreadyRegistered
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
