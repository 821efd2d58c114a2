package client

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type fakePB struct {
	lastRegisterReq  *pb.RegisterRequest
	lastChallengeReq *pb.AuthenticationChallengeRequest
	lastAnswerReq    *pb.AuthenticationAnswerRequest
	lastDeadline     bool

	registerErr   error
	challengeResp *pb.AuthenticationChallengeResponse
	challengeErr  error
	answerResp    *pb.AuthenticationAnswerResponse
	answerErr     error
}

func (f *fakePB) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.lastRegisterReq = in
	_, f.lastDeadline = ctx.Deadline()
	return &pb.RegisterResponse{}, f.registerErr
}

func (f *fakePB) CreateAuthenticationChallenge(ctx context.Context, in *pb.AuthenticationChallengeRequest, opts ...grpc.CallOption) (*pb.AuthenticationChallengeResponse, error) {
	f.lastChallengeReq = in
	return f.challengeResp, f.challengeErr
}

func (f *fakePB) VerifyAuthentication(ctx context.Context, in *pb.AuthenticationAnswerRequest, opts ...grpc.CallOption) (*pb.AuthenticationAnswerResponse, error) {
	f.lastAnswerReq = in
	return f.answerResp, f.answerErr
}

func newTestClient(f *fakePB) *GRPCClient {
	return &GRPCClient{client: f, timeout: time.Second}
}

func TestRegister_EncodesKeys(t *testing.T) {
	f := &fakePB{}
	c := newTestClient(f)

	err := c.Register(context.Background(), "alice", zkp.PublicKeys{Y1: big.NewInt(0x0102), Y2: big.NewInt(7)})
	require.NoError(t, err)

	assert.Equal(t, "alice", f.lastRegisterReq.GetUser())
	assert.Equal(t, []byte{0x01, 0x02}, f.lastRegisterReq.GetY1())
	assert.Equal(t, []byte{0x07}, f.lastRegisterReq.GetY2())
	assert.True(t, f.lastDeadline, "per-call timeout must be applied")
}

func TestCreateChallenge(t *testing.T) {
	f := &fakePB{challengeResp: &pb.AuthenticationChallengeResponse{AuthId: "a1", C: []byte{0x05}}}
	c := newTestClient(f)

	authID, ch, err := c.CreateChallenge(context.Background(), "alice", zkp.Commitment{R1: big.NewInt(4), R2: big.NewInt(9)})
	require.NoError(t, err)

	assert.Equal(t, "a1", authID)
	assert.Equal(t, int64(5), ch.Int64())
	assert.Equal(t, []byte{0x04}, f.lastChallengeReq.GetR1())
	assert.Equal(t, []byte{0x09}, f.lastChallengeReq.GetR2())
}

func TestCreateChallenge_BadResponse(t *testing.T) {
	c := newTestClient(&fakePB{challengeResp: &pb.AuthenticationChallengeResponse{AuthId: "a1", C: []byte{0x00, 0x05}}})
	_, _, err := c.CreateChallenge(context.Background(), "alice", zkp.Commitment{R1: big.NewInt(4), R2: big.NewInt(9)})
	assert.ErrorIs(t, err, ErrBadResponse)

	c = newTestClient(&fakePB{challengeResp: &pb.AuthenticationChallengeResponse{C: []byte{0x05}}})
	_, _, err = c.CreateChallenge(context.Background(), "alice", zkp.Commitment{R1: big.NewInt(4), R2: big.NewInt(9)})
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestVerifyAnswer(t *testing.T) {
	f := &fakePB{answerResp: &pb.AuthenticationAnswerResponse{SessionId: "tok"}}
	c := newTestClient(f)

	tok, err := c.VerifyAnswer(context.Background(), "a1", big.NewInt(0))
	require.NoError(t, err)

	assert.Equal(t, "tok", tok)
	assert.Equal(t, "a1", f.lastAnswerReq.GetAuthId())
	assert.Empty(t, f.lastAnswerReq.GetS())
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"permission denied", status.Error(codes.PermissionDenied, "x"), ErrUnauthorized},
		{"unauthenticated", status.Error(codes.Unauthenticated, "x"), ErrUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "x"), ErrUnavailable},
		{"exists", status.Error(codes.AlreadyExists, "x"), ErrAlreadyRegistered},
		{"not found", status.Error(codes.NotFound, "x"), ErrNotFound},
		{"invalid", status.Error(codes.InvalidArgument, "x"), ErrInvalidArgument},
	}

	c := newTestClient(&fakePB{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(tt.in), tt.want)
		})
	}

	assert.NoError(t, c.mapError(nil))

	internal := status.Error(codes.Internal, "boom")
	err := c.mapError(internal)
	assert.ErrorIs(t, err, internal)
}

func TestRegister_MapsError(t *testing.T) {
	c := newTestClient(&fakePB{registerErr: status.Error(codes.AlreadyExists, "dup")})
	err := c.Register(context.Background(), "alice", zkp.PublicKeys{Y1: big.NewInt(4), Y2: big.NewInt(9)})
	assert.True(t, errors.Is(err, ErrAlreadyRegistered))
}

func TestRequestIDInterceptor(t *testing.T) {
	var got []string
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(common.RequestIDHeaderName)
		return nil
	}

	require.NoError(t, requestIDInterceptor(context.Background(), "/m", nil, nil, nil, invoker))
	require.Len(t, got, 1)
	assert.Len(t, got[0], 36)

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.RequestIDHeaderName, "mine")
	require.NoError(t, requestIDInterceptor(ctx, "/m", nil, nil, nil, invoker))
	assert.Equal(t, []string{"mine"}, got)
}

func TestNewAuthClientService(t *testing.T) {
	c, err := NewAuthClientService("127.0.0.1:1", time.Second)
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}
