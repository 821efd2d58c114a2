package grpc

import (
	"context"
	"errors"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	log := s.log(ctx).With("user", req.GetUser())
	log.Info(ctx, "Registration request")

	y1, y2, err := decodePair(req.GetY1(), req.GetY2())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed public key")
	}

	if err := s.auth.Register(ctx, req.GetUser(), y1, y2); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	log.Info(ctx, "Registered")
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) CreateAuthenticationChallenge(ctx context.Context, req *pb.AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {
	log := s.log(ctx).With("user", req.GetUser())
	log.Info(ctx, "Challenge request")

	r1, r2, err := decodePair(req.GetR1(), req.GetR2())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed commitment")
	}

	ch, err := s.auth.CreateChallenge(ctx, req.GetUser(), r1, r2)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	log.Info(ctx, "Challenge issued", "auth_id", ch.AuthID)
	return &pb.AuthenticationChallengeResponse{AuthId: ch.AuthID, C: zkp.Encode(ch.C)}, nil
}

func (s *GRPCServer) VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {
	log := s.log(ctx).With("auth_id", req.GetAuthId())
	log.Info(ctx, "Verification request")

	sv, err := zkp.Decode(req.GetS())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed response")
	}

	token, err := s.auth.VerifyAnswer(ctx, req.GetAuthId(), sv)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	log.Info(ctx, "Authenticated")
	return &pb.AuthenticationAnswerResponse{SessionId: token}, nil
}

func decodePair(a, b []byte) (*big.Int, *big.Int, error) {
	x, err := zkp.Decode(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := zkp.Decode(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// toStatus maps service errors to gRPC statuses. Internal details are logged
// but never returned to the caller.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "user already registered")
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrPermissionDenied):
		s.log(ctx).Warn(ctx, "Verification failed")
		return status.Error(codes.PermissionDenied, "verification failed")
	default:
		s.log(ctx).Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
