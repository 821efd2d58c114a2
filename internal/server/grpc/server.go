// Package grpc exposes the authentication service over gRPC.
package grpc

import (
	"context"
	"math/big"
	"net"

	"github.com/dmitrijs2005/zkpauth/internal/logging"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/server/services"
	"google.golang.org/grpc"
)

// authSvc is the protocol orchestrator as seen by the transport.
type authSvc interface {
	Register(ctx context.Context, identity string, y1, y2 *big.Int) error
	CreateChallenge(ctx context.Context, identity string, r1, r2 *big.Int) (*services.Challenge, error)
	VerifyAnswer(ctx context.Context, authID string, s *big.Int) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as authSvc) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(s.requestLoggingInterceptor),
	)

	pb.RegisterAuthServer(srv, s)

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
