package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// requestLoggingInterceptor tags the request with an id (taken from the
// incoming metadata or generated) and logs its outcome and latency.
func (s *GRPCServer) requestLoggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := incomingRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.log(ctx).Info(ctx, "Request handled",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.RequestIDHeaderName)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// log returns the server logger annotated with the request id, if any.
func (s *GRPCServer) log(ctx context.Context) logging.Logger {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return s.logger.With("request_id", id)
	}
	return s.logger
}
