package rpc

import (
	"context"
	"errors"

	"github.com/zuevus/mud-orders/logger"
	"github.com/zuevus/mud-orders/services"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus converts a service error into a gRPC status error. Persistence
// failures become Internal with a generic message.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Code {
		case services.CodeInvalidArgument:
			return status.Error(codes.InvalidArgument, svcErr.Message)
		case services.CodeNotFound:
			return status.Error(codes.NotFound, svcErr.Message)
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	logger.Error("Unhandled service error", zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

func invalidArgumentf(format string, args ...interface{}) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}
