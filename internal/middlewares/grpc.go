package middlewares

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-stock-service/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryLoggingInterceptor logs every unary call with its method, status code and duration.
func UnaryLoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	ctx, reqID := withRequestID(ctx)
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	fields := []any{
		"request_id", reqID,
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
	}
	if err != nil {
		logger.Log.Errorw("grpc call", append(fields, "error", err)...)
	} else {
		logger.Log.Infow("grpc call", fields...)
	}

	return resp, err
}
