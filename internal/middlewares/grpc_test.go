package middlewares

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryLoggingInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/stock_service.StockService/CreateTransaction"}

	t.Run("passes response through", func(t *testing.T) {
		var seenID string
		handler := func(ctx context.Context, req any) (any, error) {
			seenID, _ = RequestIDFromContext(ctx)
			return "ok", nil
		}

		resp, err := UnaryLoggingInterceptor(context.Background(), "req", info, handler)
		assert.NoError(t, err)
		assert.Equal(t, "ok", resp)
		assert.NotEmpty(t, seenID)
	})

	t.Run("passes status error through", func(t *testing.T) {
		handler := func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.Unavailable, "store down")
		}

		resp, err := UnaryLoggingInterceptor(context.Background(), "req", info, handler)
		assert.Nil(t, resp)
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})
}
