package facades

import (
	"context"

	"github.com/sbilibin2017/gw-stock-service/internal/logger"
	"github.com/sbilibin2017/gw-stock-service/internal/models"
	pb "github.com/sbilibin2017/gw-stock-service/pkg/stock"
)

// TransactionsGRPCFacade calls a remote StockService and returns domain models.
type TransactionsGRPCFacade struct {
	client pb.StockServiceClient
}

// NewTransactionsGRPCFacade creates a new facade with a gRPC client.
func NewTransactionsGRPCFacade(client pb.StockServiceClient) *TransactionsGRPCFacade {
	return &TransactionsGRPCFacade{client: client}
}

// CreateTransaction records a purchase remotely and returns the generated id.
func (f *TransactionsGRPCFacade) CreateTransaction(ctx context.Context, symbol string, purchaseCost float64) (string, error) {
	resp, err := f.client.CreateTransaction(ctx, &pb.CreateTransactionRequest{
		Symbol:       symbol,
		PurchaseCost: purchaseCost,
	})
	if err != nil {
		logger.Log.Errorw("failed to create transaction via gRPC", "symbol", symbol, "error", err)
		return "", err
	}
	return resp.GetId(), nil
}

// ListTransactions fetches every recorded transaction.
func (f *TransactionsGRPCFacade) ListTransactions(ctx context.Context, name string) ([]models.Transaction, error) {
	resp, err := f.client.ListTransactions(ctx, &pb.ListTransactionsRequest{Name: name})
	if err != nil {
		logger.Log.Errorw("failed to list transactions via gRPC", "name", name, "error", err)
		return nil, err
	}

	txns := make([]models.Transaction, 0, len(resp.GetTransactions()))
	for _, t := range resp.GetTransactions() {
		txns = append(txns, models.Transaction{
			ID:           t.GetId(),
			Symbol:       t.GetSymbol(),
			PurchaseCost: t.GetPurchaseCost(),
			Count:        t.GetCount(),
			CreatedAt:    t.GetCreatedAt(),
		})
	}
	return txns, nil
}
