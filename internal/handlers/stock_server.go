package handlers

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-stock-service/internal/logger"
	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/sbilibin2017/gw-stock-service/internal/records"
	"github.com/sbilibin2017/gw-stock-service/internal/repositories"
	"github.com/sbilibin2017/gw-stock-service/internal/services"
	pb "github.com/sbilibin2017/gw-stock-service/pkg/stock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// TransactionService is what StockServer needs from the service layer.
type TransactionService interface {
	TransactionCreator
	TransactionLister
}

// StockServer implements stock_service.StockService on top of the transaction service.
type StockServer struct {
	pb.UnimplementedStockServiceServer
	svc TransactionService
}

// NewStockServer creates a new StockServer.
func NewStockServer(svc TransactionService) *StockServer {
	return &StockServer{svc: svc}
}

// RegisterStockServer registers the stock service and reflection.
func RegisterStockServer(s *grpc.Server, impl pb.StockServiceServer) {
	pb.RegisterStockServiceServer(s, impl)
	reflection.Register(s)
}

// CreateTransaction records a purchase and returns its id.
func (s *StockServer) CreateTransaction(ctx context.Context, req *pb.CreateTransactionRequest) (*pb.CreateTransactionResponse, error) {
	id, err := s.svc.CreateTransaction(ctx, req.GetSymbol(), req.GetPurchaseCost())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CreateTransactionResponse{Id: id}, nil
}

// ListTransactions returns every stored transaction.
func (s *StockServer) ListTransactions(ctx context.Context, req *pb.ListTransactionsRequest) (*pb.ListTransactionsResponse, error) {
	txns, err := s.svc.ListTransactions(ctx, req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListTransactionsResponse{
		Transactions: make([]*pb.Transaction, 0, len(txns)),
	}
	for _, txn := range txns {
		resp.Transactions = append(resp.Transactions, toPB(txn))
	}
	return resp, nil
}

func toPB(txn models.Transaction) *pb.Transaction {
	return &pb.Transaction{
		Id:           txn.ID,
		Symbol:       txn.Symbol,
		PurchaseCost: txn.PurchaseCost,
		Count:        txn.Count,
		CreatedAt:    txn.CreatedAt,
	}
}

// toStatus maps service and store errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidTransaction):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, records.ErrMalformedRecord):
		logger.Log.Errorw("malformed record in store", "error", err)
		return status.Error(codes.DataLoss, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, repositories.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}
