package handlers

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-stock-service/internal/logger"
	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/sbilibin2017/gw-stock-service/internal/repositories"
	"github.com/sbilibin2017/gw-stock-service/internal/services"
)

// TransactionCreator defines the create operation the service must implement.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, symbol string, purchaseCost float64) (string, error)
}

// TransactionLister defines the list operation the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, name string) ([]models.Transaction, error)
}

// CreateTransactionRequest represents the JSON body for recording a purchase
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Ticker symbol
	// required: true
	// default: AAPL
	Symbol string `json:"symbol"`

	// Purchase cost
	// required: true
	// default: 150.25
	PurchaseCost float64 `json:"purchase_cost"`
}

// CreateTransactionResponse represents a successful create response
// swagger:model CreateTransactionResponse
type CreateTransactionResponse struct {
	// Generated transaction id
	ID string `json:"id"`
}

// ListTransactionsResponse represents every recorded transaction
// swagger:model ListTransactionsResponse
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// TransactionErrorResponse represents an error response
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	// default: Invalid symbol or purchase cost
	Error string `json:"error"`
}

// NewCreateTransactionHandler returns an HTTP handler recording a stock purchase.
// @Summary Record a purchase
// @Description Stores a purchase under a freshly generated id. Count and creation time are assigned by the server.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} handlers.CreateTransactionResponse "Transaction recorded"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid symbol or purchase cost"
// @Failure 503 {object} handlers.TransactionErrorResponse "Store unavailable"
// @Failure 500 {object} handlers.TransactionErrorResponse "Internal server error"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create transaction request", "error", err)
			writeTransactionError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		id, err := svc.CreateTransaction(ctx, req.Symbol, req.PurchaseCost)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTransaction):
				writeTransactionError(w, http.StatusBadRequest, "Invalid symbol or purchase cost")
			case errors.Is(err, repositories.ErrStoreUnavailable):
				writeTransactionError(w, http.StatusServiceUnavailable, "Store unavailable")
			default:
				writeTransactionError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateTransactionResponse{ID: id})
	}
}

// NewListTransactionsHandler returns an HTTP handler listing every recorded purchase.
// @Summary List purchases
// @Description Returns all recorded transactions in no particular order. The name parameter is accepted and ignored.
// @Tags transactions
// @Produce json
// @Param name query string false "Caller name"
// @Success 200 {object} handlers.ListTransactionsResponse "All transactions"
// @Failure 503 {object} handlers.TransactionErrorResponse "Store unavailable"
// @Failure 500 {object} handlers.TransactionErrorResponse "Internal server error"
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		txns, err := svc.ListTransactions(ctx, r.URL.Query().Get("name"))
		if err != nil {
			if errors.Is(err, repositories.ErrStoreUnavailable) {
				writeTransactionError(w, http.StatusServiceUnavailable, "Store unavailable")
				return
			}
			writeTransactionError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if txns == nil {
			txns = []models.Transaction{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListTransactionsResponse{Transactions: txns})
	}
}

func writeTransactionError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(TransactionErrorResponse{Error: msg})
}
