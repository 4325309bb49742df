package services

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stock-service/internal/logger"
	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrInvalidTransaction is returned when a purchase is rejected before reaching the store.
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// DefaultCount is the count assigned to every new transaction unless overridden.
const DefaultCount = 5000.0

// DefaultCreatedAt is the fixed creation timestamp used unless a clock is configured.
const DefaultCreatedAt int64 = 5000

// TransactionWriter persists a single transaction.
type TransactionWriter interface {
	PutTransaction(ctx context.Context, txn models.Transaction) error // Upserts a transaction by id
}

// TransactionReader reads the whole transaction collection.
type TransactionReader interface {
	ScanTransactions(ctx context.Context) ([]models.Transaction, error) // Returns every stored transaction
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionServiceOption configures a TransactionService.
type TransactionServiceOption func(*TransactionService)

// WithIDGenerator replaces uuid.NewString as the id source.
func WithIDGenerator(gen func() string) TransactionServiceOption {
	return func(s *TransactionService) {
		s.newID = gen
	}
}

// WithCount sets the count assigned to new transactions.
func WithCount(count float64) TransactionServiceOption {
	return func(s *TransactionService) {
		s.count = count
	}
}

// WithClock sets the source of created_at for new transactions.
func WithClock(clock func() int64) TransactionServiceOption {
	return func(s *TransactionService) {
		s.clock = clock
	}
}

// FixedClock always reports ts.
func FixedClock(ts int64) func() int64 {
	return func() int64 { return ts }
}

// UnixClock reports wall-clock Unix seconds.
func UnixClock() int64 {
	return time.Now().Unix()
}

// TransactionService records purchases and lists them back.
type TransactionService struct {
	writer      TransactionWriter
	reader      TransactionReader
	kafkaWriter KafkaWriter

	newID func() string
	count float64
	clock func() int64
}

// NewTransactionService creates a new TransactionService.
// A nil kafkaWriter disables event publishing.
func NewTransactionService(
	writer TransactionWriter,
	reader TransactionReader,
	kafkaWriter KafkaWriter,
	opts ...TransactionServiceOption,
) *TransactionService {
	s := &TransactionService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
		newID:       uuid.NewString,
		count:       DefaultCount,
		clock:       FixedClock(DefaultCreatedAt),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTransaction validates the purchase, stores it under a fresh id and returns that id.
// Nothing is returned to the caller unless the store accepted the write.
func (s *TransactionService) CreateTransaction(ctx context.Context, symbol string, purchaseCost float64) (string, error) {
	if err := validatePurchase(symbol, purchaseCost); err != nil {
		logger.Log.Warnw("rejected transaction", "symbol", symbol, "purchase_cost", purchaseCost, "error", err)
		return "", err
	}

	txn := models.Transaction{
		ID:           s.newID(),
		Symbol:       symbol,
		PurchaseCost: purchaseCost,
		Count:        s.count,
		CreatedAt:    s.clock(),
	}

	if err := s.writer.PutTransaction(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "transaction_id", txn.ID, "symbol", symbol, "error", err)
		return "", err
	}

	s.publishTransaction(ctx, txn)

	return txn.ID, nil
}

// ListTransactions returns every stored transaction in no particular order.
// name is accepted for wire compatibility and does not filter anything.
func (s *TransactionService) ListTransactions(ctx context.Context, name string) ([]models.Transaction, error) {
	logger.Log.Debugw("list transactions", "name", name)

	txns, err := s.reader.ScanTransactions(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return nil, err
	}
	return txns, nil
}

// publishTransaction publishes a transaction.created event to Kafka.
// The transaction is already stored, so failures are only logged.
func (s *TransactionService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.ID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(models.TransactionCreatedEventType)},
		},
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.ID, "symbol", txn.Symbol)
	}
}

func validatePurchase(symbol string, purchaseCost float64) error {
	if strings.TrimSpace(symbol) == "" {
		return fmt.Errorf("%w: symbol is empty", ErrInvalidTransaction)
	}
	if math.IsNaN(purchaseCost) || math.IsInf(purchaseCost, 0) {
		return fmt.Errorf("%w: purchase cost is not a finite number", ErrInvalidTransaction)
	}
	if purchaseCost < 0 {
		return fmt.Errorf("%w: purchase cost is negative", ErrInvalidTransaction)
	}
	return nil
}
