package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-stock-service/internal/logger"
	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/sbilibin2017/gw-stock-service/internal/records"
)

// TransactionRedisRepository stores transactions in a single Redis hash.
// Hash field is the transaction id, value is the record JSON.
type TransactionRedisRepository struct {
	client redis.Cmdable
	key    string
}

// NewTransactionRedisRepository creates a repository over the hash named key.
func NewTransactionRedisRepository(client redis.Cmdable, key string) *TransactionRedisRepository {
	return &TransactionRedisRepository{
		client: client,
		key:    key,
	}
}

// PutTransaction sets the hash field txn.ID, replacing any previous record.
func (r *TransactionRedisRepository) PutTransaction(ctx context.Context, txn models.Transaction) error {
	data, err := encodeJSON(txn)
	if err != nil {
		return err
	}

	err = r.client.HSet(ctx, r.key, txn.ID, data).Err()

	logger.Log.Infow("redis hset",
		"key", r.key,
		"field", txn.ID,
		"error", err,
	)

	if err != nil {
		return storeError("hset", err)
	}
	return nil
}

// ScanTransactions loads the whole hash in one HGETALL and decodes every field.
func (r *TransactionRedisRepository) ScanTransactions(ctx context.Context) ([]models.Transaction, error) {
	vals, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		logger.Log.Infow("redis hgetall",
			"key", r.key,
			"error", err,
		)
		return nil, storeError("hgetall", err)
	}

	txns := make([]models.Transaction, 0, len(vals))
	for field, raw := range vals {
		txn, err := records.DecodeJSON(field, []byte(raw))
		if err != nil {
			logger.Log.Infow("redis hgetall",
				"key", r.key,
				"field", field,
				"error", err,
			)
			return nil, err
		}
		txns = append(txns, txn)
	}

	logger.Log.Infow("redis hgetall",
		"key", r.key,
		"result", len(txns),
		"error", nil,
	)

	return txns, nil
}
