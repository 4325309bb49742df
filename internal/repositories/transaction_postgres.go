package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-stock-service/internal/logger"
	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/sbilibin2017/gw-stock-service/internal/records"
)

// TransactionPostgresRepository stores transactions as JSONB documents keyed by id.
type TransactionPostgresRepository struct {
	db    *sqlx.DB
	table string // quoted identifier
}

// NewTransactionPostgresRepository creates a repository over the given table.
func NewTransactionPostgresRepository(db *sqlx.DB, table string) *TransactionPostgresRepository {
	return &TransactionPostgresRepository{db: db, table: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the collection table if it does not exist.
func (r *TransactionPostgresRepository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			item JSONB NOT NULL
		)
	`, r.table)

	_, err := r.db.ExecContext(ctx, query)

	logger.Log.Infow("postgres exec",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return storeError("create table", err)
	}
	return nil
}

// PutTransaction upserts the document for txn.ID, replacing the previous one.
func (r *TransactionPostgresRepository) PutTransaction(ctx context.Context, txn models.Transaction) error {
	data, err := encodeJSON(txn)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, item)
		VALUES ($1, $2)
		ON CONFLICT (id)
		DO UPDATE SET item = EXCLUDED.item
	`, r.table)

	res, err := r.db.ExecContext(ctx, query, txn.ID, string(data))
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("postgres exec",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.ID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return storeError("upsert", err)
	}
	return nil
}

// ScanTransactions selects every row of the table and decodes all documents.
func (r *TransactionPostgresRepository) ScanTransactions(ctx context.Context) ([]models.Transaction, error) {
	query := fmt.Sprintf(`SELECT id, item FROM %s`, r.table)

	var rows []struct {
		ID   string `db:"id"`
		Item []byte `db:"item"`
	}
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow("postgres select",
		"query", query,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, storeError("select", err)
	}

	txns := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		txn, err := records.DecodeJSON(row.ID, row.Item)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
