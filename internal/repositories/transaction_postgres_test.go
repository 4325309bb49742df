package repositories

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/sbilibin2017/gw-stock-service/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

const validItemJSON = `{"id":{"S":"t1"},"symbol":{"S":"SPY"},"purchaseCost":{"N":"7000"},"count":{"N":"5000"},"createdAt":{"S":"5000"}}`

func TestTransactionPostgresRepository_EnsureSchema(t *testing.T) {
	db, mock := setupSQLMock(t)
	repo := NewTransactionPostgresRepository(db, "stocks")

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "stocks"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionPostgresRepository_PutTransaction(t *testing.T) {
	db, mock := setupSQLMock(t)
	repo := NewTransactionPostgresRepository(db, "stocks")
	txn := models.Transaction{ID: "t1", Symbol: "SPY", PurchaseCost: 7000, Count: 5000, CreatedAt: 5000}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "stocks" (id, item)`)).
		WithArgs("t1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.PutTransaction(context.Background(), txn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionPostgresRepository_PutTransaction_Error(t *testing.T) {
	db, mock := setupSQLMock(t)
	repo := NewTransactionPostgresRepository(db, "stocks")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "stocks"`)).
		WillReturnError(errors.New("connection reset"))

	err := repo.PutTransaction(context.Background(), models.Transaction{ID: "t1"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionPostgresRepository_PutRefusesUndecodable(t *testing.T) {
	tests := []struct {
		name string
		txn  models.Transaction
	}{
		{name: "empty id", txn: models.Transaction{Symbol: "SPY", PurchaseCost: 1, Count: 1}},
		{name: "NaN count", txn: models.Transaction{ID: "t1", Symbol: "SPY", PurchaseCost: 1, Count: math.NaN()}},
		{name: "-Inf count", txn: models.Transaction{ID: "t1", Symbol: "SPY", PurchaseCost: 1, Count: math.Inf(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupSQLMock(t)
			repo := NewTransactionPostgresRepository(db, "stocks")

			// no statement reaches the database
			err := repo.PutTransaction(context.Background(), tt.txn)
			assert.ErrorIs(t, err, records.ErrUnencodable)
			assert.NotErrorIs(t, err, ErrStoreUnavailable)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionPostgresRepository_ScanTransactions(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		queryErr  error
		expected  []models.Transaction
		expectErr error
	}{
		{
			name: "decodes all rows",
			rows: sqlmock.NewRows([]string{"id", "item"}).
				AddRow("t1", []byte(validItemJSON)),
			expected: []models.Transaction{{ID: "t1", Symbol: "SPY", PurchaseCost: 7000, Count: 5000, CreatedAt: 5000}},
		},
		{
			name:     "empty table",
			rows:     sqlmock.NewRows([]string{"id", "item"}),
			expected: []models.Transaction{},
		},
		{
			name: "missing purchaseCost fails whole scan",
			rows: sqlmock.NewRows([]string{"id", "item"}).
				AddRow("t1", []byte(validItemJSON)).
				AddRow("t2", []byte(`{"id":{"S":"t2"},"symbol":{"S":"SPY"},"count":{"N":"1"},"createdAt":{"S":"1"}}`)),
			expectErr: records.ErrMalformedRecord,
		},
		{
			name: "id column disagrees with document",
			rows: sqlmock.NewRows([]string{"id", "item"}).
				AddRow("other", []byte(validItemJSON)),
			expectErr: records.ErrMalformedRecord,
		},
		{
			name:      "query failure",
			queryErr:  errors.New("relation does not exist"),
			expectErr: ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupSQLMock(t)
			repo := NewTransactionPostgresRepository(db, "stocks")

			exp := mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, item FROM "stocks"`))
			if tt.queryErr != nil {
				exp.WillReturnError(tt.queryErr)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			got, err := repo.ScanTransactions(context.Background())
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNewTransactionPostgresRepository_QuotesTable(t *testing.T) {
	db, _ := setupSQLMock(t)
	repo := NewTransactionPostgresRepository(db, `stocks"; DROP TABLE x; --`)
	assert.Equal(t, `"stocks""; DROP TABLE x; --"`, repo.table)
}

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	return db, func() {
		db.Close()
		container.Terminate(context.Background())
	}
}

func TestTransactionPostgresRepository_Integration(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewTransactionPostgresRepository(db, "stocks")

	require.NoError(t, repo.EnsureSchema(ctx))
	// idempotent
	require.NoError(t, repo.EnsureSchema(ctx))

	t.Run("round trip", func(t *testing.T) {
		txn := models.Transaction{ID: "t1", Symbol: "SPY", PurchaseCost: 7000.0, Count: 5000.0, CreatedAt: 5000}
		require.NoError(t, repo.PutTransaction(ctx, txn))

		got, err := repo.ScanTransactions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Transaction{txn}, got)
	})

	t.Run("overwrite keeps latest values", func(t *testing.T) {
		require.NoError(t, repo.PutTransaction(ctx, models.Transaction{ID: "t1", Symbol: "QQQ", PurchaseCost: 2.5, Count: 1, CreatedAt: 7}))

		got, err := repo.ScanTransactions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Transaction{{ID: "t1", Symbol: "QQQ", PurchaseCost: 2.5, Count: 1, CreatedAt: 7}}, got)
	})

	t.Run("malformed row fails scan", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO "stocks" (id, item) VALUES ($1, $2)`,
			"bad", `{"id":{"S":"bad"},"symbol":{"S":"SPY"},"count":{"N":"1"},"createdAt":{"S":"1"}}`)
		require.NoError(t, err)

		got, err := repo.ScanTransactions(ctx)
		assert.ErrorIs(t, err, records.ErrMalformedRecord)
		assert.Nil(t, got)
	})
}
