package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	id   string
	txns []models.Transaction
	err  error

	gotName   string
	gotSymbol string
	gotCost   float64
}

func (f *fakeClient) CreateTransaction(ctx context.Context, symbol string, purchaseCost float64) (string, error) {
	f.gotSymbol, f.gotCost = symbol, purchaseCost
	return f.id, f.err
}

func (f *fakeClient) ListTransactions(ctx context.Context, name string) ([]models.Transaction, error) {
	f.gotName = name
	return f.txns, f.err
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expected  options
		expectErr bool
	}{
		{
			name:     "list with defaults",
			args:     []string{"list"},
			expected: options{addr: "localhost:50051", timeout: 10 * time.Second, command: "list", name: "Tonic"},
		},
		{
			name:     "list with globals and name",
			args:     []string{"-addr", "[::1]:50051", "-timeout", "2s", "list", "-name", "me"},
			expected: options{addr: "[::1]:50051", timeout: 2 * time.Second, command: "list", name: "me"},
		},
		{
			name:     "create",
			args:     []string{"create", "-symbol", "AAPL", "-cost", "150.25"},
			expected: options{addr: "localhost:50051", timeout: 10 * time.Second, command: "create", symbol: "AAPL", cost: 150.25},
		},
		{name: "missing command", args: []string{}, expectErr: true},
		{name: "unknown command", args: []string{"delete"}, expectErr: true},
		{name: "create without symbol", args: []string{"create", "-cost", "1"}, expectErr: true},
		{name: "bad cost", args: []string{"create", "-symbol", "SPY", "-cost", "abc"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(tt.args, io.Discard)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestRun_List(t *testing.T) {
	client := &fakeClient{txns: []models.Transaction{{ID: "t1", Symbol: "SPY", PurchaseCost: 7000, Count: 5000, CreatedAt: 5000}}}
	var out bytes.Buffer

	err := run(context.Background(), client, options{command: "list", name: "Tonic"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Tonic", client.gotName)
	assert.JSONEq(t, `{"transactions":[{"id":"t1","symbol":"SPY","purchase_cost":7000,"count":5000,"created_at":5000}]}`, out.String())
}

func TestRun_ListEmpty(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), &fakeClient{}, options{command: "list"}, &out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"transactions":[]}`, out.String())
}

func TestRun_Create(t *testing.T) {
	client := &fakeClient{id: "t1"}
	var out bytes.Buffer

	err := run(context.Background(), client, options{command: "create", symbol: "AAPL", cost: 150.25}, &out)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", client.gotSymbol)
	assert.Equal(t, 150.25, client.gotCost)
	assert.JSONEq(t, `{"id":"t1"}`, out.String())
}

func TestRun_Error(t *testing.T) {
	client := &fakeClient{err: errors.New("unavailable")}
	var out bytes.Buffer

	assert.Error(t, run(context.Background(), client, options{command: "list"}, &out))
	assert.Error(t, run(context.Background(), client, options{command: "create", symbol: "SPY"}, &out))
	assert.Empty(t, out.String())
}

func TestPrintBuildInfo(t *testing.T) {
	var out bytes.Buffer
	printBuildInfo(&out)
	assert.Contains(t, out.String(), "Build version: N/A")
}
