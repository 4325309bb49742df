package records

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() Item {
	return Item{
		AttrID:           String("t1"),
		AttrSymbol:       String("SPY"),
		AttrPurchaseCost: Number("7000"),
		AttrCount:        Number("5000"),
		AttrCreatedAt:    String("5000"),
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	txn := models.Transaction{
		ID:           "t1",
		Symbol:       "SPY",
		PurchaseCost: 7000.0,
		Count:        5000.0,
		CreatedAt:    5000,
	}

	item, err := Encode(txn)
	require.NoError(t, err)
	assert.Equal(t, validItem(), item)

	got, err := Decode(item)
	require.NoError(t, err)
	assert.Equal(t, txn, got)
}

func TestEncode_FractionalNumbers(t *testing.T) {
	item, err := Encode(models.Transaction{ID: "a", Symbol: "AAPL", PurchaseCost: 150.25, Count: 0.5, CreatedAt: -1})
	require.NoError(t, err)

	assert.Equal(t, "150.25", *item[AttrPurchaseCost].N)
	assert.Equal(t, "0.5", *item[AttrCount].N)
	assert.Equal(t, "-1", *item[AttrCreatedAt].S)

	got, err := Decode(item)
	require.NoError(t, err)
	assert.Equal(t, 150.25, got.PurchaseCost)
	assert.Equal(t, int64(-1), got.CreatedAt)
}

func TestEncode_RefusesUndecodable(t *testing.T) {
	valid := models.Transaction{ID: "t1", Symbol: "SPY", PurchaseCost: 7000, Count: 5000, CreatedAt: 5000}

	tests := []struct {
		name   string
		mutate func(*models.Transaction)
	}{
		{name: "empty id", mutate: func(txn *models.Transaction) { txn.ID = "" }},
		{name: "NaN count", mutate: func(txn *models.Transaction) { txn.Count = math.NaN() }},
		{name: "Inf count", mutate: func(txn *models.Transaction) { txn.Count = math.Inf(1) }},
		{name: "NaN purchaseCost", mutate: func(txn *models.Transaction) { txn.PurchaseCost = math.NaN() }},
		{name: "-Inf purchaseCost", mutate: func(txn *models.Transaction) { txn.PurchaseCost = math.Inf(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)

			item, err := Encode(txn)
			assert.ErrorIs(t, err, ErrUnencodable)
			assert.NotErrorIs(t, err, ErrMalformedRecord)
			assert.Nil(t, item)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(Item)
		attribute string
	}{
		{
			name:      "missing purchaseCost",
			mutate:    func(i Item) { delete(i, AttrPurchaseCost) },
			attribute: AttrPurchaseCost,
		},
		{
			name:      "missing id",
			mutate:    func(i Item) { delete(i, AttrID) },
			attribute: AttrID,
		},
		{
			name:      "empty id",
			mutate:    func(i Item) { i[AttrID] = String("") },
			attribute: AttrID,
		},
		{
			name:      "symbol stored as number",
			mutate:    func(i Item) { i[AttrSymbol] = Number("1") },
			attribute: AttrSymbol,
		},
		{
			name:      "count stored as string",
			mutate:    func(i Item) { i[AttrCount] = String("5000") },
			attribute: AttrCount,
		},
		{
			name:      "untyped attribute",
			mutate:    func(i Item) { i[AttrSymbol] = Attribute{} },
			attribute: AttrSymbol,
		},
		{
			name:      "unparseable number",
			mutate:    func(i Item) { i[AttrPurchaseCost] = Number("seven") },
			attribute: AttrPurchaseCost,
		},
		{
			name:      "non finite number",
			mutate:    func(i Item) { i[AttrCount] = Number("NaN") },
			attribute: AttrCount,
		},
		{
			name:      "createdAt not an integer",
			mutate:    func(i Item) { i[AttrCreatedAt] = String("5000.5") },
			attribute: AttrCreatedAt,
		},
		{
			name:      "createdAt stored as number",
			mutate:    func(i Item) { i[AttrCreatedAt] = Number("5000") },
			attribute: AttrCreatedAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(item)

			got, err := Decode(item)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord))
			assert.Equal(t, models.Transaction{}, got)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tt.attribute, decodeErr.Attribute)
		})
	}
}

func TestDecodeAll_FailsWholeBatch(t *testing.T) {
	bad := validItem()
	delete(bad, AttrPurchaseCost)

	txns, err := DecodeAll([]Item{validItem(), bad, validItem()})
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Nil(t, txns)
}

func TestDecodeAll_Empty(t *testing.T) {
	txns, err := DecodeAll(nil)
	assert.NoError(t, err)
	assert.Empty(t, txns)
}

func TestItem_JSONForm(t *testing.T) {
	data, err := json.Marshal(Item{AttrID: String("t1"), AttrCount: Number("5000")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":{"S":"t1"},"count":{"N":"5000"}}`, string(data))

	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{"id":{"S":"t1"},"symbol":{"BOOL":true}}`), &item))
	assert.Equal(t, "t1", *item[AttrID].S)
	assert.Equal(t, Attribute{}, item[AttrSymbol])
}

func TestDecodeJSON(t *testing.T) {
	data, err := json.Marshal(validItem())
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		txn, err := DecodeJSON("t1", data)
		require.NoError(t, err)
		assert.Equal(t, "SPY", txn.Symbol)
	})

	t.Run("key mismatch", func(t *testing.T) {
		_, err := DecodeJSON("t2", data)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := DecodeJSON("t1", []byte("{not json"))
		assert.ErrorIs(t, err, ErrMalformedRecord)
		assert.Contains(t, err.Error(), "not valid JSON")
	})

	t.Run("json null", func(t *testing.T) {
		_, err := DecodeJSON("t1", []byte("null"))
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})
}
