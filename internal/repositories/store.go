package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/sbilibin2017/gw-stock-service/internal/records"
)

// ErrStoreUnavailable is matched by every failure of the durable store itself:
// unreachable, rejected writes, failed scans. Decode failures are not store failures.
var ErrStoreUnavailable = errors.New("transaction store unavailable")

// DefaultCollection is the table, hash or collection name used when none is configured.
const DefaultCollection = "stocks"

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

// encodeJSON returns the DynamoDB JSON form persisted by the redis and postgres collections.
func encodeJSON(txn models.Transaction) ([]byte, error) {
	item, err := records.Encode(txn)
	if err != nil {
		return nil, fmt.Errorf("encode record %q: %w", txn.ID, err)
	}
	return json.Marshal(item)
}
