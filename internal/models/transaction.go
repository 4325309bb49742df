package models

// Transaction represents a recorded stock purchase.
type Transaction struct {
	ID           string  `json:"id"`            // ID is the server-generated unique identifier and the store primary key.
	Symbol       string  `json:"symbol"`        // Symbol identifies the traded instrument, e.g. "SPY".
	PurchaseCost float64 `json:"purchase_cost"` // PurchaseCost is the monetary amount paid.
	Count        float64 `json:"count"`         // Count is the server-assigned quantity of units.
	CreatedAt    int64   `json:"created_at"`    // CreatedAt is the server-assigned creation timestamp.
}

// TransactionCreatedEventType is the event-type header value of published transactions.
const TransactionCreatedEventType = "transaction.created"
