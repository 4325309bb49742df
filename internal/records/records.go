// Package records maps transactions to typed attribute records and back.
//
// A record is a flat map of attribute name to typed value, the same model DynamoDB uses.
// Its JSON form is DynamoDB JSON, e.g. {"id":{"S":"t1"},"count":{"N":"5000"}}, which is
// what the redis and postgres collections persist.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/sbilibin2017/gw-stock-service/internal/models"
)

// Attribute names of a stored transaction.
const (
	AttrID           = "id"
	AttrSymbol       = "symbol"
	AttrPurchaseCost = "purchaseCost"
	AttrCount        = "count"
	AttrCreatedAt    = "createdAt"
)

// ErrMalformedRecord is matched by every decode failure.
var ErrMalformedRecord = errors.New("malformed transaction record")

// ErrUnencodable is returned by Encode for a transaction Decode would reject.
var ErrUnencodable = errors.New("transaction cannot be stored")

// Attribute is a typed value. Exactly one of S or N is set on a well-formed attribute.
type Attribute struct {
	S *string `json:"S,omitempty"` // string value
	N *string `json:"N,omitempty"` // number value in its text form
}

// Item is a stored transaction record.
type Item map[string]Attribute

// String returns a string attribute.
func String(v string) Attribute {
	return Attribute{S: &v}
}

// Number returns a number attribute holding v's text form.
func Number(v string) Attribute {
	return Attribute{N: &v}
}

// DecodeError describes why a record could not be turned into a transaction.
type DecodeError struct {
	Attribute string
	Reason    string
	Err       error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrMalformedRecord, e.Reason)
	if e.Attribute != "" {
		msg = fmt.Sprintf("%s: attribute %q %s", ErrMalformedRecord, e.Attribute, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrMalformedRecord so callers can classify with errors.Is.
func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Encode converts a transaction into its stored record.
// An empty id or a non-finite number is refused, so every encoded record decodes.
func Encode(txn models.Transaction) (Item, error) {
	if txn.ID == "" {
		return nil, fmt.Errorf("%w: id is empty", ErrUnencodable)
	}
	if !isFinite(txn.PurchaseCost) {
		return nil, fmt.Errorf("%w: %s is not finite", ErrUnencodable, AttrPurchaseCost)
	}
	if !isFinite(txn.Count) {
		return nil, fmt.Errorf("%w: %s is not finite", ErrUnencodable, AttrCount)
	}

	return Item{
		AttrID:           String(txn.ID),
		AttrSymbol:       String(txn.Symbol),
		AttrPurchaseCost: Number(formatNumber(txn.PurchaseCost)),
		AttrCount:        Number(formatNumber(txn.Count)),
		AttrCreatedAt:    String(strconv.FormatInt(txn.CreatedAt, 10)),
	}, nil
}

// Decode converts a stored record into a transaction.
// Missing attributes, wrong types and unparseable text are errors; nothing is defaulted.
func Decode(item Item) (models.Transaction, error) {
	var (
		txn models.Transaction
		err error
	)

	if txn.ID, err = item.str(AttrID); err != nil {
		return models.Transaction{}, err
	}
	if txn.ID == "" {
		return models.Transaction{}, &DecodeError{Attribute: AttrID, Reason: "is empty"}
	}
	if txn.Symbol, err = item.str(AttrSymbol); err != nil {
		return models.Transaction{}, err
	}
	if txn.PurchaseCost, err = item.num(AttrPurchaseCost); err != nil {
		return models.Transaction{}, err
	}
	if txn.Count, err = item.num(AttrCount); err != nil {
		return models.Transaction{}, err
	}

	createdAt, err := item.str(AttrCreatedAt)
	if err != nil {
		return models.Transaction{}, err
	}
	if txn.CreatedAt, err = strconv.ParseInt(createdAt, 10, 64); err != nil {
		return models.Transaction{}, &DecodeError{Attribute: AttrCreatedAt, Reason: "is not an integer timestamp", Err: err}
	}

	return txn, nil
}

// DecodeAll decodes every item or fails on the first malformed one.
func DecodeAll(items []Item) ([]models.Transaction, error) {
	txns := make([]models.Transaction, 0, len(items))
	for _, item := range items {
		txn, err := Decode(item)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// DecodeJSON decodes a record persisted as JSON under key.
// The record's id attribute must equal key.
func DecodeJSON(key string, data []byte) (models.Transaction, error) {
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return models.Transaction{}, &DecodeError{Reason: fmt.Sprintf("record %q is not valid JSON", key), Err: err}
	}

	txn, err := Decode(item)
	if err != nil {
		return models.Transaction{}, err
	}
	if txn.ID != key {
		return models.Transaction{}, &DecodeError{Attribute: AttrID, Reason: fmt.Sprintf("does not match key %q", key)}
	}
	return txn, nil
}

func (i Item) str(name string) (string, error) {
	attr, ok := i[name]
	if !ok {
		return "", &DecodeError{Attribute: name, Reason: "is missing"}
	}
	if attr.S == nil || attr.N != nil {
		return "", &DecodeError{Attribute: name, Reason: "is not a string"}
	}
	return *attr.S, nil
}

func (i Item) num(name string) (float64, error) {
	attr, ok := i[name]
	if !ok {
		return 0, &DecodeError{Attribute: name, Reason: "is missing"}
	}
	if attr.N == nil || attr.S != nil {
		return 0, &DecodeError{Attribute: name, Reason: "is not a number"}
	}
	v, err := strconv.ParseFloat(*attr.N, 64)
	if err != nil {
		return 0, &DecodeError{Attribute: name, Reason: "is not a valid number", Err: err}
	}
	if !isFinite(v) {
		return 0, &DecodeError{Attribute: name, Reason: "is not finite"}
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
