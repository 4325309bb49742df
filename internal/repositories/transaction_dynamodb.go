package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sbilibin2017/gw-stock-service/internal/logger"
	"github.com/sbilibin2017/gw-stock-service/internal/models"
	"github.com/sbilibin2017/gw-stock-service/internal/records"
)

// DynamoDBClient is the subset of *dynamodb.Client used by the repository.
type DynamoDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// TransactionDynamoDBRepository stores transactions in a DynamoDB table keyed by id.
type TransactionDynamoDBRepository struct {
	client DynamoDBClient
	table  string
}

// NewTransactionDynamoDBRepository creates a repository over the given table.
func NewTransactionDynamoDBRepository(client DynamoDBClient, table string) *TransactionDynamoDBRepository {
	return &TransactionDynamoDBRepository{client: client, table: table}
}

// PutTransaction writes one item keyed by txn.ID, replacing any item with the same id.
func (r *TransactionDynamoDBRepository) PutTransaction(ctx context.Context, txn models.Transaction) error {
	item, err := records.Encode(txn)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", txn.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      toAttributeValues(item),
	})

	logger.Log.Infow("dynamodb put item",
		"table", r.table,
		"key", txn.ID,
		"error", err,
	)

	if err != nil {
		return storeError("put item", err)
	}
	return nil
}

// ScanTransactions reads every page of the table and decodes all items.
// The whole table is held in memory before returning.
func (r *TransactionDynamoDBRepository) ScanTransactions(ctx context.Context) ([]models.Transaction, error) {
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})

	var (
		items []records.Item
		pages int
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.Log.Infow("dynamodb scan",
				"table", r.table,
				"pages", pages,
				"error", err,
			)
			return nil, storeError("scan", err)
		}
		pages++
		for _, av := range page.Items {
			items = append(items, fromAttributeValues(av))
		}
	}

	txns, err := records.DecodeAll(items)

	logger.Log.Infow("dynamodb scan",
		"table", r.table,
		"pages", pages,
		"result", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txns, nil
}

// EnsureTable creates the table with an id hash key when it does not exist
// and waits up to maxWait for it to become active.
func (r *TransactionDynamoDBRepository) EnsureTable(ctx context.Context, maxWait time.Duration) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.table)})
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return storeError("describe table", err)
	}

	_, err = r.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(records.AttrID), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(records.AttrID), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})

	logger.Log.Infow("dynamodb create table",
		"table", r.table,
		"error", err,
	)

	if err != nil {
		return storeError("create table", err)
	}

	waiter := dynamodb.NewTableExistsWaiter(r.client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.table)}, maxWait); err != nil {
		return storeError("wait for table", err)
	}
	return nil
}

func toAttributeValues(item records.Item) map[string]types.AttributeValue {
	av := make(map[string]types.AttributeValue, len(item))
	for name, attr := range item {
		switch {
		case attr.S != nil:
			av[name] = &types.AttributeValueMemberS{Value: *attr.S}
		case attr.N != nil:
			av[name] = &types.AttributeValueMemberN{Value: *attr.N}
		}
	}
	return av
}

// fromAttributeValues keeps S and N values; any other type becomes an
// untyped attribute that fails decoding.
func fromAttributeValues(av map[string]types.AttributeValue) records.Item {
	item := make(records.Item, len(av))
	for name, v := range av {
		switch tv := v.(type) {
		case *types.AttributeValueMemberS:
			item[name] = records.String(tv.Value)
		case *types.AttributeValueMemberN:
			item[name] = records.Number(tv.Value)
		default:
			item[name] = records.Attribute{}
		}
	}
	return item
}
