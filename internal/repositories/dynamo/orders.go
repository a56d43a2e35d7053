package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"marketplace-api/internal/config"
	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
)

var _ repositories.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implements repositories.OrderRepository on DynamoDB
type OrderRepository struct {
	db           DynamoAPI
	finder       *Finder
	table        string
	accountIndex string
}

// NewOrderRepository creates an order repository
func NewOrderRepository(db DynamoAPI, cfg *config.Config) *OrderRepository {
	return &OrderRepository{
		db:           db,
		finder:       NewFinder(db),
		table:        cfg.Tables.Orders,
		accountIndex: cfg.Indexes.OrdersByAccount,
	}
}

// Create inserts a new order record
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return repositories.DownstreamError("create", "order", err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return repositories.DownstreamError("create", "order", err)
	}
	return nil
}

// ListByAccount returns all orders placed by the given account
func (r *OrderRepository) ListByAccount(ctx context.Context, accountID string) ([]models.Order, error) {
	spec := FindSpec{
		Table: r.table,
		Index: r.accountIndex,
		Key:   Match{Attr: "accountId", Value: accountID},
	}

	var orders []models.Order
	if _, err := r.finder.FindBy(ctx, spec, &orders); err != nil {
		return nil, repositories.DownstreamError("find", "order", err)
	}
	return orders, nil
}
