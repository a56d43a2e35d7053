package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"marketplace-api/internal/config"
	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
)

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// ItemRepository implements repositories.ItemRepository on DynamoDB
type ItemRepository struct {
	db         DynamoAPI
	finder     *Finder
	table      string
	storeIndex string
}

// NewItemRepository creates a catalog item repository
func NewItemRepository(db DynamoAPI, cfg *config.Config) *ItemRepository {
	return &ItemRepository{
		db:         db,
		finder:     NewFinder(db),
		table:      cfg.Tables.Items,
		storeIndex: cfg.Indexes.ItemsByStore,
	}
}

// Create inserts a new catalog item record
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return repositories.DownstreamError("create", "item", err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		return repositories.DownstreamError("create", "item", err)
	}
	return nil
}

// GetByID retrieves a catalog item by its primary key
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, repositories.DownstreamError("get", "item", err)
	}
	if out.Item == nil {
		return nil, repositories.NotFoundError("item", id)
	}

	var item models.Item
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, repositories.DownstreamError("get", "item", err)
	}
	return &item, nil
}

// ListByStore returns all catalog items belonging to the given storefront
func (r *ItemRepository) ListByStore(ctx context.Context, storeID string) ([]models.Item, error) {
	spec := FindSpec{
		Table: r.table,
		Index: r.storeIndex,
		Key:   Match{Attr: "storeId", Value: storeID},
	}

	var items []models.Item
	if _, err := r.finder.FindBy(ctx, spec, &items); err != nil {
		return nil, repositories.DownstreamError("find", "item", err)
	}
	return items, nil
}
