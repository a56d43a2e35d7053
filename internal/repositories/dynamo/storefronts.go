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

var _ repositories.StorefrontRepository = (*StorefrontRepository)(nil)

// StorefrontRepository implements repositories.StorefrontRepository on DynamoDB
type StorefrontRepository struct {
	db         DynamoAPI
	finder     *Finder
	table      string
	ownerIndex string
}

// NewStorefrontRepository creates a storefront repository
func NewStorefrontRepository(db DynamoAPI, cfg *config.Config) *StorefrontRepository {
	return &StorefrontRepository{
		db:         db,
		finder:     NewFinder(db),
		table:      cfg.Tables.Storefronts,
		ownerIndex: cfg.Indexes.StorefrontsByOwner,
	}
}

// Create inserts a new storefront record
func (r *StorefrontRepository) Create(ctx context.Context, storefront *models.Storefront) error {
	item, err := attributevalue.MarshalMap(storefront)
	if err != nil {
		return repositories.DownstreamError("create", "storefront", err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return repositories.DownstreamError("create", "storefront", err)
	}
	return nil
}

// GetByID retrieves a storefront by its primary key
func (r *StorefrontRepository) GetByID(ctx context.Context, id string) (*models.Storefront, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, repositories.DownstreamError("get", "storefront", err)
	}
	if out.Item == nil {
		return nil, repositories.NotFoundError("storefront", id)
	}

	var storefront models.Storefront
	if err := attributevalue.UnmarshalMap(out.Item, &storefront); err != nil {
		return nil, repositories.DownstreamError("get", "storefront", err)
	}
	return &storefront, nil
}

// ListByOwner returns all storefronts owned by the given account
func (r *StorefrontRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Storefront, error) {
	spec := FindSpec{
		Table: r.table,
		Index: r.ownerIndex,
		Key:   Match{Attr: "ownerId", Value: ownerID},
	}

	var storefronts []models.Storefront
	if _, err := r.finder.FindBy(ctx, spec, &storefronts); err != nil {
		return nil, repositories.DownstreamError("find", "storefront", err)
	}
	return storefronts, nil
}

// ListAll returns every storefront. This is an unconditional scan; the
// storefront table is expected to stay small.
func (r *StorefrontRepository) ListAll(ctx context.Context) ([]models.Storefront, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.table)}

	var items []map[string]types.AttributeValue
	for {
		out, err := r.db.Scan(ctx, input)
		if err != nil {
			return nil, repositories.DownstreamError("scan", "storefront", err)
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	var storefronts []models.Storefront
	if err := attributevalue.UnmarshalListOfMaps(items, &storefronts); err != nil {
		return nil, repositories.DownstreamError("scan", "storefront", err)
	}
	return storefronts, nil
}
