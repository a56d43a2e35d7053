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

var _ repositories.ReviewRepository = (*ReviewRepository)(nil)

// ReviewRepository implements repositories.ReviewRepository on DynamoDB
type ReviewRepository struct {
	db        DynamoAPI
	finder    *Finder
	table     string
	itemIndex string
}

// NewReviewRepository creates a review repository
func NewReviewRepository(db DynamoAPI, cfg *config.Config) *ReviewRepository {
	return &ReviewRepository{
		db:        db,
		finder:    NewFinder(db),
		table:     cfg.Tables.Reviews,
		itemIndex: cfg.Indexes.ReviewsByItem,
	}
}

// Create inserts a new review record
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	item, err := attributevalue.MarshalMap(review)
	if err != nil {
		return repositories.DownstreamError("create", "review", err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return repositories.DownstreamError("create", "review", err)
	}
	return nil
}

// ListByItem returns all reviews of the given item
func (r *ReviewRepository) ListByItem(ctx context.Context, itemID string) ([]models.Review, error) {
	spec := FindSpec{
		Table: r.table,
		Index: r.itemIndex,
		Key:   Match{Attr: "itemId", Value: itemID},
	}

	var reviews []models.Review
	if _, err := r.finder.FindBy(ctx, spec, &reviews); err != nil {
		return nil, repositories.DownstreamError("find", "review", err)
	}
	return reviews, nil
}

// ListByItemAndAccount returns the reviews one account wrote for one item.
// The account condition is a post-query filter; the index only covers itemId.
func (r *ReviewRepository) ListByItemAndAccount(ctx context.Context, itemID, accountID string) ([]models.Review, error) {
	spec := FindSpec{
		Table: r.table,
		Index: r.itemIndex,
		Key:   Match{Attr: "itemId", Value: itemID},
		Extra: &Match{Attr: "accountId", Value: accountID},
	}

	var reviews []models.Review
	if _, err := r.finder.FindBy(ctx, spec, &reviews); err != nil {
		return nil, repositories.DownstreamError("find", "review", err)
	}
	return reviews, nil
}
