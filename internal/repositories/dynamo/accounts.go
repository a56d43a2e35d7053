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

var _ repositories.AccountRepository = (*AccountRepository)(nil)

// AccountRepository implements repositories.AccountRepository on DynamoDB
type AccountRepository struct {
	db         DynamoAPI
	finder     *Finder
	table      string
	emailIndex string
}

// NewAccountRepository creates an account repository
func NewAccountRepository(db DynamoAPI, cfg *config.Config) *AccountRepository {
	return &AccountRepository{
		db:         db,
		finder:     NewFinder(db),
		table:      cfg.Tables.Accounts,
		emailIndex: cfg.Indexes.AccountsByEmail,
	}
}

// Create inserts a new account record
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	item, err := attributevalue.MarshalMap(account)
	if err != nil {
		return repositories.DownstreamError("create", "account", err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return repositories.DownstreamError("create", "account", err)
	}
	return nil
}

// GetByID retrieves an account by its primary key
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, repositories.DownstreamError("get", "account", err)
	}
	if out.Item == nil {
		return nil, repositories.NotFoundError("account", id)
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(out.Item, &account); err != nil {
		return nil, repositories.DownstreamError("get", "account", err)
	}
	return &account, nil
}

// GetByEmail retrieves an account by its normalized email address
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	spec := FindSpec{
		Table: r.table,
		Index: r.emailIndex,
		Key:   Match{Attr: "email", Value: models.NormalizeEmail(email)},
	}

	var accounts []models.Account
	if _, err := r.finder.FindBy(ctx, spec, &accounts); err != nil {
		return nil, repositories.DownstreamError("find", "account", err)
	}
	if len(accounts) == 0 {
		return nil, repositories.NotFoundError("account", email)
	}
	return &accounts[0], nil
}

// SetHasStorefront flips the account's storefront flag
func (r *AccountRepository) SetHasStorefront(ctx context.Context, id string, has bool) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET hasStorefront = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberBOOL{Value: has},
		},
	})
	if err != nil {
		return repositories.DownstreamError("update", "account", err)
	}
	return nil
}
