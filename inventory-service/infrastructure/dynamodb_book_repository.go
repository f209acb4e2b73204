package infrastructure

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bookstore/fulfillment-saga/inventory-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/infrastructure"
	"github.com/pkg/errors"
)

// DynamoDBBookRepository implements BookRepository on a DynamoDB table keyed by bookId
type DynamoDBBookRepository struct {
	client    infrastructure.DynamoDBAPI
	tableName string
}

// NewDynamoDBBookRepository creates a new DynamoDBBookRepository
func NewDynamoDBBookRepository(client infrastructure.DynamoDBAPI, tableName string) *DynamoDBBookRepository {
	return &DynamoDBBookRepository{
		client:    client,
		tableName: tableName,
	}
}

// FindByID queries the table by partition key
func (r *DynamoDBBookRepository) FindByID(ctx context.Context, bookID string) (*domain.Book, error) {
	key, err := attributevalue.Marshal(bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal book ID")
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("bookId = :bookId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bookId": key,
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query book")
	}

	if len(out.Items) == 0 {
		return nil, nil
	}

	var book domain.Book
	if err := attributevalue.UnmarshalMap(out.Items[0], &book); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal book")
	}

	return &book, nil
}

// DecrementQuantity subtracts quantity under a condition that keeps the stored value non-negative
func (r *DynamoDBBookRepository) DecrementQuantity(ctx context.Context, bookID string, quantity int64) error {
	input, err := r.updateInput(bookID, quantity,
		"SET quantity = quantity - :orderQuantity",
		"attribute_exists(bookId) AND quantity >= :orderQuantity",
	)
	if err != nil {
		return err
	}

	_, err = r.client.UpdateItem(ctx, input)
	if err == nil {
		return nil
	}

	var conditionErr *types.ConditionalCheckFailedException
	if errors.As(err, &conditionErr) {
		if len(conditionErr.Item) == 0 {
			return domain.ErrBookMissing
		}
		return domain.ErrInsufficientQuantity
	}

	return errors.Wrap(err, "failed to decrement book quantity")
}

// IncrementQuantity adds quantity to the stored value
func (r *DynamoDBBookRepository) IncrementQuantity(ctx context.Context, bookID string, quantity int64) error {
	input, err := r.updateInput(bookID, quantity,
		"SET quantity = quantity + :orderQuantity",
		"attribute_exists(bookId)",
	)
	if err != nil {
		return err
	}

	_, err = r.client.UpdateItem(ctx, input)
	if err == nil {
		return nil
	}

	var conditionErr *types.ConditionalCheckFailedException
	if errors.As(err, &conditionErr) {
		return domain.ErrBookMissing
	}

	return errors.Wrap(err, "failed to increment book quantity")
}

func (r *DynamoDBBookRepository) updateInput(bookID string, quantity int64, update, condition string) (*dynamodb.UpdateItemInput, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"bookId": bookID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal book key")
	}

	qty, err := attributevalue.Marshal(quantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal quantity")
	}

	return &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 key,
		UpdateExpression:    aws.String(update),
		ConditionExpression: aws.String(condition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":orderQuantity": qty,
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}, nil
}
