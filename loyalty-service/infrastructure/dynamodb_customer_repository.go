package infrastructure

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bookstore/fulfillment-saga/loyalty-service/domain"
	"github.com/bookstore/fulfillment-saga/shared/infrastructure"
	"github.com/pkg/errors"
)

// DynamoDBCustomerRepository implements CustomerRepository on a DynamoDB table keyed by userId
type DynamoDBCustomerRepository struct {
	client    infrastructure.DynamoDBAPI
	tableName string
}

// NewDynamoDBCustomerRepository creates a new DynamoDBCustomerRepository
func NewDynamoDBCustomerRepository(client infrastructure.DynamoDBAPI, tableName string) *DynamoDBCustomerRepository {
	return &DynamoDBCustomerRepository{
		client:    client,
		tableName: tableName,
	}
}

// FindByID reads the customer with a strongly consistent GetItem
func (r *DynamoDBCustomerRepository) FindByID(ctx context.Context, userID string) (*domain.Customer, error) {
	key, err := r.key(userID)
	if err != nil {
		return nil, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer")
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var customer domain.Customer
	if err := attributevalue.UnmarshalMap(out.Item, &customer); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal customer")
	}

	return &customer, nil
}

// CompareAndSetPoints writes points only while the stored balance equals expected
func (r *DynamoDBCustomerRepository) CompareAndSetPoints(ctx context.Context, userID string, expected, points int64) error {
	values, err := attributevalue.MarshalMap(map[string]int64{
		":points":   points,
		":expected": expected,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal points")
	}

	err = r.update(ctx, userID, values, "attribute_exists(userId) AND points = :expected")
	if err == nil {
		return nil
	}

	var conditionErr *types.ConditionalCheckFailedException
	if errors.As(err, &conditionErr) {
		if len(conditionErr.Item) == 0 {
			return domain.ErrCustomerMissing
		}
		return domain.ErrPointsChanged
	}

	return errors.Wrap(err, "failed to compare-and-set points")
}

// SetPoints writes an absolute balance on an existing customer
func (r *DynamoDBCustomerRepository) SetPoints(ctx context.Context, userID string, points int64) error {
	values, err := attributevalue.MarshalMap(map[string]int64{":points": points})
	if err != nil {
		return errors.Wrap(err, "failed to marshal points")
	}

	err = r.update(ctx, userID, values, "attribute_exists(userId)")
	if err == nil {
		return nil
	}

	var conditionErr *types.ConditionalCheckFailedException
	if errors.As(err, &conditionErr) {
		return domain.ErrCustomerMissing
	}

	return errors.Wrap(err, "failed to set points")
}

func (r *DynamoDBCustomerRepository) update(ctx context.Context, userID string, values map[string]types.AttributeValue, condition string) error {
	key, err := r.key(userID)
	if err != nil {
		return err
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 key,
		UpdateExpression:                    aws.String("SET points = :points"),
		ConditionExpression:                 aws.String(condition),
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	return err
}

func (r *DynamoDBCustomerRepository) key(userID string) (map[string]types.AttributeValue, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"userId": userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal customer key")
	}
	return key, nil
}
