package infrastructure

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bookstore/fulfillment-saga/inventory-service/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamoDB struct {
	queryOut  *dynamodb.QueryOutput
	updateErr error
	err       error

	lastQuery  *dynamodb.QueryInput
	lastUpdate *dynamodb.UpdateItemInput
}

func (f *fakeDynamoDB) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return nil, errors.New("not used")
}

func (f *fakeDynamoDB) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = params
	if f.err != nil {
		return nil, f.err
	}
	return f.queryOut, nil
}

func (f *fakeDynamoDB) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = params
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func TestDynamoDBBookRepository_FindByID(t *testing.T) {
	client := &fakeDynamoDB{queryOut: &dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{{
			"bookId":   &types.AttributeValueMemberS{Value: "B1"},
			"quantity": &types.AttributeValueMemberN{Value: "10"},
			"price":    &types.AttributeValueMemberN{Value: "20"},
		}},
	}}
	repo := NewDynamoDBBookRepository(client, "bookTable")

	book, err := repo.FindByID(context.Background(), "B1")

	require.NoError(t, err)
	assert.Equal(t, &domain.Book{BookID: "B1", Quantity: 10, Price: 20}, book)
	assert.Equal(t, "bookTable", aws.ToString(client.lastQuery.TableName))
	assert.Equal(t, "bookId = :bookId", aws.ToString(client.lastQuery.KeyConditionExpression))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "B1"}, client.lastQuery.ExpressionAttributeValues[":bookId"])
}

func TestDynamoDBBookRepository_FindByID_Missing(t *testing.T) {
	repo := NewDynamoDBBookRepository(&fakeDynamoDB{queryOut: &dynamodb.QueryOutput{}}, "bookTable")

	book, err := repo.FindByID(context.Background(), "B1")

	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestDynamoDBBookRepository_FindByID_Fault(t *testing.T) {
	repo := NewDynamoDBBookRepository(&fakeDynamoDB{err: errors.New("throttled")}, "bookTable")

	_, err := repo.FindByID(context.Background(), "B1")

	assert.EqualError(t, err, "failed to query book: throttled")
}

func TestDynamoDBBookRepository_DecrementQuantity(t *testing.T) {
	tests := []struct {
		name        string
		updateErr   error
		expectedErr error
	}{
		{
			name: "conditional decrement applied",
		},
		{
			name: "condition rejected on existing record",
			updateErr: &types.ConditionalCheckFailedException{
				Item: map[string]types.AttributeValue{
					"bookId":   &types.AttributeValueMemberS{Value: "B1"},
					"quantity": &types.AttributeValueMemberN{Value: "1"},
				},
			},
			expectedErr: domain.ErrInsufficientQuantity,
		},
		{
			name:        "condition rejected on missing record",
			updateErr:   &types.ConditionalCheckFailedException{},
			expectedErr: domain.ErrBookMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeDynamoDB{updateErr: tt.updateErr}
			repo := NewDynamoDBBookRepository(client, "bookTable")

			err := repo.DecrementQuantity(context.Background(), "B1", 3)

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "got %v", err)
			} else {
				require.NoError(t, err)
			}

			update := client.lastUpdate
			require.NotNil(t, update)
			assert.Equal(t, "SET quantity = quantity - :orderQuantity", aws.ToString(update.UpdateExpression))
			assert.Equal(t, "attribute_exists(bookId) AND quantity >= :orderQuantity", aws.ToString(update.ConditionExpression))
			assert.Equal(t, &types.AttributeValueMemberN{Value: "3"}, update.ExpressionAttributeValues[":orderQuantity"])
			assert.Equal(t, &types.AttributeValueMemberS{Value: "B1"}, update.Key["bookId"])
		})
	}
}

func TestDynamoDBBookRepository_IncrementQuantity(t *testing.T) {
	client := &fakeDynamoDB{}
	repo := NewDynamoDBBookRepository(client, "bookTable")

	require.NoError(t, repo.IncrementQuantity(context.Background(), "B1", 4))
	assert.Equal(t, "SET quantity = quantity + :orderQuantity", aws.ToString(client.lastUpdate.UpdateExpression))
	assert.Equal(t, "attribute_exists(bookId)", aws.ToString(client.lastUpdate.ConditionExpression))

	client.updateErr = &types.ConditionalCheckFailedException{}
	err := repo.IncrementQuantity(context.Background(), "B1", 4)
	assert.True(t, errors.Is(err, domain.ErrBookMissing))
}
