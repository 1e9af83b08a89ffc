package repository

import (
	"context"
	"errors"
	"strconv"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "carts"

type cartItem struct {
	UserID        string              `dynamodbav:"user_id"`
	Items         []entities.CartItem `dynamodbav:"items"`
	TotalAmount   float64             `dynamodbav:"total_amount"`
	TotalDiscount float64             `dynamodbav:"total_discount"`
	FinalAmount   float64             `dynamodbav:"final_amount"`
	Version       int64               `dynamodbav:"version"`
	UpdatedAt     string              `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists one Cart per user in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)

type CartDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb DynamoAPI) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

// GetByUserID returns an empty, unsaved cart (version 0) when the user has none.
func (r *CartDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("user_id", userID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{UserID: userID, Items: []entities.CartItem{}}, nil
	}
	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func (r *CartDynamoRepository) Save(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	expected := c.Version
	c.Version++
	av, err := attributevalue.MarshalMap(toCartItem(c))
	if err != nil {
		return entities.Cart{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if expected == 0 {
		in.ConditionExpression = aws.String("attribute_not_exists(#user_id)")
		in.ExpressionAttributeNames = map[string]string{"#user_id": "user_id"}
	} else {
		in.ConditionExpression = aws.String("#version = :expected")
		in.ExpressionAttributeNames = map[string]string{"#version": "version"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Cart{}, interfaces.ErrCartVersionConflict
		}
		return entities.Cart{}, err
	}
	return c, nil
}

func toCartItem(c entities.Cart) cartItem {
	items := c.Items
	if items == nil {
		items = []entities.CartItem{}
	}
	return cartItem{
		UserID:        c.UserID,
		Items:         items,
		TotalAmount:   c.TotalAmount,
		TotalDiscount: c.TotalDiscount,
		FinalAmount:   c.FinalAmount,
		Version:       c.Version,
		UpdatedAt:     formatTime(c.UpdatedAt),
	}
}

func fromCartItem(it cartItem) entities.Cart {
	items := it.Items
	if items == nil {
		items = []entities.CartItem{}
	}
	return entities.Cart{
		UserID:        it.UserID,
		Items:         items,
		TotalAmount:   it.TotalAmount,
		TotalDiscount: it.TotalDiscount,
		FinalAmount:   it.FinalAmount,
		Version:       it.Version,
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
