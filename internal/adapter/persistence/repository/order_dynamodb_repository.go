package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID                 string               `dynamodbav:"id"`
	OrderNumber        string               `dynamodbav:"order_number"`
	UserID             string               `dynamodbav:"user_id"`
	Items              []entities.OrderItem `dynamodbav:"items"`
	Subtotal           float64              `dynamodbav:"subtotal"`
	TotalDiscount      float64              `dynamodbav:"total_discount"`
	Tax                float64              `dynamodbav:"tax"`
	Total              float64              `dynamodbav:"total"`
	Payment            entities.Payment     `dynamodbav:"payment"`
	Status             string               `dynamodbav:"status"`
	Notes              string               `dynamodbav:"notes,omitempty"`
	CancellationReason string               `dynamodbav:"cancellation_reason,omitempty"`
	CreatedAt          string               `dynamodbav:"created_at"`
	UpdatedAt          string               `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Order creation also writes the carts table in the same transaction.

type OrderDynamoRepository struct {
	ddb            DynamoAPI
	tableName      string
	cartsTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		cartsTableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

// CreateFromCart puts the order and empties the cart atomically. The cart
// write is conditioned on the version the order was built from.
func (r *OrderDynamoRepository) CreateFromCart(ctx context.Context, o entities.Order, cart entities.Cart) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(r.cartsTableName),
					Key:                 stringKey("user_id", cart.UserID),
					ConditionExpression: aws.String("#version = :expected"),
					UpdateExpression: aws.String("SET #items = :empty, #total_amount = :zero, #total_discount = :zero, " +
						"#final_amount = :zero, #version = :next, #updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#items":          "items",
						"#total_amount":   "total_amount",
						"#total_discount": "total_discount",
						"#final_amount":   "final_amount",
						"#version":        "version",
						"#updated_at":     "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":empty":    &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
						":zero":     &types.AttributeValueMemberN{Value: "0"},
						":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(cart.Version, 10)},
						":next":     &types.AttributeValueMemberN{Value: strconv.FormatInt(cart.Version+1, 10)},
						":now":      &types.AttributeValueMemberS{Value: formatTime(o.CreatedAt)},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && hasConditionalFailure(tce) {
			return entities.Order{}, interfaces.ErrCartVersionConflict
		}
		return entities.Order{}, err
	}
	return o, nil
}

func hasConditionalFailure(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(raw))
	for _, item := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

// Update rewrites status and payment fields of an existing order. Items and
// amounts are never rewritten after creation.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	payment, err := attributevalue.Marshal(o.Payment)
	if err != nil {
		return entities.Order{}, err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", o.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #payment = :payment, #status = :status, " +
			"#cancellation_reason = :reason, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":                  "id",
			"#payment":             "payment",
			"#status":              "status",
			"#cancellation_reason": "cancellation_reason",
			"#updated_at":          "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payment": payment,
			":status":  &types.AttributeValueMemberS{Value: string(o.Status)},
			":reason":  &types.AttributeValueMemberS{Value: o.CancellationReason},
			":now":     &types.AttributeValueMemberS{Value: formatTime(o.UpdatedAt)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

// MarkPaid stores a completed payment. The write is refused when another
// request already settled the order, so a concurrent duplicate charge is
// never recorded over the first one.
func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, o entities.Order) (entities.Order, error) {
	payment, err := attributevalue.Marshal(o.Payment)
	if err != nil {
		return entities.Order{}, err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", o.ID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending " +
			"AND #payment.#payment_status <> :completed"),
		UpdateExpression: aws.String("SET #payment = :payment, #status = :status, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#payment":        "payment",
			"#payment_status": "Status",
			"#status":         "status",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payment":   payment,
			":status":    &types.AttributeValueMemberS{Value: string(o.Status)},
			":pending":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
			":completed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
			":now":       &types.AttributeValueMemberS{Value: formatTime(o.UpdatedAt)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrOrderPaymentConflict
		}
		return entities.Order{}, err
	}
	return o, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		UserID:             o.UserID,
		Items:              o.Items,
		Subtotal:           o.Subtotal,
		TotalDiscount:      o.TotalDiscount,
		Tax:                o.Tax,
		Total:              o.Total,
		Payment:            o.Payment,
		Status:             string(o.Status),
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                 it.ID,
		OrderNumber:        it.OrderNumber,
		UserID:             it.UserID,
		Items:              it.Items,
		Subtotal:           it.Subtotal,
		TotalDiscount:      it.TotalDiscount,
		Tax:                it.Tax,
		Total:              it.Total,
		Payment:            it.Payment,
		Status:             entities.OrderStatus(it.Status),
		Notes:              it.Notes,
		CancellationReason: it.CancellationReason,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
