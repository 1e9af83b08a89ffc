package repository

import (
	"context"
	"errors"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDiscountsTableName = "discounts"
	discountCodeIndex         = "code-index"
	discountContractorIndex   = "contractor_id-index"
)

type discountUsageItem struct {
	UserID    string  `dynamodbav:"user_id"`
	Amount    float64 `dynamodbav:"amount"`
	Timestamp string  `dynamodbav:"timestamp"`
}

type discountItem struct {
	ID                string                      `dynamodbav:"id"`
	ContractorID      string                      `dynamodbav:"contractor_id,omitempty"`
	Name              string                      `dynamodbav:"name"`
	Description       string                      `dynamodbav:"description,omitempty"`
	Code              string                      `dynamodbav:"code,omitempty"`
	Type              string                      `dynamodbav:"type"`
	Value             float64                     `dynamodbav:"value"`
	MaxDiscount       *float64                    `dynamodbav:"max_discount,omitempty"`
	Tiers             []entities.Tier             `dynamodbav:"tiers,omitempty"`
	BundleItems       []entities.BundleItem       `dynamodbav:"bundle_items,omitempty"`
	Conditions        entities.DiscountConditions `dynamodbav:"conditions"`
	StartDate         string                      `dynamodbav:"start_date"`
	EndDate           string                      `dynamodbav:"end_date"`
	MaxUsagePerUser   int                         `dynamodbav:"max_usage_per_user"`
	MaxTotalUsage     int                         `dynamodbav:"max_total_usage"`
	CurrentUsageCount int                         `dynamodbav:"current_usage_count"`
	Stackable         bool                        `dynamodbav:"stackable"`
	Priority          int                         `dynamodbav:"priority"`
	IsActive          bool                        `dynamodbav:"is_active"`
	UsedBy            []discountUsageItem         `dynamodbav:"used_by"`
	CreatedAt         string                      `dynamodbav:"created_at"`
	UpdatedAt         string                      `dynamodbav:"updated_at"`
}

// DiscountDynamoRepository persists Discount entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code), sparse
//   - GSI: contractor_id-index (PK: contractor_id), sparse

type DiscountDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDiscountRepository = (*DiscountDynamoRepository)(nil)

func NewDiscountDynamoRepository(ddb DynamoAPI) *DiscountDynamoRepository {
	return &DiscountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISCOUNTS_TABLE", defaultDiscountsTableName),
	}
}

func (r *DiscountDynamoRepository) Create(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	return r.put(ctx, d, "attribute_not_exists(#id)")
}

// Update replaces the editable fields; usage counters and the audit trail
// are only changed through RecordUsage.
func (r *DiscountDynamoRepository) Update(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	it := toDiscountItem(d)
	vals := map[string]types.AttributeValue{}
	for k, v := range map[string]any{
		":name":         it.Name,
		":description":  it.Description,
		":type":         it.Type,
		":value":        it.Value,
		":tiers":        it.Tiers,
		":bundle_items": it.BundleItems,
		":conditions":   it.Conditions,
		":start_date":   it.StartDate,
		":end_date":     it.EndDate,
		":max_user":     it.MaxUsagePerUser,
		":max_total":    it.MaxTotalUsage,
		":stackable":    it.Stackable,
		":priority":     it.Priority,
		":is_active":    it.IsActive,
		":updated_at":   it.UpdatedAt,
	} {
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return entities.Discount{}, err
		}
		vals[k] = av
	}

	expr := "SET #name = :name, #description = :description, #type = :type, #value = :value, " +
		"#tiers = :tiers, #bundle_items = :bundle_items, #conditions = :conditions, " +
		"#start_date = :start_date, #end_date = :end_date, #max_user = :max_user, #max_total = :max_total, " +
		"#stackable = :stackable, #priority = :priority, #is_active = :is_active, #updated_at = :updated_at"
	if it.MaxDiscount != nil {
		vals[":max_discount"] = &types.AttributeValueMemberN{Value: floatToString(*it.MaxDiscount)}
		expr += ", #max_discount = :max_discount"
	} else {
		expr += " REMOVE #max_discount"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", d.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#name":         "name",
			"#description":  "description",
			"#type":         "type",
			"#value":        "value",
			"#tiers":        "tiers",
			"#bundle_items": "bundle_items",
			"#conditions":   "conditions",
			"#start_date":   "start_date",
			"#end_date":     "end_date",
			"#max_user":     "max_usage_per_user",
			"#max_total":    "max_total_usage",
			"#stackable":    "stackable",
			"#priority":     "priority",
			"#is_active":    "is_active",
			"#updated_at":   "updated_at",
			"#max_discount": "max_discount",
		},
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Discount{}, nil
		}
		return entities.Discount{}, err
	}
	var updated discountItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.Discount{}, err
	}
	return fromDiscountItem(updated), nil
}

func (r *DiscountDynamoRepository) put(ctx context.Context, d entities.Discount, condition string) (entities.Discount, error) {
	av, err := attributevalue.MarshalMap(toDiscountItem(d))
	if err != nil {
		return entities.Discount{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Discount{}, err
	}
	return d, nil
}

func (r *DiscountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Discount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Discount{}, err
	}
	if len(out.Item) == 0 {
		return entities.Discount{}, nil
	}
	var it discountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Discount{}, err
	}
	return fromDiscountItem(it), nil
}

func (r *DiscountDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Discount, error) {
	ds, err := r.query(ctx, discountCodeIndex, "code", code)
	if err != nil || len(ds) == 0 {
		return entities.Discount{}, err
	}
	return ds[0], nil
}

func (r *DiscountDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.Discount, error) {
	return r.query(ctx, discountContractorIndex, "contractor_id", contractorID)
}

// ListActive returns discounts flagged active; validity windows are left to the caller.
func (r *DiscountDynamoRepository) ListActive(ctx context.Context) ([]entities.Discount, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#is_active = :true"),
		ExpressionAttributeNames: map[string]string{"#is_active": "is_active"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalDiscounts(raw)
}

func (r *DiscountDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	})
	return err
}

// RecordUsage increments current_usage_count and appends to used_by in a
// single conditional write, so concurrent redemptions cannot overrun
// max_total_usage (0 means unlimited).
func (r *DiscountDynamoRepository) RecordUsage(ctx context.Context, id string, usage entities.DiscountUsage) error {
	entry, err := attributevalue.Marshal([]discountUsageItem{{
		UserID:    usage.UserID,
		Amount:    usage.Amount,
		Timestamp: formatTime(usage.Timestamp),
	}})
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
		ConditionExpression: aws.String(
			"attribute_exists(#id) AND (#max_total = :zero OR #count < #max_total)"),
		UpdateExpression: aws.String(
			"SET #count = #count + :one, #used_by = list_append(if_not_exists(#used_by, :empty), :entry), #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#max_total":  "max_total_usage",
			"#count":      "current_usage_count",
			"#used_by":    "used_by",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero":  &types.AttributeValueMemberN{Value: "0"},
			":one":   &types.AttributeValueMemberN{Value: "1"},
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":entry": entry,
			":now":   &types.AttributeValueMemberS{Value: formatTime(usage.Timestamp)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDiscountUsageCapReached
		}
		return err
	}
	return nil
}

func (r *DiscountDynamoRepository) query(ctx context.Context, index, attr, value string) ([]entities.Discount, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalDiscounts(raw)
}

func unmarshalDiscounts(raw []map[string]types.AttributeValue) ([]entities.Discount, error) {
	ds := make([]entities.Discount, 0, len(raw))
	for _, item := range raw {
		var it discountItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		ds = append(ds, fromDiscountItem(it))
	}
	return ds, nil
}

func toDiscountItem(d entities.Discount) discountItem {
	usedBy := make([]discountUsageItem, 0, len(d.UsedBy))
	for _, u := range d.UsedBy {
		usedBy = append(usedBy, discountUsageItem{UserID: u.UserID, Amount: u.Amount, Timestamp: formatTime(u.Timestamp)})
	}
	return discountItem{
		ID:                d.ID,
		ContractorID:      d.ContractorID,
		Name:              d.Name,
		Description:       d.Description,
		Code:              d.Code,
		Type:              string(d.Type),
		Value:             d.Value,
		MaxDiscount:       d.MaxDiscount,
		Tiers:             d.Tiers,
		BundleItems:       d.BundleItems,
		Conditions:        d.Conditions,
		StartDate:         formatTime(d.StartDate),
		EndDate:           formatTime(d.EndDate),
		MaxUsagePerUser:   d.MaxUsagePerUser,
		MaxTotalUsage:     d.MaxTotalUsage,
		CurrentUsageCount: d.CurrentUsageCount,
		Stackable:         d.Stackable,
		Priority:          d.Priority,
		IsActive:          d.IsActive,
		UsedBy:            usedBy,
		CreatedAt:         formatTime(d.CreatedAt),
		UpdatedAt:         formatTime(d.UpdatedAt),
	}
}

func fromDiscountItem(it discountItem) entities.Discount {
	usedBy := make([]entities.DiscountUsage, 0, len(it.UsedBy))
	for _, u := range it.UsedBy {
		usedBy = append(usedBy, entities.DiscountUsage{UserID: u.UserID, Amount: u.Amount, Timestamp: parseTime(u.Timestamp)})
	}
	return entities.Discount{
		ID:                it.ID,
		ContractorID:      it.ContractorID,
		Name:              it.Name,
		Description:       it.Description,
		Code:              it.Code,
		Type:              entities.DiscountType(it.Type),
		Value:             it.Value,
		MaxDiscount:       it.MaxDiscount,
		Tiers:             it.Tiers,
		BundleItems:       it.BundleItems,
		Conditions:        it.Conditions,
		StartDate:         parseTime(it.StartDate),
		EndDate:           parseTime(it.EndDate),
		MaxUsagePerUser:   it.MaxUsagePerUser,
		MaxTotalUsage:     it.MaxTotalUsage,
		CurrentUsageCount: it.CurrentUsageCount,
		Stackable:         it.Stackable,
		Priority:          it.Priority,
		IsActive:          it.IsActive,
		UsedBy:            usedBy,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
