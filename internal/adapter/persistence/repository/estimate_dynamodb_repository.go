package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	userIDIndex               = "user_id-index"
)

type estimateItem struct {
	ID             string                  `dynamodbav:"id"`
	UserID         string                  `dynamodbav:"user_id"`
	ContractorID   string                  `dynamodbav:"contractor_id"`
	ProjectDetails entities.ProjectDetails `dynamodbav:"project_details"`
	Timeline       entities.Timeline       `dynamodbav:"timeline"`
	Cost           entities.CostBreakdown  `dynamodbav:"cost"`
	Pricing        entities.Pricing        `dynamodbav:"pricing"`
	Status         string                  `dynamodbav:"status"`
	Notes          string                  `dynamodbav:"notes,omitempty"`
	CreatedAt      string                  `dynamodbav:"created_at"`
	UpdatedAt      string                  `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists ProjectEstimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.ProjectEstimate) (entities.ProjectEstimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.ProjectEstimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ProjectEstimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProjectEstimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProjectEstimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProjectEstimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProjectEstimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.ProjectEstimate, error) {
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

	estimates := make([]entities.ProjectEstimate, 0, len(raw))
	for _, item := range raw {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		estimates = append(estimates, fromEstimateItem(it))
	}
	sort.Slice(estimates, func(i, j int) bool { return estimates[i].CreatedAt.After(estimates[j].CreatedAt) })
	return estimates, nil
}

func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.ProjectEstimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	})
	return err
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ProjectEstimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ProjectEstimate{}, nil
		}
		return entities.ProjectEstimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ProjectEstimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ProjectEstimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.ProjectEstimate) estimateItem {
	return estimateItem{
		ID:             e.ID,
		UserID:         e.UserID,
		ContractorID:   e.ContractorID,
		ProjectDetails: e.ProjectDetails,
		Timeline:       e.Timeline,
		Cost:           e.Cost,
		Pricing:        e.Pricing,
		Status:         string(e.Status),
		Notes:          e.Notes,
		CreatedAt:      formatTime(e.CreatedAt),
		UpdatedAt:      formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.ProjectEstimate {
	return entities.ProjectEstimate{
		ID:             it.ID,
		UserID:         it.UserID,
		ContractorID:   it.ContractorID,
		ProjectDetails: it.ProjectDetails,
		Timeline:       it.Timeline,
		Cost:           it.Cost,
		Pricing:        it.Pricing,
		Status:         entities.EstimateStatus(it.Status),
		Notes:          it.Notes,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
