package repository

import (
	"context"
	"sort"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

type budgetItem struct {
	ID              string                    `dynamodbav:"id"`
	UserID          string                    `dynamodbav:"user_id"`
	MinBudget       float64                   `dynamodbav:"min_budget"`
	MaxBudget       float64                   `dynamodbav:"max_budget"`
	Rooms           []entities.RoomDimensions `dynamodbav:"rooms"`
	TotalArea       float64                   `dynamodbav:"total_area"`
	Options         []entities.TierOption     `dynamodbav:"options"`
	RecommendedTier string                    `dynamodbav:"recommended_tier"`
	EstimatedCost   float64                   `dynamodbav:"estimated_cost"`
	WithinBudget    bool                      `dynamodbav:"within_budget"`
	CreatedAt       string                    `dynamodbav:"created_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type BudgetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoAPI) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(budgetItem{
		ID:              b.ID,
		UserID:          b.UserID,
		MinBudget:       b.MinBudget,
		MaxBudget:       b.MaxBudget,
		Rooms:           b.Rooms,
		TotalArea:       b.TotalArea,
		Options:         b.Options,
		RecommendedTier: string(b.RecommendedTier),
		EstimatedCost:   b.EstimatedCost,
		WithinBudget:    b.WithinBudget,
		CreatedAt:       formatTime(b.CreatedAt),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Budget, error) {
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
	budgets := make([]entities.Budget, 0, len(raw))
	for _, item := range raw {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		budgets = append(budgets, entities.Budget{
			ID:              it.ID,
			UserID:          it.UserID,
			MinBudget:       it.MinBudget,
			MaxBudget:       it.MaxBudget,
			Rooms:           it.Rooms,
			TotalArea:       it.TotalArea,
			Options:         it.Options,
			RecommendedTier: entities.PaintType(it.RecommendedTier),
			EstimatedCost:   it.EstimatedCost,
			WithinBudget:    it.WithinBudget,
			CreatedAt:       parseTime(it.CreatedAt),
		})
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].CreatedAt.After(budgets[j].CreatedAt) })
	return budgets, nil
}
