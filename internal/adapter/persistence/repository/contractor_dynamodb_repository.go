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

const defaultContractorsTableName = "contractors"

type contractorItem struct {
	ID           string   `dynamodbav:"id"`
	UserID       string   `dynamodbav:"user_id"`
	BusinessName string   `dynamodbav:"business_name"`
	Email        string   `dynamodbav:"email,omitempty"`
	Phone        string   `dynamodbav:"phone,omitempty"`
	Location     string   `dynamodbav:"location,omitempty"`
	Services     []string `dynamodbav:"services,omitempty"`
	HoursPerDay  float64  `dynamodbav:"hours_per_day"`
	WorkSpeed    float64  `dynamodbav:"work_speed"`
	HourlyRate   float64  `dynamodbav:"hourly_rate"`
	Available    bool     `dynamodbav:"available"`
	Rating       float64  `dynamodbav:"rating"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// ContractorDynamoRepository persists Contractor profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type ContractorDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IContractorRepository = (*ContractorDynamoRepository)(nil)

func NewContractorDynamoRepository(ddb DynamoAPI) *ContractorDynamoRepository {
	return &ContractorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTORS_TABLE", defaultContractorsTableName),
	}
}

func (r *ContractorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contractor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	})
	if err != nil {
		return entities.Contractor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contractor{}, nil
	}
	var it contractorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contractor{}, err
	}
	return fromContractorItem(it), nil
}

func (r *ContractorDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Contractor, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil || len(raw) == 0 {
		return entities.Contractor{}, err
	}
	var it contractorItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.Contractor{}, err
	}
	return fromContractorItem(it), nil
}

// List returns available contractors first, then by rating.
func (r *ContractorDynamoRepository) List(ctx context.Context) ([]entities.Contractor, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Contractor, 0, len(raw))
	for _, item := range raw {
		var it contractorItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromContractorItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Available != out[j].Available {
			return out[i].Available
		}
		return out[i].Rating > out[j].Rating
	})
	return out, nil
}

func (r *ContractorDynamoRepository) Save(ctx context.Context, c entities.Contractor) (entities.Contractor, error) {
	av, err := attributevalue.MarshalMap(toContractorItem(c))
	if err != nil {
		return entities.Contractor{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Contractor{}, err
	}
	return c, nil
}

func toContractorItem(c entities.Contractor) contractorItem {
	return contractorItem{
		ID:           c.ID,
		UserID:       c.UserID,
		BusinessName: c.BusinessName,
		Email:        c.Email,
		Phone:        c.Phone,
		Location:     c.Location,
		Services:     c.Services,
		HoursPerDay:  c.HoursPerDay,
		WorkSpeed:    c.WorkSpeed,
		HourlyRate:   c.HourlyRate,
		Available:    c.Available,
		Rating:       c.Rating,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromContractorItem(it contractorItem) entities.Contractor {
	return entities.Contractor{
		ID:           it.ID,
		UserID:       it.UserID,
		BusinessName: it.BusinessName,
		Email:        it.Email,
		Phone:        it.Phone,
		Location:     it.Location,
		Services:     it.Services,
		HoursPerDay:  it.HoursPerDay,
		WorkSpeed:    it.WorkSpeed,
		HourlyRate:   it.HourlyRate,
		Available:    it.Available,
		Rating:       it.Rating,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
