package database

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableSpec describes a table keyed by a single string attribute, with
// optional string-keyed global secondary indexes projecting all attributes.
type TableSpec struct {
	Name    string
	HashKey string
	Indexes []IndexSpec
}

type IndexSpec struct {
	Name    string
	HashKey string
}

// TableAPI is the subset of *dynamodb.Client needed to provision tables.
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableAPI = (*dynamodb.Client)(nil)

// EnsureTables creates every table that does not exist yet. Existing tables
// are left untouched.
func EnsureTables(ctx context.Context, api TableAPI, specs []TableSpec) error {
	for _, spec := range specs {
		_, err := api.CreateTable(ctx, createTableInput(spec))
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				zap.L().Info("[database] table already exists", zap.String("table", spec.Name))
				continue
			}
			zap.L().Error("[database] create table failed", zap.String("table", spec.Name), zap.Error(err))
			return err
		}
		zap.L().Info("[database] table created", zap.String("table", spec.Name))
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{
		AttributeName: aws.String(spec.HashKey),
		AttributeType: types.ScalarAttributeTypeS,
	}}
	seen := map[string]bool{spec.HashKey: true}

	var gsis []types.GlobalSecondaryIndex
	for _, idx := range spec.Indexes {
		if !seen[idx.HashKey] {
			attrs = append(attrs, types.AttributeDefinition{
				AttributeName: aws.String(idx.HashKey),
				AttributeType: types.ScalarAttributeTypeS,
			})
			seen[idx.HashKey] = true
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(idx.Name),
			KeySchema: []types.KeySchemaElement{{
				AttributeName: aws.String(idx.HashKey),
				KeyType:       types.KeyTypeHash,
			}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:            aws.String(spec.Name),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: attrs,
		KeySchema: []types.KeySchemaElement{{
			AttributeName: aws.String(spec.HashKey),
			KeyType:       types.KeyTypeHash,
		}},
		GlobalSecondaryIndexes: gsis,
	}
}
