package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"costeo_propuestas/internal/domain/entities"
	"costeo_propuestas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProfessionalsTableName = "catalog_professionals"
	defaultMaterialsTableName     = "catalog_materials"
)

type catalogProfessionalItem struct {
	ID           string `dynamodbav:"id"`
	Role         string `dynamodbav:"role"`
	Profile      string `dynamodbav:"profile,omitempty"`
	MonthlyValue string `dynamodbav:"monthly_value"`
	Source       string `dynamodbav:"source,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type catalogMaterialItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Unit      string `dynamodbav:"unit,omitempty"`
	UnitPrice string `dynamodbav:"unit_price"`
	Source    string `dynamodbav:"source,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CatalogProfessionalDynamoRepository persists CatalogProfessional entities
// in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Catalogs are small (hundreds of rows), so List is a plain Scan; ranking
// and filtering happen in the usecase layer.

type CatalogProfessionalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogProfessionalRepository = (*CatalogProfessionalDynamoRepository)(nil)

func NewCatalogProfessionalDynamoRepository(ddb *dynamodb.Client) *CatalogProfessionalDynamoRepository {
	return &CatalogProfessionalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_PROFESSIONALS_TABLE", defaultProfessionalsTableName),
	}
}

func (r *CatalogProfessionalDynamoRepository) Create(ctx context.Context, p entities.CatalogProfessional) (entities.CatalogProfessional, error) {
	av, err := attributevalue.MarshalMap(toProfessionalItem(p))
	if err != nil {
		return entities.CatalogProfessional{}, err
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
		return entities.CatalogProfessional{}, err
	}
	return p, nil
}

func (r *CatalogProfessionalDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogProfessional, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogProfessional{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogProfessional{}, nil
	}

	var it catalogProfessionalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogProfessional{}, err
	}
	return fromProfessionalItem(it), nil
}

func (r *CatalogProfessionalDynamoRepository) List(ctx context.Context) ([]entities.CatalogProfessional, error) {
	items := make([]entities.CatalogProfessional, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it catalogProfessionalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromProfessionalItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *CatalogProfessionalDynamoRepository) Update(ctx context.Context, p entities.CatalogProfessional) (entities.CatalogProfessional, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #role = :role, #profile = :profile, #monthly_value = :monthly_value, #source = :source, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role":          &types.AttributeValueMemberS{Value: p.Role},
			":profile":       &types.AttributeValueMemberS{Value: p.Profile},
			":monthly_value": &types.AttributeValueMemberN{Value: floatToString(p.MonthlyValue)},
			":source":        &types.AttributeValueMemberS{Value: p.Source},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#role":          "role",
			"#profile":       "profile",
			"#monthly_value": "monthly_value",
			"#source":        "source",
			"#updated_at":    "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CatalogProfessional{}, nil
		}
		return entities.CatalogProfessional{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CatalogProfessional{}, nil
	}

	var it catalogProfessionalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CatalogProfessional{}, err
	}
	return fromProfessionalItem(it), nil
}

func (r *CatalogProfessionalDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// CatalogMaterialDynamoRepository persists CatalogMaterial entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CatalogMaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogMaterialRepository = (*CatalogMaterialDynamoRepository)(nil)

func NewCatalogMaterialDynamoRepository(ddb *dynamodb.Client) *CatalogMaterialDynamoRepository {
	return &CatalogMaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *CatalogMaterialDynamoRepository) Create(ctx context.Context, m entities.CatalogMaterial) (entities.CatalogMaterial, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.CatalogMaterial{}, err
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
		return entities.CatalogMaterial{}, err
	}
	return m, nil
}

func (r *CatalogMaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogMaterial, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogMaterial{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogMaterial{}, nil
	}

	var it catalogMaterialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogMaterial{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *CatalogMaterialDynamoRepository) List(ctx context.Context) ([]entities.CatalogMaterial, error) {
	items := make([]entities.CatalogMaterial, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it catalogMaterialItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromMaterialItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *CatalogMaterialDynamoRepository) Update(ctx context.Context, m entities.CatalogMaterial) (entities.CatalogMaterial, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: m.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #unit = :unit, #unit_price = :unit_price, #source = :source, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: m.Name},
			":unit":       &types.AttributeValueMemberS{Value: m.Unit},
			":unit_price": &types.AttributeValueMemberN{Value: floatToString(m.UnitPrice)},
			":source":     &types.AttributeValueMemberS{Value: m.Source},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#name":       "name",
			"#unit":       "unit",
			"#unit_price": "unit_price",
			"#source":     "source",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CatalogMaterial{}, nil
		}
		return entities.CatalogMaterial{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CatalogMaterial{}, nil
	}

	var it catalogMaterialItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CatalogMaterial{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *CatalogMaterialDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProfessionalItem(p entities.CatalogProfessional) catalogProfessionalItem {
	return catalogProfessionalItem{
		ID:           p.ID,
		Role:         p.Role,
		Profile:      p.Profile,
		MonthlyValue: floatToString(p.MonthlyValue),
		Source:       p.Source,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProfessionalItem(it catalogProfessionalItem) entities.CatalogProfessional {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	monthlyValue, _ := strconv.ParseFloat(it.MonthlyValue, 64)
	return entities.CatalogProfessional{
		ID:           it.ID,
		Role:         it.Role,
		Profile:      it.Profile,
		MonthlyValue: monthlyValue,
		Source:       it.Source,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func toMaterialItem(m entities.CatalogMaterial) catalogMaterialItem {
	return catalogMaterialItem{
		ID:        m.ID,
		Name:      m.Name,
		Unit:      m.Unit,
		UnitPrice: floatToString(m.UnitPrice),
		Source:    m.Source,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMaterialItem(it catalogMaterialItem) entities.CatalogMaterial {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	unitPrice, _ := strconv.ParseFloat(it.UnitPrice, 64)
	return entities.CatalogMaterial{
		ID:        it.ID,
		Name:      it.Name,
		Unit:      it.Unit,
		UnitPrice: unitPrice,
		Source:    it.Source,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
