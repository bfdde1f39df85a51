package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"costeo_propuestas/internal/domain/entities"
	"costeo_propuestas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCostPlansTableName = "cost_plans"

// Line items, params and totals are stored as JSON documents inside the
// item. The whole plan is replaced on every write, so there is no need to
// update nested attributes individually.
type costPlanItem struct {
	ID            string `dynamodbav:"id"`
	Title         string `dynamodbav:"title"`
	Assumptions   string `dynamodbav:"assumptions"`
	Professionals string `dynamodbav:"professionals"`
	Materials     string `dynamodbav:"materials"`
	Params        string `dynamodbav:"params"`
	Totals        string `dynamodbav:"totals"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// CostPlanDynamoRepository persists CostPlan entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CostPlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostPlanRepository = (*CostPlanDynamoRepository)(nil)

func NewCostPlanDynamoRepository(ddb *dynamodb.Client) *CostPlanDynamoRepository {
	return &CostPlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COST_PLANS_TABLE", defaultCostPlansTableName),
	}
}

func (r *CostPlanDynamoRepository) Create(ctx context.Context, p entities.CostPlan) (entities.CostPlan, error) {
	it, err := toCostPlanItem(p)
	if err != nil {
		return entities.CostPlan{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CostPlan{}, err
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
		return entities.CostPlan{}, err
	}
	return p, nil
}

func (r *CostPlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.CostPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostPlan{}, nil
	}

	var it costPlanItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostPlan{}, err
	}
	return fromCostPlanItem(it)
}

func (r *CostPlanDynamoRepository) List(ctx context.Context) ([]entities.CostPlan, error) {
	items := make([]entities.CostPlan, 0)

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
			var it costPlanItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			plan, err := fromCostPlanItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, plan)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *CostPlanDynamoRepository) Replace(ctx context.Context, p entities.CostPlan) (entities.CostPlan, error) {
	it, err := toCostPlanItem(p)
	if err != nil {
		return entities.CostPlan{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CostPlan{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CostPlan{}, nil
		}
		return entities.CostPlan{}, err
	}
	return p, nil
}

func (r *CostPlanDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCostPlanItem(p entities.CostPlan) (costPlanItem, error) {
	assumptions, err := json.Marshal(p.Assumptions)
	if err != nil {
		return costPlanItem{}, err
	}
	professionals, err := json.Marshal(p.Professionals)
	if err != nil {
		return costPlanItem{}, err
	}
	materials, err := json.Marshal(p.Materials)
	if err != nil {
		return costPlanItem{}, err
	}
	params, err := json.Marshal(p.Params)
	if err != nil {
		return costPlanItem{}, err
	}
	totals, err := json.Marshal(p.Totals)
	if err != nil {
		return costPlanItem{}, err
	}
	return costPlanItem{
		ID:            p.ID,
		Title:         p.Title,
		Assumptions:   string(assumptions),
		Professionals: string(professionals),
		Materials:     string(materials),
		Params:        string(params),
		Totals:        string(totals),
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromCostPlanItem(it costPlanItem) (entities.CostPlan, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	plan := entities.CostPlan{
		ID:            it.ID,
		Title:         it.Title,
		Assumptions:   []string{},
		Professionals: []entities.ProfessionalLine{},
		Materials:     []entities.MaterialLine{},
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.Assumptions != "" {
		if err := json.Unmarshal([]byte(it.Assumptions), &plan.Assumptions); err != nil {
			return entities.CostPlan{}, err
		}
	}
	if it.Professionals != "" {
		if err := json.Unmarshal([]byte(it.Professionals), &plan.Professionals); err != nil {
			return entities.CostPlan{}, err
		}
	}
	if it.Materials != "" {
		if err := json.Unmarshal([]byte(it.Materials), &plan.Materials); err != nil {
			return entities.CostPlan{}, err
		}
	}
	if it.Params != "" {
		if err := json.Unmarshal([]byte(it.Params), &plan.Params); err != nil {
			return entities.CostPlan{}, err
		}
	}
	if it.Totals != "" {
		if err := json.Unmarshal([]byte(it.Totals), &plan.Totals); err != nil {
			return entities.CostPlan{}, err
		}
	}
	return plan, nil
}
