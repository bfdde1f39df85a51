package interfaces

import (
	"context"

	"costeo_propuestas/internal/domain/entities"
)

// ICostPlanRepository abstracts DynamoDB persistence for saved cost plans.
//
// Plans are replaced whole: line items are immutable value objects, so
// there is no partial-update operation.
type ICostPlanRepository interface {
	Create(ctx context.Context, p entities.CostPlan) (entities.CostPlan, error)
	GetByID(ctx context.Context, id string) (entities.CostPlan, error)
	List(ctx context.Context) ([]entities.CostPlan, error)
	Replace(ctx context.Context, p entities.CostPlan) (entities.CostPlan, error)
	Delete(ctx context.Context, id string) error
}
