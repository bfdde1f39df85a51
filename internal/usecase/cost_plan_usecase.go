package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"costeo_propuestas/internal/domain/costing"
	"costeo_propuestas/internal/domain/entities"
	"costeo_propuestas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCostPlanNotFound = errors.New("cost plan not found")
	ErrInvalidPlanID    = errors.New("invalid plan id")
	ErrInvalidPlanTitle = errors.New("invalid plan title")
)

// ICostPlanUseCase exposes saved-plan operations.
//
// The stored {professionals, materials, params} triple is the source of
// truth; totals are recomputed through the totals engine on every write
// and every read, so a saved plan can never drift from its parameters.
type ICostPlanUseCase interface {
	Save(ctx context.Context, title string, plan entities.EstimationPlan, params entities.CostParameters) (entities.CostPlan, error)
	GetByID(ctx context.Context, id string) (entities.CostPlan, error)
	List(ctx context.Context) ([]entities.CostPlan, error)
	Replace(ctx context.Context, id string, title string, plan entities.EstimationPlan, params entities.CostParameters) (entities.CostPlan, error)
	Delete(ctx context.Context, id string) error
}

type CostPlanUseCase struct {
	repo interfaces.ICostPlanRepository
}

var _ ICostPlanUseCase = (*CostPlanUseCase)(nil)

func NewCostPlanUseCase(repo interfaces.ICostPlanRepository) *CostPlanUseCase {
	return &CostPlanUseCase{repo: repo}
}

func (u *CostPlanUseCase) Save(ctx context.Context, title string, plan entities.EstimationPlan, params entities.CostParameters) (entities.CostPlan, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.CostPlan{}, ErrInvalidPlanTitle
	}

	normalized := costing.NormalizePlan(plan)
	now := time.Now().UTC()
	p := entities.CostPlan{
		ID:            uuid.NewString(),
		Title:         title,
		Assumptions:   normalized.Assumptions,
		Professionals: normalized.Professionals,
		Materials:     normalized.Materials,
		Params:        params,
		Totals:        costing.ComputeTotals(normalized.Professionals, normalized.Materials, params),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, p)
}

func (u *CostPlanUseCase) GetByID(ctx context.Context, id string) (entities.CostPlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CostPlan{}, ErrInvalidPlanID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CostPlan{}, err
	}
	if p.ID == "" {
		return entities.CostPlan{}, ErrCostPlanNotFound
	}

	// Recompute on read: stored totals are a convenience copy only.
	p.Totals = costing.ComputeTotals(p.Professionals, p.Materials, p.Params)
	return p, nil
}

func (u *CostPlanUseCase) List(ctx context.Context) ([]entities.CostPlan, error) {
	plans, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		plans[i].Totals = costing.ComputeTotals(plans[i].Professionals, plans[i].Materials, plans[i].Params)
	}
	return plans, nil
}

func (u *CostPlanUseCase) Replace(ctx context.Context, id string, title string, plan entities.EstimationPlan, params entities.CostParameters) (entities.CostPlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CostPlan{}, ErrInvalidPlanID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.CostPlan{}, ErrInvalidPlanTitle
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CostPlan{}, err
	}
	if existing.ID == "" {
		return entities.CostPlan{}, ErrCostPlanNotFound
	}

	normalized := costing.NormalizePlan(plan)
	existing.Title = title
	existing.Assumptions = normalized.Assumptions
	existing.Professionals = normalized.Professionals
	existing.Materials = normalized.Materials
	existing.Params = params
	existing.Totals = costing.ComputeTotals(normalized.Professionals, normalized.Materials, params)
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Replace(ctx, existing)
	if err != nil {
		return entities.CostPlan{}, err
	}
	if updated.ID == "" {
		return entities.CostPlan{}, ErrCostPlanNotFound
	}
	return updated, nil
}

func (u *CostPlanUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPlanID
	}
	return u.repo.Delete(ctx, id)
}
