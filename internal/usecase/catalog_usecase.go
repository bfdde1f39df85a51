package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"costeo_propuestas/internal/domain/costing"
	"costeo_propuestas/internal/domain/entities"
	"costeo_propuestas/internal/domain/search"
	"costeo_propuestas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCatalogRecordNotFound = errors.New("catalog record not found")
	ErrInvalidCatalogID      = errors.New("invalid catalog record id")
	ErrInvalidCatalogRecord  = errors.New("invalid catalog record")
)

// PendingQuotationSource marks records whose price has no confirmed
// source yet; real price-lookup integrations are deferred.
const PendingQuotationSource = "pendiente de cotización"

// ICatalogUseCase exposes the human-maintained price catalogs used as
// pricing reference by the estimation pipeline.
type ICatalogUseCase interface {
	CreateProfessional(ctx context.Context, p entities.CatalogProfessional) (entities.CatalogProfessional, error)
	GetProfessional(ctx context.Context, id string) (entities.CatalogProfessional, error)
	ListProfessionals(ctx context.Context) ([]entities.CatalogProfessional, error)
	UpdateProfessional(ctx context.Context, p entities.CatalogProfessional) (entities.CatalogProfessional, error)
	DeleteProfessional(ctx context.Context, id string) error
	SearchProfessionals(ctx context.Context, query string) ([]entities.CatalogProfessional, error)

	CreateMaterial(ctx context.Context, m entities.CatalogMaterial) (entities.CatalogMaterial, error)
	GetMaterial(ctx context.Context, id string) (entities.CatalogMaterial, error)
	ListMaterials(ctx context.Context) ([]entities.CatalogMaterial, error)
	UpdateMaterial(ctx context.Context, m entities.CatalogMaterial) (entities.CatalogMaterial, error)
	DeleteMaterial(ctx context.Context, id string) error
	SearchMaterials(ctx context.Context, query string) ([]entities.CatalogMaterial, error)
}

type CatalogUseCase struct {
	professionals interfaces.ICatalogProfessionalRepository
	materials     interfaces.ICatalogMaterialRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(professionals interfaces.ICatalogProfessionalRepository, materials interfaces.ICatalogMaterialRepository) *CatalogUseCase {
	return &CatalogUseCase{professionals: professionals, materials: materials}
}

func (u *CatalogUseCase) CreateProfessional(ctx context.Context, p entities.CatalogProfessional) (entities.CatalogProfessional, error) {
	p.Role = strings.TrimSpace(p.Role)
	if p.Role == "" {
		return entities.CatalogProfessional{}, ErrInvalidCatalogRecord
	}
	p.MonthlyValue = costing.CoerceNumber(p.MonthlyValue, 0, costing.MaxMoney, 0)
	if p.Source == "" {
		p.Source = PendingQuotationSource
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.professionals.Create(ctx, p)
}

func (u *CatalogUseCase) GetProfessional(ctx context.Context, id string) (entities.CatalogProfessional, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogProfessional{}, ErrInvalidCatalogID
	}
	p, err := u.professionals.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogProfessional{}, err
	}
	if p.ID == "" {
		return entities.CatalogProfessional{}, ErrCatalogRecordNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProfessionals(ctx context.Context) ([]entities.CatalogProfessional, error) {
	return u.professionals.List(ctx)
}

func (u *CatalogUseCase) UpdateProfessional(ctx context.Context, p entities.CatalogProfessional) (entities.CatalogProfessional, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.CatalogProfessional{}, ErrInvalidCatalogID
	}
	p.Role = strings.TrimSpace(p.Role)
	if p.Role == "" {
		return entities.CatalogProfessional{}, ErrInvalidCatalogRecord
	}
	p.MonthlyValue = costing.CoerceNumber(p.MonthlyValue, 0, costing.MaxMoney, 0)
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.professionals.Update(ctx, p)
	if err != nil {
		return entities.CatalogProfessional{}, err
	}
	if updated.ID == "" {
		return entities.CatalogProfessional{}, ErrCatalogRecordNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteProfessional(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	return u.professionals.Delete(ctx, id)
}

func (u *CatalogUseCase) SearchProfessionals(ctx context.Context, query string) ([]entities.CatalogProfessional, error) {
	all, err := u.professionals.List(ctx)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(all))
	for i, p := range all {
		texts[i] = p.Role + " " + p.Profile
	}

	matches := search.Rank(query, texts)
	out := make([]entities.CatalogProfessional, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out, nil
}

func (u *CatalogUseCase) CreateMaterial(ctx context.Context, m entities.CatalogMaterial) (entities.CatalogMaterial, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.CatalogMaterial{}, ErrInvalidCatalogRecord
	}
	m.UnitPrice = costing.CoerceNumber(m.UnitPrice, 0, costing.MaxMoney, 0)
	if m.Source == "" {
		m.Source = PendingQuotationSource
	}

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	return u.materials.Create(ctx, m)
}

func (u *CatalogUseCase) GetMaterial(ctx context.Context, id string) (entities.CatalogMaterial, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogMaterial{}, ErrInvalidCatalogID
	}
	m, err := u.materials.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogMaterial{}, err
	}
	if m.ID == "" {
		return entities.CatalogMaterial{}, ErrCatalogRecordNotFound
	}
	return m, nil
}

func (u *CatalogUseCase) ListMaterials(ctx context.Context) ([]entities.CatalogMaterial, error) {
	return u.materials.List(ctx)
}

func (u *CatalogUseCase) UpdateMaterial(ctx context.Context, m entities.CatalogMaterial) (entities.CatalogMaterial, error) {
	m.ID = strings.TrimSpace(m.ID)
	if m.ID == "" {
		return entities.CatalogMaterial{}, ErrInvalidCatalogID
	}
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.CatalogMaterial{}, ErrInvalidCatalogRecord
	}
	m.UnitPrice = costing.CoerceNumber(m.UnitPrice, 0, costing.MaxMoney, 0)
	m.UpdatedAt = time.Now().UTC()

	updated, err := u.materials.Update(ctx, m)
	if err != nil {
		return entities.CatalogMaterial{}, err
	}
	if updated.ID == "" {
		return entities.CatalogMaterial{}, ErrCatalogRecordNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteMaterial(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	return u.materials.Delete(ctx, id)
}

func (u *CatalogUseCase) SearchMaterials(ctx context.Context, query string) ([]entities.CatalogMaterial, error) {
	all, err := u.materials.List(ctx)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(all))
	for i, m := range all {
		texts[i] = m.Name + " " + m.Unit
	}

	matches := search.Rank(query, texts)
	out := make([]entities.CatalogMaterial, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out, nil
}
