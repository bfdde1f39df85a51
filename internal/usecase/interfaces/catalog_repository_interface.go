package interfaces

import (
	"context"

	"costeo_propuestas/internal/domain/entities"
)

// ICatalogProfessionalRepository abstracts DynamoDB persistence for the
// professional-role price catalog.
//
// Repositories return zero-value entities (empty ID) for "not found";
// usecases translate that into their own sentinel errors.
type ICatalogProfessionalRepository interface {
	Create(ctx context.Context, p entities.CatalogProfessional) (entities.CatalogProfessional, error)
	GetByID(ctx context.Context, id string) (entities.CatalogProfessional, error)
	List(ctx context.Context) ([]entities.CatalogProfessional, error)
	Update(ctx context.Context, p entities.CatalogProfessional) (entities.CatalogProfessional, error)
	Delete(ctx context.Context, id string) error
}

// ICatalogMaterialRepository abstracts DynamoDB persistence for the
// material price catalog.
type ICatalogMaterialRepository interface {
	Create(ctx context.Context, m entities.CatalogMaterial) (entities.CatalogMaterial, error)
	GetByID(ctx context.Context, id string) (entities.CatalogMaterial, error)
	List(ctx context.Context) ([]entities.CatalogMaterial, error)
	Update(ctx context.Context, m entities.CatalogMaterial) (entities.CatalogMaterial, error)
	Delete(ctx context.Context, id string) error
}
