package repository

import (
	"context"

	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// PlanRepository define el puerto de persistencia para Plan (DIP).
// La implementación vive en infrastructure.
type PlanRepository interface {
	// Save persiste el plan (upsert por ID).
	Save(ctx context.Context, plan *entity.Plan) error
	// FindByID devuelve nil, nil si el plan no existe.
	FindByID(ctx context.Context, id valueobject.ID) (*entity.Plan, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Plan, error)
	Count(ctx context.Context) (int, error)
	Exists(ctx context.Context, id valueobject.ID) (bool, error)
	Delete(ctx context.Context, id valueobject.ID) error
}
