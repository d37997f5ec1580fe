package repository

import (
	"context"

	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// EmpresaRepository define el puerto de persistencia para Empresa (DIP).
type EmpresaRepository interface {
	// Save persiste la empresa (upsert por ID).
	Save(ctx context.Context, empresa *entity.Empresa) error
	// FindByID devuelve nil, nil si la empresa no existe.
	FindByID(ctx context.Context, id valueobject.ID) (*entity.Empresa, error)
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.Empresa, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Empresa, error)
	FindByPlanID(ctx context.Context, planID valueobject.ID) ([]*entity.Empresa, error)
	Count(ctx context.Context) (int, error)
	ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error)
	ExistsByEmailExcludingID(ctx context.Context, email valueobject.Email, excludeID valueobject.ID) (bool, error)
	// CountUsuariosActivos cuenta los usuarios activos de la empresa (guardia de borrado).
	CountUsuariosActivos(ctx context.Context, empresaID valueobject.ID) (int, error)
	Delete(ctx context.Context, id valueobject.ID) error
}
