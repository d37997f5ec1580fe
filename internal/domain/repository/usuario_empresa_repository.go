package repository

import (
	"context"

	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// UsuarioEmpresaRepository define el puerto de persistencia para UsuarioEmpresa (DIP).
// El email de usuario es único a nivel global (UNIQUE en usuarios_empresa).
type UsuarioEmpresaRepository interface {
	// Save persiste el usuario (upsert por ID).
	Save(ctx context.Context, usuario *entity.UsuarioEmpresa) error
	// FindByID devuelve nil, nil si el usuario no existe.
	FindByID(ctx context.Context, id valueobject.ID) (*entity.UsuarioEmpresa, error)
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.UsuarioEmpresa, error)
	FindAllByEmpresa(ctx context.Context, empresaID valueobject.ID, limit, offset int) ([]*entity.UsuarioEmpresa, error)
	CountByEmpresa(ctx context.Context, empresaID valueobject.ID) (int, error)
	CountActivosByEmpresa(ctx context.Context, empresaID valueobject.ID) (int, error)
	ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error)
	ExistsByEmailExcludingID(ctx context.Context, email valueobject.Email, excludeID valueobject.ID) (bool, error)
	Delete(ctx context.Context, id valueobject.ID) error
}
