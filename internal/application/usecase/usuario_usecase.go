package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/suscripciones-api/internal/application/dto"
	"github.com/tu-usuario/suscripciones-api/internal/domain"
	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

const minPasswordLen = 8

// UsuarioUseCase casos de uso CRUD para usuarios de empresa. Las altas
// respetan el límite de usuarios del plan de la empresa.
type UsuarioUseCase struct {
	usuarioRepo repository.UsuarioEmpresaRepository
	empresaRepo repository.EmpresaRepository
	planRepo    repository.PlanRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(
	usuarioRepo repository.UsuarioEmpresaRepository,
	empresaRepo repository.EmpresaRepository,
	planRepo repository.PlanRepository,
) *UsuarioUseCase {
	return &UsuarioUseCase{
		usuarioRepo: usuarioRepo,
		empresaRepo: empresaRepo,
		planRepo:    planRepo,
	}
}

// Create crea un usuario dentro de la empresa si el plan admite uno más.
func (uc *UsuarioUseCase) Create(ctx context.Context, empresaID string, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	empID, err := valueobject.NewID(empresaID)
	if err != nil {
		return nil, err
	}
	empresa, err := uc.empresaRepo.FindByID(ctx, empID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}

	nombre, err := valueobject.NewUsuarioNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	rol := valueobject.RolEstandar()
	if in.Rol != "" {
		if rol, err = valueobject.NewRol(in.Rol); err != nil {
			return nil, err
		}
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}

	taken, err := uc.usuarioRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	plan, err := uc.planRepo.FindByID(ctx, empresa.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	activos, err := uc.usuarioRepo.CountActivosByEmpresa(ctx, empID)
	if err != nil {
		return nil, err
	}
	if !plan.UserLimit.CanAddUsers(activos, 1) {
		return nil, fmt.Errorf("%w: el plan permite un máximo de %d usuarios activos", domain.ErrConflict, plan.UserLimit.Value())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	usuario := entity.NuevoUsuarioEmpresa(nombre, email, string(hash), empID, rol)
	if err := uc.usuarioRepo.Save(ctx, usuario); err != nil {
		return nil, err
	}

	resp := dto.NewUsuarioResponse(usuario)
	return &resp, nil
}

// GetByID obtiene un usuario de la empresa indicada.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, empresaID, id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.findScoped(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUsuarioResponse(usuario)
	return &resp, nil
}

// List devuelve los usuarios de la empresa paginados.
func (uc *UsuarioUseCase) List(ctx context.Context, empresaID string, page, limit int) (*dto.UsuarioListResponse, error) {
	empID, err := valueobject.NewID(empresaID)
	if err != nil {
		return nil, err
	}
	empresa, err := uc.empresaRepo.FindByID(ctx, empID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}
	if err := dto.ValidatePageLimit(page, limit); err != nil {
		return nil, err
	}
	offset := (page - 1) * limit

	usuarios, err := uc.usuarioRepo.FindAllByEmpresa(ctx, empID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.usuarioRepo.CountByEmpresa(ctx, empID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUsuarioListResponse(usuarios, page, limit, total)
	return &resp, nil
}

// Update actualiza nombre y email; rol, contraseña y estado activo solo si vienen.
// Reactivar un usuario cuenta contra el límite del plan.
func (uc *UsuarioUseCase) Update(ctx context.Context, empresaID, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.findScoped(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}

	nombre, err := valueobject.NewUsuarioNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	taken, err := uc.usuarioRepo.ExistsByEmailExcludingID(ctx, email, usuario.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	var rol *valueobject.Rol
	if in.Rol != "" {
		r, err := valueobject.NewRol(in.Rol)
		if err != nil {
			return nil, err
		}
		rol = &r
	}
	usuario.Actualizar(nombre, email, rol)

	if in.Password != "" {
		if len(in.Password) < minPasswordLen {
			return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		usuario.CambiarPassword(string(hash))
	}

	if in.Activo != nil && *in.Activo != usuario.Activo {
		if *in.Activo {
			if err := uc.verificarLimitePlan(ctx, usuario.EmpresaID); err != nil {
				return nil, err
			}
			usuario.Activar()
		} else {
			usuario.Desactivar()
		}
	}

	if err := uc.usuarioRepo.Save(ctx, usuario); err != nil {
		return nil, err
	}

	resp := dto.NewUsuarioResponse(usuario)
	return &resp, nil
}

// Delete elimina un usuario de la empresa.
func (uc *UsuarioUseCase) Delete(ctx context.Context, empresaID, id string) error {
	usuario, err := uc.findScoped(ctx, empresaID, id)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.Delete(ctx, usuario.ID)
}

// findScoped busca el usuario y verifica que pertenezca a la empresa de la ruta.
// Un usuario de otra empresa se reporta como no encontrado para no filtrar IDs.
func (uc *UsuarioUseCase) findScoped(ctx context.Context, empresaID, id string) (*entity.UsuarioEmpresa, error) {
	empID, err := valueobject.NewID(empresaID)
	if err != nil {
		return nil, err
	}
	usuarioID, err := valueobject.NewID(id)
	if err != nil {
		return nil, err
	}
	empresa, err := uc.empresaRepo.FindByID(ctx, empID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}
	usuario, err := uc.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.EmpresaID.Equals(empID) {
		return nil, domain.ErrUsuarioNotFound
	}
	return usuario, nil
}

// verificarLimitePlan comprueba que la empresa pueda sumar un usuario activo más.
func (uc *UsuarioUseCase) verificarLimitePlan(ctx context.Context, empresaID valueobject.ID) error {
	empresa, err := uc.empresaRepo.FindByID(ctx, empresaID)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrEmpresaNotFound
	}
	plan, err := uc.planRepo.FindByID(ctx, empresa.PlanID)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.ErrPlanNotFound
	}
	activos, err := uc.usuarioRepo.CountActivosByEmpresa(ctx, empresaID)
	if err != nil {
		return err
	}
	if !plan.UserLimit.CanAddUsers(activos, 1) {
		return fmt.Errorf("%w: el plan permite un máximo de %d usuarios activos", domain.ErrConflict, plan.UserLimit.Value())
	}
	return nil
}
