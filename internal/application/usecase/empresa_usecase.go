package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/application/dto"
	"github.com/tu-usuario/suscripciones-api/internal/domain"
	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// Motivos registrados en el historial cuando el cambio no trae uno explícito.
const motivoAltaInicial = "Alta inicial"

const maxMotivoLen = 500

// EmpresaUseCase casos de uso CRUD para empresas y su historial de suscripción.
// Las escrituras que tocan empresa e historial van dentro de una transacción.
type EmpresaUseCase struct {
	empresaRepo   repository.EmpresaRepository
	planRepo      repository.PlanRepository
	historialRepo repository.HistorialRepository
	tx            SuscripcionTxRunner
}

// NewEmpresaUseCase construye el caso de uso.
func NewEmpresaUseCase(
	empresaRepo repository.EmpresaRepository,
	planRepo repository.PlanRepository,
	historialRepo repository.HistorialRepository,
	tx SuscripcionTxRunner,
) *EmpresaUseCase {
	return &EmpresaUseCase{
		empresaRepo:   empresaRepo,
		planRepo:      planRepo,
		historialRepo: historialRepo,
		tx:            tx,
	}
}

// Create registra una empresa con su plan inicial y abre el primer registro
// de historial con el precio vigente del plan.
func (uc *EmpresaUseCase) Create(ctx context.Context, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	nombre, err := valueobject.NewEmpresaNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	planID, err := valueobject.NewID(in.PlanID)
	if err != nil {
		return nil, err
	}

	plan, err := uc.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}

	taken, err := uc.empresaRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	empresa := entity.NuevaEmpresa(nombre, email, planID)
	historial := entity.NuevoHistorial(empresa.ID, planID, motivoAltaInicial, plan.MonthlyPrice)

	err = uc.tx.Run(ctx, func(empresaRepo repository.EmpresaRepository, historialRepo repository.HistorialRepository) error {
		if err := empresaRepo.Save(ctx, empresa); err != nil {
			return err
		}
		return historialRepo.Save(ctx, historial)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewEmpresaResponse(empresa)
	return &resp, nil
}

// GetByID obtiene una empresa por ID.
func (uc *EmpresaUseCase) GetByID(ctx context.Context, id string) (*dto.EmpresaResponse, error) {
	empresaID, err := valueobject.NewID(id)
	if err != nil {
		return nil, err
	}
	empresa, err := uc.empresaRepo.FindByID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}
	resp := dto.NewEmpresaResponse(empresa)
	return &resp, nil
}

// List devuelve las empresas paginadas.
func (uc *EmpresaUseCase) List(ctx context.Context, page, limit int) (*dto.EmpresaListResponse, error) {
	if err := dto.ValidatePageLimit(page, limit); err != nil {
		return nil, err
	}
	offset := (page - 1) * limit

	empresas, err := uc.empresaRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.empresaRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := dto.NewEmpresaListResponse(empresas, page, limit, total)
	return &resp, nil
}

// Update actualiza nombre y email; si viene plan_id también cambia el plan.
// El cambio de plan exige motivo, cierra el registro vigente del historial y
// abre uno nuevo con el precio del plan destino, todo en una transacción.
func (uc *EmpresaUseCase) Update(ctx context.Context, id string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresaID, err := valueobject.NewID(id)
	if err != nil {
		return nil, err
	}
	empresa, err := uc.empresaRepo.FindByID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}

	nombre, err := valueobject.NewEmpresaNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	taken, err := uc.empresaRepo.ExistsByEmailExcludingID(ctx, email, empresaID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	empresa.Actualizar(nombre, email)

	cambioPlan := in.PlanID != ""
	var historial *entity.HistorialSuscripcion
	if cambioPlan {
		motivo := strings.TrimSpace(in.MotivoCambio)
		if motivo == "" {
			return nil, fmt.Errorf("%w: el motivo del cambio es obligatorio cuando se cambia el plan", domain.ErrInvalidInput)
		}
		if len(motivo) > maxMotivoLen {
			return nil, fmt.Errorf("%w: el motivo del cambio no puede superar %d caracteres", domain.ErrInvalidInput, maxMotivoLen)
		}

		nuevoPlanID, err := valueobject.NewID(in.PlanID)
		if err != nil {
			return nil, err
		}
		plan, err := uc.planRepo.FindByID(ctx, nuevoPlanID)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, domain.ErrPlanNotFound
		}
		if err := empresa.CambiarPlan(nuevoPlanID); err != nil {
			return nil, err
		}
		historial = entity.NuevoHistorial(empresa.ID, nuevoPlanID, motivo, plan.MonthlyPrice)
	}

	err = uc.tx.Run(ctx, func(empresaRepo repository.EmpresaRepository, historialRepo repository.HistorialRepository) error {
		if err := empresaRepo.Save(ctx, empresa); err != nil {
			return err
		}
		if historial == nil {
			return nil
		}
		if err := historialRepo.CerrarVigente(ctx, empresa.ID, time.Now()); err != nil {
			return err
		}
		return historialRepo.Save(ctx, historial)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewEmpresaResponse(empresa)
	return &resp, nil
}

// Delete elimina una empresa sin usuarios activos. Con usuarios activos devuelve conflicto.
func (uc *EmpresaUseCase) Delete(ctx context.Context, id string) error {
	empresaID, err := valueobject.NewID(id)
	if err != nil {
		return err
	}
	empresa, err := uc.empresaRepo.FindByID(ctx, empresaID)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrEmpresaNotFound
	}

	activos, err := uc.empresaRepo.CountUsuariosActivos(ctx, empresaID)
	if err != nil {
		return err
	}
	if activos > 0 {
		return fmt.Errorf("%w: la empresa tiene %d usuarios activos", domain.ErrConflict, activos)
	}

	return uc.empresaRepo.Delete(ctx, empresaID)
}

// Historial devuelve el historial de suscripciones de la empresa, el más reciente primero.
func (uc *EmpresaUseCase) Historial(ctx context.Context, id string) (*dto.HistorialListResponse, error) {
	empresaID, err := valueobject.NewID(id)
	if err != nil {
		return nil, err
	}
	empresa, err := uc.empresaRepo.FindByID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}

	historial, err := uc.historialRepo.FindByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewHistorialListResponse(historial)
	return &resp, nil
}
