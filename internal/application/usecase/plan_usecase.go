package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/suscripciones-api/internal/application/dto"
	"github.com/tu-usuario/suscripciones-api/internal/domain"
	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// PlanUseCase casos de uso CRUD para planes de suscripción.
type PlanUseCase struct {
	planRepo    repository.PlanRepository
	empresaRepo repository.EmpresaRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(planRepo repository.PlanRepository, empresaRepo repository.EmpresaRepository) *PlanUseCase {
	return &PlanUseCase{planRepo: planRepo, empresaRepo: empresaRepo}
}

// Create crea un nuevo plan.
func (uc *PlanUseCase) Create(ctx context.Context, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	name, price, limit, features, err := buildPlanValues(in.Name, in.MonthlyPrice, in.Currency, in.UserLimit, in.Features)
	if err != nil {
		return nil, err
	}

	plan := entity.NuevoPlan(name, price, limit, features)
	if err := uc.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	resp := dto.NewPlanResponse(plan)
	return &resp, nil
}

// GetByID obtiene un plan por ID.
func (uc *PlanUseCase) GetByID(ctx context.Context, id string) (*dto.PlanResponse, error) {
	planID, err := valueobject.NewID(id)
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
	resp := dto.NewPlanResponse(plan)
	return &resp, nil
}

// List devuelve los planes paginados.
func (uc *PlanUseCase) List(ctx context.Context, page, limit int) (*dto.PlanListResponse, error) {
	if err := dto.ValidatePageLimit(page, limit); err != nil {
		return nil, err
	}
	offset := (page - 1) * limit

	planes, err := uc.planRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.planRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := dto.NewPlanListResponse(planes, page, limit, total)
	return &resp, nil
}

// Update reemplaza los campos editables de un plan existente.
func (uc *PlanUseCase) Update(ctx context.Context, id string, in dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	planID, err := valueobject.NewID(id)
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

	name, price, limit, features, err := buildPlanValues(in.Name, in.MonthlyPrice, in.Currency, in.UserLimit, in.Features)
	if err != nil {
		return nil, err
	}

	plan.Actualizar(name, price, limit, features)
	if err := uc.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	resp := dto.NewPlanResponse(plan)
	return &resp, nil
}

// Delete elimina un plan sin empresas suscritas. Con suscriptores devuelve conflicto.
func (uc *PlanUseCase) Delete(ctx context.Context, id string) error {
	planID, err := valueobject.NewID(id)
	if err != nil {
		return err
	}
	exists, err := uc.planRepo.Exists(ctx, planID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPlanNotFound
	}

	suscritas, err := uc.empresaRepo.FindByPlanID(ctx, planID)
	if err != nil {
		return err
	}
	if len(suscritas) > 0 {
		return fmt.Errorf("%w: el plan tiene empresas suscritas", domain.ErrConflict)
	}

	return uc.planRepo.Delete(ctx, planID)
}

// buildPlanValues valida los campos crudos del payload y construye los value objects.
func buildPlanValues(name string, amount int64, currency string, userLimit int, features []string) (
	valueobject.PlanName, valueobject.Money, valueobject.UserLimit, valueobject.Features, error,
) {
	var zeroName valueobject.PlanName
	var zeroMoney valueobject.Money
	var zeroLimit valueobject.UserLimit
	var zeroFeatures valueobject.Features

	planName, err := valueobject.NewPlanName(name)
	if err != nil {
		return zeroName, zeroMoney, zeroLimit, zeroFeatures, err
	}
	price, err := valueobject.NewMoney(amount, currency)
	if err != nil {
		return zeroName, zeroMoney, zeroLimit, zeroFeatures, err
	}
	limit, err := valueobject.NewUserLimit(userLimit)
	if err != nil {
		return zeroName, zeroMoney, zeroLimit, zeroFeatures, err
	}
	feats, err := valueobject.NewFeatures(features)
	if err != nil {
		return zeroName, zeroMoney, zeroLimit, zeroFeatures, err
	}
	return planName, price, limit, feats, nil
}
