package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suscripciones-api/internal/application/dto"
	"github.com/tu-usuario/suscripciones-api/internal/application/usecase"
	"github.com/tu-usuario/suscripciones-api/internal/domain"
)

type empresaFixture struct {
	uc            *usecase.EmpresaUseCase
	planRepo      *fakePlanRepo
	empresaRepo   *fakeEmpresaRepo
	historialRepo *fakeHistorialRepo
	planUC        *usecase.PlanUseCase
}

func nuevaEmpresaFixture() *empresaFixture {
	planRepo := newFakePlanRepo()
	empresaRepo := newFakeEmpresaRepo()
	historialRepo := newFakeHistorialRepo()
	tx := &fakeTxRunner{empresaRepo: empresaRepo, historialRepo: historialRepo}
	return &empresaFixture{
		uc:            usecase.NewEmpresaUseCase(empresaRepo, planRepo, historialRepo, tx),
		planRepo:      planRepo,
		empresaRepo:   empresaRepo,
		historialRepo: historialRepo,
		planUC:        usecase.NewPlanUseCase(planRepo, empresaRepo),
	}
}

func (f *empresaFixture) crearPlan(t *testing.T, nombre string, precio int64) *dto.PlanResponse {
	t.Helper()
	out, err := f.planUC.Create(context.Background(), dto.CreatePlanRequest{
		Name:         nombre,
		MonthlyPrice: precio,
		Currency:     "USD",
		UserLimit:    5,
		Features:     []string{"Soporte"},
	})
	require.NoError(t, err)
	return out
}

func (f *empresaFixture) crearEmpresa(t *testing.T, planID string) *dto.EmpresaResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), dto.CreateEmpresaRequest{
		Nombre: "Empresa Demo S.A.",
		Email:  "demo@example.com",
		PlanID: planID,
	})
	require.NoError(t, err)
	return out
}

func TestEmpresaUseCase_Create_AbreHistorial(t *testing.T) {
	f := nuevaEmpresaFixture()
	plan := f.crearPlan(t, "Básico", 999)

	out := f.crearEmpresa(t, plan.ID)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, plan.ID, out.PlanID)

	// El alta abre el primer registro del historial con el precio del plan
	historial, err := f.uc.Historial(context.Background(), out.ID)
	require.NoError(t, err)
	require.Len(t, historial.Data, 1)
	assert.Equal(t, "Alta inicial", historial.Data[0].MotivoCambio)
	assert.Equal(t, int64(999), historial.Data[0].PrecioMensual.Amount)
	assert.True(t, historial.Data[0].Vigente)
}

func TestEmpresaUseCase_Create_PlanInexistente(t *testing.T) {
	f := nuevaEmpresaFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateEmpresaRequest{
		Nombre: "Empresa Demo S.A.",
		Email:  "demo@example.com",
		PlanID: "11111111-1111-1111-1111-111111111111",
	})
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestEmpresaUseCase_Create_EmailDuplicado(t *testing.T) {
	f := nuevaEmpresaFixture()
	plan := f.crearPlan(t, "Básico", 999)
	f.crearEmpresa(t, plan.ID)

	_, err := f.uc.Create(context.Background(), dto.CreateEmpresaRequest{
		Nombre: "Otra Empresa S.A.",
		Email:  "demo@example.com",
		PlanID: plan.ID,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestEmpresaUseCase_Update_CambioDePlan(t *testing.T) {
	f := nuevaEmpresaFixture()
	basico := f.crearPlan(t, "Básico", 999)
	pro := f.crearPlan(t, "Profesional", 2999)
	empresa := f.crearEmpresa(t, basico.ID)

	out, err := f.uc.Update(context.Background(), empresa.ID, dto.UpdateEmpresaRequest{
		Nombre:       "Empresa Demo S.A.",
		Email:        "demo@example.com",
		PlanID:       pro.ID,
		MotivoCambio: "Upgrade por crecimiento del equipo",
	})
	require.NoError(t, err)
	assert.Equal(t, pro.ID, out.PlanID)

	// El registro anterior se cierra y se abre uno nuevo con el precio del plan destino
	historial, err := f.uc.Historial(context.Background(), empresa.ID)
	require.NoError(t, err)
	require.Len(t, historial.Data, 2)

	assert.True(t, historial.Data[0].Vigente, "el más reciente queda vigente")
	assert.Equal(t, pro.ID, historial.Data[0].PlanID)
	assert.Equal(t, int64(2999), historial.Data[0].PrecioMensual.Amount)
	assert.Equal(t, "Upgrade por crecimiento del equipo", historial.Data[0].MotivoCambio)

	assert.False(t, historial.Data[1].Vigente, "el registro inicial queda cerrado")
	assert.Equal(t, basico.ID, historial.Data[1].PlanID)
}

func TestEmpresaUseCase_Update_CambioDePlanSinMotivo(t *testing.T) {
	f := nuevaEmpresaFixture()
	basico := f.crearPlan(t, "Básico", 999)
	pro := f.crearPlan(t, "Profesional", 2999)
	empresa := f.crearEmpresa(t, basico.ID)

	_, err := f.uc.Update(context.Background(), empresa.ID, dto.UpdateEmpresaRequest{
		Nombre: "Empresa Demo S.A.",
		Email:  "demo@example.com",
		PlanID: pro.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cambiar de plan sin motivo es inválido")

	// Nada cambió
	historial, err := f.uc.Historial(context.Background(), empresa.ID)
	require.NoError(t, err)
	assert.Len(t, historial.Data, 1)
}

func TestEmpresaUseCase_Update_MismoPlan(t *testing.T) {
	f := nuevaEmpresaFixture()
	basico := f.crearPlan(t, "Básico", 999)
	empresa := f.crearEmpresa(t, basico.ID)

	_, err := f.uc.Update(context.Background(), empresa.ID, dto.UpdateEmpresaRequest{
		Nombre:       "Empresa Demo S.A.",
		Email:        "demo@example.com",
		PlanID:       basico.ID,
		MotivoCambio: "Sin cambios reales",
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "el plan destino debe ser distinto al actual")
}

func TestEmpresaUseCase_Update_SinCambioDePlan(t *testing.T) {
	f := nuevaEmpresaFixture()
	basico := f.crearPlan(t, "Básico", 999)
	empresa := f.crearEmpresa(t, basico.ID)

	out, err := f.uc.Update(context.Background(), empresa.ID, dto.UpdateEmpresaRequest{
		Nombre: "Empresa Renombrada S.A.",
		Email:  "nuevo@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Empresa Renombrada S.A.", out.Nombre)
	assert.Equal(t, "nuevo@example.com", out.Email)

	historial, err := f.uc.Historial(context.Background(), empresa.ID)
	require.NoError(t, err)
	assert.Len(t, historial.Data, 1, "actualizar datos básicos no toca el historial")
}

func TestEmpresaUseCase_Update_EmailDeOtraEmpresa(t *testing.T) {
	f := nuevaEmpresaFixture()
	basico := f.crearPlan(t, "Básico", 999)
	f.crearEmpresa(t, basico.ID)

	otra, err := f.uc.Create(context.Background(), dto.CreateEmpresaRequest{
		Nombre: "Otra Empresa S.A.",
		Email:  "otra@example.com",
		PlanID: basico.ID,
	})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), otra.ID, dto.UpdateEmpresaRequest{
		Nombre: "Otra Empresa S.A.",
		Email:  "demo@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestEmpresaUseCase_Delete_ConUsuariosActivos(t *testing.T) {
	f := nuevaEmpresaFixture()
	basico := f.crearPlan(t, "Básico", 999)
	empresa := f.crearEmpresa(t, basico.ID)

	f.empresaRepo.usuariosActivos[empresa.ID] = 2

	err := f.uc.Delete(context.Background(), empresa.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "una empresa con usuarios activos no se puede eliminar")
}

func TestEmpresaUseCase_Delete_SinUsuarios(t *testing.T) {
	f := nuevaEmpresaFixture()
	basico := f.crearPlan(t, "Básico", 999)
	empresa := f.crearEmpresa(t, basico.ID)

	require.NoError(t, f.uc.Delete(context.Background(), empresa.ID))

	_, err := f.uc.GetByID(context.Background(), empresa.ID)
	assert.ErrorIs(t, err, domain.ErrEmpresaNotFound)
}

func TestEmpresaUseCase_Historial_EmpresaInexistente(t *testing.T) {
	f := nuevaEmpresaFixture()

	_, err := f.uc.Historial(context.Background(), "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, domain.ErrEmpresaNotFound)
}
