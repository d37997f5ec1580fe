package dto

import "github.com/tu-usuario/suscripciones-api/internal/domain/entity"

// CreateEmpresaRequest payload para registrar una empresa con su plan inicial.
type CreateEmpresaRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	PlanID string `json:"plan_id"`
}

// UpdateEmpresaRequest payload para actualizar una empresa. PlanID es opcional;
// si viene, MotivoCambio es obligatorio y queda registrado en el historial.
type UpdateEmpresaRequest struct {
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	PlanID       string `json:"plan_id"`
	MotivoCambio string `json:"motivo_cambio"`
}

// EmpresaResponse representación JSON de una empresa.
type EmpresaResponse struct {
	ID               string `json:"id"`
	Nombre           string `json:"nombre"`
	Email            string `json:"email"`
	PlanID           string `json:"plan_id"`
	FechaSuscripcion string `json:"fecha_suscripcion"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// NewEmpresaResponse mapea la entidad a su representación JSON.
func NewEmpresaResponse(e *entity.Empresa) EmpresaResponse {
	return EmpresaResponse{
		ID:               e.ID.Value(),
		Nombre:           e.Nombre.Value(),
		Email:            e.Email.Value(),
		PlanID:           e.PlanID.Value(),
		FechaSuscripcion: FormatTime(e.FechaSuscripcion),
		CreatedAt:        FormatTime(e.CreatedAt),
		UpdatedAt:        FormatTime(e.UpdatedAt),
	}
}

// EmpresaListResponse listado paginado de empresas.
type EmpresaListResponse struct {
	Data       []EmpresaResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// NewEmpresaListResponse arma el listado con su paginación.
func NewEmpresaListResponse(empresas []*entity.Empresa, page, limit, total int) EmpresaListResponse {
	data := make([]EmpresaResponse, 0, len(empresas))
	for _, e := range empresas {
		data = append(data, NewEmpresaResponse(e))
	}
	return EmpresaListResponse{
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	}
}

// HistorialResponse registro del historial de suscripciones de una empresa.
type HistorialResponse struct {
	ID            string        `json:"id"`
	EmpresaID     string        `json:"empresa_id"`
	PlanID        string        `json:"plan_id"`
	FechaInicio   string        `json:"fecha_inicio"`
	FechaFin      *string       `json:"fecha_fin"`
	MotivoCambio  string        `json:"motivo_cambio"`
	PrecioMensual MoneyResponse `json:"precio_mensual"`
	Vigente       bool          `json:"vigente"`
}

// NewHistorialResponse mapea el registro de historial a su representación JSON.
func NewHistorialResponse(h *entity.HistorialSuscripcion) HistorialResponse {
	return HistorialResponse{
		ID:           h.ID.Value(),
		EmpresaID:    h.EmpresaID.Value(),
		PlanID:       h.PlanID.Value(),
		FechaInicio:  FormatTime(h.FechaInicio),
		FechaFin:     FormatTimePtr(h.FechaFin),
		MotivoCambio: h.MotivoCambio,
		PrecioMensual: MoneyResponse{
			Amount:   h.PrecioMensual.Amount(),
			Currency: h.PrecioMensual.Currency(),
		},
		Vigente: h.EsVigente(),
	}
}

// HistorialListResponse historial completo de una empresa, el más reciente primero.
type HistorialListResponse struct {
	Data []HistorialResponse `json:"data"`
}

// NewHistorialListResponse arma el listado de historial.
func NewHistorialListResponse(historial []*entity.HistorialSuscripcion) HistorialListResponse {
	data := make([]HistorialResponse, 0, len(historial))
	for _, h := range historial {
		data = append(data, NewHistorialResponse(h))
	}
	return HistorialListResponse{Data: data}
}
