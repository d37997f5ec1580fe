package dto

import "github.com/tu-usuario/suscripciones-api/internal/domain/entity"

// CreatePlanRequest payload para crear un plan. El precio llega plano
// (monto en centavos + moneda) y se anida en la respuesta.
type CreatePlanRequest struct {
	Name         string   `json:"name"`
	MonthlyPrice int64    `json:"monthly_price"`
	Currency     string   `json:"currency"`
	UserLimit    int      `json:"user_limit"`
	Features     []string `json:"features"`
}

// UpdatePlanRequest payload para actualizar un plan. Todos los campos se reemplazan.
type UpdatePlanRequest struct {
	Name         string   `json:"name"`
	MonthlyPrice int64    `json:"monthly_price"`
	Currency     string   `json:"currency"`
	UserLimit    int      `json:"user_limit"`
	Features     []string `json:"features"`
}

// MoneyResponse representación JSON de un precio.
type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PlanResponse representación JSON de un plan.
type PlanResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	MonthlyPrice MoneyResponse `json:"monthly_price"`
	UserLimit    int           `json:"user_limit"`
	Features     []string      `json:"features"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    *string       `json:"updated_at"`
}

// NewPlanResponse mapea la entidad a su representación JSON.
func NewPlanResponse(p *entity.Plan) PlanResponse {
	return PlanResponse{
		ID:   p.ID.Value(),
		Name: p.Name.Value(),
		MonthlyPrice: MoneyResponse{
			Amount:   p.MonthlyPrice.Amount(),
			Currency: p.MonthlyPrice.Currency(),
		},
		UserLimit: p.UserLimit.Value(),
		Features:  p.Features.Values(),
		CreatedAt: FormatTime(p.CreatedAt),
		UpdatedAt: FormatTimePtr(p.UpdatedAt),
	}
}

// PlanListResponse listado paginado de planes.
type PlanListResponse struct {
	Data       []PlanResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// NewPlanListResponse arma el listado con su paginación.
func NewPlanListResponse(planes []*entity.Plan, page, limit, total int) PlanListResponse {
	data := make([]PlanResponse, 0, len(planes))
	for _, p := range planes {
		data = append(data, NewPlanResponse(p))
	}
	return PlanListResponse{
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	}
}
