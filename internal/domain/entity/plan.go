package entity

import (
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// Plan agregado raíz del contexto de planes de suscripción.
// Encapsula precio mensual, límite de usuarios y características incluidas.
type Plan struct {
	ID           valueobject.ID
	Name         valueobject.PlanName
	MonthlyPrice valueobject.Money
	UserLimit    valueobject.UserLimit
	Features     valueobject.Features
	CreatedAt    time.Time
	UpdatedAt    *time.Time // nil hasta la primera actualización
}

// NuevoPlan crea un plan con ID generado y fecha de creación actual.
func NuevoPlan(name valueobject.PlanName, monthlyPrice valueobject.Money,
	userLimit valueobject.UserLimit, features valueobject.Features) *Plan {
	return &Plan{
		ID:           valueobject.GenerateID(),
		Name:         name,
		MonthlyPrice: monthlyPrice,
		UserLimit:    userLimit,
		Features:     features,
		CreatedAt:    time.Now(),
	}
}

// Actualizar reemplaza todos los campos editables y refresca UpdatedAt.
func (p *Plan) Actualizar(name valueobject.PlanName, monthlyPrice valueobject.Money,
	userLimit valueobject.UserLimit, features valueobject.Features) {
	p.Name = name
	p.MonthlyPrice = monthlyPrice
	p.UserLimit = userLimit
	p.Features = features
	now := time.Now()
	p.UpdatedAt = &now
}

// CanAccommodateUsers informa si el plan admite la cantidad de usuarios indicada.
func (p *Plan) CanAccommodateUsers(userCount int) bool {
	return !p.UserLimit.IsExceeded(userCount)
}
