package entity

import (
	"fmt"
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// Empresa agregado raíz del tenant: una empresa suscrita a un plan.
type Empresa struct {
	ID               valueobject.ID
	Nombre           valueobject.EmpresaNombre
	Email            valueobject.Email
	PlanID           valueobject.ID
	FechaSuscripcion time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NuevaEmpresa crea una empresa con su plan inicial. La fecha de suscripción es la actual.
func NuevaEmpresa(nombre valueobject.EmpresaNombre, email valueobject.Email, planID valueobject.ID) *Empresa {
	now := time.Now()
	return &Empresa{
		ID:               valueobject.GenerateID(),
		Nombre:           nombre,
		Email:            email,
		PlanID:           planID,
		FechaSuscripcion: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Actualizar modifica la información básica de la empresa.
func (e *Empresa) Actualizar(nombre valueobject.EmpresaNombre, email valueobject.Email) {
	e.Nombre = nombre
	e.Email = email
	e.UpdatedAt = time.Now()
}

// CambiarPlan cambia el plan de la empresa y reinicia la fecha de suscripción.
// El nuevo plan debe ser distinto del actual.
func (e *Empresa) CambiarPlan(nuevoPlanID valueobject.ID) error {
	if e.PlanID.Equals(nuevoPlanID) {
		return fmt.Errorf("%w: el nuevo plan debe ser diferente al plan actual", domain.ErrConflict)
	}
	e.PlanID = nuevoPlanID
	now := time.Now()
	e.FechaSuscripcion = now
	e.UpdatedAt = now
	return nil
}
