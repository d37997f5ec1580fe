package entity

import (
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// HistorialSuscripcion registro append-only de los cambios de plan de una empresa.
// FechaFin nil indica la suscripción vigente. PrecioMensual es un snapshot del
// precio del plan en el momento del cambio.
type HistorialSuscripcion struct {
	ID            valueobject.ID
	EmpresaID     valueobject.ID
	PlanID        valueobject.ID
	FechaInicio   time.Time
	FechaFin      *time.Time
	MotivoCambio  string
	PrecioMensual valueobject.Money
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NuevoHistorial abre un registro vigente para la empresa con el plan y precio indicados.
func NuevoHistorial(empresaID, planID valueobject.ID, motivo string, precio valueobject.Money) *HistorialSuscripcion {
	now := time.Now()
	return &HistorialSuscripcion{
		ID:            valueobject.GenerateID(),
		EmpresaID:     empresaID,
		PlanID:        planID,
		FechaInicio:   now,
		MotivoCambio:  motivo,
		PrecioMensual: precio,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// EsVigente informa si el registro corresponde a la suscripción actual.
func (h *HistorialSuscripcion) EsVigente() bool {
	return h.FechaFin == nil
}
