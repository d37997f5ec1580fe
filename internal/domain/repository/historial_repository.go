package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// HistorialRepository define el puerto de persistencia del historial de suscripciones.
// Es un log append-only: los registros solo se crean o se cierran, nunca se borran.
type HistorialRepository interface {
	Save(ctx context.Context, historial *entity.HistorialSuscripcion) error
	// FindByEmpresa devuelve el historial ordenado por fecha_inicio descendente.
	FindByEmpresa(ctx context.Context, empresaID valueobject.ID) ([]*entity.HistorialSuscripcion, error)
	// CerrarVigente pone fecha_fin al registro vigente de la empresa, si existe.
	CerrarVigente(ctx context.Context, empresaID valueobject.ID, fechaFin time.Time) error
}
