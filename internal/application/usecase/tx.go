package usecase

import (
	"context"

	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
)

// SuscripcionTxRunner ejecuta un callback con repos de empresa e historial
// atados a la misma transacción. El alta de una empresa y la apertura de su
// historial, o un cambio de plan y el cierre del registro vigente, deben
// confirmarse o descartarse juntos.
type SuscripcionTxRunner interface {
	Run(ctx context.Context, fn func(
		empresaRepo repository.EmpresaRepository,
		historialRepo repository.HistorialRepository,
	) error) error
}
