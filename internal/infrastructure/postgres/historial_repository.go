package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// Asegura que HistorialRepo implementa repository.HistorialRepository.
var _ repository.HistorialRepository = (*HistorialRepo)(nil)

// HistorialRepo implementación del puerto HistorialRepository sobre PostgreSQL.
// El precio mensual se guarda como NUMERIC(10,2) más el código de moneda.
type HistorialRepo struct {
	q Querier
}

// NewHistorialRepository construye el adaptador del historial. Pasar pool o tx (Querier).
func NewHistorialRepository(q Querier) *HistorialRepo {
	return &HistorialRepo{q: q}
}

// Save inserta un registro de historial. Nunca hay update: el log es append-only
// salvo por CerrarVigente.
func (r *HistorialRepo) Save(ctx context.Context, h *entity.HistorialSuscripcion) error {
	query := `
		INSERT INTO historial_suscripciones
			(id, empresa_id, plan_id, fecha_inicio, fecha_fin, motivo_cambio, precio_mensual_monto, precio_mensual_moneda, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		h.ID.Value(), h.EmpresaID.Value(), h.PlanID.Value(),
		h.FechaInicio, h.FechaFin, h.MotivoCambio,
		h.PrecioMensual.Decimal(), h.PrecioMensual.Currency(),
		h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// FindByEmpresa devuelve el historial de la empresa, el más reciente primero.
func (r *HistorialRepo) FindByEmpresa(ctx context.Context, empresaID valueobject.ID) ([]*entity.HistorialSuscripcion, error) {
	query := `
		SELECT id, empresa_id, plan_id, fecha_inicio, fecha_fin, motivo_cambio, precio_mensual_monto, precio_mensual_moneda, created_at, updated_at
		FROM historial_suscripciones WHERE empresa_id = $1 ORDER BY fecha_inicio DESC`
	rows, err := r.q.Query(ctx, query, empresaID.Value())
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()

	var list []*entity.HistorialSuscripcion
	for rows.Next() {
		var (
			id, empresa, plan    string
			fechaInicio          time.Time
			fechaFin             *time.Time
			motivo               *string
			monto                decimal.Decimal
			moneda               string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &empresa, &plan, &fechaInicio, &fechaFin, &motivo, &monto, &moneda, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}

		histID, err := valueobject.NewID(id)
		if err != nil {
			return nil, err
		}
		empID, err := valueobject.NewID(empresa)
		if err != nil {
			return nil, err
		}
		planID, err := valueobject.NewID(plan)
		if err != nil {
			return nil, err
		}
		// NUMERIC(10,2) -> centavos
		precio, err := valueobject.NewMoney(monto.Shift(2).IntPart(), moneda)
		if err != nil {
			return nil, err
		}
		motivoCambio := ""
		if motivo != nil {
			motivoCambio = *motivo
		}

		list = append(list, &entity.HistorialSuscripcion{
			ID:            histID,
			EmpresaID:     empID,
			PlanID:        planID,
			FechaInicio:   fechaInicio,
			FechaFin:      fechaFin,
			MotivoCambio:  motivoCambio,
			PrecioMensual: precio,
			CreatedAt:     createdAt,
			UpdatedAt:     updatedAt,
		})
	}
	return list, rows.Err()
}

// CerrarVigente cierra el registro vigente (fecha_fin IS NULL) de la empresa, si existe.
func (r *HistorialRepo) CerrarVigente(ctx context.Context, empresaID valueobject.ID, fechaFin time.Time) error {
	query := `
		UPDATE historial_suscripciones
		SET fecha_fin = $2, updated_at = $2
		WHERE empresa_id = $1 AND fecha_fin IS NULL`
	if _, err := r.q.Exec(ctx, query, empresaID.Value(), fechaFin); err != nil {
		return fmt.Errorf("cerrar historial vigente: %w", err)
	}
	return nil
}
