package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/suscripciones-api/internal/application/usecase"
	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
)

// Asegura que TxRunner implementa usecase.SuscripcionTxRunner.
var _ usecase.SuscripcionTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// La escritura de empresa y su historial de suscripción deben ser atómicas.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	empresaRepo repository.EmpresaRepository,
	historialRepo repository.HistorialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	empresaRepo := NewEmpresaRepository(tx)
	historialRepo := NewHistorialRepository(tx)

	if err := fn(empresaRepo, historialRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
