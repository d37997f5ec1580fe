package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// Asegura que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL (usable con pool o tx).
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Save persiste la empresa (upsert por ID). Una violación del índice único de
// email se devuelve como domain.ErrEmailAlreadyExists: es la última línea de
// defensa contra creaciones concurrentes con el mismo email.
func (r *EmpresaRepo) Save(ctx context.Context, empresa *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, nombre, email, plan_id, fecha_suscripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			email = EXCLUDED.email,
			plan_id = EXCLUDED.plan_id,
			fecha_suscripcion = EXCLUDED.fecha_suscripcion,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		empresa.ID.Value(), empresa.Nombre.Value(), empresa.Email.Value(),
		empresa.PlanID.Value(), empresa.FechaSuscripcion,
		empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("save empresa: %w", err)
	}
	return nil
}

const empresaColumns = `id, nombre, email, plan_id, fecha_suscripcion, created_at, updated_at`

// FindByID obtiene una empresa por ID. Devuelve nil, nil si no existe.
func (r *EmpresaRepo) FindByID(ctx context.Context, id valueobject.ID) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE id = $1`
	empresa, err := scanEmpresa(r.q.QueryRow(ctx, query, id.Value()))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return empresa, nil
}

// FindByEmail obtiene una empresa por email. Devuelve nil, nil si no existe.
func (r *EmpresaRepo) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE email = $1`
	empresa, err := scanEmpresa(r.q.QueryRow(ctx, query, email.Value()))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa by email: %w", err)
	}
	return empresa, nil
}

// FindAll devuelve empresas con paginación, ordenadas por fecha de creación descendente.
func (r *EmpresaRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		empresa, err := scanEmpresa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, empresa)
	}
	return list, rows.Err()
}

// FindByPlanID devuelve las empresas suscritas al plan.
func (r *EmpresaRepo) FindByPlanID(ctx context.Context, planID valueobject.ID) ([]*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE plan_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, planID.Value())
	if err != nil {
		return nil, fmt.Errorf("list empresas by plan: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		empresa, err := scanEmpresa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, empresa)
	}
	return list, rows.Err()
}

// Count devuelve el total de empresas.
func (r *EmpresaRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM empresas`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count empresas: %w", err)
	}
	return total, nil
}

// ExistsByEmail informa si existe una empresa con el email dado.
func (r *EmpresaRepo) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM empresas WHERE email = $1)`, email.Value()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists empresa by email: %w", err)
	}
	return exists, nil
}

// ExistsByEmailExcludingID como ExistsByEmail pero ignora la propia empresa (updates).
func (r *EmpresaRepo) ExistsByEmailExcludingID(ctx context.Context, email valueobject.Email, excludeID valueobject.ID) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM empresas WHERE email = $1 AND id <> $2)`,
		email.Value(), excludeID.Value(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists empresa by email excluding id: %w", err)
	}
	return exists, nil
}

// CountUsuariosActivos cuenta usuarios activos de la empresa vía el índice (empresa_id, activo).
func (r *EmpresaRepo) CountUsuariosActivos(ctx context.Context, empresaID valueobject.ID) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM usuarios_empresa WHERE empresa_id = $1 AND activo = true`,
		empresaID.Value(),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count usuarios activos: %w", err)
	}
	return total, nil
}

// Delete elimina una empresa por ID.
func (r *EmpresaRepo) Delete(ctx context.Context, id valueobject.ID) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM empresas WHERE id = $1`, id.Value()); err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	return nil
}

func scanEmpresa(row scannable) (*entity.Empresa, error) {
	var (
		id, nombre, email, planID            string
		fechaSuscripcion, createdAt, updated time.Time
	)
	if err := row.Scan(&id, &nombre, &email, &planID, &fechaSuscripcion, &createdAt, &updated); err != nil {
		return nil, err
	}

	empresaID, err := valueobject.NewID(id)
	if err != nil {
		return nil, err
	}
	empresaNombre, err := valueobject.NewEmpresaNombre(nombre)
	if err != nil {
		return nil, err
	}
	empresaEmail, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	plan, err := valueobject.NewID(planID)
	if err != nil {
		return nil, err
	}

	return &entity.Empresa{
		ID:               empresaID,
		Nombre:           empresaNombre,
		Email:            empresaEmail,
		PlanID:           plan,
		FechaSuscripcion: fechaSuscripcion,
		CreatedAt:        createdAt,
		UpdatedAt:        updated,
	}, nil
}
