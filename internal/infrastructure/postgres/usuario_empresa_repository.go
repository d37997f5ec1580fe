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

// Asegura que UsuarioEmpresaRepo implementa repository.UsuarioEmpresaRepository.
var _ repository.UsuarioEmpresaRepository = (*UsuarioEmpresaRepo)(nil)

// UsuarioEmpresaRepo implementación del puerto UsuarioEmpresaRepository sobre PostgreSQL.
type UsuarioEmpresaRepo struct {
	q Querier
}

// NewUsuarioEmpresaRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioEmpresaRepository(q Querier) *UsuarioEmpresaRepo {
	return &UsuarioEmpresaRepo{q: q}
}

// Save persiste el usuario (upsert por ID). El índice único de email se mapea
// a domain.ErrEmailAlreadyExists.
func (r *UsuarioEmpresaRepo) Save(ctx context.Context, usuario *entity.UsuarioEmpresa) error {
	query := `
		INSERT INTO usuarios_empresa (id, nombre, email, password, empresa_id, rol, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			email = EXCLUDED.email,
			password = EXCLUDED.password,
			rol = EXCLUDED.rol,
			activo = EXCLUDED.activo,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		usuario.ID.Value(), usuario.Nombre.Value(), usuario.Email.Value(),
		usuario.PasswordHash, usuario.EmpresaID.Value(), usuario.Rol.Value(),
		usuario.Activo, usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("save usuario: %w", err)
	}
	return nil
}

const usuarioColumns = `id, nombre, email, password, empresa_id, rol, activo, created_at, updated_at`

// FindByID obtiene un usuario por ID. Devuelve nil, nil si no existe.
func (r *UsuarioEmpresaRepo) FindByID(ctx context.Context, id valueobject.ID) (*entity.UsuarioEmpresa, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios_empresa WHERE id = $1`
	usuario, err := scanUsuario(r.q.QueryRow(ctx, query, id.Value()))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return usuario, nil
}

// FindByEmail obtiene un usuario por email (login). Devuelve nil, nil si no existe.
func (r *UsuarioEmpresaRepo) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.UsuarioEmpresa, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios_empresa WHERE email = $1`
	usuario, err := scanUsuario(r.q.QueryRow(ctx, query, email.Value()))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return usuario, nil
}

// FindAllByEmpresa devuelve los usuarios de una empresa con paginación.
func (r *UsuarioEmpresaRepo) FindAllByEmpresa(ctx context.Context, empresaID valueobject.ID, limit, offset int) ([]*entity.UsuarioEmpresa, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios_empresa
		WHERE empresa_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, empresaID.Value(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.UsuarioEmpresa
	for rows.Next() {
		usuario, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, usuario)
	}
	return list, rows.Err()
}

// CountByEmpresa cuenta todos los usuarios de la empresa.
func (r *UsuarioEmpresaRepo) CountByEmpresa(ctx context.Context, empresaID valueobject.ID) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM usuarios_empresa WHERE empresa_id = $1`, empresaID.Value(),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return total, nil
}

// CountActivosByEmpresa cuenta los usuarios activos de la empresa.
func (r *UsuarioEmpresaRepo) CountActivosByEmpresa(ctx context.Context, empresaID valueobject.ID) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM usuarios_empresa WHERE empresa_id = $1 AND activo = true`, empresaID.Value(),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count usuarios activos: %w", err)
	}
	return total, nil
}

// ExistsByEmail informa si existe un usuario con el email dado.
func (r *UsuarioEmpresaRepo) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios_empresa WHERE email = $1)`, email.Value(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists usuario by email: %w", err)
	}
	return exists, nil
}

// ExistsByEmailExcludingID como ExistsByEmail pero ignora al propio usuario (updates).
func (r *UsuarioEmpresaRepo) ExistsByEmailExcludingID(ctx context.Context, email valueobject.Email, excludeID valueobject.ID) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios_empresa WHERE email = $1 AND id <> $2)`,
		email.Value(), excludeID.Value(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists usuario by email excluding id: %w", err)
	}
	return exists, nil
}

// Delete elimina un usuario por ID.
func (r *UsuarioEmpresaRepo) Delete(ctx context.Context, id valueobject.ID) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM usuarios_empresa WHERE id = $1`, id.Value()); err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

func scanUsuario(row scannable) (*entity.UsuarioEmpresa, error) {
	var (
		id, nombre, email, password, empresaID, rol string
		activo                                      bool
		createdAt, updatedAt                        time.Time
	)
	if err := row.Scan(&id, &nombre, &email, &password, &empresaID, &rol, &activo, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	usuarioID, err := valueobject.NewID(id)
	if err != nil {
		return nil, err
	}
	usuarioNombre, err := valueobject.NewUsuarioNombre(nombre)
	if err != nil {
		return nil, err
	}
	usuarioEmail, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	empresa, err := valueobject.NewID(empresaID)
	if err != nil {
		return nil, err
	}
	usuarioRol, err := valueobject.NewRol(rol)
	if err != nil {
		return nil, err
	}

	return &entity.UsuarioEmpresa{
		ID:           usuarioID,
		Nombre:       usuarioNombre,
		Email:        usuarioEmail,
		PasswordHash: password,
		EmpresaID:    empresa,
		Rol:          usuarioRol,
		Activo:       activo,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
