package dto

import "github.com/tu-usuario/suscripciones-api/internal/domain/entity"

// CreateUsuarioRequest payload para crear un usuario dentro de una empresa.
// Rol vacío crea un usuario estándar.
type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// UpdateUsuarioRequest payload para actualizar un usuario. Rol, Password y
// Activo son opcionales: nil o vacío deja el valor actual.
type UpdateUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Password string `json:"password"`
	Activo   *bool  `json:"activo"`
}

// UsuarioResponse representación JSON de un usuario de empresa.
// El hash de contraseña nunca se serializa.
type UsuarioResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	EmpresaID string `json:"empresa_id"`
	Rol       string `json:"rol"`
	Activo    bool   `json:"activo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewUsuarioResponse mapea la entidad a su representación JSON.
func NewUsuarioResponse(u *entity.UsuarioEmpresa) UsuarioResponse {
	return UsuarioResponse{
		ID:        u.ID.Value(),
		Nombre:    u.Nombre.Value(),
		Email:     u.Email.Value(),
		EmpresaID: u.EmpresaID.Value(),
		Rol:       u.Rol.Value(),
		Activo:    u.Activo,
		CreatedAt: FormatTime(u.CreatedAt),
		UpdatedAt: FormatTime(u.UpdatedAt),
	}
}

// UsuarioListResponse listado paginado de usuarios de una empresa.
type UsuarioListResponse struct {
	Data       []UsuarioResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// NewUsuarioListResponse arma el listado con su paginación.
func NewUsuarioListResponse(usuarios []*entity.UsuarioEmpresa, page, limit, total int) UsuarioListResponse {
	data := make([]UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		data = append(data, NewUsuarioResponse(u))
	}
	return UsuarioListResponse{
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	}
}
