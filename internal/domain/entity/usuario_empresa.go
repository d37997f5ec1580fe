package entity

import (
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// UsuarioEmpresa usuario interno de una empresa tenant.
// PasswordHash llega ya hasheado (bcrypt); el dominio nunca guarda el password plano.
type UsuarioEmpresa struct {
	ID           valueobject.ID
	Nombre       valueobject.UsuarioNombre
	Email        valueobject.Email
	PasswordHash string
	EmpresaID    valueobject.ID
	Rol          valueobject.Rol
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NuevoUsuarioEmpresa crea un usuario activo con ID generado.
func NuevoUsuarioEmpresa(nombre valueobject.UsuarioNombre, email valueobject.Email,
	passwordHash string, empresaID valueobject.ID, rol valueobject.Rol) *UsuarioEmpresa {
	now := time.Now()
	return &UsuarioEmpresa{
		ID:           valueobject.GenerateID(),
		Nombre:       nombre,
		Email:        email,
		PasswordHash: passwordHash,
		EmpresaID:    empresaID,
		Rol:          rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Actualizar modifica nombre y email; el rol solo si se proporciona.
func (u *UsuarioEmpresa) Actualizar(nombre valueobject.UsuarioNombre, email valueobject.Email, rol *valueobject.Rol) {
	u.Nombre = nombre
	u.Email = email
	if rol != nil {
		u.Rol = *rol
	}
	u.UpdatedAt = time.Now()
}

// CambiarPassword reemplaza el hash de la contraseña.
func (u *UsuarioEmpresa) CambiarPassword(nuevoHash string) {
	u.PasswordHash = nuevoHash
	u.UpdatedAt = time.Now()
}

// Activar marca el usuario como activo.
func (u *UsuarioEmpresa) Activar() {
	u.Activo = true
	u.UpdatedAt = time.Now()
}

// Desactivar marca el usuario como inactivo.
func (u *UsuarioEmpresa) Desactivar() {
	u.Activo = false
	u.UpdatedAt = time.Now()
}

// EsAdministrador informa si el usuario tiene rol admin.
func (u *UsuarioEmpresa) EsAdministrador() bool {
	return u.Rol.EsAdmin()
}
