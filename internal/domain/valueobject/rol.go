package valueobject

import (
	"fmt"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
)

// Roles válidos para un usuario de empresa.
const (
	RolAdmin   = "admin"
	RolUsuario = "usuario"
)

// Rol rol de un usuario dentro de su empresa.
type Rol struct {
	value string
}

// NewRol valida que el rol sea admin o usuario.
func NewRol(value string) (Rol, error) {
	switch value {
	case RolAdmin, RolUsuario:
		return Rol{value: value}, nil
	default:
		return Rol{}, fmt.Errorf("%w: el rol %q no es válido (roles válidos: %s, %s)",
			domain.ErrInvalidInput, value, RolAdmin, RolUsuario)
	}
}

// RolAdministrador construye el rol admin.
func RolAdministrador() Rol { return Rol{value: RolAdmin} }

// RolEstandar construye el rol usuario.
func RolEstandar() Rol { return Rol{value: RolUsuario} }

// Value devuelve el rol como string.
func (r Rol) Value() string { return r.value }

// EsAdmin informa si el rol es de administrador.
func (r Rol) EsAdmin() bool { return r.value == RolAdmin }

// Equals compara dos roles por valor.
func (r Rol) Equals(other Rol) bool { return r.value == other.value }

func (r Rol) String() string { return r.value }
