package valueobject

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
	"golang.org/x/text/unicode/norm"
)

const (
	usuarioNombreMinLen = 2
	usuarioNombreMaxLen = 255
)

// UsuarioNombre nombre de un usuario de empresa (2-255 caracteres).
type UsuarioNombre struct {
	value string
}

// NewUsuarioNombre valida longitud tras recortar espacios y normalizar a NFC.
func NewUsuarioNombre(value string) (UsuarioNombre, error) {
	value = norm.NFC.String(strings.TrimSpace(value))
	if value == "" {
		return UsuarioNombre{}, fmt.Errorf("%w: el nombre del usuario no puede estar vacío", domain.ErrInvalidInput)
	}
	if len(value) < usuarioNombreMinLen {
		return UsuarioNombre{}, fmt.Errorf("%w: el nombre del usuario debe tener al menos %d caracteres", domain.ErrInvalidInput, usuarioNombreMinLen)
	}
	if len(value) > usuarioNombreMaxLen {
		return UsuarioNombre{}, fmt.Errorf("%w: el nombre del usuario no puede tener más de %d caracteres", domain.ErrInvalidInput, usuarioNombreMaxLen)
	}
	return UsuarioNombre{value: value}, nil
}

// Value devuelve el nombre normalizado.
func (n UsuarioNombre) Value() string { return n.value }

// Equals compara dos nombres por valor.
func (n UsuarioNombre) Equals(other UsuarioNombre) bool { return n.value == other.value }

func (n UsuarioNombre) String() string { return n.value }
