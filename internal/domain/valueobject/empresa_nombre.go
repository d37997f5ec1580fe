package valueobject

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
	"golang.org/x/text/unicode/norm"
)

const (
	empresaNombreMinLen = 2
	empresaNombreMaxLen = 255
)

// Caracteres permitidos: letras (incluye acentuadas), dígitos, espacios y símbolos básicos.
var (
	empresaNombreCharset = regexp.MustCompile(`^[a-zA-ZÀ-ÿ0-9\s\-\.\,\&\(\)]+$`)
	soloDigitos          = regexp.MustCompile(`^[0-9\s\.\,]+$`)
)

// EmpresaNombre nombre de una empresa tenant.
// Se normaliza a NFC antes de validar para que las formas compuestas y
// descompuestas de un mismo nombre acentuado sean equivalentes.
type EmpresaNombre struct {
	value string
}

// NewEmpresaNombre valida longitud (2-255), charset y que el nombre no sea solo numérico.
func NewEmpresaNombre(value string) (EmpresaNombre, error) {
	value = norm.NFC.String(strings.TrimSpace(value))
	if value == "" {
		return EmpresaNombre{}, fmt.Errorf("%w: el nombre de la empresa no puede estar vacío", domain.ErrInvalidInput)
	}
	if len(value) < empresaNombreMinLen {
		return EmpresaNombre{}, fmt.Errorf("%w: el nombre de la empresa debe tener al menos %d caracteres", domain.ErrInvalidInput, empresaNombreMinLen)
	}
	if len(value) > empresaNombreMaxLen {
		return EmpresaNombre{}, fmt.Errorf("%w: el nombre de la empresa no puede tener más de %d caracteres", domain.ErrInvalidInput, empresaNombreMaxLen)
	}
	if soloDigitos.MatchString(value) {
		return EmpresaNombre{}, fmt.Errorf("%w: el nombre de la empresa no puede ser solo números", domain.ErrInvalidInput)
	}
	if !empresaNombreCharset.MatchString(value) {
		return EmpresaNombre{}, fmt.Errorf("%w: el nombre de la empresa contiene caracteres no válidos", domain.ErrInvalidInput)
	}
	return EmpresaNombre{value: value}, nil
}

// Value devuelve el nombre normalizado.
func (n EmpresaNombre) Value() string { return n.value }

// Equals compara dos nombres por valor.
func (n EmpresaNombre) Equals(other EmpresaNombre) bool { return n.value == other.value }

func (n EmpresaNombre) String() string { return n.value }
