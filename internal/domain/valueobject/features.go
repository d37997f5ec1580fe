package valueobject

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
)

// Features lista inmutable de características de un plan.
// Ningún elemento puede ser una cadena vacía.
type Features struct {
	values []string
}

// NewFeatures valida que todas las características sean cadenas no vacías.
// La lista puede estar vacía.
func NewFeatures(values []string) (Features, error) {
	for _, f := range values {
		if strings.TrimSpace(f) == "" {
			return Features{}, fmt.Errorf("%w: todas las características deben ser cadenas no vacías", domain.ErrInvalidInput)
		}
	}
	copied := make([]string, len(values))
	copy(copied, values)
	return Features{values: copied}, nil
}

// Values devuelve una copia de la lista.
func (f Features) Values() []string {
	out := make([]string, len(f.values))
	copy(out, f.values)
	return out
}

// HasFeature informa si la característica está incluida (comparación exacta).
func (f Features) HasFeature(feature string) bool {
	for _, v := range f.values {
		if v == feature {
			return true
		}
	}
	return false
}

// Count devuelve la cantidad de características.
func (f Features) Count() int { return len(f.values) }

// Equals compara ambas listas elemento a elemento, en orden.
func (f Features) Equals(other Features) bool {
	if len(f.values) != len(other.values) {
		return false
	}
	for i, v := range f.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}
